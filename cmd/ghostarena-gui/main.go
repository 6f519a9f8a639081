package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/lixenwraith/ghost-arena/audio"
	"github.com/lixenwraith/ghost-arena/config"
	"github.com/lixenwraith/ghost-arena/game"
	"github.com/lixenwraith/ghost-arena/level"
	"github.com/lixenwraith/ghost-arena/parameter"
	"github.com/lixenwraith/ghost-arena/vmath"
)

var (
	configFlag = flag.String("config", "", "Path to a TOML config file")
	seedFlag   = flag.Int64("seed", 0, "Arena seed, 0 keeps the config value")
	muteFlag   = flag.Bool("mute", false, "Start with sound off")
	scaleFlag  = flag.Float64("scale", 0.8, "Window scale relative to the arena size")
)

func main() {
	flag.Parse()

	cfg := config.Default()
	if *configFlag != "" {
		loaded, err := config.Load(*configFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}
	if *seedFlag != 0 {
		cfg.Seed = *seedFlag
	}

	gc, err := cfg.GameConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	lvl := level.Generate(cfg.Seed)

	in := &pointerInput{}
	m, err := game.NewMatch(gc, lvl, in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	player := audio.NewPlayer(cfg.Audio.Volume)
	player.SetMuted(!cfg.Audio.Enabled || *muteFlag)
	if cfg.Audio.Enabled {
		if err := player.Initialize(); err != nil {
			log.Printf("audio unavailable, continuing without sound: %v", err)
		} else {
			defer player.Cleanup()
		}
	}

	g, err := newGame(m, in, player)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	w, h := vmath.ToInt(lvl.Width), vmath.ToInt(lvl.Height)
	ebiten.SetWindowSize(int(float64(w)**scaleFlag), int(float64(h)**scaleFlag))
	ebiten.SetWindowTitle("Ghost Arena")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(parameter.TickRate)

	if err := ebiten.RunGame(g); err != nil && err != ebiten.Termination {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}
