package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/debug"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/ghost-arena/audio"
	"github.com/lixenwraith/ghost-arena/config"
	"github.com/lixenwraith/ghost-arena/engine"
	"github.com/lixenwraith/ghost-arena/game"
	"github.com/lixenwraith/ghost-arena/input"
	"github.com/lixenwraith/ghost-arena/level"
)

var (
	configFlag   = flag.String("config", "", "Path to a TOML config file")
	seedFlag     = flag.Int64("seed", 0, "Arena seed, 0 keeps the config value")
	debugFlag    = flag.Bool("debug", false, "Write a debug log and show the status overlay")
	muteFlag     = flag.Bool("mute", false, "Start with sound off")
	headlessFlag = flag.Bool("headless", false, "Play a match with scripted input and print the result")
	jsonFlag     = flag.Bool("json", false, "With -headless, print the result as JSON")
	dumpFlag     = flag.Bool("dump-config", false, "Print the effective config as TOML and exit")
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

	if *dumpFlag {
		if err := config.Write(os.Stdout, cfg); err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}
		return
	}

	logFile := setupLogging(cfg.Log.Dir, *debugFlag || cfg.Log.Enabled)
	if logFile != nil {
		defer logFile.Close()
	}

	gc, err := cfg.GameConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	lvl := level.Generate(cfg.Seed)

	if *headlessFlag {
		if _, err := runHeadless(gc, lvl, cfg.Seed, os.Stdout, *jsonFlag); err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := runTerminal(cfg, gc, lvl); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func runTerminal(cfg config.Config, gc game.Config, lvl *level.Level) error {
	km, err := input.NewKeyMap(cfg.Keys.Bindings())
	if err != nil {
		return err
	}
	tracker := input.NewTracker(km, engine.NewMonotonicTimeProvider())

	m, err := game.NewMatch(gc, lvl, tracker)
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize screen: %w", err)
	}
	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.HideCursor()

	// Panic recovery: restore the terminal even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\n\x1b[31mGHOST-ARENA CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()
	defer screen.Fini()

	player := audio.NewPlayer(cfg.Audio.Volume)
	player.SetMuted(!cfg.Audio.Enabled || *muteFlag)
	if cfg.Audio.Enabled {
		if err := player.Initialize(); err != nil {
			log.Printf("audio unavailable, continuing without sound: %v", err)
		} else {
			defer player.Cleanup()
		}
	}

	return newApp(screen, m, tracker, player, *debugFlag).run()
}
