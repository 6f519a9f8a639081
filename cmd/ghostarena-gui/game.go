package main

import (
	"fmt"
	"image/color"
	"log"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/lixenwraith/ghost-arena/audio"
	"github.com/lixenwraith/ghost-arena/component"
	"github.com/lixenwraith/ghost-arena/event"
	"github.com/lixenwraith/ghost-arena/game"
	"github.com/lixenwraith/ghost-arena/vmath"
)

var (
	colorBackground = color.RGBA{12, 14, 20, 255}
	colorPlatform   = color.RGBA{96, 104, 120, 255}
	colorObstacle   = color.RGBA{140, 110, 80, 255}
	colorShot       = color.RGBA{255, 255, 160, 255}
	colorBomb       = color.RGBA{200, 120, 255, 255}
	colorBlast      = color.RGBA{255, 80, 40, 160}
	colorSlash      = color.RGBA{230, 230, 230, 140}
	colorHealth     = color.RGBA{220, 60, 60, 255}
	colorFuel       = color.RGBA{60, 200, 120, 255}
	colorGaugeBack  = color.RGBA{50, 50, 60, 255}
	colorOverlay    = color.RGBA{30, 32, 44, 220}
)

func playerColor(p component.PlayerID, ghost bool) color.RGBA {
	c := color.RGBA{210, 210, 220, 255}
	switch p {
	case component.Player1:
		c = color.RGBA{80, 200, 255, 255}
	case component.Player2:
		c = color.RGBA{255, 150, 60, 255}
	}
	if ghost {
		c.A = 110
	}
	return c
}

// pointerInput is the InputSource fed by the ebiten update loop
type pointerInput struct {
	cur component.Input
}

func (p *pointerInput) Poll() component.Input { return p.cur }

// arenaGame adapts a match to ebiten.Game
// TPS equals the simulation tick rate so each Update is exactly one tick
type arenaGame struct {
	match  *game.Match
	input  *pointerInput
	player *audio.Player
	router *event.Router

	width, height int
	paused        bool
}

func newGame(m *game.Match, in *pointerInput, player *audio.Player) (*arenaGame, error) {
	g := &arenaGame{
		match:  m,
		input:  in,
		player: player,
		router: event.NewRouter(),
		width:  vmath.ToInt(m.Level().Width),
		height: vmath.ToInt(m.Level().Height),
	}
	g.router.Register(player)
	if err := m.Start(); err != nil {
		return nil, err
	}
	return g, nil
}

// Update implements ebiten.Game
func (g *arenaGame) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) && g.match.Stage() != game.StageFinished {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		g.player.ToggleMute()
	}
	if g.match.Stage() == game.StageSelecting {
		g.selectFromKeys()
	}
	if g.paused {
		return nil
	}

	mx, my := ebiten.CursorPosition()
	g.input.cur = component.Input{
		MoveLeft:  ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
		MoveRight: ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight),
		Jetpack:   ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeySpace) || ebiten.IsKeyPressed(ebiten.KeyArrowUp),
		Fire:      ebiten.IsKeyPressed(ebiten.KeyF) || ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		AimX:      vmath.FromInt(max(mx, 1)),
		AimY:      vmath.FromInt(max(my, 1)),
	}

	g.match.Tick()
	g.router.Dispatch(g.match.Events())
	return nil
}

func (g *arenaGame) selectFromKeys() {
	keys := []ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3}
	opts := g.match.Options()
	for i, k := range keys {
		if i < len(opts) && inpututil.IsKeyJustPressed(k) {
			if err := g.match.Select(opts[i]); err != nil {
				log.Printf("[match %s] select: %v", g.match.ID(), err)
			}
			g.router.Dispatch(g.match.Events())
			return
		}
	}
}

// Layout implements ebiten.Game, the logical screen is the arena in world units
func (g *arenaGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}

// Draw implements ebiten.Game
func (g *arenaGame) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)
	snap := g.match.Snapshot()
	lvl := g.match.Level()

	for _, r := range lvl.Platforms {
		fillRect(screen, r, colorPlatform)
	}
	for _, r := range lvl.Obstacles {
		fillRect(screen, r, colorObstacle)
	}

	for i := range snap.Ghosts {
		drawActor(screen, &snap.Ghosts[i], true)
	}
	if snap.Live != nil {
		drawActor(screen, snap.Live, false)
	}

	for i := range snap.Projectiles {
		drawProjectile(screen, &snap.Projectiles[i])
	}

	g.drawHUD(screen, snap.HUD)
	g.drawOverlay(screen, snap.HUD)
}

func fillRect(dst *ebiten.Image, r vmath.Rect, c color.Color) {
	vector.DrawFilledRect(dst,
		float32(vmath.ToFloat(r.X)), float32(vmath.ToFloat(r.Y)),
		float32(vmath.ToFloat(r.W)), float32(vmath.ToFloat(r.H)), c, false)
}

func drawActor(dst *ebiten.Image, a *component.Actor, ghost bool) {
	if !a.Alive {
		return
	}
	c := playerColor(a.Player, ghost)
	fillRect(dst, a.Bounds(), c)

	// Eye on the facing side
	ex := vmath.ToFloat(a.X) + float64(a.Facing)*vmath.ToFloat(a.HalfW)*0.5
	ey := vmath.ToFloat(a.Y) - vmath.ToFloat(a.HalfH)*0.5
	vector.DrawFilledCircle(dst, float32(ex), float32(ey), 4, colorBackground, true)

	if !ghost {
		label := strings.ToUpper(a.Class.String()[:1])
		ebitenutil.DebugPrintAt(dst, label, int(vmath.ToFloat(a.X))-3, int(vmath.ToFloat(a.Y)))
	}
}

func drawProjectile(dst *ebiten.Image, p *component.Projectile) {
	if !p.Alive {
		return
	}
	x, y := float32(vmath.ToFloat(p.X)), float32(vmath.ToFloat(p.Y))
	switch p.Kind {
	case component.ProjectileShot:
		vector.DrawFilledCircle(dst, x, y, float32(vmath.ToFloat(p.Radius)), colorShot, true)
	case component.ProjectileBomb:
		if p.Bomb != nil && p.Bomb.Exploding {
			vector.DrawFilledCircle(dst, x, y, float32(vmath.ToFloat(p.Bomb.SplashRadius)), colorBlast, true)
			return
		}
		vector.DrawFilledCircle(dst, x, y, float32(vmath.ToFloat(p.Radius)), colorBomb, true)
	case component.ProjectileSlash:
		fillRect(dst, p.Bounds(), colorSlash)
	}
}

func gauge(dst *ebiten.Image, x, y float32, frac float64, c color.Color) {
	const w, h = 120, 10
	frac = min(max(frac, 0), 1)
	vector.DrawFilledRect(dst, x, y, w, h, colorGaugeBack, false)
	vector.DrawFilledRect(dst, x, y, float32(frac)*w, h, c, false)
}

func (g *arenaGame) drawHUD(dst *ebiten.Image, hud game.HUD) {
	secs := int(hud.TimeLeft.Seconds() + 0.999)
	line := fmt.Sprintf("ROUND %d/%d  P%d %s  TIME %d:%02d  SCORE %d : %d  GHOSTS %d",
		hud.Round, hud.Rounds, hud.Active, strings.ToUpper(hud.Class.String()),
		secs/60, secs%60, hud.Score[0], hud.Score[1], hud.Ghosts)
	if g.player.IsMuted() {
		line += "  [muted]"
	}
	ebitenutil.DebugPrintAt(dst, line, 10, 8)

	if hud.MaxHealth > 0 {
		gauge(dst, 10, 28, vmath.ToFloat(hud.Health)/vmath.ToFloat(hud.MaxHealth), colorHealth)
	}
	if hud.MaxFuel > 0 {
		gauge(dst, 140, 28, vmath.ToFloat(hud.Fuel)/vmath.ToFloat(hud.MaxFuel), colorFuel)
	}
}

func (g *arenaGame) drawOverlay(dst *ebiten.Image, hud game.HUD) {
	var lines []string
	switch hud.Stage {
	case game.StageSelecting:
		lines = append(lines, fmt.Sprintf("ROUND %d  PLAYER %d - choose a character", hud.Round, hud.Active))
		for i, c := range g.match.Options() {
			lines = append(lines, fmt.Sprintf("[%d] %s", i+1, strings.ToUpper(c.String())))
		}
	case game.StageCountingDown:
		lines = append(lines, fmt.Sprintf("%d", hud.Countdown))
	case game.StageTurnEnding:
		lines = append(lines, fmt.Sprintf("PLAYER %d TURN OVER", hud.Active))
	case game.StageFinished:
		if res, ok := g.match.Result(); ok {
			if res.Draw {
				lines = append(lines, "DRAW")
			} else {
				lines = append(lines, fmt.Sprintf("PLAYER %d WINS (%s)", res.Winner, res.Reason))
			}
		}
		lines = append(lines, fmt.Sprintf("score %d : %d", hud.Score[0], hud.Score[1]), "match "+g.match.ID(), "esc to quit")
	}
	if g.paused {
		lines = append(lines, "PAUSED")
	}
	if len(lines) == 0 {
		return
	}

	const lineH, boxW = 18, 420
	boxH := float32(len(lines)*lineH + 20)
	x0 := float32(g.width-boxW) / 2
	y0 := (float32(g.height) - boxH) / 2
	vector.DrawFilledRect(dst, x0, y0, boxW, boxH, colorOverlay, false)
	for i, l := range lines {
		ebitenutil.DebugPrintAt(dst, l, int(x0)+16, int(y0)+10+i*lineH)
	}
}
