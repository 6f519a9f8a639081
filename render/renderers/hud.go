package renderers

import (
	"fmt"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/ghost-arena/game"
	"github.com/lixenwraith/ghost-arena/parameter"
	"github.com/lixenwraith/ghost-arena/render"
	"github.com/lixenwraith/ghost-arena/vmath"
)

// HUDRenderer draws the top gauges and the bottom status line
type HUDRenderer struct{}

func NewHUDRenderer() *HUDRenderer { return &HUDRenderer{} }

// Render implements SystemRenderer
func (r *HUDRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	hud := ctx.Snapshot.HUD
	base := render.BaseStyle()
	dim := base.Foreground(render.RgbHUDDim)
	sep := " │ "

	x := buf.Text(0, 0, fmt.Sprintf(" ROUND %d/%d", max(hud.Round, 1), hud.Rounds), base.Bold(true))
	x = buf.Text(x, 0, sep, dim)
	x = buf.Text(x, 0, fmt.Sprintf("P%d", hud.Active), base.Foreground(render.PlayerColor(hud.Active, false)).Bold(true))

	if ctx.Snapshot.Live != nil {
		x = buf.Text(x, 0, " "+strings.ToUpper(hud.Class.String()), base)
		x = buf.Text(x, 0, sep, dim)
		x = buf.Text(x, 0, "♥ ", base.Foreground(render.RgbHealth))
		x = gauge(buf, x, 0, ratio(hud.Health, hud.MaxHealth), render.RgbHealth)
		x = buf.Text(x, 0, fmt.Sprintf(" %d/%d", vmath.ToInt(hud.Health), vmath.ToInt(hud.MaxHealth)), base)
		x = buf.Text(x, 0, sep+"FUEL ", dim)
		x = gauge(buf, x, 0, ratio(hud.Fuel, hud.MaxFuel), render.RgbFuel)
		x = buf.Text(x, 0, sep+"ATK ", dim)
		ready := 1.0
		if hud.CooldownMax > 0 {
			ready = 1 - float64(hud.Cooldown)/float64(hud.CooldownMax)
		}
		x = gauge(buf, x, 0, ready, render.RgbCooldown)
	}

	x = buf.Text(x, 0, sep, dim)
	x = buf.Text(x, 0, clock(hud.TimeLeft), base.Bold(true))
	x = buf.Text(x, 0, sep, dim)
	x = buf.Text(x, 0, fmt.Sprintf("P1 %d", hud.Score[0]), base.Foreground(render.RgbPlayer1))
	x = buf.Text(x, 0, " : ", dim)
	x = buf.Text(x, 0, fmt.Sprintf("%d P2", hud.Score[1]), base.Foreground(render.RgbPlayer2))
	buf.Text(x, 0, fmt.Sprintf("%sghosts %d", sep, hud.Ghosts), dim)

	buf.Text(0, 1, " "+stageLine(hud), dim)

	r.statusLine(ctx, buf)
}

func (r *HUDRenderer) statusLine(ctx render.RenderContext, buf *render.RenderBuffer) {
	_, h := buf.Bounds()
	y := h - 1
	base := render.BaseStyle()

	audio := base.Background(render.RgbAudioOn).Foreground(tcell.ColorBlack)
	if ctx.Muted {
		audio = base.Background(render.RgbAudioMuted).Foreground(tcell.ColorBlack)
	}
	x := buf.Text(0, y, parameter.AudioStr, audio)
	x = buf.Text(x, y, " a/d move  w jet  f/click fire  p pause  m mute  F1 debug  q quit", base.Foreground(render.RgbHUDDim))
	if ctx.FPS > 0 {
		buf.Text(x, y, fmt.Sprintf("  %d fps", ctx.FPS), base.Foreground(render.RgbHUDDim))
	}
}

func stageLine(hud game.HUD) string {
	switch hud.Stage {
	case game.StageSelecting:
		return fmt.Sprintf("player %d choosing a character", hud.Active)
	case game.StageCountingDown:
		return fmt.Sprintf("get ready: %d", hud.Countdown)
	case game.StagePlaying:
		return "fight"
	case game.StageTurnEnding:
		return "turn over"
	case game.StageFinished:
		return "match finished"
	default:
		return hud.Stage.String()
	}
}

// gauge draws a fixed-width bar filled to frac and returns the next column
func gauge(buf *render.RenderBuffer, x, y int, frac float64, color tcell.Color) int {
	filled := int(frac*parameter.BarWidth + 0.5)
	filled = min(max(filled, 0), parameter.BarWidth)
	base := render.BaseStyle()
	for i := 0; i < parameter.BarWidth; i++ {
		if i < filled {
			buf.Set(x+i, y, parameter.BarFull, base.Foreground(color))
		} else {
			buf.Set(x+i, y, parameter.BarEmpty, base.Foreground(render.RgbHUDDim))
		}
	}
	return x + parameter.BarWidth
}

func ratio(v, maxV int64) float64 {
	if maxV <= 0 {
		return 0
	}
	return vmath.ToFloat(v) / vmath.ToFloat(maxV)
}

// clock formats a duration as m:ss, rounding up so 0:00 only shows at expiry
func clock(d time.Duration) string {
	secs := int((d + time.Second - 1) / time.Second)
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}
