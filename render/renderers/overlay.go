package renderers

import (
	"fmt"
	"strings"

	"github.com/lixenwraith/ghost-arena/component"
	"github.com/lixenwraith/ghost-arena/game"
	"github.com/lixenwraith/ghost-arena/parameter"
	"github.com/lixenwraith/ghost-arena/render"
	"github.com/lixenwraith/ghost-arena/vmath"
)

// OverlayRenderer draws stage prompts over the arena
type OverlayRenderer struct{}

func NewOverlayRenderer() *OverlayRenderer { return &OverlayRenderer{} }

// Render implements SystemRenderer
func (r *OverlayRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	hud := ctx.Snapshot.HUD
	var lines []string

	switch hud.Stage {
	case game.StageSelecting:
		lines = selectionLines(hud, ctx.Options)
	case game.StageCountingDown:
		lines = []string{fmt.Sprintf("  %d  ", hud.Countdown)}
	case game.StageTurnEnding:
		lines = []string{fmt.Sprintf("PLAYER %d TURN OVER", hud.Active)}
	case game.StageFinished:
		lines = resultLines(ctx)
	}
	if ctx.Paused {
		lines = append(lines, parameter.PauseText)
	}
	if len(lines) == 0 {
		return
	}
	drawBox(buf, lines)
}

func selectionLines(hud game.HUD, options []component.CharacterClass) []string {
	lines := []string{
		fmt.Sprintf("ROUND %d  PLAYER %d", hud.Round, hud.Active),
		"choose a character",
		"",
	}
	for i, c := range options {
		lines = append(lines, fmt.Sprintf("[%d] %s", i+1, strings.ToUpper(c.String())))
	}
	return lines
}

func resultLines(ctx render.RenderContext) []string {
	hud := ctx.Snapshot.HUD
	lines := []string{"MATCH OVER", ""}
	if res := ctx.Result; res != nil {
		if res.Draw {
			lines = append(lines, "DRAW")
		} else {
			lines = append(lines, fmt.Sprintf("PLAYER %d WINS", res.Winner))
		}
		lines = append(lines, "decided by "+res.Reason)
	}
	lines = append(lines, fmt.Sprintf("score %d : %d", hud.Score[0], hud.Score[1]))
	if ctx.MatchID != "" {
		lines = append(lines, "", "match "+ctx.MatchID)
	}
	return append(lines, "", "press q to quit")
}

// drawBox centers lines in a filled box
func drawBox(buf *render.RenderBuffer, lines []string) {
	w, h := buf.Bounds()
	inner := 0
	for _, l := range lines {
		inner = max(inner, len([]rune(l)))
	}
	bw, bh := inner+4, len(lines)+2
	x0 := vmath.Clamp(int64((w-bw)/2), 0, int64(max(w-1, 0)))
	y0 := vmath.Clamp(int64((h-bh)/2), 0, int64(max(h-1, 0)))

	style := render.BaseStyle().Background(render.RgbOverlayBg).Foreground(render.RgbOverlayFg)
	buf.Fill(int(x0), int(y0), bw, bh, ' ', style)
	for i, l := range lines {
		pad := (inner - len([]rune(l))) / 2
		buf.Text(int(x0)+2+pad, int(y0)+1+i, l, style.Bold(i == 0))
	}
}
