package renderers

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/ghost-arena/render"
	"github.com/lixenwraith/ghost-arena/vmath"
)

// ArenaRenderer draws static level geometry
type ArenaRenderer struct{}

func NewArenaRenderer() *ArenaRenderer { return &ArenaRenderer{} }

// Render implements SystemRenderer
func (r *ArenaRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	if ctx.Level == nil || !ctx.View.Valid() {
		return
	}
	base := render.BaseStyle()
	for _, p := range ctx.Level.Platforms {
		fillRect(ctx.View, buf, p, '▀', base.Foreground(render.RgbPlatform))
	}
	for _, o := range ctx.Level.Obstacles {
		fillRect(ctx.View, buf, o, '▓', base.Foreground(render.RgbObstacle))
	}
}

func fillRect(v render.Viewport, buf *render.RenderBuffer, rect vmath.Rect, ch rune, style tcell.Style) {
	col, row, w, h := v.RectToCells(rect)
	buf.Fill(col, row, w, h, ch, style)
}
