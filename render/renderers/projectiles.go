package renderers

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/ghost-arena/component"
	"github.com/lixenwraith/ghost-arena/render"
	"github.com/lixenwraith/ghost-arena/vmath"
)

// ProjectileRenderer draws shots, bombs and slash hitboxes
type ProjectileRenderer struct{}

func NewProjectileRenderer() *ProjectileRenderer { return &ProjectileRenderer{} }

// Render implements SystemRenderer
func (r *ProjectileRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	if !ctx.View.Valid() {
		return
	}
	base := render.BaseStyle()
	for i := range ctx.Snapshot.Projectiles {
		p := &ctx.Snapshot.Projectiles[i]
		if !p.Alive {
			continue
		}
		switch p.Kind {
		case component.ProjectileShot:
			drawPoint(ctx.View, buf, p.X, p.Y, '•', base.Foreground(render.RgbShot))
		case component.ProjectileBomb:
			if p.Bomb != nil && p.Bomb.Exploding {
				drawBlast(ctx.View, buf, p, base.Foreground(render.RgbExplosion))
				continue
			}
			drawPoint(ctx.View, buf, p.X, p.Y, '●', base.Foreground(render.RgbBomb))
		case component.ProjectileSlash:
			ch := '/'
			if p.Slash != nil && math.Abs(p.Slash.FacingAngle) > math.Pi/2 {
				ch = '\\'
			}
			col, row, w, h := ctx.View.RectToCells(p.Bounds())
			buf.Fill(col, row, w, h, ch, base.Foreground(render.RgbSlash))
		}
	}
}

func drawPoint(v render.Viewport, buf *render.RenderBuffer, x, y int64, ch rune, style tcell.Style) {
	if col, row, ok := v.WorldToCell(x, y); ok {
		buf.Set(col, row, ch, style)
	}
}

// drawBlast outlines the splash radius for the tick the bomb detonates
func drawBlast(v render.Viewport, buf *render.RenderBuffer, p *component.Projectile, style tcell.Style) {
	radius := p.Bomb.SplashRadius
	col, row, w, h := v.RectToCells(vmath.RectFromCenter(p.X, p.Y, radius, radius))
	buf.Fill(col, row, w, h, '*', style)
}
