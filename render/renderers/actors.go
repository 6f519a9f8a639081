package renderers

import (
	"github.com/lixenwraith/ghost-arena/component"
	"github.com/lixenwraith/ghost-arena/render"
)

// classGlyph is the body rune of each class
var classGlyph = map[component.CharacterClass]rune{
	component.ClassWarrior: 'W',
	component.ClassWizard:  'Z',
	component.ClassRanger:  'R',
}

// ActorRenderer draws either the ghosts or the live actor
type ActorRenderer struct {
	ghosts bool
}

// NewGhostRenderer draws replayed actors in dimmed colors
func NewGhostRenderer() *ActorRenderer { return &ActorRenderer{ghosts: true} }

// NewLiveRenderer draws the player-controlled actor
func NewLiveRenderer() *ActorRenderer { return &ActorRenderer{} }

// Render implements SystemRenderer
func (r *ActorRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	if !ctx.View.Valid() {
		return
	}
	if r.ghosts {
		for i := range ctx.Snapshot.Ghosts {
			drawActor(ctx.View, buf, &ctx.Snapshot.Ghosts[i], true)
		}
		return
	}
	if live := ctx.Snapshot.Live; live != nil {
		drawActor(ctx.View, buf, live, false)
	}
}

func drawActor(v render.Viewport, buf *render.RenderBuffer, a *component.Actor, ghost bool) {
	if !a.Alive {
		return
	}
	style := render.BaseStyle().Foreground(render.PlayerColor(a.Player, ghost))
	if !ghost {
		style = style.Bold(true)
	}
	glyph, ok := classGlyph[a.Class]
	if !ok {
		glyph = '?'
	}

	col, row, w, h := v.RectToCells(a.Bounds())
	buf.Fill(col, row, w, h, glyph, style)

	// Facing marker on the leading edge
	marker, mx := '>', col+w
	if a.Facing < 0 {
		marker, mx = '<', col-1
	}
	buf.Set(mx, row, marker, style)
}
