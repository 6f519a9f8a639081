package renderers

import (
	"fmt"

	"github.com/lixenwraith/ghost-arena/parameter"
	"github.com/lixenwraith/ghost-arena/render"
)

// DebugRenderer lists status registry metrics in a right-hand panel
type DebugRenderer struct{}

func NewDebugRenderer() *DebugRenderer { return &DebugRenderer{} }

// Render implements SystemRenderer
func (r *DebugRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	if !ctx.Debug {
		return
	}
	w, h := buf.Bounds()
	x := max(w-parameter.DebugPanelWidth, 0)
	style := render.BaseStyle().Foreground(render.RgbDebugText)

	y := parameter.HUDRows
	buf.Fill(x, y, parameter.DebugPanelWidth, min(len(ctx.Status)+1, h-y), ' ', style)
	buf.Text(x+1, y, fmt.Sprintf("tick %d", ctx.Snapshot.Tick), style.Bold(true))
	for _, e := range ctx.Status {
		y++
		if y >= h-parameter.StatusRows {
			break
		}
		line := fmt.Sprintf("%-20s %s", e.Key, e.Value)
		if len(line) > parameter.DebugPanelWidth-2 {
			line = line[:parameter.DebugPanelWidth-2]
		}
		buf.Text(x+1, y, line, style)
	}
}
