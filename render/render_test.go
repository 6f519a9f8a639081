package render

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/ghost-arena/vmath"
)

func testViewport() Viewport {
	// 150 columns and 96 arena rows give 10 world units per cell
	return NewViewport(150, 99, vmath.FromInt(1500), vmath.FromInt(960))
}

func TestViewportLayout(t *testing.T) {
	v := testViewport()
	if v.Cols != 150 || v.Rows != 96 || v.Y != 2 {
		t.Fatalf("Expected 150x96 at row 2, got %dx%d at row %d", v.Cols, v.Rows, v.Y)
	}
	if NewViewport(80, 2, v.WorldW, v.WorldH).Valid() {
		t.Error("Expected no arena room on a 2 row screen")
	}
}

func TestViewportWorldToCell(t *testing.T) {
	v := testViewport()

	col, row, ok := v.WorldToCell(vmath.FromInt(155), vmath.FromInt(25))
	if !ok || col != 15 || row != 4 {
		t.Errorf("Expected (15, 4), got (%d, %d, %v)", col, row, ok)
	}
	if _, _, ok := v.WorldToCell(vmath.FromInt(1500), 0); ok {
		t.Error("Expected right edge to be outside")
	}
	if _, _, ok := v.WorldToCell(-1, 0); ok {
		t.Error("Expected negative x to be outside")
	}
}

func TestViewportCellToWorld(t *testing.T) {
	v := testViewport()

	x, y := v.CellToWorld(15, 4)
	if x != vmath.FromInt(155) || y != vmath.FromInt(25) {
		t.Errorf("Expected (155, 25), got (%v, %v)", vmath.ToFloat(x), vmath.ToFloat(y))
	}

	// HUD rows clamp to the top arena row
	_, y = v.CellToWorld(0, 0)
	if y != vmath.FromInt(5) {
		t.Errorf("Expected clamp to y=5, got %v", vmath.ToFloat(y))
	}
}

func TestViewportRectToCells(t *testing.T) {
	v := testViewport()

	col, row, w, h := v.RectToCells(vmath.RectFromInts(100, 50, 40, 20))
	if col != 10 || row != 7 || w != 4 || h != 2 {
		t.Errorf("Expected (10, 7, 4, 2), got (%d, %d, %d, %d)", col, row, w, h)
	}

	_, _, w, h = v.RectToCells(vmath.RectFromInts(101, 51, 2, 2))
	if w != 1 || h != 1 {
		t.Errorf("Expected a one cell minimum, got %dx%d", w, h)
	}
}

func TestRenderBufferClipping(t *testing.T) {
	b := NewRenderBuffer(4, 2)
	b.Set(-1, 0, 'x', BaseStyle())
	b.Set(4, 1, 'x', BaseStyle())
	b.Fill(2, 1, 10, 10, '#', BaseStyle())

	if got := b.Get(3, 1).Rune; got != '#' {
		t.Errorf("Expected '#', got %q", got)
	}
	if got := b.Get(1, 1).Rune; got != ' ' {
		t.Errorf("Expected blank, got %q", got)
	}

	next := b.Text(0, 0, "abcdef", BaseStyle())
	if next != 6 || b.Get(3, 0).Rune != 'd' {
		t.Errorf("Expected clipped text, next=%d", next)
	}

	b.Resize(2, 2)
	if w, h := b.Bounds(); w != 2 || h != 2 || b.Get(0, 0).Rune != ' ' {
		t.Error("Expected cleared 2x2 buffer after resize")
	}
}

type markRenderer struct {
	r     rune
	x     int
	order *[]rune
}

func (m *markRenderer) Render(ctx RenderContext, buf *RenderBuffer) {
	*m.order = append(*m.order, m.r)
	buf.Set(m.x, 0, m.r, BaseStyle())
}

type hiddenRenderer struct{ markRenderer }

func (h *hiddenRenderer) IsVisible() bool { return false }

func TestOrchestratorOrderAndFlush(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Simulation screen init failed: %v", err)
	}
	defer screen.Fini()
	screen.SetSize(10, 3)

	o := NewRenderOrchestrator(screen)
	var order []rune
	o.Register(&markRenderer{r: 'c', x: 2, order: &order}, PriorityOverlay)
	o.Register(&markRenderer{r: 'a', x: 0, order: &order}, PriorityBackground)
	o.Register(&markRenderer{r: 'b', x: 1, order: &order}, PriorityBackground)
	o.Register(&hiddenRenderer{markRenderer{r: 'h', x: 3, order: &order}}, PriorityDebug)

	o.Resize()
	o.RenderFrame(RenderContext{})

	if string(order) != "abc" {
		t.Errorf("Expected render order abc, got %s", string(order))
	}
	for x, want := range "abc" {
		if got, _, _, _ := screen.GetContent(x, 0); got != want {
			t.Errorf("Expected %q at column %d, got %q", want, x, got)
		}
	}
	if got, _, _, _ := screen.GetContent(3, 0); got == 'h' {
		t.Error("Expected hidden renderer to be skipped")
	}
}
