package render

import (
	"github.com/lixenwraith/ghost-arena/parameter"
	"github.com/lixenwraith/ghost-arena/vmath"
)

// Viewport maps the world onto the arena region of the terminal
// The world is stretched to fill the region, cells are not square
type Viewport struct {
	X, Y       int // Screen origin of the arena region
	Cols, Rows int

	WorldW, WorldH int64 // Q32.32
}

// NewViewport lays the arena out between the HUD and status rows
func NewViewport(screenW, screenH int, worldW, worldH int64) Viewport {
	rows := screenH - parameter.HUDRows - parameter.StatusRows
	if rows < 0 {
		rows = 0
	}
	if screenW < 0 {
		screenW = 0
	}
	return Viewport{
		X:      0,
		Y:      parameter.HUDRows,
		Cols:   screenW,
		Rows:   rows,
		WorldW: worldW,
		WorldH: worldH,
	}
}

// Valid reports whether there is room to draw the arena
func (v Viewport) Valid() bool {
	return v.Cols > 0 && v.Rows > 0 && v.WorldW > 0 && v.WorldH > 0
}

// WorldToCell returns the screen cell containing a world point
func (v Viewport) WorldToCell(x, y int64) (col, row int, ok bool) {
	if !v.Valid() || x < 0 || y < 0 {
		return 0, 0, false
	}
	c := int(x * int64(v.Cols) / v.WorldW)
	r := int(y * int64(v.Rows) / v.WorldH)
	if c >= v.Cols || r >= v.Rows {
		return 0, 0, false
	}
	return v.X + c, v.Y + r, true
}

// CellToWorld returns the world point at the center of a screen cell
// Cells outside the arena clamp to its edge
func (v Viewport) CellToWorld(col, row int) (x, y int64) {
	if !v.Valid() {
		return 0, 0
	}
	c := vmath.Clamp(int64(col-v.X), 0, int64(v.Cols-1))
	r := vmath.Clamp(int64(row-v.Y), 0, int64(v.Rows-1))
	x = (2*c + 1) * v.WorldW / (2 * int64(v.Cols))
	y = (2*r + 1) * v.WorldH / (2 * int64(v.Rows))
	return x, y
}

// RectToCells returns the screen cell span covered by a world rect, at least one cell
func (v Viewport) RectToCells(r vmath.Rect) (col, row, w, h int) {
	if !v.Valid() {
		return 0, 0, 0, 0
	}
	c0 := int(vmath.Max(r.X, 0) * int64(v.Cols) / v.WorldW)
	r0 := int(vmath.Max(r.Y, 0) * int64(v.Rows) / v.WorldH)
	c1 := int((vmath.Min(r.Right(), v.WorldW)*int64(v.Cols) + v.WorldW - 1) / v.WorldW)
	r1 := int((vmath.Min(r.Bottom(), v.WorldH)*int64(v.Rows) + v.WorldH - 1) / v.WorldH)
	w = max(c1-c0, 1)
	h = max(r1-r0, 1)
	return v.X + c0, v.Y + r0, w, h
}
