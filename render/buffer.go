package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Cell is one composited terminal cell
type Cell struct {
	Rune  rune
	Style tcell.Style
}

// RenderBuffer is a compositor backed by a cell array, flushed once per frame
type RenderBuffer struct {
	cells  []Cell
	width  int
	height int
}

// NewRenderBuffer creates a buffer with the specified dimensions
func NewRenderBuffer(width, height int) *RenderBuffer {
	b := &RenderBuffer{}
	b.Resize(width, height)
	return b
}

// Resize adjusts buffer dimensions, reallocates only if capacity insufficient
func (b *RenderBuffer) Resize(width, height int) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	size := width * height
	if cap(b.cells) < size {
		b.cells = make([]Cell, size)
	} else {
		b.cells = b.cells[:size]
	}
	b.width = width
	b.height = height
	b.Clear()
}

// Clear resets all cells to blank using exponential copy
func (b *RenderBuffer) Clear() {
	if len(b.cells) == 0 {
		return
	}
	b.cells[0] = Cell{Rune: ' ', Style: BaseStyle()}
	for filled := 1; filled < len(b.cells); filled *= 2 {
		copy(b.cells[filled:], b.cells[:filled])
	}
}

// Bounds returns the buffer dimensions
func (b *RenderBuffer) Bounds() (int, int) {
	return b.width, b.height
}

func (b *RenderBuffer) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// Set writes a cell, out of bounds writes are dropped
func (b *RenderBuffer) Set(x, y int, r rune, style tcell.Style) {
	if !b.inBounds(x, y) {
		return
	}
	b.cells[y*b.width+x] = Cell{Rune: r, Style: style}
}

// Get returns the cell at (x, y), blank when out of bounds
func (b *RenderBuffer) Get(x, y int) Cell {
	if !b.inBounds(x, y) {
		return Cell{Rune: ' ', Style: BaseStyle()}
	}
	return b.cells[y*b.width+x]
}

// Fill paints a rect of cells, clipped to the buffer
func (b *RenderBuffer) Fill(x, y, w, h int, r rune, style tcell.Style) {
	for row := y; row < y+h; row++ {
		for col := x; col < x+w; col++ {
			b.Set(col, row, r, style)
		}
	}
}

// Text writes s starting at (x, y) and returns the column after it
// Wide runes take two columns
func (b *RenderBuffer) Text(x, y int, s string, style tcell.Style) int {
	for _, r := range s {
		b.Set(x, y, r, style)
		w := runewidth.RuneWidth(r)
		if w == 2 {
			b.Set(x+1, y, 0, style)
		}
		if w < 1 {
			w = 1
		}
		x += w
	}
	return x
}

// TextCentered writes s centered on row y
func (b *RenderBuffer) TextCentered(y int, s string, style tcell.Style) {
	x := (b.width - runewidth.StringWidth(s)) / 2
	if x < 0 {
		x = 0
	}
	b.Text(x, y, s, style)
}

// FlushToScreen copies every cell to the screen and shows it
func (b *RenderBuffer) FlushToScreen(s tcell.Screen) {
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			c := b.cells[y*b.width+x]
			if c.Rune == 0 {
				// Trailing half of a wide rune
				continue
			}
			s.SetContent(x, y, c.Rune, nil, c.Style)
		}
	}
	s.Show()
}
