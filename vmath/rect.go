package vmath

// Rect is an axis-aligned rectangle in Q32.32 world units, X/Y is the top-left corner
type Rect struct {
	X, Y, W, H int64
}

// RectFromCenter builds a rect from center and half-extents
func RectFromCenter(cx, cy, halfW, halfH int64) Rect {
	return Rect{X: cx - halfW, Y: cy - halfH, W: halfW * 2, H: halfH * 2}
}

// RectFromInts builds a rect from whole world units
func RectFromInts(x, y, w, h int) Rect {
	return Rect{X: FromInt(x), Y: FromInt(y), W: FromInt(w), H: FromInt(h)}
}

func (r Rect) Right() int64  { return r.X + r.W }
func (r Rect) Bottom() int64 { return r.Y + r.H }

func (r Rect) CenterX() int64 { return r.X + r.W/2 }
func (r Rect) CenterY() int64 { return r.Y + r.H/2 }

// Intersects reports strict overlap, touching edges do not intersect
func (r Rect) Intersects(o Rect) bool {
	return r.Right() > o.X && r.X < o.Right() && r.Bottom() > o.Y && r.Y < o.Bottom()
}

// ContainsPoint reports whether (x, y) lies strictly inside the rect
func (r Rect) ContainsPoint(x, y int64) bool {
	return x > r.X && x < r.Right() && y > r.Y && y < r.Bottom()
}

// Overlap returns penetration depth along each axis, both zero when not intersecting
func (r Rect) Overlap(o Rect) (dx, dy int64) {
	if !r.Intersects(o) {
		return 0, 0
	}
	dx = Min(r.Right(), o.Right()) - Max(r.X, o.X)
	dy = Min(r.Bottom(), o.Bottom()) - Max(r.Y, o.Y)
	return dx, dy
}

// CircleIntersectsRect tests a circle against a rect using the closest point on the rect
func CircleIntersectsRect(cx, cy, radius int64, r Rect) bool {
	px := Clamp(cx, r.X, r.Right())
	py := Clamp(cy, r.Y, r.Bottom())
	dx := cx - px
	dy := cy - py
	// Compare squared magnitudes, distances here stay far below Q32.32 overflow range
	return Mul(dx, dx)+Mul(dy, dy) < Mul(radius, radius)
}
