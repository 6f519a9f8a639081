package physics

import (
	"github.com/lixenwraith/ghost-arena/component"
	"github.com/lixenwraith/ghost-arena/level"
)

// ResolveActorOverlap separates every overlapping pair of live actors
// Separation runs along the axis of least penetration, split between both actors;
// iteration follows slice order so the outcome is deterministic
func ResolveActorOverlap(actors []*component.Actor, lvl *level.Level) {
	for i := 0; i < len(actors); i++ {
		a := actors[i]
		if !a.Alive {
			continue
		}
		for j := i + 1; j < len(actors); j++ {
			b := actors[j]
			if !b.Alive {
				continue
			}
			separate(a, b)
		}
	}

	if lvl == nil {
		return
	}
	for _, a := range actors {
		if a.Alive {
			ClampToBounds(a, lvl)
		}
	}
}

// separate pushes a and b apart if their hitboxes intersect
func separate(a, b *component.Actor) {
	dx, dy := a.Bounds().Overlap(b.Bounds())
	if dx == 0 && dy == 0 {
		return
	}
	half := dx / 2
	if dx < dy {
		rest := dx - half
		left, right := a, b
		if b.X < a.X || (b.X == a.X && b.ID < a.ID) {
			left, right = b, a
		}
		left.X -= half
		right.X += rest
		if left.VX > 0 {
			left.VX = 0
		}
		if right.VX < 0 {
			right.VX = 0
		}
		return
	}

	half = dy / 2
	rest := dy - half
	upper, lower := a, b
	if b.Y < a.Y || (b.Y == a.Y && b.ID < a.ID) {
		upper, lower = b, a
	}
	upper.Y -= half
	lower.Y += rest
	// Upper cannot keep falling into lower, lower cannot keep rising into upper
	if upper.VY > 0 {
		upper.VY = 0
	}
	if lower.VY < 0 {
		lower.VY = 0
	}
	upper.Grounded = true
}
