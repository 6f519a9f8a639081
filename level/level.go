package level

import (
	"errors"
	"fmt"

	"github.com/lixenwraith/ghost-arena/component"
	"github.com/lixenwraith/ghost-arena/vmath"
)

// ErrNoSpawn is returned when a player slot has no spawn point
var ErrNoSpawn = errors.New("level: missing spawn point")

// SpawnPoint is a player start position, tagged by slot
type SpawnPoint struct {
	X, Y   int64
	Player component.PlayerID
}

// Level is static arena geometry, read-only once generated
type Level struct {
	Width, Height int64
	Platforms     []vmath.Rect
	Obstacles     []vmath.Rect
	Spawns        []SpawnPoint
}

// Geometry returns platforms followed by obstacles
// Order is significant: collision resolves against the first intersecting rect
func (l *Level) Geometry() []vmath.Rect {
	out := make([]vmath.Rect, 0, len(l.Platforms)+len(l.Obstacles))
	out = append(out, l.Platforms...)
	return append(out, l.Obstacles...)
}

// FirstHit returns the first geometry rect intersecting r, in Geometry order
func (l *Level) FirstHit(r vmath.Rect) (vmath.Rect, bool) {
	for _, g := range l.Platforms {
		if r.Intersects(g) {
			return g, true
		}
	}
	for _, g := range l.Obstacles {
		if r.Intersects(g) {
			return g, true
		}
	}
	return vmath.Rect{}, false
}

// ContainsPoint reports whether any geometry rect strictly contains (x, y)
func (l *Level) ContainsPoint(x, y int64) bool {
	for _, g := range l.Platforms {
		if g.ContainsPoint(x, y) {
			return true
		}
	}
	for _, g := range l.Obstacles {
		if g.ContainsPoint(x, y) {
			return true
		}
	}
	return false
}

// Spawn returns the spawn point of a player slot
func (l *Level) Spawn(p component.PlayerID) (SpawnPoint, bool) {
	for _, s := range l.Spawns {
		if s.Player == p {
			return s, true
		}
	}
	return SpawnPoint{}, false
}

// Validate checks the level can host a match
func (l *Level) Validate() error {
	if l.Width <= 0 || l.Height <= 0 {
		return fmt.Errorf("level: invalid dimensions %dx%d", vmath.ToInt(l.Width), vmath.ToInt(l.Height))
	}
	for _, p := range []component.PlayerID{component.Player1, component.Player2} {
		if _, ok := l.Spawn(p); !ok {
			return fmt.Errorf("%w for player %d", ErrNoSpawn, p)
		}
	}
	return nil
}
