package replay

import (
	"time"

	"github.com/lixenwraith/ghost-arena/component"
	"github.com/lixenwraith/ghost-arena/level"
	"github.com/lixenwraith/ghost-arena/parameter"
	"github.com/lixenwraith/ghost-arena/physics"
)

// Ghost replays a recording by feeding its stored inputs through the live physics
type Ghost struct {
	Actor *component.Actor

	rec     *Recording
	lvl     *level.Level
	elapsed time.Duration
	frame   int
	next    int // Next projectile event to release
	done    bool
}

// NewGhost spawns a ghost at the recording's spawn point
// An empty recording yields an inert ghost
func NewGhost(id component.ActorID, rec *Recording, lvl *level.Level) *Ghost {
	a := component.NewActor(id, component.ActorGhost, rec.Player, rec.Class, rec.Stats, rec.SpawnX, rec.SpawnY)
	g := &Ghost{Actor: a, rec: rec, lvl: lvl, frame: -1}
	if rec.Len() == 0 {
		g.retire()
	}
	return g
}

// Recording returns the replayed recording
func (g *Ghost) Recording() *Recording {
	return g.rec
}

// Frame returns the last replayed frame index, -1 before the first step
func (g *Ghost) Frame() int {
	return g.frame
}

// Done reports whether the ghost is retired
func (g *Ghost) Done() bool {
	return g.done
}

// Step advances the ghost by one tick and returns projectiles to spawn
// Frame index is floor(elapsed/TickDuration) sampled at tick start, so replay
// visits frames 0, 1, 2... in lockstep with the live turn that produced them
func (g *Ghost) Step(dt time.Duration) []component.ProjectileSpec {
	if g.done {
		return nil
	}
	if !g.Actor.Alive {
		// Killed in combat
		g.retire()
		return nil
	}

	// Sampled before elapsed advances: the first step replays frame 0, not frame 1,
	// keeping ghost frame N on the same turn tick as the live frame N it came from
	idx := int(g.elapsed / parameter.TickDuration)
	g.elapsed += dt

	if idx >= g.rec.Len() || (g.rec.Died() && idx >= g.rec.DeathFrame) {
		g.retire()
		return nil
	}

	g.frame = idx
	physics.AdvanceActor(g.Actor, g.rec.Frames[idx].Input, g.lvl, dt)

	var out []component.ProjectileSpec
	events := g.rec.Projectiles
	for g.next < len(events) && events[g.next].Frame <= idx {
		out = append(out, events[g.next].Spec)
		g.next++
	}
	return out
}

// retire marks the ghost dead and inert for the rest of the turn
func (g *Ghost) retire() {
	g.done = true
	g.Actor.Alive = false
	g.Actor.VX, g.Actor.VY = 0, 0
}
