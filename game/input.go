package game

import (
	"github.com/lixenwraith/ghost-arena/component"
	"github.com/lixenwraith/ghost-arena/vmath"
)

// InputSource is the input collaborator, polled once per playing tick
type InputSource interface {
	Poll() component.Input
}

// InputFunc adapts a function to InputSource
type InputFunc func() component.Input

func (f InputFunc) Poll() component.Input { return f() }

// IdleInput never moves or fires
type IdleInput struct{}

func (IdleInput) Poll() component.Input { return component.Input{} }

// ScriptedInput replays a fixed input sequence, then repeats the last entry
type ScriptedInput struct {
	frames []component.Input
	next   int
}

// NewScriptedInput creates a source over frames
func NewScriptedInput(frames ...component.Input) *ScriptedInput {
	return &ScriptedInput{frames: frames}
}

func (s *ScriptedInput) Poll() component.Input {
	if len(s.frames) == 0 {
		return component.Input{}
	}
	if s.next >= len(s.frames) {
		return s.frames[len(s.frames)-1]
	}
	in := s.frames[s.next]
	s.next++
	return in
}

// RandomInput wanders and fires on a seeded schedule, used for headless matches
type RandomInput struct {
	rng   *vmath.FastRand
	hold  int
	cur   component.Input
	width int
}

// NewRandomInput creates a deterministic wandering source for an arena of the given width
func NewRandomInput(seed uint64, arenaWidth int) *RandomInput {
	return &RandomInput{rng: vmath.NewFastRand(seed), width: arenaWidth}
}

func (r *RandomInput) Poll() component.Input {
	if r.hold <= 0 {
		r.hold = r.rng.IntRange(10, 45)
		axis := r.rng.IntRange(-1, 1)
		r.cur = component.Input{
			MoveLeft:  axis < 0,
			MoveRight: axis > 0,
			Jetpack:   r.rng.Intn(4) == 0,
			AimX:      vmath.FromInt(r.rng.IntRange(1, r.width)),
			AimY:      vmath.FromInt(r.rng.IntRange(100, 800)),
		}
	}
	r.hold--
	in := r.cur
	in.Fire = r.rng.Intn(20) == 0
	return in
}
