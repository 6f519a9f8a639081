package input

import (
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/ghost-arena/component"
	"github.com/lixenwraith/ghost-arena/engine"
	"github.com/lixenwraith/ghost-arena/parameter"
)

// AimMapper converts a terminal cell to world coordinates (Q32.32)
type AimMapper func(col, row int) (x, y int64)

// keyHold tracks press timing for one held action
type keyHold struct {
	last    time.Time
	repeats int
}

// Tracker turns tcell events into the per-tick control snapshot
// Events arrive on the poll goroutine, Poll runs on the simulation goroutine
type Tracker struct {
	mu     sync.Mutex
	keymap *KeyMap
	time   engine.TimeProvider
	aim    AimMapper

	holds     [actionCount]keyHold
	mouseFire bool
	aimX      int64
	aimY      int64
}

// NewTracker creates a tracker, aim may be nil until a viewport exists
func NewTracker(km *KeyMap, tp engine.TimeProvider) *Tracker {
	return &Tracker{keymap: km, time: tp}
}

// SetAimMapper replaces the cell to world conversion, called on resize
func (t *Tracker) SetAimMapper(aim AimMapper) {
	t.mu.Lock()
	t.aim = aim
	t.mu.Unlock()
}

// HandleEvent records ev and returns the command it triggers, if any
// Held controls return ActionNone
func (t *Tracker) HandleEvent(ev tcell.Event) Action {
	switch e := ev.(type) {
	case *tcell.EventResize:
		return ActionResize
	case *tcell.EventKey:
		a, ok := t.keymap.Lookup(e)
		if !ok {
			return ActionNone
		}
		if a.Held() {
			t.press(a)
			return ActionNone
		}
		return a
	case *tcell.EventMouse:
		t.mouse(e)
	}
	return ActionNone
}

func (t *Tracker) press(a Action) {
	now := t.time.Now()
	t.mu.Lock()
	defer t.mu.Unlock()

	h := &t.holds[a]
	if t.heldLocked(a, now) {
		h.repeats++
	} else {
		h.repeats = 0
	}
	h.last = now
}

func (t *Tracker) mouse(e *tcell.EventMouse) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.mouseFire = e.Buttons()&tcell.Button1 != 0
	if t.aim != nil {
		col, row := e.Position()
		t.aimX, t.aimY = t.aim(col, row)
	}
}

// heldLocked applies the hold window, caller holds mu
func (t *Tracker) heldLocked(a Action, now time.Time) bool {
	h := t.holds[a]
	if h.last.IsZero() {
		return false
	}
	window := parameter.KeyInitialHold
	if h.repeats > 0 {
		window = parameter.KeyRepeatHold
	}
	return now.Sub(h.last) < window
}

// Held reports whether a held control is currently active
func (t *Tracker) Held(a Action) bool {
	now := t.time.Now()
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.heldLocked(a, now)
}

// Release clears every held control, used when a turn ends
func (t *Tracker) Release() {
	t.mu.Lock()
	t.holds = [actionCount]keyHold{}
	t.mouseFire = false
	t.mu.Unlock()
}

// Poll implements game.InputSource
func (t *Tracker) Poll() component.Input {
	now := t.time.Now()
	t.mu.Lock()
	defer t.mu.Unlock()

	return component.Input{
		MoveLeft:  t.heldLocked(ActionLeft, now),
		MoveRight: t.heldLocked(ActionRight, now),
		Jetpack:   t.heldLocked(ActionJetpack, now),
		Fire:      t.mouseFire || t.heldLocked(ActionFire, now),
		AimX:      t.aimX,
		AimY:      t.aimY,
	}
}
