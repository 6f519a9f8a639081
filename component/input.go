package component

// Input is the per-tick control snapshot pulled from the input collaborator
// Aim is in world coordinates (Q32.32), (0, 0) means no aim was reported
type Input struct {
	MoveLeft  bool
	MoveRight bool
	Jetpack   bool
	Fire      bool
	AimX      int64
	AimY      int64
}

// MoveAxis returns -1, 0 or +1 for the horizontal intent, opposing keys cancel
func (in Input) MoveAxis() int {
	axis := 0
	if in.MoveLeft {
		axis--
	}
	if in.MoveRight {
		axis++
	}
	return axis
}

// HasAim reports whether an aim point was supplied
func (in Input) HasAim() bool {
	return in.AimX != 0 || in.AimY != 0
}

// Normalized returns the canonical form stored in recordings
// Opposing move keys are collapsed so the snapshot holds the axis only
func (in Input) Normalized() Input {
	if in.MoveLeft && in.MoveRight {
		in.MoveLeft, in.MoveRight = false, false
	}
	return in
}

// AimPoint returns the aim target, or a point straight ahead of the actor when absent
func (in Input) AimPoint(a *Actor) (x, y int64) {
	if in.HasAim() {
		return in.AimX, in.AimY
	}
	return a.X + int64(a.Facing)*a.HalfW, a.Y
}
