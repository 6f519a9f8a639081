package game

import (
	"time"

	"github.com/lixenwraith/ghost-arena/component"
	"github.com/lixenwraith/ghost-arena/parameter"
)

// HUD is the heads-up display data of the current tick
type HUD struct {
	Stage     Stage
	Round     int
	Rounds    int
	Active    component.PlayerID
	Class     component.CharacterClass
	Countdown int

	Health, MaxHealth int64
	Fuel, MaxFuel     int64
	Cooldown          time.Duration
	CooldownMax       time.Duration

	TimeLeft time.Duration
	Score    [2]int
	Ghosts   int
}

// Snapshot is a read-only copy of everything a presentation sink draws
type Snapshot struct {
	Tick        uint64
	Live        *component.Actor // nil outside a turn
	Ghosts      []component.Actor
	Projectiles []component.Projectile
	HUD         HUD
}

// Snapshot copies the presentation state, nothing in it aliases match state
func (m *Match) Snapshot() Snapshot {
	s := Snapshot{
		Tick: m.sched.Now(),
		HUD: HUD{
			Stage:     m.state.Stage,
			Round:     m.state.Round,
			Rounds:    m.cfg.Rounds,
			Active:    m.state.ActivePlayer(),
			Class:     m.state.Class,
			Countdown: m.state.Countdown,
			Score:     m.state.Score,
			TimeLeft:  m.TimeLeft(),
		},
	}

	if m.live != nil && (m.state.Stage == StagePlaying || m.state.Stage == StageTurnEnding) {
		live := *m.live
		s.Live = &live
		s.HUD.Health = live.Health
		s.HUD.MaxHealth = live.Stats.MaxHealth
		s.HUD.Fuel = live.Fuel
		s.HUD.MaxFuel = live.Stats.MaxFuel
		s.HUD.Cooldown = live.Cooldown
		s.HUD.CooldownMax = live.Stats.AttackCooldown
	}

	for _, g := range m.ghosts {
		if g.Done() {
			continue
		}
		s.Ghosts = append(s.Ghosts, *g.Actor)
	}
	s.HUD.Ghosts = len(s.Ghosts)

	if len(m.projectiles) > 0 {
		s.Projectiles = make([]component.Projectile, 0, len(m.projectiles))
		for _, p := range m.projectiles {
			s.Projectiles = append(s.Projectiles, p.Clone())
		}
	}
	return s
}

// TimeLeft returns the remaining turn clock, full before play and zero after
func (m *Match) TimeLeft() time.Duration {
	switch m.state.Stage {
	case StagePlaying:
		left := time.Duration(m.turnTicks-m.state.TurnTick) * parameter.TickDuration
		if left < 0 {
			return 0
		}
		return left
	case StageTurnEnding, StageFinished:
		return 0
	default:
		return m.cfg.TurnDuration
	}
}
