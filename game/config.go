package game

import (
	"errors"
	"fmt"
	"time"

	"github.com/lixenwraith/ghost-arena/component"
	"github.com/lixenwraith/ghost-arena/parameter"
)

// ErrInvalidConfig is wrapped by every Config validation failure
var ErrInvalidConfig = errors.New("game: invalid config")

// Config holds the match rules
type Config struct {
	// MatchID tags log lines and the victory summary, generated when empty
	MatchID string

	Roster component.Roster

	Rounds         int
	TurnDuration   time.Duration
	CountdownStart int
	CountdownStep  time.Duration
	TurnEndDelay   time.Duration
}

// DefaultConfig returns the stock rules
func DefaultConfig() Config {
	return Config{
		Roster:         component.DefaultRoster(),
		Rounds:         parameter.TotalRounds,
		TurnDuration:   parameter.TurnDuration,
		CountdownStart: parameter.CountdownStart,
		CountdownStep:  parameter.CountdownStep,
		TurnEndDelay:   parameter.TurnEndDelay,
	}
}

// Validate checks the rules can produce a complete match
func (c Config) Validate() error {
	if c.Rounds < 1 {
		return fmt.Errorf("%w: rounds must be positive, got %d", ErrInvalidConfig, c.Rounds)
	}
	// Each player picks an unused class every round
	if n := len(c.offered()); c.Rounds > n {
		return fmt.Errorf("%w: %d rounds need as many classes, roster has %d", ErrInvalidConfig, c.Rounds, n)
	}
	if c.TurnDuration < parameter.TickDuration {
		return fmt.Errorf("%w: turn duration %v shorter than one tick", ErrInvalidConfig, c.TurnDuration)
	}
	if c.CountdownStart < 0 || c.CountdownStep < 0 || c.TurnEndDelay < 0 {
		return fmt.Errorf("%w: negative countdown or delay", ErrInvalidConfig)
	}
	for class, s := range c.Roster {
		if s.MaxHealth <= 0 {
			return fmt.Errorf("%w: %s max health must be positive", ErrInvalidConfig, class)
		}
		if s.MaxFuel < 0 || s.MoveSpeed < 0 || s.Acceleration < 0 || s.AttackCooldown < 0 {
			return fmt.Errorf("%w: %s has negative stats", ErrInvalidConfig, class)
		}
	}
	return nil
}

// TurnTicks returns the turn length in simulation ticks
func (c Config) TurnTicks() int {
	return int(c.TurnDuration / parameter.TickDuration)
}

// offered returns known classes present in the roster, in offer order
func (c Config) offered() []component.CharacterClass {
	var out []component.CharacterClass
	for _, class := range component.AllClasses {
		if _, ok := c.Roster.Lookup(class); ok {
			out = append(out, class)
		}
	}
	return out
}
