package parameter

import "time"

// Match Structure
const (
	// PlayerCount is the number of competitors
	PlayerCount = 2

	// TotalRounds is the number of rounds, each player takes one turn per round
	TotalRounds = 3

	// TurnDuration is the live play clock of a single turn
	TurnDuration = 60 * time.Second

	// TurnTicks is TurnDuration expressed in simulation ticks
	TurnTicks = int(TurnDuration / TickDuration)
)

// Countdown & Transitions
const (
	// CountdownStart is the first number shown before a turn (3-2-1-GO)
	CountdownStart = 3

	// CountdownStep is the delay between countdown values
	CountdownStep = 1 * time.Second

	// TurnEndDelay is the pause in turn-ending before the next selection
	TurnEndDelay = 1500 * time.Millisecond
)
