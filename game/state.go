package game

import (
	"github.com/lixenwraith/ghost-arena/component"
	"github.com/lixenwraith/ghost-arena/replay"
)

// Stage is the turn/round state machine position
type Stage uint8

const (
	StageLoading Stage = iota
	StageSelecting
	StageCountingDown
	StagePlaying
	StageTurnEnding
	StageFinished
)

func (s Stage) String() string {
	switch s {
	case StageLoading:
		return "loading"
	case StageSelecting:
		return "selecting"
	case StageCountingDown:
		return "counting-down"
	case StagePlaying:
		return "playing"
	case StageTurnEnding:
		return "turn-ending"
	case StageFinished:
		return "finished"
	default:
		return "unknown"
	}
}

// GameState is the match-wide state owned by the Match
// Per-player arrays are indexed by Slot(player)
type GameState struct {
	Stage Stage
	Round int // 1..Rounds
	Turn  int // 0 = player 1, 1 = player 2

	Class     component.CharacterClass // Class picked for the current turn
	Countdown int                      // Last countdown value shown
	TurnTick  int                      // Ticks simulated in the current turn

	Used        [2][]component.CharacterClass
	Recordings  [2][]*replay.Recording
	Score       [2]int
	FinalHealth [2]int64
}

// Slot maps a player to its index in per-player arrays
func Slot(p component.PlayerID) int {
	if p == component.Player2 {
		return 1
	}
	return 0
}

// ActivePlayer returns the player whose turn it is
func (s GameState) ActivePlayer() component.PlayerID {
	if s.Turn == 1 {
		return component.Player2
	}
	return component.Player1
}

// HasUsed reports whether a player already played a class this match
func (s GameState) HasUsed(p component.PlayerID, class component.CharacterClass) bool {
	for _, c := range s.Used[Slot(p)] {
		if c == class {
			return true
		}
	}
	return false
}

// AllRecordings returns every finished recording, ordered by round then player
func (s GameState) AllRecordings() []*replay.Recording {
	var out []*replay.Recording
	for round := 1; ; round++ {
		found := false
		for slot := range s.Recordings {
			for _, rec := range s.Recordings[slot] {
				if rec.Round == round {
					out = append(out, rec)
					found = true
				}
			}
		}
		if !found {
			return out
		}
	}
}
