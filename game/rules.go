package game

import (
	"github.com/lixenwraith/ghost-arena/component"
	"github.com/lixenwraith/ghost-arena/replay"
)

// Visible reports whether a recording replays as a ghost in the turn of (active, round)
// Earlier rounds of both players are visible, plus the other player's turn of this round
func Visible(rec *replay.Recording, active component.PlayerID, round int) bool {
	return rec.Round < round || (rec.Round == round && rec.Player != active)
}

// FilterVisible keeps the recordings visible in the turn of (active, round), order preserved
func FilterVisible(recs []*replay.Recording, active component.PlayerID, round int) []*replay.Recording {
	var out []*replay.Recording
	for _, rec := range recs {
		if Visible(rec, active, round) {
			out = append(out, rec)
		}
	}
	return out
}

// Outcome is the final match result
type Outcome struct {
	Winner component.PlayerID // PlayerNone on draw
	Draw   bool
	Reason string
}

// Win reasons
const (
	ReasonScore  = "score"
	ReasonHealth = "health"
	ReasonDraw   = "draw"
)

// DecideWinner ranks by kill score, then by stored final health, else draw
func DecideWinner(score [2]int, finalHealth [2]int64) Outcome {
	switch {
	case score[0] > score[1]:
		return Outcome{Winner: component.Player1, Reason: ReasonScore}
	case score[1] > score[0]:
		return Outcome{Winner: component.Player2, Reason: ReasonScore}
	case finalHealth[0] > finalHealth[1]:
		return Outcome{Winner: component.Player1, Reason: ReasonHealth}
	case finalHealth[1] > finalHealth[0]:
		return Outcome{Winner: component.Player2, Reason: ReasonHealth}
	default:
		return Outcome{Draw: true, Reason: ReasonDraw}
	}
}
