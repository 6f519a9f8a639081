package main

import (
	"fmt"
	"io"
	"log"

	"github.com/tidwall/sjson"

	"github.com/lixenwraith/ghost-arena/event"
	"github.com/lixenwraith/ghost-arena/game"
	"github.com/lixenwraith/ghost-arena/level"
	"github.com/lixenwraith/ghost-arena/parameter"
	"github.com/lixenwraith/ghost-arena/vmath"
)

// runHeadless plays a full match with seeded wandering input and writes the summary to w
// Each selection takes the first unused class, so the run is a pure function of seed and rules
func runHeadless(gc game.Config, lvl *level.Level, seed int64, w io.Writer, asJSON bool) (game.Outcome, error) {
	m, err := game.NewMatch(gc, lvl, game.NewRandomInput(uint64(seed), vmath.ToInt(lvl.Width)))
	if err != nil {
		return game.Outcome{}, err
	}

	router := event.NewRouter()
	tally := newEventTally()
	router.Register(tally)
	router.Register(&eventLogger{matchID: m.ID()})

	if err := m.Start(); err != nil {
		return game.Outcome{}, err
	}

	// Upper bound on ticks for every turn plus its countdown and end delay
	perTurn := gc.TurnTicks() +
		int(gc.CountdownStep/parameter.TickDuration+1)*gc.CountdownStart +
		int(gc.TurnEndDelay/parameter.TickDuration) + 2
	limit := perTurn * gc.Rounds * parameter.PlayerCount

	for ticks := 0; m.Stage() != game.StageFinished; {
		if m.Stage() == game.StageSelecting {
			opts := m.Options()
			if len(opts) == 0 {
				return game.Outcome{}, fmt.Errorf("no class left for player %d", m.State().ActivePlayer())
			}
			if err := m.Select(opts[0]); err != nil {
				return game.Outcome{}, err
			}
			router.Dispatch(m.Events())
			continue
		}
		if ticks >= limit {
			return game.Outcome{}, fmt.Errorf("match %s did not finish within %d ticks", m.ID(), limit)
		}
		m.Tick()
		ticks++
		router.Dispatch(m.Events())
	}

	res, _ := m.Result()
	if asJSON {
		doc, err := summaryJSON(m, res, tally)
		if err != nil {
			return game.Outcome{}, err
		}
		fmt.Fprintln(w, doc)
	} else {
		writeSummary(w, m, res, tally)
	}
	log.Printf("[match %s] headless run finished after %d ticks", m.ID(), m.Now())
	return res, nil
}

func writeSummary(w io.Writer, m *game.Match, res game.Outcome, tally *eventTally) {
	state := m.State()
	fmt.Fprintf(w, "match %s\n", m.ID())
	if res.Draw {
		fmt.Fprintf(w, "result: draw (%s)\n", res.Reason)
	} else {
		fmt.Fprintf(w, "result: player %d wins by %s\n", res.Winner, res.Reason)
	}
	fmt.Fprintf(w, "score: %d - %d\n", state.Score[0], state.Score[1])
	fmt.Fprintf(w, "final health: %d - %d\n", vmath.ToInt(state.FinalHealth[0]), vmath.ToInt(state.FinalHealth[1]))
	fmt.Fprintf(w, "shots: %d  hits: %d  kills: %d\n",
		tally.count(event.EventProjectileFired), tally.count(event.EventActorHit), tally.count(event.EventKill))
}

// summaryJSON builds the machine-readable match summary
func summaryJSON(m *game.Match, res game.Outcome, tally *eventTally) (string, error) {
	state := m.State()
	fields := []struct {
		path  string
		value any
	}{
		{"match_id", m.ID()},
		{"ticks", m.Now()},
		{"result.draw", res.Draw},
		{"result.winner", int(res.Winner)},
		{"result.reason", res.Reason},
		{"score", state.Score[:]},
		{"final_health", []float64{vmath.ToFloat(state.FinalHealth[0]), vmath.ToFloat(state.FinalHealth[1])}},
		{"events.shots", tally.count(event.EventProjectileFired)},
		{"events.hits", tally.count(event.EventActorHit)},
		{"events.kills", tally.count(event.EventKill)},
		{"turns", turnSummaries(state)},
	}

	doc := "{}"
	var err error
	for _, f := range fields {
		if doc, err = sjson.Set(doc, f.path, f.value); err != nil {
			return "", fmt.Errorf("summary %s: %w", f.path, err)
		}
	}
	return doc, nil
}

type turnSummary struct {
	Player int    `json:"player"`
	Round  int    `json:"round"`
	Class  string `json:"class"`
	Frames int    `json:"frames"`
	Died   bool   `json:"died"`
}

func turnSummaries(state game.GameState) []turnSummary {
	recs := state.AllRecordings()
	out := make([]turnSummary, 0, len(recs))
	for _, rec := range recs {
		out = append(out, turnSummary{
			Player: int(rec.Player),
			Round:  rec.Round,
			Class:  rec.Class.String(),
			Frames: rec.Len(),
			Died:   rec.Died(),
		})
	}
	return out
}
