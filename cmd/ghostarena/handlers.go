package main

import (
	"log"

	"github.com/lixenwraith/ghost-arena/event"
	"github.com/lixenwraith/ghost-arena/input"
)

// eventTally counts events per type
type eventTally struct {
	counts map[event.EventType]int
}

func newEventTally() *eventTally {
	return &eventTally{counts: make(map[event.EventType]int)}
}

func (t *eventTally) HandleEvent(ev event.GameEvent) { t.counts[ev.Type]++ }

func (t *eventTally) EventTypes() []event.EventType {
	return []event.EventType{event.EventProjectileFired, event.EventActorHit, event.EventKill}
}

func (t *eventTally) count(et event.EventType) int { return t.counts[et] }

// eventLogger writes combat and scoring events to the debug log
type eventLogger struct {
	matchID string
}

func (l *eventLogger) HandleEvent(ev event.GameEvent) {
	switch p := ev.Payload.(type) {
	case *event.KillPayload:
		log.Printf("[match %s] tick %d: player %d scored, now %d", l.matchID, ev.Tick, p.Attacker, p.Score)
	case *event.ExplosionPayload:
		log.Printf("[match %s] tick %d: explosion by player %d", l.matchID, ev.Tick, p.Owner)
	case *event.MatchFinishedPayload:
		log.Printf("[match %s] finished: winner=%d draw=%v reason=%s", l.matchID, p.Winner, p.Draw, p.Reason)
	}
}

func (l *eventLogger) EventTypes() []event.EventType {
	return []event.EventType{event.EventKill, event.EventExplosion, event.EventMatchFinished}
}

// inputReleaser drops held keys when a turn ends so they do not leak into the next one
type inputReleaser struct {
	tracker *input.Tracker
}

func (r *inputReleaser) HandleEvent(event.GameEvent) { r.tracker.Release() }

func (r *inputReleaser) EventTypes() []event.EventType {
	return []event.EventType{event.EventTurnEnded}
}
