package event

// EventType identifies a lifecycle notification emitted by a match
type EventType int

const (
	// EventCharacterChoices offers the active player its unused classes
	// Trigger: selecting stage entered | Payload: *CharacterChoicesPayload
	EventCharacterChoices EventType = iota

	// EventCountdown shows a countdown value, 0 is GO
	// Trigger: scheduler during counting-down | Payload: *CountdownPayload
	EventCountdown

	// EventTurnStarted marks the start of live play
	// Trigger: GO | Payload: *TurnStartedPayload
	EventTurnStarted

	// EventProjectileFired reports a spawned projectile, live or ghost
	// Payload: *ProjectileFiredPayload
	EventProjectileFired

	// EventExplosion reports a bomb detonation
	// Payload: *ExplosionPayload
	EventExplosion

	// EventActorHit reports damage dealt to an actor
	// Payload: *ActorHitPayload
	EventActorHit

	// EventKill reports a scoring kill
	// Payload: *KillPayload
	EventKill

	// EventTurnEnded reports the sealed turn
	// Trigger: death or turn clock expiry | Payload: *TurnEndedPayload
	EventTurnEnded

	// EventRoundAdvanced reports the start of a new round
	// Payload: *RoundAdvancedPayload
	EventRoundAdvanced

	// EventMatchFinished carries the victory summary
	// Payload: *MatchFinishedPayload
	EventMatchFinished
)

var typeNames = map[EventType]string{
	EventCharacterChoices: "CharacterChoices",
	EventCountdown:        "Countdown",
	EventTurnStarted:      "TurnStarted",
	EventProjectileFired:  "ProjectileFired",
	EventExplosion:        "Explosion",
	EventActorHit:         "ActorHit",
	EventKill:             "Kill",
	EventTurnEnded:        "TurnEnded",
	EventRoundAdvanced:    "RoundAdvanced",
	EventMatchFinished:    "MatchFinished",
}

func (t EventType) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return "Unknown"
}

// GameEvent is a one-way notification toward presentation sinks
type GameEvent struct {
	Type    EventType
	Payload any
	Tick    uint64 // Match tick at emission
}
