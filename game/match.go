package game

import (
	"errors"
	"fmt"
	"log"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/lixenwraith/ghost-arena/combat"
	"github.com/lixenwraith/ghost-arena/component"
	"github.com/lixenwraith/ghost-arena/engine"
	"github.com/lixenwraith/ghost-arena/event"
	"github.com/lixenwraith/ghost-arena/level"
	"github.com/lixenwraith/ghost-arena/parameter"
	"github.com/lixenwraith/ghost-arena/physics"
	"github.com/lixenwraith/ghost-arena/replay"
	"github.com/lixenwraith/ghost-arena/status"
)

var (
	// ErrWrongStage is returned when an action does not fit the current stage
	ErrWrongStage = errors.New("game: wrong stage")

	// ErrCharacterUnavailable is returned for unknown or already used classes
	ErrCharacterUnavailable = errors.New("game: character unavailable")
)

// liveActorID is the live player's actor id, ghosts number from 1
const liveActorID component.ActorID = 0

// Match runs one two-player match from selection to the victory summary
// Not safe for concurrent use: Start, Select and Tick belong to the loop goroutine.
// Snapshot and Events results are copies and may be handed to other goroutines.
type Match struct {
	id    string
	cfg   Config
	lvl   *level.Level
	input InputSource

	state     GameState
	turnTicks int
	outcome   Outcome

	sched  *engine.Scheduler
	events *event.EventQueue
	reg    *status.Registry

	live        *component.Actor
	recorder    *replay.Recorder
	ghosts      []*replay.Ghost
	actors      []*component.Actor // Live first, then ghosts in spawn order
	projectiles []*component.Projectile

	// Cached metric pointers
	statTicks       *atomic.Int64
	statTurnTicks   *atomic.Int64
	statProjectiles *atomic.Int64
	statGhosts      *atomic.Int64
	statHits        *atomic.Int64
	statKills       *atomic.Int64
	statDropped     *atomic.Int64
	statStage       *status.AtomicString
}

// NewMatch validates the setup and returns a match in the loading stage
// A nil input source is treated as idle
func NewMatch(cfg Config, lvl *level.Level, input InputSource) (*Match, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("new match: %w", err)
	}
	if lvl == nil {
		return nil, errors.New("new match: nil level")
	}
	if err := lvl.Validate(); err != nil {
		return nil, fmt.Errorf("new match: %w", err)
	}
	if input == nil {
		input = IdleInput{}
	}
	if cfg.MatchID == "" {
		cfg.MatchID = uuid.NewString()
	}

	reg := status.NewRegistry()
	m := &Match{
		id:        cfg.MatchID,
		cfg:       cfg,
		lvl:       lvl,
		input:     input,
		turnTicks: cfg.TurnTicks(),
		sched:     engine.NewScheduler(),
		events:    event.NewEventQueue(),
		reg:       reg,

		statTicks:       reg.Ints.Get("match.ticks"),
		statTurnTicks:   reg.Ints.Get("match.turn_ticks"),
		statProjectiles: reg.Ints.Get("combat.projectiles"),
		statGhosts:      reg.Ints.Get("replay.ghosts_active"),
		statHits:        reg.Ints.Get("combat.hits"),
		statKills:       reg.Ints.Get("combat.kills"),
		statDropped:     reg.Ints.Get("event.dropped"),
		statStage:       reg.Strings.Get("match.stage"),
	}
	m.state.Round = 1
	reg.Strings.Get("match.id").Store(m.id)
	m.statStage.Store(StageLoading.String())
	return m, nil
}

// ID returns the match id
func (m *Match) ID() string { return m.id }

// Config returns the match rules
func (m *Match) Config() Config { return m.cfg }

// Level returns the arena
func (m *Match) Level() *level.Level { return m.lvl }

// Status returns the metric registry
func (m *Match) Status() *status.Registry { return m.reg }

// State returns a copy of the match-wide state
func (m *Match) State() GameState { return m.state }

// Stage returns the current stage
func (m *Match) Stage() Stage { return m.state.Stage }

// Now returns the match tick
func (m *Match) Now() uint64 { return m.sched.Now() }

// Start leaves loading and offers the first selection
func (m *Match) Start() error {
	if m.state.Stage != StageLoading {
		return fmt.Errorf("%w: start during %s", ErrWrongStage, m.state.Stage)
	}
	log.Printf("[match %s] started: %d rounds, %v turns", m.id, m.cfg.Rounds, m.cfg.TurnDuration)
	m.enterSelecting()
	return nil
}

// Options returns the classes the active player may still select
func (m *Match) Options() []component.CharacterClass {
	active := m.state.ActivePlayer()
	var out []component.CharacterClass
	for _, class := range m.cfg.offered() {
		if !m.state.HasUsed(active, class) {
			out = append(out, class)
		}
	}
	return out
}

// Select picks the active player's class and starts the countdown
func (m *Match) Select(class component.CharacterClass) error {
	if m.state.Stage != StageSelecting {
		return fmt.Errorf("%w: select during %s", ErrWrongStage, m.state.Stage)
	}
	available := false
	for _, c := range m.Options() {
		if c == class {
			available = true
			break
		}
	}
	if !available {
		return fmt.Errorf("%w: %s", ErrCharacterUnavailable, class)
	}

	slot := Slot(m.state.ActivePlayer())
	m.state.Used[slot] = append(m.state.Used[slot], class)
	m.state.Class = class
	m.setStage(StageCountingDown)
	m.startCountdown()
	return nil
}

// SelectKey resolves a character key and selects it, unknown keys are unavailable
func (m *Match) SelectKey(key string) error {
	class, ok := component.ParseCharacterClass(key)
	if !ok {
		if m.state.Stage != StageSelecting {
			return fmt.Errorf("%w: select during %s", ErrWrongStage, m.state.Stage)
		}
		return fmt.Errorf("%w: unknown key %q", ErrCharacterUnavailable, key)
	}
	return m.Select(class)
}

// Tick runs one fixed simulation step
// Due scheduled events fire first, so GO enters playing and simulates on the same tick
func (m *Match) Tick() {
	m.sched.Tick()
	m.statTicks.Store(int64(m.sched.Now()))
	m.statDropped.Store(int64(m.events.Dropped()))
	if m.state.Stage == StagePlaying {
		m.playTick()
	}
}

// startCountdown emits the first value and arms the rest on the scheduler
func (m *Match) startCountdown() {
	n := m.cfg.CountdownStart
	m.showCountdown(n)
	for i := 1; i <= n; i++ {
		value := n - i
		m.sched.After(time.Duration(i)*m.cfg.CountdownStep, fmt.Sprintf("countdown-%d", value), func() {
			m.showCountdown(value)
			if value == 0 {
				m.beginTurn()
			}
		})
	}
	if n == 0 {
		m.beginTurn()
	}
}

func (m *Match) showCountdown(value int) {
	m.state.Countdown = value
	m.emit(event.EventCountdown, &event.CountdownPayload{Value: value})
}

// enterSelecting offers the active player its unused classes
func (m *Match) enterSelecting() {
	m.setStage(StageSelecting)
	m.emit(event.EventCharacterChoices, &event.CharacterChoicesPayload{
		Player:  m.state.ActivePlayer(),
		Round:   m.state.Round,
		Options: m.Options(),
	})
}

// beginTurn spawns the live actor and the visible ghosts, then enters playing
func (m *Match) beginTurn() {
	player := m.state.ActivePlayer()
	spawn, _ := m.lvl.Spawn(player)
	stats, _ := m.cfg.Roster.Lookup(m.state.Class)

	m.live = component.NewActor(liveActorID, component.ActorLive, player, m.state.Class, stats, spawn.X, spawn.Y)
	m.recorder = replay.NewRecorder(player, m.state.Class, stats, m.state.Round, spawn.X, spawn.Y)

	visible := m.VisibleRecordings()
	m.ghosts = make([]*replay.Ghost, 0, len(visible))
	m.actors = make([]*component.Actor, 0, len(visible)+1)
	m.actors = append(m.actors, m.live)
	for i, rec := range visible {
		g := replay.NewGhost(component.ActorID(i+1), rec, m.lvl)
		m.ghosts = append(m.ghosts, g)
		m.actors = append(m.actors, g.Actor)
	}
	m.projectiles = m.projectiles[:0]
	m.state.TurnTick = 0

	m.setStage(StagePlaying)
	m.statGhosts.Store(int64(m.activeGhosts()))
	m.emit(event.EventTurnStarted, &event.TurnStartedPayload{
		Player:   player,
		Round:    m.state.Round,
		Class:    m.state.Class,
		Ghosts:   len(m.ghosts),
		Duration: m.cfg.TurnDuration,
	})
	log.Printf("[match %s] round %d player %d started as %s against %d ghosts",
		m.id, m.state.Round, player, m.state.Class, len(m.ghosts))
}

// playTick is one playing step: input, physics, fire, ghosts, overlap, projectiles, hits, capture
func (m *Match) playTick() {
	dt := parameter.TickDuration
	frameTime := time.Duration(m.state.TurnTick) * dt

	in := m.input.Poll().Normalized()
	physics.AdvanceActor(m.live, in, m.lvl, dt)
	if spec, ok := combat.Fire(m.live, in); ok {
		if err := m.recorder.RecordProjectileEvent(spec); err != nil {
			log.Printf("[match %s] record projectile: %v", m.id, err)
		}
		m.spawnProjectile(spec, m.live.Player, false)
	}

	for _, g := range m.ghosts {
		for _, spec := range g.Step(dt) {
			m.spawnProjectile(spec, g.Actor.Player, true)
		}
	}

	physics.ResolveActorOverlap(m.actors, m.lvl)
	for _, p := range m.projectiles {
		physics.AdvanceProjectile(p, m.lvl, dt)
	}
	combat.ResolveHits(m.projectiles, m.actors, m)
	m.compactProjectiles()

	if err := m.recorder.CaptureFrame(frameTime, in, m.live); err != nil {
		log.Printf("[match %s] capture frame: %v", m.id, err)
	}
	m.state.TurnTick++

	m.statTurnTicks.Store(int64(m.state.TurnTick))
	m.statProjectiles.Store(int64(len(m.projectiles)))
	m.statGhosts.Store(int64(m.activeGhosts()))

	if !m.live.Alive || m.state.TurnTick >= m.turnTicks {
		m.endTurn()
	}
}

func (m *Match) spawnProjectile(spec component.ProjectileSpec, owner component.PlayerID, ghost bool) {
	p := component.NewProjectile(spec, owner)
	m.projectiles = append(m.projectiles, p)
	m.emit(event.EventProjectileFired, &event.ProjectileFiredPayload{
		Owner: owner,
		Kind:  p.Kind,
		X:     p.X,
		Y:     p.Y,
		Ghost: ghost,
	})
}

// compactProjectiles drops dead projectiles in place, order preserved
func (m *Match) compactProjectiles() {
	kept := m.projectiles[:0]
	for _, p := range m.projectiles {
		if p.Alive {
			kept = append(kept, p)
		}
	}
	for i := len(kept); i < len(m.projectiles); i++ {
		m.projectiles[i] = nil
	}
	m.projectiles = kept
}

// endTurn seals the recording and tears the turn down
// Nothing from this turn runs after it: ghosts, projectiles and armed events are dropped
func (m *Match) endTurn() {
	player := m.state.ActivePlayer()
	slot := Slot(player)
	died := !m.live.Alive

	rec := m.recorder.Finish(time.Duration(m.state.TurnTick)*parameter.TickDuration, died)
	m.state.Recordings[slot] = append(m.state.Recordings[slot], rec)
	m.state.FinalHealth[slot] = m.live.Health

	m.ghosts = nil
	m.actors = nil
	m.projectiles = nil
	m.sched.Clear()
	m.statGhosts.Store(0)
	m.statProjectiles.Store(0)

	m.setStage(StageTurnEnding)
	m.emit(event.EventTurnEnded, &event.TurnEndedPayload{
		Player:      player,
		Round:       m.state.Round,
		Class:       m.state.Class,
		Died:        died,
		FinalHealth: m.live.Health,
		Frames:      rec.Len(),
	})
	log.Printf("[match %s] round %d player %d ended: died=%v frames=%d score=%v",
		m.id, m.state.Round, player, died, rec.Len(), m.state.Score)

	m.sched.After(m.cfg.TurnEndDelay, "turn-end", m.advanceTurn)
}

// advanceTurn moves to the next player, the next round, or the end of the match
func (m *Match) advanceTurn() {
	if m.state.Turn == 0 {
		m.state.Turn = 1
		m.enterSelecting()
		return
	}
	if m.state.Round >= m.cfg.Rounds {
		m.finish()
		return
	}
	m.state.Turn = 0
	m.state.Round++
	m.emit(event.EventRoundAdvanced, &event.RoundAdvancedPayload{Round: m.state.Round})
	m.enterSelecting()
}

func (m *Match) finish() {
	m.outcome = DecideWinner(m.state.Score, m.state.FinalHealth)
	m.setStage(StageFinished)
	m.emit(event.EventMatchFinished, &event.MatchFinishedPayload{
		MatchID:     m.id,
		Winner:      m.outcome.Winner,
		Draw:        m.outcome.Draw,
		Reason:      m.outcome.Reason,
		Scores:      m.state.Score,
		FinalHealth: m.state.FinalHealth,
	})
	log.Printf("[match %s] finished: winner=%d draw=%v reason=%s score=%v",
		m.id, m.outcome.Winner, m.outcome.Draw, m.outcome.Reason, m.state.Score)
}

// Result returns the outcome, false until the match is finished
func (m *Match) Result() (Outcome, bool) {
	if m.state.Stage != StageFinished {
		return Outcome{}, false
	}
	return m.outcome, true
}

// VisibleRecordings returns the recordings replayed as ghosts in the current turn
func (m *Match) VisibleRecordings() []*replay.Recording {
	return FilterVisible(m.state.AllRecordings(), m.state.ActivePlayer(), m.state.Round)
}

// Events drains pending lifecycle notifications
func (m *Match) Events() []event.GameEvent {
	return m.events.Consume()
}

func (m *Match) activeGhosts() int {
	n := 0
	for _, g := range m.ghosts {
		if !g.Done() {
			n++
		}
	}
	return n
}

func (m *Match) setStage(s Stage) {
	m.state.Stage = s
	m.statStage.Store(s.String())
}

func (m *Match) emit(t event.EventType, payload any) {
	m.events.Push(event.GameEvent{Type: t, Payload: payload, Tick: m.sched.Now()})
}

// OnHit implements combat.Sink
func (m *Match) OnHit(h combat.Hit) {
	m.statHits.Add(1)
	m.emit(event.EventActorHit, &event.ActorHitPayload{
		Attacker:     h.Attacker,
		Victim:       h.Victim,
		VictimPlayer: h.VictimPlayer,
		VictimKind:   h.VictimKind,
		Kind:         h.Kind,
		Amount:       h.Amount,
		Killed:       h.Killed,
	})
}

// OnKill implements combat.Sink, awarding score to the attacker
func (m *Match) OnKill(k combat.Kill) {
	if !combat.Scores(k.Attacker, k.VictimPlayer) {
		return
	}
	slot := Slot(k.Attacker)
	m.state.Score[slot] += parameter.KillScore
	m.statKills.Add(1)
	m.emit(event.EventKill, &event.KillPayload{
		Attacker:     k.Attacker,
		VictimPlayer: k.VictimPlayer,
		VictimKind:   k.VictimKind,
		Score:        m.state.Score[slot],
	})
}

// OnExplosion implements combat.Sink
func (m *Match) OnExplosion(x, y, radius int64, owner component.PlayerID) {
	m.emit(event.EventExplosion, &event.ExplosionPayload{Owner: owner, X: x, Y: y, Radius: radius})
}
