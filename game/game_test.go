package game

import (
	"errors"
	"io"
	"log"
	"os"
	"testing"
	"time"

	"github.com/lixenwraith/ghost-arena/combat"
	"github.com/lixenwraith/ghost-arena/component"
	"github.com/lixenwraith/ghost-arena/engine"
	"github.com/lixenwraith/ghost-arena/event"
	"github.com/lixenwraith/ghost-arena/level"
	"github.com/lixenwraith/ghost-arena/replay"
	"github.com/lixenwraith/ghost-arena/vmath"
)

func TestMain(m *testing.M) {
	log.SetOutput(io.Discard)
	os.Exit(m.Run())
}

func testConfig() Config {
	cfg := DefaultConfig()
	cfg.MatchID = "test-match"
	cfg.TurnDuration = time.Second
	cfg.TurnEndDelay = 0
	return cfg
}

func newTestMatch(t *testing.T, cfg Config, lvl *level.Level, input InputSource) *Match {
	t.Helper()
	m, err := NewMatch(cfg, lvl, input)
	if err != nil {
		t.Fatalf("NewMatch failed: %v", err)
	}
	return m
}

// tickUntil ticks until the stage is reached, returning the tick count
func tickUntil(t *testing.T, m *Match, stage Stage, limit int) int {
	t.Helper()
	for i := 0; i < limit; i++ {
		if m.Stage() == stage {
			return i
		}
		m.Tick()
	}
	if m.Stage() != stage {
		t.Fatalf("Expected stage %s within %d ticks, still %s", stage, limit, m.Stage())
	}
	return limit
}

func eventsOf(evs []event.GameEvent, t event.EventType) []event.GameEvent {
	var out []event.GameEvent
	for _, ev := range evs {
		if ev.Type == t {
			out = append(out, ev)
		}
	}
	return out
}

func TestVisibilityMatrix(t *testing.T) {
	p1r1 := &replay.Recording{Player: component.Player1, Round: 1}
	p2r1 := &replay.Recording{Player: component.Player2, Round: 1}
	p1r2 := &replay.Recording{Player: component.Player1, Round: 2}
	p2r2 := &replay.Recording{Player: component.Player2, Round: 2}

	tests := []struct {
		name     string
		recs     []*replay.Recording
		active   component.PlayerID
		round    int
		expected []*replay.Recording
	}{
		{"round 1 player 1", nil, component.Player1, 1, nil},
		{"round 1 player 2", []*replay.Recording{p1r1}, component.Player2, 1, []*replay.Recording{p1r1}},
		{"round 2 player 1", []*replay.Recording{p1r1, p2r1}, component.Player1, 2, []*replay.Recording{p1r1, p2r1}},
		{"round 2 player 2", []*replay.Recording{p1r1, p2r1, p1r2}, component.Player2, 2, []*replay.Recording{p1r1, p2r1, p1r2}},
		{"own current round excluded", []*replay.Recording{p1r1, p2r1, p1r2, p2r2}, component.Player2, 2, []*replay.Recording{p1r1, p2r1, p1r2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterVisible(tt.recs, tt.active, tt.round)
			if len(got) != len(tt.expected) {
				t.Fatalf("Expected %d recordings, got %d", len(tt.expected), len(got))
			}
			for i := range got {
				if got[i] != tt.expected[i] {
					t.Errorf("Recording %d: expected player %d round %d, got player %d round %d",
						i, tt.expected[i].Player, tt.expected[i].Round, got[i].Player, got[i].Round)
				}
			}
		})
	}
}

func TestDecideWinner(t *testing.T) {
	tests := []struct {
		name   string
		score  [2]int
		health [2]int64
		winner component.PlayerID
		draw   bool
		reason string
	}{
		{"score wins", [2]int{3, 1}, [2]int64{0, 100}, component.Player1, false, ReasonScore},
		{"score wins p2", [2]int{0, 1}, [2]int64{100, 0}, component.Player2, false, ReasonScore},
		{"health tie-break", [2]int{2, 2}, [2]int64{vmath.FromInt(40), vmath.FromInt(10)}, component.Player1, false, ReasonHealth},
		{"health tie-break p2", [2]int{2, 2}, [2]int64{vmath.FromInt(5), vmath.FromInt(10)}, component.Player2, false, ReasonHealth},
		{"draw", [2]int{2, 2}, [2]int64{vmath.FromInt(40), vmath.FromInt(40)}, component.PlayerNone, true, ReasonDraw},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DecideWinner(tt.score, tt.health)
			if got.Winner != tt.winner || got.Draw != tt.draw || got.Reason != tt.reason {
				t.Errorf("Expected %d/%v/%s, got %d/%v/%s", tt.winner, tt.draw, tt.reason, got.Winner, got.Draw, got.Reason)
			}
		})
	}
}

func TestNewMatchFailsFast(t *testing.T) {
	lvl := level.Generate(1)
	lvl.Spawns = lvl.Spawns[:1]
	if _, err := NewMatch(testConfig(), lvl, nil); !errors.Is(err, level.ErrNoSpawn) {
		t.Errorf("Expected ErrNoSpawn, got %v", err)
	}

	cfg := testConfig()
	cfg.Rounds = 4
	if _, err := NewMatch(cfg, level.Generate(1), nil); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("Expected ErrInvalidConfig for more rounds than classes, got %v", err)
	}

	if _, err := NewMatch(testConfig(), nil, nil); err == nil {
		t.Error("Expected error for nil level")
	}
}

func TestCountdownRunsOnScheduler(t *testing.T) {
	m := newTestMatch(t, testConfig(), level.Generate(1), nil)
	if err := m.Start(); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	if m.Stage() != StageSelecting {
		t.Fatalf("Expected selecting, got %s", m.Stage())
	}
	choices := eventsOf(m.Events(), event.EventCharacterChoices)
	if len(choices) != 1 || len(choices[0].Payload.(*event.CharacterChoicesPayload).Options) != 3 {
		t.Fatal("Expected one choice event offering 3 classes")
	}

	if err := m.Select(component.ClassRanger); err != nil {
		t.Fatalf("Select failed: %v", err)
	}
	if m.Stage() != StageCountingDown {
		t.Fatalf("Expected counting-down, got %s", m.Stage())
	}

	goTick := int(engine.TicksFor(3 * time.Second))
	for i := 1; i < goTick; i++ {
		m.Tick()
	}
	if m.Stage() != StageCountingDown {
		t.Fatalf("Expected still counting down at tick %d, got %s", goTick-1, m.Stage())
	}
	m.Tick()
	if m.Stage() != StagePlaying {
		t.Fatalf("Expected playing on tick %d, got %s", goTick, m.Stage())
	}

	evs := m.Events()
	var values []int
	for _, ev := range eventsOf(evs, event.EventCountdown) {
		values = append(values, ev.Payload.(*event.CountdownPayload).Value)
	}
	if len(values) != 4 || values[0] != 3 || values[1] != 2 || values[2] != 1 || values[3] != 0 {
		t.Errorf("Expected countdown [3 2 1 0], got %v", values)
	}
	if started := eventsOf(evs, event.EventTurnStarted); len(started) != 1 {
		t.Errorf("Expected one TurnStarted, got %d", len(started))
	}
}

func TestSelectErrors(t *testing.T) {
	cfg := testConfig()
	cfg.CountdownStart = 0
	m := newTestMatch(t, cfg, level.Generate(2), nil)

	if err := m.Select(component.ClassRanger); !errors.Is(err, ErrWrongStage) {
		t.Errorf("Expected ErrWrongStage before start, got %v", err)
	}
	m.Start()
	if err := m.Start(); !errors.Is(err, ErrWrongStage) {
		t.Errorf("Expected ErrWrongStage on second start, got %v", err)
	}
	if err := m.SelectKey("paladin"); !errors.Is(err, ErrCharacterUnavailable) {
		t.Errorf("Expected ErrCharacterUnavailable for unknown key, got %v", err)
	}
	if err := m.SelectKey("Wizard"); err != nil {
		t.Fatalf("SelectKey failed: %v", err)
	}
	if err := m.Select(component.ClassRanger); !errors.Is(err, ErrWrongStage) {
		t.Errorf("Expected ErrWrongStage while playing, got %v", err)
	}

	// Finish player 1 and player 2 turns of round 1
	tickUntil(t, m, StageSelecting, 200)
	if err := m.Select(component.ClassWizard); err != nil {
		t.Fatalf("Player 2 must be able to pick a class player 1 used: %v", err)
	}
	tickUntil(t, m, StageSelecting, 200)

	if m.State().Round != 2 || m.State().ActivePlayer() != component.Player1 {
		t.Fatalf("Expected round 2 player 1, got round %d player %d", m.State().Round, m.State().ActivePlayer())
	}
	if err := m.Select(component.ClassWizard); !errors.Is(err, ErrCharacterUnavailable) {
		t.Errorf("Expected ErrCharacterUnavailable for a used class, got %v", err)
	}
	if opts := m.Options(); len(opts) != 2 {
		t.Errorf("Expected 2 remaining options, got %v", opts)
	}
}

func TestFullIdleMatch(t *testing.T) {
	m := newTestMatch(t, testConfig(), level.Generate(9), IdleInput{})
	m.Start()

	var ghostCounts []int
	for i := 0; i < 10000 && m.Stage() != StageFinished; i++ {
		if m.Stage() == StageSelecting {
			if err := m.Select(m.Options()[0]); err != nil {
				t.Fatalf("Select failed: %v", err)
			}
			continue
		}
		m.Tick()
		for _, ev := range eventsOf(m.Events(), event.EventTurnStarted) {
			ghostCounts = append(ghostCounts, ev.Payload.(*event.TurnStartedPayload).Ghosts)
		}
	}

	if m.Stage() != StageFinished {
		t.Fatalf("Expected finished match, got %s", m.Stage())
	}
	expected := []int{0, 1, 2, 3, 4, 5}
	if len(ghostCounts) != len(expected) {
		t.Fatalf("Expected %d turns, got %v", len(expected), ghostCounts)
	}
	for i := range expected {
		if ghostCounts[i] != expected[i] {
			t.Errorf("Turn %d: expected %d ghosts, got %d", i, expected[i], ghostCounts[i])
		}
	}

	state := m.State()
	for slot := 0; slot < 2; slot++ {
		if len(state.Recordings[slot]) != 3 {
			t.Errorf("Player slot %d: expected 3 recordings, got %d", slot, len(state.Recordings[slot]))
		}
		for _, rec := range state.Recordings[slot] {
			if rec.Len() != m.Config().TurnTicks() || rec.Died() {
				t.Errorf("Expected full-length survivor recording, got %d frames died=%v", rec.Len(), rec.Died())
			}
		}
	}

	out, ok := m.Result()
	if !ok {
		t.Fatal("Expected a result")
	}
	if !out.Draw || out.Winner != component.PlayerNone {
		t.Errorf("Expected draw for identical idle turns, got %+v", out)
	}
}

func TestResultUnavailableBeforeFinish(t *testing.T) {
	m := newTestMatch(t, testConfig(), level.Generate(1), nil)
	if _, ok := m.Result(); ok {
		t.Error("Expected no result before finish")
	}
}

func TestDeathEndsTurnEarly(t *testing.T) {
	cfg := testConfig()
	cfg.CountdownStart = 0
	m := newTestMatch(t, cfg, level.Generate(4), nil)
	m.Start()
	m.Select(component.ClassWarrior)

	for i := 0; i < 10; i++ {
		m.Tick()
	}
	m.live.Health = 0
	m.live.Alive = false
	m.Tick()

	if m.Stage() != StageTurnEnding {
		t.Fatalf("Expected turn-ending after death, got %s", m.Stage())
	}
	rec := m.State().Recordings[0][0]
	if !rec.Died() || rec.DeathFrame != 10 {
		t.Errorf("Expected death stamped on frame 10, got %d", rec.DeathFrame)
	}
	if m.State().FinalHealth[0] != 0 {
		t.Errorf("Expected final health 0, got %v", vmath.ToFloat(m.State().FinalHealth[0]))
	}
	ended := eventsOf(m.Events(), event.EventTurnEnded)
	if len(ended) != 1 || !ended[0].Payload.(*event.TurnEndedPayload).Died {
		t.Error("Expected TurnEnded with died flag")
	}

	m.Tick()
	if m.Stage() != StageSelecting || m.State().ActivePlayer() != component.Player2 {
		t.Errorf("Expected player 2 selecting, got %s for player %d", m.Stage(), m.State().ActivePlayer())
	}
}

func TestOnKillScoring(t *testing.T) {
	m := newTestMatch(t, testConfig(), level.Generate(1), nil)

	m.OnKill(combat.Kill{Attacker: component.Player2, VictimPlayer: component.Player1, VictimKind: component.ActorGhost})
	m.OnKill(combat.Kill{Attacker: component.Player1, VictimPlayer: component.Player1})
	m.OnKill(combat.Kill{Attacker: component.PlayerNone, VictimPlayer: component.Player2})

	if s := m.State().Score; s[0] != 0 || s[1] != 1 {
		t.Errorf("Expected score [0 1], got %v", s)
	}
	if kills := eventsOf(m.Events(), event.EventKill); len(kills) != 1 {
		t.Errorf("Expected 1 kill event, got %d", len(kills))
	}
}

// duelLevel is flat ground with spawns within shot range
func duelLevel() *level.Level {
	return &level.Level{
		Width:     vmath.FromInt(1500),
		Height:    vmath.FromInt(960),
		Platforms: []vmath.Rect{vmath.RectFromInts(0, 888, 1500, 72)},
		Spawns: []level.SpawnPoint{
			{X: vmath.FromInt(200), Y: vmath.FromInt(820), Player: component.Player1},
			{X: vmath.FromInt(900), Y: vmath.FromInt(820), Player: component.Player2},
		},
	}
}

func TestGhostShotsKillLivePlayer(t *testing.T) {
	cfg := testConfig()
	cfg.CountdownStart = 0
	cfg.TurnDuration = 5 * time.Second

	var m *Match
	input := InputFunc(func() component.Input {
		// Player 1 holds fire facing right, player 2 stands still
		if m.State().ActivePlayer() == component.Player1 {
			return component.Input{Fire: true}
		}
		return component.Input{}
	})
	m = newTestMatch(t, cfg, duelLevel(), input)
	m.Start()

	m.Select(component.ClassRanger)
	tickUntil(t, m, StageSelecting, 400)
	if m.State().Score[0] != 0 {
		t.Fatal("Expected no score without an opponent on the field")
	}
	m.Events()

	m.Select(component.ClassRanger)
	ticks := tickUntil(t, m, StageTurnEnding, 400)
	if ticks >= cfg.TurnTicks() {
		t.Errorf("Expected turn to end early by death, took %d ticks", ticks)
	}

	state := m.State()
	if state.Score[0] != 1 {
		t.Errorf("Expected player 1 to score the kill through its ghost, got %v", state.Score)
	}
	if state.FinalHealth[1] != 0 {
		t.Errorf("Expected player 2 final health 0, got %v", vmath.ToFloat(state.FinalHealth[1]))
	}
	if !state.Recordings[1][0].Died() {
		t.Error("Expected player 2 recording to carry a death frame")
	}

	evs := m.Events()
	hits := eventsOf(evs, event.EventActorHit)
	if len(hits) != 2 {
		t.Fatalf("Expected 2 hits to kill a ranger, got %d", len(hits))
	}
	for _, h := range hits {
		p := h.Payload.(*event.ActorHitPayload)
		if p.Attacker != component.Player1 || p.VictimKind != component.ActorLive {
			t.Errorf("Unexpected hit attribution %+v", p)
		}
	}
	fired := eventsOf(evs, event.EventProjectileFired)
	if len(fired) == 0 || !fired[0].Payload.(*event.ProjectileFiredPayload).Ghost {
		t.Error("Expected ghost projectile events")
	}
}

func TestSnapshotIsDetached(t *testing.T) {
	cfg := testConfig()
	cfg.CountdownStart = 0
	m := newTestMatch(t, cfg, duelLevel(), InputFunc(func() component.Input {
		return component.Input{Fire: true, MoveRight: true}
	}))
	m.Start()
	m.Select(component.ClassWizard)
	m.Tick()

	snap := m.Snapshot()
	if snap.Live == nil || len(snap.Projectiles) != 1 {
		t.Fatalf("Expected live actor and one bomb, got %+v", snap)
	}
	if snap.HUD.Stage != StagePlaying || snap.HUD.Round != 1 || snap.HUD.Active != component.Player1 {
		t.Errorf("Unexpected HUD %+v", snap.HUD)
	}
	if snap.HUD.TimeLeft >= cfg.TurnDuration {
		t.Errorf("Expected turn clock running, got %v", snap.HUD.TimeLeft)
	}

	snap.Live.X = 0
	snap.Projectiles[0].Bomb.Exploding = true
	if m.live.X == 0 || m.projectiles[0].Bomb.Exploding {
		t.Error("Expected snapshot mutations not to reach the match")
	}
}
