package main

import (
	"fmt"
	"log"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/ghost-arena/audio"
	"github.com/lixenwraith/ghost-arena/engine"
	"github.com/lixenwraith/ghost-arena/event"
	"github.com/lixenwraith/ghost-arena/game"
	"github.com/lixenwraith/ghost-arena/input"
	"github.com/lixenwraith/ghost-arena/parameter"
	"github.com/lixenwraith/ghost-arena/render"
	"github.com/lixenwraith/ghost-arena/render/renderers"
)

// app wires the terminal frontend around one match
type app struct {
	screen  tcell.Screen
	match   *game.Match
	tracker *input.Tracker
	player  *audio.Player
	router  *event.Router

	orchestrator *render.RenderOrchestrator
	view         render.Viewport

	clock *engine.PausableClock
	loop  *engine.Loop

	debug bool

	// FPS tracking
	frameCount    int
	lastFpsUpdate time.Time
	fps           int
}

func newApp(screen tcell.Screen, m *game.Match, tracker *input.Tracker, player *audio.Player, debugOverlay bool) *app {
	a := &app{
		screen:        screen,
		match:         m,
		tracker:       tracker,
		player:        player,
		router:        event.NewRouter(),
		orchestrator:  render.NewRenderOrchestrator(screen),
		debug:         debugOverlay,
		lastFpsUpdate: time.Now(),
	}

	a.router.Register(player)
	a.router.Register(&inputReleaser{tracker: tracker})
	a.router.Register(&eventLogger{matchID: m.ID()})

	rendererList := []struct {
		r        render.SystemRenderer
		priority render.RenderPriority
	}{
		{renderers.NewArenaRenderer(), render.PriorityGeometry},
		{renderers.NewGhostRenderer(), render.PriorityGhosts},
		{renderers.NewLiveRenderer(), render.PriorityLive},
		{renderers.NewProjectileRenderer(), render.PriorityProjectiles},
		{renderers.NewHUDRenderer(), render.PriorityUI},
		{renderers.NewOverlayRenderer(), render.PriorityOverlay},
		{renderers.NewDebugRenderer(), render.PriorityDebug},
	}
	for _, def := range rendererList {
		a.orchestrator.Register(def.r, def.priority)
	}

	a.clock = engine.NewPausableClock(engine.NewMonotonicTimeProvider())
	a.loop = engine.NewLoop(m.Tick, a.clock)
	a.resize()
	return a
}

// resize recomputes the viewport and the mouse aim mapping
func (a *app) resize() {
	w, h := a.orchestrator.Resize()
	lvl := a.match.Level()
	a.view = render.NewViewport(w, h, lvl.Width, lvl.Height)
	a.tracker.SetAimMapper(a.view.CellToWorld)
}

// run drives the match until quit, returns nil on a clean exit
func (a *app) run() error {
	if err := a.match.Start(); err != nil {
		return err
	}

	eventChan := make(chan tcell.Event, 256)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				a.screen.Fini()
				fmt.Fprintf(os.Stderr, "\r\n\x1b[31mEVENT POLLER CRASHED: %v\x1b[0m\r\n", r)
				fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
				os.Exit(1)
			}
		}()
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				// Screen finalized
				return
			}
			eventChan <- ev
		}
	}()

	frameTicker := time.NewTicker(parameter.FrameInterval)
	defer frameTicker.Stop()

	for {
		select {
		case ev := <-eventChan:
			if !a.handle(a.tracker.HandleEvent(ev)) {
				return nil
			}
		case <-frameTicker.C:
			a.frame()
		}
	}
}

// handle applies a command, false means quit
func (a *app) handle(action input.Action) bool {
	switch action {
	case input.ActionQuit:
		log.Printf("[match %s] quit at tick %d", a.match.ID(), a.match.Now())
		return false
	case input.ActionPause:
		if a.match.Stage() != game.StageFinished {
			paused := a.clock.Toggle()
			log.Printf("[match %s] paused=%v", a.match.ID(), paused)
		}
	case input.ActionDebug:
		a.debug = !a.debug
	case input.ActionMute:
		a.player.ToggleMute()
	case input.ActionResize:
		a.resize()
	default:
		if idx, ok := action.SelectIndex(); ok && a.match.Stage() == game.StageSelecting {
			opts := a.match.Options()
			if idx < len(opts) {
				if err := a.match.Select(opts[idx]); err != nil {
					log.Printf("[match %s] select: %v", a.match.ID(), err)
				}
			}
		}
	}
	return true
}

// frame steps the simulation, dispatches its events and draws
func (a *app) frame() {
	a.loop.Frame()
	a.router.Dispatch(a.match.Events())

	a.frameCount++
	if now := time.Now(); now.Sub(a.lastFpsUpdate) >= time.Second {
		a.fps = a.frameCount
		a.frameCount = 0
		a.lastFpsUpdate = now
		reg := a.match.Status()
		reg.Ints.Get("frame.fps").Store(int64(a.fps))
		reg.Ints.Get("loop.dropped").Store(int64(a.loop.Dropped()))
	}

	ctx := render.RenderContext{
		Snapshot:     a.match.Snapshot(),
		Level:        a.match.Level(),
		View:         a.view,
		MatchID:      a.match.ID(),
		Paused:       a.clock.IsPaused(),
		Muted:        a.player.IsMuted(),
		Debug:        a.debug,
		FPS:          a.fps,
		ScreenWidth:  a.view.Cols,
		ScreenHeight: a.view.Rows + parameter.HUDRows + parameter.StatusRows,
	}
	if ctx.Snapshot.HUD.Stage == game.StageSelecting {
		ctx.Options = a.match.Options()
	}
	if res, ok := a.match.Result(); ok {
		ctx.Result = &res
	}
	if a.debug {
		ctx.Status = a.match.Status().Entries()
	}
	a.orchestrator.RenderFrame(ctx)
}
