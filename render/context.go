package render

import (
	"github.com/lixenwraith/ghost-arena/component"
	"github.com/lixenwraith/ghost-arena/game"
	"github.com/lixenwraith/ghost-arena/level"
	"github.com/lixenwraith/ghost-arena/status"
)

// RenderContext provides frame state for renderers, passed by value
type RenderContext struct {
	Snapshot game.Snapshot
	Level    *level.Level
	View     Viewport

	// Selection choices of the active player, empty outside selecting
	Options []component.CharacterClass

	// Result is set once the match finished
	Result  *game.Outcome
	MatchID string

	Paused bool
	Muted  bool
	Debug  bool
	FPS    int

	// Status is the metric dump shown by the debug overlay
	Status []status.Entry

	ScreenWidth  int
	ScreenHeight int
}
