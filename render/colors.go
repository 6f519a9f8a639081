package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/ghost-arena/component"
)

// Palette
var (
	RgbBackground = tcell.NewRGBColor(12, 14, 20)
	RgbPlatform   = tcell.NewRGBColor(96, 104, 120)
	RgbObstacle   = tcell.NewRGBColor(140, 110, 80)

	RgbPlayer1      = tcell.NewRGBColor(80, 200, 255)
	RgbPlayer2      = tcell.NewRGBColor(255, 150, 60)
	RgbGhostPlayer1 = tcell.NewRGBColor(40, 90, 120)
	RgbGhostPlayer2 = tcell.NewRGBColor(120, 72, 30)

	RgbShot      = tcell.NewRGBColor(255, 255, 160)
	RgbBomb      = tcell.NewRGBColor(200, 120, 255)
	RgbExplosion = tcell.NewRGBColor(255, 80, 40)
	RgbSlash     = tcell.NewRGBColor(230, 230, 230)

	RgbHUDText    = tcell.NewRGBColor(210, 210, 220)
	RgbHUDDim     = tcell.NewRGBColor(110, 110, 130)
	RgbHealth     = tcell.NewRGBColor(220, 60, 60)
	RgbFuel       = tcell.NewRGBColor(60, 200, 120)
	RgbCooldown   = tcell.NewRGBColor(230, 200, 60)
	RgbOverlayBg  = tcell.NewRGBColor(30, 32, 44)
	RgbOverlayFg  = tcell.NewRGBColor(240, 240, 250)
	RgbAudioMuted = tcell.NewRGBColor(255, 0, 0)
	RgbAudioOn    = tcell.NewRGBColor(0, 255, 0)
	RgbDebugText  = tcell.NewRGBColor(150, 220, 150)
)

// PlayerColor returns the actor color of a player, dimmed for ghosts
func PlayerColor(p component.PlayerID, ghost bool) tcell.Color {
	switch {
	case p == component.Player1 && ghost:
		return RgbGhostPlayer1
	case p == component.Player1:
		return RgbPlayer1
	case p == component.Player2 && ghost:
		return RgbGhostPlayer2
	case p == component.Player2:
		return RgbPlayer2
	default:
		return RgbHUDText
	}
}

// BaseStyle is the default cell style
func BaseStyle() tcell.Style {
	return tcell.StyleDefault.Background(RgbBackground).Foreground(RgbHUDText)
}
