package parameter

// Terminal Layout
const (
	// HUDRows is the number of rows above the arena
	HUDRows = 2

	// StatusRows is the number of rows below the arena
	StatusRows = 1

	// MinScreenCols and MinScreenRows are the smallest terminal the arena is drawn in
	MinScreenCols = 40
	MinScreenRows = 12

	// BarWidth is the cell width of HUD gauges
	BarWidth = 10

	// DebugPanelWidth is the width of the status overlay column
	DebugPanelWidth = 34
)

// UI Symbols
const (
	AudioStr  = "♫ "
	BarFull   = '█'
	BarEmpty  = '░'
	PauseText = " PAUSED "
)
