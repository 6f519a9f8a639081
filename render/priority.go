package render

// RenderPriority determines render order. Lower values render first
type RenderPriority int

const (
	PriorityBackground RenderPriority = iota
	PriorityGeometry
	PriorityGhosts
	PriorityLive
	PriorityProjectiles
	PriorityUI
	PriorityOverlay
	PriorityDebug
)
