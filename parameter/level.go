package parameter

// Arena layout defaults, values from the reference arena
const (
	LevelWidth  = 1500
	LevelHeight = 960

	GroundHeight = 72

	// Spawn points sit clear of the ground cover obstacles
	SpawnP1X = 200
	SpawnP2X = 1300
	SpawnY   = 820
)
