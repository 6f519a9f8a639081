package level

import (
	"github.com/lixenwraith/ghost-arena/component"
	"github.com/lixenwraith/ghost-arena/parameter"
	"github.com/lixenwraith/ghost-arena/vmath"
)

// Floating pad layout
const (
	padCount  = 3
	padGap    = 180
	padWidth  = 160
	padJitter = 20
	padHeight = 36
	padYSkew  = 10
)

// Generate builds the arena for a seed
// Pure function of the seed: same seed, identical level
func Generate(seed int64) *Level {
	rng := vmath.NewFastRand(uint64(seed))

	w, h := parameter.LevelWidth, parameter.LevelHeight
	l := &Level{
		Width:  vmath.FromInt(w),
		Height: vmath.FromInt(h),
		Spawns: []SpawnPoint{
			{X: vmath.FromInt(parameter.SpawnP1X), Y: vmath.FromInt(parameter.SpawnY), Player: component.Player1},
			{X: vmath.FromInt(parameter.SpawnP2X), Y: vmath.FromInt(parameter.SpawnY), Player: component.Player2},
		},
	}

	// 1. Ground spanning the full width
	groundY := h - parameter.GroundHeight
	l.Platforms = append(l.Platforms, vmath.RectFromInts(0, groundY, w, parameter.GroundHeight))

	// 2. Mirrored plateaus
	const plateauWidth, plateauHeight, plateauInset = 320, 56, 180
	plateauY := groundY - 200
	l.Platforms = append(l.Platforms,
		vmath.RectFromInts(plateauInset, plateauY, plateauWidth, plateauHeight),
		vmath.RectFromInts(w-plateauWidth-plateauInset, plateauY, plateauWidth, plateauHeight),
	)

	// 3. Center bridge
	const bridgeWidth = 360
	bridgeY := groundY - 360
	l.Platforms = append(l.Platforms, mirroredCenter(w, bridgeWidth, bridgeY, 48))

	// 4. Top perches
	const perchWidth, perchOffset = 220, 140
	perchY := bridgeY - 200
	l.Platforms = append(l.Platforms,
		vmath.RectFromInts(perchOffset, perchY, perchWidth, 40),
		vmath.RectFromInts(w-perchWidth-perchOffset, perchY, perchWidth, 40),
	)

	// 5. Jittered floating pads, the only seeded part of the layout
	padsY := plateauY - 150
	var widths [padCount]int
	total := padGap * (padCount - 1)
	for i := range widths {
		widths[i] = padWidth + rng.IntRange(-padJitter, padJitter)
		total += widths[i]
	}
	// Centering may land on a half unit, keep it in fixed point
	cursor := (vmath.FromInt(w) - vmath.FromInt(total)) / 2
	for _, pw := range widths {
		y := padsY + rng.IntRange(-padYSkew, padYSkew)
		l.Platforms = append(l.Platforms, vmath.Rect{
			X: cursor,
			Y: vmath.FromInt(y),
			W: vmath.FromInt(pw),
			H: vmath.FromInt(padHeight),
		})
		cursor += vmath.FromInt(pw + padGap)
	}

	// 6. Ground cover
	const coverWidth, coverHeight, coverInset = 64, 200, 260
	l.Obstacles = append(l.Obstacles,
		vmath.RectFromInts(coverInset, groundY-coverHeight, coverWidth, coverHeight),
		vmath.RectFromInts(w-coverInset-coverWidth, groundY-coverHeight, coverWidth, coverHeight),
	)

	// 7. Center pillar
	const pillarWidth, pillarHeight = 84, 260
	l.Obstacles = append(l.Obstacles, mirroredCenter(w, pillarWidth, groundY-pillarHeight, pillarHeight))

	// 8. Upper cover on the plateaus
	const upperWidth, upperHeight, upperInset = 70, 120, 460
	l.Obstacles = append(l.Obstacles,
		vmath.RectFromInts(upperInset, plateauY-upperHeight, upperWidth, upperHeight),
		vmath.RectFromInts(w-upperInset-upperWidth, plateauY-upperHeight, upperWidth, upperHeight),
	)

	return l
}

// mirroredCenter returns a rect horizontally centered in a world of width w
func mirroredCenter(w, rw, y, rh int) vmath.Rect {
	return vmath.Rect{
		X: (vmath.FromInt(w) - vmath.FromInt(rw)) / 2,
		Y: vmath.FromInt(y),
		W: vmath.FromInt(rw),
		H: vmath.FromInt(rh),
	}
}
