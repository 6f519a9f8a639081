package physics

import (
	"testing"

	"github.com/lixenwraith/ghost-arena/component"
	"github.com/lixenwraith/ghost-arena/level"
	"github.com/lixenwraith/ghost-arena/parameter"
	"github.com/lixenwraith/ghost-arena/vmath"
)

// testLevel is a 1000x1000 box, geometry supplied per test
func testLevel(platforms ...vmath.Rect) *level.Level {
	return &level.Level{
		Width:     vmath.FromInt(1000),
		Height:    vmath.FromInt(1000),
		Platforms: platforms,
	}
}

// inBounds reports whether the actor hitbox lies inside the level
func inBounds(a *component.Actor, lvl *level.Level) bool {
	return a.X >= a.HalfW && a.X <= lvl.Width-a.HalfW &&
		a.Y >= a.HalfH && a.Y <= lvl.Height-a.HalfH
}

func testActor(x, y int) *component.Actor {
	stats, _ := component.DefaultRoster().Lookup(component.ClassRanger)
	return component.NewActor(0, component.ActorLive, component.Player1, component.ClassRanger, stats, vmath.FromInt(x), vmath.FromInt(y))
}

func TestActorLandsOnPlatform(t *testing.T) {
	lvl := testLevel(vmath.RectFromInts(0, 900, 1000, 100))
	a := testActor(500, 800)

	for i := 0; i < 120; i++ {
		AdvanceActor(a, component.Input{}, lvl, parameter.TickDuration)
	}

	if !a.Grounded {
		t.Fatal("Expected actor to be grounded")
	}
	expected := vmath.FromInt(900) - a.HalfH - parameter.CollisionEpsilon
	if a.Y != expected {
		t.Errorf("Expected Y=%v, got %v", vmath.ToFloat(expected), vmath.ToFloat(a.Y))
	}
	if a.VY != 0 {
		t.Errorf("Expected VY=0 while resting, got %v", vmath.ToFloat(a.VY))
	}
}

func TestWallStopsHorizontalOnly(t *testing.T) {
	lvl := testLevel(vmath.RectFromInts(600, 0, 100, 800))
	a := testActor(570, 400)
	a.X = vmath.FromInt(600) - a.HalfW - vmath.FromInt(1)
	startY := a.Y

	AdvanceActor(a, component.Input{MoveRight: true}, lvl, parameter.TickDuration)
	a.VX = vmath.FromInt(300)
	AdvanceActor(a, component.Input{MoveRight: true}, lvl, parameter.TickDuration)

	expectedX := vmath.FromInt(600) - a.HalfW - parameter.CollisionEpsilon
	if a.X != expectedX {
		t.Errorf("Expected X snapped to %v, got %v", vmath.ToFloat(expectedX), vmath.ToFloat(a.X))
	}
	if a.VX != 0 {
		t.Errorf("Expected VX=0 after wall contact, got %v", vmath.ToFloat(a.VX))
	}
	if a.Y <= startY {
		t.Errorf("Expected actor to keep falling along the wall, Y %v -> %v", vmath.ToFloat(startY), vmath.ToFloat(a.Y))
	}
}

func TestCornerResolvesXBeforeY(t *testing.T) {
	// Block top-left corner at (600, 500); the actor approaches diagonally from up-left.
	// Moving X first keeps it clear of the block, the Y move then lands it on top.
	lvl := testLevel(vmath.RectFromInts(600, 500, 100, 100))
	a := testActor(570, 460)
	a.VX = vmath.FromInt(600)
	a.VY = parameter.MaxFallSpeed

	AdvanceActor(a, component.Input{}, lvl, parameter.TickDuration)

	if !a.Grounded {
		t.Fatal("Expected actor to land on the block corner")
	}
	expectedY := vmath.FromInt(500) - a.HalfH - parameter.CollisionEpsilon
	if a.Y != expectedY {
		t.Errorf("Expected Y=%v, got %v", vmath.ToFloat(expectedY), vmath.ToFloat(a.Y))
	}
	if a.VX == 0 {
		t.Error("Expected horizontal velocity to survive, X pass had no contact")
	}
}

func TestActorStaysInBounds(t *testing.T) {
	lvl := testLevel()
	a := testActor(900, 100)

	for i := 0; i < 600; i++ {
		AdvanceActor(a, component.Input{MoveRight: true, Jetpack: i%3 == 0}, lvl, parameter.TickDuration)
		if !inBounds(a, lvl) {
			t.Fatalf("Tick %d: actor out of bounds at (%v, %v)", i, vmath.ToFloat(a.X), vmath.ToFloat(a.Y))
		}
	}
	if a.X != lvl.Width-a.HalfW {
		t.Errorf("Expected actor pinned to right bound, got X=%v", vmath.ToFloat(a.X))
	}
	if !a.Grounded {
		t.Error("Expected floor bound to ground the actor")
	}
}

func TestJetpackDrainsAndRegens(t *testing.T) {
	lvl := testLevel(vmath.RectFromInts(0, 900, 1000, 100))
	a := testActor(500, 860)
	full := a.Fuel

	for i := 0; i < 30; i++ {
		AdvanceActor(a, component.Input{Jetpack: true}, lvl, parameter.TickDuration)
	}
	if a.Fuel >= full {
		t.Fatalf("Expected fuel to drain, got %v", vmath.ToFloat(a.Fuel))
	}
	if a.VY >= 0 {
		t.Errorf("Expected upward velocity under thrust, got %v", vmath.ToFloat(a.VY))
	}

	drained := a.Fuel
	for i := 0; i < 300; i++ {
		AdvanceActor(a, component.Input{}, lvl, parameter.TickDuration)
	}
	if a.Fuel <= drained {
		t.Errorf("Expected fuel to regenerate on ground, %v -> %v", vmath.ToFloat(drained), vmath.ToFloat(a.Fuel))
	}
	if a.Fuel > a.Stats.MaxFuel {
		t.Errorf("Fuel exceeds max: %v", vmath.ToFloat(a.Fuel))
	}
}

func TestFacingFollowsAim(t *testing.T) {
	lvl := testLevel()
	a := testActor(500, 500)

	AdvanceActor(a, component.Input{AimX: vmath.FromInt(100), AimY: vmath.FromInt(500)}, lvl, parameter.TickDuration)
	if a.Facing != -1 {
		t.Errorf("Expected facing -1 toward aim, got %d", a.Facing)
	}
	AdvanceActor(a, component.Input{MoveRight: true}, lvl, parameter.TickDuration)
	if a.Facing != 1 {
		t.Errorf("Expected facing +1 from movement, got %d", a.Facing)
	}
}

func TestResolveActorOverlapHorizontal(t *testing.T) {
	a := testActor(100, 500)
	b := testActor(130, 500)
	b.ID = 1
	a.VX = vmath.FromInt(50)
	b.VX = vmath.FromInt(-50)

	ResolveActorOverlap([]*component.Actor{a, b}, testLevel())

	if a.Bounds().Intersects(b.Bounds()) {
		t.Fatal("Expected actors separated")
	}
	if a.X >= b.X {
		t.Errorf("Expected relative order kept, a=%v b=%v", vmath.ToFloat(a.X), vmath.ToFloat(b.X))
	}
	if a.VX != 0 || b.VX != 0 {
		t.Errorf("Expected approaching velocities zeroed, got %v, %v", vmath.ToFloat(a.VX), vmath.ToFloat(b.VX))
	}
	if a.Y != vmath.FromInt(500) || b.Y != vmath.FromInt(500) {
		t.Error("Expected Y untouched by horizontal separation")
	}
}

func TestResolveActorOverlapVertical(t *testing.T) {
	a := testActor(100, 100)
	b := testActor(100, 150)
	b.ID = 1
	a.VY = vmath.FromInt(100)

	ResolveActorOverlap([]*component.Actor{a, b}, testLevel())

	if a.Bounds().Intersects(b.Bounds()) {
		t.Fatal("Expected actors separated")
	}
	if !a.Grounded {
		t.Error("Expected upper actor to stand on lower one")
	}
	if a.VY != 0 {
		t.Errorf("Expected upper actor VY zeroed, got %v", vmath.ToFloat(a.VY))
	}
}

func TestResolveActorOverlapSkipsDead(t *testing.T) {
	a := testActor(100, 500)
	b := testActor(110, 500)
	b.Alive = false

	ResolveActorOverlap([]*component.Actor{a, b}, testLevel())

	if a.X != vmath.FromInt(100) || b.X != vmath.FromInt(110) {
		t.Error("Expected dead actor to be ignored")
	}
}

func projectileFrom(kind component.AttackKind) *component.Projectile {
	stats := component.DefaultRoster()
	var cs component.CharacterStats
	switch kind {
	case component.AttackShot:
		cs = stats[component.ClassRanger]
	case component.AttackBomb:
		cs = stats[component.ClassWizard]
	default:
		cs = stats[component.ClassWarrior]
	}
	atk := cs.Attack
	spec := component.ProjectileSpec{
		Kind:         component.ProjectileKind(kind),
		OriginX:      vmath.FromInt(100),
		OriginY:      vmath.FromInt(500),
		DirX:         vmath.Scale,
		Speed:        cs.ProjectileSpeed,
		Radius:       atk.Radius,
		Damage:       atk.Damage,
		Lifetime:     atk.Lifetime,
		MaxDistance:  atk.MaxDistance,
		Gravity:      atk.Gravity,
		DamageOuter:  atk.DamageOuter,
		SplashRadius: atk.SplashRadius,
		Width:        atk.Width,
		Height:       atk.Height,
		Reach:        atk.Reach,
	}
	return component.NewProjectile(spec, component.Player1)
}

func TestShotExpiresByLifetime(t *testing.T) {
	lvl := testLevel()
	p := projectileFrom(component.AttackShot)

	ticks := 0
	for p.Alive && ticks < 1000 {
		AdvanceProjectile(p, lvl, parameter.TickDuration)
		ticks++
	}
	if p.Alive {
		t.Fatal("Expected shot to expire")
	}
	if p.Age < parameter.ShotLifetime {
		t.Errorf("Expected shot to live its full lifetime in open space, died at %v", p.Age)
	}
}

func TestShotStopsAtWall(t *testing.T) {
	lvl := testLevel(vmath.RectFromInts(200, 0, 50, 1000))
	p := projectileFrom(component.AttackShot)

	for i := 0; i < 60 && p.Alive; i++ {
		AdvanceProjectile(p, lvl, parameter.TickDuration)
	}
	if p.Alive {
		t.Fatal("Expected shot to die on wall contact")
	}
	if p.X > vmath.FromInt(250) {
		t.Errorf("Expected shot to stop at the wall, got X=%v", vmath.ToFloat(p.X))
	}
}

func TestBombFuse(t *testing.T) {
	lvl := testLevel()
	p := projectileFrom(component.AttackBomb)

	// 96 ticks land just short of 1.6s with the truncated tick duration
	ticks := 0
	for !p.Bomb.Exploding && ticks < 1000 {
		AdvanceProjectile(p, lvl, parameter.TickDuration)
		ticks++
	}
	if ticks != 97 {
		t.Errorf("Expected fuse to trigger on tick 97, got %d", ticks)
	}
	if !p.Alive {
		t.Error("Expected exploding bomb to stay alive until splash resolves")
	}

	x, y := p.X, p.Y
	AdvanceProjectile(p, lvl, parameter.TickDuration)
	if p.X != x || p.Y != y {
		t.Error("Expected exploding bomb to stop moving")
	}
}

func TestBombArcsDownward(t *testing.T) {
	lvl := testLevel()
	p := projectileFrom(component.AttackBomb)
	for i := 0; i < 30; i++ {
		AdvanceProjectile(p, lvl, parameter.TickDuration)
	}
	if p.VY <= 0 {
		t.Errorf("Expected gravity to pull the bomb down, VY=%v", vmath.ToFloat(p.VY))
	}
}

func TestSlashLifetime(t *testing.T) {
	lvl := testLevel()
	p := projectileFrom(component.AttackSlash)
	x, y := p.X, p.Y

	for i := 0; i < 10; i++ {
		AdvanceProjectile(p, lvl, parameter.TickDuration)
	}
	if !p.Alive {
		t.Fatal("Expected slash alive after 10 ticks")
	}
	if p.X != x || p.Y != y {
		t.Error("Expected slash to stay in place")
	}
	AdvanceProjectile(p, lvl, parameter.TickDuration)
	if p.Alive {
		t.Error("Expected slash to expire on tick 11")
	}
}

func TestProjectileGeometryRules(t *testing.T) {
	tests := []struct {
		name     string
		kind     component.AttackKind
		geometry []vmath.Rect
		setup    func(p *component.Projectile)
		ticks    int
		check    func(t *testing.T, p *component.Projectile)
	}{
		{
			name:     "bomb arms on wall contact",
			kind:     component.AttackBomb,
			geometry: []vmath.Rect{vmath.RectFromInts(150, 0, 50, 1000)},
			ticks:    60,
			check: func(t *testing.T, p *component.Projectile) {
				if !p.Bomb.Exploding || !p.Alive {
					t.Errorf("Expected exploding live bomb, got exploding=%v alive=%v", p.Bomb.Exploding, p.Alive)
				}
				if p.Age >= p.Bomb.Fuse {
					t.Errorf("Expected contact before the fuse, got age %v", p.Age)
				}
			},
		},
		{
			name:  "shot expires at max distance",
			kind:  component.AttackShot,
			setup: func(p *component.Projectile) { p.MaxDistance = vmath.FromInt(50) },
			ticks: 60,
			check: func(t *testing.T, p *component.Projectile) {
				if p.Alive {
					t.Fatal("Expected shot to expire by distance")
				}
				if p.Age >= p.Lifetime {
					t.Errorf("Expected expiry before lifetime, got age %v", p.Age)
				}
				if d := vmath.Length(p.X-p.StartX, p.Y-p.StartY); d <= vmath.FromInt(50) {
					t.Errorf("Expected travel past 50, got %v", vmath.ToFloat(d))
				}
			},
		},
		{
			name:     "slash center inside geometry",
			kind:     component.AttackSlash,
			geometry: []vmath.Rect{vmath.RectFromInts(150, 450, 50, 100)},
			ticks:    1,
			check: func(t *testing.T, p *component.Projectile) {
				if p.Alive {
					t.Error("Expected slash buried in geometry to die")
				}
			},
		},
		{
			name:     "slash bounds grazing geometry",
			kind:     component.AttackSlash,
			geometry: []vmath.Rect{vmath.RectFromInts(0, 520, 1000, 100)},
			ticks:    1,
			check: func(t *testing.T, p *component.Projectile) {
				if !p.Bounds().Intersects(vmath.RectFromInts(0, 520, 1000, 100)) {
					t.Fatal("Expected slash bounds to overlap the floor")
				}
				if !p.Alive {
					t.Error("Expected slash with its center in open space to stay alive")
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lvl := testLevel(tt.geometry...)
			p := projectileFrom(tt.kind)
			if tt.setup != nil {
				tt.setup(p)
			}
			for i := 0; i < tt.ticks && p.Alive; i++ {
				AdvanceProjectile(p, lvl, parameter.TickDuration)
				if p.Bomb != nil && p.Bomb.Exploding {
					break
				}
			}
			tt.check(t, p)
		})
	}
}
