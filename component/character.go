package component

import (
	"strings"
	"time"

	"github.com/lixenwraith/ghost-arena/parameter"
	"github.com/lixenwraith/ghost-arena/vmath"
)

// CharacterClass is one of the three selectable fighters
type CharacterClass uint8

const (
	ClassWarrior CharacterClass = iota // Melee slash
	ClassWizard                        // Arcing fuse bomb
	ClassRanger                        // Linear shot
)

// AllClasses lists classes in the order they are offered
var AllClasses = []CharacterClass{ClassWarrior, ClassWizard, ClassRanger}

func (c CharacterClass) String() string {
	switch c {
	case ClassWarrior:
		return "warrior"
	case ClassWizard:
		return "wizard"
	case ClassRanger:
		return "ranger"
	default:
		return "unknown"
	}
}

// ParseCharacterClass resolves a character key, unknown keys report false
func ParseCharacterClass(key string) (CharacterClass, bool) {
	switch strings.ToLower(strings.TrimSpace(key)) {
	case "warrior":
		return ClassWarrior, true
	case "wizard":
		return ClassWizard, true
	case "ranger":
		return ClassRanger, true
	default:
		return 0, false
	}
}

// AttackKind selects the projectile variant a class fires
type AttackKind uint8

const (
	AttackShot AttackKind = iota
	AttackBomb
	AttackSlash
)

// AttackPayload is the class-specific attack definition
// Fields not used by the Kind stay zero
type AttackPayload struct {
	Kind AttackKind

	Damage       int64         // Shot/Slash damage, Bomb center damage (Q32.32)
	DamageOuter  int64         // Bomb damage at splash edge (Q32.32)
	SplashRadius int64         // Bomb (Q32.32)
	Radius       int64         // Shot/Bomb collision radius (Q32.32)
	Lifetime     time.Duration // Shot/Slash lifetime, Bomb fuse
	MaxDistance  int64         // Shot travel limit, 0 = unlimited (Q32.32)
	Gravity      int64         // Bomb downward acceleration (Q32.32)
	Width        int64         // Slash hitbox (Q32.32)
	Height       int64         // Slash hitbox (Q32.32)
	Reach        int64         // Slash forward offset past half-width (Q32.32)
}

// CharacterStats is the fixed stat block of a class, all rates in Q32.32 per second
type CharacterStats struct {
	MoveSpeed       int64
	Acceleration    int64
	MaxHealth       int64
	MaxFuel         int64 // Seconds of thrust
	JetpackThrust   int64
	JetpackRegen    int64 // Fuel seconds regained per grounded second
	ProjectileSpeed int64
	AttackCooldown  time.Duration
	Attack          AttackPayload
}

// Roster maps each class to its stat block
type Roster map[CharacterClass]CharacterStats

// Lookup returns stats for a class, false when the class has no entry
func (r Roster) Lookup(c CharacterClass) (CharacterStats, bool) {
	s, ok := r[c]
	return s, ok
}

// DefaultRoster returns the stock character stats
func DefaultRoster() Roster {
	return Roster{
		ClassWarrior: {
			MoveSpeed:       vmath.FromInt(160),
			Acceleration:    vmath.FromInt(1600),
			MaxHealth:       vmath.FromInt(150),
			MaxFuel:         vmath.FromInt(6),
			JetpackThrust:   vmath.FromInt(420),
			JetpackRegen:    vmath.FromFloat(1.0),
			ProjectileSpeed: vmath.FromInt(280),
			AttackCooldown:  800 * time.Millisecond,
			Attack: AttackPayload{
				Kind:     AttackSlash,
				Damage:   vmath.FromFloat(parameter.SlashDamageFloat),
				Lifetime: parameter.SlashLifetime,
				Width:    vmath.FromInt(parameter.SlashWidth),
				Height:   vmath.FromInt(parameter.SlashHeight),
				Reach:    vmath.FromInt(parameter.SlashReach),
			},
		},
		ClassWizard: {
			MoveSpeed:       vmath.FromInt(140),
			Acceleration:    vmath.FromInt(1400),
			MaxHealth:       vmath.FromInt(100),
			MaxFuel:         vmath.FromInt(4),
			JetpackThrust:   vmath.FromInt(360),
			JetpackRegen:    vmath.FromFloat(0.9),
			ProjectileSpeed: vmath.FromInt(220),
			AttackCooldown:  2500 * time.Millisecond,
			Attack: AttackPayload{
				Kind:         AttackBomb,
				Damage:       vmath.FromFloat(parameter.BombDamageCenterFloat),
				DamageOuter:  vmath.FromFloat(parameter.BombDamageOuterFloat),
				SplashRadius: vmath.FromFloat(parameter.BombSplashRadiusFloat),
				Radius:       vmath.FromFloat(parameter.BombRadiusFloat),
				Lifetime:     parameter.BombFuse,
				Gravity:      vmath.FromFloat(parameter.BombGravityFloat),
			},
		},
		ClassRanger: {
			MoveSpeed:       vmath.FromInt(220),
			Acceleration:    vmath.FromInt(2200),
			MaxHealth:       vmath.FromInt(75),
			MaxFuel:         vmath.FromInt(8),
			JetpackThrust:   vmath.FromInt(460),
			JetpackRegen:    vmath.FromFloat(1.1),
			ProjectileSpeed: vmath.FromInt(400),
			AttackCooldown:  1200 * time.Millisecond,
			Attack: AttackPayload{
				Kind:        AttackShot,
				Damage:      vmath.FromFloat(parameter.ShotDamageFloat),
				Radius:      vmath.FromFloat(parameter.ShotRadiusFloat),
				Lifetime:    parameter.ShotLifetime,
				MaxDistance: vmath.FromFloat(parameter.ShotMaxDistanceFloat),
			},
		},
	}
}
