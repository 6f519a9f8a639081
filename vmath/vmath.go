package vmath

import (
	"math"
	"math/bits"
)

// Q32.32 Fixed Point constants
// All simulation state is kept in this format so that a recording replays bit-exact on every platform
const (
	Shift = 32
	Scale = 1 << Shift
	Mask  = Scale - 1
	Half  = 1 << (Shift - 1)
)

// --- Arithmetic ---

func FromInt(i int) int64       { return int64(i) << Shift }
func ToInt(f int64) int         { return int(f >> Shift) }
func FromFloat(f float64) int64 { return int64(f * Scale) }
func ToFloat(f int64) float64   { return float64(f) / Scale }

func Mul(a, b int64) int64 {
	if a == 0 || b == 0 {
		return 0
	}
	negative := (a < 0) != (b < 0)
	ua, ub := uint64(a), uint64(b)
	if a < 0 {
		ua = uint64(-a)
	}
	if b < 0 {
		ub = uint64(-b)
	}

	hi, lo := bits.Mul64(ua, ub)
	// Q32.32 * Q32.32 = Q64.64, shift right 32 for Q32.32
	result := int64((hi << 32) | (lo >> 32))

	if negative {
		return -result
	}
	return result
}

// Div returns a/b in Q32.32, zero divisor yields 0
func Div(a, b int64) int64 {
	if b == 0 {
		return 0
	}
	negative := (a < 0) != (b < 0)
	ua, ub := uint64(a), uint64(b)
	if a < 0 {
		ua = uint64(-a)
	}
	if b < 0 {
		ub = uint64(-b)
	}

	// a << 32 as 128-bit: hi = a >> 32, lo = a << 32
	hi := ua >> 32
	lo := ua << 32

	// Quotient would not fit in 64 bits, saturate
	if hi >= ub {
		if negative {
			return math.MinInt64
		}
		return math.MaxInt64
	}

	quo, _ := bits.Div64(hi, lo, ub)
	if quo > math.MaxInt64 {
		if negative {
			return math.MinInt64
		}
		return math.MaxInt64
	}

	if negative {
		return -int64(quo)
	}
	return int64(quo)
}

// Abs returns absolute value
func Abs(x int64) int64 {
	if x < 0 {
		return -x
	}
	return x
}

// Sign returns -Scale, 0, or Scale
func Sign(x int64) int64 {
	if x < 0 {
		return -Scale
	}
	if x > 0 {
		return Scale
	}
	return 0
}

func Min(a, b int64) int64 {
	if a < b {
		return a
	}
	return b
}

func Max(a, b int64) int64 {
	if a > b {
		return a
	}
	return b
}

// Clamp limits x to [lo, hi]
func Clamp(x, lo, hi int64) int64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// Lerp interpolates a..b by t, t in Q32.32 [0, Scale]
func Lerp(a, b, t int64) int64 {
	return a + Mul(b-a, t)
}

// MoveToward steps current toward target by at most maxDelta, never overshooting
func MoveToward(current, target, maxDelta int64) int64 {
	if current < target {
		return Min(current+maxDelta, target)
	}
	if current > target {
		return Max(current-maxDelta, target)
	}
	return current
}

// --- Roots & Vectors ---

// Sqrt returns Q32.32 square root
// math.Sqrt is correctly rounded under IEEE 754, so the round trip is deterministic
func Sqrt(x int64) int64 {
	if x <= 0 {
		return 0
	}
	return FromFloat(math.Sqrt(ToFloat(x)))
}

// Length returns Euclidean vector length
func Length(x, y int64) int64 {
	if x == 0 {
		return Abs(y)
	}
	if y == 0 {
		return Abs(x)
	}
	fx, fy := ToFloat(x), ToFloat(y)
	return FromFloat(math.Sqrt(fx*fx + fy*fy))
}

// Normalize returns the unit vector of (x, y), zero-length input yields (1, 0)
func Normalize(x, y int64) (nx, ny int64) {
	l := Length(x, y)
	if l == 0 {
		return Scale, 0
	}
	return Div(x, l), Div(y, l)
}

// --- Randomness ---

// FastRand is a seeded xorshift64 generator, stable across platforms and Go releases
type FastRand struct {
	state uint64
}

func NewFastRand(seed uint64) *FastRand {
	if seed == 0 {
		seed = 1
	}
	return &FastRand{state: seed}
}

func (r *FastRand) Next() uint64 {
	x := r.state
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	r.state = x
	return x
}

func (r *FastRand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Next() % uint64(n))
}

// IntRange returns a value in [min, max] inclusive
func (r *FastRand) IntRange(min, max int) int {
	if max <= min {
		return min
	}
	return min + r.Intn(max-min+1)
}
