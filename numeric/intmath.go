package numeric

import (
	"math"
	"math/bits"
)

// ============================================================
// Overflow-checked int64 helpers
// ============================================================

// magnitude returns |v| as a uint64. math.MinInt64 maps to 1<<63.
func magnitude(v int64) uint64 {
	if v < 0 {
		return uint64(-(v + 1)) + 1
	}
	return uint64(v)
}

// fromMagnitude rebuilds a signed value, reporting false when it does not fit.
func fromMagnitude(neg bool, m uint64) (int64, bool) {
	if neg {
		if m > 1<<63 {
			return 0, false
		}
		if m == 1<<63 {
			return math.MinInt64, true
		}
		return -int64(m), true
	}
	if m > math.MaxInt64 {
		return 0, false
	}
	return int64(m), true
}

func gcdUint(a, b uint64) uint64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func addInt64(a, b int64) (int64, bool) {
	s := a + b
	if (a > 0 && b > 0 && s < 0) || (a < 0 && b < 0 && s >= 0) {
		return 0, false
	}
	return s, true
}

func subInt64(a, b int64) (int64, bool) {
	s := a - b
	if (a >= 0 && b < 0 && s < 0) || (a < 0 && b > 0 && s >= 0) {
		return 0, false
	}
	return s, true
}

func mulInt64(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	hi, lo := bits.Mul64(magnitude(a), magnitude(b))
	if hi != 0 {
		return 0, false
	}
	return fromMagnitude((a < 0) != (b < 0), lo)
}

// int128 is a sign-magnitude 128-bit product, used only for comparisons.
type int128 struct {
	neg    bool
	hi, lo uint64
}

func mul128(a, b int64) int128 {
	hi, lo := bits.Mul64(magnitude(a), magnitude(b))
	return int128{neg: (a < 0) != (b < 0) && hi|lo != 0, hi: hi, lo: lo}
}

func (x int128) cmp(y int128) int {
	if x.neg != y.neg {
		if x.neg {
			return -1
		}
		return 1
	}
	c := 0
	switch {
	case x.hi < y.hi, x.hi == y.hi && x.lo < y.lo:
		c = -1
	case x.hi > y.hi, x.hi == y.hi && x.lo > y.lo:
		c = 1
	}
	if x.neg {
		return -c
	}
	return c
}

// compareFractions compares an/ad with bn/bd for positive denominators
// without rounding and without overflow.
func compareFractions(an, ad, bn, bd int64) int {
	return mul128(an, bd).cmp(mul128(bn, ad))
}
