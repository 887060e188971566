package numeric

import (
	"cmp"
)

// Compare orders a against b and returns -1, 0 or +1.
//
// Each pairing of kinds has one rule:
//   - Complex on either side: equal values give 0, otherwise both sides
//     must be real and their real parts are compared as float64.
//   - Float on either side: both are promoted to float64. NaN orders
//     before every other value so sorting stays total, and two NaNs
//     compare 0. Equal still reports NaN unequal to itself, so callers
//     that need IEEE equality should use Equal rather than Compare == 0.
//   - Int and Ratio against each other: exact cross-multiplication.
//   - BigInt or Decimal involved: exact big.Rat comparison.
//
// A non-real Complex against anything it is not equal to yields
// ErrIncomparableType.
func Compare(a, b Number) (int, error) {
	switch {
	case a.kind == KindComplex || b.kind == KindComplex:
		return compareComplex(a, b)
	case a.kind == KindFloat || b.kind == KindFloat:
		return cmp.Compare(a.Float64(), b.Float64()), nil
	}

	if c, ok := compareMachine(a, b); ok {
		return c, nil
	}

	x, okx := a.exactRat()
	y, oky := b.exactRat()
	if !okx || !oky {
		// Non-finite decimals only.
		return cmp.Compare(a.Float64(), b.Float64()), nil
	}
	return x.Cmp(y), nil
}

// compareMachine handles the Int and Ratio pairings without allocating.
func compareMachine(a, b Number) (int, bool) {
	switch a.kind {
	case KindInt:
		switch b.kind {
		case KindInt:
			return cmp.Compare(a.i, b.i), true
		case KindRatio:
			return compareFractions(a.i, 1, b.rat.num, b.rat.den), true
		}
	case KindRatio:
		switch b.kind {
		case KindInt:
			return compareFractions(a.rat.num, a.rat.den, b.i, 1), true
		case KindRatio:
			return compareFractions(a.rat.num, a.rat.den, b.rat.num, b.rat.den), true
		}
	}
	return 0, false
}

func compareComplex(a, b Number) (int, error) {
	if Equal(a, b) {
		return 0, nil
	}
	if !a.IsReal() || !b.IsReal() {
		return 0, incomparable(a.kind, b.kind)
	}
	return cmp.Compare(a.Float64(), b.Float64()), nil
}

// Equal reports whether a and b hold the same value. It never fails:
// pairs that Compare rejects are simply unequal.
//
// Float comparisons use ==, so NaN is unequal to itself and -0.0 equals
// 0.0. A Complex equals a non-Complex only when it is real and its real
// part == the other's float64 value.
func Equal(a, b Number) bool {
	switch {
	case a.kind == KindComplex && b.kind == KindComplex:
		return a.cplx == b.cplx
	case a.kind == KindComplex:
		return a.cplx.IsReal() && a.cplx.re == b.Float64()
	case b.kind == KindComplex:
		return b.cplx.IsReal() && b.cplx.re == a.Float64()
	case a.kind == KindFloat || b.kind == KindFloat:
		return a.Float64() == b.Float64()
	}
	if c, ok := compareMachine(a, b); ok {
		return c == 0
	}

	x, okx := a.exactRat()
	y, oky := b.exactRat()
	if !okx || !oky {
		return a.Float64() == b.Float64()
	}
	return x.Cmp(y) == 0
}
