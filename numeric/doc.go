// Package numeric implements an extended numeric tower: exact fractions,
// complex numbers, and arbitrary-precision integers and decimals alongside
// the machine int64 and float64.
//
// # Data Model
//
// Number is a closed union over six kinds:
//
//	Int      int64
//	Float    float64
//	BigInt   *big.Int
//	Decimal  *apd.Decimal
//	Ratio    canonical int64 fraction
//	Complex  float64 pair
//
// Ratio values are always reduced with a positive denominator, so two
// Ratios are equal exactly when their fields are.
//
// # Literal Syntax
//
//	42        integer (BigInt when it does not fit int64)
//	42N       big integer
//	1.5 2e10  float
//	##Inf ##-Inf ##NaN
//	1.50M     decimal
//	3/4       ratio
//	2i 1+2i   complex
//
// Classify maps text to exactly one shape; ParseLiteral also extracts the
// value. Format renders any Number back to this syntax.
//
// # Cross-Type Comparison
//
// Compare and Equal accept any pair of kinds. Exact kinds compare exactly,
// a Float on either side promotes both to float64, and a Complex compares
// only when it is real or equal to the other side.
//
// # Approximation
//
// FromFloat finds the simplest fraction within a tolerance of a float by
// walking the Stern–Brocot tree:
//
//	r, _ := numeric.FromFloat(math.Pi, 1e-3) // 201/64
package numeric
