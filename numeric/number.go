package numeric

import (
	"fmt"
	"math"
	"math/big"

	"github.com/cockroachdb/apd/v3"
)

// Kind identifies which member of the numeric tower a Number holds.
type Kind uint8

const (
	KindInt     Kind = iota // int64
	KindFloat               // float64
	KindBigInt              // arbitrary-precision integer
	KindDecimal             // arbitrary-precision decimal
	KindRatio               // exact fraction
	KindComplex             // float64 pair
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindBigInt:
		return "bigint"
	case KindDecimal:
		return "decimal"
	case KindRatio:
		return "ratio"
	case KindComplex:
		return "complex"
	default:
		return "unknown"
	}
}

// Number is a closed union over every numeric kind the notation knows.
// Exactly one payload is meaningful, selected by kind. The zero value is
// Int(0).
//
// Big payloads are copied in and out, so a Number never aliases memory the
// caller can mutate and can be shared between goroutines.
type Number struct {
	kind Kind

	i    int64
	f    float64
	bi   *big.Int
	dec  *apd.Decimal
	rat  Ratio
	cplx Complex
}

// ============================================================
// Constructors
// ============================================================

func Int(v int64) Number {
	return Number{kind: KindInt, i: v}
}

func Float(v float64) Number {
	return Number{kind: KindFloat, f: v}
}

// BigInt copies v. A nil v is zero.
func BigInt(v *big.Int) Number {
	n := Number{kind: KindBigInt, bi: new(big.Int)}
	if v != nil {
		n.bi.Set(v)
	}
	return n
}

// Decimal copies v. A nil v is zero.
func Decimal(v *apd.Decimal) Number {
	n := Number{kind: KindDecimal, dec: new(apd.Decimal)}
	if v != nil {
		n.dec.Set(v)
	}
	return n
}

// FromAny lifts a native Go value into a Number. Supported: every int and
// uint width, float32/64, complex64/128, big.Int, *big.Int, *big.Rat (when
// it fits a Ratio), *apd.Decimal, Ratio, Complex and Number. Anything else
// fails with ErrIncomparableType.
func FromAny(v any) (Number, error) {
	switch x := v.(type) {
	case Number:
		return x, nil
	case Ratio:
		if x.den == 0 {
			return Number{}, fmt.Errorf("%w: uninitialised ratio", ErrIncomparableType)
		}
		return x.Number(), nil
	case Complex:
		return x.Number(), nil
	case int:
		return Int(int64(x)), nil
	case int8:
		return Int(int64(x)), nil
	case int16:
		return Int(int64(x)), nil
	case int32:
		return Int(int64(x)), nil
	case int64:
		return Int(x), nil
	case uint:
		return fromUint64(uint64(x)), nil
	case uint8:
		return Int(int64(x)), nil
	case uint16:
		return Int(int64(x)), nil
	case uint32:
		return Int(int64(x)), nil
	case uint64:
		return fromUint64(x), nil
	case float32:
		return Float(float64(x)), nil
	case float64:
		return Float(x), nil
	case complex64:
		return FromComplex128(complex128(x)).Number(), nil
	case complex128:
		return FromComplex128(x).Number(), nil
	case *big.Int:
		if x == nil {
			break
		}
		return BigInt(x), nil
	case big.Int:
		return BigInt(&x), nil
	case *big.Rat:
		if x == nil {
			break
		}
		return fromBigRat(x)
	case *apd.Decimal:
		if x == nil {
			break
		}
		return Decimal(x), nil
	}
	return Number{}, fmt.Errorf("%w: %T", ErrIncomparableType, v)
}

func fromUint64(v uint64) Number {
	if v > math.MaxInt64 {
		return BigInt(new(big.Int).SetUint64(v))
	}
	return Int(int64(v))
}

func fromBigRat(x *big.Rat) (Number, error) {
	if x.IsInt() {
		if x.Num().IsInt64() {
			return Int(x.Num().Int64()), nil
		}
		return BigInt(x.Num()), nil
	}
	if !x.Num().IsInt64() || !x.Denom().IsInt64() {
		return Number{}, fmt.Errorf("%w: %s does not fit a 64-bit ratio", ErrArithmeticOverflow, x.RatString())
	}
	r, err := NewRatio(x.Num().Int64(), x.Denom().Int64())
	if err != nil {
		return Number{}, err
	}
	return r.Number(), nil
}

// ============================================================
// Accessors
// ============================================================

func (n Number) Kind() Kind { return n.kind }

func (n Number) AsInt() (int64, bool) {
	return n.i, n.kind == KindInt
}

func (n Number) AsFloat() (float64, bool) {
	return n.f, n.kind == KindFloat
}

// AsBigInt returns a copy of the big integer payload.
func (n Number) AsBigInt() (*big.Int, bool) {
	if n.kind != KindBigInt {
		return nil, false
	}
	return new(big.Int).Set(n.bi), true
}

// AsDecimal returns a copy of the decimal payload.
func (n Number) AsDecimal() (*apd.Decimal, bool) {
	if n.kind != KindDecimal {
		return nil, false
	}
	return new(apd.Decimal).Set(n.dec), true
}

func (n Number) AsRatio() (Ratio, bool) {
	return n.rat, n.kind == KindRatio
}

func (n Number) AsComplex() (Complex, bool) {
	return n.cplx, n.kind == KindComplex
}

// IsReal is false only for a Complex with a nonzero imaginary part.
func (n Number) IsReal() bool {
	return n.kind != KindComplex || n.cplx.IsReal()
}

// Float64 converts to the nearest float64. A Complex yields its real part;
// check IsReal first when that matters.
func (n Number) Float64() float64 {
	switch n.kind {
	case KindInt:
		return float64(n.i)
	case KindFloat:
		return n.f
	case KindBigInt:
		f, _ := new(big.Float).SetInt(n.bi).Float64()
		return f
	case KindDecimal:
		f, err := n.dec.Float64()
		if err != nil {
			return math.NaN()
		}
		return f
	case KindRatio:
		return n.rat.Float64()
	case KindComplex:
		return n.cplx.re
	}
	return math.NaN()
}

// Int64 truncates toward zero. ok is false when the value has no int64
// representation (out of range, NaN, infinite, or not real).
func (n Number) Int64() (v int64, ok bool) {
	switch n.kind {
	case KindInt:
		return n.i, true
	case KindRatio:
		return n.rat.Int64(), true
	case KindBigInt:
		return n.bi.Int64(), n.bi.IsInt64()
	case KindFloat, KindComplex:
		if n.kind == KindComplex && !n.cplx.IsReal() {
			return 0, false
		}
		f := math.Trunc(n.Float64())
		if math.IsNaN(f) || f < math.MinInt64 || f >= math.MaxInt64 {
			return 0, false
		}
		return int64(f), true
	case KindDecimal:
		r, ok := n.exactRat()
		if !ok {
			return 0, false
		}
		q := new(big.Int).Quo(r.Num(), r.Denom())
		return q.Int64(), q.IsInt64()
	}
	return 0, false
}

// exactRat returns the exact rational value for every kind except Complex
// and non-finite floats or decimals.
func (n Number) exactRat() (*big.Rat, bool) {
	switch n.kind {
	case KindInt:
		return new(big.Rat).SetInt64(n.i), true
	case KindBigInt:
		return new(big.Rat).SetInt(n.bi), true
	case KindRatio:
		return n.rat.BigRat(), true
	case KindFloat:
		if !isFinite(n.f) {
			return nil, false
		}
		return new(big.Rat).SetFloat64(n.f), true
	case KindDecimal:
		return decimalRat(n.dec)
	}
	return nil, false
}

func decimalRat(d *apd.Decimal) (*big.Rat, bool) {
	if d.Form != apd.Finite {
		return nil, false
	}
	coeff := d.Coeff.MathBigInt()
	if d.Negative {
		coeff.Neg(coeff)
	}
	exp := int64(d.Exponent)
	if exp == 0 {
		return new(big.Rat).SetInt(coeff), true
	}
	scale := new(big.Int).Exp(big.NewInt(10), big.NewInt(abs64(exp)), nil)
	if exp > 0 {
		return new(big.Rat).SetInt(coeff.Mul(coeff, scale)), true
	}
	return new(big.Rat).SetFrac(coeff, scale), true
}

func abs64(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}

// String renders n in literal syntax. See Format.
func (n Number) String() string {
	return Format(n)
}
