package numeric

import (
	"fmt"
	"math"
	"math/cmplx"
	"strconv"
	"strings"
)

// Complex is a complex number with float64 components.
//
// Equality is component-wise float equality, so -0.0 == 0.0 and a NaN
// component never equals anything. The zero value is 0+0i.
type Complex struct {
	re float64
	im float64
}

func NewComplex(re, im float64) Complex {
	return Complex{re: re, im: im}
}

// RealComplex returns re+0i.
func RealComplex(re float64) Complex {
	return Complex{re: re}
}

func ComplexFromInts(re, im int64) Complex {
	return Complex{re: float64(re), im: float64(im)}
}

func FromComplex128(c complex128) Complex {
	return Complex{re: real(c), im: imag(c)}
}

func (c Complex) Complex128() complex128 {
	return complex(c.re, c.im)
}

func (c Complex) Real() float64 { return c.re }
func (c Complex) Imag() float64 { return c.im }

// IsReal reports whether the imaginary part is zero.
func (c Complex) IsReal() bool {
	return c.im == 0
}

func (c Complex) Add(o Complex) Complex {
	return Complex{re: c.re + o.re, im: c.im + o.im}
}

func (c Complex) Sub(o Complex) Complex {
	return Complex{re: c.re - o.re, im: c.im - o.im}
}

func (c Complex) Mul(o Complex) Complex {
	return FromComplex128(c.Complex128() * o.Complex128())
}

// Div returns c / o. Dividing by 0+0i is an error rather than an
// infinite result.
func (c Complex) Div(o Complex) (Complex, error) {
	if o.re == 0 && o.im == 0 {
		return Complex{}, fmt.Errorf("%w: %s / %s", ErrDivisionByZero, c, o)
	}
	return FromComplex128(c.Complex128() / o.Complex128()), nil
}

func (c Complex) Neg() Complex  { return Complex{re: -c.re, im: -c.im} }
func (c Complex) Conj() Complex { return Complex{re: c.re, im: -c.im} }

// Abs returns the modulus.
func (c Complex) Abs() float64 {
	return cmplx.Abs(c.Complex128())
}

// Number lifts c into the Number union.
func (c Complex) Number() Number {
	return Number{kind: KindComplex, cplx: c}
}

// Compare orders c against another number. Equal values compare as 0;
// otherwise both sides must be real or ErrIncomparableType is returned.
func (c Complex) Compare(other Number) (int, error) {
	return Compare(c.Number(), other)
}

// Equal reports whether other has the same value. A non-real Complex is
// never equal to a non-Complex value.
func (c Complex) Equal(other any) bool {
	n, err := FromAny(other)
	if err != nil {
		return false
	}
	return Equal(c.Number(), n)
}

// String renders "re+imi" or "re-imi" without exponents, so finite values
// parse back with ParseComplex. The sign of a negative zero imaginary part
// is kept: (0, -0.0) renders as "0-0i".
func (c Complex) String() string {
	var sb strings.Builder
	sb.WriteString(formatComponent(c.re))
	if math.Signbit(c.im) {
		sb.WriteByte('-')
	} else {
		sb.WriteByte('+')
	}
	sb.WriteString(formatComponent(math.Abs(c.im)))
	sb.WriteByte('i')
	return sb.String()
}

func formatComponent(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func (c Complex) MarshalText() ([]byte, error) {
	if !isFinite(c.re) || !isFinite(c.im) {
		return nil, fmt.Errorf("%w: %s", ErrNotFinite, c)
	}
	return []byte(c.String()), nil
}

func (c *Complex) UnmarshalText(text []byte) error {
	v, err := ParseComplex(string(text))
	if err != nil {
		return err
	}
	*c = v
	return nil
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
