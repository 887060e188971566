package numeric

import (
	"errors"
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"

	"github.com/cockroachdb/apd/v3"
)

// Ratio is an exact fraction with int64 numerator and denominator.
//
// Values are always canonical: the denominator is positive and shares no
// factor with the numerator. The numerator is never math.MinInt64, so Neg
// and Abs cannot overflow. Two Ratios hold the same value iff they are ==.
//
// The zero value Ratio{} has a zero denominator and is not a valid number;
// use Zero, One or one of the constructors.
type Ratio struct {
	num int64
	den int64
}

var (
	Zero = Ratio{num: 0, den: 1}
	One  = Ratio{num: 1, den: 1}
)

// DecimalContext is the apd context used when a Ratio or Number is turned
// into a big decimal and no explicit context is given. 34 digits matches
// IEEE 754 decimal128.
var DecimalContext = apd.BaseContext.WithPrecision(34)

// NewRatio returns num/den in canonical form.
//
// Examples:
//
//	NewRatio(6, 8)   → 3/4
//	NewRatio(6, -8)  → -3/4
//	NewRatio(0, -5)  → 0/1
//	NewRatio(1, 0)   → ErrDivisionByZero
func NewRatio(num, den int64) (Ratio, error) {
	if den == 0 {
		return Ratio{}, fmt.Errorf("%w: %d/0", ErrDivisionByZero, num)
	}
	if num == 0 {
		return Zero, nil
	}

	n, d := magnitude(num), magnitude(den)
	if g := gcdUint(n, d); g != 1 {
		n /= g
		d /= g
	}
	if n > math.MaxInt64 || d > math.MaxInt64 {
		return Ratio{}, fmt.Errorf("%w: %d/%d", ErrArithmeticOverflow, num, den)
	}

	sn := int64(n)
	if (num < 0) != (den < 0) {
		sn = -sn
	}
	return Ratio{num: sn, den: int64(d)}, nil
}

// MustRatio is like NewRatio but panics on error.
func MustRatio(num, den int64) Ratio {
	r, err := NewRatio(num, den)
	if err != nil {
		panic(err)
	}
	return r
}

// RatioFromInt returns n/1.
func RatioFromInt(n int64) (Ratio, error) {
	return NewRatio(n, 1)
}

// ParseRatio parses "N" or "N/D" where N and D are base-10 int64 values.
// The result is reduced, so "6/8" parses to 3/4.
func ParseRatio(text string) (Ratio, error) {
	parts := strings.Split(text, "/")
	if len(parts) > 2 {
		offset := len(parts[0]) + 1 + len(parts[1])
		return Ratio{}, literalErr(LiteralRatio, text, offset,
			fmt.Errorf("%w: more than one '/'", ErrMalformedLiteral))
	}

	num, err := parseRatioPart(text, parts[0], 0)
	if err != nil {
		return Ratio{}, err
	}

	den := int64(1)
	denOffset := 0
	if len(parts) == 2 {
		denOffset = len(parts[0]) + 1
		den, err = parseRatioPart(text, parts[1], denOffset)
		if err != nil {
			return Ratio{}, err
		}
	}

	r, err := NewRatio(num, den)
	if err != nil {
		return Ratio{}, literalErr(LiteralRatio, text, denOffset, err)
	}
	return r, nil
}

func parseRatioPart(text, part string, offset int) (int64, error) {
	v, err := strconv.ParseInt(part, 10, 64)
	if err == nil {
		return v, nil
	}
	if errors.Is(err, strconv.ErrRange) {
		return 0, literalErr(LiteralRatio, text, offset,
			fmt.Errorf("%w: %q does not fit in 64 bits", ErrArithmeticOverflow, part))
	}
	return 0, literalErr(LiteralRatio, text, offset,
		fmt.Errorf("%w: %q is not an integer", ErrMalformedLiteral, part))
}

// Num returns the numerator.
func (r Ratio) Num() int64 { return r.num }

// Den returns the denominator, always positive for a valid Ratio.
func (r Ratio) Den() int64 { return r.den }

// Sign returns -1, 0 or +1.
func (r Ratio) Sign() int {
	switch {
	case r.num < 0:
		return -1
	case r.num > 0:
		return 1
	}
	return 0
}

func (r Ratio) IsZero() bool    { return r.num == 0 }
func (r Ratio) IsInteger() bool { return r.den == 1 }

// ============================================================
// Arithmetic
// ============================================================

// Add returns r + o.
//
// Both numerators are divided by their gcd and both denominators by theirs
// before cross-multiplying, and the numerator gcd is multiplied back in
// last. When a product still does not fit, ErrArithmeticOverflow is
// returned instead of a wrapped value.
func (r Ratio) Add(o Ratio) (Ratio, error) {
	if r.num == 0 {
		return o, nil
	}
	if o.num == 0 {
		return r, nil
	}

	f := int64(gcdUint(magnitude(r.num), magnitude(o.num)))
	g := int64(gcdUint(uint64(r.den), uint64(o.den)))

	x, ok1 := mulInt64(r.num/f, o.den/g)
	y, ok2 := mulInt64(o.num/f, r.den/g)
	if !ok1 || !ok2 {
		return Ratio{}, overflow(r, "+", o)
	}
	n, ok := addInt64(x, y)
	if !ok {
		return Ratio{}, overflow(r, "+", o)
	}
	lcm, ok := mulInt64(r.den, o.den/g)
	if !ok {
		return Ratio{}, overflow(r, "+", o)
	}

	s, err := NewRatio(n, lcm)
	if err != nil {
		return Ratio{}, err
	}
	n, ok = mulInt64(s.num, f)
	if !ok {
		return Ratio{}, overflow(r, "+", o)
	}
	return NewRatio(n, s.den)
}

// Sub returns r - o.
func (r Ratio) Sub(o Ratio) (Ratio, error) {
	return r.Add(o.Neg())
}

// Mul returns r * o. The pairs (r.num, o.den) and (o.num, r.den) are
// reduced before the products are formed.
func (r Ratio) Mul(o Ratio) (Ratio, error) {
	c, err := NewRatio(r.num, o.den)
	if err != nil {
		return Ratio{}, err
	}
	d, err := NewRatio(o.num, r.den)
	if err != nil {
		return Ratio{}, err
	}
	n, ok1 := mulInt64(c.num, d.num)
	den, ok2 := mulInt64(c.den, d.den)
	if !ok1 || !ok2 {
		return Ratio{}, overflow(r, "*", o)
	}
	return NewRatio(n, den)
}

// Div returns r / o, or ErrDivisionByZero when o is zero.
func (r Ratio) Div(o Ratio) (Ratio, error) {
	if o.num == 0 {
		return Ratio{}, fmt.Errorf("%w: %s / %s", ErrDivisionByZero, r, o)
	}
	inv, err := o.Reciprocal()
	if err != nil {
		return Ratio{}, err
	}
	return r.Mul(inv)
}

// Reciprocal returns den/num.
func (r Ratio) Reciprocal() (Ratio, error) {
	if r.num == 0 {
		return Ratio{}, fmt.Errorf("%w: reciprocal of %s", ErrDivisionByZero, r)
	}
	return NewRatio(r.den, r.num)
}

func (r Ratio) Neg() Ratio {
	return Ratio{num: -r.num, den: r.den}
}

func (r Ratio) Abs() Ratio {
	if r.num < 0 {
		return r.Neg()
	}
	return r
}

// Mediant returns (r.num+o.num)/(r.den+o.den) in canonical form. This is
// the Stern–Brocot step, not addition.
func (r Ratio) Mediant(o Ratio) (Ratio, error) {
	n, ok1 := addInt64(r.num, o.num)
	d, ok2 := addInt64(r.den, o.den)
	if !ok1 || !ok2 {
		return Ratio{}, overflow(r, "mediant", o)
	}
	return NewRatio(n, d)
}

func overflow(a Ratio, op string, b Ratio) error {
	return fmt.Errorf("%w: %s %s %s", ErrArithmeticOverflow, a, op, b)
}

// ============================================================
// Conversions
// ============================================================

// Int64 truncates toward zero.
func (r Ratio) Int64() int64 {
	return r.num / r.den
}

func (r Ratio) Float64() float64 {
	return float64(r.num) / float64(r.den)
}

// BigInt truncates toward zero.
func (r Ratio) BigInt() *big.Int {
	return new(big.Int).Quo(big.NewInt(r.num), big.NewInt(r.den))
}

// BigRat returns the exact value as a big.Rat.
func (r Ratio) BigRat() *big.Rat {
	return big.NewRat(r.num, r.den)
}

// Decimal divides numerator by denominator in ctx. A nil ctx means
// DecimalContext. Non-terminating expansions are rounded to the context
// precision; terminating ones carry no trailing zeros.
func (r Ratio) Decimal(ctx *apd.Context) (*apd.Decimal, error) {
	if ctx == nil {
		ctx = DecimalContext
	}
	d := new(apd.Decimal)
	if _, err := ctx.Quo(d, apd.New(r.num, 0), apd.New(r.den, 0)); err != nil {
		return nil, fmt.Errorf("numeric: %s as decimal: %w", r, err)
	}
	if err := trimDecimal(ctx, d); err != nil {
		return nil, fmt.Errorf("numeric: %s as decimal: %w", r, err)
	}
	return d, nil
}

// trimDecimal strips the trailing zeros a quotient is padded with, but never
// past the units digit, so 100 stays "100" rather than "1E+2". An integer
// part wider than ctx.Precision keeps its exponent form ("1E+6").
func trimDecimal(ctx *apd.Context, d *apd.Decimal) error {
	d.Reduce(d)
	if d.Exponent <= 0 || d.NumDigits()+int64(d.Exponent) > int64(ctx.Precision) {
		return nil
	}
	if _, err := ctx.Quantize(d, d, 0); err != nil {
		return fmt.Errorf("%w: %v", ErrArithmeticOverflow, err)
	}
	return nil
}

// Number lifts r into the Number union.
func (r Ratio) Number() Number {
	return Number{kind: KindRatio, rat: r}
}

// Compare orders r against any numeric kind. See Compare.
func (r Ratio) Compare(other Number) (int, error) {
	return Compare(r.Number(), other)
}

// Equal reports whether other is a number with the same value. Non-numeric
// values are never equal.
func (r Ratio) Equal(other any) bool {
	n, err := FromAny(other)
	if err != nil {
		return false
	}
	return Equal(r.Number(), n)
}

// String renders "num/den", including a denominator of 1.
func (r Ratio) String() string {
	return strconv.FormatInt(r.num, 10) + "/" + strconv.FormatInt(r.den, 10)
}

func (r Ratio) MarshalText() ([]byte, error) {
	if r.den == 0 {
		return nil, fmt.Errorf("%w: uninitialised ratio", ErrDivisionByZero)
	}
	return []byte(r.String()), nil
}

func (r *Ratio) UnmarshalText(text []byte) error {
	v, err := ParseRatio(string(text))
	if err != nil {
		return err
	}
	*r = v
	return nil
}
