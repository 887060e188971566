package numeric

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/cockroachdb/apd/v3"
)

// Op is a binary arithmetic operator on Numbers.
type Op uint8

const (
	OpAdd Op = iota
	OpSub
	OpMul
	OpDiv
)

func (op Op) String() string {
	switch op {
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "*"
	case OpDiv:
		return "/"
	default:
		return "?"
	}
}

// ParseOp accepts "+", "-", "*" or "/". "x" is also accepted for "*"
// since an unquoted * is expanded by most shells.
func ParseOp(s string) (Op, error) {
	switch s {
	case "+":
		return OpAdd, nil
	case "-":
		return OpSub, nil
	case "*", "x":
		return OpMul, nil
	case "/":
		return OpDiv, nil
	}
	return 0, fmt.Errorf("numeric: unknown operator %q", s)
}

func Add(a, b Number) (Number, error) { return Apply(OpAdd, a, b) }
func Sub(a, b Number) (Number, error) { return Apply(OpSub, a, b) }
func Mul(a, b Number) (Number, error) { return Apply(OpMul, a, b) }
func Div(a, b Number) (Number, error) { return Apply(OpDiv, a, b) }

// Apply computes a op b in the widest kind of the two operands:
//
//	Complex > Float > Decimal > Ratio > BigInt > Int
//
// Int results that overflow are promoted to BigInt. Dividing two integer
// kinds gives a Ratio unless the quotient is whole. Ratio results that do not
// fit in 64 bits are recomputed exactly and kept only if they are whole.
// Decimal results are rounded in DecimalContext.
func Apply(op Op, a, b Number) (Number, error) {
	return ApplyContext(DecimalContext, op, a, b)
}

// ApplyContext is Apply with decimal arithmetic rounded in ctx.
func ApplyContext(ctx *apd.Context, op Op, a, b Number) (Number, error) {
	if ctx == nil {
		ctx = DecimalContext
	}
	switch widest(a.kind, b.kind) {
	case KindComplex:
		return applyComplex(op, toComplex(a), toComplex(b))
	case KindFloat:
		return applyFloat(op, a.Float64(), b.Float64()), nil
	case KindDecimal:
		return applyDecimal(ctx, op, a, b)
	case KindRatio:
		x, errx := toRatio(a)
		y, erry := toRatio(b)
		if errx == nil && erry == nil {
			n, err := applyRatio(op, x, y)
			if !errors.Is(err, ErrArithmeticOverflow) {
				return n, err
			}
		}
		return applyRat(op, a, b)
	case KindBigInt:
		return applyBig(op, toBigInt(a), toBigInt(b))
	}
	return applyInt(op, a.i, b.i)
}

func rank(k Kind) int {
	switch k {
	case KindInt:
		return 0
	case KindBigInt:
		return 1
	case KindRatio:
		return 2
	case KindDecimal:
		return 3
	case KindFloat:
		return 4
	case KindComplex:
		return 5
	}
	return -1
}

func widest(a, b Kind) Kind {
	if rank(a) >= rank(b) {
		return a
	}
	return b
}

func toComplex(n Number) Complex {
	if n.kind == KindComplex {
		return n.cplx
	}
	return RealComplex(n.Float64())
}

func toRatio(n Number) (Ratio, error) {
	switch n.kind {
	case KindRatio:
		return n.rat, nil
	case KindInt:
		return RatioFromInt(n.i)
	case KindBigInt:
		if !n.bi.IsInt64() {
			return Ratio{}, fmt.Errorf("%w: %s does not fit a 64-bit ratio", ErrArithmeticOverflow, n.bi)
		}
		return RatioFromInt(n.bi.Int64())
	}
	return Ratio{}, incomparable(n.kind, KindRatio)
}

func toBigInt(n Number) *big.Int {
	if n.kind == KindBigInt {
		return n.bi
	}
	return big.NewInt(n.i)
}

func toDecimal(ctx *apd.Context, n Number) (*apd.Decimal, error) {
	switch n.kind {
	case KindDecimal:
		return n.dec, nil
	case KindInt:
		return apd.New(n.i, 0), nil
	case KindBigInt:
		return apd.NewWithBigInt(new(apd.BigInt).SetMathBigInt(n.bi), 0), nil
	case KindRatio:
		return n.rat.Decimal(ctx)
	}
	return nil, incomparable(n.kind, KindDecimal)
}

func applyComplex(op Op, x, y Complex) (Number, error) {
	switch op {
	case OpAdd:
		return x.Add(y).Number(), nil
	case OpSub:
		return x.Sub(y).Number(), nil
	case OpMul:
		return x.Mul(y).Number(), nil
	}
	q, err := x.Div(y)
	if err != nil {
		return Number{}, err
	}
	return q.Number(), nil
}

// applyFloat follows IEEE 754, so dividing by zero yields an infinity.
func applyFloat(op Op, x, y float64) Number {
	switch op {
	case OpAdd:
		return Float(x + y)
	case OpSub:
		return Float(x - y)
	case OpMul:
		return Float(x * y)
	}
	return Float(x / y)
}

func applyDecimal(ctx *apd.Context, op Op, a, b Number) (Number, error) {
	x, err := toDecimal(ctx, a)
	if err != nil {
		return Number{}, err
	}
	y, err := toDecimal(ctx, b)
	if err != nil {
		return Number{}, err
	}

	res := new(apd.Decimal)
	switch op {
	case OpAdd:
		_, err = ctx.Add(res, x, y)
	case OpSub:
		_, err = ctx.Sub(res, x, y)
	case OpMul:
		_, err = ctx.Mul(res, x, y)
	case OpDiv:
		if y.IsZero() {
			return Number{}, fmt.Errorf("%w: %s / %s", ErrDivisionByZero, x, y)
		}
		if _, err = ctx.Quo(res, x, y); err == nil {
			err = trimDecimal(ctx, res)
		}
	}
	if err != nil {
		return Number{}, fmt.Errorf("%w: decimal %s: %v", ErrArithmeticOverflow, op, err)
	}
	return Decimal(res), nil
}

func applyRatio(op Op, x, y Ratio) (Number, error) {
	var r Ratio
	var err error
	switch op {
	case OpAdd:
		r, err = x.Add(y)
	case OpSub:
		r, err = x.Sub(y)
	case OpMul:
		r, err = x.Mul(y)
	case OpDiv:
		r, err = x.Div(y)
	}
	if err != nil {
		return Number{}, err
	}
	return r.Number(), nil
}

func applyInt(op Op, x, y int64) (Number, error) {
	var v int64
	ok := true
	switch op {
	case OpAdd:
		v, ok = addInt64(x, y)
	case OpSub:
		v, ok = subInt64(x, y)
	case OpMul:
		v, ok = mulInt64(x, y)
	case OpDiv:
		if y == 0 {
			return Number{}, fmt.Errorf("%w: %d / 0", ErrDivisionByZero, x)
		}
		r, err := NewRatio(x, y)
		if err != nil {
			return applyBig(op, big.NewInt(x), big.NewInt(y))
		}
		if r.IsInteger() {
			return Int(r.num), nil
		}
		return r.Number(), nil
	}
	if !ok {
		return applyBig(op, big.NewInt(x), big.NewInt(y))
	}
	return Int(v), nil
}

func applyBig(op Op, x, y *big.Int) (Number, error) {
	res := new(big.Int)
	switch op {
	case OpAdd:
		res.Add(x, y)
	case OpSub:
		res.Sub(x, y)
	case OpMul:
		res.Mul(x, y)
	case OpDiv:
		if y.Sign() == 0 {
			return Number{}, fmt.Errorf("%w: %s / 0", ErrDivisionByZero, x)
		}
		q := new(big.Rat).SetFrac(x, y)
		if q.IsInt() {
			return BigInt(q.Num()), nil
		}
		return fromBigRat(q)
	}
	return BigInt(res), nil
}

// applyRat is the exact fallback for Ratio operands that overflow int64.
func applyRat(op Op, a, b Number) (Number, error) {
	x, okx := a.exactRat()
	y, oky := b.exactRat()
	if !okx || !oky {
		return Number{}, incomparable(a.kind, b.kind)
	}
	res := new(big.Rat)
	switch op {
	case OpAdd:
		res.Add(x, y)
	case OpSub:
		res.Sub(x, y)
	case OpMul:
		res.Mul(x, y)
	case OpDiv:
		if y.Sign() == 0 {
			return Number{}, fmt.Errorf("%w: %s / 0", ErrDivisionByZero, a)
		}
		res.Quo(x, y)
	}
	return fromBigRat(res)
}
