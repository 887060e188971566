package numeric

import (
	"errors"
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApply(t *testing.T) {
	half := MustRatio(1, 2).Number()
	twoPow63 := new(big.Int).Lsh(big.NewInt(1), 63)

	tests := []struct {
		name     string
		op       Op
		a, b     Number
		wantKind Kind
		want     string
	}{
		{"int add", OpAdd, Int(1), Int(2), KindInt, "3"},
		{"int sub", OpSub, Int(1), Int(2), KindInt, "-1"},
		{"int mul", OpMul, Int(6), Int(7), KindInt, "42"},
		{"int div whole", OpDiv, Int(4), Int(2), KindInt, "2"},
		{"int div fraction", OpDiv, Int(1), Int(2), KindRatio, "1/2"},
		{"int div negative", OpDiv, Int(3), Int(-6), KindRatio, "-1/2"},
		{"int add overflow", OpAdd, Int(math.MaxInt64), Int(1), KindBigInt, twoPow63.String() + "N"},
		{"int mul overflow", OpMul, Int(math.MaxInt64), Int(2), KindBigInt, "18446744073709551614N"},
		{"int div min by minus one", OpDiv, Int(math.MinInt64), Int(-1), KindBigInt, twoPow63.String() + "N"},
		{"bigint add", OpAdd, BigInt(twoPow63), Int(1), KindBigInt, "9223372036854775809N"},
		{"bigint div", OpDiv, BigInt(big.NewInt(10)), Int(4), KindRatio, "5/2"},
		{"ratio add int", OpAdd, half, Int(1), KindRatio, "3/2"},
		{"ratio mul", OpMul, half, half, KindRatio, "1/4"},
		{"ratio overflow falls back", OpAdd, MustRatio(math.MaxInt64, 1).Number(), MustRatio(1, 1).Number(), KindBigInt, twoPow63.String() + "N"},
		{"ratio add float", OpAdd, half, Float(0.25), KindFloat, "0.75"},
		{"float div zero", OpDiv, Float(1), Int(0), KindFloat, "##Inf"},
		{"decimal add int", OpAdd, mustDecimal(t, "1.5"), Int(1), KindDecimal, "2.5M"},
		{"decimal mul ratio", OpMul, mustDecimal(t, "2"), half, KindDecimal, "1.0M"},
		{"decimal div", OpDiv, mustDecimal(t, "1"), mustDecimal(t, "8"), KindDecimal, "0.125M"},
		{"complex add int", OpAdd, NewComplex(1, 2).Number(), Int(1), KindComplex, "2+2i"},
		{"complex mul", OpMul, NewComplex(0, 1).Number(), NewComplex(0, 1).Number(), KindComplex, "-1+0i"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Apply(tt.op, tt.a, tt.b)
			require.NoError(t, err)
			assert.Equal(t, tt.wantKind, got.Kind())
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestApplyDivisionByZero(t *testing.T) {
	zeros := []Number{Int(0), BigInt(big.NewInt(0)), Zero.Number(), mustDecimal(t, "0.00"), NewComplex(0, 0).Number()}
	for _, z := range zeros {
		t.Run(z.Kind().String(), func(t *testing.T) {
			_, err := Div(Int(1), z)
			assert.True(t, errors.Is(err, ErrDivisionByZero), "1 / %s: %v", z, err)
		})
	}
}

func TestApplyRatioTooLarge(t *testing.T) {
	a := MustRatio(1, math.MaxInt64).Number()
	b := MustRatio(1, math.MaxInt64-1).Number()
	_, err := Add(a, b)
	assert.True(t, errors.Is(err, ErrArithmeticOverflow))
}

func TestParseOp(t *testing.T) {
	for _, s := range []string{"+", "-", "*", "/"} {
		op, err := ParseOp(s)
		require.NoError(t, err)
		assert.Equal(t, s, op.String())
	}
	op, err := ParseOp("x")
	require.NoError(t, err)
	assert.Equal(t, OpMul, op)

	_, err = ParseOp("%")
	assert.Error(t, err)
	_, err = ParseOp("X")
	assert.Error(t, err)
}

func TestApplyContextPrecision(t *testing.T) {
	ctx := DecimalContext.WithPrecision(5)
	q, err := ApplyContext(ctx, OpDiv, mustDecimal(t, "1"), mustDecimal(t, "3"))
	require.NoError(t, err)
	assert.Equal(t, "0.33333M", q.String())

	// A quotient wider than the precision stays finite in exponent form.
	q, err = ApplyContext(ctx, OpDiv, mustDecimal(t, "1000000"), mustDecimal(t, "1"))
	require.NoError(t, err)
	assert.Equal(t, "1E+6M", q.String())
	back, err := ParseLiteral(Format(q))
	require.NoError(t, err)
	assert.True(t, Equal(q, back))
	assert.True(t, Equal(q, Int(1000000)))

	q, err = ApplyContext(ctx, OpDiv, MustRatio(1234567, 2).Number(), mustDecimal(t, "1"))
	require.NoError(t, err)
	assert.Equal(t, "6.1728E+5M", q.String())

	q, err = Div(mustDecimal(t, "1"), mustDecimal(t, "3"))
	require.NoError(t, err)
	assert.Equal(t, "0.3333333333333333333333333333333333M", q.String())
}
