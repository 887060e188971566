package numeric

import (
	"errors"
	"math"
	"math/big"
	"testing"

	"github.com/cockroachdb/apd/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustDecimal(t testing.TB, s string) Number {
	t.Helper()
	d, _, err := apd.NewFromString(s)
	require.NoError(t, err)
	return Decimal(d)
}

func TestCompare(t *testing.T) {
	half := MustRatio(1, 2).Number()

	tests := []struct {
		name string
		a, b Number
		want int
	}{
		{"int int", Int(1), Int(2), -1},
		{"int ratio", Int(1), half, 1},
		{"ratio int", half, Int(1), -1},
		{"ratio ratio", MustRatio(1, 3).Number(), MustRatio(1, 2).Number(), -1},
		{"ratio float equal", half, Float(0.5), 0},
		{"float ratio", Float(0.4), half, -1},
		{"int float", Int(2), Float(2.0), 0},
		{"bigint int", BigInt(big.NewInt(3)), Int(2), 1},
		{"bigint ratio", BigInt(big.NewInt(2)), MustRatio(4, 2).Number(), 0},
		{"decimal ratio", mustDecimal(t, "0.5"), half, 0},
		{"decimal int", mustDecimal(t, "2.01"), Int(2), 1},
		{"decimal float", mustDecimal(t, "0.25"), Float(0.5), -1},
		{"complex real int", NewComplex(1, 0).Number(), Int(1), 0},
		{"complex real ordered", NewComplex(1, 0).Number(), Int(2), -1},
		{"complex equal", NewComplex(1, 2).Number(), NewComplex(1, 2).Number(), 0},
		{"nan first", Float(math.NaN()), Int(-100), -1},
		{"inf", Float(math.Inf(1)), BigInt(new(big.Int).Lsh(big.NewInt(1), 200)), 1},
		{
			"ratios too close for float",
			MustRatio(math.MaxInt64, math.MaxInt64-1).Number(),
			MustRatio(math.MaxInt64-1, math.MaxInt64-2).Number(),
			-1,
		},
		{"int vs near-one ratio", Int(1), MustRatio(math.MaxInt64, math.MaxInt64-1).Number(), -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Compare(tt.a, tt.b)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)

			rev, err := Compare(tt.b, tt.a)
			require.NoError(t, err)
			assert.Equal(t, -tt.want, rev, "Compare is not antisymmetric")
		})
	}
}

func TestCompareIncomparable(t *testing.T) {
	c := NewComplex(1, 2).Number()

	for _, other := range []Number{Int(1), Float(1), MustRatio(1, 2).Number(), NewComplex(1, 3).Number()} {
		_, err := Compare(c, other)
		assert.True(t, errors.Is(err, ErrIncomparableType), "%s vs %s: %v", c, other, err)
		_, err = Compare(other, c)
		assert.True(t, errors.Is(err, ErrIncomparableType), "%s vs %s: %v", other, c, err)
	}
}

func TestEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b Number
		want bool
	}{
		{"ratio float", MustRatio(1, 2).Number(), Float(0.5), true},
		{"third float", MustRatio(1, 3).Number(), Float(1.0 / 3.0), true},
		{"ratio int", MustRatio(4, 2).Number(), Int(2), true},
		{"ratio int unequal", MustRatio(3, 2).Number(), Int(1), false},
		{"bigint int", BigInt(big.NewInt(7)), Int(7), true},
		{"decimal trailing zeros", mustDecimal(t, "1.50"), mustDecimal(t, "1.5"), true},
		{"decimal ratio", mustDecimal(t, "0.75"), MustRatio(3, 4).Number(), true},
		{"nan", Float(math.NaN()), Float(math.NaN()), false},
		{"negative zero", Float(math.Copysign(0, -1)), Int(0), true},
		{"complex real", NewComplex(2, 0).Number(), Int(2), true},
		{"complex imaginary", NewComplex(2, 1).Number(), Int(2), false},
		{"complex complex", NewComplex(2, 1).Number(), NewComplex(2, 1).Number(), true},
		{"zero value", Number{}, Int(0), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Equal(tt.a, tt.b))
			assert.Equal(t, tt.want, Equal(tt.b, tt.a), "Equal is not symmetric")
		})
	}
}

func TestFromAny(t *testing.T) {
	tests := []struct {
		name string
		in   any
		kind Kind
	}{
		{"int", 5, KindInt},
		{"int8", int8(-5), KindInt},
		{"uint32", uint32(5), KindInt},
		{"uint64 small", uint64(5), KindInt},
		{"uint64 large", uint64(math.MaxUint64), KindBigInt},
		{"float32", float32(1.5), KindFloat},
		{"complex64", complex64(1 + 2i), KindComplex},
		{"big int", big.NewInt(5), KindBigInt},
		{"big rat whole", big.NewRat(10, 5), KindInt},
		{"big rat", big.NewRat(1, 3), KindRatio},
		{"decimal", apd.New(15, -1), KindDecimal},
		{"ratio", MustRatio(1, 2), KindRatio},
		{"number", Float(1), KindFloat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, err := FromAny(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.kind, n.Kind())
		})
	}

	for _, bad := range []any{nil, "1", true, Ratio{}, (*big.Int)(nil)} {
		_, err := FromAny(bad)
		assert.True(t, errors.Is(err, ErrIncomparableType), "FromAny(%#v)", bad)
	}
}

func TestNumberInt64(t *testing.T) {
	tests := []struct {
		n      Number
		want   int64
		wantOK bool
	}{
		{Int(3), 3, true},
		{MustRatio(-7, 2).Number(), -3, true},
		{Float(2.9), 2, true},
		{Float(math.NaN()), 0, false},
		{Float(1e30), 0, false},
		{BigInt(new(big.Int).Lsh(big.NewInt(1), 70)), 0, false},
		{NewComplex(4, 0).Number(), 4, true},
		{NewComplex(4, 1).Number(), 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.n.String(), func(t *testing.T) {
			v, ok := tt.n.Int64()
			assert.Equal(t, tt.wantOK, ok)
			if ok {
				assert.Equal(t, tt.want, v)
			}
		})
	}

	v, ok := mustDecimal(t, "-12.9").Int64()
	assert.True(t, ok)
	assert.Equal(t, int64(-12), v)
}

func TestNumberCopiesBigPayloads(t *testing.T) {
	b := big.NewInt(10)
	n := BigInt(b)
	b.SetInt64(20)

	got, _ := n.AsBigInt()
	assert.Equal(t, int64(10), got.Int64())

	got.SetInt64(30)
	again, _ := n.AsBigInt()
	assert.Equal(t, int64(10), again.Int64())
}

func TestCompareNaNAgainstEqual(t *testing.T) {
	nan := Float(math.NaN())

	c, err := Compare(nan, nan)
	require.NoError(t, err)
	assert.Equal(t, 0, c)
	assert.False(t, Equal(nan, nan))

	c, err = Compare(Int(-100), nan)
	require.NoError(t, err)
	assert.Equal(t, 1, c)
}
