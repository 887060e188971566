package numeric

import (
	"math"
	"math/big"
	"testing"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name string
		n    Number
		want string
	}{
		{"int", Int(-42), "-42"},
		{"zero value", Number{}, "0"},
		{"float whole", Float(2), "2.0"},
		{"float fraction", Float(1.5), "1.5"},
		{"float negative zero", Float(math.Copysign(0, -1)), "-0.0"},
		{"float large", Float(1e21), "1e+21"},
		{"float small", Float(1e-7), "1e-07"},
		{"float inf", Float(math.Inf(1)), "##Inf"},
		{"float neg inf", Float(math.Inf(-1)), "##-Inf"},
		{"float nan", Float(math.NaN()), "##NaN"},
		{"bigint", BigInt(big.NewInt(7)), "7N"},
		{"ratio", MustRatio(-3, 4).Number(), "-3/4"},
		{"ratio whole", MustRatio(4, 2).Number(), "2/1"},
		{"complex", NewComplex(1.5, -2).Number(), "1.5-2i"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Format(tt.n); got != tt.want {
				t.Errorf("Format() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormatRoundTrip(t *testing.T) {
	values := []Number{
		Int(0),
		Int(math.MinInt64),
		Int(math.MaxInt64),
		Float(0.1),
		Float(-2),
		Float(math.Copysign(0, -1)),
		Float(1e300),
		Float(5e-324),
		Float(math.Inf(-1)),
		BigInt(new(big.Int).Lsh(big.NewInt(1), 100)),
		BigInt(big.NewInt(-1)),
		mustDecimal(t, "1.50"),
		mustDecimal(t, "-0.001"),
		mustDecimal(t, "1E+5"),
		MustRatio(1, 3).Number(),
		MustRatio(-22, 7).Number(),
		MustRatio(5, 1).Number(),
		NewComplex(0, 1).Number(),
		NewComplex(-1.25, 3).Number(),
		NewComplex(0, math.Copysign(0, -1)).Number(),
	}

	for _, n := range values {
		text := Format(n)
		t.Run(text, func(t *testing.T) {
			back, err := ParseLiteral(text)
			if err != nil {
				t.Fatalf("ParseLiteral(%q): %v", text, err)
			}
			if back.Kind() != n.Kind() {
				t.Errorf("kind = %s, want %s", back.Kind(), n.Kind())
			}
			if !Equal(back, n) {
				t.Errorf("value = %s, want %s", back, n)
			}
			if again := Format(back); again != text {
				t.Errorf("reformatted = %q, want %q", again, text)
			}
		})
	}
}
