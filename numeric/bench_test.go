package numeric

import (
	"math"
	"testing"
)

func BenchmarkRatioAdd(b *testing.B) {
	x := MustRatio(355, 113)
	y := MustRatio(-22, 7)
	for i := 0; i < b.N; i++ {
		_, _ = x.Add(y)
	}
}

func BenchmarkCompareIntRatio(b *testing.B) {
	x := Int(3)
	y := MustRatio(math.MaxInt64, math.MaxInt64-1).Number()
	for i := 0; i < b.N; i++ {
		_, _ = Compare(x, y)
	}
}

func BenchmarkParseLiteral(b *testing.B) {
	inputs := []string{"42", "1.5", "3/4", "1+2i", "1.50M", "42N"}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = ParseLiteral(inputs[i%len(inputs)])
	}
}

func BenchmarkFromFloat(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = FromFloat(math.Pi, 1e-9)
	}
}
