package numeric

import (
	"math"
	"strconv"
	"strings"
)

// Format renders n in literal syntax such that ParseLiteral reads back the
// same kind and value for every finite number:
//
//	Int      42
//	BigInt   42N
//	Float    1.5, 2.0, 1e+21, ##Inf, ##-Inf, ##NaN
//	Decimal  1.50M
//	Ratio    3/4
//	Complex  1.5-2i
func Format(n Number) string {
	switch n.kind {
	case KindInt:
		return strconv.FormatInt(n.i, 10)
	case KindFloat:
		return formatFloat(n.f)
	case KindBigInt:
		return n.bi.String() + "N"
	case KindDecimal:
		return n.dec.String() + "M"
	case KindRatio:
		return n.rat.String()
	case KindComplex:
		return n.cplx.String()
	}
	return "?"
}

// formatFloat uses the shortest round-trip form and forces a '.' or
// exponent so the text is not read back as an integer.
func formatFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return "##NaN"
	case math.IsInf(f, 1):
		return "##Inf"
	case math.IsInf(f, -1):
		return "##-Inf"
	}
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".e") {
		s += ".0"
	}
	return s
}
