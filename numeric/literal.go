package numeric

import (
	"errors"
	"fmt"
	"math"
	"math/big"
	"regexp"
	"strconv"
	"strings"

	"github.com/cockroachdb/apd/v3"
)

// LiteralKind is the shape a numeric literal was classified as.
type LiteralKind uint8

const (
	LiteralUnknown LiteralKind = iota
	LiteralInt                 // 42, -7
	LiteralBigInt              // 42N
	LiteralFloat               // 1.5, 2e10, ##Inf
	LiteralDecimal             // 1.50M
	LiteralRatio               // 3/4
	LiteralComplex             // 2i, 1.5-2i, 1+i
)

func (k LiteralKind) String() string {
	switch k {
	case LiteralInt:
		return "integer"
	case LiteralBigInt:
		return "big-integer"
	case LiteralFloat:
		return "float"
	case LiteralDecimal:
		return "decimal"
	case LiteralRatio:
		return "ratio"
	case LiteralComplex:
		return "complex"
	default:
		return "unknown"
	}
}

// Literal shapes. Digits after a '.' are mandatory in complex literals
// ("1.i" and ".1i" do not match) but optional in float and decimal ones.
var (
	ratioRegex   = regexp.MustCompile(`^[+-]?\d+/\d+$`)
	complexRegex = regexp.MustCompile(`^(?:([+-]?\d+(?:\.\d+)?)i|([+-]?\d+(?:\.\d+)?)([+-])(\d+(?:\.\d+)?)?i)$`)
	bigIntRegex  = regexp.MustCompile(`^[+-]?\d+N$`)
	intRegex     = regexp.MustCompile(`^[+-]?\d+$`)
	decimalRegex = regexp.MustCompile(`^[+-]?\d+(?:\.\d*)?(?:[eE][+-]?\d+)?M$`)
	floatRegex   = regexp.MustCompile(`^[+-]?\d+(?:\.\d*(?:[eE][+-]?\d+)?|[eE][+-]?\d+)$`)
)

var symbolicFloats = map[string]float64{
	"##Inf":  math.Inf(1),
	"##-Inf": math.Inf(-1),
	"##NaN":  math.NaN(),
}

// LiteralOptions configures a Recognizer.
type LiteralOptions struct {
	// AllowComplex accepts complex literals such as 1+2i. When false a
	// complex-shaped literal is malformed.
	AllowComplex bool
}

// Recognizer classifies literal text and converts it into a Number. It is
// immutable and safe for concurrent use.
type Recognizer struct {
	opts LiteralOptions
}

func NewRecognizer(opts LiteralOptions) *Recognizer {
	return &Recognizer{opts: opts}
}

var defaultRecognizer = NewRecognizer(LiteralOptions{AllowComplex: true})

// Classify reports the shape of text using a recognizer that accepts
// complex literals.
func Classify(text string) (LiteralKind, error) {
	return defaultRecognizer.Classify(text)
}

// ParseLiteral converts text using a recognizer that accepts complex
// literals.
func ParseLiteral(text string) (Number, error) {
	return defaultRecognizer.Parse(text)
}

// Classify maps text to exactly one LiteralKind by shape alone, or fails
// with ErrMalformedLiteral.
func (r *Recognizer) Classify(text string) (LiteralKind, error) {
	kind := classify(text)
	switch {
	case kind == LiteralUnknown:
		return kind, literalErr(kind, text, malformedOffset(text), ErrMalformedLiteral)
	case kind == LiteralComplex && !r.opts.AllowComplex:
		return kind, literalErr(kind, text, len(text)-1,
			fmt.Errorf("%w: complex literals are disabled", ErrMalformedLiteral))
	}
	return kind, nil
}

func classify(text string) LiteralKind {
	if _, ok := symbolicFloats[text]; ok {
		return LiteralFloat
	}
	switch {
	case ratioRegex.MatchString(text):
		return LiteralRatio
	case complexRegex.MatchString(text):
		return LiteralComplex
	case bigIntRegex.MatchString(text):
		return LiteralBigInt
	case intRegex.MatchString(text):
		return LiteralInt
	case decimalRegex.MatchString(text):
		return LiteralDecimal
	case floatRegex.MatchString(text):
		return LiteralFloat
	}
	return LiteralUnknown
}

// Parse classifies text and extracts its value. An integer literal too
// large for int64 yields a BigInt Number; its classification is still
// LiteralInt.
func (r *Recognizer) Parse(text string) (Number, error) {
	v, _, err := r.ParseKind(text)
	return v, err
}

// ParseKind is Parse that also returns the classification, so callers that
// need both match text once. The kind is set whenever classification
// succeeded, even if extracting the value then fails.
func (r *Recognizer) ParseKind(text string) (Number, LiteralKind, error) {
	kind, err := r.Classify(text)
	if err != nil {
		return Number{}, kind, err
	}
	v, err := extract(kind, text)
	return v, kind, err
}

func extract(kind LiteralKind, text string) (Number, error) {
	switch kind {
	case LiteralRatio:
		v, err := ParseRatio(text)
		if err != nil {
			return Number{}, err
		}
		return v.Number(), nil

	case LiteralComplex:
		v, err := ParseComplex(text)
		if err != nil {
			return Number{}, err
		}
		return v.Number(), nil

	case LiteralBigInt:
		v, ok := new(big.Int).SetString(text[:len(text)-1], 10)
		if !ok {
			return Number{}, literalErr(kind, text, 0, ErrMalformedLiteral)
		}
		return BigInt(v), nil

	case LiteralInt:
		v, err := strconv.ParseInt(text, 10, 64)
		if err == nil {
			return Int(v), nil
		}
		b, ok := new(big.Int).SetString(text, 10)
		if !ok {
			return Number{}, literalErr(kind, text, 0, ErrMalformedLiteral)
		}
		return BigInt(b), nil

	case LiteralDecimal:
		d, _, err := apd.NewFromString(normalizeDecimal(text[:len(text)-1]))
		if err != nil {
			return Number{}, literalErr(kind, text, 0, fmt.Errorf("%w: %v", ErrMalformedLiteral, err))
		}
		return Decimal(d), nil

	case LiteralFloat:
		if f, ok := symbolicFloats[text]; ok {
			return Float(f), nil
		}
		f, err := parseFloat(kind, text, text, 0)
		if err != nil {
			return Number{}, err
		}
		return Float(f), nil
	}
	return Number{}, literalErr(kind, text, 0, ErrMalformedLiteral)
}

// ParseComplex parses the two complex shapes:
//
//	[+-]D[.D]i               imaginary only, real part +0
//	[+-]D[.D](+|-)[D[.D]]i   real and imaginary, a missing coefficient is 1
//
// where D is one or more digits. "-0i" is (0, -0.0).
func ParseComplex(text string) (Complex, error) {
	m := complexRegex.FindStringSubmatch(text)
	if m == nil {
		return Complex{}, literalErr(LiteralComplex, text, malformedOffset(text), ErrMalformedLiteral)
	}

	if m[1] != "" {
		im, err := parseFloat(LiteralComplex, text, m[1], 0)
		if err != nil {
			return Complex{}, err
		}
		return NewComplex(0, im), nil
	}

	re, err := parseFloat(LiteralComplex, text, m[2], 0)
	if err != nil {
		return Complex{}, err
	}
	im := 1.0
	if m[4] != "" {
		im, err = parseFloat(LiteralComplex, text, m[4], len(m[2])+1)
		if err != nil {
			return Complex{}, err
		}
	}
	if m[3] == "-" {
		im = -im
	}
	return NewComplex(re, im), nil
}

func parseFloat(kind LiteralKind, text, part string, offset int) (float64, error) {
	f, err := strconv.ParseFloat(part, 64)
	if err == nil {
		return f, nil
	}
	if errors.Is(err, strconv.ErrRange) {
		return 0, literalErr(kind, text, offset,
			fmt.Errorf("%w: %q is out of float64 range", ErrArithmeticOverflow, part))
	}
	return 0, literalErr(kind, text, offset, fmt.Errorf("%w: %v", ErrMalformedLiteral, err))
}

// normalizeDecimal drops a leading '+' and fills a bare trailing '.' so
// apd accepts the forms the float grammar allows ("1.", "+1.e3").
func normalizeDecimal(s string) string {
	s = strings.TrimPrefix(s, "+")
	if i := strings.IndexByte(s, '.'); i >= 0 && (i+1 == len(s) || s[i+1] == 'e' || s[i+1] == 'E') {
		s = s[:i+1] + "0" + s[i+1:]
	}
	return s
}

// malformedOffset points at the first byte that cannot appear in any
// numeric literal, or 0 when every byte could.
func malformedOffset(text string) int {
	for i := 0; i < len(text); i++ {
		c := text[i]
		if (c >= '0' && c <= '9') || strings.IndexByte("+-./eEiNM#", c) >= 0 {
			continue
		}
		return i
	}
	return 0
}
