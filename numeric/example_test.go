package numeric_test

import (
	"fmt"
	"math"

	"github.com/Neumenon/numtower/numeric"
)

func ExampleNewRatio() {
	r, err := numeric.NewRatio(6, -8)
	if err != nil {
		panic(err)
	}
	fmt.Println(r)
	// Output: -3/4
}

func ExampleFromFloat() {
	r, err := numeric.FromFloat(math.Pi, 1e-3)
	if err != nil {
		panic(err)
	}
	fmt.Println(r)
	// Output: 201/64
}

func ExampleClassify() {
	for _, s := range []string{"42", "42N", "1.5", "1.50M", "3/4", "1+2i"} {
		kind, _ := numeric.Classify(s)
		fmt.Printf("%s %s\n", s, kind)
	}
	// Output:
	// 42 integer
	// 42N big-integer
	// 1.5 float
	// 1.50M decimal
	// 3/4 ratio
	// 1+2i complex
}

func ExampleCompare() {
	a, _ := numeric.ParseLiteral("1/3")
	b, _ := numeric.ParseLiteral("0.3")
	c, _ := numeric.Compare(a, b)
	fmt.Println(c, numeric.Equal(a, b))
	// Output: 1 false
}

func ExampleDiv() {
	q, _ := numeric.Div(numeric.Int(1), numeric.Int(3))
	s, _ := numeric.Add(q, numeric.Int(1))
	fmt.Println(q, s, s.Kind())
	// Output: 1/3 4/3 ratio
}
