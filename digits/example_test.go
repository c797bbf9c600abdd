package digits_test

import (
	"fmt"

	"github.com/katalvlaran/trinoise/digits"
)

// ExampleToDigits shows the most-significant-first convention and the
// periodic reduction.
func ExampleToDigits() {
	p, _ := digits.Period(3)
	a, _ := digits.ToDigits(5, 3)
	b, _ := digits.ToDigits(5+int64(p), 3)
	fmt.Println(p, a, b)
	// Output:
	// 27 [0 1 2] [0 1 2]
}

// ExampleOdometer enumerates base 2 in counting order.
func ExampleOdometer() {
	o, _ := digits.NewOdometer(2, 0)
	for i := 0; i < 4; i++ {
		fmt.Println(o.Index(), o.Digits())
		o.Next()
	}
	// Output:
	// 0 [0 0]
	// 1 [0 1]
	// 2 [1 0]
	// 3 [1 1]
}
