package numtheory_test

import (
	"fmt"

	"github.com/katalvlaran/gridcols/numtheory"
)

// ExampleLCMRange computes the sub-column factor used for a 4-column
// "between" layout: lcm(1..3)/3.
func ExampleLCMRange() {
	l, err := numtheory.LCMRange(1, 3)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(l, l/3)
	// Output: 6 2
}

// ExampleReduce shows the padding fraction of a one-item row in a
// 3-column "around" layout.
func ExampleReduce() {
	f, _ := numtheory.Reduce(2, 2)
	fmt.Println(f)
	// Output: 1/1
}
