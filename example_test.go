package ittybitty_test

import (
	"fmt"
	"slices"

	"github.com/atlv24/ittybitty"
)

func Example() {
	var b ittybitty.Small
	b.Set(4, true)

	fmt.Println(b.Get(0), b.Get(4))
	// Output: false true
}

func ExampleBitSet_All() {
	b := ittybitty.New[[2]uint]()
	for _, n := range []int{3, 17, 127, 128, 340} {
		b.Set(n, true)
	}

	fmt.Println(slices.Collect(b.All()))
	fmt.Println(slices.Collect(b.Backward()))
	fmt.Println(b.Spilled())
	// Output:
	// [3 17 127 128 340]
	// [340 128 127 17 3]
	// true
}

func ExampleBitSet_Truncate() {
	var b ittybitty.Medium
	b.Set(239, true)
	b.Set(240, true)
	b.Set(241, true)
	b.Truncate(240)

	fmt.Println(b.String())
	// Output: [239]
}

func ExampleBitSet_PrevSetBit() {
	var b ittybitty.Small
	b.Set(1, true)

	fmt.Println(b.PrevSetBit(0) == ittybitty.None)
	fmt.Println(b.PrevSetBit(1) == ittybitty.None)
	fmt.Println(b.PrevSetBit(2))
	// Output:
	// true
	// true
	// 1
}

func ExampleWithCapacity() {
	b := ittybitty.WithCapacity[[2]uint](1732)
	for _, n := range []int{3, 17, 127, 128, 340, 600, 942, 1732} {
		b.Set(n, true)
	}

	fmt.Println(b)
	// Output: [3 17 127 128 340 600 942 1732]
}

func ExampleBitSet_IntoIter() {
	b := ittybitty.New[[3]uint]()
	b.Set(9, true)
	b.Set(2, true)

	it := b.IntoIter()
	for bit, ok := it.Next(); ok; bit, ok = it.Next() {
		fmt.Println(bit)
	}
	fmt.Println(b.IsEmpty())
	// Output:
	// 2
	// 9
	// true
}
