// Package ittybitty provides a growable bit set that keeps small sets inline.
//
// BitSet[A] behaves like a growable vector of boolean flags indexed by
// non-negative integers. Its first len(A)*W - 1 bits (W = bits.UintSize) live
// directly in the fixed-size array A; setting a bit beyond that spills the set
// to a single heap-allocated word buffer. The top bit of the last inline word
// is reserved as the heap flag, which is why one inline bit is unusable.
//
// # Quick Start
//
//	var b ittybitty.Small // 127 inline bits on 64-bit platforms
//	b.Set(4, true)
//	b.Get(0) // false
//	b.Get(4) // true
//
//	b.Set(1000, true) // spills to the heap
//	for bit := range b.All() {
//	    fmt.Println(bit) // 4, 1000
//	}
//
// # Choosing A
//
// A is an array of uint with at least two elements. Small, Medium and Large
// cover the common sizes; any other Words shape can be named directly:
//
//	b := ittybitty.New[[3]uint]()
//	c := ittybitty.WithCapacity[[4]uint](2000) // heap storage up front
//
// # Scans and Iteration
//
// NextSetBit is inclusive of its argument and PrevSetBit exclusive, which is
// what lets the reverse iterator park its cursor on the bit it just yielded.
// Both return None when nothing qualifies.
//
// Iter and IterRev borrow the set; IntoIter takes its storage and leaves the
// source empty. All and Backward provide range-over-func forms.
//
// # Observability
//
// The package is silent by default. SetLogger and SetMetricsCollector install
// process-wide hooks that are called whenever a set spills or its heap buffer
// grows.
//
// # Concurrency
//
// A BitSet is not safe for concurrent mutation. Concurrent readers are safe as
// long as no writer is active.
package ittybitty
