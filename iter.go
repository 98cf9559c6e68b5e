package ittybitty

import "iter"

// Iter walks the set bits of a BitSet in ascending order.
// It borrows the set; mutating the set while iterating is allowed but the
// iterator then observes the new contents from its cursor onward.
type Iter[A Words] struct {
	v *BitSet[A]
	i int
}

// Iter returns a forward iterator over the set bits.
func (b *BitSet[A]) Iter() *Iter[A] {
	return &Iter[A]{v: b}
}

// Next returns the next set bit. ok is false once the set is exhausted.
func (it *Iter[A]) Next() (bit int, ok bool) {
	if it.i == None {
		return None, false
	}
	bit = it.v.NextSetBit(it.i)
	if bit == None {
		it.i = None
		return None, false
	}
	it.i = bit + 1
	return bit, true
}

// Seq adapts the remaining items to a range-over-func sequence.
func (it *Iter[A]) Seq() iter.Seq[int] {
	return seq(it.Next)
}

// RevIter walks the set bits of a BitSet in descending order.
type RevIter[A Words] struct {
	v *BitSet[A]
	i int
}

// IterRev returns a reverse iterator over the set bits.
func (b *BitSet[A]) IterRev() *RevIter[A] {
	return &RevIter[A]{v: b, i: b.Capacity()}
}

// Next returns the next lower set bit. ok is false once the set is
// exhausted.
func (it *RevIter[A]) Next() (bit int, ok bool) {
	if it.i == None {
		return None, false
	}
	// PrevSetBit excludes its argument, so the cursor can sit on the
	// last yielded bit.
	it.i = it.v.PrevSetBit(it.i)
	if it.i == None {
		return None, false
	}
	return it.i, true
}

// Seq adapts the remaining items to a range-over-func sequence.
func (it *RevIter[A]) Seq() iter.Seq[int] {
	return seq(it.Next)
}

// IntoIter is a consuming forward iterator. It owns the storage taken from
// the BitSet it was created from and drops it once exhausted.
type IntoIter[A Words] struct {
	v BitSet[A]
	i int
}

// IntoIter moves the contents of b into a new iterator and leaves b empty
// and inline.
func (b *BitSet[A]) IntoIter() *IntoIter[A] {
	it := &IntoIter[A]{}
	it.v.data, it.v.heap = b.data, b.heap
	var zero A
	b.data, b.heap = zero, nil
	return it
}

// Next returns the next set bit. ok is false once the set is exhausted.
func (it *IntoIter[A]) Next() (bit int, ok bool) {
	if it.i == None {
		return None, false
	}
	bit = it.v.NextSetBit(it.i)
	if bit == None {
		it.i = None
		it.v.Reset()
		return None, false
	}
	it.i = bit + 1
	return bit, true
}

// Seq adapts the remaining items to a range-over-func sequence.
func (it *IntoIter[A]) Seq() iter.Seq[int] {
	return seq(it.Next)
}

func seq(next func() (int, bool)) iter.Seq[int] {
	return func(yield func(int) bool) {
		for {
			bit, ok := next()
			if !ok || !yield(bit) {
				return
			}
		}
	}
}

// All returns a sequence of the set bits in ascending order.
func (b *BitSet[A]) All() iter.Seq[int] {
	return func(yield func(int) bool) {
		for bit := b.NextSetBit(0); bit != None; bit = b.NextSetBit(bit + 1) {
			if !yield(bit) {
				return
			}
		}
	}
}

// Backward returns a sequence of the set bits in descending order.
func (b *BitSet[A]) Backward() iter.Seq[int] {
	return func(yield func(int) bool) {
		for bit := b.PrevSetBit(b.Capacity()); bit != None; bit = b.PrevSetBit(bit) {
			if !yield(bit) {
				return
			}
		}
	}
}

// AppendTo appends the set bits in ascending order to dst.
func (b *BitSet[A]) AppendTo(dst []int) []int {
	for bit := range b.All() {
		dst = append(dst, bit)
	}
	return dst
}
