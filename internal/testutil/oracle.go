package testutil

import (
	"slices"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/bits-and-blooms/bitset"
)

// None mirrors the sentinel returned by BitSet scans.
const None = -1

// Oracle is a reference model for BitSet. Every mutation is mirrored into a
// roaring bitmap (membership, ordering) and a bits-and-blooms bitset (scans)
// so the two independent implementations also cross-check each other.
type Oracle struct {
	rb *roaring.Bitmap
	bs *bitset.BitSet
}

// NewOracle returns an empty reference model.
func NewOracle() *Oracle {
	return &Oracle{
		rb: roaring.New(),
		bs: bitset.New(0),
	}
}

// Set mirrors BitSet.Set.
func (o *Oracle) Set(bit int, value bool) {
	if value {
		o.rb.Add(uint32(bit))
		o.bs.Set(uint(bit))
		return
	}
	o.rb.Remove(uint32(bit))
	o.bs.Clear(uint(bit))
}

// Truncate mirrors BitSet.Truncate.
func (o *Oracle) Truncate(bit int) {
	if o.rb.IsEmpty() || uint32(bit) > o.rb.Maximum() {
		return
	}
	o.rb.RemoveRange(uint64(bit), uint64(o.rb.Maximum())+1)
	for i, ok := o.bs.NextSet(uint(bit)); ok; i, ok = o.bs.NextSet(i + 1) {
		o.bs.Clear(i)
	}
}

// Clear mirrors BitSet.Clear.
func (o *Oracle) Clear() {
	o.rb.Clear()
	o.bs.ClearAll()
}

// Get reports whether bit is set.
func (o *Oracle) Get(bit int) bool {
	return o.rb.Contains(uint32(bit))
}

// Count returns the number of set bits.
func (o *Oracle) Count() int {
	return int(o.rb.GetCardinality())
}

// Next returns the lowest set bit >= bit, or None.
func (o *Oracle) Next(bit int) int {
	i, ok := o.bs.NextSet(uint(max(bit, 0)))
	if !ok {
		return None
	}
	return int(i)
}

// Prev returns the highest set bit < bit, or None.
func (o *Oracle) Prev(bit int) int {
	if bit <= 0 || o.bs.Len() == 0 {
		return None
	}
	// PreviousSet is inclusive and gives up past the bitset's length.
	i, ok := o.bs.PreviousSet(min(uint(bit-1), o.bs.Len()-1))
	if !ok {
		return None
	}
	return int(i)
}

// Sorted returns the set bits in ascending order.
func (o *Oracle) Sorted() []int {
	out := make([]int, 0, o.rb.GetCardinality())
	it := o.rb.Iterator()
	for it.HasNext() {
		out = append(out, int(it.Next()))
	}
	return out
}

// Reversed returns the set bits in descending order.
func (o *Oracle) Reversed() []int {
	out := o.Sorted()
	slices.Reverse(out)
	return out
}
