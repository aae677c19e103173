package densemap

import "github.com/iotaledger/hive.go/constraints"

// FixedMap is the rigid variant of DenseMap: its range is only changed by Reserve, SetLowerLimit and SetHigherLimit,
// and writes outside of it fail with ErrRangeExceeded. Insert therefore never reports a newly inserted key.
//
// FixedMap is not safe for concurrent use.
type FixedMap[K constraints.Integer, V any] struct {
	core[K, V]
}

// NewFixed returns a new FixedMap. The limit options materialize the range as if SetLowerLimit and SetHigherLimit were
// called in that order.
func NewFixed[K constraints.Integer, V any](opts ...Option[K]) *FixedMap[K, V] {
	options := new(Options[K]).apply(opts...)

	f := &FixedMap[K, V]{
		core: newCore[K, V](fixedRange[K]{}, options.capacity),
	}

	if options.hasLowerLimit {
		f.SetLowerLimit(options.lowerLimit)
	}
	if options.hasHigherLimit {
		f.SetHigherLimit(options.higherLimit)
	}

	return f
}

// NewFixedFromEntries returns a FixedMap holding a copy of the given entries, which must be sorted by key without gaps.
func NewFixedFromEntries[K constraints.Integer, V any](entries []Entry[K, V]) (*FixedMap[K, V], error) {
	f := NewFixed[K, V]()
	if err := f.span.load(entries); err != nil {
		return nil, err
	}

	return f, nil
}

// SetLowerLimit makes the given key the smallest key of the map. The range is trimmed or extended backward as
// required, and an empty map (or one lying completely below the key) is reset to hold just the key.
// It panics if the extended range does not fit into memory.
func (f *FixedMap[K, V]) SetLowerLimit(key K) *FixedMap[K, V] {
	switch {
	case f.span.isEmpty(), key > f.span.maxKey():
		f.span.seed(key)
	case key > f.span.minKey():
		f.span.trimBelow(key)
	case key < f.span.minKey():
		if err := f.span.dig(key); err != nil {
			panic(err)
		}
	}

	return f
}

// SetHigherLimit makes the given key the largest key of the map. The range is trimmed or extended forward as
// required, and an empty map (or one lying completely above the key) is reset to hold just the key.
// It panics if the extended range does not fit into memory.
func (f *FixedMap[K, V]) SetHigherLimit(key K) *FixedMap[K, V] {
	switch {
	case f.span.isEmpty(), key < f.span.minKey():
		f.span.seed(key)
	case key < f.span.maxKey():
		f.span.trimAbove(key)
	case key > f.span.maxKey():
		if err := f.span.pile(key); err != nil {
			panic(err)
		}
	}

	return f
}

// Clone returns a deep copy of the map.
func (f *FixedMap[K, V]) Clone() *FixedMap[K, V] {
	return &FixedMap[K, V]{core: f.core.clone()}
}

// Swap exchanges the contents of both maps.
func (f *FixedMap[K, V]) Swap(other *FixedMap[K, V]) {
	*f, *other = *other, *f
}

// String returns a human-readable version of the FixedMap.
func (f *FixedMap[K, V]) String() string {
	return f.format("FixedMap")
}
