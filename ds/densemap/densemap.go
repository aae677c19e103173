package densemap

import "github.com/iotaledger/hive.go/constraints"

// DenseMap is a sorted map for dense integer keys that stores its values in a single contiguous slice indexed by
// key - MinKey. Writes outside the materialized range grow it, unless a configured limit forbids it.
//
// DenseMap is not safe for concurrent use.
type DenseMap[K constraints.Integer, V any] struct {
	core[K, V]

	limits *autoGrow[K]
}

// New returns a new, empty DenseMap.
func New[K constraints.Integer, V any](opts ...Option[K]) *DenseMap[K, V] {
	options := new(Options[K]).apply(opts...)

	limits := &autoGrow[K]{
		lowerLimit:     options.lowerLimit,
		hasLowerLimit:  options.hasLowerLimit,
		higherLimit:    options.higherLimit,
		hasHigherLimit: options.hasHigherLimit,
	}

	return &DenseMap[K, V]{
		core:   newCore[K, V](limits, options.capacity),
		limits: limits,
	}
}

// NewFromEntries returns a DenseMap holding a copy of the given entries, which must be sorted by key without gaps.
func NewFromEntries[K constraints.Integer, V any](entries []Entry[K, V], opts ...Option[K]) (*DenseMap[K, V], error) {
	d := New[K, V](opts...)
	if err := d.span.load(entries); err != nil {
		return nil, err
	}

	if lowerLimit, exists := d.LowerLimit(); exists {
		d.span.trimBelow(lowerLimit)
	}
	if higherLimit, exists := d.HigherLimit(); exists {
		d.span.trimAbove(higherLimit)
	}

	return d, nil
}

// SetLowerLimit sets the smallest key that the map may grow to. Entries below the limit are removed, which empties the
// map if its whole range lies below the limit.
func (d *DenseMap[K, V]) SetLowerLimit(key K) *DenseMap[K, V] {
	d.limits.setLowerLimit(key)
	d.span.trimBelow(key)

	return d
}

// SetHigherLimit sets the largest key that the map may grow to. Entries above the limit are removed, which empties the
// map if its whole range lies above the limit.
func (d *DenseMap[K, V]) SetHigherLimit(key K) *DenseMap[K, V] {
	d.limits.setHigherLimit(key)
	d.span.trimAbove(key)

	return d
}

// LowerLimit returns the configured lower limit.
func (d *DenseMap[K, V]) LowerLimit() (key K, exists bool) {
	return d.limits.lowerLimit, d.limits.hasLowerLimit
}

// HigherLimit returns the configured higher limit.
func (d *DenseMap[K, V]) HigherLimit() (key K, exists bool) {
	return d.limits.higherLimit, d.limits.hasHigherLimit
}

// Clone returns a deep copy of the map including its limits.
func (d *DenseMap[K, V]) Clone() *DenseMap[K, V] {
	cloned := &DenseMap[K, V]{core: d.core.clone()}
	cloned.limits = cloned.policy.(*autoGrow[K])

	return cloned
}

// Swap exchanges the contents and the limits of both maps.
func (d *DenseMap[K, V]) Swap(other *DenseMap[K, V]) {
	*d, *other = *other, *d
}

// String returns a human-readable version of the DenseMap.
func (d *DenseMap[K, V]) String() string {
	return d.format("DenseMap")
}
