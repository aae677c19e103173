package densemap

import (
	"fmt"
	"slices"

	"github.com/iotaledger/hive.go/constraints"
	"github.com/iotaledger/hive.go/ierrors"
	"github.com/iotaledger/hive.go/lo"
)

// core implements the operations that DenseMap and FixedMap share. The growthPolicy decides which implicit range
// changes are allowed, everything else is identical for both variants.
type core[K constraints.Integer, V any] struct {
	span   span[K, V]
	policy growthPolicy[K]

	// capacity hint used when the range is materialized from scratch.
	capacity int
}

func newCore[K constraints.Integer, V any](policy growthPolicy[K], capacity int) core[K, V] {
	c := core[K, V]{
		policy:   policy,
		capacity: capacity,
	}

	if capacity > 0 {
		c.span.elements = make([]Entry[K, V], 0, capacity)
	}

	return c
}

// Reserve materializes every key in [low, high]. Existing entries are kept and the range is never shrunk.
func (c *core[K, V]) Reserve(low K, high K) error {
	if err := c.policy.admitReserve(low, high); err != nil {
		return err
	}

	if c.span.isEmpty() {
		return c.span.materialize(low, high, c.capacity)
	}

	if low > high {
		return nil
	}

	// validate both directions before touching the span
	if low < c.span.minKey() {
		if _, err := width(low, c.span.maxKey()); err != nil {
			return err
		}
	}
	if high > c.span.maxKey() {
		if _, err := width(min(low, c.span.minKey()), high); err != nil {
			return err
		}
	}

	if err := c.span.dig(low); err != nil {
		return err
	}

	return c.span.pile(high)
}

// Insert stores the value under the given key and returns true if the key was not present before.
func (c *core[K, V]) Insert(key K, value V) (inserted bool, err error) {
	entry, inserted, err := c.slot(key)
	if err != nil {
		return false, err
	}

	entry.Value = value

	return inserted, nil
}

// Ref returns a pointer to the value stored under the given key, growing the range in the same way as Insert.
//
// The pointer stays valid until the range of the map changes.
func (c *core[K, V]) Ref(key K) (*V, error) {
	entry, _, err := c.slot(key)
	if err != nil {
		return nil, err
	}

	return &entry.Value, nil
}

// Get returns the value stored under the given key or ErrNotFound if the key is not materialized.
func (c *core[K, V]) Get(key K) (value V, err error) {
	entry := c.span.entry(key)
	if entry == nil {
		return value, ierrors.Wrapf(ErrNotFound, "key %d", key)
	}

	return entry.Value, nil
}

// Find returns the Element holding the given key or nil if the key is not materialized.
func (c *core[K, V]) Find(key K) *Element[K, V] {
	return wrapEntry(c.span.entry(key))
}

// Has returns if the given key is materialized.
func (c *core[K, V]) Has(key K) bool {
	return c.span.contains(key)
}

// Count returns 1 if the given key is materialized and 0 otherwise.
func (c *core[K, V]) Count(key K) int {
	return lo.Cond(c.span.contains(key), 1, 0)
}

// Size returns the number of materialized keys, which is MaxKey - MinKey + 1 for a non-empty map.
func (c *core[K, V]) Size() int {
	return c.span.size()
}

// IsEmpty returns true if no key is materialized.
func (c *core[K, V]) IsEmpty() bool {
	return c.span.isEmpty()
}

// MinKey returns the smallest materialized key.
func (c *core[K, V]) MinKey() (key K, exists bool) {
	key, _, exists = c.span.bounds()

	return key, exists
}

// MaxKey returns the largest materialized key.
func (c *core[K, V]) MaxKey() (key K, exists bool) {
	_, key, exists = c.span.bounds()

	return key, exists
}

// Clear removes all entries.
func (c *core[K, V]) Clear() {
	c.span.clear()
}

// ForEach iterates through the map in ascending key order. Returning false from the callback aborts the iteration.
func (c *core[K, V]) ForEach(callback func(key K, value V) bool) {
	for _, entry := range c.span.elements {
		if !callback(entry.Key, entry.Value) {
			return
		}
	}
}

// ForEachReverse iterates through the map in descending key order. Returning false from the callback aborts the
// iteration.
func (c *core[K, V]) ForEachReverse(callback func(key K, value V) bool) {
	for i := len(c.span.elements) - 1; i >= 0; i-- {
		if !callback(c.span.elements[i].Key, c.span.elements[i].Value) {
			return
		}
	}
}

// Iterator returns an Iterator that starts at the smallest key.
func (c *core[K, V]) Iterator() *Iterator[K, V] {
	return newIterator(&c.span, 0)
}

// ReverseIterator returns an Iterator that starts at the largest key.
func (c *core[K, V]) ReverseIterator() *Iterator[K, V] {
	return newIterator(&c.span, c.span.size()-1)
}

// Keys returns the materialized keys in ascending order.
func (c *core[K, V]) Keys() []K {
	return lo.Map(c.span.elements, func(entry Entry[K, V]) K {
		return entry.Key
	})
}

// Values returns the values in ascending key order.
func (c *core[K, V]) Values() []V {
	return lo.Map(c.span.elements, func(entry Entry[K, V]) V {
		return entry.Value
	})
}

// Entries returns a copy of all entries in ascending key order.
func (c *core[K, V]) Entries() []Entry[K, V] {
	return slices.Clone(c.span.elements)
}

// slot returns the Entry for the given key, growing the range if the policy allows it. The returned flag is true if
// the key was newly materialized.
func (c *core[K, V]) slot(key K) (entry *Entry[K, V], grown bool, err error) {
	if c.span.isEmpty() {
		if err = c.policy.admitSeed(key); err != nil {
			return nil, false, err
		}

		return c.span.seed(key), true, nil
	}

	switch minKey, maxKey := c.span.minKey(), c.span.maxKey(); {
	case key < minKey:
		if err = c.policy.admitBelow(key, minKey); err != nil {
			return nil, false, err
		}
		if err = c.span.dig(key); err != nil {
			return nil, false, err
		}

		return &c.span.elements[0], true, nil
	case key > maxKey:
		if err = c.policy.admitAbove(key, maxKey); err != nil {
			return nil, false, err
		}
		if err = c.span.pile(key); err != nil {
			return nil, false, err
		}

		return &c.span.elements[len(c.span.elements)-1], true, nil
	default:
		return c.span.entry(key), false, nil
	}
}

// format returns a human-readable version of the map state.
func (c *core[K, V]) format(name string) string {
	low, high, exists := c.span.bounds()
	if !exists {
		return fmt.Sprintf("%s{}", name)
	}

	return fmt.Sprintf("%s{[%d, %d], size=%d}", name, low, high, c.span.size())
}

func (c *core[K, V]) clone() core[K, V] {
	return core[K, V]{
		span:     c.span.clone(),
		policy:   c.policy.clone(),
		capacity: c.capacity,
	}
}
