package densemap

import "github.com/iotaledger/hive.go/constraints"

// Entry is a key-value pair that is stored in the backing slice of a map.
type Entry[K constraints.Integer, V any] struct {
	Key   K
	Value V
}

// Element is a handle to a single materialized slot of a map.
//
// An Element stays valid until the range of the map changes (growth, limit setting, Clear), because growing may move
// the backing slice.
type Element[K constraints.Integer, V any] struct {
	entry *Entry[K, V]
}

// Key returns the key of the Element.
func (e *Element[K, V]) Key() K {
	return e.entry.Key
}

// Value returns the value of the Element.
func (e *Element[K, V]) Value() V {
	return e.entry.Value
}

// SetValue overwrites the value of the Element in the map.
func (e *Element[K, V]) SetValue(value V) {
	e.entry.Value = value
}

// wrapEntry wraps an Entry with an Element (or returns nil if the entry is nil).
func wrapEntry[K constraints.Integer, V any](entry *Entry[K, V]) *Element[K, V] {
	if entry == nil {
		return nil
	}

	return &Element[K, V]{entry: entry}
}
