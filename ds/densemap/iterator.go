package densemap

import "github.com/iotaledger/hive.go/constraints"

// Iterator is an object that allows to iterate over a map by providing methods to walk through its entries in
// ascending or descending key order.
//
// The Iterator is bound to the current range of the map. Changing the range while iterating invalidates it.
type Iterator[K constraints.Integer, V any] struct {
	span    *span[K, V]
	start   int
	current int
	state   IteratorState
}

// newIterator is the constructor of the Iterator that takes the offset of the starting Entry as its parameter.
func newIterator[K constraints.Integer, V any](s *span[K, V], start int) *Iterator[K, V] {
	return &Iterator[K, V]{
		span:    s,
		start:   start,
		current: start,
	}
}

// State returns the current IteratorState that the Iterator is in.
func (i *Iterator[K, V]) State() IteratorState {
	return i.state
}

// HasNext returns true if there is another Element after the previously retrieved Element that can be requested via the
// Next method.
func (i *Iterator[K, V]) HasNext() bool {
	if i.state == InitialState {
		return i.valid(i.current)
	}

	return i.valid(i.current + 1)
}

// HasPrev returns true if there is another Element before the previously retrieved Element that can be requested via
// the Prev method.
func (i *Iterator[K, V]) HasPrev() bool {
	if i.state == InitialState {
		return i.valid(i.current)
	}

	return i.valid(i.current - 1)
}

// Next returns the next Element in the Iterator and advances the internal pointer. The method panics if there is no
// next Element that can be retrieved (always use HasNext to check if another Element can be requested).
func (i *Iterator[K, V]) Next() *Element[K, V] {
	if !i.HasNext() {
		panic("no next element found in iterator")
	}

	if i.state != InitialState {
		i.current++
	}

	return i.moveTo(i.current)
}

// Prev returns the previous Element in the Iterator and moves back the internal pointer. The method panics if there is
// no previous Element that can be retrieved (always use HasPrev to check if another Element can be requested).
func (i *Iterator[K, V]) Prev() *Element[K, V] {
	if !i.HasPrev() {
		panic("no previous element found in iterator")
	}

	if i.state != InitialState {
		i.current--
	}

	return i.moveTo(i.current)
}

// Reset resets the Iterator to its initial Element.
func (i *Iterator[K, V]) Reset() {
	i.current = i.start
	i.state = InitialState
}

func (i *Iterator[K, V]) moveTo(offset int) *Element[K, V] {
	switch offset {
	case 0:
		i.state = LeftEndReachedState
	case i.span.size() - 1:
		i.state = RightEndReachedState
	default:
		i.state = IterationStartedState
	}

	return wrapEntry(&i.span.elements[offset])
}

func (i *Iterator[K, V]) valid(offset int) bool {
	return offset >= 0 && offset < i.span.size()
}

// region IteratorState ////////////////////////////////////////////////////////////////////////////////////////////////

// IteratorState represents the state of the Iterator that is used to track where in the set of contained Elements the
// pointer is currently located.
type IteratorState int

const (
	// InitialState is the state of the Iterator before the first Element has been retrieved.
	InitialState IteratorState = iota

	// IterationStartedState is the state of the Iterator after the first Element has been retrieved and before we have
	// reached either the first or the last Element.
	IterationStartedState

	// LeftEndReachedState is the state of the Iterator after we have reached the smallest Element.
	LeftEndReachedState

	// RightEndReachedState is the state of the Iterator after we have reached the largest Element.
	RightEndReachedState
)

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////
