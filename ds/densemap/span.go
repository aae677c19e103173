package densemap

import (
	"math"
	"slices"

	"github.com/iotaledger/hive.go/constraints"
	"github.com/iotaledger/hive.go/ierrors"
)

// span is the contiguous backing storage shared by DenseMap and FixedMap. Its elements always form the closed interval
// [minKey, maxKey] with exactly one Entry per key.
type span[K constraints.Integer, V any] struct {
	elements []Entry[K, V]
}

func (s *span[K, V]) isEmpty() bool {
	return len(s.elements) == 0
}

func (s *span[K, V]) size() int {
	return len(s.elements)
}

// minKey returns the smallest key. It must only be called on a non-empty span.
func (s *span[K, V]) minKey() K {
	return s.elements[0].Key
}

// maxKey returns the largest key. It must only be called on a non-empty span.
func (s *span[K, V]) maxKey() K {
	return s.elements[len(s.elements)-1].Key
}

// bounds returns the smallest and the largest key and a flag that indicates if the span holds any keys.
func (s *span[K, V]) bounds() (low K, high K, exists bool) {
	if s.isEmpty() {
		return low, high, false
	}

	return s.minKey(), s.maxKey(), true
}

// contains checks if the key lies inside the materialized interval.
func (s *span[K, V]) contains(key K) bool {
	return !s.isEmpty() && key >= s.minKey() && key <= s.maxKey()
}

// offsetOf returns the index of the Entry holding the given key.
func (s *span[K, V]) offsetOf(key K) (offset int, exists bool) {
	if !s.contains(key) {
		return 0, false
	}

	return int(distance(s.minKey(), key)), true
}

// entry returns the Entry holding the given key or nil if the key is not materialized.
func (s *span[K, V]) entry(key K) *Entry[K, V] {
	offset, exists := s.offsetOf(key)
	if !exists {
		return nil
	}

	return &s.elements[offset]
}

// materialize fills an empty span with zero values for every key in [low, high].
func (s *span[K, V]) materialize(low K, high K, capacity int) error {
	if low > high {
		return nil
	}

	count, err := width(low, high)
	if err != nil {
		return err
	}

	s.elements = make([]Entry[K, V], count, max(count, capacity))
	for i := range s.elements {
		s.elements[i].Key = keyAt(low, i)
	}

	return nil
}

// seed replaces the content of the span with a single zero valued Entry.
func (s *span[K, V]) seed(key K) *Entry[K, V] {
	clear(s.elements)
	s.elements = append(s.elements[:0], Entry[K, V]{Key: key})

	return &s.elements[0]
}

// dig expands the span backward so that it starts at the given key. The prefix can not be added in place, so the
// backing slice is reallocated and replaced as a whole.
func (s *span[K, V]) dig(key K) error {
	if s.isEmpty() || key >= s.minKey() {
		return nil
	}

	count, err := width(key, s.maxKey())
	if err != nil {
		return err
	}

	prefix := count - len(s.elements)
	elements := make([]Entry[K, V], count, count+cap(s.elements)-len(s.elements))
	for i := 0; i < prefix; i++ {
		elements[i].Key = keyAt(key, i)
	}
	copy(elements[prefix:], s.elements)

	s.elements = elements

	return nil
}

// pile expands the span forward so that it ends at the given key.
func (s *span[K, V]) pile(key K) error {
	if s.isEmpty() || key <= s.maxKey() {
		return nil
	}

	count, err := width(s.minKey(), key)
	if err != nil {
		return err
	}

	low := s.minKey()
	s.elements = slices.Grow(s.elements, count-len(s.elements))
	for i := len(s.elements); i < count; i++ {
		s.elements = append(s.elements, Entry[K, V]{Key: keyAt(low, i)})
	}

	return nil
}

// trimBelow removes all entries with a key smaller than the given key.
func (s *span[K, V]) trimBelow(key K) {
	if s.isEmpty() || key <= s.minKey() {
		return
	}

	if key > s.maxKey() {
		s.clear()

		return
	}

	offset, _ := s.offsetOf(key)
	remaining := copy(s.elements, s.elements[offset:])
	clear(s.elements[remaining:])
	s.elements = s.elements[:remaining]
}

// trimAbove removes all entries with a key larger than the given key.
func (s *span[K, V]) trimAbove(key K) {
	if s.isEmpty() || key >= s.maxKey() {
		return
	}

	if key < s.minKey() {
		s.clear()

		return
	}

	offset, _ := s.offsetOf(key)
	clear(s.elements[offset+1:])
	s.elements = s.elements[:offset+1]
}

func (s *span[K, V]) clear() {
	s.elements = nil
}

func (s *span[K, V]) clone() span[K, V] {
	return span[K, V]{elements: slices.Clone(s.elements)}
}

// load replaces the content of the span with a copy of the given entries.
func (s *span[K, V]) load(entries []Entry[K, V]) error {
	for i := 1; i < len(entries); i++ {
		if entries[i].Key <= entries[i-1].Key || distance(entries[i-1].Key, entries[i].Key) != 1 {
			return ierrors.Wrapf(ErrNotContiguous, "key %d follows key %d", entries[i].Key, entries[i-1].Key)
		}
	}

	s.elements = slices.Clone(entries)

	return nil
}

// distance returns high - low as an unsigned number without overflowing K. It expects low <= high.
func distance[K constraints.Integer](low K, high K) uint64 {
	return uint64(high) - uint64(low)
}

// width returns the number of keys in [low, high]. It expects low <= high.
func width[K constraints.Integer](low K, high K) (int, error) {
	if delta := distance(low, high); delta < uint64(math.MaxInt) {
		return int(delta) + 1, nil
	}

	return 0, ierrors.Wrapf(ErrRangeExceeded, "[%d, %d] does not fit into memory", low, high)
}

// keyAt returns the key that lies offset steps above low.
func keyAt[K constraints.Integer](low K, offset int) K {
	return low + K(offset)
}
