package densemap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDenseMap_Reserve(t *testing.T) {
	m := New[int, int]()
	require.NoError(t, m.Reserve(5, 8))

	require.Equal(t, 4, m.Size())
	require.Equal(t, []int{5, 6, 7, 8}, m.Keys())
	require.Equal(t, []int{0, 0, 0, 0}, m.Values())

	// extends in both directions but never shrinks
	require.NoError(t, m.Reserve(3, 10))
	require.Equal(t, []int{3, 4, 5, 6, 7, 8, 9, 10}, m.Keys())
	require.NoError(t, m.Reserve(5, 6))
	require.Equal(t, 8, m.Size())
	requireContiguous(t, &m.span)
}

func TestDenseMap_Scenario(t *testing.T) {
	m := New[int, int]()
	require.NoError(t, m.Reserve(5, 8))

	inserted, err := m.Insert(3, 99)
	require.NoError(t, err)
	require.True(t, inserted)
	require.Equal(t, 6, m.Size())
	require.Equal(t, []int{3, 4, 5, 6, 7, 8}, m.Keys())
	require.Equal(t, 99, lookup(t, &m.core, 3))
	require.Equal(t, 0, lookup(t, &m.core, 4))

	m.SetLowerLimit(4)
	require.Equal(t, 5, m.Size())
	require.Equal(t, []int{4, 5, 6, 7, 8}, m.Keys())
	require.False(t, m.Has(3))

	_, err = m.Insert(2, 1)
	require.ErrorIs(t, err, ErrRangeExceeded)
	require.Equal(t, 5, m.Size())
}

func TestDenseMap_Insert(t *testing.T) {
	m := New[int, string]()

	inserted, err := m.Insert(10, "a")
	require.NoError(t, err)
	require.True(t, inserted)
	require.Equal(t, 1, m.Size())

	inserted, err = m.Insert(10, "b")
	require.NoError(t, err)
	require.False(t, inserted)
	require.Equal(t, 1, m.Size())
	require.Equal(t, "b", lookup(t, &m.core, 10))

	inserted, err = m.Insert(13, "c")
	require.NoError(t, err)
	require.True(t, inserted)
	require.Equal(t, 4, m.Size())
	maxKey, exists := m.MaxKey()
	require.True(t, exists)
	require.Equal(t, 13, maxKey)

	inserted, err = m.Insert(7, "d")
	require.NoError(t, err)
	require.True(t, inserted)
	minKey, exists := m.MinKey()
	require.True(t, exists)
	require.Equal(t, 7, minKey)

	require.Equal(t, []string{"d", "", "", "b", "", "", "c"}, m.Values())
	requireContiguous(t, &m.span)
}

func TestDenseMap_Limits(t *testing.T) {
	m := New[int, int](WithLowerLimit(0), WithHigherLimit(9))

	_, err := m.Insert(-1, 1)
	require.ErrorIs(t, err, ErrRangeExceeded)
	_, err = m.Insert(10, 1)
	require.ErrorIs(t, err, ErrRangeExceeded)
	require.True(t, m.IsEmpty())

	require.ErrorIs(t, m.Reserve(-5, 5), ErrRangeExceeded)
	require.True(t, m.IsEmpty())

	require.NoError(t, m.Reserve(2, 4))
	require.ErrorIs(t, m.Reserve(0, 10), ErrRangeExceeded)
	require.Equal(t, []int{2, 3, 4}, m.Keys())

	_, err = m.Ref(11)
	require.ErrorIs(t, err, ErrRangeExceeded)
	require.Equal(t, 3, m.Size())

	value, err := m.Ref(9)
	require.NoError(t, err)
	*value = 42
	require.Equal(t, 42, lookup(t, &m.core, 9))
	require.Equal(t, 8, m.Size())

	lowerLimit, exists := m.LowerLimit()
	require.True(t, exists)
	require.Equal(t, 0, lowerLimit)
	higherLimit, exists := m.HigherLimit()
	require.True(t, exists)
	require.Equal(t, 9, higherLimit)
}

func TestDenseMap_SetLimitsTrim(t *testing.T) {
	m := New[int, int]()
	require.NoError(t, m.Reserve(0, 9))

	m.SetHigherLimit(6).SetLowerLimit(2)
	require.Equal(t, []int{2, 3, 4, 5, 6}, m.Keys())

	_, err := m.Insert(7, 0)
	require.ErrorIs(t, err, ErrRangeExceeded)

	// a limit beyond the whole range empties the map but never reseeds it
	m.SetLowerLimit(20)
	require.True(t, m.IsEmpty())

	m = New[int, int]()
	require.NoError(t, m.Reserve(0, 9))
	m.SetHigherLimit(-1)
	require.True(t, m.IsEmpty())

	m = New[int, int]()
	m.SetLowerLimit(5)
	require.True(t, m.IsEmpty())
}

func TestDenseMap_ClearKeepsLimits(t *testing.T) {
	m := New[int, int]().SetLowerLimit(5)
	require.NoError(t, m.Reserve(5, 7))

	m.Clear()
	require.True(t, m.IsEmpty())

	_, err := m.Insert(4, 1)
	require.ErrorIs(t, err, ErrRangeExceeded)

	inserted, err := m.Insert(5, 1)
	require.NoError(t, err)
	require.True(t, inserted)
}

func TestDenseMap_Ref(t *testing.T) {
	m := New[uint16, int]()

	value, err := m.Ref(100)
	require.NoError(t, err)
	require.Equal(t, 0, *value)
	*value = 1
	require.Equal(t, 1, m.Size())

	value, err = m.Ref(98)
	require.NoError(t, err)
	*value = 2

	value, err = m.Ref(101)
	require.NoError(t, err)
	*value = 3

	require.Equal(t, []uint16{98, 99, 100, 101}, m.Keys())
	require.Equal(t, []int{2, 0, 1, 3}, m.Values())
}

func TestDenseMap_Get(t *testing.T) {
	m := New[int, int]()

	_, err := m.Get(0)
	require.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, m.Reserve(1, 3))
	_, err = m.Get(4)
	require.ErrorIs(t, err, ErrNotFound)
	require.Equal(t, 3, m.Size())
}

func TestDenseMap_Find(t *testing.T) {
	m := New[int, string]()
	require.Nil(t, m.Find(1))

	_, err := m.Insert(1, "one")
	require.NoError(t, err)

	element := m.Find(1)
	require.NotNil(t, element)
	require.Equal(t, 1, element.Key())
	require.Equal(t, "one", element.Value())

	element.SetValue("uno")
	require.Equal(t, "uno", lookup(t, &m.core, 1))

	require.Nil(t, m.Find(2))
	require.Equal(t, 1, m.Size())
}

func TestDenseMap_HasCount(t *testing.T) {
	m := New[int8, bool]()
	require.False(t, m.Has(0))
	require.Equal(t, 0, m.Count(0))

	require.NoError(t, m.Reserve(-2, 2))
	assert.True(t, m.Has(-2))
	assert.True(t, m.Has(2))
	assert.False(t, m.Has(3))
	assert.Equal(t, 1, m.Count(0))
	assert.Equal(t, 0, m.Count(-3))
}

func TestDenseMap_CloneSwap(t *testing.T) {
	m := New[int, int](WithHigherLimit(10))
	_, err := m.Insert(1, 1)
	require.NoError(t, err)

	cloned := m.Clone()
	_, err = cloned.Insert(1, 2)
	require.NoError(t, err)
	require.Equal(t, 1, lookup(t, &m.core, 1))

	cloned.SetHigherLimit(20)
	_, err = m.Insert(15, 1)
	require.ErrorIs(t, err, ErrRangeExceeded)

	other := New[int, int]()
	require.NoError(t, other.Reserve(100, 101))
	m.Swap(other)

	require.Equal(t, []int{100, 101}, m.Keys())
	require.Equal(t, []int{1}, other.Keys())
	_, exists := m.HigherLimit()
	require.False(t, exists)
	_, err = other.Insert(11, 0)
	require.ErrorIs(t, err, ErrRangeExceeded)
}

func TestDenseMap_NewFromEntries(t *testing.T) {
	m, err := NewFromEntries([]Entry[int, string]{{Key: 3, Value: "c"}, {Key: 4, Value: "d"}, {Key: 5, Value: "e"}}, WithLowerLimit(4))
	require.NoError(t, err)
	require.Equal(t, []int{4, 5}, m.Keys())
	require.Equal(t, "d", lookup(t, &m.core, 4))

	_, err = NewFromEntries([]Entry[int, string]{{Key: 3}, {Key: 5}})
	require.ErrorIs(t, err, ErrNotContiguous)
}

func TestDenseMap_ForEach(t *testing.T) {
	m := New[int, int]()
	for i := 5; i >= 1; i-- {
		_, err := m.Insert(i, i*i)
		require.NoError(t, err)
	}

	var keys []int
	m.ForEach(func(key int, value int) bool {
		require.Equal(t, key*key, value)
		keys = append(keys, key)

		return key < 3
	})
	require.Equal(t, []int{1, 2, 3}, keys)

	keys = nil
	m.ForEachReverse(func(key int, _ int) bool {
		keys = append(keys, key)

		return true
	})
	require.Equal(t, []int{5, 4, 3, 2, 1}, keys)

	entries := m.Entries()
	entries[0].Value = -1
	require.Equal(t, 1, lookup(t, &m.core, 1))
}

func TestDenseMap_String(t *testing.T) {
	m := New[int, int]()
	require.Equal(t, "DenseMap{}", m.String())

	require.NoError(t, m.Reserve(-1, 1))
	require.Equal(t, "DenseMap{[-1, 1], size=3}", m.String())
}

func lookup[V any](t *testing.T, c *core[int, V], key int) V {
	t.Helper()

	value, err := c.Get(key)
	require.NoError(t, err)

	return value
}
