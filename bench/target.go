package bench

import (
	"github.com/emirpasic/gods/maps/treemap"

	"github.com/iotaledger/hive.go/ds/shrinkingmap"

	"github.com/tadashi9e/mimicmap/ds/densemap"
)

// Target is a map implementation that is measured by a Workload. It only offers the operations the measurements need.
type Target interface {
	// Assign stores the value through write access (the subscript operation of the map).
	Assign(key int, value int) error

	// Insert stores the value through the insert operation of the map.
	Insert(key int, value int) error

	// Find looks up the key and returns true if it exists.
	Find(key int) bool
}

// Factory creates fresh Targets for the key range [from, to].
type Factory struct {
	Name string
	New  func(from int, to int) (Target, error)
}

var (
	// DenseMapFactory creates an empty DenseMap that grows while it is written.
	DenseMapFactory = Factory{Name: "DenseMap", New: func(_ int, _ int) (Target, error) {
		return &denseMapTarget{m: densemap.New[int, int]()}, nil
	}}

	// ReservedDenseMapFactory creates a DenseMap that has the whole key range reserved upfront.
	ReservedDenseMapFactory = Factory{Name: "DenseMap(reserved)", New: func(from int, to int) (Target, error) {
		m := densemap.New[int, int]()
		if err := m.Reserve(from, to); err != nil {
			return nil, err
		}

		return &denseMapTarget{m: m}, nil
	}}

	// ReservedFixedMapFactory creates a FixedMap that covers the whole key range.
	ReservedFixedMapFactory = Factory{Name: "FixedMap(reserved)", New: func(from int, to int) (Target, error) {
		m := densemap.NewFixed[int, int]()
		if err := m.Reserve(from, to); err != nil {
			return nil, err
		}

		return &fixedMapTarget{m: m}, nil
	}}

	// MapFactory creates an empty builtin map.
	MapFactory = Factory{Name: "map", New: func(_ int, _ int) (Target, error) {
		return builtinMapTarget(make(map[int]int)), nil
	}}

	// ReservedMapFactory creates a builtin map that is presized for the whole key range.
	ReservedMapFactory = Factory{Name: "map(reserved)", New: func(from int, to int) (Target, error) {
		return builtinMapTarget(make(map[int]int, to-from+1)), nil
	}}

	// ShrinkingMapFactory creates an empty hash based ShrinkingMap.
	ShrinkingMapFactory = Factory{Name: "shrinkingmap", New: func(_ int, _ int) (Target, error) {
		return &shrinkingMapTarget{m: shrinkingmap.New[int, int]()}, nil
	}}

	// TreeMapFactory creates an empty red-black tree based map.
	TreeMapFactory = Factory{Name: "treemap", New: func(_ int, _ int) (Target, error) {
		return &treeMapTarget{m: treemap.NewWithIntComparator()}, nil
	}}
)

// region densemap /////////////////////////////////////////////////////////////////////////////////////////////////////

type denseMapTarget struct {
	m *densemap.DenseMap[int, int]
}

func (d *denseMapTarget) Assign(key int, value int) error {
	slot, err := d.m.Ref(key)
	if err != nil {
		return err
	}
	*slot = value

	return nil
}

func (d *denseMapTarget) Insert(key int, value int) error {
	_, err := d.m.Insert(key, value)

	return err
}

func (d *denseMapTarget) Find(key int) bool {
	return d.m.Find(key) != nil
}

type fixedMapTarget struct {
	m *densemap.FixedMap[int, int]
}

func (f *fixedMapTarget) Assign(key int, value int) error {
	slot, err := f.m.Ref(key)
	if err != nil {
		return err
	}
	*slot = value

	return nil
}

func (f *fixedMapTarget) Insert(key int, value int) error {
	_, err := f.m.Insert(key, value)

	return err
}

func (f *fixedMapTarget) Find(key int) bool {
	return f.m.Find(key) != nil
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region reference maps ///////////////////////////////////////////////////////////////////////////////////////////////

type builtinMapTarget map[int]int

func (b builtinMapTarget) Assign(key int, value int) error {
	b[key] = value

	return nil
}

func (b builtinMapTarget) Insert(key int, value int) error {
	if _, exists := b[key]; !exists {
		b[key] = value
	}

	return nil
}

func (b builtinMapTarget) Find(key int) bool {
	_, exists := b[key]

	return exists
}

type shrinkingMapTarget struct {
	m *shrinkingmap.ShrinkingMap[int, int]
}

func (s *shrinkingMapTarget) Assign(key int, value int) error {
	s.m.Set(key, value)

	return nil
}

func (s *shrinkingMapTarget) Insert(key int, value int) error {
	s.m.Set(key, value)

	return nil
}

func (s *shrinkingMapTarget) Find(key int) bool {
	return s.m.Has(key)
}

type treeMapTarget struct {
	m *treemap.Map
}

func (t *treeMapTarget) Assign(key int, value int) error {
	t.m.Put(key, value)

	return nil
}

func (t *treeMapTarget) Insert(key int, value int) error {
	if _, found := t.m.Get(key); !found {
		t.m.Put(key, value)
	}

	return nil
}

func (t *treeMapTarget) Find(key int) bool {
	_, found := t.m.Get(key)

	return found
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////
