package bench

import (
	"time"

	"github.com/iotaledger/hive.go/ierrors"
)

// ErrUnknownWorkload is returned if a workload name is not registered.
var ErrUnknownWorkload = ierrors.New("unknown workload")

// Workload is a timed access pattern that is run against a set of Targets.
type Workload struct {
	// Name is used for the output file and its header.
	Name string

	// Targets are the columns of the output.
	Targets []Factory

	// Measure returns the wall time that loop operations with random keys in [from, to] take on the Target.
	Measure func(target Target, keys *KeySource, from int, to int, loop int) (time.Duration, error)
}

var (
	// OpWorkload assigns random keys through write access.
	OpWorkload = Workload{
		Name:    "op",
		Targets: []Factory{DenseMapFactory, ReservedDenseMapFactory, ReservedFixedMapFactory, MapFactory, ReservedMapFactory, ShrinkingMapFactory, TreeMapFactory},
		Measure: measureAssign,
	}

	// InsertWorkload inserts random keys.
	InsertWorkload = Workload{
		Name:    "insert",
		Targets: []Factory{DenseMapFactory, ReservedDenseMapFactory, ReservedFixedMapFactory, MapFactory, ReservedMapFactory, ShrinkingMapFactory, TreeMapFactory},
		Measure: measureInsert,
	}

	// FindWorkload fills the whole key range and then looks up random keys.
	FindWorkload = Workload{
		Name:    "find",
		Targets: []Factory{ReservedDenseMapFactory, ReservedFixedMapFactory, ReservedMapFactory, ShrinkingMapFactory, TreeMapFactory},
		Measure: measureFind,
	}
)

// Workloads returns the registered workloads by name.
func Workloads() map[string]Workload {
	return map[string]Workload{
		OpWorkload.Name:     OpWorkload,
		InsertWorkload.Name: InsertWorkload,
		FindWorkload.Name:   FindWorkload,
	}
}

// LookupWorkload returns the workload with the given name.
func LookupWorkload(name string) (Workload, error) {
	workload, exists := Workloads()[name]
	if !exists {
		return Workload{}, ierrors.Wrapf(ErrUnknownWorkload, "%q", name)
	}

	return workload, nil
}

func measureAssign(target Target, keys *KeySource, from int, to int, loop int) (time.Duration, error) {
	start := time.Now()
	for i := 0; i < loop; i++ {
		if err := target.Assign(keys.Next(from, to), i); err != nil {
			return 0, err
		}
	}

	return time.Since(start), nil
}

func measureInsert(target Target, keys *KeySource, from int, to int, loop int) (time.Duration, error) {
	start := time.Now()
	for i := 0; i < loop; i++ {
		if err := target.Insert(keys.Next(from, to), i); err != nil {
			return 0, err
		}
	}

	return time.Since(start), nil
}

func measureFind(target Target, keys *KeySource, from int, to int, loop int) (time.Duration, error) {
	for key := from; key <= to; key++ {
		if err := target.Insert(key, key); err != nil {
			return 0, err
		}
	}

	missing := 0
	start := time.Now()
	for i := 0; i < loop; i++ {
		if !target.Find(keys.Next(from, to)) {
			missing++
		}
	}
	elapsed := time.Since(start)

	if missing != 0 {
		return 0, ierrors.Errorf("%d of %d lookups missed a filled key", missing, loop)
	}

	return elapsed, nil
}
