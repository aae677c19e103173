package densemap

import (
	"github.com/iotaledger/hive.go/constraints"
	"github.com/iotaledger/hive.go/ierrors"
)

// growthPolicy decides whether the materialized range of a map may change. All checks run before the backing slice is
// touched, so a rejected request never leaves a partially modified map behind.
type growthPolicy[K constraints.Integer] interface {
	// admitSeed checks if an empty map may implicitly create its first entry at the given key.
	admitSeed(key K) error

	// admitBelow checks if the range may implicitly grow backward from minKey to the given key.
	admitBelow(key K, minKey K) error

	// admitAbove checks if the range may implicitly grow forward from maxKey to the given key.
	admitAbove(key K, maxKey K) error

	// admitReserve checks if the range may explicitly be extended to cover [low, high].
	admitReserve(low K, high K) error

	// clone returns an independent copy of the policy.
	clone() growthPolicy[K]
}

// region autoGrow /////////////////////////////////////////////////////////////////////////////////////////////////////

// autoGrow lets writes extend the range, bounded by the optional limits.
type autoGrow[K constraints.Integer] struct {
	lowerLimit     K
	hasLowerLimit  bool
	higherLimit    K
	hasHigherLimit bool
}

func (a *autoGrow[K]) admitSeed(key K) error {
	if err := a.admitBelow(key, key); err != nil {
		return err
	}

	return a.admitAbove(key, key)
}

func (a *autoGrow[K]) admitBelow(key K, _ K) error {
	if a.hasLowerLimit && key < a.lowerLimit {
		return ierrors.Wrapf(ErrRangeExceeded, "key %d is below the lower limit %d", key, a.lowerLimit)
	}

	return nil
}

func (a *autoGrow[K]) admitAbove(key K, _ K) error {
	if a.hasHigherLimit && key > a.higherLimit {
		return ierrors.Wrapf(ErrRangeExceeded, "key %d is above the higher limit %d", key, a.higherLimit)
	}

	return nil
}

func (a *autoGrow[K]) admitReserve(low K, high K) error {
	if low > high {
		return nil
	}

	if err := a.admitBelow(low, low); err != nil {
		return err
	}

	return a.admitAbove(high, high)
}

func (a *autoGrow[K]) clone() growthPolicy[K] {
	cloned := *a

	return &cloned
}

func (a *autoGrow[K]) setLowerLimit(key K) {
	a.lowerLimit = key
	a.hasLowerLimit = true
}

func (a *autoGrow[K]) setHigherLimit(key K) {
	a.higherLimit = key
	a.hasHigherLimit = true
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region fixedRange ///////////////////////////////////////////////////////////////////////////////////////////////////

// fixedRange rejects every implicit change of the range.
type fixedRange[K constraints.Integer] struct{}

func (f fixedRange[K]) admitSeed(K) error {
	return ierrors.Wrap(ErrRangeExceeded, "empty map")
}

func (f fixedRange[K]) admitBelow(key K, minKey K) error {
	return ierrors.Wrapf(ErrRangeExceeded, "key %d is below the smallest key %d", key, minKey)
}

func (f fixedRange[K]) admitAbove(key K, maxKey K) error {
	return ierrors.Wrapf(ErrRangeExceeded, "key %d is above the largest key %d", key, maxKey)
}

func (f fixedRange[K]) admitReserve(K, K) error {
	return nil
}

func (f fixedRange[K]) clone() growthPolicy[K] {
	return f
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////
