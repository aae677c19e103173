package densemap

import "github.com/iotaledger/hive.go/constraints"

// Options define options for a DenseMap or a FixedMap.
type Options[K constraints.Integer] struct {
	lowerLimit     K
	hasLowerLimit  bool
	higherLimit    K
	hasHigherLimit bool

	// initial capacity of the backing slice.
	capacity int
}

// applies the given Option.
func (o *Options[K]) apply(opts ...Option[K]) *Options[K] {
	for _, opt := range opts {
		opt(o)
	}

	return o
}

// WithLowerLimit sets the smallest key that the map admits.
//
// A DenseMap rejects growth below the limit. A FixedMap treats it like a call to SetLowerLimit during construction.
func WithLowerLimit[K constraints.Integer](key K) Option[K] {
	return func(opts *Options[K]) {
		opts.lowerLimit = key
		opts.hasLowerLimit = true
	}
}

// WithHigherLimit sets the largest key that the map admits.
//
// A DenseMap rejects growth above the limit. A FixedMap treats it like a call to SetHigherLimit during construction.
func WithHigherLimit[K constraints.Integer](key K) Option[K] {
	return func(opts *Options[K]) {
		opts.higherLimit = key
		opts.hasHigherLimit = true
	}
}

// WithCapacity preallocates the backing slice for the given number of entries.
func WithCapacity[K constraints.Integer](capacity int) Option[K] {
	return func(opts *Options[K]) {
		opts.capacity = capacity
	}
}

// Option is a function setting an Options option.
type Option[K constraints.Integer] func(opts *Options[K])
