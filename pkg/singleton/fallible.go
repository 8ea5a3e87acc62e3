package singleton

import (
	"sync/atomic"

	"golang.org/x/sync/singleflight"
)

// Fallible lazily builds a value whose constructor can fail. A failed attempt
// leaves it unconstructed and the next Get tries again. Concurrent callers
// share a single in-flight attempt.
type Fallible[T any] struct {
	construct func() (T, error)

	value    atomic.Pointer[T]
	inFlight atomic.Bool
	group    singleflight.Group
}

// NewFallible returns a Fallible that calls construct until it succeeds once.
func NewFallible[T any](construct func() (T, error)) *Fallible[T] {
	return &Fallible[T]{construct: construct}
}

// Get returns the constructed value, or the error of the attempt this call
// joined.
func (f *Fallible[T]) Get() (T, error) {
	if v := f.value.Load(); v != nil {
		return *v, nil
	}

	res, err, _ := f.group.Do("construct", func() (interface{}, error) {
		if v := f.value.Load(); v != nil {
			return v, nil
		}

		f.inFlight.Store(true)
		defer f.inFlight.Store(false)

		v, err := f.construct()
		if err != nil {
			return nil, err
		}
		f.value.Store(&v)
		return &v, nil
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return *res.(*T), nil
}

// State reports whether the value has been built yet.
func (f *Fallible[T]) State() State {
	if f.value.Load() != nil {
		return Constructed
	}
	if f.inFlight.Load() {
		return Constructing
	}
	return Unconstructed
}

func newFallibleInstance() *Fallible[*Instance] {
	return NewFallible(func() (*Instance, error) {
		return newInstance(VariantFallible), nil
	})
}

var fallible = newFallibleInstance()

// FallibleInstance returns the package's shared Instance built through a
// Fallible accessor.
func FallibleInstance() (*Instance, error) {
	return fallible.Get()
}
