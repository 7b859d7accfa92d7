// Package optional provides a Value type that either holds something or holds
// nothing. It is used where an index or an object may legitimately be absent,
// such as the source position of an inserted row.
package optional

import (
	"fmt"
	"iter"
)

// Value is either Some(x) or None. The zero Value is None.
type Value[T any] struct {
	value T
	isSet bool
}

// Some wraps a present value.
func Some[T any](value T) Value[T] {
	return Value[T]{value: value, isSet: true}
}

// None returns an empty Value.
func None[T any]() Value[T] {
	return Value[T]{}
}

// Of builds a Value from the common (value, ok) return pair.
func Of[T any](value T, ok bool) Value[T] {
	if !ok {
		return None[T]()
	}

	return Some(value)
}

// Get returns the value and whether it is present.
func (o Value[T]) Get() (T, bool) {
	return o.value, o.isSet
}

// NonEmpty reports whether a value is present.
func (o Value[T]) NonEmpty() bool {
	return o.isSet
}

// Empty reports whether no value is present.
func (o Value[T]) Empty() bool {
	return !o.isSet
}

// GetOrElse returns the value, or dfl when empty.
func (o Value[T]) GetOrElse(dfl T) T {
	if o.isSet {
		return o.value
	}

	return dfl
}

// GetOrPanic returns the value and panics when empty.
func (o Value[T]) GetOrPanic() T {
	if !o.isSet {
		panic("optional: GetOrPanic called on None")
	}

	return o.value
}

// All yields the value once when present.
func (o Value[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		if o.isSet {
			yield(o.value)
		}
	}
}

// Equals compares two Values with eq. Two Nones are equal.
func (o Value[T]) Equals(other Value[T], eq func(T, T) bool) bool {
	if o.isSet != other.isSet {
		return false
	}

	if !o.isSet {
		return true
	}

	return eq(o.value, other.value)
}

func (o Value[T]) String() string {
	if !o.isSet {
		return "None"
	}

	return fmt.Sprintf("Some(%v)", o.value)
}

// Map applies f to a present value.
func Map[T any, U any](o Value[T], f func(T) U) Value[U] {
	if !o.isSet {
		return None[U]()
	}

	return Some(f(o.value))
}
