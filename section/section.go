package section

import (
	"errors"
	"fmt"
	"iter"
	"slices"
	"sort"

	"github.com/amp-labs/sections/optional"
)

// ErrInvalidDescriptor is returned for a sort descriptor without a compare
// function, typically the zero value or one built from a nil accessor.
var ErrInvalidDescriptor = errors.New("invalid sort descriptor")

// Section is an ordered sequence of objects that share a grouping key.
// See the package documentation for identity and concurrency rules.
type Section[K any, T comparable] struct {
	keyPath     K
	descriptors Chain[T]
	objects     []T

	fallbacks int
}

// New creates an empty Section. keyPath and descriptors are fixed for the
// Section's lifetime.
func New[K any, T comparable](keyPath K, descriptors ...SortDescriptor[T]) (*Section[K, T], error) {
	for i, d := range descriptors {
		if !d.Valid() {
			return nil, fmt.Errorf("%w: descriptor %d (%q) has no compare function", ErrInvalidDescriptor, i, d.Key)
		}
	}

	return &Section[K, T]{
		keyPath:     keyPath,
		descriptors: slices.Clone(Chain[T](descriptors)),
	}, nil
}

// MustNew is like New but panics on an invalid descriptor.
func MustNew[K any, T comparable](keyPath K, descriptors ...SortDescriptor[T]) *Section[K, T] {
	s, err := New[K, T](keyPath, descriptors...)
	if err != nil {
		panic(err)
	}

	return s
}

// KeyPath returns the grouping value of this section.
func (s *Section[K, T]) KeyPath() K {
	return s.keyPath
}

// SortDescriptors returns a copy of the comparator chain.
func (s *Section[K, T]) SortDescriptors() Chain[T] {
	return slices.Clone(s.descriptors)
}

// Len returns the number of objects.
func (s *Section[K, T]) Len() int {
	return len(s.objects)
}

// Objects returns a copy of the objects in their current order.
func (s *Section[K, T]) Objects() []T {
	return slices.Clone(s.objects)
}

// At returns the object at index i. It panics if i is out of range.
func (s *Section[K, T]) At(i int) T {
	return s.objects[i]
}

// First returns the first object, if any.
func (s *Section[K, T]) First() optional.Value[T] {
	if len(s.objects) == 0 {
		return optional.None[T]()
	}

	return optional.Some(s.objects[0])
}

// Last returns the last object, if any.
func (s *Section[K, T]) Last() optional.Value[T] {
	if len(s.objects) == 0 {
		return optional.None[T]()
	}

	return optional.Some(s.objects[len(s.objects)-1])
}

// All iterates over index/object pairs. The section must not be modified
// during iteration.
func (s *Section[K, T]) All() iter.Seq2[int, T] {
	return slices.All(s.objects)
}

// IndexOf returns the position of obj by identity, scanning every object.
func (s *Section[K, T]) IndexOf(obj T) (int, bool) {
	idx := slices.Index(s.objects, obj)

	return idx, idx >= 0
}

// Contains reports whether obj is present, by identity.
func (s *Section[K, T]) Contains(obj T) bool {
	return slices.Contains(s.objects, obj)
}

// IsSorted reports whether the objects are in comparator-chain order.
func (s *Section[K, T]) IsSorted() bool {
	return slices.IsSortedFunc(s.objects, s.descriptors.Compare)
}

// FallbackScans counts the DeleteOutdatedObject calls that found their object
// only through the full scan.
func (s *Section[K, T]) FallbackScans() int {
	return s.fallbacks
}

// InsertSorted inserts obj before the first object that does not sort before
// it, and returns that index. Objects that tie with obj end up after it.
func (s *Section[K, T]) InsertSorted(obj T) int {
	idx := s.lowerBound(obj)
	s.objects = slices.Insert(s.objects, idx, obj)

	return idx
}

// Insert appends obj without regard to order. Call Sort once a batch of
// Inserts is complete.
func (s *Section[K, T]) Insert(obj T) {
	s.objects = append(s.objects, obj)
}

// Search returns the index of obj by identity, looking only among the objects
// that tie with obj's current sort key. It assumes the section is sorted and
// obj's sort fields have not changed since it was inserted.
func (s *Section[K, T]) Search(obj T) (int, bool) {
	lo := s.lowerBound(obj)
	hi := lo + sort.Search(len(s.objects)-lo, func(i int) bool {
		return s.descriptors.Compare(s.objects[lo+i], obj) > 0
	})

	for i := lo; i < hi; i++ {
		if s.objects[i] == obj {
			return i, true
		}
	}

	return -1, false
}

// Delete removes obj, located through Search, and returns the index it had.
// It reports false and leaves the section untouched when obj is not found.
func (s *Section[K, T]) Delete(obj T) (int, bool) {
	idx, ok := s.Search(obj)
	if !ok {
		return -1, false
	}

	s.removeAt(idx)

	return idx, true
}

// DeleteOutdatedObject removes obj even if its sort fields changed after it
// was inserted. A miss in the searched range is confirmed with a full scan
// before false is returned.
func (s *Section[K, T]) DeleteOutdatedObject(obj T) (int, bool) {
	idx, ok := s.Search(obj)
	if !ok {
		idx, ok = s.IndexOf(obj)
		if !ok {
			return -1, false
		}

		s.fallbacks++
	}

	s.removeAt(idx)

	return idx, true
}

// Sort restores comparator-chain order. The sort is stable.
func (s *Section[K, T]) Sort() {
	slices.SortStableFunc(s.objects, s.descriptors.Compare)
}

func (s *Section[K, T]) String() string {
	return fmt.Sprintf("Section(%v, %d objects, by %v)", s.keyPath, len(s.objects), s.descriptors.Keys())
}

func (s *Section[K, T]) lowerBound(obj T) int {
	return sort.Search(len(s.objects), func(i int) bool {
		return s.descriptors.Compare(s.objects[i], obj) >= 0
	})
}

func (s *Section[K, T]) removeAt(idx int) {
	s.objects = slices.Delete(s.objects, idx, idx+1)
}
