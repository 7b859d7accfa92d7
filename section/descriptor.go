package section

import (
	"cmp"
	"sync"

	"github.com/amp-labs/sections/sortable"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortDescriptor orders objects by one field. Descriptors are combined into a
// Chain, where each one breaks the ties left by the ones before it.
type SortDescriptor[T any] struct {
	// Key names the field, for configuration and diagnostics.
	Key string

	// Ascending selects natural order; false reverses it.
	Ascending bool

	compare func(a, b T) int
}

// Valid reports whether the descriptor can compare anything. The zero
// SortDescriptor is not valid.
func (d SortDescriptor[T]) Valid() bool {
	return d.compare != nil
}

// Compare returns -1, 0 or +1, with the direction already applied.
func (d SortDescriptor[T]) Compare(a, b T) int {
	c := sign(d.compare(a, b))
	if !d.Ascending {
		return -c
	}

	return c
}

// Reversed returns the same descriptor with the opposite direction.
func (d SortDescriptor[T]) Reversed() SortDescriptor[T] {
	d.Ascending = !d.Ascending

	return d
}

func sign(c int) int {
	switch {
	case c < 0:
		return -1
	case c > 0:
		return 1
	default:
		return 0
	}
}

// By builds a descriptor from a three-way compare function.
func By[T any](key string, compare func(a, b T) int, ascending bool) SortDescriptor[T] {
	return SortDescriptor[T]{Key: key, Ascending: ascending, compare: compare}
}

// Ascending orders by field from smallest to largest.
func Ascending[T any, F cmp.Ordered](key string, field func(T) F) SortDescriptor[T] {
	return ordered(key, field, true)
}

// Descending orders by field from largest to smallest.
func Descending[T any, F cmp.Ordered](key string, field func(T) F) SortDescriptor[T] {
	return ordered(key, field, false)
}

func ordered[T any, F cmp.Ordered](key string, field func(T) F, ascending bool) SortDescriptor[T] {
	if field == nil {
		return By[T](key, nil, ascending)
	}

	return By(key, func(a, b T) int {
		return cmp.Compare(field(a), field(b))
	}, ascending)
}

// BySortable orders by a field whose type implements sortable.Sortable.
func BySortable[T any, F sortable.Sortable[F]](key string, field func(T) F, ascending bool) SortDescriptor[T] {
	if field == nil {
		return By[T](key, nil, ascending)
	}

	return By(key, func(a, b T) int {
		return sortable.Compare(field(a), field(b))
	}, ascending)
}

// Natural orders strings with embedded numbers numerically, so "task2" sorts
// before "task10". Values that differ only in leading zeros, such as "a1" and
// "a01", fall back to bytewise order.
func Natural[T any](key string, field func(T) string, ascending bool) SortDescriptor[T] {
	if field == nil {
		return By[T](key, nil, ascending)
	}

	return By(key, func(a, b T) int {
		return naturalCompare(field(a), field(b))
	}, ascending)
}

// Collated orders strings by the collation rules of tag, so that for example
// Swedish places "ö" after "z" while English places it next to "o".
func Collated[T any](
	key string, tag language.Tag, field func(T) string, ascending bool, opts ...collate.Option,
) SortDescriptor[T] {
	if field == nil {
		return By[T](key, nil, ascending)
	}

	// A Collator reuses internal buffers, and one descriptor may be shared by
	// many sections.
	var mut sync.Mutex

	col := collate.New(tag, opts...)

	return By(key, func(a, b T) int {
		mut.Lock()
		defer mut.Unlock()

		return col.CompareString(field(a), field(b))
	}, ascending)
}

// Chain applies descriptors in order; the first non-zero result wins.
type Chain[T any] []SortDescriptor[T]

// Compare returns -1, 0 or +1. An empty chain ties everything.
func (c Chain[T]) Compare(a, b T) int {
	for _, d := range c {
		if r := d.Compare(a, b); r != 0 {
			return r
		}
	}

	return 0
}

// Keys lists the descriptor keys in order.
func (c Chain[T]) Keys() []string {
	keys := make([]string, len(c))
	for i, d := range c {
		keys[i] = d.Key
	}

	return keys
}
