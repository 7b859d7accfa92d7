package section

import "sync"

// ThreadSafe guards a Section with a read/write lock. Each method holds the
// lock for one operation only; use Do for read-modify-write sequences.
type ThreadSafe[K any, T comparable] struct {
	mut     sync.RWMutex
	section *Section[K, T]
}

// NewThreadSafe wraps s. The caller must stop using s directly.
func NewThreadSafe[K any, T comparable](s *Section[K, T]) *ThreadSafe[K, T] {
	return &ThreadSafe[K, T]{section: s}
}

// InsertSorted places obj under the write lock.
func (t *ThreadSafe[K, T]) InsertSorted(obj T) int {
	t.mut.Lock()
	defer t.mut.Unlock()

	return t.section.InsertSorted(obj)
}

// Insert appends obj under the write lock.
func (t *ThreadSafe[K, T]) Insert(obj T) {
	t.mut.Lock()
	defer t.mut.Unlock()

	t.section.Insert(obj)
}

// Delete removes obj under the write lock.
func (t *ThreadSafe[K, T]) Delete(obj T) (int, bool) {
	t.mut.Lock()
	defer t.mut.Unlock()

	return t.section.Delete(obj)
}

// DeleteOutdatedObject removes obj under the write lock, scanning the whole
// section if its key changed.
func (t *ThreadSafe[K, T]) DeleteOutdatedObject(obj T) (int, bool) {
	t.mut.Lock()
	defer t.mut.Unlock()

	return t.section.DeleteOutdatedObject(obj)
}

// Sort reorders the section under the write lock.
func (t *ThreadSafe[K, T]) Sort() {
	t.mut.Lock()
	defer t.mut.Unlock()

	t.section.Sort()
}

// KeyPath returns the grouping key. It takes no lock.
func (t *ThreadSafe[K, T]) KeyPath() K {
	return t.section.KeyPath()
}

// Len takes the read lock.
func (t *ThreadSafe[K, T]) Len() int {
	t.mut.RLock()
	defer t.mut.RUnlock()

	return t.section.Len()
}

// Objects returns a copy of the objects under the read lock.
func (t *ThreadSafe[K, T]) Objects() []T {
	t.mut.RLock()
	defer t.mut.RUnlock()

	return t.section.Objects()
}

// IndexOf locates obj by identity under the read lock.
func (t *ThreadSafe[K, T]) IndexOf(obj T) (int, bool) {
	t.mut.RLock()
	defer t.mut.RUnlock()

	return t.section.IndexOf(obj)
}

// IsSorted takes the read lock.
func (t *ThreadSafe[K, T]) IsSorted() bool {
	t.mut.RLock()
	defer t.mut.RUnlock()

	return t.section.IsSorted()
}

// Do runs f with exclusive access to the underlying Section. f must not keep
// the Section after it returns.
func (t *ThreadSafe[K, T]) Do(f func(s *Section[K, T])) {
	t.mut.Lock()
	defer t.mut.Unlock()

	f(t.section)
}
