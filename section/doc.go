// Package section keeps one group of objects sorted while they are inserted,
// removed and updated one at a time, and reports the index of every change so
// a caller can apply a minimal list diff.
//
// A Section is parameterized by the grouping key type K and the object type T.
// Objects are located by identity (==), so T should be a pointer or some other
// stable handle: two distinct records may tie under the sort order while still
// being different entities.
//
//	byName := section.Descending("name", func(t *Task) string { return t.Name })
//	s := section.MustNew("inbox", byName)
//
//	s.InsertSorted(a) // 0
//	s.InsertSorted(b) // 0, "bbtest" sorts before "aatest" descending
//	s.Delete(a)       // 1, true
//
// # Stale sort keys
//
// The comparator chain reads an object's fields when it runs. If an object's
// sort fields change while it sits in a Section, a binary search driven by its
// new values can look in the wrong place. Delete trusts the search;
// DeleteOutdatedObject falls back to a full identity scan before it reports an
// object as absent. Use DeleteOutdatedObject whenever the object may have been
// mutated since it was inserted.
//
// # Concurrency
//
// A Section is not safe for concurrent use. The owner must serialize every
// call on a given instance, for example by funnelling change notifications for
// a group through one goroutine. NewThreadSafe wraps a Section with a lock for
// owners that cannot do that.
package section
