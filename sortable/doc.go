// Package sortable defines the Sortable interface and wrappers for primitive
// types that implement it.
//
// A Sortable field can drive a section sort descriptor directly:
//
//	type Task struct {
//	    Priority sortable.Int
//	}
//
//	desc := section.BySortable("priority", func(t *Task) sortable.Int { return t.Priority }, true)
//
// Custom types implement Equals and LessThan. LessThan must be a strict weak
// ordering and Equals must agree with it: a.Equals(b) exactly when neither
// a.LessThan(b) nor b.LessThan(a).
package sortable
