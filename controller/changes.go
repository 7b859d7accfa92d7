package controller

import (
	"fmt"

	"github.com/amp-labs/sections/optional"
	"github.com/google/uuid"
)

// ChangeKind classifies an upstream change notification.
type ChangeKind int

const (
	Added ChangeKind = iota + 1
	Removed
	Updated
)

func (k ChangeKind) String() string {
	switch k {
	case Added:
		return "added"
	case Removed:
		return "removed"
	case Updated:
		return "updated"
	default:
		return fmt.Sprintf("ChangeKind(%d)", int(k))
	}
}

// Change is one upstream notification about one object.
type Change[T any] struct {
	Kind   ChangeKind
	Object T
}

func Add[T any](obj T) Change[T]    { return Change[T]{Kind: Added, Object: obj} }
func Remove[T any](obj T) Change[T] { return Change[T]{Kind: Removed, Object: obj} }
func Update[T any](obj T) Change[T] { return Change[T]{Kind: Updated, Object: obj} }

// IndexPath addresses a row within a section.
type IndexPath struct {
	Section int
	Row     int
}

func (p IndexPath) String() string {
	return fmt.Sprintf("[%d, %d]", p.Section, p.Row)
}

// EventKind classifies an entry of a ChangeSet.
type EventKind int

const (
	SectionInserted EventKind = iota + 1
	SectionDeleted
	RowInserted
	RowDeleted
	RowUpdated
	RowMoved
	Reloaded
)

func (k EventKind) String() string {
	switch k {
	case SectionInserted:
		return "section-inserted"
	case SectionDeleted:
		return "section-deleted"
	case RowInserted:
		return "row-inserted"
	case RowDeleted:
		return "row-deleted"
	case RowUpdated:
		return "row-updated"
	case RowMoved:
		return "row-moved"
	case Reloaded:
		return "reloaded"
	default:
		return fmt.Sprintf("EventKind(%d)", int(k))
	}
}

// Event is one list mutation. From addresses the state before the event and
// To the state after it, so events must be replayed in order.
//
//   - SectionInserted, SectionDeleted: Section is set.
//   - RowInserted: To is set.
//   - RowDeleted: From is set.
//   - RowMoved: From and To are set, always within one section.
//   - RowUpdated: From and To are set and equal.
//   - Reloaded: nothing is set; the whole list must be re-read.
type Event[T any] struct {
	Kind    EventKind
	Section int
	From    optional.Value[IndexPath]
	To      optional.Value[IndexPath]
	Object  T
}

func (e Event[T]) String() string {
	switch e.Kind {
	case SectionInserted, SectionDeleted:
		return fmt.Sprintf("%s %d", e.Kind, e.Section)
	case RowInserted:
		return fmt.Sprintf("%s %s", e.Kind, e.To.GetOrPanic())
	case RowDeleted:
		return fmt.Sprintf("%s %s", e.Kind, e.From.GetOrPanic())
	case RowMoved, RowUpdated:
		return fmt.Sprintf("%s %s -> %s", e.Kind, e.From.GetOrPanic(), e.To.GetOrPanic())
	default:
		return e.Kind.String()
	}
}

// ChangeSet describes what one Apply or Load did to the sectioned list.
type ChangeSet[T any] struct {
	ID         uuid.UUID
	Generation uint64
	Events     []Event[T]
}

// Empty reports whether nothing changed.
func (c ChangeSet[T]) Empty() bool {
	return len(c.Events) == 0
}

// Count returns how many events of kind the set contains.
func (c ChangeSet[T]) Count(kind EventKind) int {
	n := 0

	for _, e := range c.Events {
		if e.Kind == kind {
			n++
		}
	}

	return n
}

// Kinds lists the event kinds in order.
func (c ChangeSet[T]) Kinds() []EventKind {
	kinds := make([]EventKind, len(c.Events))
	for i, e := range c.Events {
		kinds[i] = e.Kind
	}

	return kinds
}
