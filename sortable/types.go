package sortable

import "time"

// Int is a Sortable int.
type Int int

// String is a Sortable string, ordered bytewise.
type String string

// Time is a Sortable time.Time, ordered chronologically. The monotonic clock
// reading and location are ignored.
type Time time.Time

var (
	_ Sortable[Int]    = Int(0)
	_ Sortable[String] = String("")
	_ Sortable[Time]   = Time{}
)

func (i Int) Equals(other Int) bool {
	return i == other
}

func (i Int) LessThan(other Int) bool {
	return i < other
}

func (s String) Equals(other String) bool {
	return s == other
}

func (s String) LessThan(other String) bool {
	return s < other
}

// Equals reports whether both times represent the same instant.
func (t Time) Equals(other Time) bool {
	return time.Time(t).Equal(time.Time(other))
}

// LessThan reports whether t is before other.
func (t Time) LessThan(other Time) bool {
	return time.Time(t).Before(time.Time(other))
}
