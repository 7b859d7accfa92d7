package config

import (
	"cmp"
	"fmt"
	"strings"

	"facette.io/natsort"
	errs "github.com/amp-labs/sections/errors"
	"github.com/amp-labs/sections/section"
	"golang.org/x/text/language"
)

// Field exposes one sortable property of T to configuration. Text is needed
// for natural and collated order; Compare is used otherwise, falling back to
// bytewise comparison of Text.
type Field[T any] struct {
	Compare func(a, b T) int
	Text    func(T) string
}

// Fields maps descriptor keys to accessors.
type Fields[T any] map[string]Field[T]

// Keys lists the registered keys in natural order, for diagnostics.
func (f Fields[T]) Keys() []string {
	keys := make([]string, 0, len(f))
	for k := range f {
		keys = append(keys, k)
	}

	natsort.Sort(keys)

	return keys
}

// TextField registers a string property.
func TextField[T any](text func(T) string) Field[T] {
	return Field[T]{Text: text}
}

// OrderedField registers a property of any ordered type.
func OrderedField[T any, F cmp.Ordered](value func(T) F) Field[T] {
	return Field[T]{Compare: func(a, b T) int {
		return cmp.Compare(value(a), value(b))
	}}
}

// Resolve turns configured descriptors into a comparator chain. Every
// descriptor that cannot be resolved is reported in the returned error.
func Resolve[T any](descriptors []Descriptor, fields Fields[T]) ([]section.SortDescriptor[T], error) {
	var problems errs.Collection

	out := make([]section.SortDescriptor[T], 0, len(descriptors))

	for _, d := range descriptors {
		sd, err := resolveOne(d, fields)
		if err != nil {
			problems.Add(err)

			continue
		}

		out = append(out, sd)
	}

	if err := problems.Err(); err != nil {
		return nil, err
	}

	return out, nil
}

func resolveOne[T any](d Descriptor, fields Fields[T]) (section.SortDescriptor[T], error) {
	field, ok := fields[d.Key]
	if !ok {
		return section.SortDescriptor[T]{}, fmt.Errorf("%w: %q (known: %s)",
			ErrUnknownField, d.Key, strings.Join(fields.Keys(), ", "))
	}

	asc := d.IsAscending()

	switch {
	case d.Natural:
		if field.Text == nil {
			return section.SortDescriptor[T]{}, fmt.Errorf("%w: %q (natural)", ErrFieldNotText, d.Key)
		}

		return section.Natural(d.Key, field.Text, asc), nil

	case d.Collation != "":
		if field.Text == nil {
			return section.SortDescriptor[T]{}, fmt.Errorf("%w: %q (collation)", ErrFieldNotText, d.Key)
		}

		tag, err := language.Parse(d.Collation)
		if err != nil {
			return section.SortDescriptor[T]{}, fmt.Errorf("%w: %q for %q: %w", ErrInvalidCollation, d.Collation, d.Key, err)
		}

		return section.Collated(d.Key, tag, field.Text, asc), nil

	case field.Compare != nil:
		return section.By(d.Key, field.Compare, asc), nil

	case field.Text != nil:
		sd := section.Ascending(d.Key, field.Text)
		if !asc {
			sd = sd.Reversed()
		}

		return sd, nil

	default:
		return section.SortDescriptor[T]{}, fmt.Errorf("%w: %q", ErrFieldMissingAccess, d.Key)
	}
}
