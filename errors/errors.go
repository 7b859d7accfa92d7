// Package errors gathers the problems found by validation passes and worker
// batches so they can be reported together.
package errors

import (
	"errors"
	"fmt"
	"slices"
)

// Collection is ready to use as a zero value. It is not safe for concurrent
// use.
type Collection struct {
	errs []error
}

// Add records err. Nil is ignored, so task results can be passed straight in.
func (c *Collection) Add(err error) {
	if err != nil {
		c.errs = append(c.errs, err)
	}
}

// Addf records fmt.Errorf(format, args...). Use %w to keep a sentinel
// matchable.
func (c *Collection) Addf(format string, args ...any) {
	c.errs = append(c.errs, fmt.Errorf(format, args...))
}

func (c *Collection) Len() int {
	return len(c.errs)
}

// Errors returns a copy of the recorded errors in the order they were added.
func (c *Collection) Errors() []error {
	return slices.Clone(c.errs)
}

// Err returns nil when nothing was recorded, the error itself when there is
// one, and errors.Join of all of them otherwise.
func (c *Collection) Err() error {
	if len(c.errs) == 1 {
		return c.errs[0]
	}

	return errors.Join(c.errs...)
}
