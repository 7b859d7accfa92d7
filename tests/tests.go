// Package tests provides helpers shared by the module's tests.
package tests

import (
	"context"
	"log/slog"
	"testing"

	"github.com/amp-labs/sections/logger"
	"github.com/google/uuid"
	"github.com/neilotoole/slogt"
)

type contextKey string

const testIdKey contextKey = "testId"

// Context returns t.Context() carrying a unique test id and a logger that
// writes through t.Log, so output is attributed to the test that produced it.
func Context(t *testing.T) context.Context {
	t.Helper()

	id := "test-" + uuid.New().String()

	ctx := context.WithValue(t.Context(), testIdKey, id)
	ctx = logger.WithLogger(ctx, slogt.New(t))

	return logger.With(ctx, "test", t.Name(), "test-id", id)
}

// Quiet is like Context but discards log output.
func Quiet(t *testing.T) context.Context {
	t.Helper()

	return logger.WithMuted(Context(t), true)
}

// GetTestId returns the id assigned by Context.
func GetTestId(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(testIdKey).(string)

	return id, ok
}

// Logger returns the logger Context installs.
func Logger(ctx context.Context) *slog.Logger {
	return logger.Get(ctx)
}
