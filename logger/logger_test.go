package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/amp-labs/sections/envutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetUsesContextLogger(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	base := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	ctx := WithLogger(t.Context(), base)
	ctx = WithSubsystem(ctx, "sections")
	ctx = With(ctx, "controller", "tasks")
	ctx = With(ctx, "generation", 3)

	Get(ctx).Info("applied")

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))

	assert.Equal(t, "applied", record["msg"])
	assert.Equal(t, "sections", record["subsystem"])
	assert.Equal(t, "tasks", record["controller"])
	assert.InDelta(t, 3, record["generation"], 0)
}

func TestWithoutValuesReturnsSameContext(t *testing.T) {
	t.Parallel()

	ctx := t.Context()
	assert.Equal(t, ctx, With(ctx))
}

func TestMuted(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	ctx := WithLogger(t.Context(), slog.New(slog.NewTextHandler(&buf, nil)))
	ctx = WithMuted(ctx, true)

	Get(ctx).Error("should not appear")

	assert.Empty(t, buf.String())
	assert.False(t, Get(ctx).Enabled(ctx, slog.LevelError))
}

func TestGetWithoutContext(t *testing.T) {
	t.Parallel()

	assert.NotNil(t, Get())
	assert.NotNil(t, Get(nil)) //nolint:staticcheck
}

// Not parallel: replaces the global slog default.
func TestConfigureLogging(t *testing.T) {
	previous := slog.Default()
	t.Cleanup(func() { slog.SetDefault(previous) })

	ctx := envutil.WithEnvOverride(t.Context(), "LOG_JSON", "true")
	ctx = envutil.WithEnvOverride(ctx, "LOG_LEVEL", "warn")

	var buf bytes.Buffer

	logger := ConfigureLogging(ctx, "sections-test", func(o *Options) {
		o.Output = &buf
	})

	logger.Info("dropped")
	logger.Warn("kept")

	assert.NotContains(t, buf.String(), "dropped")
	assert.Contains(t, buf.String(), `"msg":"kept"`)
	assert.Equal(t, "sections-test", GetSubsystem(t.Context()))
}
