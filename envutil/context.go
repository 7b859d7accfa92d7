package envutil

import "context"

type envContextKey string

// WithEnvOverride makes readers given ctx see value for key instead of the
// process environment. Tests use it to avoid t.Setenv and stay parallel.
func WithEnvOverride(ctx context.Context, key string, value string) context.Context {
	return context.WithValue(ctx, envContextKey(key), value)
}

func getEnvOverride(ctx context.Context, key string) (string, bool) {
	if ctx == nil {
		return "", false
	}

	val, ok := ctx.Value(envContextKey(key)).(string)

	return val, ok
}
