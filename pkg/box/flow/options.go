package flow

import "context"

type optionKey string

const (
	workersKey optionKey = "flow_workers"
	drainKey   optionKey = "flow_drain_on_cancel"
)

// WithWorkers stores the preferred worker count for pipeline stages.
func WithWorkers(ctx context.Context, n int) context.Context {
	return context.WithValue(ctx, workersKey, n)
}

// Workers returns the stored worker count, or def when none is set.
func Workers(ctx context.Context, def int) int {
	if n, ok := ctx.Value(workersKey).(int); ok && n > 0 {
		return n
	}
	return def
}

// WithDrainOnCancel controls whether cancelled stages forward remaining
// inputs as cancelled results instead of dropping them.
func WithDrainOnCancel(ctx context.Context, enabled bool) context.Context {
	return context.WithValue(ctx, drainKey, enabled)
}

// DrainOnCancel returns the stored drain preference, or def when none is set.
func DrainOnCancel(ctx context.Context, def bool) bool {
	if v, ok := ctx.Value(drainKey).(bool); ok {
		return v
	}
	return def
}
