package obs

import (
	"context"
	"log/slog"
	"time"
)

// Time starts a timer for op and returns a func that logs its duration.
// Use as: defer obs.Time(ctx, "op")(&err)
func Time(ctx context.Context, name string) func(errp *error) {
	start := time.Now()

	return func(errp *error) {
		dur := time.Since(start)

		if errp != nil && *errp != nil {
			slog.WarnContext(ctx, "operation failed", "op", name, "dur_ms", dur.Milliseconds(), "err", *errp)
			return
		}
		slog.DebugContext(ctx, "operation done", "op", name, "dur_ms", dur.Milliseconds())
	}
}
