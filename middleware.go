package fieldcheck

import (
	"log/slog"
	"time"
)

// Middleware wraps an Evaluator with cross-cutting behavior (logging,
// timing). The core evaluator stays side-effect-free; anything observable
// is opt-in via Wrap. No recovery middleware is provided: a panicking rule
// callback is an authoring defect and must reach the caller.
type Middleware[C, V any] func(Evaluator[C, V]) Evaluator[C, V]

// Wrap applies middlewares to ev (onion order: first middleware is outermost).
func Wrap[C, V any](ev Evaluator[C, V], middlewares ...Middleware[C, V]) Evaluator[C, V] {
	for i := len(middlewares) - 1; i >= 0; i-- {
		ev = middlewares[i](ev)
	}
	return ev
}

// WithLogging returns a middleware that logs each evaluation's verdict,
// entry count, and duration. field names the evaluated field in log output.
func WithLogging[C, V any](logger *slog.Logger, field string) Middleware[C, V] {
	if logger == nil {
		logger = slog.Default()
	}
	return func(next Evaluator[C, V]) Evaluator[C, V] {
		return func(ctx C, value V, opts ...EvalOption) Result {
			start := time.Now()
			res := next(ctx, value, opts...)
			entries := 0
			if res.Feedback != nil {
				entries = len(res.Feedback.Entries)
			}
			logger.Info("field evaluated",
				"field", field,
				"validity", res.Validity.String(),
				"entries", entries,
				"duration", time.Since(start),
			)
			return res
		}
	}
}
