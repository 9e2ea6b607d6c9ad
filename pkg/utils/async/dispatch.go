package async

import (
	"context"
	"runtime/debug"

	"github.com/getsentry/sentry-go"
	"github.com/m-mizutani/ctxlog"
)

// Dispatch runs handler in a new goroutine, detached from the cancellation
// of ctx. Deliveries are fire-and-forget: a returned error or a panic is
// logged and reported to Sentry when a hub is attached, never retried.
func Dispatch(ctx context.Context, handler func(ctx context.Context) error) {
	newCtx := newBackgroundContext(ctx)

	go func() {
		defer func() {
			if r := recover(); r != nil {
				stack := debug.Stack()
				logger := ctxlog.From(newCtx)
				logger.Error("panic in async handler",
					"recover", r,
					"stack", string(stack))
				if hub := sentry.GetHubFromContext(newCtx); hub != nil {
					hub.Recover(r)
				}
			}
		}()

		if err := handler(newCtx); err != nil {
			logger := ctxlog.From(newCtx)
			logger.Error("error in async handler", "error", err)
			if hub := sentry.GetHubFromContext(newCtx); hub != nil {
				hub.CaptureException(err)
			}
		}
	}()
}

// newBackgroundContext returns context.Background() carrying the ctxlog
// logger and the Sentry hub of ctx
func newBackgroundContext(ctx context.Context) context.Context {
	newCtx := context.Background()
	newCtx = ctxlog.With(newCtx, ctxlog.From(ctx))
	if hub := sentry.GetHubFromContext(ctx); hub != nil {
		newCtx = sentry.SetHubOnContext(newCtx, hub)
	}
	return newCtx
}
