package sentry

import (
	"context"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/hookcord/pkg/domain/model"
)

// Init configures the global Sentry client. The returned flush waits for
// buffered events before shutdown.
func Init(dsn, env, release string) (flush func(), err error) {
	if err := sentry.Init(sentry.ClientOptions{
		Dsn:         dsn,
		Environment: env,
		Release:     release,
	}); err != nil {
		return nil, goerr.Wrap(err, "failed to initialize sentry")
	}

	return func() { sentry.Flush(2 * time.Second) }, nil
}

type alertSink struct {
	hub *sentry.Hub
}

// NewAlertSink reports mapping failures to Sentry. When hub is nil the hub
// attached to the request context, or the current hub, is used.
func NewAlertSink(hub *sentry.Hub) *alertSink {
	return &alertSink{hub: hub}
}

// Alert implements interfaces.AlertSink
func (s *alertSink) Alert(ctx context.Context, env *model.Envelope, err error) {
	hub := s.hub
	if hub == nil {
		hub = sentry.GetHubFromContext(ctx)
	}
	if hub == nil {
		hub = sentry.CurrentHub()
	}

	hub.WithScope(func(scope *sentry.Scope) {
		scope.SetTag("event_kind", string(env.Kind))
		scope.SetTag("delivery_id", string(env.ID))
		if env.Repository != nil {
			scope.SetTag("repository", env.Repository.DisplayName())
		}
		if _, field, ok := model.FieldOf(err); ok {
			scope.SetTag("field", field)
		}
		hub.CaptureException(err)
	})
}
