package usecase

import (
	"context"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/hookcord/pkg/domain/interfaces"
	"github.com/m-mizutani/hookcord/pkg/domain/model"
	"github.com/m-mizutani/hookcord/pkg/domain/types"
	"github.com/m-mizutani/hookcord/pkg/usecase/embed"
	"github.com/m-mizutani/hookcord/pkg/utils/async"
)

// DispatchFunc runs a delivery. async.Dispatch is used unless replaced.
type DispatchFunc func(ctx context.Context, handler func(ctx context.Context) error)

type webhookUseCase struct {
	router   *Router
	mapper   *embed.Mapper
	notifier interfaces.Notifier
	alerts   []interfaces.AlertSink
	dispatch DispatchFunc
}

// WebhookOption configures the webhook use case
type WebhookOption func(*webhookUseCase)

// WithAlertSink adds a receiver for mapping failures
func WithAlertSink(sink interfaces.AlertSink) WebhookOption {
	return func(uc *webhookUseCase) {
		uc.alerts = append(uc.alerts, sink)
	}
}

// WithDispatch replaces the asynchronous runner used for deliveries
func WithDispatch(fn DispatchFunc) WebhookOption {
	return func(uc *webhookUseCase) {
		uc.dispatch = fn
	}
}

// NewWebhook creates a new instance of WebhookUseCase
func NewWebhook(router *Router, mapper *embed.Mapper, notifier interfaces.Notifier, opts ...WebhookOption) *webhookUseCase {
	uc := &webhookUseCase{
		router:   router,
		mapper:   mapper,
		notifier: notifier,
		dispatch: async.Dispatch,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// ProcessEvent routes the event, renders it and hands the message to the
// notifier without waiting for delivery. A mapping failure is sent to the
// alert sinks and returned.
func (uc *webhookUseCase) ProcessEvent(ctx context.Context, env *model.Envelope) error {
	logger := ctxlog.From(ctx).With(
		"delivery_id", env.ID,
		"kind", env.Kind,
	)

	ch := uc.router.Route(env)
	if ch == types.ChannelSuppressed {
		logger.Info("Suppressed event from private repository")
		return nil
	}

	msg, err := uc.mapper.Map(env)
	if err != nil {
		logger.Error("Failed to make discord message", "error", err)
		for _, sink := range uc.alerts {
			sink.Alert(ctx, env, err)
		}
		return goerr.Wrap(err, "failed to map event",
			goerr.V("delivery_id", env.ID),
			goerr.V("kind", env.Kind),
		)
	}
	if msg == nil {
		logger.Info("No embed created, ignoring event")
		return nil
	}

	logger.Info("Dispatching notification", "channel", ch, "title", msg.Embeds[0].Title)
	uc.dispatch(ctx, func(ctx context.Context) error {
		return uc.notifier.Notify(ctx, ch, msg)
	})

	return nil
}
