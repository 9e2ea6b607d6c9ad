package slack

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/hookcord/pkg/domain/model"
	"github.com/m-mizutani/hookcord/pkg/utils/async"
	"github.com/slack-go/slack"
)

type alertSink struct {
	webhookURL string
	httpClient *http.Client
	dispatch   func(ctx context.Context, handler func(ctx context.Context) error)
}

// Option configures the alert sink
type Option func(*alertSink)

// WithHTTPClient replaces the HTTP client used for the incoming webhook
func WithHTTPClient(c *http.Client) Option {
	return func(s *alertSink) {
		s.httpClient = c
	}
}

// WithDispatch replaces the asynchronous runner
func WithDispatch(fn func(ctx context.Context, handler func(ctx context.Context) error)) Option {
	return func(s *alertSink) {
		s.dispatch = fn
	}
}

// NewAlertSink mirrors mapping failures to a Slack incoming webhook
func NewAlertSink(webhookURL string, opts ...Option) *alertSink {
	s := &alertSink{
		webhookURL: webhookURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		dispatch:   async.Dispatch,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Alert implements interfaces.AlertSink
func (s *alertSink) Alert(ctx context.Context, env *model.Envelope, err error) {
	msg := buildMessage(env, err)

	s.dispatch(ctx, func(ctx context.Context) error {
		if err := slack.PostWebhookCustomHTTPContext(ctx, s.webhookURL, s.httpClient, msg); err != nil {
			return goerr.Wrap(err, "failed to post slack alert")
		}
		return nil
	})
}

func buildMessage(env *model.Envelope, err error) *slack.WebhookMessage {
	fields := []slack.AttachmentField{
		{Title: "Event", Value: string(env.Kind), Short: true},
		{Title: "Delivery", Value: string(env.ID), Short: true},
	}
	if env.Repository != nil {
		fields = append(fields, slack.AttachmentField{
			Title: "Repository",
			Value: env.Repository.DisplayName(),
			Short: true,
		})
	}
	if kind, field, ok := model.FieldOf(err); ok {
		fields = append(fields, slack.AttachmentField{
			Title: "Field",
			Value: fmt.Sprintf("%s::%s", kind, field),
			Short: true,
		})
	}

	return &slack.WebhookMessage{
		Text: "GitHub event could not be turned into a Discord embed",
		Attachments: []slack.Attachment{
			{
				Color:  "danger",
				Title:  "Error",
				Text:   err.Error(),
				Fields: fields,
			},
		},
	}
}
