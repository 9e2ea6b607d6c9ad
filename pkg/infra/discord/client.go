package discord

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/hookcord/pkg/domain/model"
	"github.com/m-mizutani/hookcord/pkg/domain/types"
)

const defaultTimeout = 10 * time.Second

type client struct {
	hooks      map[types.Channel]string
	httpClient *http.Client
}

// Option configures the client
type Option func(*client)

// WithHTTPClient replaces the HTTP client
func WithHTTPClient(c *http.Client) Option {
	return func(cl *client) {
		cl.httpClient = c
	}
}

// NewClient creates a Discord webhook notifier. hooks maps each channel to
// its webhook URL; channels without a URL are rejected by Notify.
func NewClient(hooks map[types.Channel]string, opts ...Option) *client {
	c := &client{
		hooks:      hooks,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Notify posts msg to the webhook of ch. There is no retry.
func (c *client) Notify(ctx context.Context, ch types.Channel, msg *model.Message) error {
	logger := ctxlog.From(ctx)

	url, ok := c.hooks[ch]
	if !ok || url == "" {
		return goerr.New("no webhook configured for channel", goerr.V("channel", ch))
	}

	body, err := json.Marshal(msg)
	if err != nil {
		return goerr.Wrap(err, "failed to marshal discord message")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return goerr.Wrap(err, "failed to create discord request", goerr.V("channel", ch))
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return goerr.Wrap(err, "failed to send hook", goerr.V("channel", ch))
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return goerr.New("hook failed",
			goerr.V("channel", ch),
			goerr.V("status", resp.StatusCode),
			goerr.V("body", string(respBody)),
		)
	}

	logger.Info("Hook sent", "channel", ch, "status", resp.StatusCode)
	return nil
}
