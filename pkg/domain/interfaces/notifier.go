package interfaces

import (
	"context"

	"github.com/m-mizutani/hookcord/pkg/domain/model"
	"github.com/m-mizutani/hookcord/pkg/domain/types"
)

// Notifier posts a rendered message to a delivery channel
type Notifier interface {
	Notify(ctx context.Context, ch types.Channel, msg *model.Message) error
}

// AlertSink receives mapping failures for operators, e.g. Sentry or a Slack
// channel. Implementations must not block for long.
type AlertSink interface {
	Alert(ctx context.Context, env *model.Envelope, err error)
}
