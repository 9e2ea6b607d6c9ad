package interfaces

import (
	"context"

	"github.com/m-mizutani/hookcord/pkg/domain/model"
)

// WebhookUseCase defines the interface for webhook event processing
type WebhookUseCase interface {
	// ProcessEvent routes, renders and delivers one event
	ProcessEvent(ctx context.Context, env *model.Envelope) error
}
