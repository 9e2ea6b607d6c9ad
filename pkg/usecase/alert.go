package usecase

import (
	"context"
	"fmt"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/hookcord/pkg/domain/interfaces"
	"github.com/m-mizutani/hookcord/pkg/domain/model"
	"github.com/m-mizutani/hookcord/pkg/domain/types"
	"github.com/m-mizutani/hookcord/pkg/utils/async"
)

// DefaultOperator is the author shown on error embeds
var DefaultOperator = model.Profile{
	Login:     "hookcord",
	HTMLURL:   "https://github.com/m-mizutani/hookcord",
	AvatarURL: "https://github.com/m-mizutani.png",
}

// ErrorEmbedAlert posts mapping failures as a red "Error" embed to the error
// channel
type ErrorEmbedAlert struct {
	notifier interfaces.Notifier
	palette  model.Palette
	operator model.Profile
	dispatch DispatchFunc
}

// NewErrorEmbedAlert creates an alert sink that reuses the Discord notifier
func NewErrorEmbedAlert(notifier interfaces.Notifier, palette model.Palette) *ErrorEmbedAlert {
	return &ErrorEmbedAlert{
		notifier: notifier,
		palette:  palette,
		operator: DefaultOperator,
		dispatch: async.Dispatch,
	}
}

// WithOperator sets the embed author
func (a *ErrorEmbedAlert) WithOperator(p model.Profile) *ErrorEmbedAlert {
	a.operator = p
	return a
}

// WithDispatch replaces the asynchronous runner
func (a *ErrorEmbedAlert) WithDispatch(fn DispatchFunc) *ErrorEmbedAlert {
	a.dispatch = fn
	return a
}

// Alert implements interfaces.AlertSink
func (a *ErrorEmbedAlert) Alert(ctx context.Context, env *model.Envelope, err error) {
	msg, buildErr := ErrorMessage(env, err, a.palette, a.operator)
	if buildErr != nil {
		ctxlog.From(ctx).Error("Failed to build error embed", "error", buildErr)
		return
	}

	a.dispatch(ctx, func(ctx context.Context) error {
		return a.notifier.Notify(ctx, types.ChannelError, msg)
	})
}

// ErrorMessage renders a mapping failure for operators
func ErrorMessage(env *model.Envelope, err error, palette model.Palette, operator model.Profile) (*model.Message, error) {
	description := err.Error()
	if env != nil && env.ID != "" {
		description = fmt.Sprintf("%s\n\ndelivery: %s", description, env.ID)
	}

	return model.NewEmbedBuilder().
		Title("Error").
		URL(operator.HTMLURL).
		Description(description).
		Color(palette.Error).
		Author(operator).
		Build()
}
