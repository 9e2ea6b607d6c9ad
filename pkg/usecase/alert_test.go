package usecase_test

import (
	"context"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/hookcord/pkg/domain/model"
	"github.com/m-mizutani/hookcord/pkg/domain/types"
	"github.com/m-mizutani/hookcord/pkg/usecase"
)

func TestErrorMessage(t *testing.T) {
	palette := model.DefaultPalette()
	env := &model.Envelope{ID: "abc-123", Kind: types.KindRelease}
	err := model.ErrMissingField(types.KindRelease, "release.html_url")

	msg, buildErr := usecase.ErrorMessage(env, err, palette, usecase.DefaultOperator)
	gt.NoError(t, buildErr)

	e := msg.Embeds[0]
	gt.Value(t, e.Title).Equal("Error")
	gt.Value(t, e.URL).Equal(usecase.DefaultOperator.HTMLURL)
	gt.Value(t, *e.Description).Equal("missing field in event: release::release.html_url\n\ndelivery: abc-123")
	gt.Value(t, *e.Color).Equal(palette.Error.Packed())
	gt.Value(t, e.Author.Name).Equal("hookcord")
}

func TestErrorEmbedAlert(t *testing.T) {
	notifier := &mockNotifier{}
	operator := model.Profile{Login: "ops", HTMLURL: "https://example.com/ops"}
	sink := usecase.NewErrorEmbedAlert(notifier, model.DefaultPalette()).
		WithOperator(operator).
		WithDispatch(syncDispatch)

	sink.Alert(context.Background(),
		&model.Envelope{ID: "abc-123", Kind: types.KindIssues},
		model.ErrMissingField(types.KindIssues, "issue.title"),
	)

	gt.Number(t, len(notifier.calls)).Equal(1)
	gt.Value(t, notifier.calls[0].channel).Equal(types.ChannelError)

	e := notifier.calls[0].msg.Embeds[0]
	gt.Value(t, e.Author.Name).Equal("ops")
	gt.Value(t, e.URL).Equal("https://example.com/ops")
	gt.String(t, *e.Description).Contains("issues::issue.title")
}
