package model_test

import (
	"errors"
	"testing"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/hookcord/pkg/domain/model"
	"github.com/m-mizutani/hookcord/pkg/domain/types"
)

func TestFieldOf(t *testing.T) {
	t.Run("missing field", func(t *testing.T) {
		err := model.ErrMissingField(types.KindPullRequest, "pull_request.title")
		gt.True(t, model.IsMissingField(err))
		gt.Value(t, model.IsInvalidField(err)).Equal(false)
		gt.Value(t, err.Error()).Equal("missing field in event: pull_request::pull_request.title")

		kind, field, ok := model.FieldOf(err)
		gt.True(t, ok)
		gt.Value(t, kind).Equal(types.KindPullRequest)
		gt.Value(t, field).Equal("pull_request.title")
	})

	t.Run("survives wrapping", func(t *testing.T) {
		err := goerr.Wrap(model.ErrInvalidField(types.KindRelease, "release.name"), "failed to map event")
		gt.True(t, model.IsInvalidField(err))

		kind, field, ok := model.FieldOf(err)
		gt.True(t, ok)
		gt.Value(t, kind).Equal(types.KindRelease)
		gt.Value(t, field).Equal("release.name")
	})

	t.Run("other errors", func(t *testing.T) {
		_, _, ok := model.FieldOf(errors.New("boom"))
		gt.Value(t, ok).Equal(false)
	})
}
