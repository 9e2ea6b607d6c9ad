package embed_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/hookcord/pkg/domain/model"
	"github.com/m-mizutani/hookcord/pkg/domain/types"
	"github.com/m-mizutani/hookcord/pkg/usecase/embed"
)

func discussionFragment(kind types.EventKind) model.Fragment {
	return model.NewFragment(kind, "discussion", map[string]any{
		"number":   float64(3),
		"title":    "Port to Helix",
		"body":     "Would be nice",
		"html_url": "https://github.com/org/repo/discussions/3",
	})
}

func TestDiscussion(t *testing.T) {
	tests := []struct {
		action      string
		description *string
	}{
		{action: "created", description: strPtr("Would be nice")},
		{action: "closed"},
		{action: "reopened"},
	}

	for _, tt := range tests {
		t.Run(tt.action, func(t *testing.T) {
			env := newEnvelope(types.KindDiscussion, model.DiscussionPayload{
				Action:     tt.action,
				Discussion: discussionFragment(types.KindDiscussion),
			})

			e := mustMap(t, env)
			gt.Value(t, e.Title).Equal("[org/repo] Discussion " + tt.action + ": #3 Port to Helix")
			gt.Value(t, e.URL).Equal("https://github.com/org/repo/discussions/3")
			gt.Value(t, e.Description).Equal(tt.description)
			gt.Value(t, colorOf(e)).Equal(palette.Discussion.Packed())
		})
	}
}

func TestDiscussion_InvalidField(t *testing.T) {
	env := newEnvelope(types.KindDiscussion, model.DiscussionPayload{
		Action: "created",
		Discussion: model.NewFragment(types.KindDiscussion, "discussion", map[string]any{
			"number":   float64(3),
			"title":    float64(12),
			"html_url": "https://github.com/org/repo/discussions/3",
		}),
	})

	_, err := embed.New().Map(env)
	gt.Error(t, err)
	gt.True(t, model.IsInvalidField(err))

	kind, field, ok := model.FieldOf(err)
	gt.True(t, ok)
	gt.Value(t, kind).Equal(types.KindDiscussion)
	gt.Value(t, field).Equal("discussion.title")
}

func TestDiscussion_CreatedWithoutBody(t *testing.T) {
	env := newEnvelope(types.KindDiscussion, model.DiscussionPayload{
		Action: "created",
		Discussion: model.NewFragment(types.KindDiscussion, "discussion", map[string]any{
			"number":   float64(3),
			"title":    "Port to Helix",
			"html_url": "https://github.com/org/repo/discussions/3",
		}),
	})

	_, err := embed.New().Map(env)
	gt.True(t, model.IsMissingField(err))
	_, field, _ := model.FieldOf(err)
	gt.Value(t, field).Equal("discussion.body")
}

func TestDiscussionComment(t *testing.T) {
	env := newEnvelope(types.KindDiscussionComment, model.DiscussionCommentPayload{
		Action:     "created",
		Discussion: discussionFragment(types.KindDiscussionComment),
		Comment: model.NewFragment(types.KindDiscussionComment, "comment", map[string]any{
			"body":     "+1",
			"html_url": "https://github.com/org/repo/discussions/3#discussioncomment-1",
		}),
	})

	e := mustMap(t, env)
	gt.Value(t, e.Title).Equal("[org/repo] New comment on discussion #3: Port to Helix")
	gt.Value(t, e.URL).Equal("https://github.com/org/repo/discussions/3#discussioncomment-1")
	gt.Value(t, *e.Description).Equal("+1")
	gt.Value(t, colorOf(e)).Equal(palette.Discussion.Packed())
}

func TestDiscussionComment_MissingComment(t *testing.T) {
	env := newEnvelope(types.KindDiscussionComment, model.DiscussionCommentPayload{
		Action:     "created",
		Discussion: discussionFragment(types.KindDiscussionComment),
		Comment:    model.NewFragment(types.KindDiscussionComment, "comment", nil),
	})

	_, err := embed.New().Map(env)
	kind, field, ok := model.FieldOf(err)
	gt.True(t, ok)
	gt.Value(t, kind).Equal(types.KindDiscussionComment)
	gt.Value(t, field).Equal("comment.html_url")
}

func TestRelease(t *testing.T) {
	t.Run("named", func(t *testing.T) {
		env := newEnvelope(types.KindRelease, model.ReleasePayload{
			Action: "released",
			Release: model.NewFragment(types.KindRelease, "release", map[string]any{
				"name":     "v1.2.0",
				"body":     "changelog",
				"html_url": "https://github.com/org/repo/releases/tag/v1.2.0",
			}),
		})

		e := mustMap(t, env)
		gt.Value(t, e.Title).Equal("[org/repo] New release published: v1.2.0")
		gt.Value(t, e.URL).Equal("https://github.com/org/repo/releases/tag/v1.2.0")
		gt.Value(t, *e.Description).Equal("changelog")
		gt.Value(t, colorOf(e)).Equal(palette.Release.Packed())
	})

	t.Run("unnamed", func(t *testing.T) {
		env := newEnvelope(types.KindRelease, model.ReleasePayload{
			Action: "released",
			Release: model.NewFragment(types.KindRelease, "release", map[string]any{
				"name":     nil,
				"body":     nil,
				"html_url": "https://github.com/org/repo/releases/tag/v1.2.0",
			}),
		})

		e := mustMap(t, env)
		gt.Value(t, e.Title).Equal("[org/repo] New release published: *no name*")
		gt.Value(t, e.Description).Nil()
	})

	t.Run("missing url", func(t *testing.T) {
		env := newEnvelope(types.KindRelease, model.ReleasePayload{
			Action:  "released",
			Release: model.NewFragment(types.KindRelease, "release", map[string]any{"name": "v1"}),
		})

		_, err := embed.New().Map(env)
		_, field, ok := model.FieldOf(err)
		gt.True(t, ok)
		gt.Value(t, field).Equal("release.html_url")
	})
}

func membershipPayload(action string) model.MembershipPayload {
	return model.MembershipPayload{
		Action: action,
		Member: model.NewFragment(types.KindMembership, "member", map[string]any{"login": "alice"}),
		Team: model.NewFragment(types.KindMembership, "team", map[string]any{
			"name":     "staff",
			"html_url": "https://github.com/orgs/acme/teams/staff",
		}),
	}
}

func TestMembership(t *testing.T) {
	tests := []struct {
		action string
		title  string
	}{
		{action: "added", title: "[acme] alice added to staff team"},
		{action: "removed", title: "[acme] alice removed from staff team"},
	}

	for _, tt := range tests {
		t.Run(tt.action, func(t *testing.T) {
			env := newEnvelope(types.KindMembership, membershipPayload(tt.action))
			env.Repository = nil
			env.Organization = &model.Organization{Login: "acme"}

			e := mustMap(t, env)
			gt.Value(t, e.Title).Equal(tt.title)
			gt.Value(t, e.URL).Equal("https://github.com/orgs/acme/teams/staff")
			gt.Value(t, colorOf(e)).Equal(palette.Membership.Packed())
		})
	}
}

func TestMembership_WithoutOrganization(t *testing.T) {
	env := newEnvelope(types.KindMembership, membershipPayload("added"))

	msg, err := embed.New().Map(env)
	gt.NoError(t, err)
	gt.Value(t, msg).Nil()
}

func TestMembership_MissingTeamName(t *testing.T) {
	p := membershipPayload("removed")
	p.Team = model.NewFragment(types.KindMembership, "team", map[string]any{"html_url": "https://example.com"})
	env := newEnvelope(types.KindMembership, p)
	env.Organization = &model.Organization{Login: "acme"}

	_, err := embed.New().Map(env)
	_, field, ok := model.FieldOf(err)
	gt.True(t, ok)
	gt.Value(t, field).Equal("team.name")
}

func strPtr(s string) *string { return &s }
