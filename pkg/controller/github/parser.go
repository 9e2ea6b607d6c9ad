// Package github converts GitHub webhook deliveries into envelopes.
package github

import (
	"encoding/json"

	"github.com/google/go-github/v75/github"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/hookcord/pkg/domain/model"
	"github.com/m-mizutani/hookcord/pkg/domain/types"
)

// commonFields are present on (almost) every webhook payload
type commonFields struct {
	Sender       *github.User         `json:"sender"`
	Repository   *github.Repository   `json:"repository"`
	Organization *github.Organization `json:"organization"`
}

// looseFields are decoded without a fixed schema. They back the Fragment
// accessors of discussion, discussion_comment, release and membership.
type looseFields struct {
	Action     string         `json:"action"`
	Discussion map[string]any `json:"discussion"`
	Comment    map[string]any `json:"comment"`
	Release    map[string]any `json:"release"`
	Member     map[string]any `json:"member"`
	Team       map[string]any `json:"team"`
}

type repositoryFields struct {
	Action  string                   `json:"action"`
	Changes *model.RepositoryChanges `json:"changes"`
}

// looseKinds skip go-github's typed decoding, which would reject a wrongly
// typed field before the mapper can report it
var looseKinds = map[types.EventKind]struct{}{
	types.KindDiscussion:        {},
	types.KindDiscussionComment: {},
	types.KindRelease:           {},
	types.KindMembership:        {},
}

// ParseEnvelope parses a webhook body for the given X-GitHub-Event value.
// Event names unknown to go-github are rejected. Known events without a
// notification get an envelope with a nil Specific.
func ParseEnvelope(eventType string, deliveryID types.DeliveryID, body []byte) (*model.Envelope, error) {
	kind := types.EventKind(eventType)
	_, loose := looseKinds[kind]

	var payload any
	if !loose {
		p, err := github.ParseWebHook(eventType, body)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to parse webhook payload", goerr.V("event_type", eventType))
		}
		payload = p
	}

	var common commonFields
	if err := json.Unmarshal(body, &common); err != nil {
		return nil, goerr.Wrap(err, "failed to decode common fields", goerr.V("event_type", eventType))
	}

	env := &model.Envelope{
		ID:           deliveryID,
		Kind:         kind,
		Sender:       toProfile(common.Sender),
		Repository:   toRepository(common.Repository),
		Organization: toOrganization(common.Organization),
	}

	if loose {
		var fields looseFields
		if err := json.Unmarshal(body, &fields); err != nil {
			return nil, goerr.Wrap(err, "failed to decode event payload", goerr.V("event_type", eventType))
		}
		env.Specific = loosePayload(kind, fields)
		return env, nil
	}

	switch e := payload.(type) {
	case *github.RepositoryEvent:
		var fields repositoryFields
		if err := json.Unmarshal(body, &fields); err != nil {
			return nil, goerr.Wrap(err, "failed to decode event payload", goerr.V("event_type", eventType))
		}
		env.Specific = model.RepositoryPayload{Action: fields.Action, Changes: fields.Changes}
	case *github.IssuesEvent:
		env.Specific = model.IssuesPayload{Event: e}
	case *github.IssueCommentEvent:
		env.Specific = model.IssueCommentPayload{Event: e}
	case *github.PullRequestEvent:
		env.Specific = model.PullRequestPayload{Event: e}
	case *github.PullRequestReviewEvent:
		env.Specific = model.PullRequestReviewPayload{Event: e}
	case *github.PullRequestReviewCommentEvent:
		env.Specific = model.PullRequestReviewCommentPayload{Event: e}
	case *github.CommitCommentEvent:
		env.Specific = model.CommitCommentPayload{Event: e}
	}

	return env, nil
}

func loosePayload(kind types.EventKind, f looseFields) model.Payload {
	switch kind {
	case types.KindDiscussion:
		return model.DiscussionPayload{
			Action:     f.Action,
			Discussion: model.NewFragment(kind, "discussion", f.Discussion),
		}
	case types.KindDiscussionComment:
		return model.DiscussionCommentPayload{
			Action:     f.Action,
			Discussion: model.NewFragment(kind, "discussion", f.Discussion),
			Comment:    model.NewFragment(kind, "comment", f.Comment),
		}
	case types.KindRelease:
		return model.ReleasePayload{
			Action:  f.Action,
			Release: model.NewFragment(kind, "release", f.Release),
		}
	case types.KindMembership:
		return model.MembershipPayload{
			Action: f.Action,
			Member: model.NewFragment(kind, "member", f.Member),
			Team:   model.NewFragment(kind, "team", f.Team),
		}
	default:
		return nil
	}
}

func toProfile(u *github.User) *model.Profile {
	if u == nil {
		return nil
	}
	return &model.Profile{
		Login:     u.GetLogin(),
		Name:      u.GetName(),
		AvatarURL: u.GetAvatarURL(),
		HTMLURL:   u.GetHTMLURL(),
		Type:      u.GetType(),
	}
}

func toRepository(r *github.Repository) *model.Repository {
	if r == nil {
		return nil
	}
	return &model.Repository{
		FullName:   r.GetFullName(),
		Name:       r.GetName(),
		HTMLURL:    r.GetHTMLURL(),
		OwnerLogin: r.GetOwner().GetLogin(),
		Private:    r.GetPrivate(),
	}
}

func toOrganization(o *github.Organization) *model.Organization {
	if o == nil {
		return nil
	}
	return &model.Organization{Login: o.GetLogin()}
}
