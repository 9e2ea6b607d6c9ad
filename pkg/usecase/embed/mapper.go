// Package embed turns GitHub webhook envelopes into Discord embeds.
//
// Each supported event kind has one extractor. An extractor returns a
// populated builder, nil when the event should not produce a notification,
// or an error when a required field is absent or malformed. Extractors are
// pure; a Mapper can be shared between goroutines.
package embed

import (
	"github.com/m-mizutani/hookcord/pkg/domain/model"
)

// DefaultReviewRequestExemptRepos are repositories whose review requests are
// not announced
var DefaultReviewRequestExemptRepos = []string{"userstyles"}

// Mapper converts envelopes to messages
type Mapper struct {
	palette      model.Palette
	reviewExempt map[string]struct{}
}

// Option configures a Mapper
type Option func(*Mapper)

// WithPalette replaces the default colours
func WithPalette(p model.Palette) Option {
	return func(m *Mapper) {
		m.palette = p
	}
}

// WithReviewRequestExemptRepos replaces the repositories (matched by short
// name) whose pull_request review_requested events are ignored
func WithReviewRequestExemptRepos(names ...string) Option {
	return func(m *Mapper) {
		m.reviewExempt = toSet(names)
	}
}

// New creates a Mapper
func New(opts ...Option) *Mapper {
	m := &Mapper{
		palette:      model.DefaultPalette(),
		reviewExempt: toSet(DefaultReviewRequestExemptRepos),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Palette returns the colours used by the mapper
func (m *Mapper) Palette() model.Palette {
	return m.palette
}

// Map renders env as a Discord message. It returns nil without error when
// the event is ignored.
func (m *Mapper) Map(env *model.Envelope) (*model.Message, error) {
	if env.Sender == nil {
		return nil, model.ErrMissingField(env.Kind, "sender")
	}

	b, err := m.begin(env)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, nil
	}

	b.Author(*env.Sender)
	return b.Build()
}

func (m *Mapper) begin(env *model.Envelope) (*model.EmbedBuilder, error) {
	switch p := env.Specific.(type) {
	case model.RepositoryPayload:
		return m.repository(env, p)
	case model.IssuesPayload:
		return m.issues(env, p)
	case model.IssueCommentPayload:
		return m.issueComment(env, p)
	case model.PullRequestPayload:
		return m.pullRequest(env, p)
	case model.PullRequestReviewPayload:
		return m.pullRequestReview(env, p)
	case model.PullRequestReviewCommentPayload:
		return m.pullRequestReviewComment(env, p)
	case model.DiscussionPayload:
		return m.discussion(env, p)
	case model.DiscussionCommentPayload:
		return m.discussionComment(env, p)
	case model.CommitCommentPayload:
		return m.commitComment(env, p)
	case model.ReleasePayload:
		return m.release(env, p)
	case model.MembershipPayload:
		return m.membership(env, p)
	default:
		return nil, nil
	}
}

func requireRepository(env *model.Envelope) (*model.Repository, error) {
	if env.Repository == nil {
		return nil, model.ErrMissingField(env.Kind, "repository")
	}
	return env.Repository, nil
}

func toSet(names []string) map[string]struct{} {
	set := make(map[string]struct{}, len(names))
	for _, name := range names {
		set[name] = struct{}{}
	}
	return set
}
