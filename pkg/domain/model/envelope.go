package model

import (
	"github.com/google/go-github/v75/github"
	"github.com/m-mizutani/hookcord/pkg/domain/types"
)

// AccountTypeBot is the sender type GitHub reports for apps and bots
const AccountTypeBot = "Bot"

// Profile is a GitHub account as it appears in an event
type Profile struct {
	Login     string
	Name      string // display name; embed authors use Login
	AvatarURL string
	HTMLURL   string
	Type      string // "User" or "Bot"
}

// IsBot reports whether the account is an app or bot
func (p *Profile) IsBot() bool {
	return p != nil && p.Type == AccountTypeBot
}

// Repository is the repository an event belongs to
type Repository struct {
	FullName   string
	Name       string
	HTMLURL    string
	OwnerLogin string
	Private    bool
}

// DisplayName is the full name when known, else the short name
func (r *Repository) DisplayName() string {
	if r.FullName != "" {
		return r.FullName
	}
	return r.Name
}

// Organization is the owning organization of an event
type Organization struct {
	Login string
}

// Envelope is one webhook delivery. Specific always matches Kind; it is nil
// for event kinds that have no notification.
type Envelope struct {
	ID           types.DeliveryID
	Kind         types.EventKind
	Sender       *Profile
	Repository   *Repository
	Organization *Organization
	Specific     Payload
}

// Payload is the kind-specific part of an envelope
type Payload interface {
	Kind() types.EventKind
}

// RepositoryChanges is the rename/transfer delta of a repository event
type RepositoryChanges struct {
	Repository *struct {
		Name *struct {
			From string `json:"from"`
		} `json:"name"`
	} `json:"repository"`
	Owner *struct {
		From struct {
			User *struct {
				Login string `json:"login"`
			} `json:"user"`
		} `json:"from"`
	} `json:"owner"`
}

// RepositoryPayload carries a repository event and its rename/transfer changes
type RepositoryPayload struct {
	Action  string
	Changes *RepositoryChanges
}

// IssuesPayload wraps an issues event
type IssuesPayload struct {
	Event *github.IssuesEvent
}

// IssueCommentPayload wraps an issue_comment event
type IssueCommentPayload struct {
	Event *github.IssueCommentEvent
}

// PullRequestPayload wraps a pull_request event
type PullRequestPayload struct {
	Event *github.PullRequestEvent
}

// PullRequestReviewPayload wraps a pull_request_review event
type PullRequestReviewPayload struct {
	Event *github.PullRequestReviewEvent
}

// PullRequestReviewCommentPayload wraps a pull_request_review_comment event
type PullRequestReviewCommentPayload struct {
	Event *github.PullRequestReviewCommentEvent
}

// CommitCommentPayload wraps a commit_comment event
type CommitCommentPayload struct {
	Event *github.CommitCommentEvent
}

// DiscussionPayload holds the loosely decoded discussion object
type DiscussionPayload struct {
	Action     string
	Discussion Fragment
}

// DiscussionCommentPayload holds the loosely decoded discussion and comment objects
type DiscussionCommentPayload struct {
	Action     string
	Discussion Fragment
	Comment    Fragment
}

// ReleasePayload holds the loosely decoded release object
type ReleasePayload struct {
	Action  string
	Release Fragment
}

// MembershipPayload holds the loosely decoded member and team objects
type MembershipPayload struct {
	Action string
	Member Fragment
	Team   Fragment
}

func (RepositoryPayload) Kind() types.EventKind { return types.KindRepository }
func (IssuesPayload) Kind() types.EventKind { return types.KindIssues }
func (IssueCommentPayload) Kind() types.EventKind { return types.KindIssueComment }
func (PullRequestPayload) Kind() types.EventKind { return types.KindPullRequest }
func (PullRequestReviewPayload) Kind() types.EventKind { return types.KindPullRequestReview }
func (PullRequestReviewCommentPayload) Kind() types.EventKind { return types.KindPullRequestReviewComment }
func (CommitCommentPayload) Kind() types.EventKind { return types.KindCommitComment }
func (DiscussionPayload) Kind() types.EventKind { return types.KindDiscussion }
func (DiscussionCommentPayload) Kind() types.EventKind { return types.KindDiscussionComment }
func (ReleasePayload) Kind() types.EventKind { return types.KindRelease }
func (MembershipPayload) Kind() types.EventKind { return types.KindMembership }
