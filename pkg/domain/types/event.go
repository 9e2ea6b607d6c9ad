package types

// EventKind is the value of the X-GitHub-Event header
type EventKind string

const (
	KindRepository               EventKind = "repository"
	KindIssues                   EventKind = "issues"
	KindIssueComment             EventKind = "issue_comment"
	KindPullRequest              EventKind = "pull_request"
	KindPullRequestReview        EventKind = "pull_request_review"
	KindPullRequestReviewComment EventKind = "pull_request_review_comment"
	KindDiscussion               EventKind = "discussion"
	KindDiscussionComment        EventKind = "discussion_comment"
	KindCommitComment            EventKind = "commit_comment"
	KindRelease                  EventKind = "release"
	KindMembership               EventKind = "membership"
)

func (k EventKind) String() string { return string(k) }

// Channel is a named delivery destination selected by the routing policy
type Channel string

const (
	ChannelNormal      Channel = "normal"
	ChannelBot         Channel = "bot"
	ChannelSpecialCase Channel = "special_case"
	ChannelSuppressed  Channel = "suppressed"
	// ChannelError receives operator alerts. It is never selected by routing.
	ChannelError Channel = "error"
)

func (c Channel) String() string { return string(c) }

// DeliveryID identifies a single webhook delivery (X-GitHub-Delivery)
type DeliveryID string
