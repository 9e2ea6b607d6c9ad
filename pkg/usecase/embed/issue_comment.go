package embed

import (
	"fmt"

	"github.com/m-mizutani/hookcord/pkg/domain/model"
)

func (m *Mapper) issueComment(env *model.Envelope, p model.IssueCommentPayload) (*model.EmbedBuilder, error) {
	if p.Event.GetAction() != "created" {
		return nil, nil
	}

	repo, err := requireRepository(env)
	if err != nil {
		return nil, err
	}

	issue := p.Event.GetIssue()
	if issue == nil {
		return nil, model.ErrMissingField(env.Kind, "issue")
	}
	comment := p.Event.GetComment()
	if comment == nil {
		return nil, model.ErrMissingField(env.Kind, "comment")
	}
	if comment.HTMLURL == nil {
		return nil, model.ErrMissingField(env.Kind, "comment.html_url")
	}

	target, color := "issue", m.palette.Issue
	if issue.IsPullRequest() {
		target, color = "pull request", m.palette.PullRequest
	}

	b := model.NewEmbedBuilder().
		Title(fmt.Sprintf("[%s] New comment on %s #%d: %s", repo.DisplayName(), target, issue.GetNumber(), issue.GetTitle())).
		URL(comment.GetHTMLURL()).
		Color(color)

	if comment.Body != nil {
		b.Description(comment.GetBody())
	}

	return b, nil
}
