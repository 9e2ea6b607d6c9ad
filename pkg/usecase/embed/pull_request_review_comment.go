package embed

import (
	"fmt"

	"github.com/m-mizutani/hookcord/pkg/domain/model"
)

func (m *Mapper) pullRequestReviewComment(env *model.Envelope, p model.PullRequestReviewCommentPayload) (*model.EmbedBuilder, error) {
	if p.Event.GetAction() != "created" {
		return nil, nil
	}

	repo, err := requireRepository(env)
	if err != nil {
		return nil, err
	}

	pr := p.Event.GetPullRequest()
	if pr == nil {
		return nil, model.ErrMissingField(env.Kind, "pull_request")
	}
	if pr.Title == nil {
		return nil, model.ErrMissingField(env.Kind, "pull_request.title")
	}

	comment := p.Event.GetComment()
	if comment == nil {
		return nil, model.ErrMissingField(env.Kind, "comment")
	}
	if comment.HTMLURL == nil {
		return nil, model.ErrMissingField(env.Kind, "comment.html_url")
	}
	if comment.Body == nil {
		return nil, model.ErrMissingField(env.Kind, "comment.body")
	}

	return model.NewEmbedBuilder().
		Title(fmt.Sprintf("[%s] New review comment on pull request #%d: %s", repo.DisplayName(), pr.GetNumber(), pr.GetTitle())).
		URL(comment.GetHTMLURL()).
		Description(comment.GetBody()).
		Color(m.palette.PullRequest), nil
}
