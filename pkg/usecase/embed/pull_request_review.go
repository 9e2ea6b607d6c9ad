package embed

import (
	"fmt"
	"strings"

	"github.com/m-mizutani/hookcord/pkg/domain/model"
)

var reviewStateVerbs = map[string]string{
	"approved":          "approved",
	"changes_requested": "changes requested",
	"commented":         "reviewed",
}

func (m *Mapper) pullRequestReview(env *model.Envelope, p model.PullRequestReviewPayload) (*model.EmbedBuilder, error) {
	if p.Event.GetAction() != "submitted" {
		return nil, nil
	}

	repo, err := requireRepository(env)
	if err != nil {
		return nil, err
	}

	review := p.Event.GetReview()
	if review == nil {
		return nil, model.ErrMissingField(env.Kind, "review")
	}
	if review.State == nil {
		return nil, model.ErrMissingField(env.Kind, "review.state")
	}
	verb, ok := reviewStateVerbs[strings.ToLower(review.GetState())]
	if !ok {
		return nil, nil
	}

	pr := p.Event.GetPullRequest()
	if pr == nil {
		return nil, model.ErrMissingField(env.Kind, "pull_request")
	}
	if pr.Title == nil {
		return nil, model.ErrMissingField(env.Kind, "pull_request.title")
	}
	if review.HTMLURL == nil {
		return nil, model.ErrMissingField(env.Kind, "review.html_url")
	}

	b := model.NewEmbedBuilder().
		Title(fmt.Sprintf("[%s] Pull request %s: #%d %s", repo.DisplayName(), verb, pr.GetNumber(), pr.GetTitle())).
		URL(review.GetHTMLURL()).
		Color(m.palette.PullRequest)

	if review.Body != nil {
		b.Description(review.GetBody())
	}

	return b, nil
}
