package embed

import (
	"fmt"
	"strings"

	"github.com/m-mizutani/hookcord/pkg/domain/model"
)

func (m *Mapper) pullRequest(env *model.Envelope, p model.PullRequestPayload) (*model.EmbedBuilder, error) {
	repo, err := requireRepository(env)
	if err != nil {
		return nil, err
	}

	pr := p.Event.GetPullRequest()
	if pr == nil {
		return nil, model.ErrMissingField(env.Kind, "pull_request")
	}

	action := p.Event.GetAction()
	var verb string
	switch action {
	case "assigned":
		if p.Event.Assignee == nil {
			return nil, model.ErrMissingField(env.Kind, "assignee")
		}
		verb = "assigned to " + p.Event.Assignee.GetLogin()
	case "closed":
		verb = "closed"
		if pr.MergedAt != nil {
			verb = "merged"
		}
	case "locked", "opened", "reopened":
		verb = action
	case "ready_for_review":
		verb = "ready for review"
	case "review_requested":
		// exempt repositories come from the policy file
		if _, ok := m.reviewExempt[repo.Name]; ok {
			return nil, nil
		}

		var reviewers []string
		if u := p.Event.RequestedReviewer; u != nil {
			reviewers = append(reviewers, u.GetLogin())
		}
		if team := p.Event.RequestedTeam; team != nil {
			reviewers = append(reviewers, team.GetName())
		}
		if len(reviewers) == 0 {
			return nil, model.ErrMissingField(env.Kind, "(requested_reviewer|requested_team)")
		}
		verb = "review requested from " + strings.Join(reviewers, ", ")
	default:
		return nil, nil
	}

	number := p.Event.GetNumber()
	if p.Event.Number == nil {
		number = pr.GetNumber()
	}
	if pr.Title == nil {
		return nil, model.ErrMissingField(env.Kind, "pull_request.title")
	}
	if pr.HTMLURL == nil {
		return nil, model.ErrMissingField(env.Kind, "pull_request.html_url")
	}

	b := model.NewEmbedBuilder().
		Title(fmt.Sprintf("[%s] Pull request %s: #%d %s", repo.DisplayName(), verb, number, pr.GetTitle())).
		URL(pr.GetHTMLURL()).
		Color(m.palette.PullRequest)

	if action == "opened" && pr.Body != nil {
		b.Description(pr.GetBody())
	}

	return b, nil
}
