package embed

import (
	"fmt"

	"github.com/m-mizutani/hookcord/pkg/domain/model"
)

func (m *Mapper) issues(env *model.Envelope, p model.IssuesPayload) (*model.EmbedBuilder, error) {
	repo, err := requireRepository(env)
	if err != nil {
		return nil, err
	}

	issue := p.Event.GetIssue()
	if issue == nil {
		return nil, model.ErrMissingField(env.Kind, "issue")
	}

	action := p.Event.GetAction()
	var verb string
	switch action {
	case "assigned":
		if issue.Assignee == nil {
			return nil, model.ErrMissingField(env.Kind, "issue.assignee")
		}
		verb = "assigned to " + issue.Assignee.GetLogin()
	case "closed":
		verb = closedVerb(issue.GetStateReason())
	case "locked", "opened", "pinned", "reopened":
		verb = action
	default:
		return nil, nil
	}

	if issue.Number == nil {
		return nil, model.ErrMissingField(env.Kind, "issue.number")
	}
	if issue.Title == nil {
		return nil, model.ErrMissingField(env.Kind, "issue.title")
	}
	if issue.HTMLURL == nil {
		return nil, model.ErrMissingField(env.Kind, "issue.html_url")
	}

	b := model.NewEmbedBuilder().
		Title(fmt.Sprintf("[%s] Issue %s: #%d %s", repo.DisplayName(), verb, issue.GetNumber(), issue.GetTitle())).
		URL(issue.GetHTMLURL()).
		Color(m.palette.Issue)

	if action == "opened" && issue.Body != nil {
		b.Description(issue.GetBody())
	}

	return b, nil
}

// closedVerb refines "closed" with the issue's state_reason
func closedVerb(stateReason string) string {
	switch stateReason {
	case "not_planned":
		return "closed as not planned"
	case "duplicate":
		return "closed as duplicate"
	case "reopened":
		return "reopened"
	default:
		return "closed"
	}
}
