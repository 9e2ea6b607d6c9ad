package embed

import (
	"fmt"

	"github.com/m-mizutani/hookcord/pkg/domain/model"
)

func (m *Mapper) discussion(env *model.Envelope, p model.DiscussionPayload) (*model.EmbedBuilder, error) {
	repo, err := requireRepository(env)
	if err != nil {
		return nil, err
	}

	switch p.Action {
	case "created", "closed", "reopened":
	default:
		return nil, nil
	}

	number, err := p.Discussion.Int("number")
	if err != nil {
		return nil, err
	}
	title, err := p.Discussion.String("title")
	if err != nil {
		return nil, err
	}
	url, err := p.Discussion.String("html_url")
	if err != nil {
		return nil, err
	}

	b := model.NewEmbedBuilder().
		Title(fmt.Sprintf("[%s] Discussion %s: #%d %s", repo.DisplayName(), p.Action, number, title)).
		URL(url).
		Color(m.palette.Discussion)

	if p.Action == "created" {
		body, err := p.Discussion.String("body")
		if err != nil {
			return nil, err
		}
		b.Description(body)
	}

	return b, nil
}
