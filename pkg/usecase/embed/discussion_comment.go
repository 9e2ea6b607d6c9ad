package embed

import (
	"fmt"

	"github.com/m-mizutani/hookcord/pkg/domain/model"
)

func (m *Mapper) discussionComment(env *model.Envelope, p model.DiscussionCommentPayload) (*model.EmbedBuilder, error) {
	if p.Action != "created" {
		return nil, nil
	}

	repo, err := requireRepository(env)
	if err != nil {
		return nil, err
	}

	number, err := p.Discussion.Int("number")
	if err != nil {
		return nil, err
	}
	title, err := p.Discussion.String("title")
	if err != nil {
		return nil, err
	}
	url, err := p.Comment.String("html_url")
	if err != nil {
		return nil, err
	}
	body, err := p.Comment.String("body")
	if err != nil {
		return nil, err
	}

	return model.NewEmbedBuilder().
		Title(fmt.Sprintf("[%s] New comment on discussion #%d: %s", repo.DisplayName(), number, title)).
		URL(url).
		Description(body).
		Color(m.palette.Discussion), nil
}
