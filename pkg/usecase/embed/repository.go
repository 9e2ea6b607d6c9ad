package embed

import (
	"fmt"

	"github.com/m-mizutani/hookcord/pkg/domain/model"
)

func (m *Mapper) repository(env *model.Envelope, p model.RepositoryPayload) (*model.EmbedBuilder, error) {
	repo, err := requireRepository(env)
	if err != nil {
		return nil, err
	}

	var verb string
	color := m.palette.Repository

	switch p.Action {
	case "archived", "created", "unarchived":
		verb = p.Action
	case "deleted":
		verb = p.Action
		color = m.palette.Deleted

	case "renamed":
		if p.Changes == nil {
			return nil, model.ErrMissingField(env.Kind, "changes")
		}
		if p.Changes.Repository == nil {
			return nil, model.ErrMissingField(env.Kind, "changes.repository")
		}
		if p.Changes.Repository.Name == nil {
			return nil, model.ErrMissingField(env.Kind, "changes.repository.name")
		}
		verb = fmt.Sprintf("renamed from %s to %s", p.Changes.Repository.Name.From, repo.Name)

	case "transferred":
		if p.Changes == nil {
			return nil, model.ErrMissingField(env.Kind, "changes")
		}
		if p.Changes.Owner == nil {
			return nil, model.ErrMissingField(env.Kind, "changes.owner")
		}
		if p.Changes.Owner.From.User == nil {
			return nil, model.ErrMissingField(env.Kind, "changes.owner.from.user")
		}
		if repo.OwnerLogin == "" {
			return nil, model.ErrMissingField(env.Kind, "repository.owner")
		}
		verb = fmt.Sprintf("transferred from %s to %s", p.Changes.Owner.From.User.Login, repo.OwnerLogin)
		color = m.palette.Transferred

	default:
		return nil, nil
	}

	if repo.HTMLURL == "" {
		return nil, model.ErrMissingField(env.Kind, "repository.html_url")
	}

	return model.NewEmbedBuilder().
		Title(fmt.Sprintf("[%s] Repository %s", repo.DisplayName(), verb)).
		URL(repo.HTMLURL).
		Color(color), nil
}
