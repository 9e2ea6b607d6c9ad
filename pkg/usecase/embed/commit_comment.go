package embed

import (
	"fmt"

	"github.com/m-mizutani/hookcord/pkg/domain/model"
)

// commitComment has no action filter; GitHub only sends "created"
func (m *Mapper) commitComment(env *model.Envelope, p model.CommitCommentPayload) (*model.EmbedBuilder, error) {
	repo, err := requireRepository(env)
	if err != nil {
		return nil, err
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
		Title(fmt.Sprintf("[%s] New comment on commit %s", repo.DisplayName(), comment.GetCommitID())).
		URL(comment.GetHTMLURL()).
		Description(comment.GetBody()).
		Color(m.palette.Commit), nil
}
