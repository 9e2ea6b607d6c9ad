package embed

import (
	"fmt"

	"github.com/m-mizutani/hookcord/pkg/domain/model"
)

const unnamedRelease = "*no name*"

func (m *Mapper) release(env *model.Envelope, p model.ReleasePayload) (*model.EmbedBuilder, error) {
	if p.Action != "released" {
		return nil, nil
	}

	repo, err := requireRepository(env)
	if err != nil {
		return nil, err
	}

	name, ok := p.Release.OptionalString("name")
	if !ok {
		name = unnamedRelease
	}

	// a non-string html_url is reported as missing
	url, ok := p.Release.OptionalString("html_url")
	if !ok {
		return nil, model.ErrMissingField(env.Kind, "release.html_url")
	}

	b := model.NewEmbedBuilder().
		Title(fmt.Sprintf("[%s] New release published: %s", repo.DisplayName(), name)).
		URL(url).
		Color(m.palette.Release)

	if body, ok := p.Release.OptionalString("body"); ok {
		b.Description(body)
	}

	return b, nil
}
