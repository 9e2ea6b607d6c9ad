package embed

import (
	"fmt"

	"github.com/m-mizutani/hookcord/pkg/domain/model"
)

var membershipVerbs = map[string]string{
	"added":   "added to",
	"removed": "removed from",
}

func (m *Mapper) membership(env *model.Envelope, p model.MembershipPayload) (*model.EmbedBuilder, error) {
	verb, ok := membershipVerbs[p.Action]
	if !ok {
		return nil, nil
	}
	if env.Organization == nil {
		return nil, nil
	}

	team, ok := p.Team.OptionalString("name")
	if !ok {
		return nil, model.ErrMissingField(env.Kind, "team.name")
	}
	member, ok := p.Member.OptionalString("login")
	if !ok {
		return nil, model.ErrMissingField(env.Kind, "member.login")
	}
	url, ok := p.Team.OptionalString("html_url")
	if !ok {
		return nil, model.ErrMissingField(env.Kind, "team.html_url")
	}

	return model.NewEmbedBuilder().
		Title(fmt.Sprintf("[%s] %s %s %s team", env.Organization.Login, member, verb, team)).
		URL(url).
		Color(m.palette.Membership), nil
}
