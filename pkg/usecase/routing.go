package usecase

import (
	"github.com/m-mizutani/hookcord/pkg/domain/model"
	"github.com/m-mizutani/hookcord/pkg/domain/types"
)

// DefaultSpecialCaseRepos are high-traffic repositories sent to their own
// channel
var DefaultSpecialCaseRepos = []string{"userstyles"}

// Router selects the delivery channel of an event
type Router struct {
	specialCase map[string]struct{}
}

// NewRouter creates a Router. Repositories are matched by short name.
func NewRouter(specialCaseRepos ...string) *Router {
	set := make(map[string]struct{}, len(specialCaseRepos))
	for _, name := range specialCaseRepos {
		set[name] = struct{}{}
	}
	return &Router{specialCase: set}
}

// Route applies, in order: bot sender, special-case repository, private
// repository, and falls back to the normal channel
func (r *Router) Route(env *model.Envelope) types.Channel {
	if env.Sender.IsBot() {
		return types.ChannelBot
	}

	if repo := env.Repository; repo != nil {
		if _, ok := r.specialCase[repo.Name]; ok {
			return types.ChannelSpecialCase
		}
		if repo.Private {
			return types.ChannelSuppressed
		}
	}

	return types.ChannelNormal
}
