package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/hookcord/pkg/cli/config"
	"github.com/m-mizutani/hookcord/pkg/domain/model"
	"github.com/m-mizutani/hookcord/pkg/domain/types"
)

func TestParsePolicy_Defaults(t *testing.T) {
	p, err := config.ParsePolicy(nil)
	gt.NoError(t, err)
	gt.Value(t, p.Routing.SpecialCaseRepos).Equal([]string{"userstyles"})
	gt.Value(t, p.Mapping.ReviewRequestExemptRepos).Equal([]string{"userstyles"})

	mapper, err := p.NewMapper()
	gt.NoError(t, err)
	gt.Value(t, mapper.Palette()).Equal(model.DefaultPalette())
}

func TestParsePolicy(t *testing.T) {
	p, err := config.ParsePolicy([]byte(`
[routing]
special_case_repos = ["ports", "userstyles"]

[mapping]
review_request_exempt_repos = []

[palette]
issue = "#010203"
`))
	gt.NoError(t, err)
	gt.Value(t, p.Routing.SpecialCaseRepos).Equal([]string{"ports", "userstyles"})
	gt.Number(t, len(p.Mapping.ReviewRequestExemptRepos)).Equal(0)

	router := p.NewRouter()
	env := &model.Envelope{
		Sender:     &model.Profile{Login: "octocat"},
		Repository: &model.Repository{FullName: "org/ports", Name: "ports"},
	}
	gt.Value(t, router.Route(env)).Equal(types.ChannelSpecialCase)

	mapper, err := p.NewMapper()
	gt.NoError(t, err)
	gt.Number(t, mapper.Palette().Issue.Packed()).Equal(0x010203)
}

func TestParsePolicy_Errors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{name: "unknown section", doc: "[notify]\nurl = \"x\"\n"},
		{name: "unknown palette key", doc: "[palette]\npush = \"#000000\"\n"},
		{name: "bad colour", doc: "[palette]\nissue = \"green\"\n"},
		{name: "not toml", doc: "routing = ["},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := config.ParsePolicy([]byte(tt.doc))
			gt.Error(t, err)
		})
	}
}

func TestPolicy_Load(t *testing.T) {
	t.Run("no path", func(t *testing.T) {
		p, err := (&config.Policy{}).Load()
		gt.NoError(t, err)
		gt.Value(t, p.Routing.SpecialCaseRepos).Equal([]string{"userstyles"})
	})

	t.Run("from file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "policy.toml")
		gt.NoError(t, os.WriteFile(path, []byte("[routing]\nspecial_case_repos = [\"ports\"]\n"), 0o600))

		p, err := (&config.Policy{Path: path}).Load()
		gt.NoError(t, err)
		gt.Value(t, p.Routing.SpecialCaseRepos).Equal([]string{"ports"})
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := (&config.Policy{Path: filepath.Join(t.TempDir(), "none.toml")}).Load()
		gt.Error(t, err)
	})
}
