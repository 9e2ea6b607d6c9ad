package config

import (
	"bytes"
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/hookcord/pkg/domain/model"
	"github.com/m-mizutani/hookcord/pkg/usecase"
	"github.com/m-mizutani/hookcord/pkg/usecase/embed"
	"github.com/pelletier/go-toml/v2"
	"github.com/urfave/cli/v3"
)

// Policy points to the optional TOML file holding routing and rendering
// rules
type Policy struct {
	Path string
}

// Flags returns CLI flags for policy configuration
func (c *Policy) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "policy",
			Usage:       "Path to a TOML policy file (special-case repositories, exemptions, colours)",
			Destination: &c.Path,
			Sources:     cli.EnvVars("HOOKCORD_POLICY"),
			TakesFile:   true,
		},
	}
}

// PolicyFile is the content of the policy file. Omitted lists keep their
// defaults; an explicit empty list disables the rule.
type PolicyFile struct {
	Routing struct {
		SpecialCaseRepos []string `toml:"special_case_repos"`
	} `toml:"routing"`
	Mapping struct {
		ReviewRequestExemptRepos []string `toml:"review_request_exempt_repos"`
	} `toml:"mapping"`
	Palette map[string]string `toml:"palette"`
}

// Load reads the policy file, or returns the defaults when no path is set
func (c *Policy) Load() (*PolicyFile, error) {
	if c.Path == "" {
		return ParsePolicy(nil)
	}

	data, err := os.ReadFile(c.Path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read policy file", goerr.V("path", c.Path))
	}

	p, err := ParsePolicy(data)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to load policy file", goerr.V("path", c.Path))
	}
	return p, nil
}

// ParsePolicy decodes a policy document. Unknown keys are rejected.
func ParsePolicy(data []byte) (*PolicyFile, error) {
	var p PolicyFile
	if len(data) > 0 {
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&p); err != nil {
			return nil, goerr.Wrap(err, "failed to decode policy")
		}
	}

	if p.Routing.SpecialCaseRepos == nil {
		p.Routing.SpecialCaseRepos = usecase.DefaultSpecialCaseRepos
	}
	if p.Mapping.ReviewRequestExemptRepos == nil {
		p.Mapping.ReviewRequestExemptRepos = embed.DefaultReviewRequestExemptRepos
	}

	// fail at startup on bad colours
	if _, err := p.palette(); err != nil {
		return nil, err
	}

	return &p, nil
}

func (p *PolicyFile) palette() (model.Palette, error) {
	return model.DefaultPalette().WithOverrides(p.Palette)
}

// NewRouter builds the routing policy
func (p *PolicyFile) NewRouter() *usecase.Router {
	return usecase.NewRouter(p.Routing.SpecialCaseRepos...)
}

// NewMapper builds the embed mapper
func (p *PolicyFile) NewMapper() (*embed.Mapper, error) {
	palette, err := p.palette()
	if err != nil {
		return nil, err
	}
	return embed.New(
		embed.WithPalette(palette),
		embed.WithReviewRequestExemptRepos(p.Mapping.ReviewRequestExemptRepos...),
	), nil
}
