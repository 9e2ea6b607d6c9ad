package config

import (
	"github.com/m-mizutani/hookcord/pkg/domain/types"
	sentryinfra "github.com/m-mizutani/hookcord/pkg/infra/sentry"
	"github.com/urfave/cli/v3"
)

// Sentry holds optional error reporting configuration
type Sentry struct {
	DSN string `masq:"secret"`
	Env string
}

// Flags returns CLI flags for Sentry configuration
func (c *Sentry) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "sentry-dsn",
			Usage:       "Sentry DSN. Error reporting is disabled when empty",
			Destination: &c.DSN,
			Sources:     cli.EnvVars("HOOKCORD_SENTRY_DSN"),
		},
		&cli.StringFlag{
			Name:        "sentry-env",
			Usage:       "Sentry environment",
			Value:       "production",
			Destination: &c.Env,
			Sources:     cli.EnvVars("HOOKCORD_SENTRY_ENV"),
		},
	}
}

// Enabled reports whether a DSN was given
func (c *Sentry) Enabled() bool {
	return c.DSN != ""
}

// Configure initializes Sentry when enabled. flush is never nil.
func (c *Sentry) Configure() (flush func(), err error) {
	if !c.Enabled() {
		return func() {}, nil
	}
	return sentryinfra.Init(c.DSN, c.Env, types.Version)
}
