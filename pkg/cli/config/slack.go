package config

import "github.com/urfave/cli/v3"

// Slack holds the optional operator alert webhook
type Slack struct {
	AlertWebhook string `masq:"secret"`
}

// Flags returns CLI flags for Slack configuration
func (c *Slack) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "slack-alert-webhook",
			Usage:       "Slack incoming webhook URL that mirrors error reports",
			Destination: &c.AlertWebhook,
			Sources:     cli.EnvVars("HOOKCORD_SLACK_ALERT_WEBHOOK"),
		},
	}
}
