package config

import (
	"github.com/m-mizutani/hookcord/pkg/domain/types"
	"github.com/urfave/cli/v3"
)

// Discord holds the webhook URL of each delivery channel. The URLs embed
// the webhook token and are redacted in logs.
type Discord struct {
	Webhook        string `masq:"secret"`
	BotWebhook     string `masq:"secret"`
	SpecialWebhook string `masq:"secret"`
	ErrorWebhook   string `masq:"secret"`
}

// Flags returns CLI flags for Discord configuration
func (c *Discord) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "discord-webhook",
			Usage:       "Discord webhook URL for regular events",
			Required:    true,
			Destination: &c.Webhook,
			Sources:     cli.EnvVars("HOOKCORD_DISCORD_WEBHOOK"),
		},
		&cli.StringFlag{
			Name:        "discord-bot-webhook",
			Usage:       "Discord webhook URL for events sent by bots",
			Required:    true,
			Destination: &c.BotWebhook,
			Sources:     cli.EnvVars("HOOKCORD_DISCORD_BOT_WEBHOOK"),
		},
		&cli.StringFlag{
			Name:        "discord-special-webhook",
			Usage:       "Discord webhook URL for special-case repositories",
			Required:    true,
			Destination: &c.SpecialWebhook,
			Sources:     cli.EnvVars("HOOKCORD_DISCORD_SPECIAL_WEBHOOK"),
		},
		&cli.StringFlag{
			Name:        "discord-error-webhook",
			Usage:       "Discord webhook URL for error reports",
			Required:    true,
			Destination: &c.ErrorWebhook,
			Sources:     cli.EnvVars("HOOKCORD_DISCORD_ERROR_WEBHOOK"),
		},
	}
}

// Hooks maps each delivery channel to its webhook URL
func (c *Discord) Hooks() map[types.Channel]string {
	return map[types.Channel]string{
		types.ChannelNormal:      c.Webhook,
		types.ChannelBot:         c.BotWebhook,
		types.ChannelSpecialCase: c.SpecialWebhook,
		types.ChannelError:       c.ErrorWebhook,
	}
}

// Channels returns the channels that have a webhook URL
func (c *Discord) Channels() []types.Channel {
	var channels []types.Channel
	for ch, url := range c.Hooks() {
		if url != "" {
			channels = append(channels, ch)
		}
	}
	return channels
}
