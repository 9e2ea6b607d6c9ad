package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/hookcord/pkg/cli/config"
	ghparser "github.com/m-mizutani/hookcord/pkg/controller/github"
	"github.com/m-mizutani/hookcord/pkg/domain/types"
	"github.com/urfave/cli/v3"
)

func cmdPreview() *cli.Command {
	var (
		eventType   string
		payloadPath string
		policyCfg   config.Policy
	)

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "event",
			Aliases:     []string{"e"},
			Usage:       "X-GitHub-Event value of the payload (e.g. pull_request)",
			Required:    true,
			Destination: &eventType,
		},
		&cli.StringFlag{
			Name:        "payload",
			Aliases:     []string{"p"},
			Usage:       "Path to a webhook payload JSON file, or - for stdin",
			Value:       "-",
			Destination: &payloadPath,
			TakesFile:   true,
		},
	}
	flags = append(flags, policyCfg.Flags()...)

	return &cli.Command{
		Name:  "preview",
		Usage: "Render a saved webhook payload without sending it",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			body, err := readPayload(payloadPath, os.Stdin)
			if err != nil {
				return err
			}

			policy, err := policyCfg.Load()
			if err != nil {
				return err
			}

			return runPreview(c.Root().Writer, eventType, body, policy)
		},
	}
}

func readPayload(path string, stdin io.Reader) ([]byte, error) {
	if path == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to read payload from stdin")
		}
		return data, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read payload file", goerr.V("path", path))
	}
	return data, nil
}

// runPreview routes and renders one payload and prints the result to w
func runPreview(w io.Writer, eventType string, body []byte, policy *config.PolicyFile) error {
	var (
		label   = color.New(color.Bold).SprintFunc()
		good    = color.New(color.FgGreen).SprintFunc()
		muted   = color.New(color.FgYellow).SprintFunc()
		failure = color.New(color.FgRed, color.Bold).SprintFunc()
	)

	env, err := ghparser.ParseEnvelope(eventType, "preview", body)
	if err != nil {
		return err
	}

	mapper, err := policy.NewMapper()
	if err != nil {
		return err
	}

	ch := policy.NewRouter().Route(env)
	if ch == types.ChannelSuppressed {
		fmt.Fprintf(w, "%s %s\n", label("channel:"), muted(ch))
		return nil
	}
	fmt.Fprintf(w, "%s %s\n", label("channel:"), good(ch))

	msg, err := mapper.Map(env)
	if err != nil {
		fmt.Fprintf(w, "%s %s\n", label("error:"), failure(err.Error()))
		return goerr.Wrap(err, "failed to map event")
	}
	if msg == nil {
		fmt.Fprintf(w, "%s %s\n", label("result:"), muted("ignored"))
		return nil
	}

	out, err := json.MarshalIndent(msg, "", "  ")
	if err != nil {
		return goerr.Wrap(err, "failed to encode message")
	}
	fmt.Fprintln(w, string(out))
	return nil
}
