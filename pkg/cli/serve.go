package cli

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/hookcord/pkg/cli/config"
	controller "github.com/m-mizutani/hookcord/pkg/controller/http"
	"github.com/m-mizutani/hookcord/pkg/infra/discord"
	sentryinfra "github.com/m-mizutani/hookcord/pkg/infra/sentry"
	slackinfra "github.com/m-mizutani/hookcord/pkg/infra/slack"
	"github.com/m-mizutani/hookcord/pkg/usecase"
	"github.com/urfave/cli/v3"
)

func cmdServe() *cli.Command {
	var (
		serverCfg  config.Server
		githubCfg  config.GitHub
		discordCfg config.Discord
		policyCfg  config.Policy
		sentryCfg  config.Sentry
		slackCfg   config.Slack
	)

	var flags []cli.Flag
	flags = append(flags, serverCfg.Flags()...)
	flags = append(flags, githubCfg.Flags()...)
	flags = append(flags, discordCfg.Flags()...)
	flags = append(flags, policyCfg.Flags()...)
	flags = append(flags, sentryCfg.Flags()...)
	flags = append(flags, slackCfg.Flags()...)

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Start HTTP server",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := ctxlog.From(ctx)

			logger.Info("Starting hookcord server",
				slog.String("addr", serverCfg.Addr),
				slog.Any("github", githubCfg),
				slog.Any("discord", discordCfg),
				slog.String("policy", policyCfg.Path),
				slog.Bool("sentry", sentryCfg.Enabled()),
			)

			policy, err := policyCfg.Load()
			if err != nil {
				return err
			}
			mapper, err := policy.NewMapper()
			if err != nil {
				return goerr.Wrap(err, "failed to build mapper")
			}

			flush, err := sentryCfg.Configure()
			if err != nil {
				return err
			}
			defer flush()

			notifier := discord.NewClient(discordCfg.Hooks())

			opts := []usecase.WebhookOption{
				usecase.WithAlertSink(usecase.NewErrorEmbedAlert(notifier, mapper.Palette())),
			}
			if sentryCfg.Enabled() {
				opts = append(opts, usecase.WithAlertSink(sentryinfra.NewAlertSink(nil)))
			}
			if slackCfg.AlertWebhook != "" {
				opts = append(opts, usecase.WithAlertSink(slackinfra.NewAlertSink(slackCfg.AlertWebhook)))
			}

			webhookUC := usecase.NewWebhook(policy.NewRouter(), mapper, notifier, opts...)

			server, err := controller.NewServer(
				ctx,
				webhookUC,
				controller.WithAddr(serverCfg.Addr),
				controller.WithWebhookSecret(githubCfg.WebhookSecret),
				controller.WithSentry(sentryCfg.Enabled()),
				controller.WithChannels(discordCfg.Channels()...),
			)
			if err != nil {
				return goerr.Wrap(err, "failed to create HTTP server")
			}

			go func() {
				logger.Info("HTTP server starting", slog.String("addr", serverCfg.Addr))
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					logger.Error("HTTP server error", slog.Any("error", err))
				}
			}()

			sigChan := make(chan os.Signal, 1)
			signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

			select {
			case <-ctx.Done():
				logger.Info("Context cancelled, shutting down...")
			case sig := <-sigChan:
				logger.Info("Signal received, shutting down...", slog.Any("signal", sig))
			}

			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()

			if err := server.Shutdown(shutdownCtx); err != nil {
				return goerr.Wrap(err, "failed to shutdown server gracefully")
			}

			logger.Info("Server shutdown complete")
			return nil
		},
	}
}
