package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/kleancode/portfolio"
)

func newServeCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "serve",
		Aliases: []string{"s"},
		Short:   "Start the web server",
		Long: `Start the web server and relay contact submissions to the webhook.

Examples:
  portfolio serve
  portfolio serve --addr :8080 --content content.yaml --watch
  PORTFOLIO_WEBHOOK_MODE=strict portfolio serve`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), v)
		},
	}

	f := cmd.Flags()
	f.String("addr", ":3000", "listen address")
	f.String("url", "", "canonical site URL")
	f.String("content", "", "YAML content file (default: embedded)")
	f.Bool("watch", false, "reload the content file when it changes")
	f.String("webhook-url", "", "contact relay endpoint")
	f.String("webhook-mode", "", "opaque or strict")
	f.Duration("webhook-timeout", 0, "per-request relay timeout, 0 means none")
	f.Bool("secure-cookies", false, "mark cookies Secure (HTTPS)")

	bindFlags(v, f, map[string]string{
		"addr":            "server.addr",
		"url":             "site.url",
		"content":         "content.path",
		"watch":           "content.watch",
		"webhook-url":     "webhook.url",
		"webhook-mode":    "webhook.mode",
		"webhook-timeout": "webhook.timeout",
		"secure-cookies":  "session.secure",
	})
	return cmd
}

func runServe(ctx context.Context, v *viper.Viper) error {
	logger, err := newLogger(v)
	if err != nil {
		return err
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := siteConfig(v)
	app := portfolio.New(cfg, portfolio.ViewFuncs{}, portfolio.WithLogger(logger))
	defer app.Close()

	if err := app.Start(ctx); err != nil {
		logger.Error("server stopped", zap.Error(err))
		return err
	}
	return nil
}
