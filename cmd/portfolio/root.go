package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/kleancode/portfolio"
)

const envPrefix = "PORTFOLIO"

// newRootCmd builds the command tree. Configuration precedence is flags,
// then PORTFOLIO_* environment variables, then the --config file.
func newRootCmd() *cobra.Command {
	v := viper.New()
	var cfgFile string

	root := &cobra.Command{
		Use:           "portfolio",
		Short:         "Serve the KleanCode portfolio site",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig(v, cfgFile)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "config file (YAML); PORTFOLIO_CONFIG_FILE also works")
	pf.StringP("log-level", "l", "info", "log level (debug, info, warn, error)")
	pf.Bool("dev", false, "human-readable development logging")
	bindFlags(v, pf, map[string]string{"log-level": "log.level", "dev": "log.dev"})

	root.AddCommand(newServeCmd(v), newVersionCmd())
	return root
}

func initConfig(v *viper.Viper, cfgFile string) error {
	if cfgFile == "" {
		cfgFile = os.Getenv(envPrefix + "_CONFIG_FILE")
	}
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	if cfgFile == "" {
		return nil
	}
	v.SetConfigFile(cfgFile)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("read config %s: %w", cfgFile, err)
	}
	return nil
}

// bindFlags maps flag names to viper keys.
func bindFlags(v *viper.Viper, fs *pflag.FlagSet, keys map[string]string) {
	for name, key := range keys {
		if f := fs.Lookup(name); f != nil {
			_ = v.BindPFlag(key, f)
		}
	}
}

// siteConfig maps viper keys onto portfolio.SiteConfig. Zero values fall
// through to the app's defaults.
func siteConfig(v *viper.Viper) portfolio.SiteConfig {
	return portfolio.SiteConfig{
		Name:              v.GetString("site.name"),
		URL:               v.GetString("site.url"),
		Description:       v.GetString("site.description"),
		Author:            v.GetString("site.author"),
		Addr:              v.GetString("server.addr"),
		ShutdownTimeout:   v.GetDuration("server.shutdown_timeout"),
		ContentPath:       v.GetString("content.path"),
		WatchContent:      v.GetBool("content.watch"),
		WebhookURL:        v.GetString("webhook.url"),
		WebhookMode:       v.GetString("webhook.mode"),
		WebhookTimeout:    v.GetDuration("webhook.timeout"),
		SessionSecret:     v.GetString("session.secret"),
		CookieSecure:      v.GetBool("session.secure"),
		ContactRateLimit:  v.GetInt("contact.rate_limit"),
		ContactRateWindow: v.GetDuration("contact.rate_window"),
	}
}

func newLogger(v *viper.Viper) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(v.GetString("log.level"))
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	cfg := zap.NewProductionConfig()
	if v.GetBool("log.dev") {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.Level = zap.NewAtomicLevelAt(level)
	return cfg.Build()
}
