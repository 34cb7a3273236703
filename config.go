package portfolio

import (
	"time"

	"go.uber.org/zap"

	"github.com/kleancode/portfolio/contact"
	"github.com/kleancode/portfolio/content"
	"github.com/kleancode/portfolio/webhook"
)

// SiteConfig holds all configuration for the site.
type SiteConfig struct {
	Name        string // Site name (default "KleanCode")
	URL         string // Canonical URL (default "http://localhost:3000")
	Description string // Meta description
	Author      string // Author name for JSON-LD

	Addr            string        // Listen address (default ":3000")
	ShutdownTimeout time.Duration // Graceful shutdown bound (default 10s)

	ContentPath  string // YAML content file; empty uses the embedded default
	WatchContent bool   // Reload ContentPath on change

	WebhookURL     string        // Contact relay endpoint (default webhook.DefaultURL)
	WebhookMode    string        // "opaque" (default) or "strict"
	WebhookTimeout time.Duration // Per-request bound, 0 disables

	SessionSecret string // Cookie signing secret; random per process when empty
	CookieSecure  bool   // Set true for HTTPS

	ContactRateLimit  int           // Submissions per window per IP (default 5)
	ContactRateWindow time.Duration // default 10min
}

func (c *SiteConfig) setDefaults() {
	if c.Name == "" {
		c.Name = "KleanCode"
	}
	if c.URL == "" {
		c.URL = "http://localhost:3000"
	}
	if c.Addr == "" {
		c.Addr = ":3000"
	}
	if c.ShutdownTimeout <= 0 {
		c.ShutdownTimeout = 10 * time.Second
	}
	if c.WebhookURL == "" {
		c.WebhookURL = webhook.DefaultURL
	}
	if c.WebhookMode == "" {
		c.WebhookMode = string(webhook.ModeOpaque)
	}
	if c.WebhookTimeout < 0 {
		c.WebhookTimeout = 0
	}
	if c.ContactRateLimit <= 0 {
		c.ContactRateLimit = defaultSubmitMax
	}
	if c.ContactRateWindow <= 0 {
		c.ContactRateWindow = defaultSubmitWindow
	}
}

// Option configures additional App behavior.
type Option func(*App)

// WithCustomRoutes registers additional routes on the Echo instance.
// The callback runs after the built-in routes are registered.
func WithCustomRoutes(fn func(*App)) Option {
	return func(a *App) {
		a.customRoutes = append(a.customRoutes, fn)
	}
}

// WithStaticDir sets the directory for user-owned static assets (default "public").
func WithStaticDir(dir string) Option {
	return func(a *App) {
		a.staticDir = dir
	}
}

// WithLogger sets the application logger.
func WithLogger(l *zap.Logger) Option {
	return func(a *App) {
		if l != nil {
			a.logger = l
		}
	}
}

// WithSender replaces the webhook relay used for contact submissions.
func WithSender(s contact.Sender) Option {
	return func(a *App) {
		a.Sender = s
	}
}

// WithContent serves c instead of loading SiteConfig.ContentPath.
func WithContent(c *content.Cache) Option {
	return func(a *App) {
		a.Content = c
	}
}
