// Package portfolio serves a single-page portfolio site built with Go, Echo,
// and templ: a fixed navigation bar, placeholder sections for each nav
// anchor, and a contact form relayed to a webhook.
//
// Views are supplied through ViewFuncs so a site can restyle any component
// without touching the handlers. DefaultViews returns the stock set.
package portfolio

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"io/fs"
	"net/http"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/kleancode/portfolio/contact"
	"github.com/kleancode/portfolio/content"
	"github.com/kleancode/portfolio/nav"
	"github.com/kleancode/portfolio/views"
	"github.com/kleancode/portfolio/webhook"
)

// ViewFuncs holds the templ components the handlers render.
type ViewFuncs struct {
	Home        func(d views.HomeData) templ.Component
	Navbar      func(brand string, links []nav.Link, state nav.State) templ.Component
	ContactCard func(sec contact.Section, replyFrom, csrfToken string) templ.Component
	NotFound    func(cfg views.SiteConfig) templ.Component
	ServerError func(cfg views.SiteConfig) templ.Component
}

// DefaultViews returns the stock components from the views package.
func DefaultViews() ViewFuncs {
	return ViewFuncs{
		Home:        views.Home,
		Navbar:      views.Navbar,
		ContactCard: views.ContactCard,
		NotFound:    views.NotFound,
		ServerError: views.ServerError,
	}
}

func (v *ViewFuncs) setDefaults() {
	d := DefaultViews()
	if v.Home == nil {
		v.Home = d.Home
	}
	if v.Navbar == nil {
		v.Navbar = d.Navbar
	}
	if v.ContactCard == nil {
		v.ContactCard = d.ContactCard
	}
	if v.NotFound == nil {
		v.NotFound = d.NotFound
	}
	if v.ServerError == nil {
		v.ServerError = d.ServerError
	}
}

// App wires together config, content, views, the contact relay, and the
// Echo server.
type App struct {
	Config  SiteConfig
	Echo    *echo.Echo
	Content *content.Cache
	Views   ViewFuncs
	Sender  contact.Sender

	logger       *zap.Logger
	limiter      *SubmitLimiter
	customRoutes []func(*App)
	staticDir    string
	ready        bool
}

// New creates an App with the given configuration and views.
func New(cfg SiteConfig, v ViewFuncs, opts ...Option) *App {
	cfg.setDefaults()
	v.setDefaults()

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	a := &App{
		Config:    cfg,
		Echo:      e,
		Views:     v,
		logger:    zap.NewNop(),
		staticDir: "public",
	}

	for _, opt := range opts {
		opt(a)
	}

	return a
}

// Logger returns the application logger.
func (a *App) Logger() *zap.Logger { return a.logger }

// Init loads content, builds the contact relay, and registers middleware
// and routes. Start calls it; tests call it directly and drive a.Echo.
func (a *App) Init() error {
	if a.ready {
		return nil
	}

	if a.Config.SessionSecret == "" {
		secret, err := randomSecret()
		if err != nil {
			return fmt.Errorf("portfolio: generate session secret: %w", err)
		}
		a.Config.SessionSecret = secret
		a.logger.Warn("no session secret configured, using a random one; contact flashes will not survive a restart")
	}

	if a.Content == nil {
		c, err := content.Open(a.Config.ContentPath)
		if err != nil {
			return fmt.Errorf("portfolio: load content: %w", err)
		}
		a.Content = c
	}

	if a.Sender == nil {
		mode, err := webhook.ParseMode(a.Config.WebhookMode)
		if err != nil {
			return fmt.Errorf("portfolio: %w", err)
		}
		client := webhook.New(a.Config.WebhookURL,
			webhook.WithMode(mode),
			webhook.WithTimeout(a.Config.WebhookTimeout),
			webhook.WithLogger(a.logger.Named("webhook")),
		)
		a.Sender = contact.SenderFunc(func(ctx context.Context, f contact.FormData) error {
			return client.Post(ctx, f)
		})
	}

	a.limiter = NewSubmitLimiter(a.Config.ContactRateLimit, a.Config.ContactRateWindow)

	a.setupMiddleware()
	a.setupRoutes()

	for _, fn := range a.customRoutes {
		fn(a)
	}
	a.ready = true
	return nil
}

// Start initializes the app and serves until ctx is cancelled, then shuts
// down gracefully.
func (a *App) Start(ctx context.Context) error {
	if err := a.Init(); err != nil {
		return err
	}

	if a.Config.WatchContent && a.Content.Path() != "" {
		if err := a.Content.Watch(ctx, a.logger.Named("content"), nil); err != nil {
			return fmt.Errorf("portfolio: %w", err)
		}
	}

	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("listening", zap.String("addr", a.Config.Addr), zap.String("url", a.Config.URL))
		errCh <- a.Echo.Start(a.Config.Addr)
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.Config.ShutdownTimeout)
	defer cancel()
	a.logger.Info("shutting down")
	if err := a.Echo.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("portfolio: shutdown: %w", err)
	}
	return nil
}

func (a *App) setupRoutes() {
	e := a.Echo

	// Framework assets are embedded; everything else under /public comes
	// from the user's static dir.
	embeddedFS, _ := fs.Sub(EmbeddedAssets, "embedded")
	embeddedHandler := echo.WrapHandler(http.StripPrefix("/public/", http.FileServer(http.FS(embeddedFS))))
	e.GET("/public/site.js", embeddedHandler)
	e.GET("/public/site.css", embeddedHandler)
	e.GET("/public/favicon.svg", embeddedHandler)
	e.Static("/public", a.staticDir)

	e.GET("/favicon.svg", handleFavicon)
	e.GET("/robots.txt", a.handleRobots)
	e.GET("/sitemap.xml", a.handleSitemap)
	e.GET("/healthz", a.handleHealth)

	e.GET("/", a.handleHome)
	e.GET("/partials/navbar/", a.handleNavbar)
	e.POST("/contact/", a.handleContactSubmit)
	e.POST("/contact/reset/", a.handleContactReset)
}

// Close releases background resources.
func (a *App) Close() error {
	if a.limiter != nil {
		a.limiter.Stop()
	}
	_ = a.logger.Sync()
	return nil
}

func (a *App) viewConfig() views.SiteConfig {
	return views.SiteConfig{
		Name:        a.Config.Name,
		URL:         a.Config.URL,
		Description: a.Config.Description,
		Author:      a.Config.Author,
	}
}

func randomSecret() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
