package portfolio

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/kleancode/portfolio/contact"
	"github.com/kleancode/portfolio/nav"
	"github.com/kleancode/portfolio/views"
)

func (a *App) handleHome(c echo.Context) error {
	state := nav.ParseState(c.QueryParams())
	var sec contact.Section
	if a.popContactFlash(c) == contact.StatusSuccess {
		sec.Succeed()
	}
	return Render(c, a.Views.Home(a.homeData(c, state, sec)))
}

// handleNavbar serves the header fragment after applying the requested action.
func (a *App) handleNavbar(c echo.Context) error {
	state := nav.ParseState(c.QueryParams())
	state.Apply(nav.Action(c.QueryParam("action")))
	cnt := a.Content.Get()
	return Render(c, a.Views.Navbar(cnt.Brand, cnt.Nav, state))
}

func (a *App) homeData(c echo.Context, state nav.State, sec contact.Section) views.HomeData {
	return views.HomeData{
		Site:    a.viewConfig(),
		Content: a.Content.Get(),
		Nav:     state,
		Contact: sec,
		CSRF:    CsrfToken(c),
	}
}

func handleFavicon(c echo.Context) error {
	data, err := EmbeddedAssets.ReadFile("embedded/favicon.svg")
	if err != nil {
		return err
	}
	return c.Blob(http.StatusOK, "image/svg+xml", data)
}

// handleRobots generates robots.txt using the configured site URL.
func (a *App) handleRobots(c echo.Context) error {
	body := fmt.Sprintf("User-agent: *\nAllow: /\nDisallow: /partials/\nDisallow: /contact/\n\nSitemap: %s/sitemap.xml\n", a.Config.URL)
	return c.String(http.StatusOK, body)
}

type healthResponse struct {
	Status        string `json:"status"`
	ContentLoaded string `json:"content_loaded_at"`
}

func (a *App) handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, healthResponse{
		Status:        "ok",
		ContentLoaded: a.Content.LoadedAt().UTC().Format(time.RFC3339),
	})
}

func (a *App) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	var he *echo.HTTPError
	ok := errors.As(err, &he)
	if ok && he.Code == http.StatusNotFound {
		_ = RenderStatus(c, http.StatusNotFound, a.Views.NotFound(a.viewConfig()))
		return
	}
	code := http.StatusInternalServerError
	if ok {
		code = he.Code
	}
	if code >= 500 {
		a.logger.Error("server error",
			zap.String("method", c.Request().Method),
			zap.String("uri", c.Request().RequestURI),
			zap.Error(err))
		_ = RenderStatus(c, code, a.Views.ServerError(a.viewConfig()))
		return
	}
	a.Echo.DefaultHTTPErrorHandler(err, c)
}
