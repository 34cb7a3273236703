package portfolio

import (
	"errors"
	"net/http"

	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/kleancode/portfolio/contact"
	"github.com/kleancode/portfolio/nav"
)

const contactFlashKey = "contact"

// handleContactSubmit relays the contact form. Script-driven requests get
// the card fragment back; plain posts are redirected on success and
// re-rendered with the error banner on failure.
func (a *App) handleContactSubmit(c echo.Context) error {
	var form contact.FormData
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form")
	}
	raw := form
	form.Normalize()
	sec := contact.Section{Form: form}

	ip := c.RealIP()
	code := http.StatusOK
	switch err := c.Validate(&form); {
	case err != nil:
		var fe *contact.FieldError
		if errors.As(err, &fe) {
			sec.Fail(fe.Message)
		} else {
			sec.Fail(contact.ErrorMessage)
		}
		code = http.StatusUnprocessableEntity
	case !a.limiter.Check(ip):
		sec.Fail(contact.RateLimitMessage)
		code = http.StatusTooManyRequests
		a.logger.Warn("contact rate limited", zap.String("ip", ip))
	default:
		a.limiter.Record(ip)
		if err := sec.Submit(c.Request().Context(), a.Sender); err != nil {
			a.logger.Error("contact relay failed", zap.String("ip", ip), zap.Error(err))
			code = http.StatusBadGateway
		} else {
			a.logger.Info("contact relayed", zap.String("ip", ip))
		}
	}

	// Failed attempts show the fields exactly as submitted.
	if sec.Status.IsError() {
		sec.Form = raw
	}

	if IsPartial(c) {
		return RenderStatus(c, code, a.Views.ContactCard(sec, a.Content.Get().ReplyFrom, CsrfToken(c)))
	}
	if sec.Status.IsSuccess() {
		if err := a.setContactFlash(c, contact.StatusSuccess); err != nil {
			return err
		}
		return c.Redirect(http.StatusSeeOther, "/#"+nav.ContactAnchor)
	}
	return RenderStatus(c, code, a.Views.Home(a.homeData(c, nav.State{}, sec)))
}

// handleContactReset is "send another message".
func (a *App) handleContactReset(c echo.Context) error {
	var sec contact.Section
	sec.Reset()
	if IsPartial(c) {
		return Render(c, a.Views.ContactCard(sec, a.Content.Get().ReplyFrom, CsrfToken(c)))
	}
	a.popContactFlash(c)
	return c.Redirect(http.StatusSeeOther, "/#"+nav.ContactAnchor)
}

func (a *App) setContactFlash(c echo.Context, st contact.StatusType) error {
	sess, err := session.Get(sessionName, c)
	if err != nil {
		return err
	}
	sess.AddFlash(string(st), contactFlashKey)
	return sess.Save(c.Request(), c.Response())
}

// popContactFlash consumes the pending contact status, if any.
func (a *App) popContactFlash(c echo.Context) contact.StatusType {
	sess, err := session.Get(sessionName, c)
	if err != nil {
		return contact.StatusNone
	}
	flashes := sess.Flashes(contactFlashKey)
	if len(flashes) == 0 {
		return contact.StatusNone
	}
	if err := sess.Save(c.Request(), c.Response()); err != nil {
		a.logger.Warn("save session", zap.Error(err))
	}
	st, _ := flashes[len(flashes)-1].(string)
	return contact.StatusType(st)
}
