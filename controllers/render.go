package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aamagency-dev/sms-frontend/config"
	"github.com/aamagency-dev/sms-frontend/platform"
	"github.com/aamagency-dev/sms-frontend/utils"
)

// Base carries the dependencies every controller needs. The platform client
// and config are injected at wiring time; nothing reaches for globals.
type Base struct {
	Client *platform.Client
	Cfg    config.Config
}

// render fills in the session user for the nav and renders a page template.
func (b Base) render(c *gin.Context, status int, tmpl string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	if s, ok := utils.GetSession(c); ok {
		data["User"] = s.User
	}
	if _, ok := data["Errors"]; !ok {
		data["Errors"] = map[string]string{}
	}
	c.HTML(status, tmpl, data)
}

// fail handles a platform call error on a page. A 401 tears the session
// down and redirects to /login; anything else re-renders the page with the
// error message in a banner.
func (b Base) fail(c *gin.Context, err error, tmpl string, data gin.H) {
	if b.expireSession(c, err) {
		return
	}
	if data == nil {
		data = gin.H{}
	}
	data["Error"] = errorMessage(err)
	b.render(c, http.StatusOK, tmpl, data)
}

// expireSession clears credentials and redirects to /login when err is the
// platform's 401 sentinel. Returns true when it handled the request.
func (b Base) expireSession(c *gin.Context, err error) bool {
	if !errors.Is(err, platform.ErrSessionExpired) {
		return false
	}
	utils.ClearSessionCookie(c, b.Cfg.SecureCookies)
	c.Redirect(http.StatusSeeOther, "/login")
	c.Abort()
	return true
}

func errorMessage(err error) string {
	var apiErr *platform.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Detail
	}
	return "Something went wrong. Please try again."
}
