package controllers

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/aamagency-dev/sms-frontend/utils"
)

func TestSessionMiddlewareRedirectsWithoutToken(t *testing.T) {
	r, _, auth, _ := newTestApp(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("no platform call expected without a token")
	})

	authed := r.Group("/")
	authed.Use(auth.SessionMiddleware())
	authed.GET("/businesses", func(c *gin.Context) { c.String(http.StatusOK, "ok") })

	req := httptest.NewRequest(http.MethodGet, "/businesses", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))
}

func TestSessionMiddlewareClearsStaleToken(t *testing.T) {
	r, _, auth, _ := newTestApp(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("an expired token must not reach the platform")
	})

	authed := r.Group("/")
	authed.Use(auth.SessionMiddleware())
	authed.GET("/businesses", func(c *gin.Context) { c.String(http.StatusOK, "ok") })

	req := httptest.NewRequest(http.MethodGet, "/businesses", nil)
	addSessionCookie(req, staleToken(t))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))

	cleared := false
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == "token" && cookie.MaxAge < 0 {
			cleared = true
		}
	}
	assert.True(t, cleared)
}

func TestSessionMiddlewareHydratesUser(t *testing.T) {
	r, _, auth, _ := newTestApp(t, func(w http.ResponseWriter, r *http.Request) {
		meHandler(w, r, "owner")
	})

	authed := r.Group("/")
	authed.Use(auth.SessionMiddleware())
	authed.GET("/whoami", func(c *gin.Context) {
		s, ok := utils.GetSession(c)
		if assert.True(t, ok) {
			c.String(http.StatusOK, s.User.Email+" admin="+strconv.FormatBool(s.User.IsAdmin))
		}
	})

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	addSessionCookie(req, liveToken(t))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "admin@example.com admin=false", rec.Body.String())
}

func TestRequireAdminForbidsOwners(t *testing.T) {
	r, base, auth, _ := newTestApp(t, func(w http.ResponseWriter, r *http.Request) {
		meHandler(w, r, "owner")
	})

	users := UserController{Base: base}
	admin := r.Group("/admin")
	admin.Use(auth.SessionMiddleware(), auth.RequireAdmin())
	admin.GET("/users", users.List)

	req := httptest.NewRequest(http.MethodGet, "/admin/users", nil)
	addSessionCookie(req, liveToken(t))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestLoginSetsCookieAndRedirects(t *testing.T) {
	r, _, auth, _ := newTestApp(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/auth/login" {
			w.Write([]byte(`{"access_token":"tok-abc"}`))
			return
		}
		http.NotFound(w, r)
	})

	r.POST("/login", auth.Login)

	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader("email=a%40b.se&password=secret123"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))

	var token string
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == "token" {
			token = cookie.Value
		}
	}
	assert.Equal(t, "tok-abc", token)
}

func TestLoginRejectedCredentialsStayOnPage(t *testing.T) {
	r, _, auth, _ := newTestApp(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"detail":"Invalid credentials"}`))
	})

	r.POST("/login", auth.Login)

	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader("email=a%40b.se&password=wrong"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "login.html")
}

func TestLoginMissingFields(t *testing.T) {
	r, _, auth, _ := newTestApp(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("no platform call expected for an empty form")
	})

	r.POST("/login", auth.Login)

	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(""))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLogoutClearsCookie(t *testing.T) {
	r, _, auth, _ := newTestApp(t, func(w http.ResponseWriter, r *http.Request) {})

	r.GET("/logout", auth.Logout)

	req := httptest.NewRequest(http.MethodGet, "/logout", nil)
	addSessionCookie(req, liveToken(t))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))

	cleared := false
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == "token" && cookie.MaxAge < 0 {
			cleared = true
		}
	}
	assert.True(t, cleared)
}
