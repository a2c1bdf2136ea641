package controllers

import (
	"html/template"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"github.com/aamagency-dev/sms-frontend/config"
	"github.com/aamagency-dev/sms-frontend/platform"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// stubTemplates stands in for templates/ so handlers can render without the
// repo-root working directory.
func stubTemplates() *template.Template {
	root := template.New("root")
	for _, name := range []string{
		"login.html", "register.html", "error.html",
		"dashboard.html", "admin_dashboard.html",
		"businesses.html", "business_form.html",
		"customers.html", "customer_form.html",
		"users.html", "user_form.html",
		"conversations.html", "conversation.html", "sms_compose.html",
		"pricelist.html", "import_result.html", "confirm_delete.html",
		"health.html",
	} {
		template.Must(root.New(name).Parse(name))
	}
	return root
}

// liveToken builds a JWT whose exp claim is an hour out, so the session
// middleware's staleness check passes.
func liveToken(t *testing.T) string {
	t.Helper()
	claims := jwt.MapClaims{"sub": "u1", "exp": time.Now().Add(time.Hour).Unix()}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-key"))
	require.NoError(t, err)
	return token
}

func staleToken(t *testing.T) string {
	t.Helper()
	claims := jwt.MapClaims{"sub": "u1", "exp": time.Now().Add(-time.Hour).Unix()}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-key"))
	require.NoError(t, err)
	return token
}

// newTestApp wires a gin engine against a fake platform backend the same way
// routes.SetupRouter does, minus the HTML glob and CORS noise.
func newTestApp(t *testing.T, backend http.HandlerFunc) (*gin.Engine, Base, AuthController, *httptest.Server) {
	t.Helper()

	srv := httptest.NewServer(backend)
	t.Cleanup(srv.Close)

	client := platform.NewClient(srv.URL, 2*time.Second)
	base := Base{Client: client, Cfg: config.Config{APIBaseURL: srv.URL}}
	auth := AuthController{Base: base}

	r := gin.New()
	r.SetHTMLTemplate(stubTemplates())
	return r, base, auth, srv
}

// meHandler answers /auth/me for the session middleware; returns true when it
// handled the request.
func meHandler(w http.ResponseWriter, r *http.Request, role string) bool {
	if r.URL.Path != "/auth/me" {
		return false
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"id":"u1","email":"admin@example.com","name":"Admin","role":"` + role + `","is_active":true}`))
	return true
}

func addSessionCookie(req *http.Request, token string) {
	req.AddCookie(&http.Cookie{Name: "token", Value: token})
}
