package controllers

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// businessBackend is a scripted platform API with request counters.
type businessBackend struct {
	createCalls int
	importCalls int
	deleteCalls int
	listStatus  int
}

func (b *businessBackend) handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if meHandler(w, r, "admin") {
			return
		}
		switch {
		case r.URL.Path == "/businesses/service-categories" || r.URL.Path == "/businesses/service-intervals":
			w.Write([]byte(`[]`))
		case r.URL.Path == "/businesses/" && r.Method == http.MethodPost:
			b.createCalls++
			w.Write([]byte(`{"id":"b1","name":"Glow Studio","slug":"glow-studio"}`))
		case r.URL.Path == "/businesses/" && r.Method == http.MethodGet:
			if b.listStatus != 0 {
				w.WriteHeader(b.listStatus)
				return
			}
			w.Write([]byte(`[{"id":"b1","name":"Glow Studio","slug":"glow-studio"}]`))
		case r.URL.Path == "/businesses/b1" && r.Method == http.MethodGet:
			w.Write([]byte(`{"id":"b1","name":"Glow Studio","slug":"glow-studio","inactive_customer_days":90}`))
		case r.URL.Path == "/businesses/b1" && r.Method == http.MethodDelete:
			b.deleteCalls++
			w.Write([]byte(`{}`))
		case r.URL.Path == "/pricelist/import":
			b.importCalls++
			w.Write([]byte(`{"total_rows":2,"imported_count":2,"duplicate_count":0,"errors":[]}`))
		default:
			http.NotFound(w, r)
		}
	}
}

func newBusinessApp(t *testing.T, backend *businessBackend) *gin.Engine {
	t.Helper()
	r, base, auth, _ := newTestApp(t, backend.handler())

	businesses := BusinessController{Base: base}
	authed := r.Group("/")
	authed.Use(auth.SessionMiddleware())
	{
		authed.GET("/businesses", businesses.List)
		authed.POST("/businesses", businesses.Create)
		authed.GET("/businesses/:id/delete", businesses.DeleteConfirm)
		authed.POST("/businesses/:id/delete", businesses.Delete)
	}
	return r
}

func validBusinessForm() url.Values {
	v := url.Values{}
	v.Set("name", "Glow Studio")
	v.Set("slug", "glow-studio")
	v.Set("inactive_customer_days", "90")
	v.Set("delay_hours", "24")
	v.Set("default_interval_months", "6")
	return v
}

func TestCreateBusinessPostsExactlyOnce(t *testing.T) {
	backend := &businessBackend{}
	r := newBusinessApp(t, backend)

	req := httptest.NewRequest(http.MethodPost, "/businesses", strings.NewReader(validBusinessForm().Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	addSessionCookie(req, liveToken(t))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/businesses?msg=Business+created", rec.Header().Get("Location"))
	assert.Equal(t, 1, backend.createCalls)
	assert.Equal(t, 0, backend.importCalls)
}

func TestCreateBusinessRunsPriceListImportAfterCreate(t *testing.T) {
	backend := &businessBackend{}
	r := newBusinessApp(t, backend)

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	for key, vals := range validBusinessForm() {
		require.NoError(t, writer.WriteField(key, vals[0]))
	}
	part, err := writer.CreateFormFile("pricelist", "prices.csv")
	require.NoError(t, err)
	part.Write([]byte("Service,Price\nHaircut,450\n"))
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/businesses", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	addSessionCookie(req, liveToken(t))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "import_result.html")
	assert.Equal(t, 1, backend.createCalls)
	assert.Equal(t, 1, backend.importCalls)
}

func TestCreateBusinessValidationFailureMakesNoCreateCall(t *testing.T) {
	backend := &businessBackend{}
	r := newBusinessApp(t, backend)

	form := validBusinessForm()
	form.Set("slug", "Not A Slug")
	req := httptest.NewRequest(http.MethodPost, "/businesses", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	addSessionCookie(req, liveToken(t))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "business_form.html")
	assert.Equal(t, 0, backend.createCalls)
	assert.Equal(t, 0, backend.importCalls)
}

func TestDeleteBusinessRequiresConfirmation(t *testing.T) {
	backend := &businessBackend{}
	r := newBusinessApp(t, backend)

	// Unconfirmed POST never reaches the platform.
	req := httptest.NewRequest(http.MethodPost, "/businesses/b1/delete", strings.NewReader(""))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	addSessionCookie(req, liveToken(t))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, 0, backend.deleteCalls)

	// Confirmed POST issues exactly one DELETE.
	req = httptest.NewRequest(http.MethodPost, "/businesses/b1/delete", strings.NewReader("confirm=yes"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	addSessionCookie(req, liveToken(t))
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/businesses?msg=Business+deleted", rec.Header().Get("Location"))
	assert.Equal(t, 1, backend.deleteCalls)
}

func TestDeleteConfirmPageIssuesNoDelete(t *testing.T) {
	backend := &businessBackend{}
	r := newBusinessApp(t, backend)

	req := httptest.NewRequest(http.MethodGet, "/businesses/b1/delete", nil)
	addSessionCookie(req, liveToken(t))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "confirm_delete.html")
	assert.Equal(t, 0, backend.deleteCalls)
}

func TestUpstreamUnauthorizedTearsSessionDown(t *testing.T) {
	backend := &businessBackend{listStatus: http.StatusUnauthorized}
	r := newBusinessApp(t, backend)

	req := httptest.NewRequest(http.MethodGet, "/businesses", nil)
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
	assert.True(t, cleared, "expected the token cookie to be cleared")
}
