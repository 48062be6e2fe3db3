package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apna-adda/adda/internal/common/cnst"
	"github.com/apna-adda/adda/internal/session"
)

func newGuardedRouter(t *testing.T) (*gin.Engine, *session.Manager) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	m := session.NewManager(session.NewMemoryStore(time.Minute), time.Minute)

	r := gin.New()
	r.GET("/login-user", func(c *gin.Context) {
		require.NoError(t, m.SetUser(c, session.UserIdentity{Email: "u@x.com", Username: "u"}))
	})
	r.GET("/login-admin", func(c *gin.Context) {
		require.NoError(t, m.SetAdmin(c, session.AdminIdentity{ID: 1, Name: "A", Email: "a@x.com"}))
	})
	r.GET("/user-only", RequireUser(m), func(c *gin.Context) {
		user := c.MustGet("user").(*session.UserIdentity)
		c.String(http.StatusOK, user.Username)
	})
	r.GET("/admin-only", RequireAdmin(m), func(c *gin.Context) {
		admin := c.MustGet("admin").(*session.AdminIdentity)
		c.String(http.StatusOK, admin.Name)
	})
	return r, m
}

func doReq(r *gin.Engine, path, cookie string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if cookie != "" {
		req.Header.Set("Cookie", cookie)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func cookieOf(w *httptest.ResponseRecorder) string {
	for _, c := range w.Result().Cookies() {
		if c.Name == cnst.SessionCookie {
			return c.Name + "=" + c.Value
		}
	}
	return ""
}

func TestRequireUser(t *testing.T) {
	r, _ := newGuardedRouter(t)

	w := doReq(r, "/user-only", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	cookie := cookieOf(doReq(r, "/login-user", ""))
	require.NotEmpty(t, cookie)

	w = doReq(r, "/user-only", cookie)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "u", w.Body.String())
}

func TestRequireAdmin(t *testing.T) {
	r, _ := newGuardedRouter(t)

	// An end-user identity does not satisfy the admin guard.
	cookie := cookieOf(doReq(r, "/login-user", ""))
	w := doReq(r, "/admin-only", cookie)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	doReq(r, "/login-admin", cookie)
	w = doReq(r, "/admin-only", cookie)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "A", w.Body.String())
}
