package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func TestViewSessionKeepsID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(sessions.Sessions("s", cookie.NewStore([]byte("secret"))))
	r.Use(ViewSession())
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, ViewID(c))
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	first := w.Body.String()
	if _, err := uuid.Parse(first); err != nil {
		t.Fatalf("Expected uuid view id, got %q", first)
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range w.Result().Cookies() {
		req.AddCookie(c)
	}
	w2 := httptest.NewRecorder()
	r.ServeHTTP(w2, req)
	if w2.Body.String() != first {
		t.Errorf("Expected same view id across requests, got %q and %q", first, w2.Body.String())
	}

	// 没有 cookie 的新会话得到新的 ID
	w3 := httptest.NewRecorder()
	r.ServeHTTP(w3, httptest.NewRequest(http.MethodGet, "/", nil))
	if w3.Body.String() == first {
		t.Errorf("Expected a fresh view id for a new session")
	}
}
