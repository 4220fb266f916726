package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func newProtectedRouter() *gin.Engine {
	r := gin.New()
	r.POST("/api/uploads", AuthenticateToken(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r
}

func TestAuthenticateToken(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("open when token unset", func(t *testing.T) {
		t.Setenv("API_ACCESS_TOKEN", "")
		r := newProtectedRouter()

		req := httptest.NewRequest(http.MethodPost, "/api/uploads", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200 without token configured, got %d", w.Code)
		}
	})

	t.Run("missing header", func(t *testing.T) {
		t.Setenv("API_ACCESS_TOKEN", "s3cret")
		r := newProtectedRouter()

		req := httptest.NewRequest(http.MethodPost, "/api/uploads", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("wrong scheme", func(t *testing.T) {
		t.Setenv("API_ACCESS_TOKEN", "s3cret")
		r := newProtectedRouter()

		req := httptest.NewRequest(http.MethodPost, "/api/uploads", nil)
		req.Header.Set("Authorization", "Basic s3cret")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("wrong token", func(t *testing.T) {
		t.Setenv("API_ACCESS_TOKEN", "s3cret")
		r := newProtectedRouter()

		req := httptest.NewRequest(http.MethodPost, "/api/uploads", nil)
		req.Header.Set("Authorization", "Bearer nope")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("valid token", func(t *testing.T) {
		t.Setenv("API_ACCESS_TOKEN", "s3cret")
		r := newProtectedRouter()

		req := httptest.NewRequest(http.MethodPost, "/api/uploads", nil)
		req.Header.Set("Authorization", "Bearer s3cret")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}
