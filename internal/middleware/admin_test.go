package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/vilis-app/carsrent-api/internal/config"
)

func adminTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{AdminToken: "secret-token"}

	r := gin.New()
	r.GET("/admin/ping", AdminMiddleware(cfg), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r
}

func TestAdminMiddlewareHeader(t *testing.T) {
	r := adminTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/admin/ping", nil)
	req.Header.Set("x-admin-token", "secret-token")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
}

func TestAdminMiddlewareQueryParam(t *testing.T) {
	r := adminTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/admin/ping?admin_token=secret-token", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
}

func TestAdminMiddlewareRejects(t *testing.T) {
	r := adminTestRouter()

	cases := []struct {
		name  string
		token string
	}{
		{"missing token", ""},
		{"wrong token", "nope"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/admin/ping", nil)
			if tc.token != "" {
				req.Header.Set("x-admin-token", tc.token)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != http.StatusUnauthorized {
				t.Fatalf("status = %d, want 401", w.Code)
			}
		})
	}
}
