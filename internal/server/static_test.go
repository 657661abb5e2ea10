package server

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCachePolicy(t *testing.T) {
	tests := []struct {
		path     string
		expected string
	}{
		{"/api/subscriptions", "no-store"},
		{"/api", "no-store"},
		{"/auth/token", "no-store"},
		{"/metrics", "no-store"},
		{"/health", "no-store"},
		{"/main.js", "no-cache"},
		{"/sw.js", "no-cache"},
		{"/styles.css", "no-cache"},
		{"/js/main.js", "no-cache"},
		{"/index.html", "public, max-age=86400"},
		{"/icons/icon-192.png", "public, max-age=86400"},
		{"/apidocs.html", "public, max-age=86400"},
		{"/healthcheck.png", "public, max-age=86400"},
		{"/../api/x", "no-store"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.expected, CachePolicy(tt.path))
		})
	}
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	full := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o755))
	require.NoError(t, os.WriteFile(full, []byte(content), 0o644))
}

func setupStaticRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dir := t.TempDir()
	writeFile(t, dir, "index.html", "<html>cuotas</html>")
	writeFile(t, dir, "main.js", "console.log('app')")
	writeFile(t, dir, "icons/icon.png", "png")

	router := gin.New()
	router.Use(CacheControlMiddleware("suscripciones-v2"))
	router.GET("/api/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	router.NoRoute(StaticHandler(dir))
	return router
}

func TestStaticHandler(t *testing.T) {
	router := setupStaticRouter(t)

	t.Run("index", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest("GET", "/", nil))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "cuotas")
		assert.Equal(t, "suscripciones-v2", w.Header().Get("X-Cache-Version"))
	})

	t.Run("network first asset", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest("GET", "/main.js", nil))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "no-cache", w.Header().Get("Cache-Control"))
	})

	t.Run("cached asset", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest("GET", "/icons/icon.png", nil))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "public, max-age=86400", w.Header().Get("Cache-Control"))
	})

	t.Run("client route falls back to index", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest("GET", "/settings", nil))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "cuotas")
		assert.Equal(t, "no-cache", w.Header().Get("Cache-Control"))
	})

	t.Run("missing asset", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest("GET", "/missing.png", nil))
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("unknown api route is not served from disk", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest("GET", "/api/nope", nil))
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "no-store", w.Header().Get("Cache-Control"))
	})

	t.Run("api route", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest("GET", "/api/ping", nil))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "no-store", w.Header().Get("Cache-Control"))
	})
}
