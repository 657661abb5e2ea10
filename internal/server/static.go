package server

import (
	"net/http"
	"path"
	"strings"

	"cuotas/internal/api"

	"github.com/gin-gonic/gin"
)

const (
	cacheNoStore = "no-store"
	cacheNoCache = "no-cache"
	cacheAsset   = "public, max-age=86400"
)

// noStorePrefixes are dynamic surfaces that must always reach the server.
var noStorePrefixes = []string{"/api", "/auth", "/metrics", "/health"}

// networkFirst are UI files that change with every release; the browser
// must revalidate them before use.
var networkFirst = map[string]bool{
	"main.js":    true,
	"sw.js":      true,
	"styles.css": true,
}

func hasPathPrefix(p, prefix string) bool {
	return p == prefix || strings.HasPrefix(p, prefix+"/")
}

func isNoStore(p string) bool {
	for _, prefix := range noStorePrefixes {
		if hasPathPrefix(p, prefix) {
			return true
		}
	}
	return false
}

// CachePolicy returns the Cache-Control value for a request path.
func CachePolicy(requestPath string) string {
	p := path.Clean("/" + requestPath)
	switch {
	case isNoStore(p):
		return cacheNoStore
	case networkFirst[path.Base(p)]:
		return cacheNoCache
	default:
		return cacheAsset
	}
}

// CacheControlMiddleware tags every response with its cache policy and the
// current asset cache version.
func CacheControlMiddleware(version string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Cache-Control", CachePolicy(c.Request.URL.Path))
		if version != "" {
			c.Header("X-Cache-Version", version)
		}
		c.Next()
	}
}

// StaticHandler serves the UI from dir. Unknown paths without an extension
// get index.html so client-side routes survive a reload.
func StaticHandler(dir string) gin.HandlerFunc {
	fs := http.Dir(dir)
	fileServer := http.FileServer(fs)

	return func(c *gin.Context) {
		p := path.Clean("/" + c.Request.URL.Path)
		if (c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead) || isNoStore(p) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Not found"})
			return
		}

		if f, err := fs.Open(p); err == nil {
			f.Close()
			fileServer.ServeHTTP(c.Writer, c.Request)
			return
		}

		if path.Ext(p) == "" {
			c.Header("Cache-Control", cacheNoCache)
			c.Request.URL.Path = "/"
			fileServer.ServeHTTP(c.Writer, c.Request)
			return
		}

		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Not found"})
	}
}
