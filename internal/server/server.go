package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"cuotas/internal/auth"
	"cuotas/internal/config"
	"cuotas/internal/preferences"
	"cuotas/internal/subscription"

	"github.com/gin-gonic/gin"
)

// Deps are the collaborators the HTTP layer routes to. Prefs may be nil,
// in which case the preference routes are not mounted.
type Deps struct {
	Config        *config.Config
	Subscriptions subscription.Service
	Prefs         preferences.Preferences
}

type Server struct {
	router  *gin.Engine
	http    *http.Server
	limiter *RateLimiter
	config  *config.Config
}

func New(deps Deps) *Server {
	cfg := deps.Config

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(RequestLoggingMiddleware())
	router.Use(MetricsMiddleware())
	router.Use(corsMiddleware())
	router.Use(CacheControlMiddleware(cfg.CacheVersion))

	router.GET("/health", Health(deps.Subscriptions))
	router.GET("/metrics", Metrics())
	SetupSwagger(router)

	limiter := NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst, 3*time.Minute)

	if cfg.AuthEnabled() {
		authGroup := router.Group("/auth")
		authGroup.Use(limiter.Middleware())
		auth.NewHandler(cfg.PasscodeHash, cfg.JWTSecret).RegisterRoutes(authGroup)
	}

	apiGroup := router.Group("/api")
	apiGroup.Use(limiter.Middleware())
	if cfg.AuthEnabled() {
		apiGroup.Use(auth.AuthMiddleware(cfg.JWTSecret))
	}
	{
		subscription.NewHandler(deps.Subscriptions).RegisterRoutes(apiGroup)
		if deps.Prefs != nil {
			preferences.NewHandler(deps.Prefs).RegisterRoutes(apiGroup)
		}
	}

	if cfg.StaticDir != "" {
		router.NoRoute(StaticHandler(cfg.StaticDir))
	}

	return &Server{
		router:  router,
		limiter: limiter,
		config:  cfg,
	}
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) Start(port string) error {
	s.http = &http.Server{
		Addr:              ":" + port,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s.http.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.limiter.Close()
	if s.http == nil {
		return nil
	}
	if err := s.http.Shutdown(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	}
}
