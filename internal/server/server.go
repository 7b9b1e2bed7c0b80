package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/osa911/agencysite/internal/api/handlers"
	apimiddleware "github.com/osa911/agencysite/internal/api/middleware"
	"github.com/osa911/agencysite/internal/config"
	"github.com/osa911/agencysite/internal/logging"
	"github.com/osa911/agencysite/internal/middleware"
	"github.com/osa911/agencysite/internal/server/routes"
	"github.com/osa911/agencysite/internal/service"
)

// Server represents the HTTP server
type Server struct {
	router *gin.Engine
	cfg    *config.Config
	logger *logging.Logger
}

// NewServer creates a new server instance serving the contact API and,
// when configured, the static site.
func NewServer(cfg *config.Config, logger *logging.Logger, inquiries *service.InquiryService) *Server {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Disable Gin's default logger entirely because we're using our custom logger
	gin.DisableConsoleColor()
	gin.DefaultWriter = io.Discard

	// Create a new engine without default middleware
	router := gin.New()
	router.HandleMethodNotAllowed = false

	// Forwarding headers are ignored unless the peer is a listed proxy
	if err := router.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		logger.Warn("Ignoring TRUSTED_PROXIES: %v", err)
		_ = router.SetTrustedProxies(nil)
	}

	router.Use(middleware.Recovery(logger))
	router.Use(middleware.RequestID())
	router.Use(otelgin.Middleware(cfg.ServiceName))
	router.Use(apimiddleware.RequestLogger(logger))
	router.Use(apimiddleware.SecurityHeaders(cfg.Captcha.Provider, cfg.IsProduction()))
	router.Use(apimiddleware.CORS(cfg.AllowedOrigins, cfg.Environment == "development", logger))

	h := &routes.Handlers{
		Health:  handlers.NewHealthHandler(inquiries),
		Version: handlers.NewVersionHandler(),
		Contact: handlers.NewContactHandler(inquiries),
	}
	m := &routes.Middleware{
		BodyLimit: apimiddleware.BodyLimit(cfg.MaxBodyBytes),
	}
	routes.Setup(router, h, m)

	router.NoRoute(newStaticHandler(cfg.StaticDir))

	return &Server{
		router: router,
		cfg:    cfg,
		logger: logger,
	}
}

// Handler returns the HTTP handler, for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start serves until ctx is cancelled, then shuts down gracefully within
// the configured timeout.
func (s *Server) Start(ctx context.Context) error {
	srv := &http.Server{
		Addr:              ":" + s.cfg.Port,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("HTTP server listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Info("Shutting down HTTP server (timeout %s)", s.cfg.ShutdownTimeout)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	return <-errCh
}
