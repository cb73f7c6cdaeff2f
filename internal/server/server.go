package server

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/weiliang-c/account-be/internal/auth"
	"github.com/weiliang-c/account-be/internal/config"
	"github.com/weiliang-c/account-be/internal/http/handlers"
	"github.com/weiliang-c/account-be/internal/middleware"
	"github.com/weiliang-c/account-be/internal/storage"
	"github.com/weiliang-c/account-be/internal/users"
)

// Server wraps an http.Server with configured routes.
type Server struct {
	inner *http.Server
}

// New wires services, middleware, and routes into a ready server.
func New(cfg config.Config, store storage.UserStore, logger *slog.Logger) *Server {
	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.JWTIssuer, cfg.JWTTTL())
	userSvc := users.NewService(store, cfg.BcryptCost)
	authSvc := auth.NewService(userSvc, tokens)

	mux := NewMux(authSvc, userSvc, tokens)
	mux.Handle("GET /metrics", promhttp.Handler())

	handler := middleware.CORS(cfg.CORSOrigins,
		middleware.RequestID(
			middleware.Logging(logger,
				middleware.Metrics(mux))))

	httpServer := &http.Server{
		Addr:              cfg.HTTPAddress(),
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	return &Server{inner: httpServer}
}

// NewMux registers the application routes. Split out so tests can exercise
// the routing table without a listener.
func NewMux(authSvc *auth.Service, userSvc *users.Service, tokens *auth.TokenManager) *http.ServeMux {
	mux := http.NewServeMux()
	handlers.NewHealthHandler(time.Now()).Register(mux)
	handlers.NewAuthHandler(authSvc, userSvc, tokens).Register(mux)
	handlers.NewUsersHandler(userSvc).Register(mux)
	return mux
}

// Start begins serving HTTP traffic.
func (s *Server) Start() error {
	return s.inner.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.inner.Shutdown(ctx)
}
