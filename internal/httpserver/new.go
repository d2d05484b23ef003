package httpserver

import (
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"

	"maxbot-api/internal/identity"
	"maxbot-api/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin            *gin.Engine
	l              log.Logger
	port           int
	mode           string
	environment    string
	trustedProxies []string

	// Identity domain
	identityUC     identity.UseCase
	requestsPerMin int
}

// Config is the dependency bag passed to New().
type Config struct {
	Port        int
	Mode        string
	Environment string

	// TrustedProxies may set X-Forwarded-For. Empty means the peer address
	// is the client IP.
	TrustedProxies []string

	// Identity domain
	IdentityUseCase identity.UseCase
	RequestsPerMin  int
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:              logger,
		gin:            gin.New(),
		port:           cfg.Port,
		mode:           cfg.Mode,
		environment:    cfg.Environment,
		trustedProxies: cfg.TrustedProxies,
		identityUC:     cfg.IdentityUseCase,
		requestsPerMin: cfg.RequestsPerMin,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.gin.SetTrustedProxies(srv.trustedProxies); err != nil {
		return nil, fmt.Errorf("invalid trusted proxies: %w", err)
	}

	srv.mapHandlers()

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.identityUC == nil {
		return errors.New("identity use case is required")
	}
	if srv.requestsPerMin <= 0 {
		return errors.New("requests per minute must be positive")
	}
	return nil
}
