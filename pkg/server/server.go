package server

import (
	"context"
	"errors"
	"net/http"
	"os"
	"sync/atomic"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"

	"github.com/doodlesbykumbi/accrisk/pkg/audit"
	"github.com/doodlesbykumbi/accrisk/pkg/automation"
	"github.com/doodlesbykumbi/accrisk/pkg/config"
	"github.com/doodlesbykumbi/accrisk/pkg/server/middleware"
	"github.com/doodlesbykumbi/accrisk/pkg/server/store"
)

// Stores groups the storage dependencies of the server
type Stores struct {
	Risks       store.RisksStore
	Automations store.AutomationsStore
	Health      store.HealthStore
}

type Server struct {
	Router           *mux.Router
	RisksStore       store.RisksStore
	AutomationsStore store.AutomationsStore
	HealthStore      store.HealthStore
	Scheduler        *automation.Scheduler
	JWTMiddleware    *middleware.JWTAuthenticator
	RateLimiter      *middleware.RateLimiter
	srv              *http.Server
	stop             chan struct{}
	config           atomic.Pointer[config.Config]
}

func NewServer(
	cfg *config.Config,
	stores Stores,
	scheduler *automation.Scheduler,
	host string,
	port string,
) *Server {
	router := mux.NewRouter().UseEncodedPath()
	limiter := middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)
	srv := &http.Server{
		Handler:      handlers.LoggingHandler(os.Stdout, limiter.Middleware(router)),
		Addr:         host + ":" + port,
		WriteTimeout: 15 * time.Second,
		ReadTimeout:  15 * time.Second,
	}

	s := &Server{
		Router:           router,
		RisksStore:       stores.Risks,
		AutomationsStore: stores.Automations,
		HealthStore:      stores.Health,
		Scheduler:        scheduler,
		JWTMiddleware:    middleware.NewJWTAuthenticator(cfg.JWTSecret),
		RateLimiter:      limiter,
		srv:              srv,
		stop:             make(chan struct{}),
	}
	s.config.Store(cfg)
	return s
}

// Config returns the configuration the server is currently running with
func (s *Server) Config() *config.Config {
	return s.config.Load()
}

// Reload applies cfg to the running server. The JWT secret, rate limits,
// list page cap and audit toggle take effect immediately. The organization,
// bulk batch size, check task and database keep their startup values until
// the server is restarted.
func (s *Server) Reload(cfg *config.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	if cfg.JWTSecret == "" {
		return errors.New("jwt_secret must not be empty")
	}
	s.JWTMiddleware.SetSecret(cfg.JWTSecret)
	s.RateLimiter.SetLimits(cfg.RateLimitRPS, cfg.RateLimitBurst)
	audit.SetEnabled(cfg.AuditEnabled)
	s.config.Store(cfg)
	return nil
}

func (s *Server) Start() error {
	go s.pruneRateLimiter()
	return s.srv.ListenAndServe()
}

// Shutdown stops accepting connections and waits for in-flight requests
func (s *Server) Shutdown(ctx context.Context) error {
	select {
	case <-s.stop:
	default:
		close(s.stop)
	}
	return s.srv.Shutdown(ctx)
}

func (s *Server) pruneRateLimiter() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			s.RateLimiter.Prune()
		case <-s.stop:
			return
		}
	}
}
