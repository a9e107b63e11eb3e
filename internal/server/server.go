package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/unifiedacademics/uap-backend/internal/bootstrap"
	"github.com/unifiedacademics/uap-backend/internal/config"
	"github.com/unifiedacademics/uap-backend/internal/db"
)

// Server holds the state for the HTTP server.
type Server struct {
	config   *config.Config
	router   *gin.Engine
	postgres *db.PostgresDB
	mongodb  *db.MongoDB
	deps     *bootstrap.Dependencies
	logger   zerolog.Logger
	http     *http.Server

	stopMailer context.CancelFunc
}

// NewServer creates and initializes a new server instance.
func NewServer() (*Server, error) {
	cfg, lgr, err := bootstrap.LoadConfigAndSetupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to load config or setup logger: %w", err)
	}

	postgres, mongodb, err := bootstrap.SetupStores(cfg, lgr)
	if err != nil {
		return nil, fmt.Errorf("failed to setup stores: %w", err)
	}

	deps, err := bootstrap.BuildDependencies(cfg, postgres, mongodb, lgr)
	if err != nil {
		postgres.Close()
		_ = mongodb.Close(context.Background())
		return nil, fmt.Errorf("failed to setup dependencies: %w", err)
	}

	router := bootstrap.SetupRouter(cfg, deps, lgr)

	return &Server{
		config:   cfg,
		router:   router,
		postgres: postgres,
		mongodb:  mongodb,
		deps:     deps,
		logger:   lgr,
	}, nil
}

// Run starts the outbox worker and the HTTP server, then blocks until a
// shutdown signal arrives.
func (s *Server) Run() error {
	mailerCtx, stopMailer := context.WithCancel(context.Background())
	s.stopMailer = stopMailer
	go func() {
		if err := s.deps.Mailer.Run(mailerCtx); err != nil && !errors.Is(err, context.Canceled) {
			s.logger.Error().Err(err).Msg("Mail outbox worker stopped")
		}
	}()

	s.http = &http.Server{
		Addr:         ":" + s.config.Server.Port,
		Handler:      s.router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	serverErrors := make(chan error, 1)
	go func() {
		s.logger.Info().Str("addr", s.http.Addr).Msg("HTTP server listening")
		serverErrors <- s.http.ListenAndServe()
	}()

	osSignals := make(chan os.Signal, 1)
	signal.Notify(osSignals, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("error starting server: %w", err)
		}
	case sig := <-osSignals:
		s.logger.Info().Str("signal", sig.String()).Msg("Received OS signal, initiating shutdown...")
	}

	return s.Shutdown(context.Background())
}

// Shutdown gracefully stops the server and closes resources.
func (s *Server) Shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	shutdownError := false

	if s.http != nil {
		if err := s.http.Shutdown(ctx); err != nil {
			s.logger.Error().Err(err).Msg("HTTP server shutdown failed")
			shutdownError = true
		}
	}

	if s.stopMailer != nil {
		s.stopMailer()
	}

	if s.postgres != nil {
		s.postgres.Close()
	}
	if s.mongodb != nil {
		if err := s.mongodb.Close(ctx); err != nil {
			s.logger.Error().Err(err).Msg("MongoDB disconnect failed")
			shutdownError = true
		}
	}

	if shutdownError {
		return errors.New("shutdown completed with errors")
	}
	s.logger.Info().Msg("Shutdown complete")
	return nil
}
