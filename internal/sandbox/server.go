package sandbox

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"

	"github.com/vfg2006/insights-dashboard/internal/config"
	"github.com/vfg2006/insights-dashboard/internal/sandbox/aggregating"
	"github.com/vfg2006/insights-dashboard/internal/sandbox/auth"
	"github.com/vfg2006/insights-dashboard/internal/sandbox/handler"
	"github.com/vfg2006/insights-dashboard/internal/sandbox/handler/router"
	"github.com/vfg2006/insights-dashboard/internal/sandbox/store"
	"github.com/vfg2006/insights-dashboard/pkg/middleware"
)

const shutdownTimeout = 15 * time.Second

type Option func(*Server)

// WithClock fixa o relógio do armazenamento e do cálculo de expiração de tokens
func WithClock(now func() time.Time) Option {
	return func(s *Server) {
		s.now = now
	}
}

// WithStore troca o armazenamento em memória por outro, ex.: Postgres
func WithStore(st store.Store) Option {
	return func(s *Server) {
		s.store = st
	}
}

// Server é um backend REST que implementa o contrato consumido pelo dashboard
type Server struct {
	httpServer *http.Server
	now        func() time.Time

	store   store.Store
	users   *auth.Service
	metrics *aggregating.Service
}

func New(cfg *config.Config, opts ...Option) (*Server, error) {
	if cfg.Sandbox.SecretKey == "" {
		return nil, fmt.Errorf("SANDBOX_SECRET_KEY não pode ser vazio")
	}

	srv := &Server{now: time.Now}
	for _, opt := range opts {
		opt(srv)
	}

	if srv.store == nil {
		srv.store = store.NewMemory(store.WithClock(srv.now))
	}
	srv.users = auth.NewService(srv.store, cfg.Sandbox)
	srv.metrics = aggregating.NewService(srv.store)

	rt := router.New(
		router.WithRoutes(handler.Healthcheck()...),
		router.WithRoutes(handler.Authentication(srv.users)...),
		router.WithRoutes(handler.Metrics(srv.metrics, srv.users)...),
		router.WithRoutes(handler.Integrations(srv.store, srv.users, srv.now)...),
		router.WithRoutes(handler.Notifications(srv.store, srv.users)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(cfg.Sandbox.AllowedOrigins),
	}

	srv.httpServer = &http.Server{
		Addr:              fmt.Sprintf("%s:%s", cfg.Sandbox.Host, cfg.Sandbox.Port),
		Handler:           alice.New(middlewares...).Then(rt),
		ReadHeaderTimeout: 2 * time.Second,
	}

	return srv, nil
}

// Handler expõe a cadeia completa de middlewares e rotas, ex.: para httptest
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

func (s *Server) Store() store.Store {
	return s.store
}

func (s *Server) Users() *auth.Service {
	return s.users
}

func (s *Server) Metrics() *aggregating.Service {
	return s.metrics
}

func (s *Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Sandbox iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("Erro durante a execução do sandbox")
		}
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(done)

	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	logrus.WithField("timeout", shutdownTimeout.String()).Info("Iniciando desligamento gracioso do sandbox")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do sandbox")
		return err
	}

	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return err
	}

	logrus.Info("Sandbox desligado com sucesso")
	return nil
}
