package httpserver

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/dmitrymomot/vetform/pkg/logger"
)

type config struct {
	addr            string
	readTimeout     time.Duration
	writeTimeout    time.Duration
	idleTimeout     time.Duration
	shutdownTimeout time.Duration
	server          *http.Server
	logger          *slog.Logger
	startHooks      []func(net.Addr)
	stopHooks       []func()
}

func defaultConfig() *config {
	return &config{
		addr:            ":8080",
		shutdownTimeout: 10 * time.Second,
	}
}

// Server wraps http.Server with graceful shutdown and lifecycle logging.
type Server struct {
	cfg  *config
	log  *slog.Logger
	once sync.Once

	mu  sync.Mutex
	srv *http.Server
}

// New returns a configured Server.
func New(opts ...Option) *Server {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	log := cfg.logger
	if log == nil {
		log = logger.Discard()
	}
	return &Server{cfg: cfg, log: log.With(logger.Component("httpserver"))}
}

// Run serves handler until ctx is cancelled, an interrupt or TERM signal
// arrives, or Shutdown is called. Listen and serve failures are joined
// with ErrStart.
func (s *Server) Run(ctx context.Context, handler http.Handler) error {
	if handler == nil {
		handler = http.NotFoundHandler()
	}

	srv, err := s.prepare(handler)
	if err != nil {
		return err
	}

	ln, err := net.Listen("tcp", srv.Addr)
	if err != nil {
		return errors.Join(ErrStart, err)
	}

	s.log.InfoContext(ctx, "server started", slog.String("addr", ln.Addr().String()))
	for _, h := range s.cfg.startHooks {
		h(ln.Addr())
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Serve(ln) }()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(stop)

	var runErr error
	select {
	case <-ctx.Done():
		runErr = s.shutdownAndWait(errCh)
	case sig := <-stop:
		s.log.InfoContext(ctx, "shutdown signal received", slog.String("signal", sig.String()))
		runErr = s.shutdownAndWait(errCh)
	case runErr = <-errCh:
	}

	if runErr != nil && !errors.Is(runErr, http.ErrServerClosed) {
		return errors.Join(ErrStart, runErr)
	}
	return nil
}

func (s *Server) prepare(handler http.Handler) (*http.Server, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.srv != nil {
		return nil, errors.Join(ErrStart, ErrAlreadyRunning)
	}

	cfg := s.cfg
	srv := cfg.server
	if srv == nil {
		srv = &http.Server{}
	}
	if srv.Addr == "" {
		srv.Addr = cfg.addr
	}
	if srv.ReadTimeout == 0 {
		srv.ReadTimeout = cfg.readTimeout
	}
	if srv.WriteTimeout == 0 {
		srv.WriteTimeout = cfg.writeTimeout
	}
	if srv.IdleTimeout == 0 {
		srv.IdleTimeout = cfg.idleTimeout
	}
	if srv.ErrorLog == nil {
		srv.ErrorLog = slog.NewLogLogger(s.log.Handler(), slog.LevelWarn)
	}
	srv.Handler = handler
	s.srv = srv
	return srv, nil
}

func (s *Server) shutdownAndWait(errCh <-chan error) error {
	if err := s.Shutdown(context.Background()); err != nil {
		s.log.Error("graceful shutdown failed", logger.Error(err))
	}
	return <-errCh
}

// Shutdown stops the server gracefully within the shutdown timeout.
// Repeated calls are no-ops. Errors are joined with ErrShutdown.
func (s *Server) Shutdown(ctx context.Context) error {
	var err error
	s.once.Do(func() {
		s.mu.Lock()
		srv := s.srv
		s.mu.Unlock()
		if srv == nil {
			return
		}

		ctx, cancel := context.WithTimeout(ctx, s.cfg.shutdownTimeout)
		defer cancel()
		err = srv.Shutdown(ctx)

		for _, h := range s.cfg.stopHooks {
			h()
		}
		s.log.InfoContext(ctx, "server stopped")
	})

	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.Join(ErrShutdown, err)
	}
	return nil
}
