// Package server serves games over SSH. Every session gets its own game and
// its own terminal UI.
package server

import (
	"context"
	"errors"
	"net"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"
	"github.com/charmbracelet/wish/logging"

	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/ui"
)

// Server is an SSH server handing out games.
type Server struct {
	cfg    *config.Config
	logger *log.Logger
	ssh    *ssh.Server
}

// New builds the server from cfg. The host key is generated at
// cfg.Server.HostKeyPath if it does not exist.
func New(cfg *config.Config, logger *log.Logger) (*Server, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = log.Default()
	}

	s := &Server{cfg: cfg, logger: logger}

	opts := []ssh.Option{
		wish.WithAddress(cfg.Server.Addr),
		wish.WithHostKeyPath(cfg.Server.HostKeyPath),
		wish.WithMiddleware(
			bubbletea.Middleware(s.teaHandler),
			logging.StructuredMiddlewareWithLogger(logger, log.InfoLevel),
		),
	}
	if cfg.Server.IdleTimeout > 0 {
		opts = append(opts, wish.WithIdleTimeout(cfg.Server.IdleTimeout))
	}

	srv, err := wish.NewServer(opts...)
	if err != nil {
		return nil, err
	}
	s.ssh = srv
	return s, nil
}

// Addr returns the configured listen address.
func (s *Server) Addr() string {
	return s.ssh.Addr
}

// Run listens until ctx is cancelled, then shuts down, giving open sessions
// up to the configured shutdown timeout to finish.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.ssh.Addr)
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}

// Serve is Run on an existing listener.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	s.logger.Info("starting SSH server", "addr", ln.Addr().String())

	errc := make(chan error, 1)
	go func() {
		errc <- s.ssh.Serve(ln)
	}()

	select {
	case err := <-errc:
		if errors.Is(err, ssh.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	s.logger.Info("stopping SSH server")
	tctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := s.ssh.Shutdown(tctx); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) teaHandler(sess ssh.Session) (tea.Model, []tea.ProgramOption) {
	logger := s.logger.With("user", sess.User(), "remote-addr", sess.RemoteAddr().String())

	g, err := s.cfg.NewGame(logger)
	if err != nil {
		// The configuration was validated in New, so this only happens if
		// it was changed afterwards.
		logger.Error("cannot start game", "err", err)
		wish.Fatalln(sess, err)
		return nil, nil
	}

	m := ui.New(g, s.cfg.UI, bubbletea.MakeRenderer(sess))
	return m, []tea.ProgramOption{tea.WithAltScreen()}
}
