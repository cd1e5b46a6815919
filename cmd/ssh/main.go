package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"math/rand"
	"net"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	wishlogging "github.com/charmbracelet/wish/logging"

	"github.com/tomz197/asteroids-arcade/internal/audio"
	"github.com/tomz197/asteroids-arcade/internal/config"
	"github.com/tomz197/asteroids-arcade/internal/draw"
	"github.com/tomz197/asteroids-arcade/internal/logging"
	"github.com/tomz197/asteroids-arcade/internal/loop"
)

const sessionDrainTimeout = 10 * time.Second

func main() {
	settings := config.Load()
	logger := logging.New(os.Stderr, settings.LogLevel, "ssh")

	workingDir, workErr := os.Getwd()
	if workErr != nil {
		logger.Warn("failed to get working directory", "err", workErr)
	}
	logger.Info("ssh config", "host", settings.SSHHost, "port", settings.SSHPort,
		"hostKeyPath", settings.HostKeyPath, "workingDir", workingDir)

	// Cancelled on shutdown so every running game returns to its session.
	ctx, cancelGames := context.WithCancel(context.Background())
	defer cancelGames()

	games := &gameHandler{
		ctx:      ctx,
		log:      logger,
		settings: settings,
	}

	opts := []ssh.Option{
		wish.WithAddress(net.JoinHostPort(settings.SSHHost, settings.SSHPort)),
		wish.WithMiddleware(
			games.middleware,
			activeterm.Middleware(),
			wishlogging.MiddlewareWithLogger(logger),
		),
		// Set TCP_NODELAY to reduce latency for game input
		ssh.WrapConn(func(ctx ssh.Context, conn net.Conn) net.Conn {
			if tcpConn, ok := conn.(*net.TCPConn); ok {
				_ = tcpConn.SetNoDelay(true)
			}
			return conn
		}),
	}

	if settings.HostKeyPath != "" {
		opts = append(opts, wish.WithHostKeyPath(settings.HostKeyPath))
	}

	s, err := wish.NewServer(opts...)
	if err != nil {
		logger.Fatal("failed to create server", "err", err)
	}

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	logger.Info("starting ssh server", "addr", net.JoinHostPort(settings.SSHHost, settings.SSHPort))
	go func() {
		if err := s.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			logger.Fatal("server error", "err", err)
		}
	}()

	<-done
	logger.Info("shutting down server")

	cancelGames()
	if !games.wait(sessionDrainTimeout) {
		logger.Warn("sessions still running after drain timeout")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := s.Shutdown(shutdownCtx); err != nil {
		logger.Fatal("shutdown error", "err", err)
	}
}

// gameHandler runs one single-player game per SSH session.
type gameHandler struct {
	ctx      context.Context
	log      *log.Logger
	settings config.Settings

	sessions sync.WaitGroup
}

func (h *gameHandler) middleware(next ssh.Handler) ssh.Handler {
	return func(sess ssh.Session) {
		h.sessions.Add(1)
		defer h.sessions.Done()

		pty, winCh, ok := sess.Pty()
		if !ok {
			fmt.Fprintln(sess, "Error: PTY required. Please connect with: ssh -t user@host")
			return
		}

		sessLog := h.log.With("user", sess.User(), "remote", sess.RemoteAddr().String())
		sessLog.Info("new game session", "terminal", pty.Term,
			"width", pty.Window.Width, "height", pty.Window.Height)

		// Create a terminal size tracker that updates on window changes
		sizeTracker := newSizeTracker(pty.Window.Width, pty.Window.Height)

		// Listen for window size changes in a goroutine
		go func() {
			for win := range winCh {
				sizeTracker.update(win.Width, win.Height)
			}
		}()

		ctx, cancel := context.WithCancel(h.ctx)
		defer cancel()
		stop := context.AfterFunc(sess.Context(), cancel)
		defer stop()

		err := loop.Run(bufio.NewReader(sess), sess, loop.Options{
			TermSizeFunc: sizeTracker.getSize,
			Audio:        audio.Nop{}, // The server has no business making noise
			Logger:       sessLog,
			Rand:         rand.New(rand.NewSource(h.settings.RandSeed(time.Now()))),
			Context:      ctx,
		})
		if err != nil {
			sessLog.Error("game error", "err", err)
		}

		sessLog.Info("session ended")
		next(sess)
	}
}

// wait blocks until every session has returned or timeout elapses. It
// reports whether all sessions finished.
func (h *gameHandler) wait(timeout time.Duration) bool {
	finished := make(chan struct{})
	go func() {
		h.sessions.Wait()
		close(finished)
	}()
	select {
	case <-finished:
		return true
	case <-time.After(timeout):
		return false
	}
}

// sizeTracker tracks terminal size from SSH window change events.
type sizeTracker struct {
	mu     sync.RWMutex
	width  int
	height int
}

func newSizeTracker(width, height int) *sizeTracker {
	return &sizeTracker{width: width, height: height}
}

func (s *sizeTracker) update(width, height int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.width = width
	s.height = height
}

func (s *sizeTracker) getSize() (int, int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.width, s.height, nil
}

// Ensure sizeTracker.getSize satisfies draw.TermSizeFunc
var _ draw.TermSizeFunc = (*sizeTracker)(nil).getSize
