package server

import (
	"errors"
	"fmt"
	"net"
	"syscall"

	"github.com/frogmanjhb/checkinapp/core/loader"
	"github.com/frogmanjhb/checkinapp/core/logger"
	"github.com/frogmanjhb/checkinapp/core/middleware/nocache"
	"github.com/frogmanjhb/checkinapp/core/middleware/rayid"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ErrPortInUse reports that the configured port is already bound by another
// process. Callers detect it with errors.Is.
var ErrPortInUse = errors.New("port already in use")

// Server wraps the Fiber application together with its listener. It owns the
// middleware chain and the feature registry; features contribute routes via
// Register before Bind is called.
type Server struct {
	cfg Config
	log *zap.Logger
	app *fiber.App
	mgr *loader.Manager
	ln  net.Listener
}

// New creates a Server with the standard middleware chain installed:
// ray id tagging, request logging, and cache-busting headers.
func New(cfg Config, log *zap.Logger) *Server {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true, // We log our own startup message
	})

	// RayID must be first to trace everything
	app.Use(rayid.New())

	app.Use(func(c *fiber.Ctx) error {
		l := logger.WithRayID(log, c)
		l.Info("Request started",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.String("ip", c.IP()),
		)
		err := c.Next()
		if err != nil {
			l.Error("Request error", zap.Error(err))
		}
		return err
	})

	// Every response carries the no-cache headers, 404s included.
	app.Use(nocache.New())

	return &Server{
		cfg: cfg,
		log: log,
		app: app,
		mgr: loader.NewManager(),
	}
}

// Register adds a feature to be loaded when the server binds.
func (s *Server) Register(f loader.Feature) {
	s.mgr.Register(f)
}

// App exposes the underlying Fiber application, mainly for in-process
// request testing.
func (s *Server) App() *fiber.App {
	return s.app
}

// Load registers the routes of every enabled feature. Bind calls it, so
// only callers that want routes without a listener (tests, mostly) need to
// call it directly.
func (s *Server) Load() error {
	return s.mgr.LoadAll(s.app)
}

// Bind loads all registered features and claims the listen port. A port
// conflict is wrapped in ErrPortInUse; any other listen failure is returned
// as-is. Bind does not start serving requests.
func (s *Server) Bind() error {
	if err := s.Load(); err != nil {
		return err
	}

	ln, err := net.Listen("tcp", s.cfg.Addr())
	if err != nil {
		if errors.Is(err, syscall.EADDRINUSE) {
			return fmt.Errorf("%w: %v", ErrPortInUse, err)
		}
		return err
	}
	s.ln = ln

	s.log.Info("Listening", zap.String("addr", ln.Addr().String()))
	return nil
}

// Addr returns the bound listener address, or nil before Bind succeeds.
func (s *Server) Addr() net.Addr {
	if s.ln == nil {
		return nil
	}
	return s.ln.Addr()
}

// Serve runs the accept loop on the bound listener. It blocks until the
// server is shut down, returning nil on a clean Shutdown.
func (s *Server) Serve() error {
	if s.ln == nil {
		return errors.New("server is not bound")
	}
	return s.app.Listener(s.ln)
}

// Shutdown gracefully stops the server, waiting for in-flight requests.
func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}
