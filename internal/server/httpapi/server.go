// Package httpapi exposes the signup/login workflow over HTTP and maps the
// service's error kinds to status codes. It owns no business rules: every
// outcome it reports is a tagged result produced by the users service.
package httpapi

import (
	"context"

	"github.com/dmaslov/passport/internal/logging"
	"github.com/dmaslov/passport/internal/server/users"
	"github.com/gofiber/fiber/v2"
)

type Server struct {
	app       *fiber.App
	address   string
	users     *users.Service
	logger    logging.Logger
	jwtSecret []byte
}

func NewServer(address string, l logging.Logger, us *users.Service, secretKey string) *Server {
	s := &Server{
		address:   address,
		logger:    l.With("module", "httpapi"),
		users:     us,
		jwtSecret: []byte(secretKey),
	}

	app := fiber.New(fiber.Config{DisableStartupMessage: true})

	auth := app.Group("/auth")
	auth.Post("/signup", s.Signup)
	auth.Post("/login", s.Login)
	auth.Get("/me", s.requireAuth, s.Me)

	s.app = app
	return s
}

// App exposes the underlying fiber app for tests.
func (s *Server) App() *fiber.App {
	return s.app
}

func (s *Server) Run(ctx context.Context) error {

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		_ = s.app.Shutdown()
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	return s.app.Listen(s.address)
}
