package config

import (
	studioHandler "BlogStudio/internal/api/studio/handler"
	studioStore "BlogStudio/internal/api/studio/store"
	"BlogStudio/internal/middleware"
	"BlogStudio/pkg/remote"
	"BlogStudio/pkg/utils"
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type ServerOption func(*Server) error

type Server struct {
	engine       *fiber.App
	log          *logrus.Logger
	middleware   middleware.Middleware
	validator    *validator.Validate
	utils        utils.IUtils
	remoteClient remote.IRemote
	stores       *studioStore.Stores
	handlers     []handler
}

type handler interface {
	Start(srv fiber.Router)
}

func NewServer(options ...ServerOption) (*Server, error) {
	server := &Server{}

	for _, option := range options {
		if err := option(server); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	if server.engine == nil {
		return nil, fmt.Errorf("fiber app is required")
	}
	if server.log == nil {
		return nil, fmt.Errorf("logger is required")
	}
	if server.remoteClient == nil {
		return nil, fmt.Errorf("remote client is required")
	}

	return server, nil
}

func WithFiber(fiberApp *fiber.App) ServerOption {
	return func(s *Server) error {
		s.engine = fiberApp
		return nil
	}
}

func WithLogger(logger *logrus.Logger) ServerOption {
	return func(s *Server) error {
		s.log = logger
		return nil
	}
}

func WithValidator(validator *validator.Validate) ServerOption {
	return func(s *Server) error {
		s.validator = validator
		return nil
	}
}

func WithMiddleware() ServerOption {
	return func(s *Server) error {
		if s.log == nil {
			return fmt.Errorf("logger must be initialized before middleware")
		}
		s.middleware = middleware.New(s.log)
		return nil
	}
}

func WithRemoteClient(client remote.IRemote) ServerOption {
	return func(s *Server) error {
		s.remoteClient = client
		return nil
	}
}

func WithUtils() ServerOption {
	return func(s *Server) error {
		s.utils = utils.New()
		return nil
	}
}

func (s *Server) RegisterHandler() {
	// Studio Domain
	s.stores = studioStore.New(s.log, s.remoteClient, s.utils)
	studioHandlers := studioHandler.New(s.log, s.validator, s.middleware, s.stores, s.utils)

	s.setupHealthCheck()
	s.handlers = append(s.handlers, studioHandlers)
}

func (s *Server) Run() error {
	router := s.engine.Group("/api/v1")
	s.engine.Use(s.middleware.NewRequestIDMiddleware())
	s.engine.Use(middleware.LoggerConfig())

	for _, h := range s.handlers {
		h.Start(router)
	}

	s.warmup()

	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "3000"
	}

	return s.engine.Listen(fmt.Sprintf(":%s", port))
}

// warmup primes the library and taxonomy so the first view already has data.
// Failures land in the status banner and get retried by the next load.
func (s *Server) warmup() {
	if s.stores == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := s.stores.List.Load(ctx, ""); err != nil {
		s.log.Warnf("Initial blog load failed: %v", err)
	}
	if err := s.stores.Taxonomy.Load(ctx); err != nil {
		s.log.Warnf("Initial category load failed: %v", err)
	}
}

func (s *Server) setupHealthCheck() {
	s.engine.Get("/", func(ctx *fiber.Ctx) error {
		return ctx.JSON(fiber.Map{
			"message": "Server is Healthy!",
		})
	})
}
