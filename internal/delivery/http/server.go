package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/poi-browser/internal/config"
	"github.com/poi-browser/internal/delivery/http/handler"
	"github.com/poi-browser/internal/delivery/http/middleware"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"go.uber.org/zap"
)

// Server is the Fiber-based HTTP server.
type Server struct {
	app    *fiber.App
	config *config.Config
	logger *zap.Logger

	// Handlers
	osmHandler      *handler.OSMHandler
	poiHandler      *handler.POIHandler
	geocodeHandler  *handler.GeocodeHandler
	categoryHandler *handler.CategoryHandler
}

func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	osmHandler *handler.OSMHandler,
	poiHandler *handler.POIHandler,
	geocodeHandler *handler.GeocodeHandler,
	categoryHandler *handler.CategoryHandler,
) *Server {
	app := fiber.New(fiber.Config{
		AppName: "POI Browser",
		// The Overpass query budget dominates the read path.
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorHandler: customErrorHandler(logger),
	})

	s := &Server{
		app:             app,
		config:          cfg,
		logger:          logger,
		osmHandler:      osmHandler,
		poiHandler:      poiHandler,
		geocodeHandler:  geocodeHandler,
		categoryHandler: categoryHandler,
	}

	s.setupMiddlewares()
	s.setupRoutes()

	return s
}

func (s *Server) setupMiddlewares() {
	s.app.Use(middleware.Recovery())
	s.app.Use(middleware.Logger(s.logger))
	s.app.Use(middleware.CORS())
	s.app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
}

func (s *Server) setupRoutes() {
	// Swagger documentation route
	s.app.Get("/swagger/*", fiberSwagger.WrapHandler)

	api := s.app.Group("/api/v1")

	// Health check
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	// Viewport POI routes
	api.Get("/osm", s.osmHandler.SearchViewport)
	api.Get("/pois", s.poiHandler.SearchViewport)

	// Search box geocoding
	api.Get("/geocode", s.geocodeHandler.Search)

	// Category catalog for the picker
	api.Get("/categories", s.categoryHandler.GetCategories)
}

// Start begins serving requests.
func (s *Server) Start() error {
	addr := s.config.GetServerAddr()
	s.logger.Info("Starting HTTP server", zap.String("address", addr))
	return s.app.Listen(addr)
}

// Shutdown stops the server gracefully.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.app.ShutdownWithContext(ctx)
}

func customErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError

		if e, ok := err.(*fiber.Error); ok {
			code = e.Code
		}

		logger.Error("HTTP Error",
			zap.String("path", c.Path()),
			zap.Int("status", code),
			zap.Error(err),
		)

		return c.Status(code).JSON(fiber.Map{
			"error": fiber.Map{
				"code":    "INTERNAL_SERVER_ERROR",
				"message": err.Error(),
			},
		})
	}
}
