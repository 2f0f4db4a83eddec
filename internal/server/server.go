package server

import (
	"log"

	"landing-cms-be/internal/bootstrap"
	"landing-cms-be/internal/config"
	"landing-cms-be/internal/pkg/serverutils"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

type Server struct {
	app       *fiber.App
	cfg       *config.Config
	container *bootstrap.Container
}

func New(cfg *config.Config, container *bootstrap.Container) *Server {
	app := fiber.New(fiber.Config{
		BodyLimit: 10 * 1024 * 1024, // 10MB, uploads included
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.App.CorsAllowedOrigins,
		AllowCredentials: true,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowMethods:     "GET, POST, PUT, PATCH, DELETE, OPTIONS",
		ExposeHeaders:    "Content-Length, Content-Type, Authorization",
	}))

	app.Use(otelfiber.Middleware())

	app.Use(serverutils.ErrorHandlerMiddleware(container.Logger))

	app.Static("/uploads", "./"+cfg.App.UploadDir)

	registerRoutes(app, container)

	return &Server{
		app:       app,
		cfg:       cfg,
		container: container,
	}
}

func (s *Server) GetApp() *fiber.App {
	return s.app
}

func (s *Server) Run() error {
	log.Printf("Server is running on http://localhost:%s", s.cfg.App.Port)
	return s.app.Listen(":" + s.cfg.App.Port)
}

// Routes live at the root, not under an /api prefix; renderers hit /landing
// and the admin SPA hits the rest directly.
func registerRoutes(app *fiber.App, c *bootstrap.Container) {
	root := app.Group("")

	c.LandingController.RegisterRoutes(root)
	c.CollectionController.RegisterRoutes(root)

	c.EventController.RegisterRoutes(root)
	c.ProgramController.RegisterRoutes(root)
	c.NewsController.RegisterRoutes(root)
	c.HistoryController.RegisterRoutes(root)
	c.StartupController.RegisterRoutes(root)

	for _, fc := range c.FeaturedControllers {
		fc.RegisterRoutes(root)
	}

	c.AuthController.RegisterRoutes(root)
	c.UserController.RegisterRoutes(root)
	c.UploadController.RegisterRoutes(root)

	c.NotificationHandler.RegisterRoutes(root)
}
