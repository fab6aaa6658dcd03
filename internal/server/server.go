package server

import (
	"log"

	"securebank-assist-be/internal/bootstrap"
	"securebank-assist-be/internal/config"
	"securebank-assist-be/internal/pkg/serverutils"
	ws "securebank-assist-be/internal/websocket"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/websocket/v2"
)

type Server struct {
	app       *fiber.App
	cfg       *config.Config
	container *bootstrap.Container
}

func New(cfg *config.Config, container *bootstrap.Container) *Server {
	// Initialize Fiber App
	app := fiber.New(fiber.Config{
		BodyLimit: 10 * 1024 * 1024, // 10MB
	})

	// Middleware
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.App.CorsAllowedOrigins,
		AllowCredentials: true,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowMethods:     "GET, POST, PUT, PATCH, DELETE, OPTIONS",
		ExposeHeaders:    "Content-Length, Content-Type, Authorization",
	}))

	// OpenTelemetry tracing middleware (traces all HTTP requests)
	app.Use(otelfiber.Middleware())

	app.Use(serverutils.ErrorHandlerMiddleware())

	// Routes
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
	log.Printf("✅ Server is running on http://localhost:%s", s.cfg.App.Port)
	return s.app.Listen(":" + s.cfg.App.Port)
}

func registerRoutes(app *fiber.App, c *bootstrap.Container) {
	api := app.Group("/api")

	c.ChatbotController.RegisterRoutes(api)
	c.SessionController.RegisterRoutes(api)
	c.DocumentController.RegisterRoutes(api)
	c.TranslationController.RegisterRoutes(api)
	c.ServiceRequestController.RegisterRoutes(api)

	api.Get("/v1/health", func(ctx *fiber.Ctx) error {
		return ctx.JSON(fiber.Map{"status": "healthy", "service": "SecureBank Assistant API"})
	})

	registerRelayRoutes(app, c)
}

func registerRelayRoutes(app *fiber.App, c *bootstrap.Container) {
	relay := app.Group("/ws")
	relay.Use(func(ctx *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(ctx) {
			return ctx.Next()
		}
		return fiber.ErrUpgradeRequired
	})
	relay.Get("/chat/:conversationId", websocket.New(func(conn *websocket.Conn) {
		conversationId := conn.Params("conversationId")
		role := ws.ParseRole(conn.Query("role"))
		ws.ServeWs(c.RelayBroker, conn, conversationId, role)
	}))
}
