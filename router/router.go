package router

import (
	"symposium-portal/config"
	"symposium-portal/handlers"
	"symposium-portal/middleware"
	"symposium-portal/upload"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

// The body limit must clear the paper-upload ceiling plus multipart
// framing, otherwise the framework rejects valid files before the
// handler's own size check runs.
const bodyLimit = upload.MaxPaperSize + (2 << 20)

// NewApp builds the portal's Fiber app. When PROXY_HEADER is set (e.g.
// X-Forwarded-For behind a reverse proxy), client addresses are taken
// from that header so the login lockout keys on real clients.
func NewApp() *fiber.App {
	cfg := fiber.Config{BodyLimit: bodyLimit}
	if header, err := config.GetSecret(config.ProxyHeaderKey); err == nil {
		cfg.ProxyHeader = header
	}
	return fiber.New(cfg)
}

func SetupRoutes(app *fiber.App) {
	api := app.Group("/", logger.New())

	// Public catalog
	api.Get("/events", handlers.GetEvents)
	api.Get("/topics", handlers.GetPaperTopics)
	api.Get("/topics/:department", handlers.GetDepartmentTopics)
	api.Get("/departments", handlers.GetDepartments)
	api.Get("/rules", handlers.GetRules)
	api.Get("/rules/:eventName", handlers.GetRule)
	api.Get("/details", handlers.GetEventDetails)

	// Registration intake
	upload := api.Group("/upload")
	upload.Post("/payment", handlers.UploadPayment)
	upload.Post("/paper", handlers.UploadPaper)

	registrations := api.Group("/registrations")
	registrations.Post("/", handlers.CreateRegistration)
	registrations.Post("/validate", handlers.ValidateRegistrationDraft)

	// Admin
	admin := api.Group("/admin")
	admin.Post("/login", handlers.AdminLogin)

	protected := admin.Group("/", middleware.Authorize())
	protected.Get("/registrations", handlers.GetRegistrations)
	protected.Get("/registrations/export", handlers.ExportRegistrations)
	protected.Post("/events", handlers.SaveEvent)
	protected.Delete("/events/:id", handlers.DeleteEvent)
	protected.Post("/rules", handlers.SaveRule)
	protected.Delete("/rules/:eventName", handlers.DeleteRule)
	protected.Post("/departments", handlers.SaveDepartment)
	protected.Post("/topics", handlers.SavePaperTopics)
	protected.Put("/details", handlers.SaveEventDetails)
}
