package handler

import (
	"context"
	"database/sql"
	"time"

	"github.com/gofiber/fiber/v2"

	"unidocs/internal/service"
)

// HealthCheck reports dependency health: the generation index must be
// reachable for the service to be considered healthy.
func HealthCheck(db *sql.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
		defer cancel()
		if err := db.PingContext(ctx); err != nil {
			return writeError(c, fiber.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", "dependency unavailable")
		}
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "healthy"})
	}
}

// LivenessProbe is a plain liveness check.
func LivenessProbe() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	}
}

// RegisterRoutes attaches HTTP routes to the provided Fiber app. Handlers are
// thin adapters; all business logic lives in the service.
func RegisterRoutes(app *fiber.App, db *sql.DB, docSvc service.DocumentService) {
	app.Get("/health", HealthCheck(db))
	app.Get("/healthz", LivenessProbe())

	app.Post("/generate-document", GenerateDocument(docSvc))
	app.Post("/validate-request", ValidateRequest(docSvc))

	app.Get("/documents", ListDocuments(docSvc))
	app.Get("/documents/:filename", GetDocument(docSvc))
	app.Delete("/documents/:filename", DeleteDocument(docSvc))
	app.Get("/download/:filename", DownloadDocument(docSvc))

	app.Get("/system-info", SystemInfo())
	app.Get("/sample-data", SampleData())
}
