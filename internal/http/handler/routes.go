package handler

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"

	"textvault/internal/http/middleware"
	"textvault/internal/service"
)

// Services bundles the service layer for route registration.
type Services struct {
	Auth      service.AuthService
	Documents service.DocumentService
	Folders   service.FolderService
	Ingest    service.IngestService
	Export    service.ExportService
	Search    service.SearchService
	Analytics service.AnalyticsService
}

// RegisterRoutes attaches HTTP routes to the provided Fiber app. Handlers
// stay thin: parse, delegate to a service, translate errors.
func RegisterRoutes(app *fiber.App, db *sql.DB, jwtSecret string, svcs Services) {
	// Serve the OpenAPI spec and Swagger UI
	app.Get("/openapi.yaml", func(c *fiber.Ctx) error {
		c.Type("yaml")
		return c.SendFile("openapi.yaml")
	})
	app.Get("/docs/*", swagger.New(swagger.Config{URL: "/openapi.yaml"}))

	// Health endpoints
	app.Get("/health", HealthCheck(db))
	app.Get("/healthz", LivenessProbe())

	// Authentication
	app.Post("/auth/signup", Signup(svcs.Auth))
	app.Post("/auth/login", Login(svcs.Auth))

	// Everything below requires a bearer token.
	auth := middleware.RequireAuth(jwtSecret)

	docs := app.Group("/documents", auth)
	docs.Post("/", UploadDocument(svcs.Ingest))
	docs.Get("/", ListDocuments(svcs.Documents))
	docs.Get("/:id", GetDocument(svcs.Documents))
	docs.Patch("/:id", UpdateDocument(svcs.Documents))
	docs.Delete("/:id", DeleteDocument(svcs.Documents))
	docs.Put("/:id/folders", SetDocumentFolders(svcs.Documents))
	docs.Put("/:id/move", MoveDocument(svcs.Documents))
	docs.Get("/:id/image", DocumentImage(svcs.Ingest))
	docs.Get("/:id/download/:format", DownloadDocument(svcs.Export))

	folders := app.Group("/folders", auth)
	folders.Post("/", CreateFolder(svcs.Folders))
	folders.Get("/", ListFolders(svcs.Folders))
	folders.Delete("/:id", DeleteFolder(svcs.Folders))

	app.Get("/search", auth, SearchDocuments(svcs.Search))

	analytics := app.Group("/analytics", auth)
	analytics.Get("/dashboard", AnalyticsDashboard(svcs.Analytics))
	analytics.Get("/summary", AnalyticsSummary(svcs.Analytics))
}
