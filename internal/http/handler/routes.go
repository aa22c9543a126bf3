package handler

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"portfolioapi/internal/http/middleware"
	"portfolioapi/internal/service"
)

// Deps carries everything the public routes need.
type Deps struct {
	DB      *sql.DB
	Content service.ContentService
	Contact service.ContactService
	// PublicBaseURL, when set, replaces the request origin in file URLs.
	PublicBaseURL string
}

// RegisterRoutes attaches the public API routes to the provided Fiber app.
// Everything under /api is served with no-cache headers.
func RegisterRoutes(app *fiber.App, d Deps) {
	app.Get("/", Root())

	api := app.Group("/api", middleware.NoCache())
	api.Get("/health", LivenessProbe())
	api.Get("/ready", HealthCheck(d.DB))
	api.Get("/content", GetContent(d.Content, d.PublicBaseURL))
	api.Get("/story", GetStory(d.Content, d.PublicBaseURL))
	api.Get("/publications", GetPublications(d.Content, d.PublicBaseURL))
	api.Get("/ideas", GetIdeas(d.Content, d.PublicBaseURL))
	api.Get("/media", GetMedia(d.Content, d.PublicBaseURL))
	api.Get("/blogs", ListBlogs(d.Content))
	api.Post("/contact", SubmitContact(d.Contact))
}
