package handler

import (
	"context"
	"database/sql"
	"strings"

	"github.com/gofiber/fiber/v2"

	"portfolioapi/internal/database"
	"portfolioapi/internal/model"
	"portfolioapi/internal/service"
)

// ServiceName is reported by the root endpoint.
const ServiceName = "Portfolio Content API"

// readyFunc reports whether the content store can serve requests.
type readyFunc func(ctx context.Context) error

// Root godoc
// @Summary Service banner
// @Tags meta
// @Produce json
// @Success 200 {object} map[string]string
// @Router / [get]
func Root() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"service": ServiceName, "status": "ok"})
	}
}

// LivenessProbe godoc
// @Summary Liveness probe
// @Tags meta
// @Produce json
// @Success 200 {object} map[string]string
// @Router /api/health [get]
func LivenessProbe() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	}
}

// HealthCheck godoc
// @Summary Readiness probe: database reachable and migrated
// @Tags meta
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 503 {object} errorPayload
// @Router /api/ready [get]
func HealthCheck(db *sql.DB) fiber.Handler {
	return readiness(func(ctx context.Context) error { return database.Ready(ctx, db) })
}

func readiness(ready readyFunc) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := ready(c.UserContext()); err != nil {
			return writeError(c, fiber.StatusServiceUnavailable, "STORAGE_UNAVAILABLE", StorageUnavailableDetail)
		}
		return c.JSON(fiber.Map{"status": "ready"})
	}
}

// GetContent godoc
// @Summary Full aggregated site content
// @Tags content
// @Produce json
// @Success 200 {object} model.Document
// @Failure 503 {object} errorPayload
// @Router /api/content [get]
func GetContent(svc service.ContentService, publicBase string) fiber.Handler {
	return documentPart(svc, publicBase, func(d *model.Document) any { return d })
}

// GetStory godoc
// @Summary Story timeline
// @Tags content
// @Produce json
// @Success 200 {array} model.StoryView
// @Failure 503 {object} errorPayload
// @Router /api/story [get]
func GetStory(svc service.ContentService, publicBase string) fiber.Handler {
	return documentPart(svc, publicBase, func(d *model.Document) any { return d.Story })
}

// GetPublications godoc
// @Summary Publications
// @Tags content
// @Produce json
// @Success 200 {array} model.PublicationView
// @Failure 503 {object} errorPayload
// @Router /api/publications [get]
func GetPublications(svc service.ContentService, publicBase string) fiber.Handler {
	return documentPart(svc, publicBase, func(d *model.Document) any { return d.Publications })
}

// GetIdeas godoc
// @Summary Ideas
// @Tags content
// @Produce json
// @Success 200 {array} model.IdeaView
// @Failure 503 {object} errorPayload
// @Router /api/ideas [get]
func GetIdeas(svc service.ContentService, publicBase string) fiber.Handler {
	return documentPart(svc, publicBase, func(d *model.Document) any { return d.Ideas })
}

// GetMedia godoc
// @Summary Media assets grouped by type and section
// @Tags content
// @Produce json
// @Success 200 {object} model.MediaGroups
// @Failure 503 {object} errorPayload
// @Router /api/media [get]
func GetMedia(svc service.ContentService, publicBase string) fiber.Handler {
	return documentPart(svc, publicBase, func(d *model.Document) any { return d.Media })
}

// ListBlogs godoc
// @Summary Blog items, optionally of one category
// @Tags content
// @Produce json
// @Param category query string false "news, articles or insights"
// @Success 200 {array} model.BlogView
// @Failure 400 {object} errorPayload
// @Failure 503 {object} errorPayload
// @Router /api/blogs [get]
func ListBlogs(svc service.ContentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var category model.BlogCategory
		if raw := strings.TrimSpace(c.Query("category")); raw != "" {
			cat, ok := model.ParseBlogCategory(strings.ToLower(raw))
			if !ok {
				return writeError(c, fiber.StatusBadRequest, "INVALID_CATEGORY",
					"Unknown blog category. Use news, articles or insights.")
			}
			category = cat
		}

		items, err := svc.Blogs(c.UserContext(), category)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(items)
	}
}

func documentPart(svc service.ContentService, publicBase string, pick func(*model.Document) any) fiber.Handler {
	return func(c *fiber.Ctx) error {
		doc, err := svc.Build(c.UserContext(), requestBase(c, publicBase))
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(pick(doc))
	}
}

// requestBase is the configured public origin, or the origin the request arrived on.
func requestBase(c *fiber.Ctx, publicBase string) string {
	if publicBase != "" {
		return strings.TrimRight(publicBase, "/")
	}
	return c.BaseURL()
}
