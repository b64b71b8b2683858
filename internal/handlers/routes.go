package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/resume-matcher/internal/models"
)

func SetupRoutes(app *fiber.App, page *PageHandler, match *MatchHandler, jobs *JobHandler) {
	app.Get("/", page.HandleIndex)
	app.Post("/analyze", page.HandleAnalyze)

	api := app.Group("/api/v1")
	api.Get("/health", HandleHealth)
	api.Get("/jobs", jobs.HandleListJobs)
	api.Post("/match", match.HandleMatch)
}

// ErrorHandler renders unhandled errors as JSON under /api and as the
// upload page everywhere else.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	if !strings.HasPrefix(c.Path(), "/api/") {
		message := err.Error()
		if code == fiber.StatusRequestEntityTooLarge {
			message = "The resume exceeds the maximum upload size."
		}

		if renderErr := c.Status(code).Render("index", pageData{Error: message}); renderErr == nil {
			return nil
		}
	}

	return c.Status(code).JSON(models.ErrorResponse{
		Error: err.Error(),
		Code:  code,
	})
}
