package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/resume-matcher/internal/models"
	"alfredoptarigan/resume-matcher/internal/services"
)

type JobHandler struct {
	matcher services.MatcherService
}

func NewJobHandler(matcher services.MatcherService) *JobHandler {
	return &JobHandler{matcher: matcher}
}

// HandleListJobs handles GET /api/v1/jobs
func (h *JobHandler) HandleListJobs(c *fiber.Ctx) error {
	return c.JSON(models.JobsResponse{Jobs: h.matcher.Catalog()})
}

func HandleHealth(c *fiber.Ctx) error {
	return c.JSON(models.HealthResponse{
		Status: "healthy",
		Time:   time.Now(),
	})
}
