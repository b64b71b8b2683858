package handlers

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"alfredoptarigan/resume-matcher/internal/models"
	"alfredoptarigan/resume-matcher/internal/services"
)

type MatchHandler struct {
	analyzer *uploadAnalyzer
	log      *zap.Logger
}

func NewMatchHandler(
	matcher services.MatcherService,
	storageService services.StorageService,
	log *zap.Logger,
) *MatchHandler {
	return &MatchHandler{
		analyzer: &uploadAnalyzer{matcher: matcher, storageService: storageService, log: log},
		log:      log,
	}
}

// HandleMatch handles POST /api/v1/match
func (h *MatchHandler) HandleMatch(c *fiber.Ctx) error {
	file, err := c.FormFile("resume")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "resume file is required",
		})
	}

	analysis, err := h.analyzer.analyze(c.UserContext(), file)
	if err != nil {
		if errors.Is(err, services.ErrInvalidFileType) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Only PDF resumes are supported",
			})
		}

		h.log.Error("resume analysis failed", zap.String("file", file.Filename), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": fmt.Sprintf("failed to analyze resume: %v", err),
		})
	}

	return c.JSON(toMatchResponse(file.Filename, analysis))
}

func toMatchResponse(filename string, analysis *models.Analysis) models.MatchResponse {
	entries := make([]models.MatchEntry, len(analysis.Results))
	for i, r := range analysis.Results {
		entries[i] = models.MatchEntry{
			Rank:      r.Rank,
			JobTitle:  r.JobTitle,
			Score:     r.Score,
			ScoreText: services.FormatScore(r.Score),
			Progress:  r.Progress,
			Label:     r.Label,
		}
	}

	return models.MatchResponse{
		Filename: filename,
		Preview:  analysis.Preview,
		Results:  entries,
	}
}
