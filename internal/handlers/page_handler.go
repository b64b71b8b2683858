package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"alfredoptarigan/resume-matcher/internal/models"
	"alfredoptarigan/resume-matcher/internal/services"
)

type PageHandler struct {
	analyzer *uploadAnalyzer
	log      *zap.Logger
}

type pageData struct {
	Error    string
	Analysis *analysisView
}

type analysisView struct {
	Preview string
	Results []resultView
}

type resultView struct {
	Rank      int
	JobTitle  string
	Progress  int
	ScoreText string
	LabelText string
	Icon      string
	Class     string
}

func NewPageHandler(
	matcher services.MatcherService,
	storageService services.StorageService,
	log *zap.Logger,
) *PageHandler {
	return &PageHandler{
		analyzer: &uploadAnalyzer{matcher: matcher, storageService: storageService, log: log},
		log:      log,
	}
}

// HandleIndex handles GET /
func (h *PageHandler) HandleIndex(c *fiber.Ctx) error {
	return c.Render("index", pageData{})
}

// HandleAnalyze handles POST /analyze
func (h *PageHandler) HandleAnalyze(c *fiber.Ctx) error {
	file, err := c.FormFile("resume")
	if err != nil {
		return c.Render("index", pageData{})
	}

	analysis, err := h.analyzer.analyze(c.UserContext(), file)
	if err != nil {
		if errors.Is(err, services.ErrInvalidFileType) {
			return c.Status(fiber.StatusBadRequest).Render("index", pageData{
				Error: "Please upload a PDF file.",
			})
		}

		h.log.Error("resume analysis failed", zap.String("file", file.Filename), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).Render("index", pageData{
			Error: "Failed to analyze resume: " + err.Error(),
		})
	}

	return c.Render("index", pageData{Analysis: toAnalysisView(analysis)})
}

func toAnalysisView(analysis *models.Analysis) *analysisView {
	view := &analysisView{
		Preview: analysis.Preview,
		Results: make([]resultView, len(analysis.Results)),
	}

	for i, r := range analysis.Results {
		rv := resultView{
			Rank:      r.Rank,
			JobTitle:  r.JobTitle,
			Progress:  r.Progress,
			ScoreText: services.FormatScore(r.Score),
		}

		switch r.Label {
		case models.LabelStrong:
			rv.LabelText, rv.Icon, rv.Class = "Strong Match", "✅", "success"
		case models.LabelPartial:
			rv.LabelText, rv.Icon, rv.Class = "Partial Match", "⚡", "warning"
		default:
			rv.LabelText, rv.Icon, rv.Class = "Weak Match", "❌", "error"
		}

		view.Results[i] = rv
	}

	return view
}
