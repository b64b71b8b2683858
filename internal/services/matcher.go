package services

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"alfredoptarigan/resume-matcher/internal/logger"
	"alfredoptarigan/resume-matcher/internal/models"
)

const previewLength = 1200

type MatcherService interface {
	Analyze(ctx context.Context, filePath string) (*models.Analysis, error)
	AnalyzeText(ctx context.Context, resumeText string) (*models.Analysis, error)
	Catalog() []models.JobDescription
}

type matcherService struct {
	pdfParser PDFParserService
	scorer    ScorerService
	catalog   []models.JobDescription
	log       *zap.Logger
}

func NewMatcherService(
	pdfParser PDFParserService,
	scorer ScorerService,
	catalog []models.JobDescription,
	log *zap.Logger,
) MatcherService {
	owned := make([]models.JobDescription, len(catalog))
	copy(owned, catalog)

	return &matcherService{
		pdfParser: pdfParser,
		scorer:    scorer,
		catalog:   owned,
		log:       log,
	}
}

// Analyze implements MatcherService.
func (m *matcherService) Analyze(ctx context.Context, filePath string) (*models.Analysis, error) {
	m.log.Debug("extracting resume text", zap.String("path", filePath))

	text, err := m.pdfParser.ExtractText(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to extract resume text: %w", err)
	}
	m.log.Debug("resume text extracted", zap.String("text", logger.Truncate(text, 200)))

	return m.AnalyzeText(ctx, text)
}

// AnalyzeText implements MatcherService.
func (m *matcherService) AnalyzeText(ctx context.Context, resumeText string) (*models.Analysis, error) {
	started := time.Now()

	scores, err := m.scorer.Score(ctx, resumeText, m.catalog)
	if err != nil {
		return nil, fmt.Errorf("failed to score resume: %w", err)
	}

	results := RankScores(scores)

	fields := []zap.Field{
		zap.Int("resume_chars", len([]rune(resumeText))),
		zap.Int("jobs", len(results)),
		zap.Duration("took", time.Since(started)),
	}
	if len(results) > 0 {
		fields = append(fields,
			zap.String("top_job", results[0].JobTitle),
			zap.Float64("top_score", results[0].Score),
		)
	}
	m.log.Info("resume analyzed", fields...)

	return &models.Analysis{
		ResumeText: resumeText,
		Preview:    Preview(resumeText),
		Results:    results,
	}, nil
}

// Catalog implements MatcherService.
func (m *matcherService) Catalog() []models.JobDescription {
	out := make([]models.JobDescription, len(m.catalog))
	copy(out, m.catalog)
	return out
}

// Preview returns the first characters of the resume text followed by an ellipsis.
func Preview(text string) string {
	runes := []rune(text)
	if len(runes) > previewLength {
		runes = runes[:previewLength]
	}
	return string(runes) + "..."
}
