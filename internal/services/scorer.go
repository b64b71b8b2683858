package services

import (
	"context"
	"fmt"
	"strings"

	"alfredoptarigan/resume-matcher/internal/models"
)

type ScorerService interface {
	Score(ctx context.Context, resumeText string, catalog []models.JobDescription) ([]models.JobScore, error)
}

type scorerService struct {
	embedder Embedder
}

func NewScorerService(embedder Embedder) ScorerService {
	return &scorerService{embedder: embedder}
}

// Score implements ScorerService. Every description is embedded on each
// call; results follow catalog order.
func (s *scorerService) Score(ctx context.Context, resumeText string, catalog []models.JobDescription) ([]models.JobScore, error) {
	var resumeEmbedding []float32
	if strings.TrimSpace(resumeText) != "" {
		embedding, err := s.embedder.Embed(ctx, resumeText)
		if err != nil {
			return nil, fmt.Errorf("failed to embed resume: %w", err)
		}
		resumeEmbedding = embedding
	}

	scores := make([]models.JobScore, 0, len(catalog))
	for _, job := range catalog {
		score := 0.0

		if resumeEmbedding != nil {
			jobEmbedding, err := s.embedder.Embed(ctx, job.Description)
			if err != nil {
				return nil, fmt.Errorf("failed to embed job %q: %w", job.Title, err)
			}
			score = SimilarityPercentage(CosineSimilarity(resumeEmbedding, jobEmbedding))
		}

		scores = append(scores, models.JobScore{
			JobTitle: job.Title,
			Score:    score,
		})
	}

	return scores, nil
}
