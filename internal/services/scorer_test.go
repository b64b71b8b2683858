package services

import (
	"context"
	"errors"
	"math"
	"testing"

	"alfredoptarigan/resume-matcher/internal/config"
)

func TestScoreIdenticalTextApproachesHundred(t *testing.T) {
	t.Parallel()

	catalog := config.DefaultJobCatalog()
	scorer := NewScorerService(&bagOfWordsEmbedder{})

	scores, err := scorer.Score(context.Background(), catalog[2].Description, catalog)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if scores[2].JobTitle != catalog[2].Title {
		t.Fatalf("expected catalog order, got %q at index 2", scores[2].JobTitle)
	}
	if math.Abs(scores[2].Score-100) > 1e-4 {
		t.Fatalf("expected ~100 for identical text, got %v", scores[2].Score)
	}
}

func TestScoreRangeAndDeterminism(t *testing.T) {
	t.Parallel()

	catalog := config.DefaultJobCatalog()
	scorer := NewScorerService(&bagOfWordsEmbedder{})
	resume := "Python developer building APIs on cloud platforms, with Docker and Kubernetes deployments and SQL reports."

	first, err := scorer.Score(context.Background(), resume, catalog)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := scorer.Score(context.Background(), resume, catalog)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(first) != len(catalog) {
		t.Fatalf("expected %d scores, got %d", len(catalog), len(first))
	}
	for i := range first {
		if first[i].Score < 0 || first[i].Score > 100 {
			t.Fatalf("score out of range for %q: %v", first[i].JobTitle, first[i].Score)
		}
		if first[i] != second[i] {
			t.Fatalf("non-deterministic score for %q: %v vs %v", first[i].JobTitle, first[i].Score, second[i].Score)
		}
	}
}

func TestScoreEncodesEveryDescriptionOnEachCall(t *testing.T) {
	t.Parallel()

	catalog := config.DefaultJobCatalog()
	embedder := &bagOfWordsEmbedder{}
	scorer := NewScorerService(embedder)

	for i := 0; i < 2; i++ {
		if _, err := scorer.Score(context.Background(), "golang", catalog); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	if got, want := embedder.callCount(), 2*(1+len(catalog)); got != want {
		t.Fatalf("expected %d embedding calls, got %d", want, got)
	}
}

func TestScoreEmptyText(t *testing.T) {
	t.Parallel()

	catalog := config.DefaultJobCatalog()
	embedder := &bagOfWordsEmbedder{}

	scores, err := NewScorerService(embedder).Score(context.Background(), "  \n ", catalog)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(scores) != len(catalog) {
		t.Fatalf("expected %d scores, got %d", len(catalog), len(scores))
	}
	for _, s := range scores {
		if s.Score != 0 {
			t.Fatalf("expected zero score for %q, got %v", s.JobTitle, s.Score)
		}
	}
	if embedder.callCount() != 0 {
		t.Fatalf("expected no embedding calls, got %d", embedder.callCount())
	}
}

func TestScoreEmbeddingError(t *testing.T) {
	t.Parallel()

	catalog := config.DefaultJobCatalog()
	boom := errors.New("quota exceeded")

	tests := []struct {
		name   string
		failOn string
	}{
		{name: "resume embedding", failOn: "resume text"},
		{name: "job embedding", failOn: catalog[3].Description},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			embedder := &bagOfWordsEmbedder{failOn: tt.failOn, err: boom}
			_, err := NewScorerService(embedder).Score(context.Background(), "resume text", catalog)
			if !errors.Is(err, boom) {
				t.Fatalf("expected wrapped embedding error, got %v", err)
			}
		})
	}
}
