package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"go.uber.org/zap"

	"alfredoptarigan/resume-matcher/internal/config"
	"alfredoptarigan/resume-matcher/internal/models"
)

func newTestMatcher(parser PDFParserService, catalog []models.JobDescription) MatcherService {
	return NewMatcherService(parser, NewScorerService(&bagOfWordsEmbedder{}), catalog, zap.NewNop())
}

func TestAnalyzeRanksAllJobs(t *testing.T) {
	t.Parallel()

	catalog := config.DefaultJobCatalog()
	resume := "Research deep learning models for computer vision and reinforcement learning algorithms."
	matcher := newTestMatcher(&fakePDFParser{text: resume}, catalog)

	analysis, err := matcher.Analyze(context.Background(), "resume.pdf")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(analysis.Results) != len(catalog) {
		t.Fatalf("expected %d results, got %d", len(catalog), len(analysis.Results))
	}
	if analysis.Results[0].JobTitle != "AI Researcher" {
		t.Fatalf("expected AI Researcher first, got %q", analysis.Results[0].JobTitle)
	}
	if analysis.Results[0].Label != models.LabelStrong {
		t.Fatalf("expected strong match, got %q", analysis.Results[0].Label)
	}
	for i := 1; i < len(analysis.Results); i++ {
		if analysis.Results[i].Score > analysis.Results[i-1].Score {
			t.Fatalf("results not sorted at %d: %+v", i, analysis.Results)
		}
	}
	if analysis.ResumeText != resume {
		t.Fatalf("unexpected resume text %q", analysis.ResumeText)
	}
	if analysis.Preview != resume+"..." {
		t.Fatalf("unexpected preview %q", analysis.Preview)
	}
}

func TestAnalyzeParserError(t *testing.T) {
	t.Parallel()

	boom := errors.New("corrupt xref")
	matcher := newTestMatcher(&fakePDFParser{err: boom}, config.DefaultJobCatalog())

	if _, err := matcher.Analyze(context.Background(), "resume.pdf"); !errors.Is(err, boom) {
		t.Fatalf("expected parser error, got %v", err)
	}
}

func TestAnalyzeTextUsesInjectedCatalog(t *testing.T) {
	t.Parallel()

	catalog := []models.JobDescription{
		{Title: "Chef", Description: "cook pasta and bake bread"},
		{Title: "Pilot", Description: "fly commercial aircraft"},
	}
	matcher := newTestMatcher(&fakePDFParser{}, catalog)

	analysis, err := matcher.AnalyzeText(context.Background(), "I bake bread")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(analysis.Results) != 2 || analysis.Results[0].JobTitle != "Chef" {
		t.Fatalf("unexpected results %+v", analysis.Results)
	}

	catalog[0].Title = "changed"
	if matcher.Catalog()[0].Title != "Chef" {
		t.Fatal("matcher catalog should not alias the caller's slice")
	}
}

func TestPreview(t *testing.T) {
	t.Parallel()

	if got := Preview(""); got != "..." {
		t.Fatalf("unexpected preview for empty text %q", got)
	}

	long := strings.Repeat("é", previewLength+50)
	got := Preview(long)
	if !strings.HasSuffix(got, "...") {
		t.Fatalf("preview should end with ellipsis")
	}
	if n := len([]rune(strings.TrimSuffix(got, "..."))); n != previewLength {
		t.Fatalf("expected %d runes, got %d", previewLength, n)
	}
}
