package services

import (
	"fmt"
	"sort"

	"alfredoptarigan/resume-matcher/internal/models"
)

const (
	strongMatchThreshold  = 70.0
	partialMatchThreshold = 50.0
)

// RankScores orders scores from best to worst. Equal scores keep their input order.
func RankScores(scores []models.JobScore) []models.MatchResult {
	sorted := make([]models.JobScore, len(scores))
	copy(sorted, scores)

	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Score > sorted[j].Score
	})

	results := make([]models.MatchResult, len(sorted))
	for i, s := range sorted {
		results[i] = models.MatchResult{
			Rank:     i + 1,
			JobTitle: s.JobTitle,
			Score:    s.Score,
			Label:    ClassifyScore(s.Score),
			Progress: ProgressValue(s.Score),
		}
	}

	return results
}

func ClassifyScore(score float64) models.MatchLabel {
	switch {
	case score > strongMatchThreshold:
		return models.LabelStrong
	case score > partialMatchThreshold:
		return models.LabelPartial
	default:
		return models.LabelWeak
	}
}

// ProgressValue is the integer part of score, capped to [0, 100].
func ProgressValue(score float64) int {
	progress := int(score)
	if progress < 0 {
		return 0
	}
	if progress > 100 {
		return 100
	}
	return progress
}

func FormatScore(score float64) string {
	return fmt.Sprintf("Compatibility Score: %.2f%%", score)
}
