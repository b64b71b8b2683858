package models

// JobDescription is one entry of the job catalog.
type JobDescription struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// JobScore is the similarity percentage of a resume against one job.
type JobScore struct {
	JobTitle string  `json:"job_title"`
	Score    float64 `json:"score"`
}

type MatchLabel string

const (
	LabelStrong  MatchLabel = "strong match"
	LabelPartial MatchLabel = "partial match"
	LabelWeak    MatchLabel = "weak match"
)

// MatchResult is a ranked and labelled job score.
type MatchResult struct {
	Rank     int        `json:"rank"`
	JobTitle string     `json:"job_title"`
	Score    float64    `json:"score"`
	Label    MatchLabel `json:"label"`
	Progress int        `json:"progress"`
}

// Analysis is everything produced for a single uploaded resume.
type Analysis struct {
	ResumeText string        `json:"-"`
	Preview    string        `json:"preview"`
	Results    []MatchResult `json:"results"`
}
