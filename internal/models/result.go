package models

import "time"

type MatchResponse struct {
	Filename string       `json:"filename"`
	Preview  string       `json:"preview"`
	Results  []MatchEntry `json:"results"`
}

type MatchEntry struct {
	Rank      int        `json:"rank"`
	JobTitle  string     `json:"job_title"`
	Score     float64    `json:"score"`
	ScoreText string     `json:"score_text"`
	Progress  int        `json:"progress"`
	Label     MatchLabel `json:"label"`
}

type JobsResponse struct {
	Jobs []JobDescription `json:"jobs"`
}

type HealthResponse struct {
	Status string    `json:"status"`
	Time   time.Time `json:"time"`
}

type ErrorResponse struct {
	Error string `json:"error"`
	Code  int    `json:"code"`
}
