package config

import "alfredoptarigan/resume-matcher/internal/models"

// DefaultJobCatalog returns the job descriptions every resume is compared against.
// A fresh slice is built on each call so callers cannot mutate a shared catalog.
func DefaultJobCatalog() []models.JobDescription {
	return []models.JobDescription{
		{
			Title:       "Software Engineer",
			Description: "Develop and maintain software applications using Python, JavaScript, APIs, and cloud platforms.",
		},
		{
			Title:       "Data Scientist",
			Description: "Analyze large datasets, build ML models, and deploy NLP-based AI systems.",
		},
		{
			Title:       "DevOps Engineer",
			Description: "Manage CI/CD pipelines, containerization (Docker, Kubernetes), and cloud deployments.",
		},
		{
			Title:       "AI Researcher",
			Description: "Research deep learning models, computer vision, and reinforcement learning algorithms.",
		},
		{
			Title:       "Business Analyst",
			Description: "Gather requirements, analyze business processes, and generate reports with SQL/Excel.",
		},
	}
}
