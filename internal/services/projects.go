package services

import (
	"encoding/json"
	"net/http"
	"strings"

	"rudresh.dev/internal/models"
)

const (
	// MaxDisplayedProjects caps the projects grid
	MaxDisplayedProjects = 6

	pipelineRepoName     = "Real-Time-News-Data-Streaming-Pipeline-Using-Snowflake-and-Docker"
	pipelineFallbackName = "Real-Time-News-Data-Streaming-Pipeline"
	pipelineNameFragment = "data-streaming-pipeline"
)

var fallbackProjects = []models.Project{
	{
		ID:          0,
		Name:        pipelineFallbackName,
		Description: "An end-to-end data streaming pipeline for news data utilizing Snowflake, Docker, and Kafka for real-time processing and storage.",
		HTMLURL:     "https://github.com/Rudh1830/Real-Time-News-Data-Streaming-Pipeline-Using-Snowflake-and-Docker",
		Stars:       10,
		Forks:       4,
		Language:    "Python",
		Topics:      []string{"Snowflake", "Docker", "Kafka", "Data Engineering", "Real-time"},
	},
	{
		ID:          1,
		Name:        "Cricket-Player-Run-Prediction",
		Description: "A machine learning model using Logistic Regression to predict cricket player run outcomes based on historical match data. Built with Streamlit.",
		HTMLURL:     "https://github.com/Rudh1830",
		Stars:       5,
		Forks:       2,
		Language:    "Python",
		Topics:      []string{"Machine Learning", "Streamlit", "Scikit-learn"},
	},
	{
		ID:          2,
		Name:        "Smart-Transportation-System",
		Description: "Price comparison and recommendation system for flights, trains, buses, and cab services. Integrated with Flask for web delivery.",
		HTMLURL:     "https://github.com/Rudh1830",
		Stars:       4,
		Forks:       1,
		Language:    "Python",
		Topics:      []string{"Flask", "Data Analysis", "Web Development"},
	},
	{
		ID:          3,
		Name:        "AI-Text-to-Image-Generator",
		Description: "AI-powered text-to-image generation application using Gradio and Generative AI concepts.",
		HTMLURL:     "https://github.com/Rudh1830",
		Stars:       7,
		Forks:       3,
		Language:    "Python",
		Topics:      []string{"Generative AI", "Gradio", "Neural Networks"},
	},
	{
		ID:          4,
		Name:        "Resume-Portfolio-Assistant",
		Description: "Web-based application for generating professional resumes and portfolios with real-time preview.",
		HTMLURL:     "https://github.com/Rudh1830",
		Stars:       6,
		Forks:       2,
		Language:    "JavaScript",
		Topics:      []string{"HTML", "CSS", "Flask"},
	},
}

// FallbackProjects returns a fresh copy of the hardcoded project collection
func FallbackProjects() []models.Project {
	out := make([]models.Project, len(fallbackProjects))
	for i, p := range fallbackProjects {
		p.Topics = append([]string(nil), p.Topics...)
		out[i] = p
	}
	return out
}

// ResolveProjects applies the display policy to one GitHub outcome:
//
//	403                     -> fallback (rate limited)
//	error, non-2xx, bad body -> fallback
//	no pipeline repo found  -> fallback
//	pipeline repo found     -> [repo] + first 5 fallback entries not duplicating it
func ResolveProjects(o Outcome) models.ProjectsResult {
	if o.Err == nil && o.StatusCode == http.StatusForbidden {
		return models.ProjectsResult{Projects: FallbackProjects(), Source: models.SourceRateLimited}
	}
	if !o.OK() {
		return models.ProjectsResult{Projects: FallbackProjects(), Source: models.SourceUpstreamError}
	}

	var repos []models.Project
	if err := json.Unmarshal(o.Body, &repos); err != nil {
		return models.ProjectsResult{Projects: FallbackProjects(), Source: models.SourceUpstreamError}
	}

	featured, ok := findPipelineRepo(repos)
	if !ok {
		return models.ProjectsResult{Projects: FallbackProjects(), Source: models.SourceUnmatched}
	}

	projects := make([]models.Project, 0, MaxDisplayedProjects)
	projects = append(projects, featured)
	for _, p := range FallbackProjects() {
		if len(projects) == MaxDisplayedProjects {
			break
		}
		if p.ID == featured.ID || p.Name == featured.Name || p.Name == pipelineFallbackName {
			continue
		}
		projects = append(projects, p)
	}
	return models.ProjectsResult{Projects: projects, Source: models.SourceLive}
}

func findPipelineRepo(repos []models.Project) (models.Project, bool) {
	for _, r := range repos {
		if isPipelineRepo(r) {
			return r, true
		}
	}
	return models.Project{}, false
}

func isPipelineRepo(r models.Project) bool {
	if r.Name == pipelineRepoName || strings.Contains(strings.ToLower(r.Name), pipelineNameFragment) {
		return true
	}
	desc := strings.ToLower(r.Description)
	return strings.Contains(desc, "snowflake") && strings.Contains(desc, "docker")
}
