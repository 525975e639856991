package models

// Project represents a GitHub repository shown on the projects grid
type Project struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	HTMLURL     string   `json:"html_url"`
	Homepage    string   `json:"homepage"`
	Stars       int      `json:"stargazers_count"`
	Forks       int      `json:"forks_count"`
	Language    string   `json:"language"`
	Topics      []string `json:"topics"`
	Fork        bool     `json:"fork"`
}

// ProjectSource records which branch of the fallback policy produced a project list
type ProjectSource string

const (
	SourceLive          ProjectSource = "live"
	SourceRateLimited   ProjectSource = "rate_limited"
	SourceUpstreamError ProjectSource = "upstream_error"
	SourceUnmatched     ProjectSource = "unmatched"
)

// ProjectsResult is the displayed project set plus where it came from
type ProjectsResult struct {
	Projects []Project     `json:"projects"`
	Source   ProjectSource `json:"source"`
}
