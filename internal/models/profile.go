package models

// SkillGroup is a named category of skills on the about section
type SkillGroup struct {
	Category string   `json:"category" yaml:"category"`
	Items    []string `json:"items" yaml:"items"`
}

// Education is a single education entry
type Education struct {
	Degree      string `json:"degree" yaml:"degree"`
	Institution string `json:"institution" yaml:"institution"`
	Period      string `json:"period" yaml:"period"`
	Description string `json:"description" yaml:"description"`
}

// Contact holds the contact identifiers rendered on the page.
// They are opaque strings; nothing validates them.
type Contact struct {
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	LinkedInURL string `json:"linkedin_url"`
	GitHubURL   string `json:"github_url"`
	LeetCodeURL string `json:"leetcode_url"`
	KaggleURL   string `json:"kaggle_url"`
}

// Profile is the static content of the page
type Profile struct {
	Name      string       `json:"name"`
	Handle    string       `json:"handle"`
	Summary   string       `json:"summary"`
	About     string       `json:"about"`
	Phrases   []string     `json:"phrases"`
	Skills    []SkillGroup `json:"skills"`
	Education []Education  `json:"education"`
	Contact   Contact      `json:"contact"`
}

// Portfolio is the aggregated page data served by /api/portfolio
type Portfolio struct {
	Profile  Profile        `json:"profile"`
	Projects ProjectsResult `json:"projects"`
	Stats    *CodingStats   `json:"stats"`
}

// ContactMessage is a submitted contact form
type ContactMessage struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}
