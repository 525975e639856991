package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"rudresh.dev/internal/models"
)

// ErrInvalidConfig is wrapped by every validation failure
var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds all application configuration. It is built once by the
// Loader and passed explicitly to each service.
type Config struct {
	ServerAddr string           `yaml:"server_addr"`
	Profile    ProfileConfig    `yaml:"profile"`
	Accounts   AccountsConfig   `yaml:"accounts"`
	Contact    ContactConfig    `yaml:"contact"`
	Typewriter TypewriterConfig `yaml:"typewriter"`
	Upstream   UpstreamConfig   `yaml:"upstream"`
}

// ProfileConfig holds the static page content
type ProfileConfig struct {
	Name      string              `yaml:"name"`
	Handle    string              `yaml:"handle"`
	Summary   string              `yaml:"summary"`
	About     string              `yaml:"about"`
	Skills    []models.SkillGroup `yaml:"skills"`
	Education []models.Education  `yaml:"education"`
}

// AccountsConfig holds the usernames used to query public APIs
type AccountsConfig struct {
	GitHub   string `yaml:"github"`
	LeetCode string `yaml:"leetcode"`
	Kaggle   string `yaml:"kaggle"`
}

// ContactConfig holds contact identifiers
type ContactConfig struct {
	Email       string `yaml:"email"`
	Phone       string `yaml:"phone"`
	LinkedInURL string `yaml:"linkedin_url"`
}

// TypewriterConfig holds the hero typewriter phrases and timings
type TypewriterConfig struct {
	Phrases        []string      `yaml:"phrases"`
	TypeInterval   time.Duration `yaml:"type_interval"`
	DeleteInterval time.Duration `yaml:"delete_interval"`
	HoldDelay      time.Duration `yaml:"hold_delay"`
}

// UpstreamConfig holds the third-party API endpoints
type UpstreamConfig struct {
	GitHubAPI   string        `yaml:"github_api"`
	LeetCodeAPI string        `yaml:"leetcode_api"`
	Timeout     time.Duration `yaml:"timeout"`
}

// DefaultConfig returns the configuration used when nothing overrides it
func DefaultConfig() *Config {
	return &Config{
		ServerAddr: ":8080",
		Profile: ProfileConfig{
			Name:   "Rudresh M R",
			Handle: "rudresh.mr",
			Summary: "An Artificial Intelligence and Data Science student at Karpagam College of Engineering, " +
				"passionate about building intelligent systems and extracting insights from complex data. " +
				"Currently exploring the frontiers of Deep Learning and Generative AI.",
			About: "I am an Artificial Intelligence and Data Science student at Karpagam College of Engineering, " +
				"with a deep passion for leveraging machine learning and data analytics to solve real-world problems. " +
				"My focus lies in building intelligent models, performing complex data analysis, and developing " +
				"end-to-end AI solutions that are both efficient and ethical.",
			Skills: []models.SkillGroup{
				{Category: "AI & Data Science", Items: []string{"TensorFlow", "PyTorch", "Scikit-Learn", "Pandas", "NumPy", "OpenCV", "Keras", "NLTK"}},
				{Category: "Languages & Core", Items: []string{"Python", "Java", "C++", "SQL", "JavaScript", "TypeScript", "R"}},
				{Category: "Development Hub", Items: []string{"React", "Next.js", "Node.js", "Git", "Docker", "AWS", "PostgreSQL", "Tableau"}},
			},
			Education: []models.Education{
				{
					Degree:      "B.Tech in Artificial Intelligence and Data Science",
					Institution: "Karpagam College of Engineering",
					Period:      "2023 - 2027",
					Description: "Current CGPA: 8.0. Focused on Machine Learning, Data Analytics, and Advanced Algorithms.",
				},
			},
		},
		Accounts: AccountsConfig{
			GitHub:   "Rudh1830",
			LeetCode: "Rudresh_M_R",
			Kaggle:   "rudreshmr",
		},
		Contact: ContactConfig{
			Email:       "rudreshramasamy@gmail.com",
			Phone:       "9566970199",
			LinkedInURL: "https://linkedin.com",
		},
		Typewriter: TypewriterConfig{
			Phrases: []string{
				"AI Resident & Innovator",
				"Machine Learning Engineer",
				"Data Science Enthusiast",
				"Predictive Analytics Expert",
				"Full Stack AI Developer",
			},
			TypeInterval:   150 * time.Millisecond,
			DeleteInterval: 100 * time.Millisecond,
			HoldDelay:      2 * time.Second,
		},
		Upstream: UpstreamConfig{
			GitHubAPI:   "https://api.github.com",
			LeetCodeAPI: "https://leetcode-stats-api.herokuapp.com",
			Timeout:     10 * time.Second,
		},
	}
}

// normalize cleans up values from any layer before validation
func (c *Config) normalize() {
	c.Upstream.GitHubAPI = strings.TrimRight(strings.TrimSpace(c.Upstream.GitHubAPI), "/")
	c.Upstream.LeetCodeAPI = strings.TrimRight(strings.TrimSpace(c.Upstream.LeetCodeAPI), "/")
}

// Validate checks the configuration for values the services cannot run with
func (c *Config) Validate() error {
	if c.ServerAddr == "" {
		return fmt.Errorf("%w: server_addr is empty", ErrInvalidConfig)
	}
	if len(c.Typewriter.Phrases) == 0 {
		return fmt.Errorf("%w: typewriter.phrases must not be empty", ErrInvalidConfig)
	}
	if c.Typewriter.TypeInterval <= 0 || c.Typewriter.DeleteInterval <= 0 || c.Typewriter.HoldDelay <= 0 {
		return fmt.Errorf("%w: typewriter durations must be positive", ErrInvalidConfig)
	}
	for name, base := range map[string]string{"github_api": c.Upstream.GitHubAPI, "leetcode_api": c.Upstream.LeetCodeAPI} {
		if !strings.HasPrefix(base, "http://") && !strings.HasPrefix(base, "https://") {
			return fmt.Errorf("%w: upstream.%s must be an http(s) URL, got %q", ErrInvalidConfig, name, base)
		}
	}
	if c.Upstream.Timeout < 0 {
		return fmt.Errorf("%w: upstream.timeout must not be negative", ErrInvalidConfig)
	}
	return nil
}

// ProfileView builds the page profile from the configuration
func (c *Config) ProfileView() models.Profile {
	return models.Profile{
		Name:      c.Profile.Name,
		Handle:    c.Profile.Handle,
		Summary:   c.Profile.Summary,
		About:     c.Profile.About,
		Phrases:   append([]string(nil), c.Typewriter.Phrases...),
		Skills:    c.Profile.Skills,
		Education: c.Profile.Education,
		Contact: models.Contact{
			Email:       c.Contact.Email,
			Phone:       c.Contact.Phone,
			LinkedInURL: c.Contact.LinkedInURL,
			GitHubURL:   "https://github.com/" + c.Accounts.GitHub,
			LeetCodeURL: "https://leetcode.com/u/" + c.Accounts.LeetCode,
			KaggleURL:   "https://www.kaggle.com/" + c.Accounts.Kaggle,
		},
	}
}
