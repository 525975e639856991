package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DefaultConfigPath is used when no --config flag is given and the file exists
const DefaultConfigPath = "./portfolio.yaml"

// Loader builds a Config from defaults, a YAML file, a .env file and the
// process environment, in that order of increasing priority.
type Loader struct {
	envFile string
	lookup  func(string) (string, bool)
}

// NewLoader creates a Loader reading ./.env and the process environment
func NewLoader() *Loader {
	return &Loader{
		envFile: ".env",
		lookup:  os.LookupEnv,
	}
}

// Load reads the configuration. An empty path falls back to
// DefaultConfigPath when that file exists.
func (l *Loader) Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path == "" && fileExists(DefaultConfigPath) {
		path = DefaultConfigPath
	}
	if path != "" {
		if err := l.loadFromFile(cfg, path); err != nil {
			return nil, fmt.Errorf("failed to load config from %s: %w", path, err)
		}
	}

	if l.envFile != "" {
		// Variables already present in the environment win over .env
		if err := godotenv.Load(l.envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load %s: %w", l.envFile, err)
		}
	}

	if err := l.applyEnvOverrides(cfg); err != nil {
		return nil, fmt.Errorf("failed to apply environment overrides: %w", err)
	}

	cfg.normalize()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadFromFile overlays the YAML file onto cfg. Keys absent from the file
// keep their current value; lists are replaced wholesale.
func (l *Loader) loadFromFile(cfg *Config, path string) error {
	// #nosec G304 - path comes from the operator
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to parse YAML: %w", err)
	}
	return nil
}

type envOverride struct {
	// names are checked in order; the last one set wins
	names []string
	apply func(string) error
}

// applyEnvOverrides applies the environment in table order. PORT only
// supplies ":<port>" when SERVER_ADDR is unset; SERVER_ADDR always wins.
func (l *Loader) applyEnvOverrides(cfg *Config) error {
	overrides := []envOverride{
		{[]string{"PORT"}, func(v string) error { cfg.ServerAddr = ":" + v; return nil }},
		{[]string{"SERVER_ADDR"}, func(v string) error { cfg.ServerAddr = v; return nil }},
		{[]string{"NEXT_PUBLIC_GITHUB_USERNAME", "GITHUB_USERNAME"}, func(v string) error { cfg.Accounts.GitHub = v; return nil }},
		{[]string{"NEXT_PUBLIC_LEETCODE_USERNAME", "LEETCODE_USERNAME"}, func(v string) error { cfg.Accounts.LeetCode = v; return nil }},
		{[]string{"NEXT_PUBLIC_KAGGLE_USERNAME", "KAGGLE_USERNAME"}, func(v string) error { cfg.Accounts.Kaggle = v; return nil }},
		{[]string{"NEXT_PUBLIC_EMAIL", "CONTACT_EMAIL"}, func(v string) error { cfg.Contact.Email = v; return nil }},
		{[]string{"NEXT_PUBLIC_PHONE", "CONTACT_PHONE"}, func(v string) error { cfg.Contact.Phone = v; return nil }},
		{[]string{"NEXT_PUBLIC_LINKEDIN_URL", "LINKEDIN_URL"}, func(v string) error { cfg.Contact.LinkedInURL = v; return nil }},
		{[]string{"TYPEWRITER_PHRASES"}, func(v string) error { cfg.Typewriter.Phrases = splitList(v); return nil }},
		{[]string{"TYPEWRITER_TYPE_INTERVAL"}, func(v string) error { return parseDuration(v, &cfg.Typewriter.TypeInterval) }},
		{[]string{"TYPEWRITER_DELETE_INTERVAL"}, func(v string) error { return parseDuration(v, &cfg.Typewriter.DeleteInterval) }},
		{[]string{"TYPEWRITER_HOLD_DELAY"}, func(v string) error { return parseDuration(v, &cfg.Typewriter.HoldDelay) }},
		{[]string{"GITHUB_API_URL"}, func(v string) error { cfg.Upstream.GitHubAPI = v; return nil }},
		{[]string{"LEETCODE_API_URL"}, func(v string) error { cfg.Upstream.LeetCodeAPI = v; return nil }},
		{[]string{"UPSTREAM_TIMEOUT"}, func(v string) error { return parseDuration(v, &cfg.Upstream.Timeout) }},
	}

	for _, o := range overrides {
		for _, name := range o.names {
			v, ok := l.lookup(name)
			if !ok || v == "" {
				continue
			}
			if err := o.apply(v); err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
		}
	}
	return nil
}

// splitList splits a "|"-separated list, dropping empty entries.
// Phrases may contain commas, so commas are not separators.
func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, "|") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func parseDuration(v string, dst *time.Duration) error {
	d, err := time.ParseDuration(v)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", v, err)
	}
	*dst = d
	return nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
