package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Defaults.
const (
	DefaultBaseURL  = "https://api.github.com/"
	DefaultPageSize = 5
	DefaultDebounce = 500 * time.Millisecond
	MaxPageSize     = 100
)

// Config holds application configuration loaded from the environment.
type Config struct {
	GitHubToken  string
	BaseURL      string
	RepoPageSize int
	UserPageSize int
	Debounce     time.Duration
	SlackMode    bool
	DebugMode    bool

	S3Bucket    string
	S3ObjectKey string
	AWSRegion   string
}

// Load reads a .env file if one exists, then the process environment. Values
// already set in the environment win over the file.
func Load() (Config, error) {
	_ = godotenv.Load()
	return FromViper(newViper())
}

func newViper() *viper.Viper {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("GITHUB_API_URL", DefaultBaseURL)
	v.SetDefault("REPO_PAGE_SIZE", DefaultPageSize)
	v.SetDefault("USER_PAGE_SIZE", DefaultPageSize)
	v.SetDefault("SEARCH_DEBOUNCE", DefaultDebounce.String())
	v.SetDefault("SLACK_MODE", "false")
	v.SetDefault("DEBUG", "false")
	return v
}

// FromViper builds a Config from v. The returned Config is validated.
func FromViper(v *viper.Viper) (Config, error) {
	debounce, err := time.ParseDuration(v.GetString("SEARCH_DEBOUNCE"))
	if err != nil {
		return Config{}, &Error{Field: "SEARCH_DEBOUNCE", Message: fmt.Sprintf("not a duration: %v", err)}
	}

	cfg := Config{
		GitHubToken:  v.GetString("GITHUB_TOKEN"),
		BaseURL:      v.GetString("GITHUB_API_URL"),
		RepoPageSize: v.GetInt("REPO_PAGE_SIZE"),
		UserPageSize: v.GetInt("USER_PAGE_SIZE"),
		Debounce:     debounce,
		SlackMode:    truthy(v.GetString("SLACK_MODE")),
		DebugMode:    truthy(v.GetString("DEBUG")),
		S3Bucket:     v.GetString("S3_BUCKET_NAME"),
		S3ObjectKey:  v.GetString("S3_OBJECT_KEY"),
		AWSRegion:    v.GetString("AWS_REGION"),
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func truthy(s string) bool {
	return s != "" && s != "0" && strings.ToLower(s) != "false"
}

// Validate checks the configuration.
func (c Config) Validate() error {
	for _, ps := range []struct {
		field string
		size  int
	}{
		{"REPO_PAGE_SIZE", c.RepoPageSize},
		{"USER_PAGE_SIZE", c.UserPageSize},
	} {
		if ps.size <= 0 || ps.size > MaxPageSize {
			return &Error{Field: ps.field, Message: fmt.Sprintf("must be between 1 and %d, got %d", MaxPageSize, ps.size)}
		}
	}
	if c.Debounce < 0 {
		return &Error{Field: "SEARCH_DEBOUNCE", Message: "must not be negative"}
	}
	u, err := url.Parse(c.BaseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return &Error{Field: "GITHUB_API_URL", Message: fmt.Sprintf("not an absolute http(s) URL: %q", c.BaseURL)}
	}
	return nil
}

// Error is a configuration error for a single key.
type Error struct {
	Field   string
	Message string
}

func (e *Error) Error() string {
	return e.Field + ": " + e.Message
}
