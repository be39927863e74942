package model

import "time"

// Config is the complete process configuration. Values are loaded once
// at startup from defaults, the config file, environment variables, and
// CLI flags (in ascending priority).
type Config struct {
	HTTP        HTTPConfig        `yaml:"http" json:"http"`
	Fetch       FetchConfig       `yaml:"fetch" json:"fetch"`
	Cache       CacheConfig       `yaml:"cache" json:"cache"`
	Rater       RaterConfig       `yaml:"rater" json:"rater"`
	Validation  ValidationConfig  `yaml:"validation" json:"validation"`
	Concurrency ConcurrencyConfig `yaml:"concurrency" json:"concurrency"`
	Output      OutputConfig      `yaml:"output" json:"output"`
}

// HTTPConfig controls the outbound HTTP client
type HTTPConfig struct {
	Timeout      time.Duration `yaml:"timeout" json:"timeout"`
	UserAgent    string        `yaml:"user_agent" json:"user_agent"`
	MaxBodyBytes int64         `yaml:"max_body_bytes" json:"max_body_bytes"`
	InsecureTLS  bool          `yaml:"insecure_tls" json:"insecure_tls"`
	HTTPProxy    string        `yaml:"http_proxy" json:"http_proxy"`
	HTTPSProxy   string        `yaml:"https_proxy" json:"https_proxy"`
	NoProxy      string        `yaml:"no_proxy" json:"no_proxy"`
}

// FetchConfig controls page fetching politeness
type FetchConfig struct {
	RespectRobots     bool    `yaml:"respect_robots" json:"respect_robots"`
	RequestsPerSecond float64 `yaml:"requests_per_second" json:"requests_per_second"`
	Burst             int     `yaml:"burst" json:"burst"`
}

// CacheConfig controls fetch-result caching
type CacheConfig struct {
	Enabled bool          `yaml:"enabled" json:"enabled"`
	TTL     time.Duration `yaml:"ttl" json:"ttl"`
	Dir     string        `yaml:"dir" json:"dir"` // empty disables the disk layer
}

// RaterConfig configures the optional soft-signal rater.
// An empty Provider disables it entirely.
type RaterConfig struct {
	Provider   string        `yaml:"provider" json:"provider"` // openai, anthropic, ollama, ""
	Model      string        `yaml:"model" json:"model"`
	APIKey     string        `yaml:"-" json:"-"` // from env only, never persisted
	BaseURL    string        `yaml:"base_url" json:"base_url"`
	Timeout    time.Duration `yaml:"timeout" json:"timeout"`
	MaxTokens  int           `yaml:"max_tokens" json:"max_tokens"`
	HTTPProxy  string        `yaml:"http_proxy" json:"http_proxy"`
	HTTPSProxy string        `yaml:"https_proxy" json:"https_proxy"`
	NoProxy    string        `yaml:"no_proxy" json:"no_proxy"`
}

// ValidationConfig controls outbound-link liveness probing
type ValidationConfig struct {
	Enabled bool          `yaml:"enabled" json:"enabled"`
	Timeout time.Duration `yaml:"timeout" json:"timeout"`
	Workers int           `yaml:"workers" json:"workers"`
}

// ConcurrencyConfig controls batch processing
type ConcurrencyConfig struct {
	BatchWorkers int `yaml:"batch_workers" json:"batch_workers"`
}

// OutputConfig controls report rendering
type OutputConfig struct {
	Verbose       bool `yaml:"verbose" json:"verbose"`
	IncludeFooter bool `yaml:"include_footer" json:"include_footer"`
}

// DefaultConfig returns the built-in defaults
func DefaultConfig() *Config {
	return &Config{
		HTTP: HTTPConfig{
			Timeout:      30 * time.Second,
			UserAgent:    "eeatgrade/1.0 (+https://github.com/eeatgrade/eeatgrade)",
			MaxBodyBytes: 2_000_000,
		},
		Fetch: FetchConfig{
			RespectRobots:     true,
			RequestsPerSecond: 2,
			Burst:             5,
		},
		Cache: CacheConfig{
			Enabled: true,
			TTL:     15 * time.Minute,
		},
		Rater: RaterConfig{
			Provider:  "",
			Timeout:   30 * time.Second,
			MaxTokens: 2000,
		},
		Validation: ValidationConfig{
			Enabled: false,
			Timeout: 10 * time.Second,
			Workers: 20,
		},
		Concurrency: ConcurrencyConfig{
			BatchWorkers: 4,
		},
		Output: OutputConfig{
			IncludeFooter: true,
		},
	}
}
