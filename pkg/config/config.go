package config

import (
	"fmt"
	"os"
	"time"

	log "github.com/go-pkgz/lgr"
	"gopkg.in/yaml.v3"
)

//go:generate go run ../../cmd/schema -o schema.json

// classifier backends
const (
	BackendNone     = "none"
	BackendLLM      = "llm"
	BackendZeroShot = "zeroshot"
)

// Config holds the application configuration
type Config struct {
	Server     ServerConfig     `yaml:"server" json:"server" jsonschema:"description=Server configuration"`
	Database   DatabaseConfig   `yaml:"database" json:"database" jsonschema:"description=Database configuration"`
	Source     SourceConfig     `yaml:"source" json:"source" jsonschema:"description=Hacker News API configuration"`
	Sync       SyncConfig       `yaml:"sync" json:"sync" jsonschema:"description=Synchronization configuration"`
	Classifier ClassifierConfig `yaml:"classifier" json:"classifier" jsonschema:"description=Fallback classification configuration"`
	LLM        LLMConfig        `yaml:"llm" json:"llm" jsonschema:"description=OpenAI-compatible zero-shot backend"`
	ZeroShot   ZeroShotConfig   `yaml:"zeroshot" json:"zeroshot" jsonschema:"description=Inference API zero-shot backend"`
}

// ServerConfig holds http server settings
type ServerConfig struct {
	Listen  string        `yaml:"listen" json:"listen" jsonschema:"default=:8080,description=HTTP server listen address"`
	Timeout time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=HTTP server timeout"`
	BaseURL string        `yaml:"base_url" json:"base_url" jsonschema:"default=http://localhost:8080,description=Base URL for RSS feeds"`
}

// DatabaseConfig holds sqlite settings
type DatabaseConfig struct {
	DSN             string `yaml:"dsn" json:"dsn" jsonschema:"default=file:hackynews.db?cache=shared&mode=rwc,description=Database connection string"`
	MaxOpenConns    int    `yaml:"max_open_conns" json:"max_open_conns" jsonschema:"default=10,description=Maximum number of open connections"`
	MaxIdleConns    int    `yaml:"max_idle_conns" json:"max_idle_conns" jsonschema:"default=5,description=Maximum number of idle connections"`
	ConnMaxLifetime int    `yaml:"conn_max_lifetime" json:"conn_max_lifetime" jsonschema:"default=3600,description=Connection maximum lifetime in seconds"`
}

// SourceConfig holds news source api settings
type SourceConfig struct {
	BaseURL   string        `yaml:"base_url" json:"base_url" jsonschema:"default=https://hacker-news.firebaseio.com,description=News API base URL"`
	Timeout   time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=10s,description=Per-request timeout"`
	UserAgent string        `yaml:"user_agent" json:"user_agent" jsonschema:"default=hackynews/1.0,description=User agent for API requests"`
	Retries   int           `yaml:"retries" json:"retries" jsonschema:"default=3,minimum=1,description=Attempts per request on transport or server errors"`
}

// SyncConfig holds periodic and on-demand sync settings
type SyncConfig struct {
	Enabled       bool          `yaml:"enabled" json:"enabled" jsonschema:"default=true,description=Run periodic sync"`
	Schedule      string        `yaml:"schedule" json:"schedule" jsonschema:"default=@every 15m,description=Cron expression for periodic sync"`
	Limit         int           `yaml:"limit" json:"limit" jsonschema:"default=100,minimum=1,description=Items per periodic sync"`
	UpdateLimit   int           `yaml:"update_limit" json:"update_limit" jsonschema:"default=50,minimum=1,description=Default items per on-demand sync"`
	ThrottleEvery int           `yaml:"throttle_every" json:"throttle_every" jsonschema:"default=10,description=Pause after this many processed items"`
	ThrottleDelay time.Duration `yaml:"throttle_delay" json:"throttle_delay" jsonschema:"default=500ms,description=Pause duration"`
}

// ClassifierConfig selects the fallback backend used when no rule matches
type ClassifierConfig struct {
	Backend string        `yaml:"backend" json:"backend" jsonschema:"default=none,enum=none,enum=llm,enum=zeroshot,description=Fallback backend"`
	Timeout time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=10s,description=Fallback inference timeout"`
}

// LLMConfig holds OpenAI-compatible chat backend settings
type LLMConfig struct {
	Endpoint     string        `yaml:"endpoint" json:"endpoint" jsonschema:"description=OpenAI-compatible API endpoint"`
	APIKey       string        `yaml:"api_key" json:"api_key" jsonschema:"description=API key (can use environment variable)"`
	Model        string        `yaml:"model" json:"model" jsonschema:"description=Model name (e.g. gpt-4o-mini or llama3)"`
	Temperature  float64       `yaml:"temperature" json:"temperature" jsonschema:"default=0,description=Temperature for response generation"`
	MaxTokens    int           `yaml:"max_tokens" json:"max_tokens" jsonschema:"default=100,description=Maximum tokens in response"`
	Timeout      time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=Request timeout"`
	SystemPrompt string        `yaml:"system_prompt" json:"system_prompt" jsonschema:"description=System prompt for the LLM (optional)"`
	UseJSONMode  bool          `yaml:"use_json_mode" json:"use_json_mode" jsonschema:"default=false,description=Use JSON response format (not all models support this)"`
}

// ZeroShotConfig holds inference API settings, e.g. a hosted bart-large-mnli pipeline
type ZeroShotConfig struct {
	Endpoint string        `yaml:"endpoint" json:"endpoint" jsonschema:"description=Zero-shot classification endpoint URL"`
	Token    string        `yaml:"token" json:"token" jsonschema:"description=Bearer token (can use environment variable)"`
	Timeout  time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=Request timeout"`
	Retries  int           `yaml:"retries" json:"retries" jsonschema:"default=2,minimum=1,description=Attempts per request"`
}

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // file path comes from CLI flag
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	// expand environment variables
	expanded := os.ExpandEnv(string(data))

	cfg := Config{Sync: SyncConfig{Enabled: true}}
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	cfg.setDefaults()

	// validate configuration
	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	// verify against embedded schema
	if err := VerifyAgainstEmbeddedSchema(&cfg); err != nil {
		// log warning but don't fail - schema validation is supplementary
		log.Printf("[WARN] schema validation failed: %v", err)
	}

	return &cfg, nil
}

// Default returns configuration with all defaults applied, used when no config file is given
func Default() *Config {
	cfg := Config{Sync: SyncConfig{Enabled: true}}
	cfg.setDefaults()
	return &cfg
}

func (c *Config) setDefaults() {
	// server
	if c.Server.Listen == "" {
		c.Server.Listen = ":8080"
	}
	if c.Server.Timeout == 0 {
		c.Server.Timeout = 30 * time.Second
	}
	if c.Server.BaseURL == "" {
		c.Server.BaseURL = "http://localhost:8080"
	}

	// database
	if c.Database.DSN == "" {
		c.Database.DSN = "file:hackynews.db?cache=shared&mode=rwc&_txlock=immediate&_pragma=busy_timeout(5000)"
	}
	if c.Database.MaxOpenConns == 0 {
		c.Database.MaxOpenConns = 10
	}
	if c.Database.MaxIdleConns == 0 {
		c.Database.MaxIdleConns = 5
	}
	if c.Database.ConnMaxLifetime == 0 {
		c.Database.ConnMaxLifetime = 3600
	}

	// source
	if c.Source.BaseURL == "" {
		c.Source.BaseURL = "https://hacker-news.firebaseio.com"
	}
	if c.Source.Timeout == 0 {
		c.Source.Timeout = 10 * time.Second
	}
	if c.Source.UserAgent == "" {
		c.Source.UserAgent = "hackynews/1.0"
	}
	if c.Source.Retries == 0 {
		c.Source.Retries = 3
	}

	// sync
	if c.Sync.Schedule == "" {
		c.Sync.Schedule = "@every 15m"
	}
	if c.Sync.Limit == 0 {
		c.Sync.Limit = 100
	}
	if c.Sync.UpdateLimit == 0 {
		c.Sync.UpdateLimit = 50
	}
	if c.Sync.ThrottleEvery == 0 {
		c.Sync.ThrottleEvery = 10
	}
	if c.Sync.ThrottleDelay == 0 {
		c.Sync.ThrottleDelay = 500 * time.Millisecond
	}

	// classifier
	if c.Classifier.Backend == "" {
		c.Classifier.Backend = BackendNone
	}
	if c.Classifier.Timeout == 0 {
		c.Classifier.Timeout = 10 * time.Second
	}

	// llm
	if c.LLM.MaxTokens == 0 {
		c.LLM.MaxTokens = 100
	}
	if c.LLM.Timeout == 0 {
		c.LLM.Timeout = 30 * time.Second
	}

	// zero-shot
	if c.ZeroShot.Timeout == 0 {
		c.ZeroShot.Timeout = 30 * time.Second
	}
	if c.ZeroShot.Retries == 0 {
		c.ZeroShot.Retries = 2
	}
}

// validate checks configuration for correctness
func validate(cfg *Config) error {
	switch cfg.Classifier.Backend {
	case BackendNone:
	case BackendLLM:
		if cfg.LLM.Endpoint == "" {
			return fmt.Errorf("llm.endpoint is required for llm backend")
		}
		if cfg.LLM.Model == "" {
			return fmt.Errorf("llm.model is required for llm backend")
		}
	case BackendZeroShot:
		if cfg.ZeroShot.Endpoint == "" {
			return fmt.Errorf("zeroshot.endpoint is required for zeroshot backend")
		}
	default:
		return fmt.Errorf("unknown classifier.backend %q", cfg.Classifier.Backend)
	}

	if cfg.LLM.Temperature < 0 || cfg.LLM.Temperature > 2 {
		return fmt.Errorf("llm.temperature must be between 0 and 2")
	}
	if cfg.Classifier.Timeout < 100*time.Millisecond {
		return fmt.Errorf("classifier.timeout must be at least 100ms")
	}

	// validate sync config
	if cfg.Sync.Limit < 1 {
		return fmt.Errorf("sync.limit must be at least 1")
	}
	if cfg.Sync.UpdateLimit < 1 {
		return fmt.Errorf("sync.update_limit must be at least 1")
	}
	if cfg.Sync.ThrottleEvery < 0 {
		return fmt.Errorf("sync.throttle_every must be non-negative")
	}
	if cfg.Sync.ThrottleDelay < 0 {
		return fmt.Errorf("sync.throttle_delay must be non-negative")
	}

	// validate server config
	if cfg.Server.Timeout < time.Second {
		return fmt.Errorf("server timeout must be at least 1 second")
	}

	return nil
}

// GetServerConfig returns server configuration
func (c *Config) GetServerConfig() (listen string, timeout time.Duration) {
	return c.Server.Listen, c.Server.Timeout
}

// GetFullConfig returns the whole configuration
func (c *Config) GetFullConfig() *Config {
	return c
}
