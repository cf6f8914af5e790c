package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

//go:generate go run ../../cmd/schema/main.go schema.json

// Config holds the application configuration
type Config struct {
	Server struct {
		Listen      string        `yaml:"listen" json:"listen" jsonschema:"default=:8080,description=HTTP server listen address"`
		Timeout     time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=HTTP server timeout"`
		CORSOrigins []string      `yaml:"cors_origins" json:"cors_origins" jsonschema:"description=Allowed CORS origins"`
		Location    string        `yaml:"location" json:"location" jsonschema:"default=Local,description=Time zone used to interpret feed timings"`
	} `yaml:"server" json:"server" jsonschema:"description=Server configuration"`

	Database struct {
		DSN             string `yaml:"dsn" json:"dsn" jsonschema:"default=file:tubefeed.db?cache=shared&mode=rwc&_txlock=immediate,description=Database connection string"`
		MaxOpenConns    int    `yaml:"max_open_conns" json:"max_open_conns" jsonschema:"default=10,description=Maximum number of open connections"`
		MaxIdleConns    int    `yaml:"max_idle_conns" json:"max_idle_conns" jsonschema:"default=5,description=Maximum number of idle connections"`
		ConnMaxLifetime int    `yaml:"conn_max_lifetime" json:"conn_max_lifetime" jsonschema:"default=3600,description=Connection maximum lifetime in seconds"`
	} `yaml:"database" json:"database" jsonschema:"description=Database configuration"`

	Media MediaConfig `yaml:"media" json:"media" jsonschema:"description=Uploaded images configuration"`
}

// MediaConfig holds settings for uploaded feed item images
type MediaConfig struct {
	Dir     string `yaml:"dir" json:"dir" jsonschema:"default=media,description=Directory for uploaded images"`
	MaxSize int64  `yaml:"max_size" json:"max_size" jsonschema:"default=5242880,description=Maximum image size in bytes"`

	CleanupInterval time.Duration `yaml:"cleanup_interval" json:"cleanup_interval" jsonschema:"default=6h,description=How often unreferenced images are removed"`
	CleanupAge      time.Duration `yaml:"cleanup_age" json:"cleanup_age" jsonschema:"default=1h,description=Minimal age of an unreferenced image before removal"`
}

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // file path comes from CLI flag
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	// expand environment variables
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	return finalize(&cfg)
}

// Default returns configuration with all defaults applied, used when no config file is given
func Default() *Config {
	cfg, err := finalize(&Config{})
	if err != nil {
		panic(fmt.Sprintf("default config is invalid: %v", err))
	}
	return cfg
}

func finalize(cfg *Config) (*Config, error) {
	setDefaults(cfg)

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	// verify against embedded schema
	if err := VerifyAgainstEmbeddedSchema(cfg); err != nil {
		// log warning but don't fail - schema validation is supplementary
		fmt.Printf("warning: schema validation failed: %v\n", err)
	}

	return cfg, nil
}

func setDefaults(cfg *Config) {
	if cfg.Server.Listen == "" {
		cfg.Server.Listen = ":8080"
	}
	if cfg.Server.Timeout == 0 {
		cfg.Server.Timeout = 30 * time.Second
	}
	if cfg.Server.Location == "" {
		cfg.Server.Location = "Local"
	}

	if cfg.Database.DSN == "" {
		cfg.Database.DSN = "file:tubefeed.db?cache=shared&mode=rwc&_txlock=immediate"
	}
	if cfg.Database.MaxOpenConns == 0 {
		cfg.Database.MaxOpenConns = 10
	}
	if cfg.Database.MaxIdleConns == 0 {
		cfg.Database.MaxIdleConns = 5
	}
	if cfg.Database.ConnMaxLifetime == 0 {
		cfg.Database.ConnMaxLifetime = 3600
	}

	if cfg.Media.Dir == "" {
		cfg.Media.Dir = "media"
	}
	if cfg.Media.MaxSize == 0 {
		cfg.Media.MaxSize = 5 * 1024 * 1024
	}
	if cfg.Media.CleanupInterval == 0 {
		cfg.Media.CleanupInterval = 6 * time.Hour
	}
	if cfg.Media.CleanupAge == 0 {
		cfg.Media.CleanupAge = time.Hour
	}
}

// validate checks configuration for correctness
func validate(cfg *Config) error {
	if cfg.Server.Timeout < time.Second {
		return fmt.Errorf("server timeout must be at least 1 second")
	}
	if _, err := time.LoadLocation(cfg.Server.Location); err != nil {
		return fmt.Errorf("server.location %q: %w", cfg.Server.Location, err)
	}
	for _, origin := range cfg.Server.CORSOrigins {
		if origin != "*" && !strings.HasPrefix(origin, "http://") && !strings.HasPrefix(origin, "https://") {
			return fmt.Errorf("server.cors_origins: invalid origin %q", origin)
		}
	}
	if cfg.Database.MaxOpenConns < 1 {
		return fmt.Errorf("database.max_open_conns must be at least 1")
	}
	if cfg.Media.MaxSize < 0 {
		return fmt.Errorf("media.max_size must be non-negative")
	}
	if cfg.Media.CleanupInterval < time.Minute {
		return fmt.Errorf("media.cleanup_interval must be at least 1 minute")
	}
	if cfg.Media.CleanupAge < 0 {
		return fmt.Errorf("media.cleanup_age must be non-negative")
	}
	return nil
}

// GetServerConfig returns server configuration
func (c *Config) GetServerConfig() (listen string, timeout time.Duration) {
	return c.Server.Listen, c.Server.Timeout
}

// GetLocation returns the time zone feed timings are interpreted in
func (c *Config) GetLocation() *time.Location {
	loc, err := time.LoadLocation(c.Server.Location)
	if err != nil {
		return time.Local
	}
	return loc
}

// GetCORSOrigins returns allowed CORS origins
func (c *Config) GetCORSOrigins() []string {
	return c.Server.CORSOrigins
}

// GetMediaConfig returns uploaded images configuration
func (c *Config) GetMediaConfig() MediaConfig {
	return c.Media
}
