package file

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/fundlens/fundlens/internal/core/domain"
)

// Config is the process configuration.
type Config struct {
	Google GoogleConfig `toml:"google"`
	Mongo  MongoConfig  `toml:"mongo"`
	Ingest IngestConfig `toml:"ingest"`
}

// GoogleConfig locates the ingestion folder and credentials.
type GoogleConfig struct {
	// FolderID is the Drive folder the walk starts from. Required.
	FolderID string `toml:"folder_id"`

	// KeyPath is the service-account key file. Required.
	KeyPath string `toml:"key_path"`
}

// MongoConfig names the target collection.
type MongoConfig struct {
	// URI is the MongoDB connection string. Required.
	URI string `toml:"uri"`

	Database   string `toml:"database"`
	Collection string `toml:"collection"`

	// InsertOnly inserts unconditionally instead of upserting by
	// business key.
	InsertOnly bool `toml:"insert_only"`
}

// IngestConfig tunes the orchestrator.
type IngestConfig struct {
	Concurrency   int `toml:"concurrency"`
	RetryAttempts int `toml:"retry_attempts"`
	RetryBaseMS   int `toml:"retry_base_ms"`

	// PollIntervalMinutes spaces scheduled passes (poll command).
	PollIntervalMinutes int `toml:"poll_interval_minutes"`

	// DataDir holds the local cursor database. Empty means
	// ~/.fundlens/data.
	DataDir string `toml:"data_dir"`
}

// DefaultPath returns ~/.fundlens/config.toml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	return filepath.Join(home, ".fundlens", "config.toml"), nil
}

// Load reads and validates the configuration. An empty path means the
// default location.
func Load(path string) (*Config, error) {
	if path == "" {
		var err error
		path, err = DefaultPath()
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: read config %s: %v", domain.ErrConfiguration, path, err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: parse config %s: %v", domain.ErrConfiguration, path, err)
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Mongo.Database == "" {
		c.Mongo.Database = "mutualfunds"
	}
	if c.Mongo.Collection == "" {
		c.Mongo.Collection = "drive_imports"
	}
	if c.Ingest.Concurrency <= 0 {
		c.Ingest.Concurrency = 3
	}
	if c.Ingest.RetryAttempts <= 0 {
		c.Ingest.RetryAttempts = 3
	}
	if c.Ingest.RetryBaseMS <= 0 {
		c.Ingest.RetryBaseMS = 500
	}
	if c.Ingest.PollIntervalMinutes <= 0 {
		c.Ingest.PollIntervalMinutes = 10
	}
}

// Validate checks the required fields.
func (c *Config) Validate() error {
	if c.Google.FolderID == "" {
		return fmt.Errorf("%w: google.folder_id is required", domain.ErrConfiguration)
	}
	if c.Google.KeyPath == "" {
		return fmt.Errorf("%w: google.key_path is required", domain.ErrConfiguration)
	}
	if _, err := os.Stat(c.Google.KeyPath); err != nil {
		return fmt.Errorf("%w: service account key not found at %s", domain.ErrConfiguration, c.Google.KeyPath)
	}
	if c.Mongo.URI == "" {
		return fmt.Errorf("%w: mongo.uri is required", domain.ErrConfiguration)
	}
	return nil
}

// RetryBase returns the backoff base as a duration.
func (c *Config) RetryBase() time.Duration {
	return time.Duration(c.Ingest.RetryBaseMS) * time.Millisecond
}

// PollInterval returns the poll spacing as a duration.
func (c *Config) PollInterval() time.Duration {
	return time.Duration(c.Ingest.PollIntervalMinutes) * time.Minute
}
