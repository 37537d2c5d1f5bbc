package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Catalog sources.
const (
	SourceYAML     = "yaml"
	SourcePostgres = "postgres"
	SourceSQLite   = "sqlite"
)

// Hunt holds all configuration for the treasurehunt tool.
type Hunt struct {
	LogLevel string `yaml:"log_level"` // debug|info|warn|error

	// Where the treasure catalog is read from
	Catalog CatalogConfig `yaml:"catalog"`

	// Backends
	Database DatabaseConfig `yaml:"database"`
	SQLite   SQLiteConfig   `yaml:"sqlite"`
}

// CatalogConfig selects the treasure catalog source.
type CatalogConfig struct {
	Source string `yaml:"source"` // yaml|postgres|sqlite
	Path   string `yaml:"path"`   // catalog file, used by the yaml source
}

// DatabaseConfig holds PostgreSQL connection parameters.
type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	DBName   string `yaml:"dbname"`
	SSLMode  string `yaml:"sslmode"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

// SQLiteConfig holds the embedded catalog database location.
type SQLiteConfig struct {
	Path string `yaml:"path"`
}

// Default returns Hunt config with sensible defaults.
func Default() Hunt {
	return Hunt{
		LogLevel: "info",
		Catalog: CatalogConfig{
			Source: SourceYAML,
			Path:   "data/treasures.yaml",
		},
		Database: DatabaseConfig{
			Host:     "127.0.0.1",
			Port:     5432,
			User:     "treasurehunt",
			Password: "treasurehunt",
			DBName:   "treasurehunt",
			SSLMode:  "disable",
		},
		SQLite: SQLiteConfig{
			Path: "data/treasures.db",
		},
	}
}

// Validate checks option values that have no usable fallback.
func (h Hunt) Validate() error {
	switch h.Catalog.Source {
	case SourceYAML:
		if h.Catalog.Path == "" {
			return fmt.Errorf("catalog.path is required for source %q", SourceYAML)
		}
	case SourcePostgres:
	case SourceSQLite:
		if h.SQLite.Path == "" {
			return fmt.Errorf("sqlite.path is required for source %q", SourceSQLite)
		}
	default:
		return fmt.Errorf("unknown catalog source %q", h.Catalog.Source)
	}
	return nil
}

// Load loads config from a YAML file.
// If the file doesn't exist, returns defaults.
func Load(path string) (Hunt, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("validating config %s: %w", path, err)
	}

	return cfg, nil
}
