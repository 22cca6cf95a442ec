package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/pokefetch/pokefetch/internal/database"
)

// DefaultConfigFile is the default configuration file name.
const DefaultConfigFile = ".pokefetch"

// File is the on-disk YAML shape of the configuration.
//
// Timeout is a Go duration string ("30s", "2m") rather than a number so the
// file stays self-describing.
type File struct {
	CatalogURL string                  `yaml:"catalog_url,omitempty"`
	BaseOrigin string                  `yaml:"base_origin,omitempty"`
	Timeout    string                  `yaml:"timeout,omitempty"`
	Workers    int                     `yaml:"workers,omitempty"`
	Database   database.ConnectionSpec `yaml:"database,omitempty"`
}

// LoadConfigFile loads a configuration file from path.
// A missing file yields ErrConfigNotFound so callers can distinguish "no
// config" from a malformed one.
func LoadConfigFile(path string) (*File, error) {
	data, err := os.ReadFile(path) //nolint:gosec // User-provided config path is intentional
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, err
	}
	return &f, nil
}

// FindConfigFile searches for the configuration file in order:
//  1. the explicit path, if given
//  2. .pokefetch in the current directory
//  3. .pokefetch in the XDG config directory
//
// Returns the path if found, or empty string.
func FindConfigFile(configPath string) string {
	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}
		return ""
	}

	if cwd, err := os.Getwd(); err == nil {
		candidate := filepath.Join(cwd, DefaultConfigFile)
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}

	candidate := filepath.Join(XDGConfigDir(), DefaultConfigFile)
	if _, err := os.Stat(candidate); err == nil {
		return candidate
	}

	return ""
}

// Apply merges file values into c. Only fields the file actually sets
// override the current values, so defaults and flags survive an incomplete
// file.
func (c *Config) Apply(f *File) error {
	if f.CatalogURL != "" {
		c.CatalogURL = f.CatalogURL
	}
	if f.BaseOrigin != "" {
		c.BaseOrigin = f.BaseOrigin
	}
	if f.Timeout != "" {
		d, err := time.ParseDuration(f.Timeout)
		if err != nil {
			return fmt.Errorf("invalid timeout %q in config file: %w", f.Timeout, err)
		}
		c.Timeout = d
	}
	if f.Workers > 0 {
		c.Workers = f.Workers
	}

	if f.Database.Driver != "" {
		c.Database.Driver = f.Database.Driver
	}
	if f.Database.User != "" {
		c.Database.User = f.Database.User
	}
	if f.Database.Password != "" {
		c.Database.Password = f.Database.Password
	}
	if f.Database.Host != "" {
		c.Database.Host = f.Database.Host
	}
	if f.Database.Port > 0 {
		c.Database.Port = f.Database.Port
	}
	if f.Database.Service != "" {
		c.Database.Service = f.Database.Service
	}
	if f.Database.TableName != "" {
		c.Database.TableName = f.Database.TableName
	}
	return nil
}
