package config

import (
	"net/url"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"

	"github.com/pokefetch/pokefetch/internal/database"
)

// Default configuration values.
const (
	// DefaultCatalogURL is the national Pokédex listing page: the single
	// entry point every run starts from.
	DefaultCatalogURL = "https://pokemondb.net/pokedex/national"

	// DefaultBaseOrigin is prepended to each detail-page link suffix by
	// plain concatenation. It must match the origin the catalog page links
	// relative to, and must not end with a slash (the suffixes begin with
	// one).
	DefaultBaseOrigin = "https://pokemondb.net"

	// DefaultTimeout bounds each individual page fetch.
	DefaultTimeout = 30 * time.Second

	// DefaultWorkers is the number of concurrent detail-page fetches.
	// 1 means fully sequential. Raising it speeds
	// up large runs without changing the final table: rows are always
	// appended in listing order regardless of fetch completion order.
	DefaultWorkers = 1

	// DefaultTableName is the destination table written on success.
	DefaultTableName = "master_pokemon"

	// AppName is the application name used for XDG directory paths.
	AppName = "pokefetch"
)

// Config holds all options for one pokefetch run.
type Config struct {
	// CatalogURL is the absolute URL of the entity listing page.
	CatalogURL string

	// BaseOrigin is the fixed prefix concatenated with each entity link
	// suffix to form the absolute detail-page URL.
	BaseOrigin string

	// Timeout is the per-request fetch timeout.
	Timeout time.Duration

	// Workers is the number of concurrent detail-page fetches.
	Workers int

	// Verbose enables slog.LevelDebug output. Default is warnings only.
	Verbose bool

	// ConfigFilePath is an explicit config file path. Empty means search
	// the standard locations.
	ConfigFilePath string

	// MarkdownReport switches the run summary to Markdown output.
	MarkdownReport bool

	// ReportFile writes the run summary to a file instead of stdout.
	ReportFile string

	// Database names the relational destination for the accumulated table.
	Database database.ConnectionSpec
}

// NewConfig returns a Config with all defaults applied. The default
// destination is a SQLite file in the XDG data directory, so a bare
// `pokefetch run` works without any database setup.
func NewConfig() *Config {
	return &Config{
		CatalogURL: DefaultCatalogURL,
		BaseOrigin: DefaultBaseOrigin,
		Timeout:    DefaultTimeout,
		Workers:    DefaultWorkers,
		Database: database.ConnectionSpec{
			Driver:    database.DriverSQLite,
			Service:   filepath.Join(XDGDataDir(), "pokefetch.db"),
			TableName: DefaultTableName,
		},
	}
}

// XDGDataDir returns the XDG data directory for pokefetch.
// On Linux: ~/.local/share/pokefetch
func XDGDataDir() string {
	return filepath.Join(xdg.DataHome, AppName)
}

// XDGConfigDir returns the XDG config directory for pokefetch.
// On Linux: ~/.config/pokefetch
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// Validate checks the merged configuration and returns the first problem
// found as a sentinel error (wrapped database errors included), so the CLI
// can fail fast with a clear message before any network traffic.
func (c *Config) Validate() error {
	if c.CatalogURL == "" {
		return ErrMissingCatalogURL
	}
	if !isAbsoluteURL(c.CatalogURL) {
		return ErrInvalidCatalogURL
	}
	if c.BaseOrigin == "" {
		return ErrMissingBaseOrigin
	}
	if !isAbsoluteURL(c.BaseOrigin) {
		return ErrInvalidBaseOrigin
	}
	if c.Timeout <= 0 {
		return ErrInvalidTimeout
	}
	if c.Workers <= 0 {
		return ErrInvalidWorkers
	}
	return c.Database.Validate()
}

// isAbsoluteURL reports whether s parses as a URL with a scheme and host.
func isAbsoluteURL(s string) bool {
	u, err := url.Parse(s)
	return err == nil && u.Scheme != "" && u.Host != ""
}
