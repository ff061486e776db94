package config

import (
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	appName = "shutter"

	DefaultEndpoint = "https://api.flickr.com/services/rest/"
	DefaultPerPage  = 100
	maxPerPage      = 500

	DefaultPreviewWidth = 48
)

type Config struct {
	Database      string `koanf:"database"`      // path to the favorites database (default: XDG data dir)
	LogFile       string `koanf:"log_file"`      // path to the log file (default: XDG state dir)
	LogLevel      string `koanf:"log_level"`     // "debug", "info", "warn", "error"
	Notifications *bool  `koanf:"notifications"` // desktop notification on favorite (default: true)

	Flickr  FlickrConfig  `koanf:"flickr"`
	Preview PreviewConfig `koanf:"preview"`
}

// FlickrConfig holds the photo API settings.
type FlickrConfig struct {
	APIKey   string `koanf:"api_key"`
	Endpoint string `koanf:"endpoint"` // REST endpoint, e.g. "https://api.flickr.com/services/rest/"
	PerPage  int    `koanf:"per_page"` // photos per request (1-500, default: 100)
}

// PreviewConfig holds image preview settings.
type PreviewConfig struct {
	Width int `koanf:"width"` // preview width in cells (8-200, default: 48)
}

// Load reads the config files in priority order. extra, when non-empty, is
// loaded last and must exist.
func Load(extra string) (*Config, error) {
	k := koanf.New(".")

	for _, path := range getConfigPaths() {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, err
			}
		}
	}

	if extra != "" {
		if err := k.Load(file.Provider(expandPath(extra)), toml.Parser()); err != nil {
			return nil, err
		}
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	cfg.Database = expandPath(cfg.Database)
	cfg.LogFile = expandPath(cfg.LogFile)
	cfg.Flickr.APIKey = strings.TrimSpace(cfg.Flickr.APIKey)

	return cfg, nil
}

func getConfigPaths() []string {
	// 1. $XDG_CONFIG_HOME/shutter/config.toml
	paths := []string{filepath.Join(xdg.ConfigHome, appName, "config.toml")}

	// 2. ./config.toml (pwd, highest priority)
	paths = append(paths, "config.toml")

	return paths
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// HasFlickrConfig returns true if an API key is configured.
func (c *Config) HasFlickrConfig() bool {
	return c.Flickr.APIKey != ""
}

// NotificationsEnabled reports whether desktop notifications are on (default: true).
func (c *Config) NotificationsEnabled() bool {
	return c.Notifications == nil || *c.Notifications
}

// GetFlickrConfig returns the Flickr configuration with defaults applied.
func (c *Config) GetFlickrConfig() FlickrConfig {
	cfg := c.Flickr

	if cfg.Endpoint == "" {
		cfg.Endpoint = DefaultEndpoint
	}
	cfg.Endpoint = normalizeEndpoint(cfg.Endpoint)

	if cfg.PerPage <= 0 || cfg.PerPage > maxPerPage {
		cfg.PerPage = DefaultPerPage
	}

	return cfg
}

// normalizeEndpoint ends the URL path with exactly one slash, leaving any
// query string alone.
func normalizeEndpoint(endpoint string) string {
	u, err := url.Parse(endpoint)
	if err != nil {
		return strings.TrimRight(endpoint, "/") + "/"
	}
	u.Path = strings.TrimRight(u.Path, "/") + "/"
	u.RawPath = ""
	return u.String()
}

// GetPreviewConfig returns the preview configuration with defaults applied.
func (c *Config) GetPreviewConfig() PreviewConfig {
	cfg := c.Preview
	if cfg.Width < 8 || cfg.Width > 200 {
		cfg.Width = DefaultPreviewWidth
	}
	return cfg
}

// DatabasePath returns the configured database path or the XDG default.
func (c *Config) DatabasePath() (string, error) {
	if c.Database != "" {
		return c.Database, nil
	}
	return xdg.DataFile(filepath.Join(appName, appName+".db"))
}

// LogPath returns the configured log path or the XDG default.
func (c *Config) LogPath() (string, error) {
	if c.LogFile != "" {
		return c.LogFile, nil
	}
	return xdg.StateFile(filepath.Join(appName, appName+".log"))
}
