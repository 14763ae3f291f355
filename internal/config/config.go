package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// FileName is the project-local config file looked up in the working directory.
const FileName = ".findbar.toml"

// DefaultMatchesLimit caps the rendered match counter.
const DefaultMatchesLimit = 1000

// Config represents the application configuration
type Config struct {
	Version    int        `toml:"version"`
	Host       Host       `toml:"host"`
	UISettings UISettings `toml:"ui"`
	L10n       L10n       `toml:"l10n"`
	Log        Log        `toml:"log"`
}

// Host configures where keyword payloads come from and where save/delete requests go.
type Host struct {
	Listen         string   `toml:"listen,omitempty"`
	Origin         string   `toml:"origin,omitempty"`
	AllowedOrigins []string `toml:"allowed_origins,omitempty"`
	CallbackURL    string   `toml:"callback_url,omitempty"`
	KeywordsFile   string   `toml:"keywords_file,omitempty"`
	OutboxFile     string   `toml:"outbox_file,omitempty"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	HighlightAll     bool `toml:"highlight_all"`
	CaseSensitive    bool `toml:"case_sensitive"`
	EntireWord       bool `toml:"entire_word"`
	MatchesLimit     int  `toml:"matches_limit"`
	ShowResultsCount bool `toml:"show_results_count"`
}

type L10n struct {
	Catalog string `toml:"catalog,omitempty"`
	Locale  string `toml:"locale,omitempty"`
}

type Log struct {
	Level      string `toml:"level,omitempty"`
	Format     string `toml:"format,omitempty"`
	Sink       string `toml:"sink,omitempty"`
	File       string `toml:"file,omitempty"`
	MaxSizeMB  int    `toml:"max_size_mb,omitempty"`
	MaxBackups int    `toml:"max_backups,omitempty"`
	MaxAgeDays int    `toml:"max_age_days,omitempty"`
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
	Path() string
}

type configService struct {
	filePath string
}

// NewConfigService creates a config service. An empty path resolves to
// .findbar.toml in the working directory when present, otherwise to the
// per-user config directory.
func NewConfigService(path string) ConfigService {
	if path == "" {
		path = resolvePath()
	}
	return &configService{filePath: path}
}

func resolvePath() string {
	if _, err := os.Stat(FileName); err == nil {
		return FileName
	}
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		configDir, err = os.UserHomeDir()
		if err != nil {
			return FileName
		}
		configDir = filepath.Join(configDir, ".config")
	}
	return filepath.Join(configDir, "findbar", "config.toml")
}

func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration, falling back to defaults when the file is missing.
func (cs *configService) Load() (*Config, error) {
	cfg, err := cs.LoadFromPath(cs.filePath)
	if errors.Is(err, os.ErrNotExist) {
		return DefaultConfig(), nil
	}
	return cfg, err
}

func (cs *configService) Save(config *Config) error {
	return cs.SaveToPath(config, cs.filePath)
}

// LoadFromPath loads configuration from a specific path. Keys absent from the
// file keep their default values.
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("config file not found: %s: %w", path, err)
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if cfg.UISettings.MatchesLimit <= 0 {
		cfg.UISettings.MatchesLimit = DefaultMatchesLimit
	}
	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		Host: Host{
			Origin: "http://localhost:7300",
		},
		UISettings: UISettings{
			HighlightAll:     true,
			MatchesLimit:     DefaultMatchesLimit,
			ShowResultsCount: true,
		},
		L10n: L10n{
			Locale: "en",
		},
		Log: Log{
			Level:  "info",
			Format: "text",
			Sink:   "file",
		},
	}
}
