package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"

	"reposearch/internal/eventbus"
)

const (
	DefaultAPIURL     = "https://api.github.com"
	DefaultStartRoute = "/search"
)

// Config represents the application configuration
type Config struct {
	Version    int            `toml:"version"`
	GitHub     GitHubSettings `toml:"github"`
	UISettings UISettings     `toml:"ui"`
}

// GitHubSettings configures the repository fetcher
type GitHubSettings struct {
	APIURL            string  `toml:"api_url"`
	Token             string  `toml:"token,omitempty"`
	PerPage           int     `toml:"per_page"`
	TimeoutSeconds    int     `toml:"timeout_seconds"`
	RequestsPerSecond float64 `toml:"requests_per_second"`
	Burst             int     `toml:"burst"`
	UserAgent         string  `toml:"user_agent"`
}

// Timeout returns the per-request timeout
func (g GitHubSettings) Timeout() time.Duration {
	return time.Duration(g.TimeoutSeconds) * time.Second
}

// UISettings represents UI-related configuration
type UISettings struct {
	StartRoute       string `toml:"start_route"`
	ShowDescriptions bool   `toml:"show_descriptions"`
	AltScreen        bool   `toml:"alt_screen"`
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
	Path() string
}

// configService is the concrete implementation
type configService struct {
	bus      eventbus.EventBus
	filePath string
}

// DefaultPath returns the config file location under the user config dir
func DefaultPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}
	return filepath.Join(configDir, "reposearch", "config.toml")
}

// NewConfigService creates a config service reading from path, or from
// DefaultPath when path is empty. bus may be nil.
func NewConfigService(path string, bus eventbus.EventBus) ConfigService {
	if path == "" {
		path = DefaultPath()
	}
	return &configService{
		bus:      bus,
		filePath: path,
	}
}

func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration from file, returning defaults when the file doesn't exist
func (cs *configService) Load() (*Config, error) {
	cfg, err := cs.LoadFromPath(cs.filePath)
	if errors.Is(err, os.ErrNotExist) {
		cfg = DefaultConfig()
	} else if err != nil {
		return nil, err
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigLoadedEvent{Path: cs.filePath})
	}
	return cfg, nil
}

// Save saves the configuration to file
func (cs *configService) Save(config *Config) error {
	if err := cs.SaveToPath(config, cs.filePath); err != nil {
		return err
	}
	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigSavedEvent{Path: cs.filePath})
	}
	return nil
}

// LoadFromPath loads configuration from a specific path. Fields missing from
// the file keep their default values.
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
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

	// The file may hold a token
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate reports the first invalid setting
func (c *Config) Validate() error {
	u, err := url.Parse(c.GitHub.APIURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("github.api_url %q is not an absolute URL", c.GitHub.APIURL)
	}
	if c.GitHub.PerPage < 1 || c.GitHub.PerPage > 100 {
		return fmt.Errorf("github.per_page must be between 1 and 100, got %d", c.GitHub.PerPage)
	}
	if c.GitHub.TimeoutSeconds <= 0 {
		return fmt.Errorf("github.timeout_seconds must be positive, got %d", c.GitHub.TimeoutSeconds)
	}
	if c.GitHub.RequestsPerSecond < 0 {
		return fmt.Errorf("github.requests_per_second must not be negative")
	}
	if !strings.HasPrefix(c.UISettings.StartRoute, "/") {
		return fmt.Errorf("ui.start_route %q must start with /", c.UISettings.StartRoute)
	}
	return nil
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		GitHub: GitHubSettings{
			APIURL:            DefaultAPIURL,
			PerPage:           30,
			TimeoutSeconds:    10,
			RequestsPerSecond: 1,
			Burst:             3,
			UserAgent:         "reposearch",
		},
		UISettings: UISettings{
			StartRoute:       DefaultStartRoute,
			ShowDescriptions: true,
			AltScreen:        true,
		},
	}
}
