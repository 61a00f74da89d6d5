package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/zhubert/calccraft/internal/calc"
	cerrors "github.com/zhubert/calccraft/internal/errors"
	"github.com/zhubert/calccraft/internal/logger"
)

// MaxExpressionLengthLimit is the largest buffer bound a config may request.
const MaxExpressionLengthLimit = 4096

// Config holds the user's persisted preferences. History is never stored.
type Config struct {
	Theme                string `json:"theme,omitempty"`                 // UI theme name (e.g. "dark", "nord")
	BellOnError          bool   `json:"bell_on_error"`                   // Ring the bell when evaluate fails
	NotificationsEnabled bool   `json:"notifications_enabled,omitempty"` // Desktop notification on copy
	ShowKeypad           bool   `json:"show_keypad"`
	ShowHistory          bool   `json:"show_history"`
	MaxExpressionLength  int    `json:"max_expression_length,omitempty"`

	mu       sync.RWMutex
	filePath string
}

// configDir returns the path to the config directory
func configDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".calccraft"), nil
}

// configPath returns the path to the config file
func configPath() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// Default returns a config with every field at its default, not bound to
// any file until SetFilePath is called.
func Default() *Config {
	return &Config{
		BellOnError:         true,
		ShowKeypad:          true,
		ShowHistory:         true,
		MaxExpressionLength: calc.DefaultMaxExpressionLength,
	}
}

// Load reads the config from disk, or returns defaults if it doesn't exist.
func Load() (*Config, error) {
	path, err := configPath()
	if err != nil {
		return nil, cerrors.ConfigLoadFailed("", err)
	}
	return LoadFrom(path)
}

// LoadFrom reads the config at path. A missing file yields defaults bound
// to path so a later Save creates it.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()
	cfg.filePath = path

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		logger.Debug("Config: no file at %s, using defaults", path)
		return cfg, nil
	}
	if err != nil {
		return nil, cerrors.ConfigLoadFailed(path, err)
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, cerrors.ConfigLoadFailed(path, err)
	}

	cfg.ensureInitialized()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger.Debug("Config: loaded %s (theme=%q)", path, cfg.Theme)
	return cfg, nil
}

// ensureInitialized fills fields a hand-edited file may have zeroed.
// It is only called from LoadFrom, before the Config is shared.
func (c *Config) ensureInitialized() {
	if c.MaxExpressionLength == 0 {
		c.MaxExpressionLength = calc.DefaultMaxExpressionLength
	}
}

// Validate checks that the config is internally consistent.
func (c *Config) Validate() error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.MaxExpressionLength < 1 || c.MaxExpressionLength > MaxExpressionLengthLimit {
		return cerrors.ConfigInvalid("max_expression_length must be between 1 and 4096")
	}
	return nil
}

// SetFilePath binds the config to path. Tests use it to avoid touching HOME.
func (c *Config) SetFilePath(path string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.filePath = path
}

// FilePath returns the file Save writes to.
func (c *Config) FilePath() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.filePath
}

// Save writes the config to disk
func (c *Config) Save() error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.filePath == "" {
		return cerrors.ConfigSaveFailed("", os.ErrInvalid)
	}
	if err := os.MkdirAll(filepath.Dir(c.filePath), 0755); err != nil {
		return cerrors.ConfigSaveFailed(c.filePath, err)
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return cerrors.ConfigSaveFailed(c.filePath, err)
	}

	if err := os.WriteFile(c.filePath, data, 0644); err != nil {
		return cerrors.ConfigSaveFailed(c.filePath, err)
	}
	return nil
}

// GetTheme returns the configured theme name
func (c *Config) GetTheme() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.Theme
}

// SetTheme sets the theme name
func (c *Config) SetTheme(theme string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Theme = theme
}

// GetBellOnError reports whether failed evaluations ring the bell.
func (c *Config) GetBellOnError() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.BellOnError
}

// SetBellOnError enables or disables the bell.
func (c *Config) SetBellOnError(enabled bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.BellOnError = enabled
}

// GetNotificationsEnabled returns whether desktop notifications are enabled
func (c *Config) GetNotificationsEnabled() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.NotificationsEnabled
}

// SetNotificationsEnabled sets whether desktop notifications are enabled
func (c *Config) SetNotificationsEnabled(enabled bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.NotificationsEnabled = enabled
}

func (c *Config) GetShowKeypad() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.ShowKeypad
}

func (c *Config) SetShowKeypad(show bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ShowKeypad = show
}

func (c *Config) GetShowHistory() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.ShowHistory
}

func (c *Config) SetShowHistory(show bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ShowHistory = show
}

// GetMaxExpressionLength returns the buffer bound passed to calc.NewSession.
func (c *Config) GetMaxExpressionLength() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.MaxExpressionLength
}

// SetMaxExpressionLength sets the buffer bound. Callers validate the range.
func (c *Config) SetMaxExpressionLength(n int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.MaxExpressionLength = n
}
