package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// BasicAuthConfig holds HTTP Basic Auth credentials for the API.
type BasicAuthConfig struct {
	Username string `yaml:"username" json:"username"`
	Password string `yaml:"password" json:"password"`
}

// Config is the top-level application configuration.
type Config struct {
	// Listen is the HTTP listen address for the booking API.
	Listen string `yaml:"listen" json:"listen"`

	// Timezone is the IANA timezone the business operates in. All dates
	// and times in the system are naive values in this zone.
	Timezone string `yaml:"timezone" json:"timezone"`

	// CalendarName labels the exported iCalendar feed.
	CalendarName string `yaml:"calendar_name" json:"calendar_name"`

	// ReminderCron schedules the tomorrow's-bookings reminder scan
	// (cron syntax, e.g. "0 7 * * *").
	ReminderCron string `yaml:"reminder_cron" json:"reminder_cron"`

	// DemoSeed installs the demo booking fixtures at startup.
	DemoSeed bool `yaml:"demo_seed" json:"demo_seed"`

	// LogLevel is one of debug, info, error.
	LogLevel string `yaml:"log_level" json:"log_level"`

	// BasicAuth, if non-nil, enables HTTP Basic Authentication on all
	// endpoints except /health.
	BasicAuth *BasicAuthConfig `yaml:"basic_auth,omitempty" json:"basic_auth,omitempty"`
}

// DefaultConfig returns an in-memory default configuration.
func DefaultConfig() *Config {
	return &Config{
		Listen:       "127.0.0.1:8080",
		Timezone:     "Asia/Jakarta",
		CalendarName: "Jadwal Rias",
		ReminderCron: "0 7 * * *",
		DemoSeed:     true,
		LogLevel:     "info",
		BasicAuth:    nil,
	}
}

// Normalize fills in missing/zero values with sensible defaults so that
// partially-filled configs still behave correctly.
func (c *Config) Normalize() {
	if c.Listen == "" {
		c.Listen = "127.0.0.1:8080"
	}
	if c.Timezone == "" {
		c.Timezone = "Asia/Jakarta"
	}
	if c.CalendarName == "" {
		c.CalendarName = "Jadwal Rias"
	}
	if c.ReminderCron == "" {
		c.ReminderCron = "0 7 * * *"
	}
	switch c.LogLevel {
	case "debug", "info", "error":
		// ok
	default:
		c.LogLevel = "info"
	}
}

// Load loads configuration from the given YAML path.
//
// Behavior:
//   - If the file does not exist: create the parent directory if needed,
//     write a default config with 0600 perms, and return the defaults.
//   - If the file exists: read YAML, unmarshal, normalize defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		return nil, errors.New("config path is empty")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			cfg := DefaultConfig()
			if err := Save(path, cfg); err != nil {
				// Even if save fails, return cfg with error so caller can decide.
				return cfg, err
			}
			return cfg, nil
		}
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	cfg.Normalize()

	return &cfg, nil
}

// Save writes the given configuration to the specified path: parent dir
// ensured (0700), atomic write via temp file + rename, final perms 0600.
func Save(path string, cfg *Config) error {
	if path == "" {
		return errors.New("config path is empty")
	}
	if cfg == nil {
		return errors.New("config is nil")
	}

	cfg.Normalize()

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, ".riascal-config-*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}

	if err := os.Chmod(tmpName, 0o600); err != nil {
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		return err
	}

	return nil
}

// Save is a convenience method that delegates to the package-level Save.
func (c *Config) Save(path string) error {
	return Save(path, c)
}
