package settings

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const (
	DefaultBanner = "--- Waitlist Manager ---"
	DefaultPrompt = "Choose an option (1–5): "
)

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Logger: Logger{
			LogLevel:   "info",
			MaxBackups: 3,
			MaxAge:     28,
			MaxSize:    100,
		},
		Shell: Shell{
			Banner: DefaultBanner,
			Prompt: DefaultPrompt,
		},
		Server: Server{
			Mode:            "release",
			Host:            "127.0.0.1",
			Port:            8080,
			ShutdownTimeout: 5,
		},
	}
}

// Load reads a YAML file over the defaults. An empty path returns the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read config %s", path)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrapf(err, "failed to parse config %s", path)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the values that cannot be defaulted.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return errors.Errorf("invalid server port %d", c.Server.Port)
	}
	if c.Server.ShutdownTimeout < 0 {
		return errors.Errorf("invalid shutdown timeout %d", c.Server.ShutdownTimeout)
	}
	return nil
}

// Addr returns host:port for the HTTP listener.
func (s Server) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}
