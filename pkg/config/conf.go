package config

import (
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const (
	dirMode  = 0700
	fileMode = 0600

	defaultLogLevel = "warn"
	defaultFormat   = "text"
)

// Config represents app config object.
type Config struct {
	LogLevel string `yaml:"log_level"`
	Format   string `yaml:"format"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		LogLevel: defaultLogLevel,
		Format:   defaultFormat,
	}
}

// Save writes c as yaml to path, creating the parent directory if needed.
func Save(path string, c *Config) error {
	if path == "" {
		return errors.New("config path required")
	}
	if c == nil {
		return errors.New("config required")
	}

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, dirMode); err != nil {
			return errors.Wrapf(err, "failed to create dir: %s", dir)
		}
	}

	b, err := yaml.Marshal(c)
	if err != nil {
		return errors.Wrap(err, "failed to marshal config")
	}
	if err := os.WriteFile(path, b, fileMode); err != nil {
		return errors.Wrapf(err, "failed to write config file: %s", path)
	}
	return nil
}

// Load reads the config file at path. An empty path yields the defaults;
// keys missing from the file keep their default values.
func Load(path string) (*Config, error) {
	c := Default()
	if path == "" {
		return c, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "error opening config file: %s", path)
	}
	defer f.Close()

	b, err := io.ReadAll(f)
	if err != nil {
		return nil, errors.Wrapf(err, "error reading config file: %s", path)
	}

	if err := yaml.Unmarshal(b, c); err != nil {
		return nil, errors.Wrapf(err, "error unmarshalling config file: %s", path)
	}
	return c, nil
}
