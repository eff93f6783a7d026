package serviceclient

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	defaultTimeout   = 10 * time.Second
	defaultRetryWait = 500 * time.Millisecond
)

// Config is the named configuration source of one collaborator service.
type Config struct {
	URL        string        `yaml:"url"`
	AuthToken  string        `yaml:"authtoken"`
	Timeout    time.Duration `yaml:"timeout"`
	RetryCount int           `yaml:"retry_count"`
	RetryWait  time.Duration `yaml:"retry_wait"`
}

// Validate checks the required keys.
func (c Config) Validate() error {
	if strings.TrimSpace(c.URL) == "" {
		return fmt.Errorf("url is required")
	}
	if c.RetryCount < 0 {
		return fmt.Errorf("retry_count must be >= 0 (got %d)", c.RetryCount)
	}
	return nil
}

func (c Config) withDefaults() Config {
	if c.Timeout <= 0 {
		c.Timeout = defaultTimeout
	}
	if c.RetryWait <= 0 {
		c.RetryWait = defaultRetryWait
	}
	return c
}

// ReadConfig decodes a service config file into out. Unknown keys are
// rejected so a misspelled key fails at startup.
func ReadConfig(path string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("serviceclient: read %s: %w", path, err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(out); err != nil {
		return fmt.Errorf("serviceclient: decode %s: %w", path, err)
	}

	if v, ok := out.(interface{ Validate() error }); ok {
		if err := v.Validate(); err != nil {
			return fmt.Errorf("serviceclient: %s: %w", path, err)
		}
	}
	return nil
}
