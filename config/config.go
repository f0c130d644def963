package config

import (
	"fmt"
	"math"
	"os"
	"runtime"
	"time"
)

import (
	"gopkg.in/yaml.v3"
)

import (
	"github.com/timtadh/fpm/lattice"
)

type Config struct {
	Support     float64       `yaml:"support"`
	Output      string        `yaml:"output"`
	Parallelism int           `yaml:"workers"`
	Timeout     time.Duration `yaml:"timeout"`
	SkipLog     []string      `yaml:"skip-log"`
}

// ConfigError is raised for an unusable run configuration. It is always
// reported before any corpus is read.
type ConfigError struct {
	Field  string
	Value  interface{}
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("bad %s %v: %s", e.Field, e.Value, e.Reason)
}

// Load reads a YAML run profile. Fields missing from the file keep their
// zero values.
func Load(path string) (*Config, error) {
	bytes, err := os.ReadFile(path)
	if err != nil {
		return nil, &lattice.IOError{Op: "read config", Path: path, Err: err}
	}
	c := &Config{}
	if err := yaml.Unmarshal(bytes, c); err != nil {
		return nil, &ConfigError{Field: "config", Value: path, Reason: err.Error()}
	}
	return c, nil
}

func (c *Config) Validate() error {
	if math.IsNaN(c.Support) || c.Support <= 0 || c.Support > 1 {
		return &ConfigError{Field: "support", Value: c.Support, Reason: "must be in (0, 1]"}
	}
	if c.Parallelism < -1 {
		return &ConfigError{Field: "workers", Value: c.Parallelism, Reason: "must be >= -1"}
	}
	if c.Timeout < 0 {
		return &ConfigError{Field: "timeout", Value: c.Timeout, Reason: "must be >= 0"}
	}
	return nil
}

func (c *Config) Workers() int {
	if c.Parallelism == 0 {
		return 1
	} else if c.Parallelism == -1 {
		return runtime.NumCPU()
	} else {
		return c.Parallelism
	}
}

func (c *Config) AbsoluteSupport(transactions int) lattice.Threshold {
	return lattice.AbsoluteSupport(c.Support, transactions)
}
