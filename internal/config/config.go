// Package config loads the engine's host configuration: the solar
// reference observer, the optional persistent sunrise cache, and CLI
// output defaults. The core packages never read configuration themselves;
// the CLI layer loads it and passes concrete values down.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/kaiklok/kairos/internal/solar"
)

// Config is the on-disk YAML shape.
type Config struct {
	Observer struct {
		// LatitudeDeg is north-positive, [-90, 90].
		LatitudeDeg float64 `yaml:"latitude_deg"`
		// LongitudeDeg is east-positive, [-180, 180].
		LongitudeDeg float64 `yaml:"longitude_deg"`
	} `yaml:"observer"`

	// SunriseCachePath points at the SQLite sunrise cache. Empty disables
	// persistence; the in-memory cache still applies.
	SunriseCachePath string `yaml:"sunrise_cache,omitempty"`

	// Format is the default CLI output format, "text" or "json".
	Format string `yaml:"format,omitempty"`
}

// Default returns the configuration used when no file is given: the fixed
// reference observer, no persistence, text output.
func Default() *Config {
	c := &Config{Format: "text"}
	c.Observer.LatitudeDeg = solar.DefaultObserver.LatitudeDeg
	c.Observer.LongitudeDeg = solar.DefaultObserver.LongitudeDeg
	return c
}

// Load reads and validates a YAML config file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	c := Default()
	if err := yaml.Unmarshal(data, c); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate checks field ranges, naming the offending field.
func (c *Config) Validate() error {
	if c.Observer.LatitudeDeg < -90 || c.Observer.LatitudeDeg > 90 {
		return fmt.Errorf("observer.latitude_deg out of range [-90, 90]: %v", c.Observer.LatitudeDeg)
	}
	if c.Observer.LongitudeDeg < -180 || c.Observer.LongitudeDeg > 180 {
		return fmt.Errorf("observer.longitude_deg out of range [-180, 180]: %v", c.Observer.LongitudeDeg)
	}
	if c.Format != "" && c.Format != "text" && c.Format != "json" {
		return fmt.Errorf("format must be \"text\" or \"json\", got %q", c.Format)
	}
	return nil
}

// SolarObserver converts the config fields to a solar.Observer.
func (c *Config) SolarObserver() solar.Observer {
	return solar.Observer{
		LatitudeDeg:  c.Observer.LatitudeDeg,
		LongitudeDeg: c.Observer.LongitudeDeg,
	}
}
