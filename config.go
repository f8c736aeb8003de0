package imgsniff

import (
	"os"
	"time"

	"github.com/nfnt/resize"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"imgsniff/internal/log"
)

// Resize backends.
const (
	BackendAuto    = "auto"
	BackendConvert = "convert"
	BackendNative  = "native"
)

// Config is the YAML-loadable configuration for loaders and resizers.
type Config struct {
	LogLevel string       `yaml:"log_level"`
	Fetch    FetchConfig  `yaml:"fetch"`
	Resize   ResizeConfig `yaml:"resize"`
}

// FetchConfig controls Fetch.
type FetchConfig struct {
	// Timeout bounds the whole request; zero means no timeout beyond ctx.
	Timeout time.Duration `yaml:"timeout"`

	// MaxBytes is the largest body accepted.
	MaxBytes int64 `yaml:"max_bytes"`
}

// ResizeConfig selects and tunes the resize backend.
type ResizeConfig struct {
	Backend     string        `yaml:"backend"`
	ConvertPath string        `yaml:"convert_path"`
	Timeout     time.Duration `yaml:"timeout"`
	Filter      string        `yaml:"filter"`
	JPEGQuality int           `yaml:"jpeg_quality"`
}

var filters = map[string]resize.InterpolationFunction{
	"nearest":  resize.NearestNeighbor,
	"bilinear": resize.Bilinear,
	"bicubic":  resize.Bicubic,
	"mitchell": resize.MitchellNetravali,
	"lanczos2": resize.Lanczos2,
	"lanczos3": resize.Lanczos3,
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() Config {
	return Config{
		LogLevel: "info",
		Fetch: FetchConfig{
			Timeout:  10 * time.Second,
			MaxBytes: 32 << 20,
		},
		Resize: ResizeConfig{
			Backend:     BackendAuto,
			Timeout:     5 * time.Second,
			Filter:      "lanczos3",
			JPEGQuality: 85,
		},
	}
}

// LoadConfig parses YAML on top of DefaultConfig and validates the result.
func LoadConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, errors.Wrap(err, "parse config")
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfigFile reads and parses the YAML file at path.
func LoadConfigFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrap(err, "read config")
	}
	return LoadConfig(data)
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return errors.Wrapf(err, "log_level %q", c.LogLevel)
	}
	if c.Fetch.Timeout < 0 {
		return errors.Errorf("fetch.timeout must not be negative, got %s", c.Fetch.Timeout)
	}
	if c.Fetch.MaxBytes <= 0 {
		return errors.Errorf("fetch.max_bytes must be positive, got %d", c.Fetch.MaxBytes)
	}
	return c.Resize.Validate()
}

// Validate reports the first invalid resize setting.
func (c ResizeConfig) Validate() error {
	switch c.Backend {
	case BackendAuto, BackendConvert, BackendNative:
	default:
		return errors.Errorf("resize.backend %q is not one of auto, convert, native", c.Backend)
	}
	if c.Timeout < 0 {
		return errors.Errorf("resize.timeout must not be negative, got %s", c.Timeout)
	}
	if _, ok := filters[c.Filter]; !ok {
		return errors.Errorf("resize.filter %q is unknown", c.Filter)
	}
	if c.JPEGQuality < 1 || c.JPEGQuality > 100 {
		return errors.Errorf("resize.jpeg_quality must be within 1..100, got %d", c.JPEGQuality)
	}
	return nil
}

// ApplyLogging sets the global log level from LogLevel.
func (c Config) ApplyLogging() error {
	l, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return errors.Wrapf(err, "log_level %q", c.LogLevel)
	}
	log.SetLevel(l)
	return nil
}
