package config

import (
	"bytes"
	"fmt"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/san-kum/physcalc/internal/formula"
	"github.com/san-kum/physcalc/internal/viz"
	"gopkg.in/yaml.v3"
)

const (
	DefaultPrecision = 6
	DefaultLogLevel  = "info"
	DefaultTheme     = "cyberpunk"
)

type Config struct {
	Constants formula.Constants `yaml:"constants" toml:"constants"`
	Precision int               `yaml:"precision" toml:"precision"`
	LogLevel  string            `yaml:"log_level" toml:"log_level"`
	Theme     string            `yaml:"theme" toml:"theme"`
}

type Format int

const (
	FormatYAML Format = iota
	FormatTOML
)

func (f Format) String() string {
	switch f {
	case FormatYAML:
		return "yaml"
	case FormatTOML:
		return "toml"
	default:
		return "unknown"
	}
}

// FormatFor picks the file format from the path extension.
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return 0, fmt.Errorf("unsupported config format: %q", filepath.Ext(path))
	}
}

func DefaultConfig() *Config {
	return &Config{
		Constants: formula.DefaultConstants(),
		Precision: DefaultPrecision,
		LogLevel:  DefaultLogLevel,
		Theme:     DefaultTheme,
	}
}

// Load reads a YAML or TOML file over the defaults, so omitted keys keep
// their default values.
func Load(path string) (*Config, error) {
	format, err := FormatFor(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := DefaultConfig()
	switch format {
	case FormatTOML:
		if _, err := toml.Decode(string(data), cfg); err != nil {
			return nil, fmt.Errorf("decode %s: %w", path, err)
		}
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("decode %s: %w", path, err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Save writes cfg to path in the format its extension names.
func Save(path string, cfg *Config) error {
	format, err := FormatFor(path)
	if err != nil {
		return err
	}

	var data []byte
	switch format {
	case FormatTOML:
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
			return err
		}
		data = buf.Bytes()
	default:
		data, err = yaml.Marshal(cfg)
		if err != nil {
			return err
		}
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	for _, q := range c.Constants.Named() {
		if math.IsNaN(q.Value) || math.IsInf(q.Value, 0) || q.Value <= 0 {
			return fmt.Errorf("constant %s must be finite and positive, got %g", q.Label, q.Value)
		}
	}
	if c.Precision < 1 || c.Precision > 17 {
		return fmt.Errorf("precision must be between 1 and 17, got %d", c.Precision)
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return fmt.Errorf("invalid log level %q", c.LogLevel)
	}
	if _, ok := viz.LookupTheme(c.Theme); !ok {
		return fmt.Errorf("unknown theme %q (have %s)", c.Theme, strings.Join(viz.ThemeNames(), ", "))
	}
	return nil
}
