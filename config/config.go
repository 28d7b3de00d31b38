package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/kilianp07/servicing/core/catalog"
	"github.com/kilianp07/servicing/core/metrics"
	"github.com/kilianp07/servicing/infra/mqtt"
)

// EnvPrefix prefixes environment overrides, e.g. SERVICING_POLICY__VERSION.
const EnvPrefix = "SERVICING_"

type Config struct {
	Policy     PolicyConfig                  `json:"policy"`
	Models     map[string]catalog.BundleSpec `json:"models"`
	Inspection InspectionConfig              `json:"inspection"`
	Logging    LoggingConfig                 `json:"logging"`
	Metrics    metrics.Config                `json:"metrics"`
	MQTT       mqtt.Config                   `json:"mqtt"`
}

// Load reads the configuration file at path and applies environment
// overrides.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	parser, err := parserFor(path)
	if err != nil {
		return nil, err
	}
	if err := k.Load(file.Provider(path), parser); err != nil {
		return nil, err
	}
	return finish(k)
}

// LoadOptional behaves like Load but falls back to defaults plus
// environment overrides when the file does not exist.
func LoadOptional(path string) (*Config, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return finish(koanf.New("."))
	}
	return Load(path)
}

func parserFor(path string) (koanf.Parser, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		return yaml.Parser(), nil
	case ".json":
		return json.Parser(), nil
	default:
		return nil, fmt.Errorf("unsupported config format: %s", ext)
	}
}

func finish(k *koanf.Koanf) (*Config, error) {
	// Optional environment overrides
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		s = strings.TrimPrefix(strings.ToLower(s), strings.ToLower(EnvPrefix))
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, err
	}
	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, err
	}
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// SetDefaults applies defaults to every section.
func (c *Config) SetDefaults() {
	c.Policy.SetDefaults()
	c.Inspection.SetDefaults()
	c.Logging.SetDefaults()
	c.Metrics.SetDefaults()
	c.MQTT.SetDefaults()
}

// Validate checks every section.
func (c Config) Validate() error {
	if err := c.Policy.Validate(); err != nil {
		return err
	}
	if err := c.Logging.Validate(); err != nil {
		return err
	}
	if err := c.MQTT.Validate(); err != nil {
		return err
	}
	for name, spec := range c.Models {
		if spec.Engine.IsZero() || spec.Battery.IsZero() {
			return fmt.Errorf("model %s: engine and battery rules are required", name)
		}
	}
	return nil
}

// Catalog builds the model catalog for the configured policy version,
// including the models defined in configuration.
func (c Config) Catalog() (*catalog.Catalog, error) {
	v, err := catalog.ParseVersion(c.Policy.Version)
	if err != nil {
		return nil, err
	}
	cat := catalog.New(v)
	for name, spec := range c.Models {
		b, err := catalog.BuildBundle(spec)
		if err != nil {
			return nil, fmt.Errorf("model %s: %w", name, err)
		}
		if err := cat.Register(name, b); err != nil {
			return nil, err
		}
	}
	return cat, nil
}
