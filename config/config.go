package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/omerfdk/sunsizer/core/metrics"
	"github.com/omerfdk/sunsizer/core/savings"
)

type Config struct {
	HTTP       HTTPConfig     `json:"http"`
	Catalog    CatalogConfig  `json:"catalog"`
	Metrics    metrics.Config `json:"metrics"`
	Projection savings.Params `json:"projection"`
}

// Load reads the configuration file (yaml or json) and applies environment
// overrides with the SS_ prefix, "__" mapping to a dot.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	ext := strings.ToLower(filepath.Ext(path))
	var parser koanf.Parser
	switch ext {
	case ".yaml", ".yml":
		parser = yaml.Parser()
	case ".json":
		parser = json.Parser()
	default:
		return nil, fmt.Errorf("unsupported config format: %s", ext)
	}
	if err := k.Load(file.Provider(path), parser); err != nil {
		return nil, err
	}
	if err := k.Load(env.Provider("SS_", ".", func(s string) string {
		s = strings.TrimPrefix(strings.ToLower(s), "ss_")
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, err
	}
	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, err
	}
	cfg.HTTP.SetDefaults()
	cfg.Catalog.SetDefaults()
	cfg.Metrics.SetDefaults()
	cfg.Projection.SetDefaults()
	if err := cfg.Catalog.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Projection.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// HTTPConfig defines settings for the API server.
type HTTPConfig struct {
	// Addr is the listen address of the API server.
	Addr string `json:"addr"`
}

// SetDefaults applies sane defaults.
func (c *HTTPConfig) SetDefaults() {
	if c.Addr == "" {
		c.Addr = ":8000"
	}
}

// CatalogConfig locates the reference dataset files.
type CatalogConfig struct {
	// Dir is the directory holding the catalog JSON files.
	Dir string `json:"dir"`
}

// SetDefaults applies sane defaults.
func (c *CatalogConfig) SetDefaults() {
	if c.Dir == "" {
		c.Dir = "datasets"
	}
}

// Validate checks mandatory fields.
func (c CatalogConfig) Validate() error {
	if c.Dir == "" {
		return fmt.Errorf("catalog dir is required")
	}
	return nil
}
