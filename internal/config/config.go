// Package config loads modelreport configuration from defaults, config
// files, and environment variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"gopkg.in/yaml.v3"
)

// Configuration holds everything the CLI needs to fetch and render a
// content model.
type Configuration struct {
	SpaceID     string `koanf:"space_id"`
	Environment string `koanf:"environment" validate:"required"`
	CMAToken    string `koanf:"cma_token"`
	Format      string `koanf:"format"`
	OutputDir   string `koanf:"output_dir" validate:"required"`
	Timeout     int    `koanf:"timeout" validate:"omitempty,min=1,max=600"`
	Quiet       bool   `koanf:"quiet"`
	AssumeYes   bool   `koanf:"yes"`
}

// Load layers configuration sources.
// Priority: environment variables > config file > defaults.
func Load(configPath string) (*Configuration, error) {
	k := koanf.New(".")

	for key, value := range Defaults() {
		k.Set(key, value)
	}

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			if err := loadFile(k, configPath); err != nil {
				return nil, err
			}
		}
	}

	k.Load(env.Provider("MODELREPORT_", ".", envTransform), nil)

	var cfg Configuration
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// The management token is conventionally provided through the vendor's
	// own variable; honor it when the prefixed one is absent.
	if cfg.CMAToken == "" {
		cfg.CMAToken = os.Getenv("CONTENTFUL_MANAGEMENT_TOKEN")
	}

	validate := validator.New()
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// RequireRemote checks the fields that only remote schema fetching needs.
// Rendering from a local export file works without them.
func (c *Configuration) RequireRemote() error {
	if c.SpaceID == "" {
		return fmt.Errorf("space ID is required (set --space or MODELREPORT_SPACE_ID)")
	}
	if c.CMAToken == "" {
		return fmt.Errorf("management token is required (set MODELREPORT_CMA_TOKEN or CONTENTFUL_MANAGEMENT_TOKEN)")
	}
	return nil
}

// loadFile loads one config file, dispatching on extension: YAML files parse
// through yaml.v3, everything else through the koanf JSON parser.
func loadFile(k *koanf.Koanf, path string) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yml", ".yaml":
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read config file: %w", err)
		}
		var values map[string]any
		if err := yaml.Unmarshal(data, &values); err != nil {
			return fmt.Errorf("failed to parse YAML config: %w", err)
		}
		for key, value := range values {
			k.Set(key, value)
		}
		return nil
	default:
		if err := k.Load(file.Provider(path), json.Parser()); err != nil {
			return fmt.Errorf("failed to load config file: %w", err)
		}
		return nil
	}
}

// envTransform converts environment variable names to config keys.
// Example: MODELREPORT_OUTPUT_DIR -> output_dir
func envTransform(s string) string {
	return strings.ToLower(strings.TrimPrefix(s, "MODELREPORT_"))
}
