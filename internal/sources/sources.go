// Package sources provides the lower-precedence inputs of the build config
// synthesizer: the built-in defaults and the optional static config file.
package sources

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/rjs-config-gen/models"
	"gopkg.in/yaml.v3"
)

// Defaults returns the built-in build config: optimize "none" and every
// collection empty.
func Defaults() models.BuildConfig {
	return models.BuildConfig{
		Deps:     []string{},
		Paths:    map[string]string{},
		Map:      map[string]map[string]string{},
		Modules:  []models.BuildModule{},
		Optimize: models.OptimizeNone,
		Shim:     map[string]models.ShimEntry{},
	}
}

// LoadFile reads the static config file at path. Files ending in .json are
// parsed as JSON, anything else as YAML. An empty path or an empty file
// yields an empty config.
func LoadFile(path string) (models.StaticConfig, error) {
	if path == "" {
		return models.StaticConfig{}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return models.StaticConfig{}, fmt.Errorf("%w %s: %w", ErrReadingConfig, path, err)
	}

	cfg, err := Parse(data, strings.EqualFold(filepath.Ext(path), ".json"))
	if err != nil {
		return models.StaticConfig{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes a static config document.
func Parse(data []byte, isJSON bool) (models.StaticConfig, error) {
	var cfg models.StaticConfig
	if len(bytes.TrimSpace(data)) == 0 {
		return cfg, nil
	}

	var err error
	if isJSON {
		err = json.Unmarshal(data, &cfg)
	} else {
		err = yaml.Unmarshal(data, &cfg)
	}
	if err != nil {
		return models.StaticConfig{}, fmt.Errorf("%w: %w", ErrMalformedConfig, err)
	}

	if err = validateBundles(cfg.Bundles); err != nil {
		return models.StaticConfig{}, err
	}
	return cfg, nil
}

func validateBundles(bundles []models.Bundle) error {
	for i, b := range bundles {
		if strings.TrimSpace(b.Name) == "" {
			return fmt.Errorf("%w: bundles[%d].name: required field missing", ErrMalformedConfig, i)
		}
		if len(b.URLs) == 0 {
			return fmt.Errorf("%w: bundles[%d].urls: at least one pattern required", ErrMalformedConfig, i)
		}
		for _, pattern := range b.URLs {
			if _, err := path.Match(pattern, "/"); err != nil {
				return fmt.Errorf("%w: bundles[%d].urls: pattern %q: %w", ErrMalformedConfig, i, pattern, err)
			}
		}
	}
	return nil
}
