package models

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Optimize is the optimizer mode passed to the RequireJS optimizer.
type Optimize string

const (
	OptimizeNone    Optimize = "none"
	OptimizeUglify  Optimize = "uglify"
	OptimizeClosure Optimize = "closure"
)

// Valid reports whether o is one of the known optimizer modes.
func (o Optimize) Valid() bool {
	switch o {
	case OptimizeNone, OptimizeUglify, OptimizeClosure:
		return true
	}
	return false
}

// BuildConfig is the canonical optimizer configuration served by the
// build endpoint.
type BuildConfig struct {
	BaseURL  string                       `json:"baseUrl,omitempty" yaml:"baseUrl,omitempty"`
	Deps     []string                     `json:"deps" yaml:"deps"`
	Paths    map[string]string            `json:"paths" yaml:"paths"`
	Map      map[string]map[string]string `json:"map" yaml:"map"`
	Modules  []BuildModule                `json:"modules" yaml:"modules"`
	Optimize Optimize                     `json:"optimize" yaml:"optimize"`
	Shim     map[string]ShimEntry         `json:"shim" yaml:"shim"`
}

// BuildModule describes one output bundle of the optimizer.
type BuildModule struct {
	// Name is the entry module id and the module's identity.
	Name    string   `json:"name" yaml:"name"`
	Include []string `json:"include,omitempty" yaml:"include,omitempty"`
	Exclude []string `json:"exclude,omitempty" yaml:"exclude,omitempty"`
	// Create tells the optimizer the entry module does not exist on disk.
	Create bool `json:"create,omitempty" yaml:"create,omitempty"`
}

// ShimEntry describes how to load a script that does not call define().
type ShimEntry struct {
	Deps    []string `json:"deps,omitempty" yaml:"deps,omitempty"`
	Exports string   `json:"exports,omitempty" yaml:"exports,omitempty"`
}

// UnmarshalJSON accepts both the object form and the array shorthand
// ("mod": ["dep1", "dep2"]) used by RequireJS.
func (s *ShimEntry) UnmarshalJSON(b []byte) error {
	var deps []string
	if err := json.Unmarshal(b, &deps); err == nil {
		*s = ShimEntry{Deps: deps}
		return nil
	}

	type plain ShimEntry
	var p plain
	if err := json.Unmarshal(b, &p); err != nil {
		return fmt.Errorf("shim entry must be an array or an object: %w", err)
	}
	*s = ShimEntry(p)
	return nil
}

// UnmarshalYAML is the YAML counterpart of UnmarshalJSON.
func (s *ShimEntry) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.SequenceNode {
		var deps []string
		if err := value.Decode(&deps); err != nil {
			return err
		}
		*s = ShimEntry{Deps: deps}
		return nil
	}

	type plain ShimEntry
	var p plain
	if err := value.Decode(&p); err != nil {
		return fmt.Errorf("shim entry must be a sequence or a mapping: %w", err)
	}
	*s = ShimEntry(p)
	return nil
}

// StaticConfig is the partial build configuration read from the
// user-supplied config file. On top of the BuildConfig fields it may
// declare bundles, which are expanded into modules from observed traffic.
type StaticConfig struct {
	BuildConfig `yaml:",inline"`

	Bundles []Bundle `json:"bundles,omitempty" yaml:"bundles,omitempty"`
}

// Bundle declares an output module whose contents are the scripts
// observed on the pages matching URLs.
type Bundle struct {
	Name string `json:"name" yaml:"name"`
	// URLs are page path patterns (path.Match syntax) whose script
	// requests belong to this bundle.
	URLs    []string `json:"urls" yaml:"urls"`
	Exclude []string `json:"exclude,omitempty" yaml:"exclude,omitempty"`
}
