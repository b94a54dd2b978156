package models

// ClientConfig is the structured form of one captured loader registration
// call (require.config({...})). It is partial by nature: options the
// browser did not emit stay empty, defaulting happens in the synthesizer.
type ClientConfig struct {
	// BaseURL is the loader's base path for module lookups.
	BaseURL string `json:"baseUrl,omitempty"`

	// Deps are modules loaded as soon as the loader is configured.
	Deps []string `json:"deps"`

	// Paths maps module ids to path aliases.
	Paths map[string]string `json:"paths"`

	// Map holds per-module path remapping: outer key is the requesting
	// module ("*" for all), inner map is alias → real module id.
	Map map[string]map[string]string `json:"map"`

	// Shim declares non-AMD scripts.
	Shim map[string]ShimEntry `json:"shim"`

	// Config carries per-module configuration passed through module.config().
	// It is exposed to the browser but does not take part in synthesis.
	Config map[string]any `json:"config"`
}

// Envelope returns a copy of c in which every collection is non-nil, so
// that the JSON form always carries the full set of keys.
func (c ClientConfig) Envelope() ClientConfig {
	if c.Deps == nil {
		c.Deps = []string{}
	}
	if c.Paths == nil {
		c.Paths = map[string]string{}
	}
	if c.Map == nil {
		c.Map = map[string]map[string]string{}
	}
	if c.Shim == nil {
		c.Shim = map[string]ShimEntry{}
	}
	if c.Config == nil {
		c.Config = map[string]any{}
	}
	return c
}
