// Package synth builds the canonical optimizer config out of its three
// sources. Everything here is a pure function of its arguments.
package synth

import (
	"github.com/MKhiriev/rjs-config-gen/models"
)

// Merge combines the sources in ascending precedence: defaults, then the
// static file, then the captured client config.
//
//   - baseUrl and optimize: the highest source that sets a usable value wins.
//   - paths, map and shim: keys are unioned; on collision the higher source
//     wins for that key. map is merged per outer and then per inner key.
//   - deps and modules: concatenated in precedence order, keeping the first
//     occurrence of each id (module identity is its name).
//
// Merge never fails and never returns nil collections. The result shares
// no memory with the arguments.
func Merge(defaults, file models.BuildConfig, client models.ClientConfig) models.BuildConfig {
	out := models.BuildConfig{
		BaseURL:  firstNonEmpty(client.BaseURL, file.BaseURL, defaults.BaseURL),
		Deps:     mergeDeps(defaults.Deps, file.Deps, client.Deps),
		Paths:    mergePaths(defaults.Paths, file.Paths, client.Paths),
		Map:      mergeMap(defaults.Map, file.Map, client.Map),
		Modules:  mergeModules(defaults.Modules, file.Modules),
		Optimize: mergeOptimize(defaults.Optimize, file.Optimize),
		Shim:     mergeShim(defaults.Shim, file.Shim, client.Shim),
	}

	return out
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// mergeOptimize takes sources in ascending precedence. Unknown modes are
// skipped in favour of the next lower source.
func mergeOptimize(sources ...models.Optimize) models.Optimize {
	for i := len(sources) - 1; i >= 0; i-- {
		if sources[i].Valid() {
			return sources[i]
		}
	}
	return models.OptimizeNone
}

func mergeDeps(sources ...[]string) []string {
	out := make([]string, 0)
	seen := make(map[string]struct{})
	for _, src := range sources {
		for _, dep := range src {
			if _, ok := seen[dep]; ok {
				continue
			}
			seen[dep] = struct{}{}
			out = append(out, dep)
		}
	}
	return out
}

func mergeModules(sources ...[]models.BuildModule) []models.BuildModule {
	out := make([]models.BuildModule, 0)
	seen := make(map[string]struct{})
	for _, src := range sources {
		for _, m := range src {
			if _, ok := seen[m.Name]; ok {
				continue
			}
			seen[m.Name] = struct{}{}
			out = append(out, cloneModule(m))
		}
	}
	return out
}

func mergePaths(sources ...map[string]string) map[string]string {
	out := make(map[string]string)
	for _, src := range sources {
		for k, v := range src {
			out[k] = v
		}
	}
	return out
}

func mergeMap(sources ...map[string]map[string]string) map[string]map[string]string {
	out := make(map[string]map[string]string)
	for _, src := range sources {
		for module, aliases := range src {
			inner, ok := out[module]
			if !ok {
				inner = make(map[string]string, len(aliases))
				out[module] = inner
			}
			for alias, target := range aliases {
				inner[alias] = target
			}
		}
	}
	return out
}

// mergeShim replaces colliding entries whole: deps and exports of one shim
// describe the same script and are not combined across sources.
func mergeShim(sources ...map[string]models.ShimEntry) map[string]models.ShimEntry {
	out := make(map[string]models.ShimEntry)
	for _, src := range sources {
		for k, v := range src {
			out[k] = models.ShimEntry{
				Deps:    cloneStrings(v.Deps),
				Exports: v.Exports,
			}
		}
	}
	return out
}

func cloneModule(m models.BuildModule) models.BuildModule {
	m.Include = cloneStrings(m.Include)
	m.Exclude = cloneStrings(m.Exclude)
	return m
}

func cloneStrings(s []string) []string {
	if s == nil {
		return nil
	}
	out := make([]string, len(s))
	copy(out, s)
	return out
}
