package synth

import (
	"net/url"
	"path"
	"strings"

	"github.com/MKhiriev/rjs-config-gen/models"
)

// ExpandBundles returns the static file's build config with every declared
// bundle turned into a module. A bundle's include list holds, in first-seen
// order, the ids of the scripts requested by pages whose path matches one
// of the bundle's URL patterns. Script ids are request paths relative to
// baseURL with the .js suffix removed; scripts outside baseURL are skipped.
//
// Bundle modules come after the file's own modules, so an explicit module
// with the same name takes precedence.
func ExpandBundles(static models.StaticConfig, records []models.RequestRecord, baseURL string) models.BuildConfig {
	out := static.BuildConfig
	if len(static.Bundles) == 0 {
		return out
	}

	root := basePath(baseURL)
	modules := make([]models.BuildModule, 0, len(static.Modules)+len(static.Bundles))
	modules = append(modules, static.Modules...)

	for _, b := range static.Bundles {
		modules = append(modules, models.BuildModule{
			Name:    b.Name,
			Include: bundleScripts(b, records, root),
			Exclude: cloneStrings(b.Exclude),
			Create:  true,
		})
	}

	out.Modules = modules
	return out
}

func bundleScripts(b models.Bundle, records []models.RequestRecord, root string) []string {
	ids := make([]string, 0)
	seen := make(map[string]struct{})

	for _, rec := range records {
		if rec.Method != "" && rec.Method != "GET" {
			continue
		}
		id, ok := moduleID(rec.Path, root)
		if !ok || !referredBy(rec.Referrer, b.URLs) {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}

	return ids
}

// moduleID maps a script request path to its loader module id.
func moduleID(reqPath, root string) (string, bool) {
	if !strings.HasSuffix(reqPath, ".js") || !strings.HasPrefix(reqPath, root) {
		return "", false
	}

	id := strings.TrimSuffix(strings.TrimPrefix(reqPath, root), ".js")
	if id == "" {
		return "", false
	}
	return id, true
}

func referredBy(referrer string, patterns []string) bool {
	if referrer == "" {
		return false
	}

	p := referrer
	if u, err := url.Parse(referrer); err == nil {
		p = u.Path
	}
	if p == "" {
		p = "/"
	}

	for _, pattern := range patterns {
		if ok, _ := path.Match(pattern, p); ok {
			return true
		}
	}
	return false
}

// basePath returns the path component of baseURL with a trailing slash.
func basePath(baseURL string) string {
	p := baseURL
	if u, err := url.Parse(baseURL); err == nil {
		p = u.Path
	}
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	if !strings.HasSuffix(p, "/") {
		p += "/"
	}
	return p
}
