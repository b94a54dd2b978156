package synth

import (
	"github.com/MKhiriev/rjs-config-gen/internal/sources"
	"github.com/MKhiriev/rjs-config-gen/models"
)

// Synthesize produces the build config for the current state: the
// defaults, the static file with its bundles expanded from records, and
// the latest capture. The capture's baseUrl, if any, anchors bundle
// expansion; otherwise the file's is used.
func Synthesize(static models.StaticConfig, records []models.RequestRecord, client models.ClientConfig) models.BuildConfig {
	baseURL := firstNonEmpty(client.BaseURL, static.BaseURL)
	file := ExpandBundles(static, records, baseURL)
	return Merge(sources.Defaults(), file, client)
}
