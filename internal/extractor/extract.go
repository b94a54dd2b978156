package extractor

import (
	"encoding/json"

	"github.com/MKhiriev/rjs-config-gen/models"
)

// Extract turns a captured loader registration snippet, for example
//
//	require.config({ baseUrl: "/js", paths: { jquery: "lib/jquery" } });
//
// into a [models.ClientConfig]. Options the loader knows but the build
// does not use (waitSeconds, urlArgs, ...) are dropped.
func Extract(src []byte) (models.ClientConfig, error) {
	tree, err := Parse(src)
	if err != nil {
		return models.ClientConfig{}, err
	}

	normalizePaths(tree)

	raw, err := json.Marshal(tree)
	if err != nil {
		return models.ClientConfig{}, newSyntaxError(src, 0, ErrInvalidArgument, "%v", err)
	}

	var cfg models.ClientConfig
	if err = json.Unmarshal(raw, &cfg); err != nil {
		return models.ClientConfig{}, newSyntaxError(src, 0, ErrInvalidArgument, "unexpected config shape: %v", err)
	}

	return cfg, nil
}

// normalizePaths resolves fallback arrays in "paths" ({jquery: [cdn, local]})
// to their last entry, the local copy the optimizer can read. Null entries
// carry no alias and are dropped.
func normalizePaths(tree map[string]any) {
	paths, ok := tree["paths"].(map[string]any)
	if !ok {
		return
	}

	for k, v := range paths {
		if list, ok := v.([]any); ok && len(list) > 0 {
			v = list[len(list)-1]
		}
		if v == nil {
			delete(paths, k)
			continue
		}
		paths[k] = v
	}
}
