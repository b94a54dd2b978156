package http

import (
	"net/http"
	"strings"

	"github.com/MKhiriev/rjs-config-gen/internal/utils"
)

// withETag buffers a successful response, tags it with a content hash and
// answers 304 Not Modified when the client already holds that version.
func withETag(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		bw := &bufferedResponseWriter{ResponseWriter: w}
		next.ServeHTTP(bw, r)

		status := bw.statusCode()
		body := bw.buf.Bytes()

		if status != http.StatusOK {
			w.WriteHeader(status)
			w.Write(body)
			return
		}

		etag := utils.ETag(body)
		w.Header().Set("ETag", etag)

		if etagMatches(r.Header.Get("If-None-Match"), etag) {
			w.Header().Del("Content-Type")
			w.WriteHeader(http.StatusNotModified)
			return
		}

		w.WriteHeader(http.StatusOK)
		w.Write(body)
	})
}

// etagMatches reports whether the If-None-Match header value names etag.
// Weak comparison is used, as required for If-None-Match.
func etagMatches(header, etag string) bool {
	if header == "" {
		return false
	}
	for _, candidate := range strings.Split(header, ",") {
		candidate = strings.TrimSpace(candidate)
		if candidate == "*" {
			return true
		}
		if strings.TrimPrefix(candidate, "W/") == etag {
			return true
		}
	}
	return false
}
