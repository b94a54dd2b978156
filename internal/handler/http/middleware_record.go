package http

import (
	"net/http"

	"github.com/MKhiriev/rjs-config-gen/internal/logger"
	"github.com/MKhiriev/rjs-config-gen/models"
)

// withRecording appends every request passing through it to the request log
// before handing it on.
func (h *Handler) withRecording(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec := h.services.SeedService.Record(r.Context(), models.RequestRecord{
			Method:      r.Method,
			Path:        r.URL.Path,
			Query:       r.URL.RawQuery,
			Referrer:    r.Referer(),
			ContentType: r.Header.Get("Content-Type"),
			UserAgent:   r.UserAgent(),
		})

		logger.FromRequest(r).Debug().Uint64("seq", rec.Seq).Str("path", rec.Path).Msg("request recorded")

		next.ServeHTTP(w, r)
	})
}
