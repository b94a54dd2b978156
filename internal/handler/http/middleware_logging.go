package http

import (
	"net/http"
	"strings"
	"time"

	"github.com/MKhiriev/rjs-config-gen/internal/logger"
)

func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		start := time.Now()

		uri := r.RequestURI
		method := r.Method
		proxied := r.URL.Path != reservedPrefix && !strings.HasPrefix(r.URL.Path, reservedPrefix+"/")

		lw := &responseWriter{
			ResponseWriter: w,
		}

		next.ServeHTTP(lw, r)

		duration := time.Since(start)

		log.Info().
			Str("uri", uri).
			Str("method", method).
			Bool("proxied", proxied).
			Int("status", lw.status).
			Dur("duration", duration).
			Int("size", lw.size).
			Send()
	})
}
