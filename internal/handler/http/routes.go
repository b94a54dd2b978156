package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// reservedPrefix is the path namespace served by the proxy itself.
// Nothing under it is ever forwarded to the origin.
const reservedPrefix = "/__bs"

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	bs := chi.NewRouter()
	bs.Use(withGZip)
	bs.Group(func(r chi.Router) {
		r.Use(withETag)
		r.Get("/config.json", h.clientConfig)
		r.Get("/seed.json", h.seed)
		r.Get("/build.json", h.build)
	})
	bs.Get("/loaders.js", h.loaders)
	bs.Post("/post", h.capture)
	bs.MethodNotAllowed(CheckHTTPMethod(bs))

	router.Mount(reservedPrefix, bs)

	// everything else goes to the origin
	router.With(h.withRecording).Handle("/*", h.proxy)

	return router
}
