package http

import (
	_ "embed"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/MKhiriev/rjs-config-gen/internal/logger"
	"github.com/MKhiriev/rjs-config-gen/internal/utils"
)

// maxCaptureBytes caps the body of a capture request.
const maxCaptureBytes = 1 << 20

//go:embed assets/loaders.js
var loadersJS []byte

func (h *Handler) clientConfig(w http.ResponseWriter, r *http.Request) {
	cfg := h.services.CaptureService.Latest(r.Context())

	if _, err := utils.WriteJSON(w, cfg, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing client config")
	}
}

func (h *Handler) seed(w http.ResponseWriter, r *http.Request) {
	data := h.services.SeedService.Snapshot(r.Context())

	if _, err := utils.WriteJSON(w, data, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing seed data")
	}
}

func (h *Handler) build(w http.ResponseWriter, r *http.Request) {
	cfg := h.services.BuildService.Build(r.Context())

	if _, err := utils.WriteJSON(w, cfg, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing build config")
	}
}

func (h *Handler) loaders(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/javascript")
	w.Header().Set("Cache-Control", "no-cache")
	w.Write(loadersJS)
}

func (h *Handler) capture(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxCaptureBytes))
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			err = fmt.Errorf("%w: %w", ErrCaptureTooLarge, err)
		} else {
			err = fmt.Errorf("%w: %w", ErrReadingBody, err)
		}
		status := statusFromError(err)
		log.Err(err).Int("status", status).Msg("error reading capture body")
		http.Error(w, http.StatusText(status), status)
		return
	}

	if _, err = h.services.CaptureService.Capture(r.Context(), body); err != nil {
		status := statusFromError(err)
		log.Err(err).Int("status", status).Msg("capture rejected")
		http.Error(w, err.Error(), status)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
