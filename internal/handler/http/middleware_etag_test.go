package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/rjs-config-gen/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithETag(t *testing.T) {
	body := `{"deps":[]}`
	etag := utils.ETag([]byte(body))

	tests := []struct {
		name        string
		status      int
		ifNoneMatch string
		wantStatus  int
		wantBody    string
		wantETag    bool
	}{
		{name: "first request", status: http.StatusOK, wantStatus: http.StatusOK, wantBody: body, wantETag: true},
		{name: "matching tag", status: http.StatusOK, ifNoneMatch: etag, wantStatus: http.StatusNotModified, wantETag: true},
		{name: "weak matching tag", status: http.StatusOK, ifNoneMatch: "W/" + etag, wantStatus: http.StatusNotModified, wantETag: true},
		{name: "tag in a list", status: http.StatusOK, ifNoneMatch: `"a", ` + etag, wantStatus: http.StatusNotModified, wantETag: true},
		{name: "wildcard", status: http.StatusOK, ifNoneMatch: "*", wantStatus: http.StatusNotModified, wantETag: true},
		{name: "stale tag", status: http.StatusOK, ifNoneMatch: `"stale"`, wantStatus: http.StatusOK, wantBody: body, wantETag: true},
		{name: "error responses are not tagged", status: http.StatusInternalServerError, ifNoneMatch: etag, wantStatus: http.StatusInternalServerError, wantBody: body},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := withETag(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				w.Write([]byte(body))
			}))

			req := httptest.NewRequest(http.MethodGet, "/__bs/config.json", nil)
			if tt.ifNoneMatch != "" {
				req.Header.Set("If-None-Match", tt.ifNoneMatch)
			}
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantBody, rr.Body.String())
			if tt.wantETag {
				assert.Equal(t, etag, rr.Header().Get("ETag"))
			} else {
				assert.Empty(t, rr.Header().Get("ETag"))
			}
		})
	}
}

func TestWithETag_ChangesWithBody(t *testing.T) {
	n := 0
	handler := withETag(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n++
		w.Write([]byte{byte('0' + n)})
	}))

	first := httptest.NewRecorder()
	handler.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/__bs/seed.json", nil))
	second := httptest.NewRecorder()
	handler.ServeHTTP(second, httptest.NewRequest(http.MethodGet, "/__bs/seed.json", nil))

	assert.NotEqual(t, first.Header().Get("ETag"), second.Header().Get("ETag"))
}
