package store

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/MKhiriev/rjs-config-gen/internal/utils"
	"github.com/MKhiriev/rjs-config-gen/models"
)

// LoadSeed reads a seed file written by a previous session (or by the seed
// endpoint). An empty path yields an empty seed. An http(s) URL is fetched
// instead of opened, so a session can be seeded from another running proxy's
// /__bs/seed.json.
func LoadSeed(path string) (models.SeedData, error) {
	if path == "" {
		return models.SeedData{ReqLog: []models.RequestRecord{}}, nil
	}
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return fetchSeed(path)
	}

	f, err := os.Open(path)
	if err != nil {
		return models.SeedData{}, fmt.Errorf("%w %s: %w", ErrReadingSeed, path, err)
	}
	defer f.Close()

	return ReadSeed(f)
}

func fetchSeed(rawURL string) (models.SeedData, error) {
	resp, err := utils.NewHTTPClient("").R().
		SetHeader("Accept", "application/json").
		Get(rawURL)
	if err != nil {
		return models.SeedData{}, fmt.Errorf("%w %s: %w", ErrReadingSeed, rawURL, err)
	}
	if resp.StatusCode() != http.StatusOK {
		return models.SeedData{}, fmt.Errorf("%w %s: unexpected status %s", ErrReadingSeed, rawURL, resp.Status())
	}

	return ReadSeed(bytes.NewReader(resp.Body()))
}

// ReadSeed decodes a {"req_log": [...]} document. The req_log key is
// required.
func ReadSeed(r io.Reader) (models.SeedData, error) {
	var raw struct {
		ReqLog *[]models.RequestRecord `json:"req_log"`
	}

	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return models.SeedData{}, fmt.Errorf("%w: %w", ErrMalformedSeed, err)
	}
	if raw.ReqLog == nil {
		return models.SeedData{}, fmt.Errorf("%w: missing req_log", ErrMalformedSeed)
	}

	data := models.SeedData{ReqLog: *raw.ReqLog}
	if data.ReqLog == nil {
		data.ReqLog = []models.RequestRecord{}
	}
	return data, nil
}

// EncodeSeed writes data as JSON. A nil log is written as [].
func EncodeSeed(w io.Writer, data models.SeedData) error {
	if data.ReqLog == nil {
		data.ReqLog = []models.RequestRecord{}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

// WriteSeed exports data to path, replacing any existing file.
func WriteSeed(path string, data models.SeedData) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w %s: %w", ErrWritingSeed, path, err)
	}

	if err = EncodeSeed(f, data); err != nil {
		_ = f.Close()
		return fmt.Errorf("%w %s: %w", ErrWritingSeed, path, err)
	}

	if err = f.Close(); err != nil {
		return fmt.Errorf("%w %s: %w", ErrWritingSeed, path, err)
	}
	return nil
}
