// Package json reads and writes track catalogs as JSON files.
package json

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/vibecod3rs/vibe"
)

// envelope is the v1 wire format for a track catalog.
type envelope struct {
	Version int        `json:"version"`
	Tracks  []trackDTO `json:"tracks"`
}

// trackDTO is the JSON representation of a Track.
type trackDTO struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Category    string `json:"category"`
	Tag         string `json:"tag"`
	Image       string `json:"image,omitempty"`
	Description string `json:"description"`
}

// MarshalCatalog serializes a Catalog to JSON in v1 envelope format.
func MarshalCatalog(c vibe.Catalog) ([]byte, error) {
	tracks := c.Tracks()
	env := envelope{
		Version: 1,
		Tracks:  make([]trackDTO, len(tracks)),
	}
	for i, t := range tracks {
		env.Tracks[i] = trackDTO(t)
	}
	return json.MarshalIndent(env, "", "  ")
}

// UnmarshalCatalog deserializes a Catalog from JSON in v1 envelope format.
// The result is validated.
func UnmarshalCatalog(data []byte) (vibe.Catalog, error) {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return vibe.Catalog{}, fmt.Errorf("unmarshal envelope: %w", err)
	}
	if env.Version != 1 {
		return vibe.Catalog{}, fmt.Errorf("unsupported envelope version: %d", env.Version)
	}
	tracks := make([]vibe.Track, len(env.Tracks))
	for i, dto := range env.Tracks {
		tracks[i] = vibe.Track(dto)
	}
	c := vibe.NewCatalog(tracks)
	if err := c.Validate(); err != nil {
		return vibe.Catalog{}, err
	}
	return c, nil
}

// SaveCatalog writes a Catalog to a JSON file, creating parent directories
// as needed.
func SaveCatalog(path string, c vibe.Catalog) error {
	data, err := MarshalCatalog(c)
	if err != nil {
		return fmt.Errorf("marshal: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create directories: %w", err)
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}

// LoadCatalog reads a Catalog from a JSON file.
func LoadCatalog(path string) (vibe.Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return vibe.Catalog{}, fmt.Errorf("read file: %w", err)
	}
	return UnmarshalCatalog(data)
}
