package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"gopkg.in/yaml.v3"

	"github.com/herodex/herodex/internal/document"
)

// Common errors for dataset loading.
var (
	ErrFileNotFound     = errors.New("dataset file not found")
	ErrPermissionDenied = errors.New("permission denied")
	ErrInvalidJSON      = errors.New("invalid JSON syntax")
	ErrInvalidYAML      = errors.New("invalid YAML syntax")
	ErrEmptyFile        = errors.New("dataset file is empty")
)

// LoadFromFile reads a Collection from a JSON or YAML dataset file.
// The format is auto-detected from the file extension (.yaml, .yml for YAML,
// otherwise JSON). Every loaded record is normalized: a missing id gets a
// generated UUID and a missing slug is derived from the record name.
func LoadFromFile(path string) (Collection, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		if os.IsPermission(err) {
			return nil, fmt.Errorf("%w: %s", ErrPermissionDenied, path)
		}
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("path is a directory, not a file: %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsPermission(err) {
			return nil, fmt.Errorf("%w: %s", ErrPermissionDenied, path)
		}
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyFile, path)
	}

	ext := strings.ToLower(filepath.Ext(path))
	if ext == ".yaml" || ext == ".yml" {
		return ParseYAML(data)
	}
	return ParseJSON(data)
}

// ParseJSON parses a Collection from JSON data.
func ParseJSON(data []byte) (Collection, error) {
	var records []map[string]any
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}
	return normalize(records), nil
}

// ParseYAML parses a Collection from YAML data.
func ParseYAML(data []byte) (Collection, error) {
	var records []map[string]any
	if err := yaml.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidYAML, err)
	}
	return normalize(records), nil
}

// normalize fills in id and slug for records that lack them, preserving the
// source order of the dataset.
func normalize(records []map[string]any) Collection {
	collection := make(Collection, 0, len(records))
	for _, raw := range records {
		rec := Record(raw)
		if rec.ID() == "" {
			document.Set(rec, PathID, uuid.NewString())
		}
		if rec.Slug() == "" && rec.Name() != "" {
			document.Set(rec, PathSlug, slug.Make(rec.Name()))
		}
		collection = append(collection, rec)
	}
	return collection
}
