// Package catalog holds the in-memory character collection and its loader.
package catalog

import (
	"fmt"

	"github.com/herodex/herodex/internal/document"
)

// Well-known attribute paths within a Record.
const (
	PathID        = "id"
	PathName      = "name"
	PathSlug      = "slug"
	PathRace      = "appearance.race"
	PathFullName  = "biography.fullName"
	PathPublisher = "biography.publisher"
	PathImages    = "images"
)

// RaceSeparator delimits multiple values inside the race attribute
// (e.g. "Human / Cyborg").
const RaceSeparator = "/"

// Record is one catalog entity: a schemaless nested document with
// attribute groups such as powerstats, appearance, biography and images.
type Record map[string]any

// ID returns the record's identifier as text, or "" when absent.
func (r Record) ID() string {
	return r.stringAt(PathID)
}

// Name returns the record's display name, or "" when absent.
func (r Record) Name() string {
	return r.stringAt(PathName)
}

// Slug returns the record's URL-friendly identifier, or "" when absent.
func (r Record) Slug() string {
	return r.stringAt(PathSlug)
}

func (r Record) stringAt(path string) string {
	val, ok := document.Get(r, path)
	if !ok || val == nil {
		return ""
	}
	if s, isString := val.(string); isString {
		return s
	}
	return fmt.Sprintf("%v", val)
}

// Collection is the ordered set of all records, loaded once at startup and
// treated as immutable for the lifetime of the process.
type Collection []Record

// Find returns the first record whose id or slug equals key.
// Returns nil when no record matches.
func (c Collection) Find(key string) Record {
	for _, rec := range c {
		if rec.ID() == key || rec.Slug() == key {
			return rec
		}
	}
	return nil
}
