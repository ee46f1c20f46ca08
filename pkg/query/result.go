package query

import (
	"sort"

	"github.com/herodex/herodex/internal/document"
	"github.com/herodex/herodex/pkg/catalog"
)

// Wildcard requests all fields: projection short-circuits and returns the
// original record unchanged.
const Wildcard = "*"

// ListProjection is the minimal public shape for list views.
var ListProjection = []string{
	catalog.PathID,
	catalog.PathName,
	catalog.PathImages,
	catalog.PathRace,
}

// Meta carries pagination metadata for a result page.
type Meta struct {
	// Total is the number of records matching the filters.
	Total int `json:"total"`
	// Page is the resolved page number, clamped into [1, Pages].
	Page int `json:"page"`
	// Limit is the page size.
	Limit int `json:"limit"`
	// Pages is the total page count, at least 1.
	Pages int `json:"pages"`
}

// Result is the response envelope for collection queries.
type Result struct {
	Data []catalog.Record `json:"data"`
	Meta Meta             `json:"meta"`
}

// Engine executes query specs against an immutable collection snapshot.
type Engine struct {
	collection catalog.Collection
}

// NewEngine creates an Engine over the given collection. The collection must
// not be mutated afterwards; every request is a pure read over the snapshot.
func NewEngine(collection catalog.Collection) *Engine {
	return &Engine{collection: collection}
}

// Size returns the number of records in the underlying collection.
func (e *Engine) Size() int {
	return len(e.collection)
}

// Find returns the record with the given id or slug, or nil.
func (e *Engine) Find(key string) catalog.Record {
	return e.collection.Find(key)
}

// Run applies the spec's filters, sort and pagination, projecting each
// record of the resulting page onto the given field whitelist.
// A nil fields slice means ListProjection; a slice containing Wildcard
// returns records unprojected.
func (e *Engine) Run(spec Spec, fields []string) Result {
	if fields == nil {
		fields = ListProjection
	}
	if spec.Limit < 1 {
		spec.Limit = DefaultLimit
	}
	if spec.Page < 1 {
		spec.Page = 1
	}

	matched := e.filter(buildPredicate(spec))
	if spec.SortKey != "" {
		sortRecords(matched, spec.SortKey, spec.Order)
	}

	total := len(matched)
	pages := (total + spec.Limit - 1) / spec.Limit
	if pages < 1 {
		pages = 1
	}
	page := spec.Page
	if page > pages {
		page = pages
	}

	start := (page - 1) * spec.Limit
	end := start + spec.Limit
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	data := make([]catalog.Record, 0, end-start)
	for _, rec := range matched[start:end] {
		data = append(data, project(rec, fields))
	}

	return Result{
		Data: data,
		Meta: Meta{Total: total, Page: page, Limit: spec.Limit, Pages: pages},
	}
}

// filter returns the matching records in their original relative order,
// never mutating the source collection.
func (e *Engine) filter(match predicate) []catalog.Record {
	matched := make([]catalog.Record, 0, len(e.collection))
	for _, rec := range e.collection {
		if match(rec) {
			matched = append(matched, rec)
		}
	}
	return matched
}

// sortRecords stably sorts records in place by the given attribute path.
// A record missing the sort key always sorts after one that has it,
// regardless of direction; ties preserve the filtered order.
func sortRecords(records []catalog.Record, key, order string) {
	coll := newCollator()
	desc := order == OrderDesc

	sort.SliceStable(records, func(i, j int) bool {
		a, aOK := document.Get(records[i], key)
		b, bOK := document.Get(records[j], key)

		switch {
		case !aOK && !bOK:
			return false
		case !aOK:
			return false
		case !bOK:
			return true
		}

		cmp := compareValues(coll, a, b)
		if desc {
			return cmp > 0
		}
		return cmp < 0
	})
}

// project rebuilds a record containing only the whitelisted paths.
func project(rec catalog.Record, fields []string) catalog.Record {
	for _, field := range fields {
		if field == Wildcard {
			return rec
		}
	}

	out := make(catalog.Record, len(fields))
	for _, field := range fields {
		if val, ok := document.Get(rec, field); ok {
			document.Set(out, field, val)
		}
	}
	return out
}
