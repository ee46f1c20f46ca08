// Package query turns loose request parameters into deterministic, paginated
// result pages over the in-memory catalog.
package query

import (
	"net/url"
	"strconv"
	"strings"
)

// Reserved query parameter names. Everything else becomes a generic
// path→value equality filter.
const (
	ParamPage  = "page"
	ParamLimit = "limit"
	ParamSort  = "sort"
	ParamOrder = "order"
	ParamTerm  = "q"
	ParamRace  = "race"
	ParamWhere = "where"
)

// Sort directions. Anything other than OrderDesc falls back to ascending.
const (
	OrderAsc  = "asc"
	OrderDesc = "desc"
)

// DefaultLimit is the page size used when the request carries none or an
// unparsable one.
const DefaultLimit = 20

var reservedParams = map[string]bool{
	ParamPage:  true,
	ParamLimit: true,
	ParamSort:  true,
	ParamOrder: true,
	ParamTerm:  true,
	ParamRace:  true,
	ParamWhere: true,
}

// Spec is the parsed request driving filter, sort and pagination.
type Spec struct {
	// Page is the requested 1-based page number.
	Page int
	// Limit is the page size.
	Limit int
	// Term is the free-text search term, empty when absent.
	Term string
	// Races are the wanted race values, case-normalized.
	Races []string
	// SortKey is the attribute path to sort by, empty for no sort.
	SortKey string
	// Order is OrderAsc or OrderDesc.
	Order string
	// Where is an optional boolean filter expression.
	Where string
	// Filters maps attribute paths to expected values, built from all
	// non-reserved query parameters.
	Filters map[string]string
}

// ParseSpec builds a Spec from raw query parameters. Malformed page and limit
// values fall back to their defaults; no input is ever rejected.
// A defaultLimit of zero or less falls back to DefaultLimit.
func ParseSpec(values url.Values, defaultLimit int) Spec {
	if defaultLimit <= 0 {
		defaultLimit = DefaultLimit
	}
	spec := Spec{
		Page:    1,
		Limit:   defaultLimit,
		Order:   OrderAsc,
		Filters: make(map[string]string),
	}

	if n, ok := parsePositiveInt(values.Get(ParamPage)); ok {
		spec.Page = n
	}
	if n, ok := parsePositiveInt(values.Get(ParamLimit)); ok {
		spec.Limit = n
	}

	spec.Term = strings.TrimSpace(values.Get(ParamTerm))
	spec.Races = splitRaces(values.Get(ParamRace))
	spec.SortKey = strings.TrimSpace(values.Get(ParamSort))
	if strings.EqualFold(strings.TrimSpace(values.Get(ParamOrder)), OrderDesc) {
		spec.Order = OrderDesc
	}
	spec.Where = strings.TrimSpace(values.Get(ParamWhere))

	for key, vals := range values {
		if !reservedParams[key] && len(vals) > 0 {
			spec.Filters[key] = vals[0]
		}
	}

	return spec
}

// splitRaces parses the raw comma-separated race parameter into a
// case-normalized list, discarding empty tokens.
func splitRaces(raw string) []string {
	if raw == "" {
		return nil
	}
	var races []string
	for _, token := range strings.Split(raw, ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		races = append(races, fold(token))
	}
	return races
}

// parsePositiveInt returns a parsed int only when the value is a valid
// positive integer.
func parsePositiveInt(v string) (int, bool) {
	if v == "" {
		return 0, false
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}
