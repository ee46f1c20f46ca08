package query

import (
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/herodex/herodex/internal/document"
	"github.com/herodex/herodex/pkg/catalog"
)

// searchPaths are the record attributes scanned by free-text search.
var searchPaths = []string{
	catalog.PathName,
	catalog.PathSlug,
	catalog.PathFullName,
	catalog.PathPublisher,
}

// predicate reports whether a record matches a parsed Spec.
type predicate func(catalog.Record) bool

// buildPredicate combines the search, race, generic-filter and expression
// layers into a single AND predicate. Layers without input match everything.
func buildPredicate(spec Spec) predicate {
	var layers []predicate

	if spec.Term != "" {
		layers = append(layers, searchLayer(spec.Term))
	}
	if len(spec.Races) > 0 {
		layers = append(layers, raceLayer(spec.Races))
	}
	if len(spec.Filters) > 0 {
		layers = append(layers, filterLayer(spec.Filters))
	}
	if spec.Where != "" {
		layers = append(layers, whereLayer(spec.Where))
	}

	return func(rec catalog.Record) bool {
		for _, layer := range layers {
			if !layer(rec) {
				return false
			}
		}
		return true
	}
}

// searchLayer matches records whose searchable fields contain the folded
// term as a substring.
func searchLayer(term string) predicate {
	needle := fold(term)
	return func(rec catalog.Record) bool {
		for _, path := range searchPaths {
			val, ok := document.Get(rec, path)
			if !ok || val == nil {
				continue
			}
			if strings.Contains(fold(textOf(val)), needle) {
				return true
			}
		}
		return false
	}
}

// raceLayer matches records whose own race values intersect the wanted set.
// Records lacking the race attribute never match.
func raceLayer(wanted []string) predicate {
	wantedSet := make(map[string]bool, len(wanted))
	for _, race := range wanted {
		wantedSet[race] = true
	}
	return func(rec catalog.Record) bool {
		for _, race := range recordRaces(rec) {
			if wantedSet[fold(race)] {
				return true
			}
		}
		return false
	}
}

// recordRaces splits a record's race attribute into its individual values,
// trimmed but with original casing. An attribute whose whole value is a
// placeholder (e.g. "N/A", which contains the separator) yields nothing.
func recordRaces(rec catalog.Record) []string {
	val, ok := document.Get(rec, catalog.PathRace)
	if !ok || val == nil {
		return nil
	}
	raw := strings.TrimSpace(textOf(val))
	if racePlaceholders[fold(raw)] {
		return nil
	}
	var races []string
	for _, token := range strings.Split(raw, catalog.RaceSeparator) {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		races = append(races, token)
	}
	return races
}

// filterLayer applies every path→expected equality filter; all must hold.
func filterLayer(filters map[string]string) predicate {
	return func(rec catalog.Record) bool {
		for path, expected := range filters {
			val, ok := document.Get(rec, path)
			if !ok || !valueMatches(val, expected) {
				return false
			}
		}
		return true
	}
}

// valueMatches compares a resolved attribute value against the expected text:
// textual membership for collections, numeric equality when both sides parse
// as numbers, otherwise case-insensitive substring containment.
func valueMatches(actual any, expected string) bool {
	if list, ok := actual.([]any); ok {
		for _, item := range list {
			if textOf(item) == expected {
				return true
			}
		}
		return false
	}

	actualNum, actualIsNum := toNumber(actual)
	expectedNum, expectedIsNum := toNumber(expected)
	if actualIsNum && expectedIsNum {
		return actualNum == expectedNum
	}

	return strings.Contains(fold(textOf(actual)), fold(expected))
}

// whereLayer evaluates an expr boolean expression with the record as its
// environment. Expressions that fail to compile or evaluate, or that yield a
// non-boolean, match nothing.
func whereLayer(source string) predicate {
	program, err := expr.Compile(source, expr.AllowUndefinedVariables())
	return func(rec catalog.Record) bool {
		if err != nil {
			return false
		}
		return runWhere(program, rec)
	}
}

func runWhere(program *vm.Program, rec catalog.Record) bool {
	result, err := expr.Run(program, map[string]any(rec))
	if err != nil {
		return false
	}
	matched, ok := result.(bool)
	return ok && matched
}
