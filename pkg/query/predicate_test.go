package query

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/herodex/herodex/pkg/catalog"
)

func testCollection() catalog.Collection {
	return catalog.Collection{
		{
			"id":   "1",
			"name": "Spider-Man",
			"slug": "spider-man",
			"powerstats": map[string]any{
				"strength": float64(55),
				"power":    float64(74),
			},
			"appearance": map[string]any{"race": "Human"},
			"biography": map[string]any{
				"fullName":  "Peter Parker",
				"publisher": "Marvel Comics",
			},
		},
		{
			"id":   "2",
			"name": "Cyborg",
			"slug": "cyborg",
			"powerstats": map[string]any{
				"strength": "100",
				"power":    float64(100),
			},
			"appearance": map[string]any{"race": "Human / Cyborg"},
			"biography": map[string]any{
				"fullName":  "Victor Stone",
				"publisher": "DC Comics",
			},
		},
		{
			"id":   "3",
			"name": "Groot",
			"slug": "groot",
			"powerstats": map[string]any{
				"strength": float64(100),
				"power":    float64(89),
			},
			"appearance": map[string]any{"race": "Flora Colossus"},
			"biography": map[string]any{
				"publisher": "Marvel Comics",
			},
			"abilities": []any{"Regeneration", "Camouflage"},
		},
		{
			"id":        "4",
			"name":      "Enigma",
			"slug":      "enigma",
			"biography": map[string]any{"publisher": "DC Comics"},
		},
	}
}

func matchIDs(t *testing.T, spec Spec) []string {
	t.Helper()
	match := buildPredicate(spec)
	var ids []string
	for _, rec := range testCollection() {
		if match(rec) {
			ids = append(ids, rec.ID())
		}
	}
	return ids
}

func specFor(raw string) Spec {
	values, _ := url.ParseQuery(raw)
	return ParseSpec(values, 0)
}

func TestPredicate_NoInputMatchesAll(t *testing.T) {
	assert.Equal(t, []string{"1", "2", "3", "4"}, matchIDs(t, specFor("")))
}

func TestPredicate_Search(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{"name substring case-insensitive", "q=man", []string{"1"}},
		{"full name", "q=victor", []string{"2"}},
		{"publisher", "q=marvel", []string{"1", "3"}},
		{"slug", "q=spider-man", []string{"1"}},
		{"no hit", "q=zzz", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, matchIDs(t, specFor(tt.raw)))
		})
	}
}

func TestPredicate_RaceFilter(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{"single value", "race=human", []string{"1", "2"}},
		{"multi-valued attribute", "race=cyborg", []string{"2"}},
		{"case and spacing", "race=%20CYBORG%20", []string{"2"}},
		{"several wanted values", "race=flora%20colossus,cyborg", []string{"2", "3"}},
		{"missing attribute never matches", "race=unknown", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, matchIDs(t, specFor(tt.raw)))
		})
	}
}

func TestPredicate_RaceFilterPlaceholderAttribute(t *testing.T) {
	// "N/A" contains the separator but is a placeholder, not the two race
	// values "N" and "A"; it must contribute nothing to race matching.
	rec := catalog.Record{
		"id":         "9",
		"appearance": map[string]any{"race": "N/A"},
	}

	for _, wanted := range []string{"n", "a", "n/a"} {
		match := buildPredicate(Spec{Races: []string{wanted}})
		assert.False(t, match(rec), "race=%s must not match placeholder", wanted)
	}
}

func TestPredicate_GenericFilters(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{"numeric equality against number", "powerstats.power=100", []string{"2"}},
		{"numeric equality against numeric string", "powerstats.strength=100", []string{"2", "3"}},
		{"substring fallback", "biography.publisher=dc", []string{"2", "4"}},
		{"collection membership", "abilities=Regeneration", []string{"3"}},
		{"collection membership is exact", "abilities=Regen", nil},
		{"unresolved path never matches", "connections.groupAffiliation=x", nil},
		{"all filters must hold", "powerstats.strength=100&biography.publisher=marvel", []string{"3"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, matchIDs(t, specFor(tt.raw)))
		})
	}
}

func TestPredicate_BlankStringIsNotNumeric(t *testing.T) {
	// A record holding "" for the filtered attribute must not match a
	// numeric 0 via coercion; the comparison falls back to text.
	match := buildPredicate(specFor("powerstats.strength=0"))
	rec := catalog.Record{
		"id":         "5",
		"powerstats": map[string]any{"strength": ""},
	}
	assert.False(t, match(rec))
}

func TestPredicate_WhereExpression(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{"boolean expression", "where=powerstats.power%20%3E%2080", []string{"2", "3"}},
		{"missing fields are nil", "where=powerstats%20%3D%3D%20nil", []string{"4"}},
		{"non-boolean matches nothing", "where=name", nil},
		{"compile failure matches nothing", "where=%28%28%28", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, matchIDs(t, specFor(tt.raw)))
		})
	}
}

func TestPredicate_Idempotent(t *testing.T) {
	match := buildPredicate(specFor("race=human&q=man"))

	first := make([]catalog.Record, 0)
	for _, rec := range testCollection() {
		if match(rec) {
			first = append(first, rec)
		}
	}

	second := make([]catalog.Record, 0)
	for _, rec := range first {
		if match(rec) {
			second = append(second, rec)
		}
	}

	assert.Equal(t, first, second)
}
