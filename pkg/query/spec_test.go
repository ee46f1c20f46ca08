package query

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseSpec_Defaults(t *testing.T) {
	spec := ParseSpec(url.Values{}, 0)

	assert.Equal(t, 1, spec.Page)
	assert.Equal(t, DefaultLimit, spec.Limit)
	assert.Equal(t, OrderAsc, spec.Order)
	assert.Empty(t, spec.Term)
	assert.Empty(t, spec.Races)
	assert.Empty(t, spec.SortKey)
	assert.Empty(t, spec.Filters)
}

func TestParseSpec_MalformedNumbersFallBack(t *testing.T) {
	tests := []struct {
		name  string
		page  string
		limit string
	}{
		{"not numbers", "abc", "xyz"},
		{"zero", "0", "0"},
		{"negative", "-3", "-10"},
		{"float", "1.5", "2.5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec := ParseSpec(url.Values{"page": {tt.page}, "limit": {tt.limit}}, 0)
			assert.Equal(t, 1, spec.Page)
			assert.Equal(t, DefaultLimit, spec.Limit)
		})
	}
}

func TestParseSpec_ValidValues(t *testing.T) {
	spec := ParseSpec(url.Values{
		"page":  {"3"},
		"limit": {"50"},
		"q":     {"  man  "},
		"sort":  {"powerstats.power"},
		"order": {"DESC"},
	}, 0)

	assert.Equal(t, 3, spec.Page)
	assert.Equal(t, 50, spec.Limit)
	assert.Equal(t, "man", spec.Term)
	assert.Equal(t, "powerstats.power", spec.SortKey)
	assert.Equal(t, OrderDesc, spec.Order)
}

func TestParseSpec_CustomDefaultLimit(t *testing.T) {
	spec := ParseSpec(url.Values{}, 50)
	assert.Equal(t, 50, spec.Limit)

	spec = ParseSpec(url.Values{"limit": {"5"}}, 50)
	assert.Equal(t, 5, spec.Limit)
}

func TestParseSpec_UnknownOrderFallsBackToAscending(t *testing.T) {
	spec := ParseSpec(url.Values{"order": {"sideways"}}, 0)
	assert.Equal(t, OrderAsc, spec.Order)
}

func TestParseSpec_RaceList(t *testing.T) {
	spec := ParseSpec(url.Values{"race": {" Human ,, CYBORG ,"}}, 0)
	assert.Equal(t, []string{"human", "cyborg"}, spec.Races)
}

func TestParseSpec_ReservedKeysNeverBecomeFilters(t *testing.T) {
	spec := ParseSpec(url.Values{
		"page":                {"2"},
		"limit":               {"5"},
		"sort":                {"name"},
		"order":               {"desc"},
		"q":                   {"man"},
		"race":                {"human"},
		"where":               {"true"},
		"powerstats.strength": {"100"},
	}, 0)

	assert.Equal(t, map[string]string{"powerstats.strength": "100"}, spec.Filters)
}
