package query

// racePlaceholders are tokens that stand for "no value" in source datasets
// and are excluded from race enumeration. Compared case-insensitively.
var racePlaceholders = map[string]bool{
	"-":    true,
	"null": true,
	"n/a":  true,
}

// Races returns the distinct individual race values across the collection:
// each record's race attribute split on the separator, trimmed, with empty
// and placeholder tokens discarded. The result is duplicate-free
// (case-insensitively, keeping the first-seen casing) and sorted with a
// locale-aware collator.
func (e *Engine) Races() []string {
	seen := make(map[string]bool)
	var races []string

	for _, rec := range e.collection {
		for _, race := range recordRaces(rec) {
			folded := fold(race)
			if racePlaceholders[folded] || seen[folded] {
				continue
			}
			seen[folded] = true
			races = append(races, race)
		}
	}

	newCollator().SortStrings(races)
	return races
}
