// Package document provides dotted-path access to schemaless records.
package document

import (
	"strings"

	"github.com/ohler55/ojg/jp"
)

// Get resolves a dot-separated path (e.g. "powerstats.power") against a
// nested document. It returns (nil, false) when any intermediate group is
// absent or the path does not parse; resolution never errors.
func Get(doc map[string]any, path string) (any, bool) {
	if path == "" {
		return nil, false
	}

	expr, err := jp.ParseString(path)
	if err != nil {
		return nil, false
	}

	results := expr.Get(doc)
	if len(results) == 0 {
		return nil, false
	}
	return results[0], true
}

// Set writes value at a dot-separated path inside target, creating
// intermediate maps as needed. A non-map value found along the way is
// overwritten by a fresh map so the write always succeeds.
func Set(target map[string]any, path string, value any) {
	if path == "" {
		return
	}

	keys := strings.Split(path, ".")
	node := target
	for _, key := range keys[:len(keys)-1] {
		child, ok := node[key].(map[string]any)
		if !ok {
			child = make(map[string]any)
			node[key] = child
		}
		node = child
	}
	node[keys[len(keys)-1]] = value
}
