package cubegen

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/goccy/go-json"
)

const excerptLength = 500

var jsonObject = regexp.MustCompile(`(?s)\{.*\}`)

var aliases = []struct {
	from string
	to   string
}{
	{from: "cube_name", to: "name"},
	{from: "sql_query", to: "query"},
}

// Normalize extracts the JSON object from raw model output and rewrites
// the known deviations into the expected shape. It never adds fields that
// are missing.
func Normalize(raw string) (map[string]any, error) {
	candidate := jsonObject.FindString(raw)
	if candidate == "" {
		candidate = raw
	}

	result, err := parseObject(candidate)
	if err != nil {
		return nil, &Error{
			Kind:    ParseFailure,
			Excerpt: truncate(raw, excerptLength),
			Err:     err,
		}
	}

	remapAliases(result)

	for _, field := range []string{"dimensions", "measures"} {
		if v, ok := result[field]; ok {
			result[field] = coerceFieldNames(v)
		}
	}

	return result, nil
}

func parseObject(s string) (map[string]any, error) {
	var result map[string]any

	err := json.Unmarshal([]byte(s), &result)
	if err == nil && result != nil {
		return result, nil
	}

	repaired := strings.ReplaceAll(s, "'", `"`)

	result = nil
	if rerr := json.Unmarshal([]byte(repaired), &result); rerr != nil {
		return nil, rerr
	}

	if result == nil {
		return nil, fmt.Errorf("expected a JSON object, got null")
	}

	return result, nil
}

func remapAliases(m map[string]any) {
	for _, a := range aliases {
		v, ok := m[a.from]
		if !ok {
			continue
		}

		if _, exists := m[a.to]; exists {
			continue
		}

		m[a.to] = v
		delete(m, a.from)
	}
}

// coerceFieldNames reduces a sequence of objects to their names. Sequences
// whose first element is not an object are returned unchanged.
func coerceFieldNames(v any) any {
	items, ok := v.([]any)
	if !ok || len(items) == 0 {
		return v
	}

	if _, ok := items[0].(map[string]any); !ok {
		return v
	}

	out := make([]any, len(items))
	for i, item := range items {
		out[i] = fieldName(item)
	}

	return out
}

func fieldName(item any) any {
	switch it := item.(type) {
	case map[string]any:
		if name, ok := it["name"]; ok {
			return name
		}

		b, err := json.Marshal(it)
		if err != nil {
			return fmt.Sprint(it)
		}

		return string(b)
	case string:
		return it
	}

	return fmt.Sprint(item)
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}

	return string(r[:n])
}
