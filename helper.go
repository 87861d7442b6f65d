package clientconf

import (
	"encoding/json"
	"fmt"
	"strings"
)

// flattenNames converts a nested map to a flat map of dotted property names.
// A dotted key is re-quoted when joined, so a table such as
// [prefix."com.acme.FooClient"] flattens to the canonical spelling
// prefix."com.acme.FooClient".url rather than losing its quotes. Flat legacy
// keys like "com.acme.FooClient/mp-rest/url" contain a slash and are kept
// verbatim.
func flattenNames(nested map[string]any, prefix string) map[string]string {
	flat := make(map[string]string)

	for key, value := range nested {
		segment := key
		if strings.Contains(key, ".") && !strings.Contains(key, "/") && !strings.HasPrefix(key, `"`) {
			segment = quoted(key)
		}

		name := segment
		if prefix != "" {
			name = prefix + "." + segment
		}

		if subMap, isMap := value.(map[string]any); isMap {
			for subName, subValue := range flattenNames(subMap, name) {
				flat[subName] = subValue
			}
		} else {
			flat[name] = stringify(value)
		}
	}

	return flat
}

// stringify renders a parsed scalar as its raw configuration string. Lists
// are joined with commas so they round-trip through the comma-slice decode
// hook.
func stringify(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case json.Number:
		return v.String()
	case []any:
		parts := make([]string, len(v))
		for i, item := range v {
			parts[i] = stringify(item)
		}
		return strings.Join(parts, ",")
	default:
		return fmt.Sprintf("%v", v)
	}
}
