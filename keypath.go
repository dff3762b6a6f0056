package sanitizer

import "strings"

///////////////////////////////////////////////////////////////////////////////
// Key-Path Utilities
///////////////////////////////////////////////////////////////////////////////

// FlattenMap flattens a nested mapping into dotted-path -> leaf-value
// entries. Flattening descends into nested map[string]any values only;
// arrays and every other value are opaque leaves. Paths are unique within
// one flattened view, and flattening always terminates for JSON-originated
// input (which cannot contain cycles).
func FlattenMap(obj map[string]any) map[string]any {
	flat := make(map[string]any)
	flattenInto(flat, "", obj)
	return flat
}

func flattenInto(flat map[string]any, prefix string, obj map[string]any) {
	for key, value := range obj {
		path := key
		if prefix != "" {
			path = prefix + KeySeparator + key
		}

		if nested, ok := value.(map[string]any); ok {
			flattenInto(flat, path, nested)
			continue
		}
		flat[path] = value
	}
}

// GetByKey reads the value at a dotted path. The second return value
// reports whether the path resolved, so a present nil leaf is
// distinguishable from a missing one.
func GetByKey(obj map[string]any, dottedKey string) (any, bool) {
	segments := strings.Split(dottedKey, KeySeparator)

	current := obj
	for i, segment := range segments {
		value, ok := current[segment]
		if !ok {
			return nil, false
		}
		if i == len(segments)-1 {
			return value, true
		}
		current, ok = value.(map[string]any)
		if !ok {
			return nil, false
		}
	}
	return nil, false
}

// SetByKey writes value at a dotted path in obj, creating intermediate
// maps as needed. An intermediate segment already occupied by a non-map
// value is replaced with a fresh map. The written value is stored as-is;
// callers that need isolation from their input must pass freshly built
// containers.
func SetByKey(obj map[string]any, dottedKey string, value any) {
	segments := strings.Split(dottedKey, KeySeparator)

	current := obj
	for _, segment := range segments[:len(segments)-1] {
		next, ok := current[segment].(map[string]any)
		if !ok {
			next = make(map[string]any)
			current[segment] = next
		}
		current = next
	}
	current[segments[len(segments)-1]] = value
}
