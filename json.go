package sanitizer

import (
	"sort"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

///////////////////////////////////////////////////////////////////////////////
// JSON Surface
///////////////////////////////////////////////////////////////////////////////

// JSONRootPath is the report path used for problems with the payload
// document itself rather than any field inside it.
const JSONRootPath = "."

// SanitizeJSON sanitizes a raw JSON document against spec and re-encodes
// the sanitized result as JSON.
//
// A document that is not valid JSON, or whose top level is not an object,
// yields a nil result and a report carrying InvalidPayload at JSONRootPath.
// Otherwise the output is a JSON object with the sanitized leaves written
// at their dotted paths in sorted order, so encoding is deterministic.
func (s *Sanitizer) SanitizeJSON(spec Spec, data []byte) ([]byte, Report) {
	if !gjson.ValidBytes(data) {
		return nil, Report{JSONRootPath: FieldError{Code: InvalidPayload}}
	}

	parsed := gjson.ParseBytes(data)
	payload, ok := parsed.Value().(map[string]any)
	if !ok {
		return nil, Report{JSONRootPath: FieldError{Code: InvalidPayload}}
	}

	sanitized, report := s.SanitizeBySpec(spec, payload)

	flat := FlattenMap(sanitized)
	paths := make([]string, 0, len(flat))
	for path := range flat {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	out := []byte("{}")
	for _, path := range paths {
		written, err := sjson.SetBytes(out, path, flat[path])
		if err != nil {
			continue
		}
		out = written
	}
	return out, report
}

// SanitizeJSON sanitizes a raw JSON document using the default sanitizer.
func SanitizeJSON(spec Spec, data []byte) ([]byte, Report) {
	return _defaultSanitizer.SanitizeJSON(spec, data)
}

// JSONKeyExists reports whether the dotted key resolves in the raw JSON
// document. A JSON null at the path counts as existing, matching
// IsKeyExist semantics.
func JSONKeyExists(data []byte, dottedKey string) bool {
	return gjson.GetBytes(data, dottedKey).Exists()
}

// JSONKeysExist reports whether all given dotted keys resolve in the raw
// JSON document.
func JSONKeysExist(data []byte, keys []string) bool {
	for _, key := range keys {
		if !JSONKeyExists(data, key) {
			return false
		}
	}
	return true
}
