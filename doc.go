// Package sanitizer validates and transforms untyped, deeply nested
// key-value payloads (as decoded from JSON) against a declarative spec of
// expected field types, producing a type-correct payload plus an itemized,
// per-path error report.
//
// A spec is a nested map whose leaves are rule-name tokens, and a payload
// is a nested map of the same shape family whose leaves are raw, untrusted
// values:
//
//	spec    := Spec{"user": Spec{"age": "int", "phones": "phone[]"}}
//	payload := map[string]any{"user": map[string]any{"age": "42", "phones": []any{"+7 999 111-22-33"}}}
//
//	out, report := sanitizer.SanitizeBySpec(spec, payload)
//
// Both maps are flattened into dotted-path space ("user.age"), each spec
// leaf is dispatched to the Rule registered for its token, and the sanitized
// values are reassembled into a nested result. Every data problem ends up in
// the returned Report keyed by the exact dotted path; nothing panics and no
// error crosses the Sanitize boundary for data-shape issues.
//
// The following rule tokens are registered on the default Sanitizer:
//   - "int", "float", "string", "phone", "uuid"
//   - "int[]", "float[]", "string[]", "phone[]", "uuid[]"
//
// To use the package, you may use the exported functions:
//   - SanitizeBySpec(): sanitize with the built-in default Sanitizer
//   - SanitizeJSON(): sanitize a raw JSON document and get JSON back
//   - RegisterRule(): register a custom Rule token on the default Sanitizer
//
// Or you may build your own instance with New() and register Rules on it.
// Custom Rules implement the single-method Rule interface; wrap any Rule in
// NewTypedArrayRule to obtain its element-wise array form.
//
// A Sanitizer holds no per-call state: SanitizeBySpec returns the Report as
// part of its result, so one instance may be shared freely across
// goroutines.
package sanitizer
