package sanitizer

import "reflect"

///////////////////////////////////////////////////////////////////////////////
// TypedArrayRule
///////////////////////////////////////////////////////////////////////////////

// TypedArrayRule applies an inner Rule element-wise to an array value.
//
// The policy is all-or-nothing: if any element fails the inner rule, the
// whole array is discarded and an empty one returned, with the failing
// indexes recorded in the report. A structurally invalid array is not
// trustworthy even where some elements parsed.
type TypedArrayRule struct {
	inner Rule
}

// NewTypedArrayRule wraps inner in its element-wise array form. Passing a
// nil Rule is a programming error, not a data problem, and panics.
func NewTypedArrayRule(inner Rule) *TypedArrayRule {
	if inner == nil {
		panic(ErrNilRule)
	}
	return &TypedArrayRule{inner: inner}
}

func (tar *TypedArrayRule) Sanitize(value any, report Reporter) any {
	if !IsArray(value) {
		report(InvalidValue)
		return []any{}
	}

	rv := reflect.ValueOf(value)

	var invalid []int
	sanitized := make([]any, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		index := i
		sanitized[i] = tar.inner.Sanitize(rv.Index(i).Interface(), func(Code, ...int) {
			invalid = append(invalid, index)
		})
	}

	if len(invalid) > 0 {
		report(InvalidStructureValue, invalid...)
		return []any{}
	}
	return sanitized
}
