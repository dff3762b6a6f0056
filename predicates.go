package sanitizer

import (
	"math"
	"reflect"
	"regexp"
	"strings"
)

///////////////////////////////////////////////////////////////////////////////
// Predicates
///////////////////////////////////////////////////////////////////////////////

// Russian mobile grammar: a leading country token (8, 7 or +7), an optional
// area code in parentheses, then 7-10 digits with optional space/hyphen
// separators interspersed. Purely local numbers without a country token are
// rejected; see PhoneRule for the canonical form.
var phoneRegex = regexp.MustCompile(`^(\+7|7|8)[ -]?(\(\d{3,5}\)[ -]?)?\d([ -]?\d){6,9}$`)

// IsString reports whether v's runtime type is string.
func IsString(v any) bool {
	_, ok := v.(string)
	return ok
}

// IsInteger reports whether v is a numeric value with a zero fractional
// part. A numeric-looking string is NOT an integer by this predicate;
// string-to-number coercion is IntegerRule's job.
func IsInteger(v any) bool {
	switch n := v.(type) {
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64:
		return true
	case float32:
		return float64(n) == math.Trunc(float64(n))
	case float64:
		return n == math.Trunc(n)
	default:
		return false
	}
}

// IsFloat reports whether v is a numeric value with a nonzero fractional
// part. As with IsInteger, strings never qualify.
func IsFloat(v any) bool {
	switch n := v.(type) {
	case float32:
		return float64(n) != math.Trunc(float64(n))
	case float64:
		return n != math.Trunc(n)
	default:
		return false
	}
}

// IsPhone reports whether v is a string matching the Russian mobile-number
// grammar.
func IsPhone(v any) bool {
	s, ok := v.(string)
	return ok && phoneRegex.MatchString(s)
}

// IsArray reports whether v is a sequence container (not a string, not nil).
func IsArray(v any) bool {
	if v == nil {
		return false
	}
	kind := reflect.TypeOf(v).Kind()
	return kind == reflect.Slice || kind == reflect.Array
}

// IsTypedArray reports whether v is an array every element of which
// satisfies predicate.
func IsTypedArray(v any, predicate func(any) bool) bool {
	if !IsArray(v) {
		return false
	}

	rv := reflect.ValueOf(v)
	for i := 0; i < rv.Len(); i++ {
		if !predicate(rv.Index(i).Interface()) {
			return false
		}
	}
	return true
}

// IsKeyExist reports whether walking obj segment-by-segment along the
// dotted key resolves to a present entry at every step. A present-but-falsy
// value (nil, 0, false, "") counts as existing; only an absent map key
// counts as missing.
func IsKeyExist(obj map[string]any, dottedKey string) bool {
	segments := strings.Split(dottedKey, KeySeparator)

	current := obj
	for i, segment := range segments {
		value, ok := current[segment]
		if !ok {
			return false
		}
		if i == len(segments)-1 {
			return true
		}
		current, ok = value.(map[string]any)
		if !ok {
			return false
		}
	}
	return false
}

// IsKeysExist reports whether all given dotted keys exist in obj.
func IsKeysExist(obj map[string]any, keys []string) bool {
	for _, key := range keys {
		if !IsKeyExist(obj, key) {
			return false
		}
	}
	return true
}
