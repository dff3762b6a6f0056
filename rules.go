package sanitizer

import (
	"regexp"
	"strconv"
)

///////////////////////////////////////////////////////////////////////////////
// Rule Interface
///////////////////////////////////////////////////////////////////////////////

// Reporter receives the error kind detected for the leaf currently being
// sanitized. Scalar rules invoke it at most once per call; TypedArrayRule
// additionally passes the indexes of the offending elements.
type Reporter func(code Code, indexes ...int)

// Rule is a stateless transformer that validates and coerces one raw leaf
// value to its target type.
//
// Sanitize never panics and never returns an error for data problems: an
// invalid input is reported through report and replaced with the rule's
// typed default (0 for int, 0.0 for float, "" for string-like rules). A
// Rule instance owns no per-call state and may be shared across goroutines
// and sanitize calls.
type Rule interface {
	Sanitize(value any, report Reporter) any
}

var (
	integerStringRegex = regexp.MustCompile(`^\d+$`)
	floatStringRegex   = regexp.MustCompile(`^\d+\.\d+$`)
	nonDigitRegex      = regexp.MustCompile(`\D`)
)

///////////////////////////////////////////////////////////////////////////////
// Scalar Rules
///////////////////////////////////////////////////////////////////////////////

// IntegerRule accepts integral numbers and strings of decimal digits,
// coercing both to int.
type IntegerRule struct{}

func NewIntegerRule() *IntegerRule {
	return &IntegerRule{}
}

func (ir *IntegerRule) Sanitize(value any, report Reporter) any {
	switch n := value.(type) {
	case int:
		return n
	case int8:
		return int(n)
	case int16:
		return int(n)
	case int32:
		return int(n)
	case int64:
		return int(n)
	case uint:
		return int(n)
	case uint8:
		return int(n)
	case uint16:
		return int(n)
	case uint32:
		return int(n)
	case uint64:
		return int(n)
	case float32, float64:
		if IsInteger(value) {
			if f, ok := n.(float64); ok {
				return int(f)
			}
			return int(value.(float32))
		}
	case string:
		if integerStringRegex.MatchString(n) {
			parsed, err := strconv.Atoi(n)
			if err == nil {
				return parsed
			}
		}
	}

	report(InvalidValue)
	return 0
}

// FloatRule accepts non-integral numbers and strings of the form "12.34",
// coercing both to float64. An integral number is not a float by this
// rule; use IntegerRule for those.
type FloatRule struct{}

func NewFloatRule() *FloatRule {
	return &FloatRule{}
}

func (fr *FloatRule) Sanitize(value any, report Reporter) any {
	if IsFloat(value) {
		switch n := value.(type) {
		case float32:
			return float64(n)
		case float64:
			return n
		}
	}

	if s, ok := value.(string); ok && floatStringRegex.MatchString(s) {
		parsed, err := strconv.ParseFloat(s, 64)
		if err == nil {
			return parsed
		}
	}

	report(InvalidValue)
	return 0.0
}

// StringRule accepts values whose runtime type is already string; no
// coercion is performed.
type StringRule struct{}

func NewStringRule() *StringRule {
	return &StringRule{}
}

func (sr *StringRule) Sanitize(value any, report Reporter) any {
	if s, ok := value.(string); ok {
		return s
	}

	report(InvalidValue)
	return ""
}

// PhoneRule accepts Russian mobile numbers per IsPhone and normalizes them
// to a canonical digit-only form: a leading 8 is rewritten to 7, then all
// non-digit characters are stripped. A valid number sanitizes to an
// 11-digit string beginning with 7.
type PhoneRule struct{}

func NewPhoneRule() *PhoneRule {
	return &PhoneRule{}
}

func (pr *PhoneRule) Sanitize(value any, report Reporter) any {
	if !IsPhone(value) {
		report(InvalidValue)
		return ""
	}

	digits := nonDigitRegex.ReplaceAllString(value.(string), "")
	if digits[0] == '8' {
		digits = "7" + digits[1:]
	}
	return digits
}
