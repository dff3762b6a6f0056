package sanitizer

import "fmt"

///////////////////////////////////////////////////////////////////////////////
// Default Rules, Global Singleton and Package Functions
///////////////////////////////////////////////////////////////////////////////

// defaultRules builds the built-in token set: every scalar rule plus its
// "[]"-suffixed typed-array form.
func defaultRules() map[string]Rule {
	scalars := map[string]Rule{
		TokenInt:    NewIntegerRule(),
		TokenFloat:  NewFloatRule(),
		TokenString: NewStringRule(),
		TokenPhone:  NewPhoneRule(),
		TokenUUID:   NewUUIDRule(),
	}

	rules := make(map[string]Rule, 2*len(scalars))
	for token, rule := range scalars {
		rules[token] = rule
		rules[token+ArrayTokenSuffix] = NewTypedArrayRule(rule)
	}
	return rules
}

var _defaultSanitizer *Sanitizer = nil

func init() {
	var err error
	_defaultSanitizer, err = New(Opts{IncludeDefaults: true})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize default sanitizer: %v", err))
	}
}

// Package-level functions that delegate to the default sanitizer

// SanitizeBySpec sanitizes payload against spec using the default sanitizer.
func SanitizeBySpec(spec Spec, payload map[string]any) (map[string]any, Report) {
	return _defaultSanitizer.SanitizeBySpec(spec, payload)
}

// RegisterRule registers a rule token with the default sanitizer.
func RegisterRule(token string, rule Rule) error {
	return _defaultSanitizer.RegisterRule(token, rule)
}

// Tokens lists the tokens registered with the default sanitizer.
func Tokens() []string {
	return _defaultSanitizer.Tokens()
}
