package sanitizer

import "sort"

///////////////////////////////////////////////////////////////////////////////
// Sanitizer Impl.
///////////////////////////////////////////////////////////////////////////////

// Spec is a declarative description of expected field types: an arbitrarily
// nested mapping whose leaves are rule-name tokens. The alias keeps nested
// Spec literals interchangeable with the map[string]any payloads they
// describe.
type Spec = map[string]any

// Sanitizer reconciles a Spec against a payload and produces a sanitized
// result plus a path-keyed error report.
//
// It owns a registry mapping rule-name tokens to Rule instances. The
// registry is open for extension: new tokens may be registered with
// RegisterRule without touching existing rules. A Sanitizer carries no
// per-call state, so a single instance may serve concurrent SanitizeBySpec
// calls.
type Sanitizer struct {
	rules map[string]Rule
}

type Opts struct {
	// Rules to register on the new instance, token -> Rule.
	Rules map[string]Rule
	// IncludeDefaults registers the built-in token set before Rules,
	// so entries in Rules may override built-in tokens.
	IncludeDefaults bool
}

func New(opts Opts) (*Sanitizer, error) {
	s := &Sanitizer{
		rules: make(map[string]Rule),
	}

	if opts.IncludeDefaults {
		for token, rule := range defaultRules() {
			if err := s.RegisterRule(token, rule); err != nil {
				return nil, err
			}
		}
	}

	for token, rule := range opts.Rules {
		if err := s.RegisterRule(token, rule); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// RegisterRule binds a rule-name token to a Rule instance. Registering an
// already-bound token replaces the previous Rule.
func (s *Sanitizer) RegisterRule(token string, rule Rule) error {
	if token == "" {
		return ErrEmptyRuleToken
	}
	if rule == nil {
		return ErrNilRule
	}

	s.rules[token] = rule
	return nil
}

// Tokens returns the registered rule-name tokens, sorted.
func (s *Sanitizer) Tokens() []string {
	tokens := make([]string, 0, len(s.rules))
	for token := range s.rules {
		tokens = append(tokens, token)
	}
	sort.Strings(tokens)
	return tokens
}

// SanitizeBySpec validates payload against spec and returns the sanitized
// payload together with the error report for this call.
//
// Both inputs are flattened into dotted-path space. Payload paths not
// declared in the spec are recorded as ExtraField. Each spec path is then
// resolved: a path absent from the payload records KeyDoesNotExist, an
// unregistered token records InvalidSpecRule, and otherwise the Rule runs
// on the raw value. Leaves whose Rule reported an error are omitted from
// the output; everything else is written back at the same dotted path.
//
// The returned payload never aliases containers of the input payload, and
// the Report reflects only this call.
func (s *Sanitizer) SanitizeBySpec(spec Spec, payload map[string]any) (map[string]any, Report) {
	flatSpec := FlattenMap(spec)
	flatPayload := FlattenMap(payload)

	report := make(Report)
	sanitized := make(map[string]any)

	// Key-set reconciliation. Comparing sets, not counts: one added and one
	// removed path must still surface.
	for path := range flatPayload {
		if _, ok := flatSpec[path]; !ok {
			report[path] = FieldError{Code: ExtraField}
		}
	}

	for path, leaf := range flatSpec {
		// Existence is checked against the nested payload, not the
		// flattened view: a spec path whose payload value is a nested map
		// exists even though only its descendants were flattened.
		if !IsKeyExist(payload, path) {
			report[path] = FieldError{Code: KeyDoesNotExist}
			continue
		}

		token, ok := leaf.(string)
		if !ok {
			report[path] = FieldError{Code: InvalidSpecRule}
			continue
		}
		rule, ok := s.rules[token]
		if !ok {
			report[path] = FieldError{Code: InvalidSpecRule}
			continue
		}

		value, _ := GetByKey(payload, path)

		errored := false
		result := rule.Sanitize(value, func(code Code, indexes ...int) {
			errored = true
			report[path] = FieldError{Code: code, Indexes: indexes}
		})
		if !errored {
			SetByKey(sanitized, path, result)
		}
	}

	return sanitized, report
}
