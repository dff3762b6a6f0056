package sanitizer

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

///////////////////////////////////////////////////////////////////////////////
// Errors
///////////////////////////////////////////////////////////////////////////////

// Base error types for construction and registration misuse. Data-shape
// problems never surface as Go errors; they are recorded in a Report.
var (
	ErrNilRule        = errors.New("cannot register a nil rule")
	ErrEmptyRuleToken = errors.New("rule-name token cannot be empty")
)

// Code identifies what went wrong at a single payload path.
type Code string

const (
	// InvalidPayload marks a malformed top-level payload, e.g. a JSON
	// document whose root is not an object.
	InvalidPayload Code = "InvalidPayload"

	// InvalidSpecRule marks a spec leaf naming a token that is not
	// registered on the Sanitizer.
	InvalidSpecRule Code = "InvalidSpecRule"

	// InvalidStructureValue marks an array one or more elements of which
	// failed the inner rule.
	InvalidStructureValue Code = "InvalidStructureValue"

	// InvalidValue marks a scalar leaf that failed its rule's format check.
	InvalidValue Code = "InvalidValue"

	// KeyDoesNotExist marks a spec path absent from the payload.
	KeyDoesNotExist Code = "KeyDoesNotExist"

	// ExtraField marks a payload path not declared in the spec.
	ExtraField Code = "ExtraField"
)

// FieldError describes the failure recorded at one dotted path. Indexes is
// only populated for InvalidStructureValue and lists the offending element
// positions of the typed array.
type FieldError struct {
	Code    Code
	Indexes []int
}

func (fe FieldError) String() string {
	if len(fe.Indexes) > 0 {
		return fmt.Sprintf("%s%v", fe.Code, fe.Indexes)
	}
	return string(fe.Code)
}

// Report maps flat dotted paths to the error detected there. A fresh Report
// is allocated per sanitize call and owned by the caller.
type Report map[string]FieldError

// IsEmpty returns true if no errors were recorded.
func (r Report) IsEmpty() bool { return len(r) == 0 }

// Has returns true if an error was recorded at the given dotted path.
func (r Report) Has(path string) bool {
	_, ok := r[path]
	return ok
}

// Paths returns the dotted paths with recorded errors, sorted.
func (r Report) Paths() []string {
	paths := make([]string, 0, len(r))
	for path := range r {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	return paths
}

// Error implements the error interface so a non-empty Report can be bubbled
// up by callers that treat any data problem as a failure.
func (r Report) Error() string {
	if r.IsEmpty() {
		return "sanitization failed"
	}

	parts := make([]string, 0, len(r))
	for _, path := range r.Paths() {
		parts = append(parts, fmt.Sprintf("%s: %s", path, r[path]))
	}
	return "sanitization failed: " + strings.Join(parts, "; ")
}

// Err returns the Report as an error, or nil if it is empty.
func (r Report) Err() error {
	if r.IsEmpty() {
		return nil
	}
	return r
}
