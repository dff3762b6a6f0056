package sanitizer

import "github.com/google/uuid"

// UUIDRule accepts strings that parse as a UUID in any of the textual forms
// uuid.Parse understands and canonicalizes them to the lowercase dashed
// form.
type UUIDRule struct{}

func NewUUIDRule() *UUIDRule {
	return &UUIDRule{}
}

func (ur *UUIDRule) Sanitize(value any, report Reporter) any {
	s, ok := value.(string)
	if !ok {
		report(InvalidValue)
		return ""
	}

	parsed, err := uuid.Parse(s)
	if err != nil {
		report(InvalidValue)
		return ""
	}
	return parsed.String()
}
