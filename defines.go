package sanitizer

// Rule-name token constants for the built-in rules.
const (
	TokenInt    = "int"
	TokenFloat  = "float"
	TokenString = "string"
	TokenPhone  = "phone"
	TokenUUID   = "uuid"
)

// ArrayTokenSuffix turns a scalar token into its typed-array form,
// e.g. "int" -> "int[]".
const ArrayTokenSuffix = "[]"

// KeySeparator joins path segments into a flat dotted key.
const KeySeparator = "."
