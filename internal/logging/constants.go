package logging

// Standardized field names for structured logging.
// These constants ensure consistency across the library's log output,
// making logs easier to parse, filter, and analyze.
const (
	FieldLogger    = "logger"
	FieldIssue     = "issue"
	FieldErrorCode = "error_code"
	FieldError     = "error"
)

// CodePlaceholder is the error_code value injected when a record does not
// reference a registered issue. Formatters interpolate error_code
// unconditionally, so the field must never be absent.
const CodePlaceholder = "------"
