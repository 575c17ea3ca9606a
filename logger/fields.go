package logger

// Standard field names for consistent structured logging across Javelin.
// Use these constants instead of raw strings to ensure consistency.
const (
	// Components
	FieldComponent = "component"

	// Source locations
	FieldFile        = "file"
	FieldURI         = "uri"
	FieldDeclaration = "declaration"
	FieldLine        = "line"

	// Operations
	FieldOperation = "operation"

	// Timing
	FieldDurationMS = "duration_ms"

	// Errors
	FieldError = "error"

	// Counts
	FieldCount   = "count"
	FieldMissing = "missing"
)
