package logger

// Standard field names used across the service so log output stays greppable.
const (
	FieldComponent = "component"
	FieldRequestID = "request_id"
	FieldMethod    = "method"
	FieldPath      = "path"
	FieldStatus    = "status"
	FieldDuration  = "duration_ms"
	FieldRole      = "role"
	FieldProvider  = "provider"
	FieldModel     = "model"
	FieldError     = "error"
)
