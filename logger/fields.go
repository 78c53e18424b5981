package logger

// Well-known field names used across the SDK.
const (
	FieldComponent = "component"
	FieldDeviceID  = "device_id"
	FieldModuleID  = "module_id"
	FieldRequestID = "request_id"
	FieldMethod    = "method"
	FieldPath      = "path"
	FieldStatus    = "status"
	FieldDuration  = "duration"
)
