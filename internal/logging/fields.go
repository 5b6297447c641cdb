package logging

// Common structured log field keys to keep logs searchable/consistent.
const (
	FieldService    = "service"
	FieldVersion    = "version"
	FieldEndpoint   = "endpoint"
	FieldKey        = "key"
	FieldScreen     = "screen"
	FieldDate       = "date"
	FieldGameID     = "game_id"
	FieldStatusCode = "status_code"
	FieldCadence    = "cadence"
	FieldCount      = "count"
	FieldDurationMS = "duration_ms"
)
