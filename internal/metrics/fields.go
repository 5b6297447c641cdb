package metrics

// Common metric attribute keys to keep telemetry consistent/searchable.
const (
	AttrEndpoint = "endpoint"
	AttrScreen   = "screen"
	AttrResult   = "result"
)
