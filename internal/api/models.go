package api

// ErrorResponse is the uniform failure envelope. Kind is a machine-readable
// error category so callers never parse the message text.
type ErrorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind,omitempty"`
}

type HealthResponse struct {
	OK bool `json:"ok"`
}
