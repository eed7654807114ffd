package models

// ErrorResponse is the uniform JSON error body returned by every failing
// endpoint.
type ErrorResponse struct {
	Detail string `json:"detail"`
}
