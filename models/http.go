package models

// Health is the constant body of GET /health.
type Health struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}

// HealthStatusOK is the only value [Health.Status] takes.
const HealthStatusOK = "ok"

// ErrorResponse is the body written for every failed request. Error carries
// the underlying error text verbatim.
type ErrorResponse struct {
	Error string `json:"error"`
}
