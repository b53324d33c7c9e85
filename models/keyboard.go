package models

// TypeRequest is the body of POST /api/type.
type TypeRequest struct {
	// Text is typed into the virtual display. Required.
	Text string `json:"text"`
}

// TypeResponse acknowledges a completed injection. Text is always
// [MaskedText], never the typed content.
type TypeResponse struct {
	Status string `json:"status"`
	Text   string `json:"text"`
}

const (
	// TypeStatusSent is reported after the typing tool exited successfully.
	TypeStatusSent = "sent"

	// MaskedText replaces the typed payload in every response.
	MaskedText = "******"
)
