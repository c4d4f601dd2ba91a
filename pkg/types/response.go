package types

type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

type ErrorEnvelope struct {
	Error APIError `json:"error"`
}

// Message is the body returned by endpoints that acknowledge a write without
// echoing a document.
type Message struct {
	Message string `json:"message"`
}
