package models

// ClientErrorReport is the payload posted by the website's error boundary.
// It is logged server-side only; nothing is persisted.
type ClientErrorReport struct {
	Message        string `json:"message"`
	Stack          string `json:"stack,omitempty"`
	ComponentStack string `json:"componentStack,omitempty"`
	Timestamp      string `json:"timestamp,omitempty"`
	UserAgent      string `json:"userAgent,omitempty"`
	URL            string `json:"url,omitempty"`
}
