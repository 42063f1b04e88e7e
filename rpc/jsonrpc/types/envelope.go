package types

// Envelope is the part shared by every node reply. Error is nil when the
// call succeeded; otherwise it holds the node's message and no other field of
// the reply may be trusted.
type Envelope struct {
	Error *string `json:"error,omitempty"`
}

// Failed reports whether the node rejected the call.
func (e Envelope) Failed() bool {
	return e.Error != nil
}

// Message returns the node's error message, or "" on success.
func (e Envelope) Message() string {
	if e.Error == nil {
		return ""
	}
	return *e.Error
}
