// Package rpctrace hands out ids that tie together the log lines of a
// single node call.
package rpctrace

import "github.com/gofrs/uuid"

// Unavailable is the id used when no random id could be generated.
const Unavailable = "none"

// New returns a randomly generated id, or Unavailable if the system
// randomness source failed.
func New() string {
	id, err := uuid.NewV4()
	if err != nil {
		return Unavailable
	}
	return id.String()
}
