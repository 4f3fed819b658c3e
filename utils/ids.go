package utils

import (
	"time"

	"github.com/google/uuid"
)

// GenerateID returns a new unique identifier string
func GenerateID() string {
	return uuid.New().String()
}

// Clock returns the current time. Services take one so tests can pin "now".
type Clock func() time.Time

// UTCNow is the default Clock
func UTCNow() time.Time {
	return time.Now().UTC()
}
