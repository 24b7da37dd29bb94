// Package uuidx generates the sortable v7 UUIDs used for request IDs and
// message nonces.
package uuidx

import "github.com/google/uuid"

// New returns a fresh v7 UUID, panicking if generation fails.
func New() uuid.UUID {
	return uuid.Must(uuid.NewV7())
}

// NewString returns a fresh v7 UUID rendered as a string.
func NewString() string {
	return New().String()
}
