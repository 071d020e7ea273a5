// Package utils provides small helpers shared across the application.
package utils

import (
	"strings"

	"github.com/google/uuid"
)

// GenerateID creates a new UUID v4 string for use as an entity identifier.
//
// Go Learning Note — "github.com/google/uuid":
// uuid.New() creates a v4 (random) UUID like
// "550e8400-e29b-41d4-a716-446655440000". UUIDs can be generated without
// coordination, which is why they show up even in toy systems like this
// one — no central counter to maintain.
func GenerateID() string {
	return uuid.New().String()
}

// PrefixedID builds a short, readable identifier such as "S-1a2b3c4d"
// from a kind prefix and the first segment of a fresh UUID. The demo uses
// hand-written ids; the simulation uses these.
func PrefixedID(prefix string) string {
	return prefix + "-" + strings.SplitN(GenerateID(), "-", 2)[0]
}
