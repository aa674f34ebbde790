package generate

import (
	"github.com/google/uuid"
)

const (
	MinUUIDs     = 1
	MaxUUIDs     = 100
	DefaultUUIDs = 5
)

// UUIDs returns n random (version 4) UUIDs in canonical lowercase form.
// n is clamped to [MinUUIDs, MaxUUIDs].
func UUIDs(n int) []string {
	n = max(MinUUIDs, min(MaxUUIDs, n))

	out := make([]string, n)
	for i := range out {
		out[i] = uuid.New().String()
	}
	return out
}
