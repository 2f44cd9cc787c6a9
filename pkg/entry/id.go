package entry

import "github.com/google/uuid"

// NewID returns a UUIDv7: a millisecond clock prefix followed by random
// bits, so ids are unique without coordination and sort by creation.
func NewID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
