package kernel

import (
	"bytes"
	"fmt"

	"orderflow/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrUUIDIsNotConstructed is returned when validating a zero-value UUID.
var ErrUUIDIsNotConstructed = errs.NewValueIsRequiredError("UUID must be created via NewUUID or UUIDFromString")

// UUID identifies screens, steps, transitions and orders.
// It wraps github.com/google/uuid so the domain never handles the nil UUID by accident.
//
// The zero value of UUID is invalid and must be constructed using NewUUID or UUIDFromString.
//
// Example usage:
//
//	stepID := kernel.NewUUID()
//
//	directStep, err := kernel.UUIDFromString(req.DirectStep)
//	if err != nil {
//	    return errs.NewValueIsInvalidErrorWithCause("directStep", err)
//	}
type UUID struct {
	id uuid.UUID
}

// NewUUID generates a new random UUID (version 4).
func NewUUID() UUID {
	return UUID{
		id: uuid.New(),
	}
}

// UUIDFromString parses a UUID from its string representation.
// It accepts the formats github.com/google/uuid accepts:
//   - "6ba7b810-9dad-11d1-80b4-00c04fd430c8"
//   - "{6ba7b810-9dad-11d1-80b4-00c04fd430c8}"
//   - "urn:uuid:6ba7b810-9dad-11d1-80b4-00c04fd430c8"
//
// The nil UUID is rejected with ErrUUIDIsNotConstructed.
func UUIDFromString(s string) (UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return UUID{}, fmt.Errorf("invalid UUID format: %w", err)
	}
	parsed := UUID{id: id}
	if err = parsed.Validate(); err != nil {
		return UUID{}, err
	}
	return parsed, nil
}

// FromUUID wraps a github.com/google/uuid value read by a persistence adapter.
// The nil UUID is rejected with ErrUUIDIsNotConstructed.
func FromUUID(id uuid.UUID) (UUID, error) {
	wrapped := UUID{id: id}
	if err := wrapped.Validate(); err != nil {
		return UUID{}, err
	}
	return wrapped, nil
}

// MustUUID is UUIDFromString for identifiers known at compile time (fixtures, seeds).
// It panics on malformed input.
func MustUUID(s string) UUID {
	id, err := UUIDFromString(s)
	if err != nil {
		panic(err)
	}
	return id
}

// UUIDsFromStrings parses every element of raw, stopping at the first malformed value.
func UUIDsFromStrings(raw []string) ([]UUID, error) {
	ids := make([]UUID, 0, len(raw))
	for i, s := range raw {
		id, err := UUIDFromString(s)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// String returns the canonical "xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx" form.
func (u UUID) String() string {
	return u.id.String()
}

// UUID returns the wrapped github.com/google/uuid value, as persistence adapters need it.
func (u UUID) UUID() uuid.UUID {
	return u.id
}

// IsEqual reports whether both UUIDs hold the same value.
func (u UUID) IsEqual(other UUID) bool {
	return u.id == other.id
}

// Compare orders UUIDs by their byte representation.
// It returns -1, 0 or +1 and is suitable for slices.SortFunc.
func (u UUID) Compare(other UUID) int {
	return bytes.Compare(u.id[:], other.id[:])
}

// Validate returns ErrUUIDIsNotConstructed for the zero value.
//
// Example:
//
//	func NewStep(id kernel.UUID, name string) (*Step, error) {
//	    if err := id.Validate(); err != nil {
//	        return nil, fmt.Errorf("invalid step ID: %w", err)
//	    }
//	    ...
//	}
func (u UUID) Validate() error {
	if u.id == uuid.Nil {
		return ErrUUIDIsNotConstructed
	}
	return nil
}

// MarshalText renders the UUID in canonical form so it can be used in JSON bodies and map keys.
func (u UUID) MarshalText() ([]byte, error) {
	return []byte(u.id.String()), nil
}

// UnmarshalText parses the canonical form. The nil UUID is rejected.
func (u *UUID) UnmarshalText(text []byte) error {
	parsed, err := UUIDFromString(string(text))
	if err != nil {
		return err
	}
	*u = parsed
	return nil
}
