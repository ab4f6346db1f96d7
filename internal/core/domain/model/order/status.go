package order

import (
	"fmt"

	"orderflow/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// State transitions:
//
//	Active ──(approve)──> Active (on the next step)
//	Active ──(reject)───> Rejected
//	Rejected ──(reject)─> Rejected (no-op)
type Status int

const (
	// UnknownStatus helps catch uninitialized Status values.
	UnknownStatus Status = iota

	// Active orders sit on a step and can be approved or rejected.
	Active

	// Rejected is terminal.
	Rejected
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		UnknownStatus: "Unknown",
		Active:        "Active",
		Rejected:      "Rejected",
	}
}

// ParseStatus maps the persisted name back to a Status.
func ParseStatus(s string) (Status, error) {
	for status, name := range getStatusStrings() {
		if status != UnknownStatus && name == s {
			return status, nil
		}
	}
	return UnknownStatus, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", s))
}

// Validate rejects UnknownStatus and out-of-range values.
func (s Status) Validate() error {
	if s != Active && s != Rejected {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String implements fmt.Stringer. Invalid values render as "Unknown".
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether no further transition is possible.
func (s Status) IsTerminal() bool {
	return s == Rejected
}
