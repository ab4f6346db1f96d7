package order

import (
	"fmt"

	"orderflow/internal/pkg/errs"
)

// Type categorizes orders. It does not influence routing.
type Type int

const (
	// UnknownType helps catch uninitialized Type values.
	UnknownType Type = iota
	Standard
	Priority
)

func getTypeStrings() map[Type]string {
	return map[Type]string{
		UnknownType: "Unknown",
		Standard:    "Standard",
		Priority:    "Priority",
	}
}

// ParseType maps an external name ("Standard", "Priority") to a Type.
func ParseType(s string) (Type, error) {
	for t, name := range getTypeStrings() {
		if t != UnknownType && name == s {
			return t, nil
		}
	}
	return UnknownType, errs.NewValueIsInvalidErrorWithCause("type", fmt.Errorf("%q is not a valid order type", s))
}

// Validate rejects UnknownType and out-of-range values.
func (t Type) Validate() error {
	if t != Standard && t != Priority {
		return errs.NewValueIsInvalidErrorWithCause("type", fmt.Errorf("%d is not a valid order type", t))
	}
	return nil
}

func (t Type) String() string {
	if str, ok := getTypeStrings()[t]; ok {
		return str
	}
	return "Unknown"
}
