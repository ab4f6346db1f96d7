// Package guard provides ConstructorGuard, a marker embedded in domain objects and
// commands to tell a value built by its constructor apart from a zero value.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the guard was not constructed
// and the caller passed a nil error.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard records whether the enclosing value went through its constructor.
// Embed it as a private field and call Validate from the owner's Validate method.
//
// Example:
//
//	var ErrApproveOrdersCommandIsNotConstructed = errors.New("ApproveOrdersCommand must be created via NewApproveOrdersCommand")
//
//	type ApproveOrdersCommand struct {
//	    orderIDs []kernel.UUID
//	    guard    guard.ConstructorGuard
//	}
//
//	func (c ApproveOrdersCommand) Validate() error {
//	    return c.guard.Validate(ErrApproveOrdersCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marked as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when it is nil)
// if the guard is a zero value, and nil otherwise.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
