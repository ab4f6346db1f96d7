// Package kernel provides the primitives shared by every aggregate of the workflow domain.
//
// The package includes:
//   - UUID: the identifier value object used for screens, steps, transitions and orders
//
// UUID values are immutable and safe for concurrent use. The zero value is invalid and is
// rejected by Validate, so a missing identifier never reaches the stores unnoticed.
package kernel
