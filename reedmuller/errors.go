package reedmuller

import "golang.org/x/xerrors"

// Error taxonomy of the package. Every failure is a local validation error
// detected before any computation starts; callers match with errors.Is.
var (
	// ErrInvalidParameter reports a bad field size, order or variable
	// count at code construction
	ErrInvalidParameter = xerrors.New("invalid parameter")

	// ErrDimensionMismatch reports a message or codeword of the wrong length
	ErrDimensionMismatch = xerrors.New("dimension mismatch")

	// ErrDegreeExceeded reports a message polynomial of total degree above
	// the code order
	ErrDegreeExceeded = xerrors.New("degree exceeded")

	// ErrDomainMismatch reports a message polynomial whose field or
	// variable count does not match the code
	ErrDomainMismatch = xerrors.New("domain mismatch")

	// ErrRingMismatch reports a message-space ring incompatible with the code
	ErrRingMismatch = xerrors.New("ring mismatch")

	// ErrNotACodeword reports a table rejected by the checked decoder
	ErrNotACodeword = xerrors.New("not a codeword")
)
