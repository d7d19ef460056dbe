package reedmuller

import "golang.org/x/xerrors"

// EncoderID selects one of the encoder implementations of the package.
type EncoderID int

const (
	// EvaluationVector selects the generator-matrix encoder whose message
	// space is coefficient vectors
	EvaluationVector EncoderID = iota
	// EvaluationPolynomial selects the encoder whose message space is a
	// polynomial ring
	EvaluationPolynomial
)

// Encoder is the surface common to both encoder implementations.
type Encoder interface {
	// Code returns the code the encoder belongs to
	Code() *Code
	// String returns the display form of the encoder
	String() string
}

// NewEncoder constructs the encoder selected by id for the given code.
func NewEncoder(id EncoderID, code *Code) (Encoder, error) {
	switch id {
	case EvaluationVector:
		return NewVectorEncoder(code), nil
	case EvaluationPolynomial:
		e, err := NewPolynomialEncoder(code, nil)
		if err != nil {
			return nil, err
		}
		return e, nil
	default:
		return nil, xerrors.Errorf("unknown encoder id %d: %w", id, ErrInvalidParameter)
	}
}
