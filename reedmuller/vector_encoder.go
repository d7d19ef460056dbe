package reedmuller

import (
	"fmt"

	"golang.org/x/xerrors"

	"evalcode/field"
)

// VectorEncoder encodes coefficient vectors through the generator matrix of
// the code. The matrix is built once at construction; after that the encoder
// is read-only and safe for concurrent use.
type VectorEncoder struct {
	code *Code
	gen  [][]field.Element
}

// NewVectorEncoder creates a vector encoder for the code and builds its
// generator matrix: one row per basis monomial, evaluated at every point of
// the domain in the fixed enumeration order.
func NewVectorEncoder(code *Code) *VectorEncoder {
	f := code.Field()
	points := field.Cartesian(f, code.NumVariables())
	basis := code.ExponentBasis()

	gen := make([][]field.Element, len(basis))
	for j, exps := range basis {
		row := make([]field.Element, len(points))
		for i, point := range points {
			v := f.One()
			for k, e := range exps {
				v = v.Mul(field.Pow(f, point[k], e))
			}
			row[i] = v
		}
		gen[j] = row
	}

	log.Debug().Str("code", code.String()).
		Int("rows", len(gen)).Int("cols", len(points)).
		Msg("built generator matrix")

	return &VectorEncoder{code: code, gen: gen}
}

// Code returns the code this encoder belongs to
func (e *VectorEncoder) Code() *Code {
	return e.code
}

// GeneratorMatrix returns the generator matrix of the encoder. The matrix is
// shared and must be treated as read-only.
func (e *VectorEncoder) GeneratorMatrix() [][]field.Element {
	return e.gen
}

// Encode maps a coefficient vector of length Dimension() to the codeword
// given by the corresponding linear combination of generator rows.
func (e *VectorEncoder) Encode(message []field.Element) ([]field.Element, error) {
	if len(message) != e.code.Dimension() {
		return nil, xerrors.Errorf("message length %d, code dimension %d: %w",
			len(message), e.code.Dimension(), ErrDimensionMismatch)
	}
	return field.VecMatMul(message, e.gen, e.code.Field()), nil
}

// String returns the display form of the encoder
func (e *VectorEncoder) String() string {
	return fmt.Sprintf("evaluation vector encoder for %s", e.code)
}
