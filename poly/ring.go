// Package poly implements multivariate polynomials over a finite field,
// with the term extraction, evaluation and degree queries needed by the
// evaluation-code encoders, plus univariate Lagrange interpolation.
package poly

import (
	"fmt"

	"evalcode/field"
)

// Ring describes polynomials over a field in a fixed number of variables
// named x0, x1, ... Two rings are interchangeable whenever they agree on the
// field size and the number of variables.
type Ring struct {
	field   field.Field
	numVars int
}

// NewRing creates the polynomial ring over f in numVars variables
func NewRing(f field.Field, numVars int) *Ring {
	if numVars < 0 {
		panic("number of variables must be non-negative")
	}
	return &Ring{field: f, numVars: numVars}
}

// Field returns the coefficient field of the ring
func (r *Ring) Field() field.Field {
	return r.field
}

// NumVars returns the number of variables of the ring
func (r *Ring) NumVars() int {
	return r.numVars
}

// Equal returns true if the two rings have the same field size and the same
// number of variables
func (r *Ring) Equal(other *Ring) bool {
	return other != nil && r.field.Size() == other.field.Size() && r.numVars == other.numVars
}

// Zero returns the zero polynomial of the ring
func (r *Ring) Zero() *Polynomial {
	return &Polynomial{ring: r, terms: make(map[string]Term)}
}

// Constant returns the constant polynomial with value c
func (r *Ring) Constant(c field.Element) *Polynomial {
	return r.Monomial(c, make([]int, r.numVars))
}

// Monomial returns the polynomial c * x0^exps[0] * ... The exponent slice
// must have one entry per ring variable.
func (r *Ring) Monomial(c field.Element, exps []int) *Polynomial {
	if len(exps) != r.numVars {
		panic(fmt.Sprintf("monomial has %d exponents, ring has %d variables", len(exps), r.numVars))
	}
	p := r.Zero()
	p.addTerm(c, exps)
	return p
}

// String returns the string representation of the ring
func (r *Ring) String() string {
	return fmt.Sprintf("polynomial ring in %d variables over %s", r.numVars, r.field)
}
