package reedmuller

import (
	"fmt"

	"golang.org/x/xerrors"

	"evalcode/field"
	"evalcode/poly"
)

// PolynomialEncoder encodes bounded-degree multivariate polynomials into
// codewords by evaluation over the domain, and decodes full evaluation
// tables back into polynomials by recursive interpolation. It is read-only
// after construction and safe for concurrent use.
type PolynomialEncoder struct {
	code   *Code
	ring   *poly.Ring
	points [][]field.Element
	nodes  []field.Element // canonical field-element order, interpolation nodes
}

// NewPolynomialEncoder creates a polynomial encoder for the code. A nil ring
// selects the default message space, a polynomial ring over the code's field
// with one variable per code variable; a non-nil ring must match the code's
// field size and variable count.
func NewPolynomialEncoder(code *Code, ring *poly.Ring) (*PolynomialEncoder, error) {
	f := code.Field()
	if ring == nil {
		ring = poly.NewRing(f, code.NumVariables())
	} else if ring.Field().Size() != f.Size() || ring.NumVars() != code.NumVariables() {
		return nil, xerrors.Errorf("message space must be a ring over %s in %d variables, got %s: %w",
			f, code.NumVariables(), ring, ErrRingMismatch)
	}
	return &PolynomialEncoder{
		code:   code,
		ring:   ring,
		points: field.Cartesian(f, code.NumVariables()),
		nodes:  f.Elements(),
	}, nil
}

// Code returns the code this encoder belongs to
func (e *PolynomialEncoder) Code() *Code {
	return e.code
}

// MessageSpace returns the polynomial ring the messages live in
func (e *PolynomialEncoder) MessageSpace() *poly.Ring {
	return e.ring
}

// Encode evaluates the message polynomial at every point of the domain, in
// the fixed enumeration order. The polynomial must belong to a ring
// compatible with the message space and have total degree at most the code
// order.
func (e *PolynomialEncoder) Encode(p *poly.Polynomial) ([]field.Element, error) {
	if !p.Ring().Equal(e.ring) {
		return nil, xerrors.Errorf("polynomial from %s, message space is %s: %w",
			p.Ring(), e.ring, ErrDomainMismatch)
	}
	if p.TotalDegree() > e.code.Order() {
		return nil, xerrors.Errorf("polynomial has degree %d, code order is %d: %w",
			p.TotalDegree(), e.code.Order(), ErrDegreeExceeded)
	}
	codeword := make([]field.Element, len(e.points))
	for i, point := range e.points {
		codeword[i] = p.Evaluate(point)
	}
	return codeword, nil
}

// DecodeUnchecked reconstructs the message polynomial from a full evaluation
// table. The table is assumed to be a codeword; if it is not, the output is
// unspecified but no error is raised. Use Decode for the checked variant.
// Panics if the table does not have length Length().
func (e *PolynomialEncoder) DecodeUnchecked(codeword []field.Element) *poly.Polynomial {
	if len(codeword) != e.code.Length() {
		panic(fmt.Sprintf("evaluation table has length %d, code length is %d",
			len(codeword), e.code.Length()))
	}
	return e.interpolate(codeword, e.code.NumVariables(), e.code.Order())
}

// Decode reconstructs the message polynomial and verifies it by re-encoding:
// a table that does not round-trip is rejected with ErrNotACodeword.
func (e *PolynomialEncoder) Decode(codeword []field.Element) (*poly.Polynomial, error) {
	if len(codeword) != e.code.Length() {
		return nil, xerrors.Errorf("evaluation table has length %d, code length is %d: %w",
			len(codeword), e.code.Length(), ErrDimensionMismatch)
	}
	p := e.interpolate(codeword, e.code.NumVariables(), e.code.Order())
	check, err := e.Encode(p)
	if err != nil {
		return nil, xerrors.Errorf("interpolation left the message space: %w", ErrNotACodeword)
	}
	for i := range check {
		if !check[i].Equal(codeword[i]) {
			return nil, xerrors.Errorf("table differs from its round-trip at position %d: %w", i, ErrNotACodeword)
		}
	}
	return p, nil
}

// interpolate reconstructs a polynomial of total degree at most order in the
// first numVars variables from its evaluation table over F^numVars.
//
// The last remaining variable is the slowest-varying coordinate of the
// sub-domain, so the table splits into q blocks of size q^(numVars-1), one
// per value of that variable. For each position across the blocks the q
// stacked values are a univariate evaluation in the peeled variable; Lagrange
// interpolation turns them into d = min(order+1, q) coefficients, and each
// coefficient layer is interpolated recursively in one variable fewer with
// order reduced by the layer index.
func (e *PolynomialEncoder) interpolate(table []field.Element, numVars, order int) *poly.Polynomial {
	if numVars == 0 || order == 0 {
		return e.ring.Constant(table[0].Clone())
	}
	f := e.code.Field()
	q := e.code.q
	nq := len(table) / q
	d := order + 1
	if d > q {
		d = q
	}

	// Per inner position, the first d univariate coefficients in the
	// peeled variable. Higher coefficients are zero for genuine codewords.
	layers := make([][]field.Element, nq)
	ys := make([]field.Element, q)
	for j := 0; j < nq; j++ {
		for k := 0; k < q; k++ {
			ys[k] = table[j+k*nq]
		}
		layers[j] = poly.Interpolate(f, e.nodes, ys)[:d]
	}

	result := e.ring.Zero()
	sub := make([]field.Element, nq)
	for k := 0; k < d; k++ {
		for j := 0; j < nq; j++ {
			sub[j] = layers[j][k]
		}
		qk := e.interpolate(sub, numVars-1, order-k)
		result = result.Add(qk.ShiftVar(numVars-1, k))
	}
	return result
}

// String returns the display form of the encoder
func (e *PolynomialEncoder) String() string {
	return fmt.Sprintf("evaluation polynomial encoder for %s", e.code)
}
