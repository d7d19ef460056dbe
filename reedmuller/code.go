// Package reedmuller implements Reed-Muller evaluation codes over enumerable
// finite fields: code parameters, the monomial message basis, a
// generator-matrix vector encoder and a polynomial encoder whose decoder
// reconstructs the message polynomial by recursive multivariate
// interpolation.
package reedmuller

import (
	"fmt"

	"golang.org/x/xerrors"

	"evalcode/field"
	"evalcode/logging"
)

var log = logging.GetLogger("reedmuller")

// Variant distinguishes the two Reed-Muller code families.
type Variant int

const (
	// QAry is the restricted variant over a field of size q with order < q
	QAry Variant = iota
	// Binary is the full variant over GF(2) with order <= number of variables
	Binary
)

// Code holds the validated parameters of a Reed-Muller code. It is immutable
// after construction and safe to share.
type Code struct {
	f       field.Field
	variant Variant
	q       int
	order   int
	numVars int
	length  int
	dim     int
}

// NewCode creates the Reed-Muller code over f of the given order and number
// of variables. A field of size 2 yields the binary (full) variant, any
// other field the q-ary (restricted) variant, mirroring the usual
// construction.
func NewCode(f field.Field, order, numVars int) (*Code, error) {
	if f == nil {
		return nil, xerrors.Errorf("base field is required: %w", ErrInvalidParameter)
	}
	if f.Size() == 2 {
		return NewBinaryCode(order, numVars)
	}
	return NewQAryCode(f, order, numVars)
}

// NewCodeFromSize is NewCode with the base field given by its size. Only
// prime sizes are supported by the built-in field implementation.
func NewCodeFromSize(q, order, numVars int) (*Code, error) {
	f, err := field.NewPrimeField(q)
	if err != nil {
		return nil, xerrors.Errorf("bad field size: %v: %w", err, ErrInvalidParameter)
	}
	return NewCode(f, order, numVars)
}

// NewQAryCode creates the restricted q-ary Reed-Muller code, which requires
// 0 <= order < field size. Its dimension is C(numVars+order, order).
func NewQAryCode(f field.Field, order, numVars int) (*Code, error) {
	if f == nil {
		return nil, xerrors.Errorf("base field is required: %w", ErrInvalidParameter)
	}
	if err := checkCommon(order, numVars); err != nil {
		return nil, err
	}
	q := f.Size()
	if order >= q {
		return nil, xerrors.Errorf("order %d must be less than the field size %d: %w", order, q, ErrInvalidParameter)
	}
	c := &Code{
		f:       f,
		variant: QAry,
		q:       q,
		order:   order,
		numVars: numVars,
		length:  intPow(q, numVars),
		dim:     binomial(numVars+order, order),
	}
	log.Debug().Str("code", c.String()).Int("length", c.length).Int("dimension", c.dim).Msg("constructed code")
	return c, nil
}

// NewBinaryCode creates the full binary Reed-Muller code over GF(2), which
// requires 0 <= order <= numVars. Its dimension is the sum of C(numVars, i)
// for i up to order.
func NewBinaryCode(order, numVars int) (*Code, error) {
	if err := checkCommon(order, numVars); err != nil {
		return nil, err
	}
	if order > numVars {
		return nil, xerrors.Errorf("order %d must be at most the number of variables %d: %w", order, numVars, ErrInvalidParameter)
	}
	f, err := field.NewPrimeField(2)
	if err != nil {
		return nil, err
	}
	c := &Code{
		f:       f,
		variant: Binary,
		q:       2,
		order:   order,
		numVars: numVars,
		length:  intPow(2, numVars),
		dim:     binomialSum(numVars, order),
	}
	log.Debug().Str("code", c.String()).Int("length", c.length).Int("dimension", c.dim).Msg("constructed code")
	return c, nil
}

func checkCommon(order, numVars int) error {
	if order < 0 {
		return xerrors.Errorf("order %d must be non-negative: %w", order, ErrInvalidParameter)
	}
	if numVars < 0 {
		return xerrors.Errorf("number of variables %d must be non-negative: %w", numVars, ErrInvalidParameter)
	}
	return nil
}

// Field returns the base field of the code
func (c *Code) Field() field.Field {
	return c.f
}

// Variant returns the code family
func (c *Code) Variant() Variant {
	return c.variant
}

// Order returns the maximum total degree of message polynomials
func (c *Code) Order() int {
	return c.order
}

// NumVariables returns the number of variables of the message polynomials
func (c *Code) NumVariables() int {
	return c.numVars
}

// Length returns the code length q^numVars
func (c *Code) Length() int {
	return c.length
}

// Dimension returns the dimension of the code
func (c *Code) Dimension() int {
	return c.dim
}

// Equal tests equality of code parameters
func (c *Code) Equal(other *Code) bool {
	return other != nil &&
		c.variant == other.variant &&
		c.q == other.q &&
		c.order == other.order &&
		c.numVars == other.numVars
}

// String returns the display form of the code
func (c *Code) String() string {
	if c.variant == Binary {
		return fmt.Sprintf("Binary Reed Muller Code of order %d and number of variables %d", c.order, c.numVars)
	}
	return fmt.Sprintf("%d-ary Reed Muller Code of order %d and number of variables %d", c.q, c.order, c.numVars)
}

func intPow(base, exp int) int {
	r := 1
	for i := 0; i < exp; i++ {
		r *= base
	}
	return r
}

// binomial returns C(n, k). The running product stays exact because the
// partial product of i+1 consecutive integers is divisible by (i+1)!.
func binomial(n, k int) int {
	if k < 0 || k > n {
		return 0
	}
	r := 1
	for i := 0; i < k; i++ {
		r = r * (n - i) / (i + 1)
	}
	return r
}

// binomialSum returns the sum of C(n, i) for i from 0 to k
func binomialSum(n, k int) int {
	s, c := 1, 1
	for i := 0; i < k; i++ {
		c = c * (n - i) / (i + 1)
		s += c
	}
	return s
}
