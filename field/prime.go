package field

import (
	"fmt"
	"math/big"

	"go.dedis.ch/kyber/v4/group/mod"
	"golang.org/x/xerrors"
)

// PrimeField is the finite field F_p for a prime p. Its canonical element
// order is 0, 1, ..., p-1.
type PrimeField struct {
	p    *big.Int
	size int
}

// NewPrimeField creates the prime field of the given size
func NewPrimeField(p int) (*PrimeField, error) {
	if p < 2 {
		return nil, xerrors.Errorf("field size must be at least 2, got %d", p)
	}
	m := big.NewInt(int64(p))
	if !m.ProbablyPrime(32) {
		return nil, xerrors.Errorf("field size %d is not a prime", p)
	}
	return &PrimeField{p: m, size: p}, nil
}

// Zero returns the additive identity element (0)
func (f *PrimeField) Zero() Element {
	return f.FromInt(0)
}

// One returns the multiplicative identity element (1)
func (f *PrimeField) One() Element {
	return f.FromInt(1)
}

// FromInt returns the element v mod p
func (f *PrimeField) FromInt(v int) Element {
	v %= f.size
	if v < 0 {
		v += f.size
	}
	return &primeElement{v: mod.NewInt64(int64(v), f.p)}
}

// Elements returns 0, 1, ..., p-1 in that order
func (f *PrimeField) Elements() []Element {
	elems := make([]Element, f.size)
	for i := 0; i < f.size; i++ {
		elems[i] = f.FromInt(i)
	}
	return elems
}

// Size returns the number of elements of the field
func (f *PrimeField) Size() int {
	return f.size
}

// String returns the string representation of the field
func (f *PrimeField) String() string {
	return fmt.Sprintf("GF(%d)", f.size)
}

// primeElement wraps a kyber arbitrary-modulus scalar. All arithmetic is
// delegated to the scalar operations.
type primeElement struct {
	v *mod.Int
}

func (e *primeElement) other(b Element) *primeElement {
	o, ok := b.(*primeElement)
	if !ok {
		panic("incompatible field elements")
	}
	return o
}

// Add returns e + b in the field
func (e *primeElement) Add(b Element) Element {
	r := new(mod.Int)
	r.Add(e.v, e.other(b).v)
	return &primeElement{v: r}
}

// Sub returns e - b in the field
func (e *primeElement) Sub(b Element) Element {
	r := new(mod.Int)
	r.Sub(e.v, e.other(b).v)
	return &primeElement{v: r}
}

// Mul returns e * b in the field
func (e *primeElement) Mul(b Element) Element {
	r := new(mod.Int)
	r.Mul(e.v, e.other(b).v)
	return &primeElement{v: r}
}

// Inv returns the multiplicative inverse of e
func (e *primeElement) Inv() Element {
	if e.IsZero() {
		panic("element is not invertible")
	}
	r := new(mod.Int)
	r.Inv(e.v)
	return &primeElement{v: r}
}

// IsZero returns true if e equals zero
func (e *primeElement) IsZero() bool {
	return e.v.V.Sign() == 0
}

// Equal returns true if e equals b
func (e *primeElement) Equal(b Element) bool {
	o, ok := b.(*primeElement)
	if !ok {
		return false
	}
	return e.v.Equal(o.v)
}

// Clone returns a copy of e
func (e *primeElement) Clone() Element {
	return &primeElement{v: e.v.Clone().(*mod.Int)}
}

// String returns the decimal representation of e
func (e *primeElement) String() string {
	return e.v.V.String()
}

// Uint64 returns the value of e as an integer in [0, p)
func (e *primeElement) Uint64() uint64 {
	return e.v.V.Uint64()
}
