// Package field defines the finite-field capability interface used by the
// evaluation-code packages, together with the canonical enumeration of a
// field and of its Cartesian powers. Every other package relies on these
// enumerations being stable.
package field

// Element represents an element of a finite field.
type Element interface {
	// Add returns e + b in the field
	Add(b Element) Element

	// Sub returns e - b in the field
	Sub(b Element) Element

	// Mul returns e * b in the field
	Mul(b Element) Element

	// Inv returns the multiplicative inverse of e, panicking on zero
	Inv() Element

	// IsZero returns true if the element is the zero element
	IsZero() bool

	// Equal returns true if two elements are equal
	Equal(b Element) bool

	// Clone returns a copy of the element
	Clone() Element

	// String returns the string representation of the element
	String() string
}

// Field represents a finite field whose elements can be enumerated in a
// fixed order.
type Field interface {
	// Zero returns the zero element of the field
	Zero() Element

	// One returns the one element of the field
	One() Element

	// FromInt returns the element obtained by reducing v into the field
	FromInt(v int) Element

	// Elements returns all elements of the field in the canonical order.
	// The order must never change between calls.
	Elements() []Element

	// Size returns the number of elements of the field
	Size() int

	// String returns the string representation of the field
	String() string
}

// Pow returns x^k in the field. Pow(f, x, 0) is one, also for x = zero.
func Pow(f Field, x Element, k int) Element {
	r := f.One()
	for i := 0; i < k; i++ {
		r = r.Mul(x)
	}
	return r
}

// Cartesian enumerates the evaluation domain F^m: all q^m length-m tuples of
// field elements. Point i has coordinate k equal to element (i / q^k) mod q
// of the canonical element order, so coordinate 0 varies fastest and
// coordinate m-1 slowest.
func Cartesian(f Field, m int) [][]Element {
	q := f.Size()
	elems := f.Elements()
	n := 1
	for i := 0; i < m; i++ {
		n *= q
	}
	points := make([][]Element, n)
	for i := 0; i < n; i++ {
		point := make([]Element, m)
		rest := i
		for k := 0; k < m; k++ {
			point[k] = elems[rest%q]
			rest /= q
		}
		points[i] = point
	}
	return points
}
