package poly

import (
	"testing"

	"github.com/stretchr/testify/require"

	"evalcode/field"
)

func gf3(t *testing.T) field.Field {
	f, err := field.NewPrimeField(3)
	require.NoError(t, err)
	return f
}

// samplePoly builds 1 + x0 + x1 + x1^2 + x0*x1 over the given ring
func samplePoly(r *Ring) *Polynomial {
	one := r.Field().One()
	p := r.Constant(one)
	p = p.Add(r.Monomial(one, []int{1, 0}))
	p = p.Add(r.Monomial(one, []int{0, 1}))
	p = p.Add(r.Monomial(one, []int{0, 2}))
	p = p.Add(r.Monomial(one, []int{1, 1}))
	return p
}

// TestPolynomial_Evaluate tests evaluation of a known polynomial at a few
// points of GF(3)^2.
func TestPolynomial_Evaluate(t *testing.T) {
	f := gf3(t)
	r := NewRing(f, 2)
	p := samplePoly(r)

	cases := []struct {
		point []int
		want  int
	}{
		{[]int{0, 0}, 1},
		{[]int{1, 0}, 2},
		{[]int{2, 0}, 0},
		{[]int{1, 1}, 2},
		{[]int{2, 2}, 1},
	}
	for _, c := range cases {
		point := []field.Element{f.FromInt(c.point[0]), f.FromInt(c.point[1])}
		require.True(t, p.Evaluate(point).Equal(f.FromInt(c.want)), "point %v", c.point)
	}
}

// TestPolynomial_Degree tests total degree bookkeeping, including the -1
// convention for the zero polynomial.
func TestPolynomial_Degree(t *testing.T) {
	f := gf3(t)
	r := NewRing(f, 2)

	require.Equal(t, -1, r.Zero().TotalDegree())
	require.Equal(t, 0, r.Constant(f.One()).TotalDegree())
	require.Equal(t, 2, samplePoly(r).TotalDegree())
	require.Equal(t, 5, r.Monomial(f.One(), []int{2, 3}).TotalDegree())
}

// TestPolynomial_AddCancel tests that addition cancels terms over the field
// characteristic.
func TestPolynomial_AddCancel(t *testing.T) {
	f := gf3(t)
	r := NewRing(f, 2)

	a := r.Monomial(f.FromInt(1), []int{1, 0})
	b := r.Monomial(f.FromInt(2), []int{1, 0})
	require.True(t, a.Add(b).IsZero())

	// Adding a disjoint term keeps both
	c := a.Add(r.Monomial(f.One(), []int{0, 1}))
	require.Equal(t, 2, len(c.Terms()))
}

// TestPolynomial_ShiftVar tests multiplication by a variable power.
func TestPolynomial_ShiftVar(t *testing.T) {
	f := gf3(t)
	r := NewRing(f, 2)

	p := r.Constant(f.FromInt(2)).Add(r.Monomial(f.One(), []int{1, 0}))
	shifted := p.ShiftVar(1, 2)

	require.True(t, shifted.Coefficient([]int{0, 2}).Equal(f.FromInt(2)))
	require.True(t, shifted.Coefficient([]int{1, 2}).Equal(f.One()))
	require.True(t, shifted.Coefficient([]int{0, 0}).IsZero())

	// Shifting by zero is the identity
	require.True(t, p.ShiftVar(0, 0).Equal(p))
}

// TestPolynomial_Coefficient tests coefficient extraction.
func TestPolynomial_Coefficient(t *testing.T) {
	f := gf3(t)
	r := NewRing(f, 2)
	p := samplePoly(r)

	require.True(t, p.Coefficient([]int{0, 0}).Equal(f.One()))
	require.True(t, p.Coefficient([]int{1, 1}).Equal(f.One()))
	require.True(t, p.Coefficient([]int{2, 0}).IsZero())
}

// TestPolynomial_Equal tests structural equality, also across distinct ring
// instances with the same shape.
func TestPolynomial_Equal(t *testing.T) {
	f := gf3(t)
	r1 := NewRing(f, 2)
	r2 := NewRing(f, 2)

	require.True(t, samplePoly(r1).Equal(samplePoly(r2)))
	require.False(t, samplePoly(r1).Equal(r1.Zero()))
	require.False(t, samplePoly(r1).Equal(samplePoly(r1).Add(r1.Constant(f.One()))))
}

// TestPolynomial_String tests the display form against the expected
// graded ordering.
func TestPolynomial_String(t *testing.T) {
	f := gf3(t)
	r := NewRing(f, 2)

	require.Equal(t, "x0*x1 + x1^2 + x0 + x1 + 1", samplePoly(r).String())
	require.Equal(t, "0", r.Zero().String())
	require.Equal(t, "2*x0^2", r.Monomial(f.FromInt(2), []int{2, 0}).String())
}

// TestRing_Equal tests ring compatibility by field size and variable count.
func TestRing_Equal(t *testing.T) {
	f3 := gf3(t)
	f5, err := field.NewPrimeField(5)
	require.NoError(t, err)

	require.True(t, NewRing(f3, 2).Equal(NewRing(f3, 2)))
	require.False(t, NewRing(f3, 2).Equal(NewRing(f3, 3)))
	require.False(t, NewRing(f3, 2).Equal(NewRing(f5, 2)))
	require.False(t, NewRing(f3, 2).Equal(nil))
}
