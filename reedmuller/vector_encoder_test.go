package reedmuller

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"evalcode/field"
)

// TestVectorEncoder_GeneratorMatrix tests the generator matrix of the
// GF(3), order 2, 2 variables code entry by entry.
func TestVectorEncoder_GeneratorMatrix(t *testing.T) {
	f := mustField(t, 3)
	c, err := NewQAryCode(f, 2, 2)
	require.NoError(t, err)
	e := NewVectorEncoder(c)

	want := [][]int{
		{1, 1, 1, 1, 1, 1, 1, 1, 1},
		{0, 1, 2, 0, 1, 2, 0, 1, 2},
		{0, 0, 0, 1, 1, 1, 2, 2, 2},
		{0, 1, 1, 0, 1, 1, 0, 1, 1},
		{0, 0, 0, 0, 1, 2, 0, 2, 1},
		{0, 0, 0, 1, 1, 1, 1, 1, 1},
	}
	gen := e.GeneratorMatrix()
	require.Len(t, gen, len(want))
	for j, row := range want {
		requireElemsEqual(t, elems(f, row...), gen[j])
	}
}

// TestVectorEncoder_FullRank tests that the generator rows are linearly
// independent, so the matrix really has rank Dimension().
func TestVectorEncoder_FullRank(t *testing.T) {
	qary, err := NewQAryCode(mustField(t, 3), 2, 2)
	require.NoError(t, err)
	bin, err := NewBinaryCode(2, 4)
	require.NoError(t, err)

	for _, c := range []*Code{qary, bin} {
		e := NewVectorEncoder(c)
		require.True(t, field.IsLinearlyIndependent(e.GeneratorMatrix(), c.Field()), "%s", c)
	}
}

// TestVectorEncoder_EncodeBasisVectors tests that unit coefficient vectors
// encode to the corresponding generator rows.
func TestVectorEncoder_EncodeBasisVectors(t *testing.T) {
	f := mustField(t, 3)
	c, err := NewQAryCode(f, 2, 2)
	require.NoError(t, err)
	e := NewVectorEncoder(c)

	for j := 0; j < c.Dimension(); j++ {
		msg := make([]field.Element, c.Dimension())
		for i := range msg {
			msg[i] = f.Zero()
		}
		msg[j] = f.One()

		cw, err := e.Encode(msg)
		require.NoError(t, err)
		requireElemsEqual(t, e.GeneratorMatrix()[j], cw)
	}
}

// TestVectorEncoder_DimensionMismatch tests rejection of wrong-length
// messages.
func TestVectorEncoder_DimensionMismatch(t *testing.T) {
	f := mustField(t, 3)
	c, err := NewQAryCode(f, 2, 2)
	require.NoError(t, err)
	e := NewVectorEncoder(c)

	_, err = e.Encode(elems(f, 1, 2))
	require.ErrorIs(t, err, ErrDimensionMismatch)
	_, err = e.Encode(nil)
	require.ErrorIs(t, err, ErrDimensionMismatch)
	_, err = e.Encode(elems(f, 1, 2, 0, 1, 2, 0, 1))
	require.ErrorIs(t, err, ErrDimensionMismatch)
}

// TestVectorEncoder_Linearity tests that encoding is linear:
// encode(a + s*b) = encode(a) + s*encode(b).
func TestVectorEncoder_Linearity(t *testing.T) {
	f := mustField(t, 5)
	c, err := NewQAryCode(f, 3, 2)
	require.NoError(t, err)
	e := NewVectorEncoder(c)

	rng := rand.New(rand.NewSource(1))
	for trial := 0; trial < 5; trial++ {
		a := make([]field.Element, c.Dimension())
		b := make([]field.Element, c.Dimension())
		combo := make([]field.Element, c.Dimension())
		s := f.FromInt(rng.Intn(5))
		for i := range a {
			a[i] = f.FromInt(rng.Intn(5))
			b[i] = f.FromInt(rng.Intn(5))
			combo[i] = a[i].Add(s.Mul(b[i]))
		}

		ca, err := e.Encode(a)
		require.NoError(t, err)
		cb, err := e.Encode(b)
		require.NoError(t, err)
		cc, err := e.Encode(combo)
		require.NoError(t, err)

		for i := range cc {
			require.True(t, cc[i].Equal(ca[i].Add(s.Mul(cb[i]))), "position %d", i)
		}
	}
}

// TestVectorEncoder_RepetitionCode tests the order-zero boundary: every
// codeword is constant.
func TestVectorEncoder_RepetitionCode(t *testing.T) {
	f := mustField(t, 3)
	c, err := NewQAryCode(f, 0, 2)
	require.NoError(t, err)
	e := NewVectorEncoder(c)

	cw, err := e.Encode(elems(f, 2))
	require.NoError(t, err)
	require.Len(t, cw, 9)
	for i := range cw {
		require.True(t, cw[i].Equal(f.FromInt(2)))
	}
}

// TestVectorEncoder_String tests the display form.
func TestVectorEncoder_String(t *testing.T) {
	c, err := NewQAryCode(mustField(t, 3), 2, 2)
	require.NoError(t, err)
	require.Equal(t,
		"evaluation vector encoder for 3-ary Reed Muller Code of order 2 and number of variables 2",
		NewVectorEncoder(c).String())
}
