package reedmuller

// ExponentBasis returns the exponent vectors of the monomials forming the
// message basis, exactly Dimension() of them. Monomials are enumerated in
// graded order: total degree 0 up to the code order, and within a degree in
// lexicographic order of the sorted variable-index multiset, each variable
// appearing at most q-1 times. This order fixes the row order of the
// generator matrix.
func (c *Code) ExponentBasis() [][]int {
	maxPerVar := c.q - 1
	out := make([][]int, 0, c.dim)
	exps := make([]int, c.numVars)

	emit := func() {
		cp := make([]int, len(exps))
		copy(cp, exps)
		out = append(out, cp)
	}

	var pick func(from, left int)
	pick = func(from, left int) {
		if left == 0 {
			emit()
			return
		}
		for i := from; i < c.numVars; i++ {
			if exps[i] == maxPerVar {
				continue
			}
			exps[i]++
			pick(i, left-1)
			exps[i]--
		}
	}

	for size := 0; size <= c.order && len(out) < c.dim; size++ {
		pick(0, size)
	}
	if len(out) > c.dim {
		out = out[:c.dim]
	}
	return out
}
