package poly

import "evalcode/field"

// Interpolate returns the coefficients, constant term first, of the unique
// univariate polynomial of degree below len(xs) passing through the points
// (xs[i], ys[i]). The xs must be pairwise distinct. The returned slice
// always has length len(xs); high coefficients of a lower-degree result are
// zero.
func Interpolate(f field.Field, xs, ys []field.Element) []field.Element {
	n := len(xs)
	coeffs := make([]field.Element, n)
	for i := range coeffs {
		coeffs[i] = f.Zero()
	}
	for i := 0; i < n; i++ {
		// Lagrange basis polynomial for node i:
		// prod_{j != i} (x - xs[j]) / (xs[i] - xs[j])
		num := []field.Element{f.One()}
		denom := f.One()
		for j := 0; j < n; j++ {
			if j == i {
				continue
			}
			num = mulLinear(f, num, xs[j])
			denom = denom.Mul(xs[i].Sub(xs[j]))
		}
		scale := ys[i].Mul(denom.Inv())
		for k := range num {
			coeffs[k] = coeffs[k].Add(num[k].Mul(scale))
		}
	}
	return coeffs
}

// mulLinear multiplies the coefficient vector p by the linear factor (x - a)
func mulLinear(f field.Field, p []field.Element, a field.Element) []field.Element {
	out := make([]field.Element, len(p)+1)
	for i := range out {
		out[i] = f.Zero()
	}
	for i, c := range p {
		out[i+1] = out[i+1].Add(c)
		out[i] = out[i].Sub(c.Mul(a))
	}
	return out
}
