package poly

import (
	"sort"
	"strconv"
	"strings"

	"evalcode/field"
)

// Term is one monomial of a polynomial: a non-zero coefficient and one
// exponent per ring variable.
type Term struct {
	Coeff field.Element
	Exps  []int
}

func (t Term) degree() int {
	d := 0
	for _, e := range t.Exps {
		d += e
	}
	return d
}

// Polynomial is a multivariate polynomial over a finite field, stored as a
// sparse set of terms. The zero polynomial has no terms.
type Polynomial struct {
	ring  *Ring
	terms map[string]Term
}

// expKey packs an exponent vector into a map key
func expKey(exps []int) string {
	b := make([]byte, 2*len(exps))
	for i, e := range exps {
		b[2*i] = byte(e >> 8)
		b[2*i+1] = byte(e)
	}
	return string(b)
}

// addTerm adds c * x^exps into p, removing the term if the coefficient
// cancels to zero. The exponent slice is copied.
func (p *Polynomial) addTerm(c field.Element, exps []int) {
	if c.IsZero() {
		return
	}
	key := expKey(exps)
	if t, ok := p.terms[key]; ok {
		sum := t.Coeff.Add(c)
		if sum.IsZero() {
			delete(p.terms, key)
			return
		}
		p.terms[key] = Term{Coeff: sum, Exps: t.Exps}
		return
	}
	cp := make([]int, len(exps))
	copy(cp, exps)
	p.terms[key] = Term{Coeff: c.Clone(), Exps: cp}
}

// Ring returns the ring the polynomial belongs to
func (p *Polynomial) Ring() *Ring {
	return p.ring
}

// IsZero returns true if p is the zero polynomial
func (p *Polynomial) IsZero() bool {
	return len(p.terms) == 0
}

// Clone returns a copy of p
func (p *Polynomial) Clone() *Polynomial {
	out := p.ring.Zero()
	for _, t := range p.terms {
		out.addTerm(t.Coeff, t.Exps)
	}
	return out
}

// Add returns p + other
func (p *Polynomial) Add(other *Polynomial) *Polynomial {
	out := p.Clone()
	for _, t := range other.terms {
		out.addTerm(t.Coeff, t.Exps)
	}
	return out
}

// ShiftVar returns p multiplied by the k-th power of the given variable
func (p *Polynomial) ShiftVar(varIdx, k int) *Polynomial {
	out := p.ring.Zero()
	for _, t := range p.terms {
		exps := make([]int, len(t.Exps))
		copy(exps, t.Exps)
		exps[varIdx] += k
		out.addTerm(t.Coeff, exps)
	}
	return out
}

// Evaluate returns the value of p at the given point, one coordinate per
// ring variable
func (p *Polynomial) Evaluate(point []field.Element) field.Element {
	f := p.ring.field
	result := f.Zero()
	for _, t := range p.terms {
		v := t.Coeff
		for k, e := range t.Exps {
			v = v.Mul(field.Pow(f, point[k], e))
		}
		result = result.Add(v)
	}
	return result
}

// TotalDegree returns the total degree of p, and -1 for the zero polynomial
func (p *Polynomial) TotalDegree() int {
	if len(p.terms) == 0 {
		return -1
	}
	d := 0
	for _, t := range p.terms {
		if td := t.degree(); td > d {
			d = td
		}
	}
	return d
}

// Coefficient returns the coefficient of the monomial with the given
// exponent vector, zero if absent
func (p *Polynomial) Coefficient(exps []int) field.Element {
	if t, ok := p.terms[expKey(exps)]; ok {
		return t.Coeff.Clone()
	}
	return p.ring.field.Zero()
}

// Terms returns the terms of p, highest total degree first and within a
// degree in decreasing lexicographic exponent order
func (p *Polynomial) Terms() []Term {
	out := make([]Term, 0, len(p.terms))
	for _, t := range p.terms {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool {
		di, dj := out[i].degree(), out[j].degree()
		if di != dj {
			return di > dj
		}
		for k := range out[i].Exps {
			if out[i].Exps[k] != out[j].Exps[k] {
				return out[i].Exps[k] > out[j].Exps[k]
			}
		}
		return false
	})
	return out
}

// Equal returns true if p and other have the same terms with equal
// coefficients
func (p *Polynomial) Equal(other *Polynomial) bool {
	if !p.ring.Equal(other.ring) {
		return false
	}
	if len(p.terms) != len(other.terms) {
		return false
	}
	for key, t := range p.terms {
		o, ok := other.terms[key]
		if !ok || !t.Coeff.Equal(o.Coeff) {
			return false
		}
	}
	return true
}

// String returns a human-readable form like "x0*x1 + x1^2 + x0 + x1 + 1"
func (p *Polynomial) String() string {
	if p.IsZero() {
		return "0"
	}
	one := p.ring.field.One()
	parts := make([]string, 0, len(p.terms))
	for _, t := range p.Terms() {
		parts = append(parts, t.format(one))
	}
	return strings.Join(parts, " + ")
}

func (t Term) format(one field.Element) string {
	var vars []string
	for k, e := range t.Exps {
		switch {
		case e == 1:
			vars = append(vars, "x"+strconv.Itoa(k))
		case e > 1:
			vars = append(vars, "x"+strconv.Itoa(k)+"^"+strconv.Itoa(e))
		}
	}
	if len(vars) == 0 {
		return t.Coeff.String()
	}
	mono := strings.Join(vars, "*")
	if t.Coeff.Equal(one) {
		return mono
	}
	return t.Coeff.String() + "*" + mono
}
