// poly.go - NTRU polynomial.

package ntru

// A poly is an element of R_q = Z_q[x]/(x^N-1), represented densely as
// coeffs[0] + x*coeffs[1] + ... + x^(N-1)*coeffs[N-1]. The semantic
// range of a coefficient depends on context: raw R_q coefficients are
// taken mod q via the power-of-two wraparound of a uint16; trinary
// polynomials use the convention {0, 1, q-1} in R_q (equivalently
// {0, 1, 2} mod 3 in S_3). Each function below documents the range it
// requires on input and the range it guarantees on output. Polynomials
// do not alias their arguments unless explicitly documented.
type poly struct {
	coeffs []uint16
}

func newPoly(n int) poly {
	return poly{coeffs: make([]uint16, n)}
}

func (p *poly) n() int {
	return len(p.coeffs)
}

func (p *poly) clone() poly {
	q := newPoly(len(p.coeffs))
	copy(q.coeffs, p.coeffs)
	return q
}

// modQ reduces x to its canonical representative mod q, where q is a
// power of two.
func modQ(x, q uint16) uint16 {
	return x & (q - 1)
}

// polyZ3ToZq maps every coefficient of r from the trinary convention
// {0, 1, 2} (mod 3) to the R_q convention {0, 1, q-1}, in place,
// branchlessly.
func polyZ3ToZq(r *poly, q uint16) {
	for i, c := range r.coeffs {
		r.coeffs[i] = c | (-(c >> 1) & (q - 1))
	}
}

// polyTrinaryZqToZ3 maps every coefficient of r from the R_q
// convention {0, 1, q-1} back to {0, 1, 2} (mod 3), in place. Only
// valid on polynomials whose coefficients are actually in {0, 1, q-1};
// see owcpaCheckR for the validity predicate.
func polyTrinaryZqToZ3(r *poly, q uint16, logQ int) {
	for i, c := range r.coeffs {
		c = modQ(c, q)
		r.coeffs[i] = 3 & (c ^ (c >> uint(logQ-1)))
	}
}
