// lift.go - The Lift operator: S_3 -> R_q, per HPS/HRSS variant.

package ntru

// lift maps m, an element of S_3 with coefficients in {0, 1, 2}, into
// R_q. For HPS, Lift is simply the canonical embedding {0,1,2} ->
// {0,1,q-1}. For HRSS, Lift(m) = (x-1)*b, where b = m/(x-1) mod
// (3, Phi_N) is computed by a prefix sweep (after adding the multiple
// of Phi_N that makes m's coefficients sum to 0 mod 3), embedded into
// {0,1,q-1} and then multiplied by (x-1). Lift(m) is therefore
// congruent to m mod (3, Phi_N) and its coefficients sum to 0 mod q.
// r must not alias m.
func (p *ParameterSet) lift(r, m *poly) {
	copy(r.coeffs, m.coeffs)
	polyZ3ToZq(r, p.q)

	if p.variant == variantHRSS {
		n := len(r.coeffs)
		var s uint16
		for _, c := range m.coeffs {
			s += c
		}
		r.coeffs[0] = 0
		for i := 1; i < n; i++ {
			r.coeffs[i] = mod3(r.coeffs[i-1] + 2*m.coeffs[i] + mod3(s)*uint16(n%3))
		}
		polyMod3PhiN(r)
		polyZ3ToZq(r, p.q)
		for i := n - 1; i >= 1; i-- {
			r.coeffs[i] = r.coeffs[i-1] - r.coeffs[i]
		}
		r.coeffs[0] = 0 - r.coeffs[0]
	}
}
