// polymod.go - Modular reduction primitives: mod3 and reduction by Phi_N.

package ntru

// mod3 reduces a 16-bit value mod 3, returning a value in {0, 1, 2}.
// It uses only masks, shifts and a constant-time conditional
// subtraction so that no branch or memory access depends on a.
func mod3(a uint16) uint16 {
	r := (a >> 8) + (a & 0xff) // r mod 255 == a mod 255
	r = (r >> 4) + (r & 0xf)   // r' mod 15 == r mod 15
	r = (r >> 2) + (r & 0x3)   // r' mod 3 == r mod 3
	r = (r >> 2) + (r & 0x3)   // r' mod 3 == r mod 3

	t := int16(r) - 3
	c := t >> 15

	return uint16(c)&r ^ uint16(^c)&uint16(t)
}

// polyModQPhiN reduces r modulo Phi_N(x) = 1 + x + ... + x^(N-1) in
// R_q, by subtracting coefficient N-1 from every coefficient.
func polyModQPhiN(r *poly) {
	last := r.coeffs[len(r.coeffs)-1]
	for i := range r.coeffs {
		r.coeffs[i] -= last
	}
}

// polyMod3PhiN reduces r modulo Phi_N(x) in S_3, by adding twice
// coefficient N-1 to every coefficient and folding mod 3.
func polyMod3PhiN(r *poly) {
	last := r.coeffs[len(r.coeffs)-1]
	bump := 2 * last
	for i, c := range r.coeffs {
		r.coeffs[i] = mod3(c + bump)
	}
}

// polyRqToS3 reduces a (an element of R_q whose coefficients are
// stored as non-negative integers) mod (3, Phi_N(x)) into r. It must
// first re-center each coefficient into [-q/2, q/2) before reducing
// mod 3.
func polyRqToS3(r *poly, a *poly, q uint16, logQ int) {
	for i, c := range a.coeffs {
		c = modQ(c, q)

		// flag = 1 if c >= q/2, else 0.
		flag := c >> uint(logQ-1)

		// (-q) mod 3 == (-2^logQ) mod 3 == 1 << (1 - (logQ & 1)).
		c += flag << uint(1-(logQ&1))

		r.coeffs[i] = c
	}
	polyMod3PhiN(r)
}
