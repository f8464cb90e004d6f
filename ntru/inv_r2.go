// inv_r2.go - Constant-time inverse in R_2 = F_2[x]/(x^N-1).

package ntru

func bothNegativeMaskR2(x, y int16) int16 {
	return (x & y) >> 15
}

// polyR2Inv computes r = a^-1 in R_2, using the constant-time
// almost-inverse algorithm (Bernstein-Yang style): it runs
// 2(N-1)-1 iterations over (f, g, v, w) and a signed delta, swapping
// and accumulating under arithmetic masks so that no branch, loop
// bound or memory address depends on the coefficients of a. a is
// read via its low bit only and is not otherwise constrained; a must
// be invertible in R_2 (gcd(a(x), x^N-1) = 1 over F_2).
func polyR2Inv(r, a *poly) {
	n := len(a.coeffs)

	v := newPoly(n)
	w := newPoly(n)
	f := newPoly(n)
	g := newPoly(n)

	for i := range f.coeffs {
		f.coeffs[i] = 1
	}
	w.coeffs[0] = 1

	for i := 0; i < n-1; i++ {
		g.coeffs[n-2-i] = (a.coeffs[i] ^ a.coeffs[n-1]) & 1
	}
	g.coeffs[n-1] = 0

	var delta int16 = 1

	for iter := 0; iter < 2*(n-1)-1; iter++ {
		for i := n - 1; i >= 1; i-- {
			v.coeffs[i] = v.coeffs[i-1]
		}
		v.coeffs[0] = 0

		sign := int16(g.coeffs[0] & f.coeffs[0])
		swap := bothNegativeMaskR2(-delta, -int16(g.coeffs[0]))
		delta ^= swap & (delta ^ (-delta))
		delta++

		for i := 0; i < n; i++ {
			t := swap & int16(f.coeffs[i]^g.coeffs[i])
			f.coeffs[i] ^= uint16(t)
			g.coeffs[i] ^= uint16(t)
			t = swap & int16(v.coeffs[i]^w.coeffs[i])
			v.coeffs[i] ^= uint16(t)
			w.coeffs[i] ^= uint16(t)
		}
		for i := 0; i < n; i++ {
			g.coeffs[i] ^= uint16(sign) & f.coeffs[i]
		}
		for i := 0; i < n; i++ {
			w.coeffs[i] ^= uint16(sign) & v.coeffs[i]
		}
		for i := 0; i < n-1; i++ {
			g.coeffs[i] = g.coeffs[i+1]
		}
		g.coeffs[n-1] = 0
	}

	for i := 0; i < n-1; i++ {
		r.coeffs[i] = v.coeffs[n-2-i]
	}
	r.coeffs[n-1] = 0
}
