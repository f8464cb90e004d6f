// inv_rq.go - Lifting the R_2 inverse to an R_q inverse via Newton iteration.

package ntru

// polyR2InvToRqInv lifts ai, the inverse of a in R_2, to r = a^-1 in
// R_q via four Newton iterations r <- r*(2 - a*r) mod q. Since q fits
// in 16 bits for every supported parameter set, each iteration is a
// pair of poly_rq_mul calls plus a constant-time "+2" of the zeroth
// coefficient; four iterations double the correct 2-adic precision
// each time and suffice whenever q <= 2^16.
func polyR2InvToRqInv(r *poly, ai, a *poly) {
	n := len(a.coeffs)
	b := newPoly(n)
	c := newPoly(n)
	s := newPoly(n)

	for i := 0; i < n; i++ {
		b.coeffs[i] = 0 - a.coeffs[i]
	}
	copy(r.coeffs, ai.coeffs)

	polyRqMul(&c, r, &b)
	c.coeffs[0] += 2 // c = 2 - a*r
	polyRqMul(&s, &c, r)

	polyRqMul(&c, &s, &b)
	c.coeffs[0] += 2
	polyRqMul(r, &c, &s)

	polyRqMul(&c, r, &b)
	c.coeffs[0] += 2
	polyRqMul(&s, &c, r)

	polyRqMul(&c, &s, &b)
	c.coeffs[0] += 2
	polyRqMul(r, &c, &s)
}

// polyRqInv computes r = a^-1 in R_q by first finding the exact,
// cheap inverse of a in R_2 and then lifting it by Newton iteration.
// a must be invertible in R_2 (which implies it is invertible in R_q).
func polyRqInv(r, a *poly) {
	ai2 := newPoly(len(a.coeffs))
	polyR2Inv(&ai2, a)
	polyR2InvToRqInv(r, &ai2, a)
}
