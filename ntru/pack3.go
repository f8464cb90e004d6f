// pack3.go - S_3 (trinary) packing: 5 coefficients per byte, base 3.

package ntru

// polyS3ToBytes packs a's first N-1 coefficients (each in {0, 1, 2})
// into msg, 5 coefficients per byte via c0 + 3*c1 + 9*c2 + 27*c3 +
// 81*c4; any remaining (N-1) mod 5 coefficients fill a final partial
// byte. msg must have length triBytes(N).
func polyS3ToBytes(msg []byte, a *poly) {
	packDeg := len(a.coeffs) - 1
	full := packDeg / 5

	for i := 0; i < full; i++ {
		c := a.coeffs[5*i+4] & 0xff
		c = (3*c + a.coeffs[5*i+3]) & 0xff
		c = (3*c + a.coeffs[5*i+2]) & 0xff
		c = (3*c + a.coeffs[5*i+1]) & 0xff
		c = (3*c + a.coeffs[5*i]) & 0xff
		msg[i] = byte(c)
	}

	if packDeg > full*5 {
		i := full
		var c uint16
		for j := packDeg - 5*i - 1; j >= 0; j-- {
			c = (3*c + a.coeffs[5*i+j]) & 0xff
		}
		msg[i] = byte(c)
	}
}

// polyS3FromBytes unpacks msg into r, the inverse of polyS3ToBytes.
// Division by powers of 3 is replaced by fixed-point reciprocal
// multiplications (171, 57, 19, 203, with shifts of 9 or 14) so the
// routine never branches on a coefficient value. Coefficient N-1 is
// zeroed and Phi_N reduction mod 3 is applied before return.
func polyS3FromBytes(r *poly, msg []byte) {
	n := len(r.coeffs)
	packDeg := n - 1
	full := packDeg / 5

	for i := 0; i < full; i++ {
		c := uint16(msg[i])
		r.coeffs[5*i] = c
		r.coeffs[5*i+1] = (c * 171) >> 9 // division by 3
		r.coeffs[5*i+2] = (c * 57) >> 9  // division by 3^2
		r.coeffs[5*i+3] = (c * 19) >> 9  // division by 3^3
		r.coeffs[5*i+4] = (c * 203) >> 14
	}

	if packDeg > full*5 {
		i := full
		c := uint16(msg[i])
		for j := 0; 5*i+j < packDeg; j++ {
			r.coeffs[5*i+j] = c
			c = (c * 171) >> 9
		}
	}

	r.coeffs[n-1] = 0
	polyMod3PhiN(r)
}
