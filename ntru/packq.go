// packq.go - S_q packing: log2(q)-bit fields, little-endian, and the
// sum-zero encoding used for public keys and ciphertexts.

package ntru

// packBitsLE packs the first len(coeffs) values, each masked to its low
// bits bits (i.e. reduced mod 2^bits), into dst as consecutive
// little-endian bit-fields of width bits. dst
// must have length ceil(len(coeffs)*bits/8). The number of byte writes
// performed depends only on len(coeffs) and bits, never on the
// coefficient values.
func packBitsLE(dst []byte, coeffs []uint16, bits int) {
	mask := uint32(1)<<uint(bits) - 1
	var acc uint32
	accBits := 0
	pos := 0
	for _, c := range coeffs {
		acc |= (uint32(c) & mask) << uint(accBits)
		accBits += bits
		for accBits >= 8 {
			dst[pos] = byte(acc)
			acc >>= 8
			accBits -= 8
			pos++
		}
	}
	if accBits > 0 {
		dst[pos] = byte(acc)
	}
}

// unpackBitsLE is the inverse of packBitsLE: it fills coeffs from src,
// masking each extracted field to bits bits.
func unpackBitsLE(coeffs []uint16, src []byte, bits int) {
	mask := uint32(1)<<uint(bits) - 1
	var acc uint32
	accBits := 0
	pos := 0
	for i := range coeffs {
		for accBits < bits {
			acc |= uint32(src[pos]) << uint(accBits)
			accBits += 8
			pos++
		}
		coeffs[i] = uint16(acc & mask)
		acc >>= uint(bits)
		accBits -= bits
	}
}

// polySqToBytes packs a's first N-1 coefficients as logQ-bit
// little-endian fields. Coefficient N-1 is not encoded; it is assumed
// to be (and must be) zero, as produced by an Sq element reduced
// modulo Phi_N. Used for the secret key's packed h^-1 field.
func polySqToBytes(r []byte, a *poly, logQ int) {
	packBitsLE(r, a.coeffs[:len(a.coeffs)-1], logQ)
}

// polySqFromBytes is the inverse of polySqToBytes; coefficient N-1 is
// set to zero.
func polySqFromBytes(a *poly, r []byte, logQ int) {
	n := len(a.coeffs)
	unpackBitsLE(a.coeffs[:n-1], r, logQ)
	a.coeffs[n-1] = 0
}

// polyRqSumZeroToBytes packs a's first N-1 coefficients the same way
// as polySqToBytes does, for an element of the sum-zero subring of
// R_q used by public keys and ciphertexts (every such element has
// coefficients that sum to 0 mod q, so coefficient N-1 carries no
// independent information and need not be encoded).
func polyRqSumZeroToBytes(r []byte, a *poly, logQ int) {
	packBitsLE(r, a.coeffs[:len(a.coeffs)-1], logQ)
}

// polyRqSumZeroFromBytes is the inverse of polyRqSumZeroToBytes: it
// unpacks N-1 coefficients and reconstructs coefficient N-1 so that
// the sum of all N coefficients is congruent to 0 mod q.
func polyRqSumZeroFromBytes(a *poly, r []byte, q uint16, logQ int) {
	n := len(a.coeffs)
	unpackBitsLE(a.coeffs[:n-1], r, logQ)

	var sum uint16
	for _, c := range a.coeffs[:n-1] {
		sum += c
	}
	a.coeffs[n-1] = modQ(0-sum, q)
}
