// sample.go - Seed expansion: uniform bytes into trinary polynomials.

package ntru

// sampleIID maps each of the first N-1 bytes of uniformBytes to a
// trinary coefficient via reduction mod 3 (Pr[0] = 86/256, Pr[1] =
// Pr[2] = 85/256); coefficient N-1 is set to zero. uniformBytes must
// have length N-1.
func sampleIID(r *poly, uniformBytes []byte) {
	n := len(r.coeffs)
	for i := 0; i < n-1; i++ {
		r.coeffs[i] = mod3(uint16(uniformBytes[i]))
	}
	r.coeffs[n-1] = 0
}

// sampleIIDPlus samples r as sampleIID does, then conditionally flips
// the sign of every even-indexed coefficient so that <x*r, r> >= 0;
// this extra conditioning is specific to the HRSS variant's f and g.
func sampleIIDPlus(r *poly, uniformBytes []byte) {
	n := len(r.coeffs)
	sampleIID(r, uniformBytes)

	// Map {0,1,2} -> {0,1,2^16-1}.
	for i := 0; i < n-1; i++ {
		r.coeffs[i] |= 0 - (r.coeffs[i] >> 1)
	}

	var s uint16
	for i := 0; i < n-1; i++ {
		s += r.coeffs[i+1] * r.coeffs[i]
	}

	// sign(s), with sign(0) = 1.
	s = 1 | (0 - (s >> 15))

	for i := 0; i < n; i += 2 {
		r.coeffs[i] = s * r.coeffs[i]
	}

	// Map {0,1,2^16-1} -> {0,1,2}.
	for i := 0; i < n; i++ {
		r.coeffs[i] = 3 & (r.coeffs[i] ^ (r.coeffs[i] >> 15))
	}
}

// sampleFixedType samples r as an exact fixed-weight trinary
// polynomial (weight/2 coefficients equal to 1, weight/2 coefficients
// equal to -1, i.e. 2, the rest zero) from a bitstream of 30-bit values, one
// per candidate coefficient: the low two bits of each 30-bit lane are
// overwritten with a weight tag (01 for the first weight/2 lanes, 10
// for the next weight/2), the whole array is obliviously sorted by
// cryptoSortInt32 so the tag bits migrate independently of their
// originating position, and the low two bits of the sorted array
// become the output trits. u must have length sampleFTBytes(N), i.e.
// ceil(30*(N-1)/8).
func sampleFixedType(r *poly, u []byte, weight int) {
	n := len(r.coeffs)
	packDeg := n - 1
	s := make([]int32, packDeg)

	full := packDeg / 4
	for i := 0; i < full; i++ {
		s[4*i] = int32(u[15*i]) << 2
		s[4*i] |= int32(u[15*i+1]) << 10
		s[4*i] |= int32(u[15*i+2]) << 18
		s[4*i] |= int32(u[15*i+3]) << 26

		s[4*i+1] = int32(u[15*i+3]&0xc0) >> 4
		s[4*i+1] |= int32(u[15*i+4]) << 4
		s[4*i+1] |= int32(u[15*i+5]) << 12
		s[4*i+1] |= int32(u[15*i+6]) << 20
		s[4*i+1] |= int32(u[15*i+7]) << 28

		s[4*i+2] = int32(u[15*i+7]&0xf0) >> 2
		s[4*i+2] |= int32(u[15*i+8]) << 6
		s[4*i+2] |= int32(u[15*i+9]) << 14
		s[4*i+2] |= int32(u[15*i+10]) << 22
		s[4*i+2] |= int32(u[15*i+11]) << 30

		s[4*i+3] = int32(u[15*i+11] & 0xfc)
		s[4*i+3] |= int32(u[15*i+12]) << 8
		s[4*i+3] |= int32(u[15*i+13]) << 16
		s[4*i+3] |= int32(u[15*i+14]) << 24
	}

	if packDeg > full*4 {
		i := full
		s[4*i] = int32(u[15*i]) << 2
		s[4*i] |= int32(u[15*i+1]) << 10
		s[4*i] |= int32(u[15*i+2]) << 18
		s[4*i] |= int32(u[15*i+3]) << 26

		s[4*i+1] = int32(u[15*i+3]&0xc0) >> 4
		s[4*i+1] |= int32(u[15*i+4]) << 4
		s[4*i+1] |= int32(u[15*i+5]) << 12
		s[4*i+1] |= int32(u[15*i+6]) << 20
		s[4*i+1] |= int32(u[15*i+7]) << 28
	}

	for i := 0; i < weight/2; i++ {
		s[i] |= 1
	}
	for i := weight / 2; i < weight; i++ {
		s[i] |= 2
	}

	cryptoSortInt32(s)

	for i := 0; i < packDeg; i++ {
		r.coeffs[i] = uint16(s[i] & 3)
	}
	r.coeffs[n-1] = 0
}

// sampleFG expands uniformBytes into the secret pair (f, g) for
// owcpaKeypair, dispatching on the ParameterSet's variant: HRSS draws
// both from sampleIIDPlus; HPS draws f from sampleIID and g as an
// exact fixed-weight polynomial via sampleFixedType.
func (p *ParameterSet) sampleFG(f, g *poly, uniformBytes []byte) {
	switch p.variant {
	case variantHRSS:
		sampleIIDPlus(f, uniformBytes[:p.sampleIIDBytes])
		sampleIIDPlus(g, uniformBytes[p.sampleIIDBytes:])
	case variantHPS:
		sampleIID(f, uniformBytes[:p.sampleIIDBytes])
		sampleFixedType(g, uniformBytes[p.sampleIIDBytes:], p.weight)
	}
}

// sampleRM expands uniformBytes into the encapsulation randomness pair
// (r, m), with the same per-variant dispatch as sampleFG.
func (p *ParameterSet) sampleRM(r, m *poly, uniformBytes []byte) {
	switch p.variant {
	case variantHRSS:
		sampleIID(r, uniformBytes[:p.sampleIIDBytes])
		sampleIID(m, uniformBytes[p.sampleIIDBytes:])
	case variantHPS:
		sampleIID(r, uniformBytes[:p.sampleIIDBytes])
		sampleFixedType(m, uniformBytes[p.sampleIIDBytes:], p.weight)
	}
}
