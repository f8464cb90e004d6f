// owcpa.go - The OW-CPA trapdoor: deterministic keypair, encryption and
// decryption underlying the CCA-KEM transform in kem.go.

package ntru

// owcpaCheckCiphertext returns 0 if every unused bit of the final byte
// of a packed ciphertext is zero, 1 otherwise. A ciphertext packs
// logQ*(N-1) bits into bytes; any bits beyond that in the last byte
// are padding and must be zero for the packing to be canonical.
func (p *ParameterSet) owcpaCheckCiphertext(ciphertext []byte) uint16 {
	t := uint16(ciphertext[len(ciphertext)-1])
	t &= 0xff << uint(8-(7&(p.logQ*(p.n-1))))

	return 1 & ((^t + 1) >> 15)
}

// owcpaCheckR returns 0 if r has coefficients only in {0, 1, q-1} and
// r[N-1] = 0, 1 otherwise. r's coefficients are assumed already
// reduced into [0, q).
func (p *ParameterSet) owcpaCheckR(r *poly) uint32 {
	q := uint32(p.q)
	var t uint32

	for i := 0; i < p.n-1; i++ {
		c := uint32(r.coeffs[i])
		t |= (c + 1) & (q - 4) // 0 iff c is in {-1,0,1,2} (mod q)
		t |= (c + 2) & 4       // 1 if c = 2, 0 if c is in {-1,0,1}
	}
	t |= uint32(r.coeffs[p.n-1])

	return 1 & ((^t + 1) >> 31)
}

// owcpaCheckM returns 0 if m has exactly weight/2 coefficients equal
// to 1 and weight/2 equal to 2 (and therefore weight nonzero
// coefficients in total), 1 otherwise. Only meaningful, and only
// invoked, for the HPS variant; m is assumed to have coefficients in
// {0, 1, 2}.
func (p *ParameterSet) owcpaCheckM(m *poly) uint32 {
	var ps, ms uint16
	for _, c := range m.coeffs {
		ps += c & 1
		ms += c & 2
	}

	var t uint32
	t |= uint32(ps ^ (ms >> 1))
	t |= uint32(ms) ^ uint32(p.weight)

	return 1 & ((^t + 1) >> 31)
}

// owcpaKeypair derives a deterministic OW-CPA keypair from seed
// (sampleFGBytes(N) uniform bytes): pk is the sum-zero packed public
// polynomial h, sk is the concatenation of f (trinary-packed), f's
// inverse in S_3 (trinary-packed), and invgf*f^2 (Sq-packed) -
// exactly owcpaSkSize bytes, the prefix that kem.go appends the
// implicit-rejection key z to.
func (p *ParameterSet) owcpaKeypair(pk, sk []byte, seed []byte) {
	f := p.allocPoly()
	g := p.allocPoly()
	x3 := p.allocPoly()
	invgf := p.allocPoly()
	tmp := p.allocPoly()

	p.sampleFG(&f, &g, seed)

	polyS3Inv(&x3, &f)
	polyS3ToBytes(sk[:p.triBytes], &f)
	polyS3ToBytes(sk[p.triBytes:2*p.triBytes], &x3)

	polyZ3ToZq(&f, p.q)
	polyZ3ToZq(&g, p.q)

	switch p.variant {
	case variantHRSS:
		// g = 3*(x-1)*g.
		for i := p.n - 1; i >= 1; i-- {
			g.coeffs[i] = 3 * (g.coeffs[i-1] - g.coeffs[i])
		}
		g.coeffs[0] = 0 - 3*g.coeffs[0]
	case variantHPS:
		for i := range g.coeffs {
			g.coeffs[i] *= 3
		}
	}

	polyRqMul(&x3, &g, &f)
	polyRqInv(&invgf, &x3)
	polyRqMul(&tmp, &invgf, &f)
	polySqMul(&x3, &tmp, &f)
	polySqToBytes(sk[2*p.triBytes:p.owcpaSkSize], &x3, p.logQ)

	polyRqMul(&tmp, &invgf, &g)
	polyRqMul(&x3, &tmp, &g)
	polyRqSumZeroToBytes(pk, &x3, p.logQ)
}

// owcpaEnc computes c = r*h + Lift(m) in R_q and packs it with the
// sum-zero encoding, given the public key pk and (r, m): r must
// already be embedded in R_q via polyZ3ToZq (the {0,1,q-1} trinary
// convention), while m stays in its raw {0,1,2} S_3 form - Lift(m)
// performs m's embedding internally.
func (p *ParameterSet) owcpaEnc(c []byte, r, m *poly, pk []byte) {
	h := p.allocPoly()
	liftm := p.allocPoly()
	ct := p.allocPoly()

	polyRqSumZeroFromBytes(&h, pk, p.q, p.logQ)
	polyRqMul(&ct, r, &h)

	p.lift(&liftm, m)
	for i := range ct.coeffs {
		ct.coeffs[i] += liftm.coeffs[i]
	}

	polyRqSumZeroToBytes(c, &ct, p.logQ)
}

// owcpaDec recovers (r, m) from ciphertext under secretKey, packing r
// into rm[:triBytes] and m into rm[triBytes:2*triBytes]. It returns a
// 16-bit flag that is 0 iff every validity check passed; every check
// is always evaluated and OR-accumulated into the flag, so the amount
// of work done never depends on whether an earlier check failed.
func (p *ParameterSet) owcpaDec(rm, ciphertext, secretKey []byte) uint16 {
	c := p.allocPoly()
	f := p.allocPoly()
	cf := p.allocPoly()
	m := p.allocPoly()

	polyRqSumZeroFromBytes(&c, ciphertext, p.q, p.logQ)

	polyS3FromBytes(&f, secretKey[:p.triBytes])
	polyZ3ToZq(&f, p.q)

	polyRqMul(&cf, &c, &f)
	mf := p.allocPoly()
	polyRqToS3(&mf, &cf, p.q, p.logQ)

	finv3 := p.allocPoly()
	polyS3FromBytes(&finv3, secretKey[p.triBytes:2*p.triBytes])
	polyS3Mul(&m, &mf, &finv3)
	polyS3ToBytes(rm[p.triBytes:2*p.triBytes], &m)

	fail := p.owcpaCheckCiphertext(ciphertext)

	if p.variant == variantHPS {
		fail |= uint16(p.owcpaCheckM(&m))
	}

	liftm := p.allocPoly()
	p.lift(&liftm, &m)
	b := p.allocPoly()
	for i := range b.coeffs {
		b.coeffs[i] = c.coeffs[i] - liftm.coeffs[i]
	}

	invh := p.allocPoly()
	polySqFromBytes(&invh, secretKey[2*p.triBytes:p.owcpaSkSize], p.logQ)
	r := p.allocPoly()
	polySqMul(&r, &b, &invh)

	fail |= uint16(p.owcpaCheckR(&r))

	polyTrinaryZqToZ3(&r, p.q, p.logQ)
	polyS3ToBytes(rm[:p.triBytes], &r)

	return fail
}
