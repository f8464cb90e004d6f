// owcpa_test.go - OW-CPA trapdoor round-trip and validity-check tests.

package ntru

import (
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOwcpaRoundTrip(t *testing.T) {
	for _, p := range allParams {
		t.Run(p.Name(), func(t *testing.T) {
			seed := make([]byte, p.sampleFGBytes)
			_, err := rand.Read(seed)
			require.NoError(t, err)

			pk := make([]byte, p.pkBytes)
			sk := make([]byte, p.owcpaSkSize)
			p.owcpaKeypair(pk, sk, seed)

			rmSeed := make([]byte, p.sampleRMBytes)
			_, err = rand.Read(rmSeed)
			require.NoError(t, err)

			r := p.allocPoly()
			m := p.allocPoly()
			p.sampleRM(&r, &m, rmSeed)

			rLifted := r.clone()
			polyZ3ToZq(&rLifted, p.q)

			ct := make([]byte, p.ctBytes)
			p.owcpaEnc(ct, &rLifted, &m, pk)

			rm := make([]byte, 2*p.triBytes)
			fail := p.owcpaDec(rm, ct, sk)
			require.EqualValues(t, 0, fail, "owcpaDec reported failure on a genuine ciphertext")

			wantRM := make([]byte, 2*p.triBytes)
			polyS3ToBytes(wantRM[:p.triBytes], &r)
			polyS3ToBytes(wantRM[p.triBytes:], &m)
			require.Equal(t, wantRM, rm)
		})
	}
}

func TestOwcpaCheckCiphertextRejectsStrayBits(t *testing.T) {
	for _, p := range allParams {
		ct := make([]byte, p.ctBytes)
		require.EqualValues(t, 0, p.owcpaCheckCiphertext(ct), p.Name())

		unused := 8 - (7 & (p.logQ * (p.n - 1)))
		if unused == 8 {
			continue // byte is fully used, nothing to corrupt
		}
		ct[len(ct)-1] |= 1 << uint(8-unused)
		require.EqualValues(t, 1, p.owcpaCheckCiphertext(ct), p.Name())
	}
}

func TestOwcpaCheckRAcceptsOnlyTrinary(t *testing.T) {
	for _, p := range allParams {
		r := p.allocPoly() // all zero: valid trinary
		require.EqualValues(t, 0, p.owcpaCheckR(&r), p.Name())

		r.coeffs[0] = p.q - 1 // -1, valid
		require.EqualValues(t, 0, p.owcpaCheckR(&r), p.Name())

		r.coeffs[0] = 2 // not in {0,1,q-1}
		require.EqualValues(t, 1, p.owcpaCheckR(&r), p.Name())

		r2 := p.allocPoly()
		r2.coeffs[p.n-1] = 1 // n-1 must be zero
		require.EqualValues(t, 1, p.owcpaCheckR(&r2), p.Name())
	}
}

func TestOwcpaCheckMValidatesWeight(t *testing.T) {
	for _, p := range allParams {
		if p.variant != variantHPS {
			continue
		}

		m := p.allocPoly()
		for i := 0; i < p.weight/2; i++ {
			m.coeffs[i] = 1
		}
		for i := p.weight / 2; i < p.weight; i++ {
			m.coeffs[i] = 2
		}
		require.EqualValues(t, 0, p.owcpaCheckM(&m), p.Name())

		m.coeffs[0] = 2 // unbalances the 1/2 count
		require.EqualValues(t, 1, p.owcpaCheckM(&m), p.Name())
	}
}
