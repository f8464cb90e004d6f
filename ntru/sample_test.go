// sample_test.go - Seed-expansion determinism and shape tests.

package ntru

import (
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSampleIIDIsDeterministic(t *testing.T) {
	for _, p := range allParams {
		buf := make([]byte, p.sampleIIDBytes)
		_, err := rand.Read(buf)
		require.NoError(t, err)

		a := p.allocPoly()
		b := p.allocPoly()
		sampleIID(&a, buf)
		sampleIID(&b, buf)

		require.Equal(t, a.coeffs, b.coeffs, p.Name())
		require.EqualValues(t, 0, a.coeffs[p.n-1])
		for _, c := range a.coeffs {
			require.Less(t, c, uint16(3))
		}
	}
}

func TestSampleFixedTypeHasExactWeight(t *testing.T) {
	for _, p := range allParams {
		if p.variant != variantHPS {
			continue
		}

		buf := make([]byte, p.sampleFTBytes)
		_, err := rand.Read(buf)
		require.NoError(t, err)

		g := p.allocPoly()
		sampleFixedType(&g, buf, p.weight)

		var ones, twos int
		for _, c := range g.coeffs {
			switch c {
			case 1:
				ones++
			case 2:
				twos++
			}
		}

		require.Equal(t, p.weight/2, ones, p.Name())
		require.Equal(t, p.weight/2, twos, p.Name())
		require.EqualValues(t, 0, g.coeffs[p.n-1])
	}
}

func TestSampleIIDPlusProducesTrinary(t *testing.T) {
	for _, p := range allParams {
		if p.variant != variantHRSS {
			continue
		}

		buf := make([]byte, p.sampleIIDBytes)
		_, err := rand.Read(buf)
		require.NoError(t, err)

		r := p.allocPoly()
		sampleIIDPlus(&r, buf)

		for _, c := range r.coeffs {
			require.Less(t, c, uint16(3))
		}
	}
}

func TestSampleFGAndRMAreDeterministic(t *testing.T) {
	for _, p := range allParams {
		fgSeed := make([]byte, p.sampleFGBytes)
		_, err := rand.Read(fgSeed)
		require.NoError(t, err)

		f1, g1 := p.allocPoly(), p.allocPoly()
		f2, g2 := p.allocPoly(), p.allocPoly()
		p.sampleFG(&f1, &g1, fgSeed)
		p.sampleFG(&f2, &g2, fgSeed)
		require.Equal(t, f1.coeffs, f2.coeffs, p.Name())
		require.Equal(t, g1.coeffs, g2.coeffs, p.Name())

		rmSeed := make([]byte, p.sampleRMBytes)
		_, err = rand.Read(rmSeed)
		require.NoError(t, err)

		r1, m1 := p.allocPoly(), p.allocPoly()
		r2, m2 := p.allocPoly(), p.allocPoly()
		p.sampleRM(&r1, &m1, rmSeed)
		p.sampleRM(&r2, &m2, rmSeed)
		require.Equal(t, r1.coeffs, r2.coeffs, p.Name())
		require.Equal(t, m1.coeffs, m2.coeffs, p.Name())
	}
}
