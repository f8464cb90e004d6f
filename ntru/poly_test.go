// poly_test.go - Polynomial primitive tests.

package ntru

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestZ3ToZqToZ3RoundTrips(t *testing.T) {
	for _, p := range allParams {
		t.Run(p.Name(), func(t *testing.T) {
			a := p.allocPoly()
			for i := range a.coeffs[:len(a.coeffs)-1] {
				a.coeffs[i] = uint16(i % 3)
			}

			r := a.clone()
			polyZ3ToZq(&r, p.q)
			polyTrinaryZqToZ3(&r, p.q, p.logQ)

			require.Equal(t, a.coeffs, r.coeffs)
		})
	}
}

func TestModQMasksToPowerOfTwo(t *testing.T) {
	require.Equal(t, uint16(0), modQ(2048, 2048))
	require.Equal(t, uint16(5), modQ(2048+5, 2048))
	require.Equal(t, uint16(0), modQ(0, 2048))
}

func TestMod3ReducesExhaustively(t *testing.T) {
	for a := 0; a < 65536; a++ {
		got := mod3(uint16(a))
		require.Less(t, got, uint16(3))
		require.Equal(t, uint16(a%3), got, "mod3(%d)", a)
	}
}

func TestPolyModQPhiNZeroesLastCoeff(t *testing.T) {
	for _, p := range allParams {
		a := p.allocPoly()
		for i := range a.coeffs {
			a.coeffs[i] = uint16(i)
		}
		polyModQPhiN(&a)
		require.EqualValues(t, 0, a.coeffs[p.n-1])
	}
}

func TestPolyMod3PhiNZeroesLastCoeff(t *testing.T) {
	for _, p := range allParams {
		a := p.allocPoly()
		for i := range a.coeffs {
			a.coeffs[i] = uint16(i % 3)
		}
		polyMod3PhiN(&a)
		require.EqualValues(t, 0, a.coeffs[p.n-1])
	}
}
