// params_test.go - Byte-size regression tests against the reference
// implementation's CRYPTO_*BYTES constants.

package ntru

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParameterSetSizes(t *testing.T) {
	cases := []struct {
		p          *ParameterSet
		pk, sk, ct int
	}{
		{HPS2048509, 699, 935, 699},
		{HPS2048677, 930, 1234, 930},
		{HPS4096821, 1230, 1590, 1230},
		{HRSS701, 1138, 1450, 1138},
	}

	for _, c := range cases {
		t.Run(c.p.Name(), func(t *testing.T) {
			require.Equal(t, c.pk, c.p.PublicKeySize())
			require.Equal(t, c.sk, c.p.PrivateKeySize())
			require.Equal(t, c.ct, c.p.CipherTextSize())
			require.Equal(t, SymSize, c.p.SharedSecretSize())
		})
	}
}
