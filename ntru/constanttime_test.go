// constanttime_test.go - Statistical smoke test that Decapsulate takes
// about as long on a corrupted ciphertext as on a valid one.
//
// This is not a rigorous side-channel audit (that requires a proper
// leakage-detection harness and a controlled environment); it is a
// coarse regression guard that a future change doesn't reintroduce an
// early-return short circuit into the OR-accumulated checks. The
// bound is deliberately loose to avoid flaking on a noisy CI host.

package ntru

import (
	"crypto/rand"
	"testing"
	"time"

	"github.com/montanaflynn/stats"
	"github.com/stretchr/testify/require"
)

func timeDecapsulations(t *testing.T, p *ParameterSet, corrupt func(ct []byte)) []float64 {
	const samples = 64

	times := make([]float64, 0, samples)
	for i := 0; i < samples; i++ {
		pub, priv, err := p.GenerateKeyPair(rand.Reader)
		require.NoError(t, err)

		ct, _, err := pub.Encapsulate(rand.Reader)
		require.NoError(t, err)

		if corrupt != nil {
			corrupt(ct)
		}

		start := time.Now()
		_, err = priv.Decapsulate(ct)
		require.NoError(t, err)
		times = append(times, float64(time.Since(start)))
	}

	return times
}

func TestDecapsulateTimingIndependentOfValidity(t *testing.T) {
	if testing.Short() {
		t.Skip("timing smoke test skipped in -short mode")
	}

	p := HPS2048509

	validTimes := timeDecapsulations(t, p, nil)
	corruptedTimes := timeDecapsulations(t, p, func(ct []byte) {
		ct[len(ct)-1] ^= 0xff
	})

	validMean, err := stats.Mean(validTimes)
	require.NoError(t, err)
	corruptedMean, err := stats.Mean(corruptedTimes)
	require.NoError(t, err)

	ratio := corruptedMean / validMean
	require.Greater(t, ratio, 0.3, "corrupted-ciphertext decapsulation ran suspiciously faster than a valid one")
	require.Less(t, ratio, 3.0, "corrupted-ciphertext decapsulation ran suspiciously slower than a valid one")
}
