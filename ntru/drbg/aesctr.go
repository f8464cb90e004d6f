// Package drbg implements the deterministic AES-128-CTR random bit
// generator used by the NIST KAT harness for this package's parent
// module: given 48 bytes of entropy it reproduces the exact same byte
// stream on every platform, which plain crypto/rand cannot do.
package drbg

import (
	"crypto/aes"
	"crypto/cipher"
)

// seedBytes is the entropy size consumed by New: 16 bytes of AES-128
// key material followed by a 16-byte counter block V, matching the
// NIST SP 800-90A CTR_DRBG convention used by the reference KAT
// generator (no derivation function, no personalization string).
const seedBytes = 48

// keyBytes and blockBytes are AES-128's key and block sizes.
const (
	keyBytes   = 16
	blockBytes = 16
)

// AESCTRState is a CTR_DRBG instance seeded once and then read from
// repeatedly via Read. The underlying cipher.Stream carries its own
// partial-block leftover, so splitting a read into multiple calls
// yields the same bytes as one large read. It is not safe for
// concurrent use.
type AESCTRState struct {
	stream cipher.Stream
}

// New initializes an AESCTRState from 48 bytes of entropy: entropy[:16]
// is the AES-128 key, entropy[16:32] is the initial counter block V;
// entropy[32:48] (the reference generator's personalization slot) is
// accepted but unused, matching the no-personalization KAT contract.
func New(entropy [seedBytes]byte) (*AESCTRState, error) {
	block, err := aes.NewCipher(entropy[:keyBytes])
	if err != nil {
		return nil, err
	}

	var v [blockBytes]byte
	copy(v[:], entropy[keyBytes:2*keyBytes])

	return &AESCTRState{stream: cipher.NewCTR(block, v[:])}, nil
}

// Read fills buf with the next len(buf) bytes of the AES-CTR
// keystream. It always returns len(buf), nil.
func (s *AESCTRState) Read(buf []byte) (int, error) {
	for i := range buf {
		buf[i] = 0
	}
	s.stream.XORKeyStream(buf, buf)
	return len(buf), nil
}
