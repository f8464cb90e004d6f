// kem.go - NTRU CCA-secure key encapsulation mechanism.

package ntru

import (
	"errors"
	"io"

	"golang.org/x/crypto/sha3"
)

var (
	// ErrInvalidKeySize is returned when a byte serialized key is an
	// invalid size for the ParameterSet it is being parsed against.
	ErrInvalidKeySize = errors.New("ntru: invalid key size")

	// ErrInvalidCipherTextSize is returned when a byte serialized
	// ciphertext is an invalid size for the ParameterSet it is being
	// parsed against.
	ErrInvalidCipherTextSize = errors.New("ntru: invalid ciphertext size")
)

// PublicKey is an NTRU public key: the sum-zero packed encoding of h.
type PublicKey struct {
	p *ParameterSet
	h []byte
}

// Bytes returns the byte serialization of a PublicKey.
func (pk *PublicKey) Bytes() []byte {
	b := make([]byte, len(pk.h))
	copy(b, pk.h)
	return b
}

// PublicKeyFromBytes deserializes a byte serialized PublicKey for the
// given ParameterSet.
func (p *ParameterSet) PublicKeyFromBytes(b []byte) (*PublicKey, error) {
	if len(b) != p.pkBytes {
		return nil, ErrInvalidKeySize
	}

	pk := &PublicKey{p: p, h: make([]byte, p.pkBytes)}
	copy(pk.h, b)
	return pk, nil
}

// PrivateKey is an NTRU private key: the OW-CPA secret key prefix
// (f, f^-1 in S_3, h^-1 packed) followed by the implicit-rejection
// PRF key z.
type PrivateKey struct {
	PublicKey
	sk []byte
	z  []byte
}

// Bytes returns the byte serialization of a PrivateKey.
func (sk *PrivateKey) Bytes() []byte {
	b := make([]byte, 0, sk.p.skBytes)
	b = append(b, sk.sk...)
	b = append(b, sk.z...)
	return b
}

// PrivateKeyFromBytes deserializes a byte serialized PrivateKey. The
// embedded public key is not recoverable from sk alone and must be
// supplied separately via WithPublicKey if Decapsulate's PublicKey
// field is needed; Decapsulate itself does not require it.
func (p *ParameterSet) PrivateKeyFromBytes(b []byte) (*PrivateKey, error) {
	if len(b) != p.skBytes {
		return nil, ErrInvalidKeySize
	}

	sk := &PrivateKey{}
	sk.PublicKey.p = p
	sk.sk = make([]byte, p.owcpaSkSize)
	sk.z = make([]byte, SymSize)

	copy(sk.sk, b[:p.owcpaSkSize])
	copy(sk.z, b[p.owcpaSkSize:])
	return sk, nil
}

// WithPublicKey attaches a PublicKey to a PrivateKey deserialized via
// PrivateKeyFromBytes, for callers that want sk.PublicKey populated.
func (sk *PrivateKey) WithPublicKey(pk *PublicKey) *PrivateKey {
	sk.PublicKey = *pk
	return sk
}

// GenerateKeyPair generates a private and public keypair for the given
// ParameterSet, reading all randomness from rng.
func (p *ParameterSet) GenerateKeyPair(rng io.Reader) (*PublicKey, *PrivateKey, error) {
	seed := make([]byte, p.sampleFGBytes)
	if _, err := io.ReadFull(rng, seed); err != nil {
		return nil, nil, err
	}

	pk := &PublicKey{p: p, h: make([]byte, p.pkBytes)}
	sk := &PrivateKey{z: make([]byte, SymSize), sk: make([]byte, p.owcpaSkSize)}
	sk.PublicKey.p = p

	p.owcpaKeypair(pk.h, sk.sk, seed)

	if _, err := io.ReadFull(rng, sk.z); err != nil {
		return nil, nil, err
	}
	sk.PublicKey.h = make([]byte, p.pkBytes)
	copy(sk.PublicKey.h, pk.h)

	return pk, sk, nil
}

// Encapsulate draws fresh randomness from rng, derives (r, m), and
// returns a ciphertext together with the 32-byte shared secret
// SHA3-256(r || m).
func (pk *PublicKey) Encapsulate(rng io.Reader) (cipherText, sharedSecret []byte, err error) {
	p := pk.p

	seed := make([]byte, p.sampleRMBytes)
	if _, err = io.ReadFull(rng, seed); err != nil {
		return nil, nil, err
	}

	r := p.allocPoly()
	m := p.allocPoly()
	p.sampleRM(&r, &m, seed)

	rm := make([]byte, 2*p.triBytes)
	polyS3ToBytes(rm[:p.triBytes], &r)
	polyS3ToBytes(rm[p.triBytes:], &m)
	ss := sha3.Sum256(rm)

	polyZ3ToZq(&r, p.q) // embed r in R_q before it is used as a multiplicand

	cipherText = make([]byte, p.ctBytes)
	p.owcpaEnc(cipherText, &r, &m, pk.h)

	sharedSecret = ss[:]
	return cipherText, sharedSecret, nil
}

// Decapsulate recovers the shared secret bound to cipherText under sk.
// A cipherText of the wrong length is rejected with
// ErrInvalidCipherTextSize. On an invalid ciphertext of the right
// length, it returns a pseudo-random but
// deterministic shared secret derived from sk's implicit-rejection key
// instead of an error, per the implicit-rejection CCA transform; the
// caller cannot distinguish a genuine decapsulation failure from a
// successful one by the returned error alone.
func (sk *PrivateKey) Decapsulate(cipherText []byte) (sharedSecret []byte, err error) {
	p := sk.p
	if len(cipherText) != p.ctBytes {
		return nil, ErrInvalidCipherTextSize
	}

	rm := make([]byte, 2*p.triBytes)
	fail := p.owcpaDec(rm, cipherText, sk.sk)

	k1 := sha3.Sum256(rm)

	zc := make([]byte, len(sk.z)+len(cipherText))
	copy(zc, sk.z)
	copy(zc[len(sk.z):], cipherText)
	k2 := sha3.Sum256(zc)

	ss := make([]byte, SymSize)
	copy(ss, k1[:])
	cmov(ss, k2[:], fail)

	return ss, nil
}

// cmov overwrites r with x, byte by byte, iff b (0 or 1) is 1; it
// never branches on b, so the memory access pattern and instruction
// trace are identical in both cases.
func cmov(r, x []byte, b uint16) {
	mask := byte(0) - byte(b&1)
	for i := range r {
		r[i] ^= mask & (x[i] ^ r[i])
	}
}
