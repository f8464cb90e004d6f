// params.go - NTRU parameterization.

package ntru

// SymSize is the size, in bytes, of the shared key and of the internal
// PRF key used for implicit rejection.
const SymSize = 32

// variant distinguishes the two NTRU trapdoor constructions supported
// by this package. The two differ in exactly four places: how g is
// preconditioned in owcpaKeypair, which pair of samplers is used, the
// Lift operator, and whether owcpaDec runs the fixed-weight check on m.
type variant int

const (
	variantHPS variant = iota
	variantHRSS
)

func (v variant) String() string {
	if v == variantHRSS {
		return "HRSS"
	}
	return "HPS"
}

var (
	// HPS2048509 is the ntruhps2048509 parameter set.
	HPS2048509 = newParameterSet("ntruhps2048509", 509, 11, variantHPS)

	// HPS2048677 is the ntruhps2048677 parameter set.
	HPS2048677 = newParameterSet("ntruhps2048677", 677, 11, variantHPS)

	// HPS4096821 is the ntruhps4096821 parameter set.
	HPS4096821 = newParameterSet("ntruhps4096821", 821, 12, variantHPS)

	// HRSS701 is the ntruhrss701 parameter set.
	HRSS701 = newParameterSet("ntruhrss701", 701, 13, variantHRSS)
)

// ParameterSet is a concrete NTRU parameter set: it fixes the ring
// degree N, the modulus q, and the HPS/HRSS trapdoor variant, and
// derives every packed-byte size from them. A build may use any
// number of ParameterSet values side by side.
type ParameterSet struct {
	name    string
	n       int
	q       uint16
	logQ    int
	variant variant
	weight  int // q/8 - 2; meaningful for HPS only.

	triBytes    int // bytes to pack/unpack one S_3 polynomial.
	owcpaBytes  int // bytes to pack/unpack one S_q polynomial: sum-zero (pk, ct) or plain (h^-1).
	pkBytes     int
	ctBytes     int
	skBytes     int // exported private key size: owcpa sk + z.
	owcpaSkSize int // 2*triBytes + owcpaBytes, the OW-CPA secret key prefix of skBytes.

	sampleIIDBytes int
	sampleFTBytes  int // HPS only.
	sampleFGBytes  int
	sampleRMBytes  int
}

func newParameterSet(name string, n, logQ int, v variant) *ParameterSet {
	p := &ParameterSet{
		name:    name,
		n:       n,
		logQ:    logQ,
		q:       uint16(1) << uint(logQ),
		variant: v,
	}
	p.weight = int(p.q)/8 - 2

	packDeg := n - 1
	p.triBytes = (packDeg + 4) / 5
	p.owcpaBytes = (logQ*packDeg + 7) / 8
	p.pkBytes = p.owcpaBytes
	p.ctBytes = p.owcpaBytes
	p.owcpaSkSize = 2*p.triBytes + p.owcpaBytes
	p.skBytes = p.owcpaSkSize + SymSize // + PRF key z

	p.sampleIIDBytes = n - 1
	p.sampleFTBytes = (30*packDeg + 7) / 8

	switch v {
	case variantHPS:
		p.sampleFGBytes = p.sampleIIDBytes + p.sampleFTBytes
		p.sampleRMBytes = p.sampleIIDBytes + p.sampleFTBytes
	case variantHRSS:
		p.sampleFGBytes = 2 * p.sampleIIDBytes
		p.sampleRMBytes = 2 * p.sampleIIDBytes
	}

	return p
}

// Name returns the name of a given ParameterSet, e.g. "ntruhps2048509".
func (p *ParameterSet) Name() string {
	return p.name
}

// PublicKeySize returns the size of a public key in bytes.
func (p *ParameterSet) PublicKeySize() int {
	return p.pkBytes
}

// PrivateKeySize returns the size of a private key in bytes.
func (p *ParameterSet) PrivateKeySize() int {
	return p.skBytes
}

// CipherTextSize returns the size of a ciphertext in bytes.
func (p *ParameterSet) CipherTextSize() int {
	return p.ctBytes
}

// SharedSecretSize returns the size of a shared secret in bytes. It is
// the same for every ParameterSet.
func (p *ParameterSet) SharedSecretSize() int {
	return SymSize
}

func (p *ParameterSet) allocPoly() poly {
	return newPoly(p.n)
}
