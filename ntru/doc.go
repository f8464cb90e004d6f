// doc.go - ntru godoc extras.

// Package ntru implements the NTRU IND-CCA2-secure key encapsulation
// mechanism (KEM), based on the hardness of finding short vectors in an
// NTRU lattice, as submitted to round 3 of the NIST Post-Quantum
// Cryptography project.
//
// Four parameter sets are exported: HPS2048509, HPS2048677, HPS4096821
// and HRSS701. Each fixes a ring degree N, a modulus q, and whether the
// HPS or HRSS variant of the scheme is used; the key, ciphertext and
// shared secret sizes follow from these and are reported by the
// ParameterSet's size methods.
//
// This implementation is a port of the NTRU reference implementation
// submitted to NIST, following the public-domain Rust re-implementation
// it was checked against.
package ntru
