// Command ntrust-simple is a runnable Alice/Bob walkthrough of the
// NTRU key encapsulation mechanism, annotating every step with which
// party is performing it.
package main

import (
	"crypto/rand"
	"encoding/hex"
	"flag"
	"fmt"
	"os"

	"github.com/prokls/ntrust-native/ntru"
)

var parameterSets = map[string]*ntru.ParameterSet{
	"hps2048509": ntru.HPS2048509,
	"hps2048677": ntru.HPS2048677,
	"hps4096821": ntru.HPS4096821,
	"hrss701":    ntru.HRSS701,
}

func main() {
	variant := flag.String("variant", "hps2048509", "parameter set: hps2048509, hps2048677, hps4096821 or hrss701")
	flag.Parse()

	p, ok := parameterSets[*variant]
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown variant %q\n", *variant)
		os.Exit(1)
	}

	if err := run(p); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run(p *ntru.ParameterSet) error {
	fmt.Println("[Alice]\tRunning key generation …")
	pub, priv, err := p.GenerateKeyPair(rand.Reader)
	if err != nil {
		return err
	}
	fmt.Printf("[Alice]\tI generated public key %s\n", hex.EncodeToString(pub.Bytes()))
	fmt.Printf("[Alice]\tI generated secret key %s\n", hex.EncodeToString(priv.Bytes()))

	fmt.Println("[Bob]\tRunning encapsulation …")
	ct, ssBob, err := pub.Encapsulate(rand.Reader)
	if err != nil {
		return err
	}
	fmt.Printf("[Bob]\tI generated shared key %s\n", hex.EncodeToString(ssBob))
	fmt.Printf("[Bob]\tI generated ciphertext %s\n", hex.EncodeToString(ct))

	fmt.Println("[Alice]\tRunning decapsulation …")
	ssAlice, err := priv.Decapsulate(ct)
	if err != nil {
		return err
	}
	fmt.Printf("[Alice]\tI decapsulated shared key %s\n", hex.EncodeToString(ssAlice))

	if hex.EncodeToString(ssAlice) != hex.EncodeToString(ssBob) {
		fmt.Fprintln(os.Stderr, "error: Bob's and Alice's shared key seem to differ.")
		os.Exit(1)
	}

	return nil
}
