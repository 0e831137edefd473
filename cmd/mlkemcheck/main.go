// Command mlkemcheck runs a self-check of the mlkem engine across all
// three parameter sets: KeyGen, Encaps, Decaps, and a shared-secret
// equality check. It takes no flags and exits non-zero on failure.
package main

import (
	"crypto/rand"
	"fmt"
	"log"

	"github.com/coinbase/ml-kem-go/pkg/mlkem"
)

func main() {
	sets := []*mlkem.ParameterSet{mlkem.MLKEM512, mlkem.MLKEM768, mlkem.MLKEM1024}

	for _, p := range sets {
		ek, dk, err := p.KeyGen(rand.Reader, nil)
		if err != nil {
			log.Fatalf("%s: keygen: %v", p.Name, err)
		}

		ct, ssEncaps, err := p.Encaps(ek, rand.Reader, nil)
		if err != nil {
			dk.Destroy()
			log.Fatalf("%s: encaps: %v", p.Name, err)
		}

		ssDecaps, err := p.Decaps(dk, ct, nil)
		dk.Destroy()
		if err != nil {
			log.Fatalf("%s: decaps: %v", p.Name, err)
		}

		if !ssEncaps.Equal(ssDecaps) {
			log.Fatalf("%s: shared secret mismatch", p.Name)
		}

		fmt.Printf("%s: ok (ek=%dB dk=%dB ct=%dB)\n", p.Name, len(ek.Bytes()), p.DKLen, len(ct.Bytes()))
	}
}
