package mlkem

import (
	"bytes"
	"math"
	"testing"
)

func TestSampleNTTAllCanonical(t *testing.T) {
	var rho [32]byte
	copy(rho[:], bytes.Repeat([]byte{0x42}, 32))
	f := sampleNTT(xofReader(rho, 0, 0))
	for i, c := range f {
		if uint32(c) >= q {
			t.Fatalf("coefficient %d = %d not canonical", i, c)
		}
	}
}

func TestSamplePolyCBDRange(t *testing.T) {
	for _, eta := range []int{2, 3} {
		buf := bytes.Repeat([]byte{0xA5}, 64*eta)
		f := samplePolyCBD(eta, buf)
		for i, c := range f {
			// CBD_eta coefficients lie in [-eta, eta] mod q; as canonical
			// Z_q values that means c <= eta or c >= q-eta.
			v := int(c)
			if v > eta && v < int(q)-eta {
				t.Fatalf("coefficient %d = %d outside CBD_%d range", i, c, eta)
			}
		}
	}
}

func TestZqPowAgainstMath(t *testing.T) {
	// zeta^128 = -1 mod q, so zeta^256 = 1 and zeta has order exactly 256.
	// Check zeta^128 = q-1 per FIPS 203 §4.6.
	got := zqPow(zeta, 128)
	if got != zq(q-1) {
		t.Fatalf("zeta^128 mod q = %d, want %d", got, q-1)
	}
	// Sanity check against floating point for a small exponent.
	want := math.Pow(float64(zeta), 3)
	got3 := zqPow(zeta, 3)
	if math.Mod(want, float64(q)) != float64(got3) {
		t.Fatalf("zeta^3 mismatch: got %d", got3)
	}
}
