package mlkem

import (
	"bytes"
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMLKEMSoundness768(t *testing.T) {
	p := MLKEM768
	ek, dk, err := p.KeyGen(rand.Reader, nil)
	require.NoError(t, err)
	defer dk.Destroy()

	for trial := 0; trial < 1000; trial++ {
		ct, ssEncaps, err := p.Encaps(ek, rand.Reader, nil)
		require.NoError(t, err)

		ssDecaps, err := p.Decaps(dk, ct, nil)
		require.NoError(t, err)

		if !ssEncaps.Equal(ssDecaps) {
			t.Fatalf("trial %d: ssk mismatch", trial)
		}
	}
}

func TestMLKEMTamperedCiphertextImplicitRejection1024(t *testing.T) {
	p := MLKEM1024
	ek, dk, err := p.KeyGen(rand.Reader, nil)
	require.NoError(t, err)
	defer dk.Destroy()

	ct, ssOriginal, err := p.Encaps(ek, rand.Reader, nil)
	require.NoError(t, err)

	tampered := ct.Bytes()
	tampered[0] ^= 0x01
	ctPrime, err := p.ParseCiphertext(tampered)
	require.NoError(t, err)

	ssTampered, err := p.Decaps(dk, ctPrime, nil)
	require.NoError(t, err)

	if ssOriginal.Equal(ssTampered) {
		t.Fatalf("tampered ciphertext produced the same shared secret")
	}

	// The fallback is J(z || ct') = SHAKE-256(z || ct')[0:32]; reproduce it
	// directly from the decapsulation key's z field to confirm the fallback
	// path, not just "not equal to the original".
	dkBytes := dk.Bytes()
	k := p.K
	z := dkBytes[768*k+64 : 768*k+96]
	jInput := append(append([]byte{}, z...), tampered...)
	want := jHash(jInput)
	if !bytes.Equal(want[:], ssTampered[:]) {
		t.Fatalf("fallback shared secret does not match J(z||ct')")
	}
}

func TestCrossParameterSetLengthRejection(t *testing.T) {
	ek512, dk512, err := MLKEM512.KeyGen(rand.Reader, nil)
	require.NoError(t, err)
	defer dk512.Destroy()

	// A valid ML-KEM-512 encapsulation key is the wrong length for
	// ML-KEM-768 (800 vs 1184 bytes) and must be rejected, not silently
	// truncated or padded.
	_, err = MLKEM768.ParseEncapsulationKey(ek512.Bytes())
	if err == nil {
		t.Fatalf("expected length error parsing a 512-sized ek as ML-KEM-768")
	}

	dk512Bytes := dk512.Bytes()
	_, err = MLKEM512.ParseDecapsulationKey(dk512Bytes[:len(dk512Bytes)-1])
	if err == nil {
		t.Fatalf("expected length error parsing a truncated dk")
	}
}

func TestParseEncapsulationKeyRejectsOutOfRangeLane(t *testing.T) {
	p := MLKEM512
	ek, dk, err := p.KeyGen(rand.Reader, nil)
	require.NoError(t, err)
	defer dk.Destroy()

	b := ek.Bytes()
	corrupted := setLane(b[:384], 0, zq(q))
	full := append(corrupted, b[384:]...)

	_, err = p.ParseEncapsulationKey(full)
	if err == nil {
		t.Fatalf("expected validation failure for lane == q")
	}
}
