package mlkem

import (
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCodecRoundTripAllTypes(t *testing.T) {
	p := MLKEM768
	ek, dk, err := p.KeyGen(rand.Reader, nil)
	require.NoError(t, err)
	defer dk.Destroy()

	ct, ssk, err := p.Encaps(ek, rand.Reader, nil)
	require.NoError(t, err)

	var ek2 EncapsulationKey
	require.NoError(t, ek2.FromBytes(ek.IntoBytes()))
	require.Equal(t, ek.Bytes(), ek2.Bytes())

	var dk2 DecapsulationKey
	require.NoError(t, dk2.FromBytes(dk.IntoBytes()))
	require.Equal(t, dk.Bytes(), dk2.Bytes())
	defer dk2.Destroy()

	var ct2 Ciphertext
	require.NoError(t, ct2.FromBytes(ct.IntoBytes()))
	require.Equal(t, ct.Bytes(), ct2.Bytes())

	var ssk2 SharedSecret
	require.NoError(t, ssk2.FromBytes(ssk.IntoBytes()))
	if !ssk.Equal(ssk2) {
		t.Fatalf("shared secret codec round trip mismatch")
	}

	// The round-tripped dk must still decapsulate the round-tripped ct to
	// the original shared secret.
	ssDecaps, err := p.Decaps(&dk2, &ct2, nil)
	require.NoError(t, err)
	if !ssk.Equal(ssDecaps) {
		t.Fatalf("decaps after codec round trip produced a different shared secret")
	}
}

func TestCodecFromBytesRejectsUnknownLength(t *testing.T) {
	var ek EncapsulationKey
	if err := ek.FromBytes(make([]byte, 7)); err == nil {
		t.Fatalf("expected an error for a length matching no parameter set")
	}

	var dk DecapsulationKey
	if err := dk.FromBytes(make([]byte, 7)); err == nil {
		t.Fatalf("expected an error for a length matching no parameter set")
	}

	var ct Ciphertext
	if err := ct.FromBytes(make([]byte, 7)); err == nil {
		t.Fatalf("expected an error for a length matching no parameter set")
	}

	var ssk SharedSecret
	if err := ssk.FromBytes(make([]byte, 7)); err == nil {
		t.Fatalf("expected an error for a non-32-byte shared secret")
	}
}
