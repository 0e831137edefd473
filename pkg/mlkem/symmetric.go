package mlkem

import (
	"golang.org/x/crypto/sha3"
)

// H(x) = SHA3-256(x), 32 bytes.
func hHash(x []byte) [32]byte {
	return sha3.Sum256(x)
}

// G(x) = SHA3-512(x), split into two 32-byte halves (a, b).
func gHash(x []byte) (a, b [32]byte) {
	full := sha3.Sum512(x)
	copy(a[:], full[:32])
	copy(b[:], full[32:])
	return a, b
}

// jHash(x) = SHAKE-256(x) read out as 32 bytes. Used both as FIPS 203's J
// function (implicit-rejection fallback key) and wherever a fixed 32-byte
// SHAKE-256 digest is needed.
func jHash(x []byte) [32]byte {
	var out [32]byte
	sponge := sha3.NewShake256()
	sponge.Write(x)
	sponge.Read(out[:])
	return out
}

// prf computes PRF_eta(s, b) = SHAKE-256(s || b), reading out 64*eta bytes.
func prf(eta int, s []byte, b byte) []byte {
	out := make([]byte, 64*eta)
	sponge := sha3.NewShake256()
	sponge.Write(s)
	sponge.Write([]byte{b})
	sponge.Read(out)
	return out
}

// xofReader is a streaming SHAKE-128 reader seeded as XOF(rho, i, j) =
// SHAKE-128(rho || i || j), matching FIPS 203 (final)'s byte order for
// expanding matrix entry A[i][j] — note this is (i, j), not (j, i).
func xofReader(rho [32]byte, i, j byte) sha3.ShakeHash {
	sponge := sha3.NewShake128()
	sponge.Write(rho[:])
	sponge.Write([]byte{i, j})
	return sponge
}
