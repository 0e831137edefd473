package mlkem

import "crypto/subtle"

// This file holds the one piece of secret-dependent control flow in the
// design: implicit-rejection's choice between K' and K-bar in Decaps, and
// the ciphertext comparison that drives it. Both are built directly on
// crypto/subtle: ConstantTimeCompare already returns its verdict as an int
// with no early exit on mismatch, and ConstantTimeCopy consumes that int
// directly — the match decision never passes through a branch on a derived
// bool.
//
// This is best-effort discipline, not a formally verified constant-time
// guarantee — timing side channels below the Go language level (cache
// behavior, micro-architectural effects) are out of scope.

// ctEqual reports whether a and b are equal, via crypto/subtle.ConstantTimeCompare.
func ctEqual(a, b []byte) bool {
	return subtle.ConstantTimeCompare(a, b) == 1
}

// ctCompare is ctEqual's result as the raw int crypto/subtle deals in (1 if
// equal, 0 otherwise), for callers that feed it straight into ctSelect
// without ever materializing a bool.
func ctCompare(a, b []byte) int {
	return subtle.ConstantTimeCompare(a, b)
}

// ctSelect sets dst to a if cond == 1, or to b if cond == 0. cond must come
// directly from a crypto/subtle comparison such as ctCompare, never from an
// `if` on a derived bool, so the selection itself never branches on
// secret-dependent data.
func ctSelect(dst, a, b []byte, cond int) {
	copy(dst, b)
	subtle.ConstantTimeCopy(cond, dst, a)
}
