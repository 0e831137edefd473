// Package mlkem implements the core of FIPS 203 (Module-Lattice-based
// Key-Encapsulation Mechanism, ML-KEM): the IND-CPA public-key encryption
// scheme K-PKE and the Fujisaki-Okamoto transform that lifts it to an
// IND-CCA2 key-encapsulation mechanism.
//
// # Parameter sets
//
// Three parameter sets are exposed as package-level values rather than as
// three separate packages, since the only thing that varies between them is
// a handful of integers (k, η1, η2, du, dv) and the byte lengths derived
// from them:
//
//	mlkem.MLKEM512, mlkem.MLKEM768, mlkem.MLKEM1024
//
// Each is a *ParameterSet with KeyGen/Encaps/Decaps methods and exact byte
// lengths for the encapsulation key, decapsulation key, ciphertext, and
// shared secret.
//
// # Randomness
//
// KeyGen and Encaps take an io.Reader for randomness. Pass crypto/rand.Reader
// in production; a fixed-byte reader lets a known-answer vector reproduce
// byte-exactly.
//
// # What this package does not do
//
// It does not select a parameter set for you, does not manage a CLI, and
// does not generate its own randomness — those are the caller's job. It
// also makes no claim of certified constant-time execution; see the
// comment at the top of subtle.go for what discipline is actually
// followed.
package mlkem
