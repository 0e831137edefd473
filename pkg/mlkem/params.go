package mlkem

// ParameterSet binds the compile-time constants of one ML-KEM variant (FIPS 203
// §3). Rather than three monomorphized Go packages, this is one type
// parameterized at construction time and instantiated exactly three times
// below — Go has no const generics to size arrays from a type parameter, so
// a runtime-sized slice representation is the idiomatic fit; see DESIGN.md
// for this design decision.
type ParameterSet struct {
	Name string

	K    int // module rank
	Eta1 int
	Eta2 int
	DU   int
	DV   int

	EKLen int // 384*k + 32
	DKLen int // 768*k + 96
	CTLen int // 32*(du*k + dv)
}

const sskLen = 32

func newParameterSet(name string, k, eta1, eta2, du, dv int) *ParameterSet {
	return &ParameterSet{
		Name:  name,
		K:     k,
		Eta1:  eta1,
		Eta2:  eta2,
		DU:    du,
		DV:    dv,
		EKLen: 384*k + 32,
		DKLen: 768*k + 96,
		CTLen: 32 * (du*k + dv),
	}
}

// ekPKELen is the K-PKE encryption key length, 384*k+32 (identical to EKLen:
// the ML-KEM encapsulation key *is* the K-PKE encryption key, FIPS 203 §4.9).
func (p *ParameterSet) ekPKELen() int { return p.EKLen }

// dkPKELen is the K-PKE decryption key length, 384*k.
func (p *ParameterSet) dkPKELen() int { return 384 * p.K }

var (
	// MLKEM512 is the ML-KEM-512 parameter set (k=2, NIST category 1).
	MLKEM512 = newParameterSet("ML-KEM-512", 2, 3, 2, 10, 4)

	// MLKEM768 is the ML-KEM-768 parameter set (k=3, NIST category 3).
	MLKEM768 = newParameterSet("ML-KEM-768", 3, 2, 2, 10, 4)

	// MLKEM1024 is the ML-KEM-1024 parameter set (k=4, NIST category 5).
	MLKEM1024 = newParameterSet("ML-KEM-1024", 4, 2, 2, 11, 5)

	// allParameterSets backs the length-sniffing FromBytes implementations
	// below: EKLen/DKLen/CTLen are pairwise distinct across the three sets,
	// so a buffer's length alone identifies which one parses it.
	allParameterSets = []*ParameterSet{MLKEM512, MLKEM768, MLKEM1024}
)

// parameterSetForEKLen finds the parameter set whose encapsulation key has
// exactly n bytes.
func parameterSetForEKLen(n int) (*ParameterSet, error) {
	for _, p := range allParameterSets {
		if p.EKLen == n {
			return p, nil
		}
	}
	return nil, errorf("parameterSetForEKLen", ErrInvalidLength)
}

// parameterSetForDKLen finds the parameter set whose decapsulation key has
// exactly n bytes.
func parameterSetForDKLen(n int) (*ParameterSet, error) {
	for _, p := range allParameterSets {
		if p.DKLen == n {
			return p, nil
		}
	}
	return nil, errorf("parameterSetForDKLen", ErrInvalidLength)
}

// parameterSetForCTLen finds the parameter set whose ciphertext has exactly
// n bytes.
func parameterSetForCTLen(n int) (*ParameterSet, error) {
	for _, p := range allParameterSets {
		if p.CTLen == n {
			return p, nil
		}
	}
	return nil, errorf("parameterSetForCTLen", ErrInvalidLength)
}
