package mlkem

import (
	"context"
	"io"

	"github.com/coinbase/ml-kem-go/pkg/mlkem/mlkemlog"
)

// EncapsulationKey is the public key produced by KeyGen: ByteEncode_12(t-hat)
// || rho (FIPS 203 §3/§6).
type EncapsulationKey struct {
	params *ParameterSet
	bytes  []byte
}

// DecapsulationKey is the private key produced by KeyGen: ByteEncode_12(s-hat)
// || ek || H(ek) || z (FIPS 203 §3/§6). Its bytes must be cleared on Destroy.
type DecapsulationKey struct {
	params *ParameterSet
	bytes  []byte
}

// Ciphertext is ByteEncode_du(Compress_du(u)) || ByteEncode_dv(Compress_dv(v)).
type Ciphertext struct {
	params *ParameterSet
	bytes  []byte
}

// SharedSecret is the 32-byte symmetric key produced by Encaps/Decaps.
type SharedSecret [sskLen]byte

// Equal compares two shared secrets in constant time, per FIPS 203 §3/§9.
func (s SharedSecret) Equal(other SharedSecret) bool {
	return ctEqual(s[:], other[:])
}

// Bytes returns the serialized form of the encapsulation key.
func (e *EncapsulationKey) Bytes() []byte {
	out := make([]byte, len(e.bytes))
	copy(out, e.bytes)
	return out
}

// Bytes returns the serialized form of the decapsulation key. Callers are
// responsible for persisting it securely and for calling Destroy on every
// in-memory copy once it is no longer needed.
func (d *DecapsulationKey) Bytes() []byte {
	out := make([]byte, len(d.bytes))
	copy(out, d.bytes)
	return out
}

// Bytes returns the serialized form of the ciphertext.
func (c *Ciphertext) Bytes() []byte {
	out := make([]byte, len(c.bytes))
	copy(out, c.bytes)
	return out
}

// Codec is the uniform serialize/parse surface shared by every public
// ML-KEM type, in place of four bespoke method sets.
type Codec interface {
	IntoBytes() []byte
	FromBytes(b []byte) error
}

var (
	_ Codec = (*EncapsulationKey)(nil)
	_ Codec = (*DecapsulationKey)(nil)
	_ Codec = (*Ciphertext)(nil)
	_ Codec = (*SharedSecret)(nil)
)

// IntoBytes implements Codec for EncapsulationKey.
func (e *EncapsulationKey) IntoBytes() []byte { return e.Bytes() }

// FromBytes implements Codec for EncapsulationKey: it identifies the
// parameter set from len(b) and parses and validates b under it.
func (e *EncapsulationKey) FromBytes(b []byte) error {
	p, err := parameterSetForEKLen(len(b))
	if err != nil {
		return errorf("EncapsulationKey.FromBytes", err)
	}
	parsed, err := p.ParseEncapsulationKey(b)
	if err != nil {
		return errorf("EncapsulationKey.FromBytes", err)
	}
	*e = *parsed
	return nil
}

// IntoBytes implements Codec for DecapsulationKey.
func (d *DecapsulationKey) IntoBytes() []byte { return d.Bytes() }

// FromBytes implements Codec for DecapsulationKey: it identifies the
// parameter set from len(b) and parses b under it.
func (d *DecapsulationKey) FromBytes(b []byte) error {
	p, err := parameterSetForDKLen(len(b))
	if err != nil {
		return errorf("DecapsulationKey.FromBytes", err)
	}
	parsed, err := p.ParseDecapsulationKey(b)
	if err != nil {
		return errorf("DecapsulationKey.FromBytes", err)
	}
	*d = *parsed
	return nil
}

// IntoBytes implements Codec for Ciphertext.
func (c *Ciphertext) IntoBytes() []byte { return c.Bytes() }

// FromBytes implements Codec for Ciphertext: it identifies the parameter
// set from len(b) and parses b under it.
func (c *Ciphertext) FromBytes(b []byte) error {
	p, err := parameterSetForCTLen(len(b))
	if err != nil {
		return errorf("Ciphertext.FromBytes", err)
	}
	parsed, err := p.ParseCiphertext(b)
	if err != nil {
		return errorf("Ciphertext.FromBytes", err)
	}
	*c = *parsed
	return nil
}

// IntoBytes implements Codec for SharedSecret.
func (s *SharedSecret) IntoBytes() []byte {
	out := make([]byte, sskLen)
	copy(out, s[:])
	return out
}

// FromBytes implements Codec for SharedSecret.
func (s *SharedSecret) FromBytes(b []byte) error {
	if len(b) != sskLen {
		return errorf("SharedSecret.FromBytes", ErrInvalidLength)
	}
	copy(s[:], b)
	return nil
}

// ParseEncapsulationKey validates and wraps a serialized encapsulation key.
// It fails on a length mismatch or on a 12-bit coefficient >= q, per FIPS 203
// §6.
func (p *ParameterSet) ParseEncapsulationKey(b []byte) (*EncapsulationKey, error) {
	if len(b) != p.EKLen {
		return nil, errorf("ParseEncapsulationKey", ErrInvalidLength)
	}
	for i := 0; i < p.K; i++ {
		if _, err := byteDecode(12, b[i*384:(i+1)*384]); err != nil {
			return nil, errorf("ParseEncapsulationKey", err)
		}
	}
	out := make([]byte, len(b))
	copy(out, b)
	return &EncapsulationKey{params: p, bytes: out}, nil
}

// ParseDecapsulationKey validates and wraps a serialized decapsulation key.
// It fails only on a length mismatch, per FIPS 203 §6.
func (p *ParameterSet) ParseDecapsulationKey(b []byte) (*DecapsulationKey, error) {
	if len(b) != p.DKLen {
		return nil, errorf("ParseDecapsulationKey", ErrInvalidLength)
	}
	out := make([]byte, len(b))
	copy(out, b)
	return &DecapsulationKey{params: p, bytes: out}, nil
}

// ParseCiphertext validates and wraps a serialized ciphertext.
func (p *ParameterSet) ParseCiphertext(b []byte) (*Ciphertext, error) {
	if len(b) != p.CTLen {
		return nil, errorf("ParseCiphertext", ErrInvalidLength)
	}
	out := make([]byte, len(b))
	copy(out, b)
	return &Ciphertext{params: p, bytes: out}, nil
}

// Destroy zeroizes the decapsulation key's bytes. Callers must call Destroy
// once the key is no longer needed (FIPS 203 §5/§9).
func (d *DecapsulationKey) Destroy() {
	zeroizeBytes(d.bytes)
}

// KeyGen implements Algorithm 15, ML-KEM.KeyGen(): draws z and the K-PKE
// seed d from rng, and returns the encapsulation and decapsulation keys.
func (p *ParameterSet) KeyGen(rng io.Reader, logger mlkemlog.Logger) (*EncapsulationKey, *DecapsulationKey, error) {
	logger = withDefault(logger)
	ctx := context.Background()
	logger.Info(ctx, "mlkem keygen start", "param_set", p.Name)

	var d [32]byte
	if err := readFull(rng, d[:]); err != nil {
		return nil, nil, errorf("KeyGen", err)
	}
	var z [32]byte
	if err := readFull(rng, z[:]); err != nil {
		zeroizeBytes(d[:])
		return nil, nil, errorf("KeyGen", err)
	}

	ekPKE, dkPKE := p.kpkeKeyGen(d)
	zeroizeBytes(d[:])

	hEK := hHash(ekPKE)

	dk := make([]byte, p.DKLen)
	off := 0
	copy(dk[off:], dkPKE)
	off += len(dkPKE)
	copy(dk[off:], ekPKE)
	off += len(ekPKE)
	copy(dk[off:], hEK[:])
	off += len(hEK)
	copy(dk[off:], z[:])

	zeroizeBytes(dkPKE)
	zeroizeBytes(z[:])

	logger.Info(ctx, "mlkem keygen done", "param_set", p.Name, mlkemlog.Redacted("dk"))

	return &EncapsulationKey{params: p, bytes: ekPKE},
		&DecapsulationKey{params: p, bytes: dk},
		nil
}

// Encaps implements Algorithm 16, ML-KEM.Encaps(ek): draws m from rng,
// derives (K, r) = G(m || H(ek)), runs K-PKE.Encrypt, and returns (ct, K).
func (p *ParameterSet) Encaps(ek *EncapsulationKey, rng io.Reader, logger mlkemlog.Logger) (*Ciphertext, SharedSecret, error) {
	logger = withDefault(logger)
	ctx := context.Background()

	var zero SharedSecret
	if ek.params != p {
		return nil, zero, errorf("Encaps", ErrInvalidLength)
	}

	var m [32]byte
	if err := readFull(rng, m[:]); err != nil {
		return nil, zero, errorf("Encaps", err)
	}

	hEK := hHash(ek.bytes)
	var gInput [64]byte
	copy(gInput[:32], m[:])
	copy(gInput[32:], hEK[:])
	k, r := gHash(gInput[:])
	zeroizeBytes(gInput[:])

	ctBytes, err := p.kpkeEncrypt(ek.bytes, m[:], r)
	zeroizeBytes(m[:])
	zeroizeBytes(r[:])
	if err != nil {
		return nil, zero, errorf("Encaps", err)
	}

	logger.Info(ctx, "mlkem encaps done", "param_set", p.Name, mlkemlog.Redacted("ssk"))

	return &Ciphertext{params: p, bytes: ctBytes}, SharedSecret(k), nil
}

// Decaps implements Algorithm 17, ML-KEM.Decaps(dk, c): decrypts, re-derives
// and re-encrypts, and returns K' on a match or the implicit-rejection
// fallback K-bar otherwise. Decaps never fails once lengths match (FIPS 203 §7).
func (p *ParameterSet) Decaps(dk *DecapsulationKey, ct *Ciphertext, logger mlkemlog.Logger) (SharedSecret, error) {
	logger = withDefault(logger)
	ctx := context.Background()

	var zero SharedSecret
	if dk.params != p || ct.params != p {
		return zero, errorf("Decaps", ErrInvalidLength)
	}

	k := p.K
	// Offsets per FIPS 203 §4.9: dk = dkPKE(384k) || ek(384k+32) || H(ek)(32) || z(32).
	dkPKE := dk.bytes[:384*k]
	ekPKE := dk.bytes[384*k : 768*k+32]
	hEK := dk.bytes[768*k+32 : 768*k+64]
	z := dk.bytes[768*k+64 : 768*k+96]

	mPrime, err := p.kpkeDecrypt(dkPKE, ct.bytes)
	if err != nil {
		return zero, errorf("Decaps", err)
	}

	var gInput [64]byte
	copy(gInput[:32], mPrime)
	copy(gInput[32:], hEK)
	kPrime, rPrime := gHash(gInput[:])
	zeroizeBytes(gInput[:])

	jInput := make([]byte, 32+p.CTLen)
	copy(jInput[:32], z)
	copy(jInput[32:], ct.bytes)
	kBar := jHash(jInput)
	zeroizeBytes(jInput)

	cPrime, err := p.kpkeEncrypt(ekPKE, mPrime, rPrime)
	zeroizeBytes(mPrime)
	zeroizeBytes(rPrime[:])
	if err != nil {
		// Re-encryption with a freshly generated, length-correct ekPKE/m'/r'
		// cannot fail under well-formed inputs; treat it as an engine
		// bug rather than an implicit-rejection path.
		panic("mlkem: decaps re-encryption failed: " + err.Error())
	}

	match := ctCompare(ct.bytes, cPrime)
	var out SharedSecret
	ctSelect(out[:], kPrime[:], kBar[:], match)

	zeroizeBytes(kPrime[:])
	zeroizeBytes(kBar[:])

	logger.Info(ctx, "mlkem decaps done", "param_set", p.Name, mlkemlog.Redacted("ssk"))

	return out, nil
}

func withDefault(logger mlkemlog.Logger) mlkemlog.Logger {
	if logger == nil {
		return mlkemlog.New(nil)
	}
	return logger
}
