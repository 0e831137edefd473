package mlkem

// expandMatrix regenerates Â deterministically from rho: Â[i][j] =
// SampleNTT(XOF(ρ, i, j)), per FIPS 203 (final). The byte order fed to the
// XOF is (ρ, i, j), not the (ρ, j, i) transpose some implementations use.
func expandMatrix(k int, rho [32]byte) matrix {
	a := newMatrix(k)
	for i := 0; i < k; i++ {
		for j := 0; j < k; j++ {
			a[i][j] = sampleNTT(xofReader(rho, byte(i), byte(j)))
		}
	}
	return a
}

// kpkeKeyGen implements Algorithm 12, K-PKE.KeyGen. d is the 32 bytes of
// randomness FIPS 203 §4.8 draws; ekPKE and dkPKE are returned as newly
// allocated buffers of length p.ekPKELen() and p.dkPKELen().
func (p *ParameterSet) kpkeKeyGen(d [32]byte) (ekPKE, dkPKE []byte) {
	rho, sigma := gHash(d[:])
	defer zeroizeBytes(sigma[:])

	a := expandMatrix(p.K, rho)

	var counter byte
	sHat := newNTTVec(p.K)
	for i := 0; i < p.K; i++ {
		s := samplePolyCBD(p.Eta1, prf(p.Eta1, sigma[:], counter))
		counter++
		sHat[i] = ntt(s)
	}
	eHat := newNTTVec(p.K)
	for i := 0; i < p.K; i++ {
		e := samplePolyCBD(p.Eta1, prf(p.Eta1, sigma[:], counter))
		counter++
		eHat[i] = ntt(e)
	}

	tHat := addNTTVec(matVecMul(a, sHat), eHat)

	ekPKE = make([]byte, p.ekPKELen())
	for i := 0; i < p.K; i++ {
		copy(ekPKE[i*384:(i+1)*384], byteEncode(12, poly(tHat[i])))
	}
	copy(ekPKE[384*p.K:], rho[:])

	dkPKE = make([]byte, p.dkPKELen())
	for i := 0; i < p.K; i++ {
		copy(dkPKE[i*384:(i+1)*384], byteEncode(12, poly(sHat[i])))
	}

	zeroizeNTTVec(sHat)
	zeroizeNTTVec(eHat)
	return ekPKE, dkPKE
}

// kpkeEncrypt implements Algorithm 13, K-PKE.Encrypt(ekPKE, m, r).
func (p *ParameterSet) kpkeEncrypt(ekPKE, m []byte, r [32]byte) ([]byte, error) {
	if len(ekPKE) != p.ekPKELen() {
		return nil, errorf("kpkeEncrypt", ErrInvalidLength)
	}
	if len(m) != 32 {
		return nil, errorf("kpkeEncrypt", ErrInvalidLength)
	}

	tHat := newNTTVec(p.K)
	for i := 0; i < p.K; i++ {
		f, err := byteDecode(12, ekPKE[384*i:384*(i+1)])
		if err != nil {
			return nil, errorf("kpkeEncrypt", err)
		}
		tHat[i] = nttPoly(f)
	}
	var rho [32]byte
	copy(rho[:], ekPKE[384*p.K:384*p.K+32])

	a := expandMatrix(p.K, rho)

	var counter byte
	rVec := newNTTVec(p.K)
	for i := 0; i < p.K; i++ {
		rr := samplePolyCBD(p.Eta1, prf(p.Eta1, r[:], counter))
		counter++
		rVec[i] = ntt(rr)
	}
	e1 := newVec(p.K)
	for i := 0; i < p.K; i++ {
		e1[i] = samplePolyCBD(p.Eta2, prf(p.Eta2, r[:], counter))
		counter++
	}
	e2 := samplePolyCBD(p.Eta2, prf(p.Eta2, r[:], counter))

	uNTT := matTransposeVecMul(a, rVec)
	u := newVec(p.K)
	for i := 0; i < p.K; i++ {
		u[i] = nttInverse(uNTT[i])
	}
	u = addVec(u, e1)

	muCoeffs, err := byteDecode(1, m)
	if err != nil {
		return nil, errorf("kpkeEncrypt", err)
	}
	mu := decompressPoly(1, muCoeffs)

	v := nttInverse(dotProduct(tHat, rVec))
	v = addPoly(addPoly(v, e2), mu)
	zeroizeNTTVec(rVec)

	du, dv, k := p.DU, p.DV, p.K
	ct := make([]byte, p.CTLen)
	step := 32 * du
	for i := 0; i < k; i++ {
		copy(ct[i*step:(i+1)*step], byteEncode(du, compressPoly(du, u[i])))
	}
	copy(ct[k*step:k*step+32*dv], byteEncode(dv, compressPoly(dv, v)))

	return ct, nil
}

// kpkeDecrypt implements Algorithm 14, K-PKE.Decrypt(dkPKE, c).
func (p *ParameterSet) kpkeDecrypt(dkPKE, ct []byte) ([]byte, error) {
	if len(dkPKE) != p.dkPKELen() {
		return nil, errorf("kpkeDecrypt", ErrInvalidLength)
	}
	if len(ct) != p.CTLen {
		return nil, errorf("kpkeDecrypt", ErrInvalidLength)
	}

	du, dv, k := p.DU, p.DV, p.K
	step := 32 * du
	c1 := ct[:step*k]
	c2 := ct[step*k : step*k+32*dv]

	u := newVec(k)
	for i := 0; i < k; i++ {
		f, err := byteDecode(du, c1[i*step:(i+1)*step])
		if err != nil {
			return nil, errorf("kpkeDecrypt", err)
		}
		u[i] = decompressPoly(du, f)
	}
	vEnc, err := byteDecode(dv, c2)
	if err != nil {
		return nil, errorf("kpkeDecrypt", err)
	}
	v := decompressPoly(dv, vEnc)

	sHat := newNTTVec(k)
	for i := 0; i < k; i++ {
		f, err := byteDecode(12, dkPKE[384*i:384*(i+1)])
		if err != nil {
			return nil, errorf("kpkeDecrypt", err)
		}
		sHat[i] = nttPoly(f)
	}

	nttU := newNTTVec(k)
	for i := 0; i < k; i++ {
		nttU[i] = ntt(u[i])
	}
	w := subPoly(v, nttInverse(dotProduct(sHat, nttU)))

	m := byteEncode(1, compressPoly(1, w))
	return m, nil
}

// zeroizeNTTVec clears the coefficients of a secret NTT-domain vector (ŝ, ê,
// r̂, ...) in place, the polynomial analogue of zeroizeBytes.
func zeroizeNTTVec(v nttVec) {
	for i := range v {
		for j := range v[i] {
			v[i][j] = 0
		}
	}
}
