package mlkem

// bitRev7 reverses the low 7 bits of x (x < 128), matching FIPS 203's
// BitRev7 used to index the twiddle table in bit-reversed order.
func bitRev7(x uint8) uint8 {
	var r uint8
	for i := 0; i < 7; i++ {
		r = (r << 1) | (x & 1)
		x >>= 1
	}
	return r
}

// zetaPow[k] = zeta^BitRev7(k) mod q, for k in [0,128). Index 0 is unused by
// the butterfly loops (k starts at 1) but kept for a uniform table.
var zetaPow = func() [128]zq {
	var t [128]zq
	for k := 0; k < 128; k++ {
		t[k] = zqPow(zeta, uint32(bitRev7(uint8(k))))
	}
	return t
}()

// ntt computes the forward length-256 NTT: a length-128, 7-layer
// decimation-in-time butterfly over layer lengths [128,64,32,16,8,4,2].
// Output coefficients are in bit-reversed order, per FIPS 203 §4.6.
func ntt(f poly) nttPoly {
	out := nttPoly(f)
	k := 1
	for _, length := range [...]int{128, 64, 32, 16, 8, 4, 2} {
		for start := 0; start < n; start += 2 * length {
			z := zetaPow[k]
			k++
			for j := start; j < start+length; j++ {
				t := zqMul(z, out[j+length])
				out[j+length] = zqSub(out[j], t)
				out[j] = zqAdd(out[j], t)
			}
		}
	}
	return out
}

// qInv128 is 128^-1 mod q = 3303, applied once at the end of nttInverse.
const qInv128 zq = 3303

// nttInverse computes the inverse NTT: Gentleman-Sande butterflies over
// layer lengths [2,4,8,16,32,64,128] with k decrementing from 127, followed
// by a final multiplication by 128^-1 mod q.
func nttInverse(fHat nttPoly) poly {
	f := poly(fHat)
	k := 127
	for _, length := range [...]int{2, 4, 8, 16, 32, 64, 128} {
		for start := 0; start < n; start += 2 * length {
			z := zetaPow[k]
			k--
			for j := start; j < start+length; j++ {
				t := f[j]
				f[j] = zqAdd(t, f[j+length])
				f[j+length] = zqMul(z, zqSub(f[j+length], t))
			}
		}
	}
	for i := range f {
		f[i] = zqMul(f[i], qInv128)
	}
	return f
}

// baseCaseMultiply multiplies (a0+a1*X)*(b0+b1*X) mod (X^2-gamma) in Z_q[X],
// per FIPS 203 Algorithm 11.
func baseCaseMultiply(a0, a1, b0, b1, gamma zq) (c0, c1 zq) {
	c0 = zqAdd(zqMul(a0, b0), zqMul(zqMul(a1, b1), gamma))
	c1 = zqAdd(zqMul(a0, b1), zqMul(a1, b0))
	return c0, c1
}

// multiplyNTTs computes the pointwise product of two NTT-domain
// polynomials: 128 independent degree-1 multiplications, each modulo
// (X^2 - zeta^(2*BitRev7(i)+1)).
func multiplyNTTs(f, g nttPoly) nttPoly {
	var h nttPoly
	for i := 0; i < 128; i++ {
		gamma := zqPow(zeta, 2*uint32(bitRev7(uint8(i)))+1)
		c0, c1 := baseCaseMultiply(f[2*i], f[2*i+1], g[2*i], g[2*i+1], gamma)
		h[2*i] = c0
		h[2*i+1] = c1
	}
	return h
}
