package mlkem

import (
	"io"
	"math/bits"
)

// sampleNTT draws an NTT-domain polynomial from a XOF byte stream (FIPS 203
// Algorithm 6). It reads 3 bytes at a time, extracts two 12-bit candidates,
// and accepts each iff < q. Rejections are expected and unbounded — this
// function relies on the statistical termination FIPS 203 describes rather
// than capping the number of reads, per FIPS 203 §8 boundary behaviors.
func sampleNTT(stream io.Reader) nttPoly {
	var out nttPoly
	var buf [3]byte
	j := 0
	for j < n {
		if _, err := stream.Read(buf[:]); err != nil {
			// A XOF reader never returns an error; panicking here surfaces a
			// genuine implementation bug rather than masking it as a
			// sampling failure (FIPS 203 §7: arithmetic/engine bugs panic).
			panic("mlkem: xof read failed: " + err.Error())
		}
		d1 := uint32(buf[0]) + 256*(uint32(buf[1])&0x0F)
		d2 := uint32(buf[1])/16 + 16*uint32(buf[2])
		if d1 < q {
			out[j] = zq(d1)
			j++
		}
		if d2 < q && j < n {
			out[j] = zq(d2)
			j++
		}
	}
	return out
}

// samplePolyCBD draws a standard-domain polynomial from the centered
// binomial distribution CBD_eta, consuming exactly 64*eta bytes (FIPS 203
// Algorithm 7). Coefficient i is popcount(bits[2*i*eta : 2*i*eta+eta]) minus
// popcount(bits[2*i*eta+eta : 2*i*eta+2*eta]), lifted into Z_q.
func samplePolyCBD(eta int, b []byte) poly {
	if len(b) != 64*eta {
		panic("mlkem: samplePolyCBD: wrong input length")
	}
	var out poly
	mask := uint64(1)<<uint(eta) - 1
	var acc uint64
	accBits := 0
	bytePos := 0
	for i := 0; i < n; i++ {
		for accBits < 2*eta {
			acc |= uint64(b[bytePos]) << uint(accBits)
			bytePos++
			accBits += 8
		}
		x := bits.OnesCount64(acc & mask)
		y := bits.OnesCount64((acc >> uint(eta)) & mask)
		out[i] = zqSub(zq(x), zq(y))
		acc >>= uint(2 * eta)
		accBits -= 2 * eta
	}
	return out
}
