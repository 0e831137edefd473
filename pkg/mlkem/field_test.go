package mlkem

import (
	"math/rand"
	"testing"
)

func TestFieldArithmeticCanonical(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	for i := 0; i < 1000; i++ {
		a := zq(rng.Intn(int(q)))
		b := zq(rng.Intn(int(q)))
		for _, v := range []zq{zqAdd(a, b), zqSub(a, b), zqMul(a, b)} {
			if !isCanonical(uint16(v)) {
				t.Fatalf("a=%d b=%d produced non-canonical %d", a, b, v)
			}
		}
	}
}

func TestFieldArithmeticAgreesWithIntMod(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 1000; i++ {
		a := rng.Intn(int(q))
		b := rng.Intn(int(q))
		wantAdd := (a + b) % int(q)
		wantSub := ((a - b) % int(q) + int(q)) % int(q)
		wantMul := (a * b) % int(q)
		if got := int(zqAdd(zq(a), zq(b))); got != wantAdd {
			t.Fatalf("add(%d,%d)=%d want %d", a, b, got, wantAdd)
		}
		if got := int(zqSub(zq(a), zq(b))); got != wantSub {
			t.Fatalf("sub(%d,%d)=%d want %d", a, b, got, wantSub)
		}
		if got := int(zqMul(zq(a), zq(b))); got != wantMul {
			t.Fatalf("mul(%d,%d)=%d want %d", a, b, got, wantMul)
		}
	}
}
