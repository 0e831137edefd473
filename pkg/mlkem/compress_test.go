package mlkem

import "testing"

func TestCompressDecompressErrorBudget(t *testing.T) {
	for _, d := range []int{1, 4, 5, 10, 11} {
		bound := zq((q + (1 << uint(d+1)) - 1) / (1 << uint(d+1))) // ceil(q/2^(d+1))
		for x := zq(0); x < zq(q); x++ {
			y := compress(d, x)
			back := decompress(d, y)
			diff := zqSub(back, x)
			// |diff| mod q, taking the shorter way around the ring.
			dist := uint32(diff)
			if q-dist < dist {
				dist = q - dist
			}
			if dist > uint32(bound) {
				t.Fatalf("d=%d x=%d: |decompress(compress(x))-x|=%d exceeds bound %d", d, x, dist, bound)
			}
		}
	}
}
