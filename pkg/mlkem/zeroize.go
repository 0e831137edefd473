package mlkem

import "runtime"

// zeroizeBytes overwrites buf with zeros and pins it alive with
// runtime.KeepAlive so the compiler cannot elide the store as a dead write.
func zeroizeBytes(buf []byte) {
	for i := range buf {
		buf[i] = 0
	}
	runtime.KeepAlive(buf)
}
