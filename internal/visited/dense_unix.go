//go:build dense

package visited

import "golang.org/x/sys/unix"

// bitCount covers every possible Pack37 key; byteCount is its footprint as
// an anonymous mmap.
const (
	bitCount  = 1 << 37
	byteCount = bitCount / 8
)

// dense is a 2^37-bit anonymous mmap-backed bit array. It is mapped once
// and reused clear-for-clear across solves, trading a large upfront
// mapping for zero per-solve allocation.
type dense struct {
	data []byte
}

// New maps the dense bitmap and returns it as a Set. Panics if the mapping
// cannot be made, matching the package's convention that setup failures
// here are fatal, not recoverable.
func New() Set {
	data, err := unix.Mmap(-1, 0, byteCount, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		panic("visited: mmap dense bitmap: " + err.Error())
	}
	return &dense{data: data}
}

func (d *dense) TestAndSet(key uint64) bool {
	idx := key >> 3
	bit := byte(1) << (key & 7)
	was := d.data[idx]&bit != 0
	d.data[idx] |= bit
	return was
}

func (d *dense) Clear() {
	for i := range d.data {
		d.data[i] = 0
	}
}

// BackendName identifies which visited-set implementation this build was
// compiled with, for diagnostic logging.
func BackendName() string { return "dense" }
