// Package wipe provides the zero-on-exit primitive spec.md §5 requires for
// every sensitive buffer (round subkey temporaries, key-derivation buffers,
// scrypt material, salts, Montgomery matrices, sponge state). The original
// C++ source hand-rolls this with volatile writes; no example repo in the
// pack carries a dedicated secure-wipe library (the pack's closest analogue,
// subtle.ConstantTimeCompare, solves a different problem). This package is
// therefore the one stdlib-only piece of the ambient stack: there is no
// ecosystem wipe library among the teacher's or the pack's dependencies to
// wire instead, so it is a few lines of explicit, non-elidable writes.
package wipe

// Bytes zeroes b in place. The loop form (rather than a single bytes.Clear
// optimization) matches the "memory_set_no_optimize_function" intent of the
// original: a write the compiler cannot prove dead and elide.
func Bytes(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

// Uint64s zeroes a uint64 slice in place.
func Uint64s(w []uint64) {
	for i := range w {
		w[i] = 0
	}
}

// Uint32s zeroes a uint32 slice in place.
func Uint32s(w []uint32) {
	for i := range w {
		w[i] = 0
	}
}

// Matrix zeroes a square (or rectangular) uint64 matrix in place.
func Matrix(m [][]uint64) {
	for _, row := range m {
		Uint64s(row)
	}
}
