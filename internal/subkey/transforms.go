package subkey

import "math/bits"

// ForwardTransform is the round function's public orthomorphism step
// (spec.md §4.8): A=L+R; B=L+2R; B^=rotl(A,1); A^=rotr(B,63). Operating on
// 32-bit halves matches spec.md §8's "forall 32-bit L,R" testable property;
// the rotation amounts (1, 63) are taken verbatim even though 63 reduces
// mod 32 under a 32-bit rotate.
func ForwardTransform(l, r uint32) (a, b uint32) {
	a = l + r
	b = l + 2*r
	b ^= bits.RotateLeft32(a, 1)
	a ^= bits.RotateLeft32(b, -63)
	return a, b
}

// BackwardTransform is ForwardTransform's exact inverse. spec.md §4.8's own
// prose for this direction reuses L/R/A/B inconsistently (it assigns into
// variables it has not yet derived); this reconstructs the inverse
// algebraically from ForwardTransform's definition instead of transcribing
// that passage literally, and is an exact round-trip by construction.
func BackwardTransform(aIn, bIn uint32) (l, r uint32) {
	a := aIn ^ bits.RotateLeft32(bIn, -63)
	b := bIn ^ bits.RotateLeft32(a, 1)
	r = b - a
	l = a - r
	return l, r
}
