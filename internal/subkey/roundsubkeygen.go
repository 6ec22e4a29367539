package subkey

import "math/bits"

// Rounds is the fixed Lai-Massey round count spec.md §4.9 uses for the
// Type-2 block cipher.
const Rounds = 16

// RoundSubkeyGen is spec.md §4.8: it owns the R×R RS matrix (zeroised only
// once, at construction) and its flattened rs_vec view, both re-derived
// from the SubkeyMatrix's current A/T on every generate call.
type RoundSubkeyGen struct {
	Matrix  *Matrix
	RS      [][]uint64
	RSVec   []uint64
	Counter uint64
}

// NewRoundSubkeyGen builds a zero-valued RoundSubkeyGen bound to m.
func NewRoundSubkeyGen(m *Matrix) *RoundSubkeyGen {
	return &RoundSubkeyGen{
		Matrix: m,
		RS:     newMatrix(m.R),
		RSVec:  make([]uint64, m.R*m.R),
	}
}

// GenerateRoundSubkeys runs one outer step of spec.md §4.8: Temp =
// (A+Tᵀ)·(T−Aᵀ) transposed ("adjoint" here is Eigen's conjugate-transpose
// member function, i.e. plain transpose for real u64 scalars — see
// DESIGN.md), RS accumulates Temp·A·T, rs_vec is whitened against the
// flattened RS, and finally passed through the fixed GF(2) diffusion layer.
func (rg *RoundSubkeyGen) GenerateRoundSubkeys() {
	a := rg.Matrix.A
	t := rg.Matrix.T

	apt := addTranspose(a, t)
	tma := subTranspose(t, a)
	temp := transpose(matMul(apt, tma))

	m1 := matMul(temp, a)
	m2 := matMul(m1, t)

	r := rg.Matrix.R
	idx := 0
	for i := 0; i < r; i++ {
		for j := 0; j < r; j++ {
			rg.RS[i][j] += m2[i][j]
			rg.RSVec[idx] ^= rg.RS[i][j]
			idx++
		}
	}

	applyDiffusionLayer(rg.RSVec)
	rg.Counter++
}

// CrazyTransformAssociatedWord is spec.md §4.8's nonlinear per-lane mixer.
// A 32-bit lane and a 64-bit key-material word are folded into a
// pseudo-random 64-bit value; that value is shifted (not rotated) into two
// 32-bit halves, each masked against the key-material halves and the lane
// by AND/OR; the result is rotated by the key-material and remixed once
// more by the identical AND-NOT/OR/XOR formula before selecting an RS cell
// via the shuffled index array; two bits of that cell are extracted,
// rotated into a mask, and folded back into the lane.
func (rg *RoundSubkeyGen) CrazyTransformAssociatedWord(a uint32, k uint64) uint32 {
	r := uint32(rg.Matrix.R)
	leftKey := uint32(k >> 32)
	rightKey := uint32(k)

	p := ((k ^ uint64(a)) << 32) | ((^k ^ uint64(a)) >> 32)

	shift := k % 64
	wordC := uint32((p << shift) >> 32)
	wordD := uint32(p >> shift)

	wordC = (a | leftKey) & wordC
	wordD = (a & rightKey) | wordD

	wordA := wordC
	wordB := wordD

	rotAmount := int(p % 32)
	wordA = bits.RotateLeft32(wordA+leftKey, rotAmount)
	wordB = bits.RotateLeft32(wordB+rightKey, -rotAmount)

	wordC = (wordB &^ leftKey) ^ (wordD | a)
	wordD = (wordA &^ rightKey) ^ (wordC | a)

	wordA ^= wordC
	wordB ^= wordD

	row := rg.Matrix.Index[wordA%r]
	col := rg.Matrix.Index[wordB%r]
	subkey := rg.RS[int(row)][int(col)]

	shiftAmount := wordA + wordB
	shiftAmount2 := wordA + wordB*2
	rotateAmount := col - row
	rotateAmount2 := 2*row - col

	bit1 := (subkey >> (uint64(shiftAmount) % 64)) & 1
	bit2 := (subkey >> (uint64(shiftAmount2) % 64)) & 1

	leftMask := bits.RotateLeft64(bit1, int(uint64(rotateAmount)%64))
	rightMask := bits.RotateLeft64(bit2, -int(uint64(rotateAmount2)%64))

	mask := leftMask ^ rightMask
	if mask == 0 {
		mask |= 1 << ((uint64(row+col) * 2) % 64)
	}
	subkey &^= mask

	wordA ^= uint32(subkey >> 32)
	wordB ^= uint32(subkey)

	return a ^ (wordA ^ wordB)
}
