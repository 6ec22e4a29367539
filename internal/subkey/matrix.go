// Package subkey implements the matrix-based subkey derivation chain of
// spec.md §4.6-§4.8: SubkeyMatrix (the R×R state and its IV/key-driven
// mutation), SubkeyGenerator (folding the matrix through LatticeHash into a
// subkey stream) and RoundSubkeyGen (deriving the R*R round-subkey vector
// rs_vec and the per-lane CrazyTransformAssociatedWord), plus the
// forward/backward transforms of transforms.go.
package subkey

import (
	"math/bits"

	"github.com/twilight-dream/oaldrespuzzle-cryptic/internal/common"
	"github.com/twilight-dream/oaldrespuzzle-cryptic/internal/mix"
	"github.com/twilight-dream/oaldrespuzzle-cryptic/internal/rng"
)

func rotl64(x uint64, n uint) uint64 { return bits.RotateLeft64(x, int(n)) }
func rotr64(x uint64, n uint) uint64 { return bits.RotateLeft64(x, -int(n)) }

// Matrix is the R×R key-dependent state spec.md §4.6 calls SubkeyMatrix,
// together with the MatrixOffsetWithRandomIndices permutation it reshuffles
// on every update.
type Matrix struct {
	Sizes common.Sizes
	R     int

	A [][]uint64 // the live matrix
	T [][]uint64 // the transform matrix update folds A through

	Index []uint32 // MatrixOffsetWithRandomIndices

	Mix   *mix.MixUtil
	LFSR  *rng.LFSR
	NLFSR *rng.NLFSR
	SDP   *rng.SDP
}

// New builds a zero-valued R×R Matrix (identity T, sequential Index) ready
// for ApplyIV and Init.
func New(sizes common.Sizes, m *mix.MixUtil, l *rng.LFSR, n *rng.NLFSR, s *rng.SDP) *Matrix {
	r := sizes.R()
	sm := &Matrix{
		Sizes: sizes,
		R:     r,
		A:     make([][]uint64, r),
		T:     make([][]uint64, r),
		Index: make([]uint32, r),
		Mix:   m,
		LFSR:  l,
		NLFSR: n,
		SDP:   s,
	}
	for i := 0; i < r; i++ {
		sm.A[i] = make([]uint64, r)
		sm.T[i] = make([]uint64, r)
		sm.T[i][i] = 1
		sm.Index[i] = uint32(i)
	}
	return sm
}

// ApplyIV scans the IV, word32-expanded, and folds it into the matrix cell
// by cell starting from the last entry, per spec.md §4.6. The IV expansion
// is cycled from the top if the matrix is larger than the expanded vector.
func (sm *Matrix) ApplyIV(iv []byte) {
	ivWords := common.BytesToU32s(iv)
	if len(ivWords) == 0 {
		ivWords = []uint32{0}
	}
	expanded := mix.Word32ExpandKey(ivWords)

	idx := len(expanded)
	next := func() uint64 {
		if idx >= len(expanded) {
			idx = 0
		}
		v := expanded[idx]
		idx++
		return uint64(v)
	}

	for row := sm.R - 1; row >= 0; row-- {
		for col := sm.R - 1; col >= 0; col-- {
			raw := next()
			rot := rotl64(raw, 7)
			a := sm.A[row][col]

			a -= raw ^ (raw & rot)
			a ^= 1 << (raw & 63)
			raw += a
			a += raw*2 + a

			sm.A[row][col] = a
		}
	}
}

// Init folds a key block into the matrix and regenerates MixUtil's S-boxes,
// per spec.md §4.6: the key bytes are double-substituted through S0, word32
// expanded and folded through the keystream register to produce a second
// double-substituted random stream, which is subtracted column-major into
// the matrix; any cells beyond the key's length are padded from the LFSR.
func (sm *Matrix) Init(key []uint64) {
	keyBytes := common.U64sToBytes(key)
	for i, b := range keyBytes {
		keyBytes[i] = sm.Mix.S0[sm.Mix.S0[b]]
	}

	words32 := common.BytesToU32s(keyBytes)
	expanded := mix.Word32ExpandKey(words32)

	random32 := make([]uint32, 0, len(expanded))
	for i := 0; i+4 <= len(expanded); i++ {
		var w4 [4]uint32
		copy(w4[:], expanded[i:i+4])
		v := sm.Mix.Word32KeyStream(w4) ^ w4[3]
		if sm.LFSR.Bool() {
			v = ^v + 1
		}
		random32 = append(random32, v)
	}

	randomBytes := common.U32sToBytes(random32)
	for i, b := range randomBytes {
		randomBytes[i] = sm.Mix.S1[sm.Mix.S1[b]]
	}
	random64 := common.BytesToU64s(randomBytes)

	idx := 0
	for col := 0; col < sm.R; col++ {
		for row := 0; row < sm.R; row++ {
			if idx < len(random64) {
				sm.A[row][col] -= random64[idx]
				idx++
				continue
			}
			v := sm.LFSR.Uint64()
			if sm.LFSR.Bool() {
				v = ^v
			}
			sm.A[row][col] -= v
		}
	}

	for i := range keyBytes {
		keyBytes[i] = 0
	}
	for i := range randomBytes {
		randomBytes[i] = 0
	}

	sm.Mix.RegenerateSboxes(sm.NLFSR)
}

// Update is the per-round matrix mutation of spec.md §4.6: the NLFSR fills a
// row vector and a column vector, which drive a local ARX diffusion of A
// against T; the SDP then redraws both vectors, and their Kronecker product
// scaled by their dot product is matrix-multiplied against A to produce the
// next T. Finally Index is reshuffled by the NLFSR.
func (sm *Matrix) Update() {
	r := sm.R
	vRow := make([]uint64, r)
	vCol := make([]uint64, r)
	for i := 0; i < r; i++ {
		vRow[i] = sm.NLFSR.UnpredictableBits(true, 63)
		vCol[i] = sm.NLFSR.UnpredictableBits(false, 64)
	}

	for i := 0; i < r; i++ {
		for j := 0; j < r; j++ {
			l := sm.A[i][j]*vRow[j] + vCol[i]
			rr := sm.A[i][j]*vCol[i] - vRow[j]

			aAndT := sm.A[i][j] & sm.T[i][j]
			aOrT := sm.A[i][j] | sm.T[i][j]

			a := l ^ aAndT
			b := rr ^ aOrT

			sm.A[i][j] ^= rotr64(a, 1) + rotl64(b, 63)
		}
	}

	for i := 0; i < r; i++ {
		vRow[i] = sm.SDP.Next()
		vCol[i] = sm.SDP.Next()
	}

	var dot uint64
	for i := 0; i < r; i++ {
		dot += vCol[i] * vRow[i]
	}

	k := make([][]uint64, r)
	for i := 0; i < r; i++ {
		k[i] = make([]uint64, r)
		for j := 0; j < r; j++ {
			k[i][j] = (vRow[i] * vCol[j]) * dot
		}
	}

	for i := 0; i < r; i++ {
		for j := 0; j < r; j++ {
			var sum uint64
			for m := 0; m < r; m++ {
				sum += sm.A[i][m] * k[m][j]
			}
			sm.T[i][j] = sum
		}
	}

	sm.NLFSR.ShuffleUint32(sm.Index)
}
