package subkey

import "github.com/twilight-dream/oaldrespuzzle-cryptic/internal/isaac64"

// diffusionSeed fixes the generation of the 32x32 "fixed sparse linear
// transformation" spec.md §4.8 describes as "generated offline from a
// published script in the source comments" but does not print. As with the
// other un-printed fixed tables in this module, it is generated once,
// deterministically, and verified full rank over GF(2) rather than
// hand-transcribed; see DESIGN.md.
const diffusionSeed uint64 = 0x4F50435F44494646 // "OPC_DIFF"

// diffusionMatrix32 holds row i as a 32-bit mask: bit j set means output
// word i includes input word j in its XOR sum. Each row carries roughly 16
// set bits, and the whole matrix is full rank over GF(2) so the layer is a
// bijection on 32-word windows.
var diffusionMatrix32 [32]uint32

func init() {
	gen := isaac64.New(diffusionSeed)
	for {
		var rows [32]uint32
		for i := range rows {
			var mask uint32
			for popcount(mask) < 16 {
				mask |= 1 << uint(gen.Intn(32))
			}
			rows[i] = mask
		}
		if gf2FullRank(rows) {
			diffusionMatrix32 = rows
			return
		}
	}
}

func popcount(x uint32) int {
	n := 0
	for x != 0 {
		n++
		x &= x - 1
	}
	return n
}

// gf2FullRank reports whether the 32 rows, each a bitmask over 32 columns,
// span the full GF(2)^32 row space (standard Gaussian elimination over
// bitmasks).
func gf2FullRank(rows [32]uint32) bool {
	work := rows
	rank := 0
	for col := uint(0); col < 32 && rank < 32; col++ {
		pivot := -1
		for i := rank; i < 32; i++ {
			if work[i]&(1<<col) != 0 {
				pivot = i
				break
			}
		}
		if pivot == -1 {
			continue
		}
		work[rank], work[pivot] = work[pivot], work[rank]
		for i := 0; i < 32; i++ {
			if i != rank && work[i]&(1<<col) != 0 {
				work[i] ^= work[rank]
			}
		}
		rank++
	}
	return rank == 32
}

// applyDiffusionLayer replaces vec's contents window-by-window (32 words per
// window) with the fixed XOR-sum transform of diffusionMatrix32. len(vec)
// must be a multiple of 32, true for every R*R this module constructs since
// R is itself always a multiple of 8.
func applyDiffusionLayer(vec []uint64) {
	var window [32]uint64
	for base := 0; base+32 <= len(vec); base += 32 {
		copy(window[:], vec[base:base+32])
		for i := 0; i < 32; i++ {
			var out uint64
			mask := diffusionMatrix32[i]
			for j := 0; j < 32; j++ {
				if mask&(1<<uint(j)) != 0 {
					out ^= window[j]
				}
			}
			vec[base+i] = out
		}
	}
}
