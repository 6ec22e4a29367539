// Package common holds the shared sizing contract (DATA_BLOCK_QW,
// KEY_BLOCK_QW and the derived matrix dimension R) spec.md §3 defines, plus
// the little-endian word/byte conversion helpers (convert.go) the cipher
// packages share. Keeping this
// in one place avoids every package re-deriving R = 2*KeyBlockQW and
// re-validating the same invariants.
package common

import "github.com/twilight-dream/oaldrespuzzle-cryptic/internal/errs"

// Sizes is the validated (DataBlockQW, KeyBlockQW) pair spec.md §3 requires.
type Sizes struct {
	DataBlockQW int
	KeyBlockQW  int
}

// DefaultSizes matches spec.md §3's stated defaults: 16 64-bit words of
// data (128 bytes), 32 64-bit words of key (256 bytes).
func DefaultSizes() Sizes {
	return Sizes{DataBlockQW: 16, KeyBlockQW: 32}
}

// New validates a (dataQW, keyQW) pair against spec.md §3's constraints.
func New(dataQW, keyQW int) (Sizes, error) {
	s := Sizes{DataBlockQW: dataQW, KeyBlockQW: keyQW}
	if dataQW < 2 || dataQW%2 != 0 {
		return Sizes{}, errs.Configuration("DATA_BLOCK_QW=%d must be >= 2 and even", dataQW)
	}
	if keyQW < 4 || keyQW%4 != 0 {
		return Sizes{}, errs.Configuration("KEY_BLOCK_QW=%d must be >= 4 and a multiple of 4", keyQW)
	}
	if keyQW <= dataQW || keyQW%dataQW != 0 {
		return Sizes{}, errs.Configuration("KEY_BLOCK_QW=%d must be > DATA_BLOCK_QW=%d and a multiple of it", keyQW, dataQW)
	}
	return s, nil
}

// R is the square subkey/lattice matrix dimension, spec.md §3's "R =
// 2*KEY_BLOCK_QW".
func (s Sizes) R() int { return 2 * s.KeyBlockQW }

// DataBlockBytes is the byte length of one plaintext block.
func (s Sizes) DataBlockBytes() int { return s.DataBlockQW * 8 }

// KeyBlockBytes is the byte length of one key block.
func (s Sizes) KeyBlockBytes() int { return s.KeyBlockQW * 8 }
