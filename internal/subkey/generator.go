package subkey

import (
	"github.com/twilight-dream/oaldrespuzzle-cryptic/internal/errs"
	"github.com/twilight-dream/oaldrespuzzle-cryptic/internal/field"
	"github.com/twilight-dream/oaldrespuzzle-cryptic/internal/lattice"
	"github.com/twilight-dream/oaldrespuzzle-cryptic/internal/wipe"
)

// Generator is SubkeyGenerator (spec.md §4.7): it folds master key material
// through LatticeHash into the matrix's init step, then always advances the
// matrix via Update so the next round draws from fresh state.
type Generator struct {
	Matrix *Matrix
	Field  *field.Field
}

// NewGenerator pairs a Matrix with the field context LatticeHash needs.
func NewGenerator(m *Matrix, f *field.Field) *Generator {
	return &Generator{Matrix: m, Field: f}
}

// Generate implements spec.md §4.7. masterKeyWords, when non-empty, is the
// KEY_BLOCK_QW-length working key vector spec.md §3 describes; LatticeHash
// itself needs an R-length input (R = 2*KEY_BLOCK_QW), so the key vector is
// tiled twice rather than padded with zeros — every key word still
// influences the hash, instead of half the lattice rows seeing only
// padding (see DESIGN.md for why this reconciles §3's KEY_BLOCK_QW-length
// working vector with §4.4's R-length LatticeHash contract).
func (g *Generator) Generate(masterKeyWords []uint64) error {
	if len(masterKeyWords) > 0 {
		keyBlockQW := g.Matrix.Sizes.KeyBlockQW
		if len(masterKeyWords) != keyBlockQW {
			return errs.InputLength("subkey generator: master key vector has %d words, want %d (KEY_BLOCK_QW)", len(masterKeyWords), keyBlockQW)
		}

		x := make([]uint64, g.Matrix.R)
		copy(x, masterKeyWords)
		copy(x[keyBlockQW:], masterKeyWords)

		hashed, err := lattice.Hash(g.Field, g.Matrix.A, x)
		if err != nil {
			wipe.Uint64s(x)
			return err
		}
		g.Matrix.Init(hashed)
		wipe.Uint64s(hashed)
		wipe.Uint64s(x)
	}
	g.Matrix.Update()
	return nil
}
