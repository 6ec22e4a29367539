// Package lattice implements LatticeHash: y = A*x (mod p) then
// h = y + Sponge(y) (mod p), the SIS-inspired compression spec.md §4.4
// describes. It is the bridge between SubkeyMatrix's random matrix and
// SpongeHash's diffusion.
package lattice

import (
	"github.com/twilight-dream/oaldrespuzzle-cryptic/internal/errs"
	"github.com/twilight-dream/oaldrespuzzle-cryptic/internal/field"
	"github.com/twilight-dream/oaldrespuzzle-cryptic/internal/sponge"
	"github.com/twilight-dream/oaldrespuzzle-cryptic/internal/wipe"
)

// Hash computes one LatticeHash over an R x R matrix A (row-major, R rows of
// R columns) and an R-length vector x, returning the R-length result. The
// field context is passed explicitly rather than injected through
// thread-local state (spec.md §9 guidance).
func Hash(f *field.Field, a [][]uint64, x []uint64) ([]uint64, error) {
	r := len(x)
	if r == 0 || len(a) != r {
		return nil, errs.InternalAssert("lattice: matrix/vector size mismatch (R=%d, rows=%d)", r, len(a))
	}
	for _, row := range a {
		if len(row) != r {
			return nil, errs.InternalAssert("lattice: non-square matrix row length %d (want %d)", len(row), r)
		}
	}

	p := f.Modulus()

	xMont := make([]uint64, r)
	for i, v := range x {
		xMont[i] = f.ToMont(v)
	}

	aMont := make([][]uint64, r)
	for i := range a {
		aMont[i] = make([]uint64, r)
		for j, v := range a[i] {
			aMont[i][j] = f.ToMont(v)
		}
	}

	yMont := make([]uint64, r)
	for i := 0; i < r; i++ {
		var acc uint64
		for j := 0; j < r; j++ {
			acc = f.Add(acc, f.Mul(aMont[i][j], xMont[j]))
		}
		yMont[i] = acc
	}

	yStd := make([]uint64, r)
	for i, v := range yMont {
		yStd[i] = f.FromMont(v)
	}

	hashBits := 32 * r
	if hashBits < 128 {
		hashBits = 128
	}
	sp, err := sponge.New(hashBits)
	if err != nil {
		return nil, err
	}
	h := make([]uint64, r)
	sp.SpongeHash(yStd, h)

	out := make([]uint64, r)
	for i := range out {
		out[i] = field.AddMod(yStd[i], h[i], p)
	}

	wipe.Uint64s(xMont)
	wipe.Matrix(aMont)
	wipe.Uint64s(yMont)
	wipe.Uint64s(h)
	wipe.Uint64s(yStd)

	return out, nil
}
