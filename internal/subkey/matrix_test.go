package subkey

import (
	"testing"

	"github.com/twilight-dream/oaldrespuzzle-cryptic/internal/common"
	"github.com/twilight-dream/oaldrespuzzle-cryptic/internal/mix"
	"github.com/twilight-dream/oaldrespuzzle-cryptic/internal/rng"
)

func testMatrix(t *testing.T) *Matrix {
	t.Helper()
	sizes, err := common.New(2, 4)
	if err != nil {
		t.Fatalf("common.New: %v", err)
	}
	l := rng.NewLFSR(11)
	n := rng.NewNLFSR(13)
	s, err := rng.NewSDP(rng.MinSDPSeed)
	if err != nil {
		t.Fatalf("NewSDP: %v", err)
	}
	return New(sizes, mix.New(), l, n, s)
}

func TestNewMatrixStartsWithIdentityTransform(t *testing.T) {
	sm := testMatrix(t)
	for i := 0; i < sm.R; i++ {
		for j := 0; j < sm.R; j++ {
			want := uint64(0)
			if i == j {
				want = 1
			}
			if sm.T[i][j] != want {
				t.Fatalf("T[%d][%d] = %d, want identity value %d", i, j, sm.T[i][j], want)
			}
			if sm.Index[i] != uint32(i) {
				t.Fatalf("Index[%d] = %d, want %d", i, sm.Index[i], i)
			}
		}
	}
}

func TestApplyIVChangesMatrix(t *testing.T) {
	sm := testMatrix(t)
	before := cloneMatrixRows(sm.A)

	sm.ApplyIV([]byte{1, 2, 3, 4, 5, 6, 7, 8})

	if matrixEqual(before, sm.A) {
		t.Fatalf("ApplyIV left the matrix unchanged")
	}
}

func TestApplyIVIsDeterministic(t *testing.T) {
	sm1 := testMatrix(t)
	sm2 := testMatrix(t)

	iv := []byte{9, 8, 7, 6, 5, 4, 3, 2, 1}
	sm1.ApplyIV(iv)
	sm2.ApplyIV(iv)

	if !matrixEqual(sm1.A, sm2.A) {
		t.Fatalf("ApplyIV is not deterministic across identically-seeded matrices")
	}
}

func TestInitChangesMatrixAndSboxes(t *testing.T) {
	sm := testMatrix(t)
	before := cloneMatrixRows(sm.A)
	oldS0 := sm.Mix.S0

	sm.Init([]uint64{0x1111, 0x2222, 0x3333, 0x4444})

	if matrixEqual(before, sm.A) {
		t.Fatalf("Init left the matrix unchanged")
	}
	if sm.Mix.S0 == oldS0 {
		t.Fatalf("Init did not regenerate S-boxes")
	}
}

func TestUpdateChangesMatrixAndIndex(t *testing.T) {
	sm := testMatrix(t)
	sm.Init([]uint64{1, 2, 3, 4})

	beforeA := cloneMatrixRows(sm.A)
	beforeIndex := append([]uint32(nil), sm.Index...)

	sm.Update()

	if matrixEqual(beforeA, sm.A) {
		t.Fatalf("Update left A unchanged")
	}

	sameIndex := true
	for i := range beforeIndex {
		if beforeIndex[i] != sm.Index[i] {
			sameIndex = false
			break
		}
	}
	if sameIndex {
		t.Fatalf("Update left Index unchanged")
	}

	seen := make(map[uint32]bool, len(sm.Index))
	for _, v := range sm.Index {
		if v >= uint32(len(sm.Index)) || seen[v] {
			t.Fatalf("Update left Index as a non-permutation: %v", sm.Index)
		}
		seen[v] = true
	}
}

func cloneMatrixRows(m [][]uint64) [][]uint64 {
	out := make([][]uint64, len(m))
	for i, row := range m {
		out[i] = append([]uint64(nil), row...)
	}
	return out
}

func matrixEqual(a, b [][]uint64) bool {
	for i := range a {
		for j := range a[i] {
			if a[i][j] != b[i][j] {
				return false
			}
		}
	}
	return true
}
