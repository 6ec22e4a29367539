package mix

import (
	"testing"

	"github.com/twilight-dream/oaldrespuzzle-cryptic/internal/rng"
)

func TestRegenerateSboxesHasNoFixedPoints(t *testing.T) {
	m := New()
	n := rng.NewNLFSR(11)

	oldS0, oldS1 := m.S0, m.S1
	m.RegenerateSboxes(n)

	for i := 0; i < 256; i++ {
		if m.S0[i] == oldS0[i] {
			t.Fatalf("S0[%d] unchanged after RegenerateSboxes", i)
		}
		if m.S1[i] == oldS1[i] {
			t.Fatalf("S1[%d] unchanged after RegenerateSboxes", i)
		}
	}
}

func TestRegenerateSboxesStaysAPermutation(t *testing.T) {
	m := New()
	n := rng.NewNLFSR(11)
	m.RegenerateSboxes(n)

	for _, box := range [][256]byte{m.S0, m.S1} {
		seen := make(map[byte]bool, 256)
		for _, v := range box {
			if seen[v] {
				t.Fatalf("box is not a permutation: repeated value %d", v)
			}
			seen[v] = true
		}
	}
}

func TestWord32KeyStreamAdvancesRegisters(t *testing.T) {
	m := New()
	in := [4]uint32{1, 2, 3, 4}
	first := m.Word32KeyStream(in)
	second := m.Word32KeyStream(in)
	if first == second {
		t.Fatalf("Word32KeyStream with identical input twice returned the same output; registers did not advance")
	}
}
