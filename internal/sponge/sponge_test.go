package sponge

import "testing"

func TestSpongeHashDeterministicAcrossReuse(t *testing.T) {
	h, err := New(128)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	input := []uint64{1, 2, 3, 4, 5}

	out1 := make([]uint64, 2)
	h.SpongeHash(input, out1)

	out2 := make([]uint64, 2)
	h.SpongeHash(input, out2)

	if out1[0] != out2[0] || out1[1] != out2[1] {
		t.Fatalf("SpongeHash not deterministic across reuse: %v vs %v", out1, out2)
	}
}

func TestSpongeHashResetsState(t *testing.T) {
	h, err := New(128)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	out := make([]uint64, 2)
	h.SpongeHash([]uint64{9, 9, 9}, out)

	for _, w := range h.state {
		if w != 0 {
			t.Fatalf("state not zeroised after SpongeHash")
		}
	}
}

func TestNewRejectsInvalidHashBits(t *testing.T) {
	if _, err := New(64); err == nil {
		t.Fatalf("expected error for HashBits < 128")
	}
	if _, err := New(129); err == nil {
		t.Fatalf("expected error for HashBits not a multiple of 8")
	}
}

func TestDifferentInputsProduceDifferentDigests(t *testing.T) {
	h, err := New(128)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	a := make([]uint64, 2)
	h.SpongeHash([]uint64{1, 2, 3}, a)

	b := make([]uint64, 2)
	h.SpongeHash([]uint64{1, 2, 4}, b)

	if a[0] == b[0] && a[1] == b[1] {
		t.Fatalf("different inputs produced identical digests")
	}
}
