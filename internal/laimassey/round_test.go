package laimassey

import (
	"testing"

	"github.com/twilight-dream/oaldrespuzzle-cryptic/internal/common"
	"github.com/twilight-dream/oaldrespuzzle-cryptic/internal/mix"
	"github.com/twilight-dream/oaldrespuzzle-cryptic/internal/rng"
	"github.com/twilight-dream/oaldrespuzzle-cryptic/internal/subkey"
)

func newTestRound(t *testing.T, seed uint64) *Round {
	t.Helper()
	sizes, err := common.New(2, 4)
	if err != nil {
		t.Fatalf("common.New: %v", err)
	}
	l := rng.NewLFSR(seed)
	n := rng.NewNLFSR(seed + 1)
	s, err := rng.NewSDP(rng.MinSDPSeed + seed)
	if err != nil {
		t.Fatalf("NewSDP: %v", err)
	}
	m := subkey.New(sizes, mix.New(), l, n, s)
	m.Init([]uint64{seed, seed + 1, seed + 2, seed + 3})

	return New(subkey.NewRoundSubkeyGen(m))
}

func TestEncryptBlockDecryptBlockRoundTrip(t *testing.T) {
	rnd := newTestRound(t, 7)
	block := []uint64{0x1122334455667788, 0xAABBCCDDEEFF0011}
	orig := append([]uint64(nil), block...)

	ct := rnd.EncryptBlock(block)

	changed := false
	for i := range ct {
		if ct[i] != orig[i] {
			changed = true
		}
	}
	if !changed {
		t.Fatalf("EncryptBlock left the block unchanged")
	}

	pt := rnd.DecryptBlock(ct)
	for i := range pt {
		if pt[i] != orig[i] {
			t.Fatalf("round trip mismatch at word %d: got %x want %x", i, pt[i], orig[i])
		}
	}
}

func TestEncryptBlockDoesNotMutateItsArgument(t *testing.T) {
	rnd := newTestRound(t, 3)
	block := []uint64{1, 2}
	orig := append([]uint64(nil), block...)

	rnd.EncryptBlock(block)

	for i := range block {
		if block[i] != orig[i] {
			t.Fatalf("EncryptBlock mutated its input slice in place")
		}
	}
}

func TestEncryptBlockAdvancesRoundSubkeyState(t *testing.T) {
	rnd := newTestRound(t, 5)
	block := []uint64{0x10, 0x20}

	first := rnd.EncryptBlock(block)
	second := rnd.EncryptBlock(block)

	same := true
	for i := range first {
		if first[i] != second[i] {
			same = false
			break
		}
	}
	if same {
		t.Fatalf("encrypting the same block twice produced identical ciphertext; RoundSubkeyGen state did not advance")
	}
}
