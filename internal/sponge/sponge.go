// Package sponge implements SpongeHash, the Keccak-style sponge over 64-bit
// words spec.md §4.2 describes, used inside LatticeHash for subkey-material
// compression. HashBits parameterises State/Rate/Capacity; Rate/Capacity are
// tracked here in 64-bit words rather than bits.
package sponge

import (
	"math/bits"

	"github.com/twilight-dream/oaldrespuzzle-cryptic/internal/errs"
	"github.com/twilight-dream/oaldrespuzzle-cryptic/internal/wipe"
)

func rotr(x uint64, n uint) uint64 { return bits.RotateLeft64(x, -int(n)) }

// Hash is one SpongeHash instance. Its permutation schedule (moveBits, pi)
// is derived once at construction from the fixed seed of spec.md §4.2;
// State, rate and input/output cursors are the only mutable parts.
type Hash struct {
	stateWords int
	rateWords  int
	capWords   int

	state []uint64

	moveBits [63]int
	pi       []int

	stateCounter int
	inputIdx     int
}

// New constructs a SpongeHash for the given HashBits. HashBits must be at
// least 128 and a multiple of 8, per spec.md §7 ConfigurationInvalid.
func New(hashBits int) (*Hash, error) {
	if hashBits < 128 || hashBits%8 != 0 {
		return nil, errs.Configuration("sponge: HashBits %d must be >= 128 and a multiple of 8", hashBits)
	}
	stateBits := 2*hashBits + 64
	if stateBits%64 != 0 {
		return nil, errs.Configuration("sponge: HashBits %d does not yield a whole 64-bit state", hashBits)
	}
	stateWords := stateBits / 64
	rateWords := hashBits / 64
	if rateWords == 0 {
		rateWords = 1
	}
	capWords := stateWords - rateWords

	moveBits, pi := deriveSchedule(stateWords)

	h := &Hash{
		stateWords: stateWords,
		rateWords:  rateWords,
		capWords:   capWords,
		state:      make([]uint64, stateWords),
		moveBits:   moveBits,
		pi:         pi,
	}
	return h, nil
}

// RateWords reports the sponge's rate in 64-bit words.
func (h *Hash) RateWords() int { return h.rateWords }

// Reset zeroises the state and cursors, per spec.md §4.2's "state zeroised
// on reset()" invariant.
func (h *Hash) Reset() {
	wipe.Uint64s(h.state)
	h.stateCounter = 0
	h.inputIdx = 0
}

// permute runs one full application of the permutation F: ROUNDS =
// StateWords rounds of column-parity / theta / pi-rho / chi / iota, per
// spec.md §4.2.
func (h *Hash) permute() {
	n := h.stateWords
	half := n / 2
	if half == 0 {
		half = 1
	}
	scratch := make([]uint64, n)
	t2 := make([]uint64, n)
	t3 := make([]uint64, n)

	for round := 0; round < n; round++ {
		// column parity: cross-word XOR accumulator.
		for i := 0; i < n; i++ {
			scratch[i] = h.state[i] ^ h.state[(i+h.stateCounter)%n]
			h.stateCounter = (h.stateCounter + 1) % n
		}

		// theta-like.
		for i := 0; i < n; i++ {
			l := (i - 1 + n) % n
			r := (i + 1) % n
			t2[i] = scratch[r] ^ rotr(scratch[l], 1)
		}

		// pi/rho.
		mv := uint(h.moveBits[h.stateCounter%63])
		for i := 0; i < n; i++ {
			t3[h.pi[i]] = rotr(h.state[i]^t2[i%half], mv)
		}

		// chi.
		for i := 0; i < n; i++ {
			a := t3[i]
			b := t3[(i+1)%n]
			c := t3[(i+2)%n]
			h.state[i] = a ^ ((^b) & c)
		}

		// iota.
		h.state[0] ^= HashRoundConstants[round%64]
		h.state[n-1] ^= HashRoundConstants[(63-round)%64]
	}

	wipe.Uint64s(scratch)
	wipe.Uint64s(t2)
	wipe.Uint64s(t3)
}

// Absorb XORs data into the sponge one rate word at a time, invoking the
// permutation after every word (spec.md §4.2's absorb rule, not the usual
// rate-block batching).
func (h *Hash) Absorb(data []uint64) {
	for _, w := range data {
		h.state[h.inputIdx] ^= w
		h.inputIdx = (h.inputIdx + 1) % h.rateWords
		h.permute()
	}
}

// AbsorbPadded absorbs data then appends the spec's literal padding rule
// (spec.md open question 2): count = len(data) % rateWords words of
// 0x0101010101010101, i.e. zero padding words when data is already
// rate-aligned. This is implemented bit-for-bit per the source rather than
// "fixed" to the more common multi-rate 0x01..0x80 scheme.
func (h *Hash) AbsorbPadded(data []uint64) {
	h.Absorb(data)
	padCount := len(data) % h.rateWords
	if padCount == 0 {
		return
	}
	pad := make([]uint64, padCount)
	for i := range pad {
		pad[i] = 0x0101010101010101
	}
	h.Absorb(pad)
}

// Squeeze fills out with output words. Per spec.md open question 3, the
// source's SqueezeOutputData never advances its output index inside the
// loop, so every squeezed word is read from state[0] after a fresh
// permutation call; this is reproduced literally rather than "fixed" to an
// independent rotating-output sponge.
func (h *Hash) Squeeze(out []uint64) {
	for i := range out {
		h.permute()
		out[i] = h.state[0]
	}
}

// SpongeHash absorbs input (with padding), squeezes output, then resets,
// so a reused sponge cannot leak state across messages (spec.md §4.2
// invariant).
func (h *Hash) SpongeHash(input []uint64, output []uint64) {
	h.AbsorbPadded(input)
	h.Squeeze(output)
	h.Reset()
}
