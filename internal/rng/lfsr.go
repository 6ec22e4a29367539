// Package rng implements the three internal PRNGs spec.md §3 lists as
// owned by the cipher's CommonState: a Galois-style 128-bit LFSR, a
// four-lane NLFSR, and a simulated-double-pendulum generator. None of these
// are cryptographic primitives by themselves; they feed entropy into
// SubkeyMatrix's update step and MixUtil's S-box regeneration.
package rng

import "math/bits"

func rotl64(x uint64, n uint) uint64 { return bits.RotateLeft64(x, int(n)) }

// lfsrTapMask encodes the non-leading terms of x^128 + x^41 + x^39 + x + 1
// as bit positions 41, 39, 1 and 0 of a 128-bit Galois LFSR state.
const lfsrTapMask uint64 = (1 << 41) | (1 << 39) | (1 << 1) | 1

// LFSR is the Galois-style 128-bit LFSR of spec.md §3, producing 63-bit
// outputs.
type LFSR struct {
	lo, hi uint64
}

// NewLFSR seeds the 128-bit state from a single 64-bit seed, spreading it
// across both halves so an all-zero state cannot occur for nonzero seed.
func NewLFSR(seed uint64) *LFSR {
	if seed == 0 {
		seed = 1
	}
	return &LFSR{
		lo: seed,
		hi: seed ^ 0x9E3779B97F4A7C15,
	}
}

func (l *LFSR) step() uint64 {
	lsb := l.lo & 1
	carry := l.hi & 1
	l.lo = (l.lo >> 1) | (carry << 63)
	l.hi = l.hi >> 1
	if lsb == 1 {
		l.lo ^= lfsrTapMask
	}
	return lsb
}

// Next63 runs the LFSR for 63 steps, packing the dropped bits MSB-first
// into a 63-bit output.
func (l *LFSR) Next63() uint64 {
	var out uint64
	for i := 0; i < 63; i++ {
		out = (out << 1) | l.step()
	}
	return out
}

// Bool draws one Bernoulli(1/2) sample from the LFSR's bit stream, used by
// SubkeyMatrix.init's per-bit sampling when padding a short key row.
func (l *LFSR) Bool() bool {
	return l.step() == 1
}

// Uint64 produces a 64-bit word by concatenating two 63-bit draws, used
// when SubkeyMatrix.init needs to fill a row with pseudorandom 64-bit words.
func (l *LFSR) Uint64() uint64 {
	hi := l.Next63()
	lo := l.Next63()
	return rotl64(hi, 33) ^ lo
}
