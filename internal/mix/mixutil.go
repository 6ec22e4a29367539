package mix

import "github.com/twilight-dream/oaldrespuzzle-cryptic/internal/rng"

// MixUtil owns the two byte S-boxes and the 2-word stream-cipher register
// spec.md §4.5 describes. It depends on the caller's NLFSR for S-box
// regeneration, passed explicitly per call rather than captured, per
// spec.md §9's guidance against back-pointer cycles into a shared
// CommonState.
type MixUtil struct {
	S0, S1     [256]byte
	s0reg, s1reg uint32
}

// New constructs a MixUtil with the two fixed initial S-boxes of spec.md §6.
func New() *MixUtil {
	m := &MixUtil{S0: InitialS0, S1: InitialS1}
	return m
}

// Word32KeyStream is the ZUC-style nonlinear transform of spec.md §4.5: four
// input words are folded against the two state registers, cross-concatenated
// into two halves, diffused by the ZUC L1/L2 linear layers, and finally
// substituted through the S0/S1 alternation.
func (m *MixUtil) Word32KeyStream(in [4]uint32) uint32 {
	w0 := in[0] ^ m.s0reg
	w1 := in[1] + m.s1reg
	w2 := in[2] ^ rotl32(m.s0reg, 16)
	w3 := in[3] + rotl32(m.s1reg, 16)

	left := (w0 & 0xFFFF0000) | (w1 & 0x0000FFFF)
	right := (w2 << 16) | (w3 >> 16)

	mixed := zucL1(left) ^ zucL2(right)
	out := substituteBytesAlternating(mixed, &m.S0, &m.S1)

	m.s0reg = rotl32(m.s0reg^out, 7)
	m.s1reg = m.s1reg + out
	return out
}

// deriveDerangement produces a permutation of [0,size) with no fixed
// points, using the caller's NLFSR to drive a Fisher-Yates shuffle and then
// pairwise-repairing any fixed points left behind. A lone unrepairable
// fixed point (odd count) restarts the whole derivation, matching spec.md
// §4.5's "if the last slot cannot satisfy the constraint, restart."
func deriveDerangement(n *rng.NLFSR, size int) []int {
	for {
		perm := make([]int, size)
		for i := range perm {
			perm[i] = i
		}
		for i := size - 1; i > 0; i-- {
			j := n.Intn(i + 1)
			perm[i], perm[j] = perm[j], perm[i]
		}

		var fixed []int
		for i, v := range perm {
			if v == i {
				fixed = append(fixed, i)
			}
		}
		for len(fixed) > 1 {
			a, b := fixed[0], fixed[1]
			perm[a], perm[b] = perm[b], perm[a]
			fixed = fixed[2:]
		}
		if len(fixed) == 0 {
			return perm
		}
		// exactly one unrepaired fixed point: restart the derivation.
	}
}

// RegenerateSboxes rebuilds S0 and S1 from their current values such that
// new[i] != old[i] for every i while remaining a permutation of 0..255,
// using deriveDerangement's NLFSR-driven Fisher-Yates shuffle with pairwise
// fixed-point repair. No Fenwick or segment tree is built.
func (m *MixUtil) RegenerateSboxes(n *rng.NLFSR) {
	permS0 := deriveDerangement(n, 256)
	permS1 := deriveDerangement(n, 256)

	var newS0, newS1 [256]byte
	for i := range newS0 {
		newS0[i] = m.S0[permS0[i]]
		newS1[i] = m.S1[permS1[i]]
	}
	m.S0, m.S1 = newS0, newS1
}
