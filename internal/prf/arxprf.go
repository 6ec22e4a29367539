// Package prf implements ArxPrf (XorConstantRotation): the keyed 64-bit ARX
// pseudorandom function described in spec.md §4.1. The Type-1 cipher draws
// its round keys and keystream from it, and the Type-2 block cipher uses it
// to fold key material into the seeds of its periodic re-keying.
package prf

import "math/bits"

func rotl(x uint64, n uint) uint64 { return bits.RotateLeft64(x, int(n)) }

// ArxPrf is a keyed pseudorandom function F_w(n) -> u64, where w (the only
// seed slot) is the key and n is a caller-advanced nonce (counter-mode use).
// Not safe for concurrent use; see spec.md §5.
type ArxPrf struct {
	w, x, y, z uint64
	counter    uint64
}

// biasNonZero returns w with bit 0 forced to 1 when w is all-zero, computed
// branchlessly: nz collapses every set bit of w down to bit 0, so ^nz&1 is 1
// exactly when w was zero.
func biasNonZero(w uint64) uint64 {
	nz := w
	nz |= nz >> 1
	nz |= nz >> 2
	nz |= nz >> 4
	nz |= nz >> 8
	nz |= nz >> 16
	nz |= nz >> 32
	isZero := (^nz) & 1
	return w | isZero
}

// New constructs an ArxPrf keyed by seed. A zero seed is replaced by
// DefaultSeed per spec.md §6.
func New(seed uint64) *ArxPrf {
	if seed == 0 {
		seed = DefaultSeed
	}
	p := &ArxPrf{}
	p.Seed(seed)
	return p
}

// Seed runs the full warm-up key-injection routine of spec.md §4.1 on w.
// Every lane and the counter are cleared first, so Seed rebuilds the same
// state New builds no matter how far the instance has already advanced.
func (p *ArxPrf) Seed(w uint64) {
	w = biasNonZero(w)
	p.w, p.x, p.y, p.z = 0, 0, 0, 0
	p.counter = 0

	hi := uint32(w >> 32)
	lo := uint32(w)
	hi ^= uint32(RoundConstants[298])
	lo ^= uint32(RoundConstants[299])

	hiExp := p.ggmExpand(hi)
	p.x, p.y, p.z = 0, 0, 0
	p.counter = CounterStep
	loExp := p.ggmExpand(lo)

	random := (uint64(hiExp) << 32) | uint64(loExp)
	p.w = w ^ random
	p.counter = CounterStep
}

// ggmExpand runs the two-round, 32-iteration GGM-like bit expansion of
// spec.md §4.1 step 3, consuming 64 StateIteration calls (2 rounds x 32
// iterations) and returning one expanded 32-bit half.
func (p *ArxPrf) ggmExpand(half uint32) uint32 {
	var acc uint32
	var bit uint64
	for round := 0; round < 2; round++ {
		acc = 0
		for i := 0; i < 32; i++ {
			in := (warmupTag << 48) ^ (uint64(acc) << 16) ^ (uint64(round) << 8) ^ bit
			o := p.stateIteration(in)
			bit = o >> 63
			acc = (acc << 1) | uint32(bit)
		}
	}
	return acc
}

// stateIteration is the production round function of spec.md §4.1: exactly
// four modular add/sub operations, every other operation XOR or rotate-left.
func (p *ArxPrf) stateIteration(n uint64) uint64 {
	counter := p.counter

	rc0 := RoundConstants[n%300]
	rc1 := RoundConstants[counter%300]
	rc2 := RoundConstants[(n+counter)%300]
	rc3 := RoundConstants[(n^rotl(n^counter, 3))%300]

	ww := p.x ^ rc0
	xx := p.y ^ rc1
	yy := p.z ^ rc2
	zz := p.w ^ rc3

	// the four modular add/sub carries.
	w := p.w + yy
	x := p.x - zz
	y := p.y + ww
	z := p.z - xx

	// diffusion layer, rotation schedule 7,19,11,23,17,29,13,31.
	ww = (w ^ rotl(x, 7)) ^ (rotl(y, 19) ^ z)
	xx = (x ^ rotl(y, 11)) ^ (rotl(z, 23) ^ w)
	yy = (y ^ rotl(z, 17)) ^ (rotl(w, 29) ^ x)
	zz = (z ^ rotl(w, 13)) ^ (rotl(x, 31) ^ y)

	// lane rebind with nonce injection, XOR only.
	z = ww ^ n
	w = xx ^ rotl(n, 9)
	x = yy ^ rotl(n, 27)
	y = zz ^ rotl(n, 43)

	p.w, p.x, p.y, p.z = w, x, y, z

	o := w ^ x ^ y ^ z
	o ^= rotl(o, 47) ^ rotl(o, 53)

	p.counter = counter + CounterStep
	return o
}

// Call advances the PRF with nonce n and returns F_w(n).
func (p *ArxPrf) Call(n uint64) uint64 {
	return p.stateIteration(n)
}

// domainSep computes the mandatory domain-separation nonce transform of
// spec.md §4.1, used whenever two keystream words must be independent for
// the same caller-visible nonce.
func domainSep(n, s uint64) uint64 {
	return rotl(n^s, 17) ^ 0xA5A5A5A5A5A5A5A5
}

// GenerateSubkey128 returns two independent 64-bit words derived from the
// same nonce n, for callers (Type-1 single/multi-round encryption, the C ABI
// subkey stream) that need a 128-bit keystream block per nonce.
func (p *ArxPrf) GenerateSubkey128(n uint64) (uint64, uint64) {
	first := p.Call(n)
	second := p.Call(domainSep(n, first))
	return first, second
}

// Reset reseeds the PRF back to its construction seed (used by the Type-1 C
// ABI's LittleOPC_ResetPRNG).
func (p *ArxPrf) Reset(seed uint64) {
	if seed == 0 {
		seed = DefaultSeed
	}
	p.Seed(seed)
}
