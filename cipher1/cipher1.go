package cipher1

import (
	"math/bits"

	"github.com/twilight-dream/oaldrespuzzle-cryptic/internal/prf"
)

// Rounds is the fixed round count spec.md §6 bakes into LittleOPC_New:
// "allocates Cipher1 with 4 rounds".
const Rounds = 4

// Cipher1 is the Type-1 stream construction. The constructor seed scopes a
// stateful ArxPrf instance used only by GenerateSubkeyWithEncryption's
// CTR-like keystream; the single/multi-round encrypt and decrypt entry
// points are pure functions of (block, key, nonce) and the constructor
// seed, deriving their own short-lived ArxPrf per call so that repeated
// calls never depend on, or perturb, call history (matching the "pure"
// tag the C ABI table gives them).
type Cipher1 struct {
	seed uint64
	prf  *prf.ArxPrf
}

// New allocates a Cipher1, mirroring LittleOPC_New.
func New(seed uint64) *Cipher1 {
	return &Cipher1{seed: seed, prf: prf.New(seed)}
}

// ResetPRNG reseeds the stateful keystream PRF back to the constructor
// seed, mirroring LittleOPC_ResetPRNG.
func (c *Cipher1) ResetPRNG() {
	c.prf.Reset(c.seed)
}

// roundKeys derives the Rounds worth of per-round (f0, f1) subkey pairs
// from a fresh ArxPrf keyed by (constructor seed, key, nonce), so that
// encrypt and decrypt can each recompute the identical sequence
// independently rather than one replaying state the other produced.
func (c *Cipher1) roundKeys(key Key128, nonce uint64) [Rounds][2]uint64 {
	seed := c.seed ^ key.First ^ bits.RotateLeft64(key.Second, 31)
	p := prf.New(seed)

	var ks [Rounds][2]uint64
	for i := 0; i < Rounds; i++ {
		a, b := p.GenerateSubkey128(nonce + uint64(i)*0x9E3779B97F4A7C15)
		ks[i] = [2]uint64{a, b}
	}
	return ks
}

// feistelF is the round function mixing a lane with its subkey pair.
func feistelF(x uint64, rk [2]uint64) uint64 {
	return bits.RotateLeft64(x^rk[0], 13) + rk[1]
}

// SingleRoundEncryption runs Cipher1's Feistel network forward over one
// 128-bit block, mirroring LittleOPC_SingleRoundEncryption.
func (c *Cipher1) SingleRoundEncryption(block Block128, key Key128, nonce uint64) Block128 {
	ks := c.roundKeys(key, nonce)
	l, r := block.First, block.Second
	for i := 0; i < Rounds; i++ {
		l, r = r, l^feistelF(r, ks[i])
	}
	return Block128{First: l, Second: r}
}

// SingleRoundDecryption is the exact inverse of SingleRoundEncryption.
func (c *Cipher1) SingleRoundDecryption(block Block128, key Key128, nonce uint64) Block128 {
	ks := c.roundKeys(key, nonce)
	l, r := block.First, block.Second
	for i := Rounds - 1; i >= 0; i-- {
		l, r = r^feistelF(l, ks[i]), l
	}
	return Block128{First: l, Second: r}
}

// MultipleRoundsEncryption encrypts each block in plaintexts, cycling
// through keys and using the block index as the nonce, mirroring
// LittleOPC_MultipleRoundsEncryption.
func (c *Cipher1) MultipleRoundsEncryption(plaintexts []Block128, keys []Key128) []Block128 {
	out := make([]Block128, len(plaintexts))
	for i, p := range plaintexts {
		out[i] = c.SingleRoundEncryption(p, keys[i%len(keys)], uint64(i))
	}
	return out
}

// MultipleRoundsDecryption is the exact inverse of MultipleRoundsEncryption.
func (c *Cipher1) MultipleRoundsDecryption(ciphertexts []Block128, keys []Key128) []Block128 {
	out := make([]Block128, len(ciphertexts))
	for i, ct := range ciphertexts {
		out[i] = c.SingleRoundDecryption(ct, keys[i%len(keys)], uint64(i))
	}
	return out
}

// GenerateSubkeyWithEncryption produces a loopCount-long CTR-like
// keystream of Block128 values from the handle's stateful PRF, keyed by
// key, mirroring LittleOPC_GenerateSubkeyWithEncryption. Unlike the
// single/multi-round entry points this advances the handle's persistent
// PRF state, so repeated calls continue the stream rather than restarting
// it; ResetPRNG rewinds it.
func (c *Cipher1) GenerateSubkeyWithEncryption(key Key128, loopCount uint64) []Block128 {
	mix := key.First ^ bits.RotateLeft64(key.Second, 29)
	out := make([]Block128, loopCount)
	for i := uint64(0); i < loopCount; i++ {
		a, b := c.prf.GenerateSubkey128(mix ^ i)
		out[i] = Block128{First: a, Second: b}
	}
	return out
}
