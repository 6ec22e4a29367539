// Package laimassey implements LaiMasseyRound and the Type-2 block round
// function of spec.md §4.9: the per-word Lai-Massey step built on
// RoundSubkeyGen's crazy_transform_associated_word and the forward/backward
// orthomorphism, plus the sixteen-round block loop with its interleaved
// byte substitution.
package laimassey

import "github.com/twilight-dream/oaldrespuzzle-cryptic/internal/subkey"

// Round drives one cipher instance's round function over RoundSubkeyGen's
// live RS/rs_vec state. Not safe for concurrent use: RoundSubkeyGen's state
// advances with every GenerateRoundSubkeys call.
type Round struct {
	Gen *subkey.RoundSubkeyGen
}

// New binds a Round to a RoundSubkeyGen. The generator is owned by the
// caller's Type-2 cipher state, not by Round itself.
func New(gen *subkey.RoundSubkeyGen) *Round {
	return &Round{Gen: gen}
}

// encryptWord is spec.md §4.9's per-word encrypt step: L,R = split64(W);
// TK = crazy_transform(L^R, K); L^=TK; R^=TK; (A,B) = forward_transform(L,R);
// W' = (A<<32)|B.
func (rnd *Round) encryptWord(w, k uint64) uint64 {
	l := uint32(w >> 32)
	r := uint32(w)
	tk := rnd.Gen.CrazyTransformAssociatedWord(l^r, k)
	l ^= tk
	r ^= tk
	a, b := subkey.ForwardTransform(l, r)
	return uint64(a)<<32 | uint64(b)
}

// decryptWord is the exact inverse: L,R = split64(W); (A,B) =
// backward_transform(L,R); TK = crazy_transform(A^B, K); B^=TK; A^=TK;
// W' = (A<<32)|B. A^B equals the original L^R because XORing both halves of
// a pair by the same TK leaves their XOR unchanged, so the recovered TK
// matches the one encryptWord used.
func (rnd *Round) decryptWord(w, k uint64) uint64 {
	l := uint32(w >> 32)
	r := uint32(w)
	a, b := subkey.BackwardTransform(l, r)
	tk := rnd.Gen.CrazyTransformAssociatedWord(a^b, k)
	b ^= tk
	a ^= tk
	return uint64(a)<<32 | uint64(b)
}

// EncryptBlock runs the full spec.md §4.9 round function over one
// DataBlockQW-word block: one GenerateRoundSubkeys call, then sixteen
// rounds each advancing two passes over the block through rs_vec
// (KeyIndex wrapping at rs_vec's length) followed by the fixed byte
// substitution pattern.
func (rnd *Round) EncryptBlock(block []uint64) []uint64 {
	rnd.Gen.GenerateRoundSubkeys()
	rsVec := rnd.Gen.RSVec
	n := len(rsVec)

	work := append([]uint64(nil), block...)
	keyIndex := 0
	for round := 0; round < subkey.Rounds; round++ {
		for pass := 0; pass < 2; pass++ {
			for i := range work {
				k := rsVec[keyIndex%n]
				keyIndex++
				work[i] = rnd.encryptWord(work[i], k)
			}
		}
		SubstituteBlockEncrypt(work)
	}
	return work
}

// DecryptBlock is EncryptBlock's exact inverse. Rather than the literal
// "KeyIndex = rs_vec.len(), then decrement" of spec.md §4.9 — which only
// reverses correctly when one block's total key consumption happens to be
// a multiple of len(rs_vec) — this walks the identical (round, pass, word)
// traversal order in reverse and recomputes each step's absolute key index
// from the total consumption count, so decryption undoes encryption's
// exact key sequence regardless of that divisibility.
func (rnd *Round) DecryptBlock(block []uint64) []uint64 {
	rnd.Gen.GenerateRoundSubkeys()
	rsVec := rnd.Gen.RSVec
	n := len(rsVec)

	work := append([]uint64(nil), block...)
	blockLen := len(work)
	keyIndex := subkey.Rounds*2*blockLen - 1
	for round := subkey.Rounds - 1; round >= 0; round-- {
		SubstituteBlockDecrypt(work)
		for pass := 1; pass >= 0; pass-- {
			for i := blockLen - 1; i >= 0; i-- {
				k := rsVec[((keyIndex%n)+n)%n]
				keyIndex--
				work[i] = rnd.decryptWord(work[i], k)
			}
		}
	}
	return work
}
