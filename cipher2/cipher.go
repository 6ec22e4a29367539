package cipher2

import (
	"golang.org/x/crypto/scrypt"

	"github.com/twilight-dream/oaldrespuzzle-cryptic/internal/common"
	"github.com/twilight-dream/oaldrespuzzle-cryptic/internal/errs"
	"github.com/twilight-dream/oaldrespuzzle-cryptic/internal/field"
	"github.com/twilight-dream/oaldrespuzzle-cryptic/internal/laimassey"
	"github.com/twilight-dream/oaldrespuzzle-cryptic/internal/mix"
	"github.com/twilight-dream/oaldrespuzzle-cryptic/internal/mt64"
	"github.com/twilight-dream/oaldrespuzzle-cryptic/internal/prf"
	"github.com/twilight-dream/oaldrespuzzle-cryptic/internal/rng"
	"github.com/twilight-dream/oaldrespuzzle-cryptic/internal/subkey"
	"github.com/twilight-dream/oaldrespuzzle-cryptic/internal/wipe"
)

const (
	saltEveryBlocks      = 2048
	mtReseedEveryBlocks  = 2048 * 2
	scryptEveryBlocks    = 2048 * 3
	scryptN, scryptR, scryptP = 1024, 8, 16
)

// Cipher is the Type-2 BlockCipher of spec.md §4.9: one CommonState's worth
// of PRNGs, the subkey matrix chain and the Lai-Massey round function,
// plus the periodic re-keying schedule the outer loop runs once the
// caller's master key material is exhausted.
type Cipher struct {
	sizes common.Sizes

	lfsr  *rng.LFSR
	nlfsr *rng.NLFSR
	sdp   *rng.SDP
	mix   *mix.MixUtil
	prf   *prf.ArxPrf

	matrix   *subkey.Matrix
	gen      *subkey.Generator
	roundGen *subkey.RoundSubkeyGen
	round    *laimassey.Round

	workingKey []uint64 // persistent WordKeyDataVector, length KeyBlockQW

	keyExhausted         bool
	blocksSinceExhausted uint64
	mt                   *mt64.Rand
	salt                 [16]uint64
	lastScryptWords      []uint64
}

// New constructs a Type-2 Cipher. cfg is validated in full before any
// internal state is touched, per spec.md §7's construction-abort policy.
func New(cfg Config) (*Cipher, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	c := &Cipher{
		sizes:      cfg.Sizes,
		lfsr:       rng.NewLFSR(cfg.LFSRSeed),
		nlfsr:      rng.NewNLFSR(cfg.NLFSRSeed),
		mix:        mix.New(),
		prf:        prf.New(cfg.LFSRSeed ^ rotl64(cfg.NLFSRSeed, 32)),
		workingKey: make([]uint64, cfg.Sizes.KeyBlockQW),
	}

	sdp, err := rng.NewSDP(cfg.SDPSeed)
	if err != nil {
		return nil, err
	}
	c.sdp = sdp

	c.matrix = subkey.New(cfg.Sizes, c.mix, c.lfsr, c.nlfsr, c.sdp)
	c.matrix.ApplyIV(cfg.IV)
	c.gen = subkey.NewGenerator(c.matrix, field.New(field.LargePrimeP))
	c.roundGen = subkey.NewRoundSubkeyGen(c.matrix)
	c.round = laimassey.New(c.roundGen)

	return c, nil
}

func rotl64(x uint64, n uint) uint64 {
	n %= 64
	return x<<n | x>>(64-n)
}

// combineLambda is spec.md §4.9's key-streaming combinator: lambda(a,b) =
// if a==b then ~(a+b) else a^b.
func combineLambda(a, b uint64) uint64 {
	if a == b {
		return ^(a + b)
	}
	return a ^ b
}

// whitenWorkingKey is spec.md §4.9's one-time 16-round key whitening: each
// word is split into 32-bit halves and run through a fixed eight-operation
// bit mix (xor, not, rotate by 19/13/27/23), interleaved with the round
// function's 8-byte S-box substitution pass over the whole vector.
func whitenWorkingKey(words []uint64) {
	for round := 0; round < 16; round++ {
		for i, w := range words {
			hi := uint32(w >> 32)
			lo := uint32(w)

			hi ^= lo
			lo = ^lo
			hi = rotl32(hi, 19)
			lo ^= hi
			lo = rotl32(lo, 13)
			hi ^= lo
			hi = rotl32(hi, 27)
			lo = rotl32(lo^hi, 23)

			words[i] = uint64(hi)<<32 | uint64(lo)
		}
		laimassey.SubstituteBlockEncrypt(words)
	}
}

func rotl32(x uint32, n uint) uint32 {
	n %= 32
	return x<<n | x>>(32-n)
}

// foldSeed folds a word vector down to a single 64-bit seed through the
// cipher's ArxPrf, giving ArxPrf the "periodic re-keying" role spec.md §2's
// component table assigns it alongside SpongeHash's schedule and MixUtil's
// keystream.
func foldSeed(p *prf.ArxPrf, words []uint64) uint64 {
	var acc uint64
	for i, w := range words {
		acc = p.Call(acc ^ w ^ uint64(i))
	}
	return acc
}

// advanceKeySchedule runs one block's worth of spec.md §4.9's outer-loop
// key scheduling: streaming in master key material while it lasts, then
// one-time whitening, then the periodic salt/scrypt/MT-64 re-keying
// schedule once the master key is exhausted.
func (c *Cipher) advanceKeySchedule(keyWords []uint64, keyOffset *int) error {
	keyBlockQW := c.sizes.KeyBlockQW

	if *keyOffset+keyBlockQW <= len(keyWords) {
		slice := keyWords[*keyOffset : *keyOffset+keyBlockQW]
		*keyOffset += keyBlockQW
		for i := range c.workingKey {
			c.workingKey[i] = combineLambda(c.workingKey[i], slice[i])
		}
		return c.gen.Generate(c.workingKey)
	}

	if !c.keyExhausted {
		c.keyExhausted = true
		whitenWorkingKey(c.workingKey)
		return c.gen.Generate(c.workingKey)
	}

	c.blocksSinceExhausted++
	n := c.blocksSinceExhausted

	if n%saltEveryBlocks == 0 {
		if c.mt == nil {
			c.mt = mt64.New(foldSeed(c.prf, c.workingKey))
		}
		c.mt.FillUint64(c.salt[:])
	}

	if n%scryptEveryBlocks == 0 && c.mt != nil {
		saltBytes := common.U64sToBytes(c.salt[:])
		keyBytes := common.U64sToBytes(c.workingKey)
		outLen := 2 * keyBlockQW * 8
		derived, err := scrypt.Key(keyBytes, saltBytes, scryptN, scryptR, scryptP, outLen)
		wipe.Bytes(keyBytes)
		if err != nil {
			return err
		}
		derivedWords := common.BytesToU64s(derived)
		wipe.Bytes(derived)

		c.lastScryptWords = derivedWords
		folded := make([]uint64, keyBlockQW)
		for i := 0; i < keyBlockQW; i++ {
			folded[i] = derivedWords[i] ^ derivedWords[i+keyBlockQW]
		}
		err = c.gen.Generate(folded)
		wipe.Uint64s(folded)
		if err != nil {
			return err
		}
	}

	if n%mtReseedEveryBlocks == 0 && c.lastScryptWords != nil {
		c.mt = mt64.New(foldSeed(c.prf, c.lastScryptWords))
	}

	return c.gen.Generate(nil)
}

// Encrypt pads plaintext with ISO-10126 padding (unless noPad is true, in
// which case plaintext's length must already be block-aligned), then runs
// BlockCipher's outer loop over every DATA_BLOCK_QW-word block.
func (c *Cipher) Encrypt(plaintext, keyMaterial []byte, noPad bool) ([]byte, error) {
	blockBytes := c.sizes.DataBlockBytes()

	data := plaintext
	if !noPad {
		padded, err := padISO10126(plaintext, blockBytes)
		if err != nil {
			return nil, err
		}
		data = padded
	} else if len(plaintext)%blockBytes != 0 {
		return nil, errs.InputLength("cipher2: no-pad plaintext length %d is not a multiple of the block size %d", len(plaintext), blockBytes)
	}

	if len(keyMaterial)%c.sizes.KeyBlockBytes() != 0 || len(keyMaterial) == 0 {
		return nil, errs.InputLength("cipher2: key length %d is not a positive multiple of KEY_BLOCK_QW*8=%d", len(keyMaterial), c.sizes.KeyBlockBytes())
	}
	keyWords := common.BytesToU64s(keyMaterial)

	out := make([]byte, len(data))
	keyOffset := 0
	block := make([]uint64, c.sizes.DataBlockQW)
	for off := 0; off < len(data); off += blockBytes {
		if err := c.advanceKeySchedule(keyWords, &keyOffset); err != nil {
			return nil, err
		}
		blockWords := common.BytesToU64s(data[off : off+blockBytes])
		copy(block, blockWords)

		enc := c.round.EncryptBlock(block)
		copy(out[off:off+blockBytes], common.U64sToBytes(enc))
		wipe.Uint64s(enc)
	}
	wipe.Uint64s(keyWords)
	return out, nil
}

// Decrypt is Encrypt's exact inverse; noPad must match the value used to
// encrypt.
func (c *Cipher) Decrypt(ciphertext, keyMaterial []byte, noPad bool) ([]byte, error) {
	blockBytes := c.sizes.DataBlockBytes()
	if len(ciphertext) == 0 || len(ciphertext)%blockBytes != 0 {
		return nil, errs.InputLength("cipher2: ciphertext length %d is not a multiple of the block size %d", len(ciphertext), blockBytes)
	}
	if len(keyMaterial)%c.sizes.KeyBlockBytes() != 0 || len(keyMaterial) == 0 {
		return nil, errs.InputLength("cipher2: key length %d is not a positive multiple of KEY_BLOCK_QW*8=%d", len(keyMaterial), c.sizes.KeyBlockBytes())
	}
	keyWords := common.BytesToU64s(keyMaterial)

	out := make([]byte, len(ciphertext))
	keyOffset := 0
	block := make([]uint64, c.sizes.DataBlockQW)
	for off := 0; off < len(ciphertext); off += blockBytes {
		if err := c.advanceKeySchedule(keyWords, &keyOffset); err != nil {
			return nil, err
		}
		blockWords := common.BytesToU64s(ciphertext[off : off+blockBytes])
		copy(block, blockWords)

		dec := c.round.DecryptBlock(block)
		copy(out[off:off+blockBytes], common.U64sToBytes(dec))
		wipe.Uint64s(dec)
	}
	wipe.Uint64s(keyWords)

	if noPad {
		return out, nil
	}
	return unpadISO10126(out, blockBytes)
}
