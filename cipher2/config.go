// Package cipher2 implements BlockCipher (spec.md §4.9 and §6): the Type-2
// large-block, key-dependent cipher built on top of internal/subkey and
// internal/laimassey. A Cipher owns one CommonState's worth of PRNGs,
// matrices and S-boxes; it is not safe for concurrent use (spec.md §5).
package cipher2

import (
	"github.com/twilight-dream/oaldrespuzzle-cryptic/internal/common"
	"github.com/twilight-dream/oaldrespuzzle-cryptic/internal/errs"
	"github.com/twilight-dream/oaldrespuzzle-cryptic/internal/rng"
)

// Config is the constructor parameter set spec.md §6 names for the Type-2
// cipher's library API.
type Config struct {
	Sizes common.Sizes

	IV []byte

	LFSRSeed  uint64
	NLFSRSeed uint64
	SDPSeed   uint64
}

// DefaultConfig returns a Config using spec.md §3's default sizes; callers
// still must set IV and the three PRNG seeds.
func DefaultConfig() Config {
	return Config{Sizes: common.DefaultSizes()}
}

// validate checks every constructor constraint spec.md §6/§7 lists:
// IV length a multiple of DATA_BLOCK_QW*8, nonzero LFSR/NLFSR seeds, and an
// SDP seed at or above internal/rng.MinSDPSeed.
func (c Config) validate() error {
	if len(c.IV) == 0 || len(c.IV)%c.Sizes.DataBlockBytes() != 0 {
		return errs.Configuration("cipher2: IV length %d is not a positive multiple of DATA_BLOCK_QW*8=%d", len(c.IV), c.Sizes.DataBlockBytes())
	}
	if c.LFSRSeed == 0 {
		return errs.Configuration("cipher2: LFSR seed must be non-zero")
	}
	if c.NLFSRSeed == 0 {
		return errs.Configuration("cipher2: NLFSR seed must be non-zero")
	}
	if c.SDPSeed < rng.MinSDPSeed {
		return errs.Configuration("cipher2: SDP seed %d is below the required boundary %d", c.SDPSeed, rng.MinSDPSeed)
	}
	return nil
}
