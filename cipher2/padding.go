package cipher2

import (
	"crypto/rand"

	"github.com/twilight-dream/oaldrespuzzle-cryptic/internal/errs"
)

// padISO10126 is spec.md §4.9's default padding: between 1 and blockBytes
// random bytes, the last of which records the pad length.
func padISO10126(plaintext []byte, blockBytes int) ([]byte, error) {
	padLen := blockBytes - len(plaintext)%blockBytes
	if padLen == 0 {
		padLen = blockBytes
	}

	out := make([]byte, len(plaintext)+padLen)
	copy(out, plaintext)
	if padLen > 1 {
		if _, err := rand.Read(out[len(plaintext) : len(out)-1]); err != nil {
			return nil, err
		}
	}
	out[len(out)-1] = byte(padLen)
	return out, nil
}

// unpadISO10126 strips the padding padISO10126 added, validating the
// recorded length.
func unpadISO10126(padded []byte, blockBytes int) ([]byte, error) {
	if len(padded) == 0 || len(padded)%blockBytes != 0 {
		return nil, errs.InputLength("cipher2: padded ciphertext length %d is not a multiple of the block size %d", len(padded), blockBytes)
	}
	padLen := int(padded[len(padded)-1])
	if padLen < 1 || padLen > blockBytes || padLen > len(padded) {
		return nil, errs.InputLength("cipher2: invalid ISO-10126 pad length %d", padLen)
	}
	return padded[:len(padded)-padLen], nil
}
