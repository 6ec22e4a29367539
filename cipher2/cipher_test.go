package cipher2

import (
	"bytes"
	"testing"

	"github.com/twilight-dream/oaldrespuzzle-cryptic/internal/common"
)

func testConfig() Config {
	sizes := common.DefaultSizes()
	iv := make([]byte, sizes.DataBlockBytes()*2)
	for i := range iv {
		iv[i] = byte(i * 7)
	}
	return Config{
		Sizes:     sizes,
		IV:        iv,
		LFSRSeed:  1,
		NLFSRSeed: 2,
		SDPSeed:   1_000_000_000,
	}
}

func TestEncryptDecryptRoundTrip(t *testing.T) {
	sizes := common.DefaultSizes()

	// Five data blocks, three key blocks: exercises the streaming-key
	// path for the first three blocks, the one-time whitening path on
	// the fourth, and the post-exhaustion no-milestone path on the
	// fifth.
	plaintext := make([]byte, sizes.DataBlockBytes()*5-17)
	for i := range plaintext {
		plaintext[i] = byte(i)
	}
	keyMaterial := make([]byte, sizes.KeyBlockBytes()*3)
	for i := range keyMaterial {
		keyMaterial[i] = byte(i * 3)
	}

	enc, err := New(testConfig())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	ciphertext, err := enc.Encrypt(plaintext, keyMaterial, false)
	if err != nil {
		t.Fatalf("Encrypt: %v", err)
	}
	if bytes.Equal(ciphertext[:len(plaintext)], plaintext) {
		t.Fatalf("ciphertext should not equal plaintext")
	}

	dec, err := New(testConfig())
	if err != nil {
		t.Fatalf("New (decrypt side): %v", err)
	}
	recovered, err := dec.Decrypt(ciphertext, keyMaterial, false)
	if err != nil {
		t.Fatalf("Decrypt: %v", err)
	}
	if !bytes.Equal(recovered, plaintext) {
		t.Fatalf("round trip mismatch: got %x want %x", recovered, plaintext)
	}
}

func TestEncryptDecryptRoundTripNoPad(t *testing.T) {
	sizes := common.DefaultSizes()
	plaintext := make([]byte, sizes.DataBlockBytes()*3)
	for i := range plaintext {
		plaintext[i] = byte(i * 5)
	}
	keyMaterial := make([]byte, sizes.KeyBlockBytes())

	enc, err := New(testConfig())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	ciphertext, err := enc.Encrypt(plaintext, keyMaterial, true)
	if err != nil {
		t.Fatalf("Encrypt: %v", err)
	}
	if len(ciphertext) != len(plaintext) {
		t.Fatalf("no-pad ciphertext length = %d, want %d", len(ciphertext), len(plaintext))
	}

	dec, err := New(testConfig())
	if err != nil {
		t.Fatalf("New (decrypt side): %v", err)
	}
	recovered, err := dec.Decrypt(ciphertext, keyMaterial, true)
	if err != nil {
		t.Fatalf("Decrypt: %v", err)
	}
	if !bytes.Equal(recovered, plaintext) {
		t.Fatalf("round trip mismatch")
	}
}

func TestNewRejectsBadSDPSeed(t *testing.T) {
	cfg := testConfig()
	cfg.SDPSeed = 999_999_999
	if _, err := New(cfg); err == nil {
		t.Fatalf("expected error for SDP seed below the boundary")
	}
}

func TestNewRejectsMisalignedIV(t *testing.T) {
	cfg := testConfig()
	cfg.IV = cfg.IV[:len(cfg.IV)-1]
	if _, err := New(cfg); err == nil {
		t.Fatalf("expected error for misaligned IV")
	}
}

func TestNewRejectsZeroSeeds(t *testing.T) {
	cfg := testConfig()
	cfg.LFSRSeed = 0
	if _, err := New(cfg); err == nil {
		t.Fatalf("expected error for zero LFSR seed")
	}

	cfg = testConfig()
	cfg.NLFSRSeed = 0
	if _, err := New(cfg); err == nil {
		t.Fatalf("expected error for zero NLFSR seed")
	}
}

func TestEncryptRejectsShortKey(t *testing.T) {
	sizes := common.DefaultSizes()
	enc, err := New(testConfig())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	plaintext := make([]byte, sizes.DataBlockBytes())
	if _, err := enc.Encrypt(plaintext, []byte{1, 2, 3}, false); err == nil {
		t.Fatalf("expected error for key length not a multiple of KEY_BLOCK_QW*8")
	}
}
