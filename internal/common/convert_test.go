package common

import "testing"

func TestU64sBytesRoundTrip(t *testing.T) {
	words := []uint64{0x0011223344556677, 0x8899AABBCCDDEEFF}
	b := U64sToBytes(words)
	back := BytesToU64s(b)

	for i := range words {
		if back[i] != words[i] {
			t.Fatalf("round trip mismatch at word %d: got %x want %x", i, back[i], words[i])
		}
	}
}

func TestU64sToBytesIsLittleEndian(t *testing.T) {
	b := U64sToBytes([]uint64{0x0102030405060708})
	want := []byte{0x08, 0x07, 0x06, 0x05, 0x04, 0x03, 0x02, 0x01}
	for i := range want {
		if b[i] != want[i] {
			t.Fatalf("byte %d = %#x, want %#x", i, b[i], want[i])
		}
	}
}

func TestU32sBytesRoundTrip(t *testing.T) {
	words := []uint32{0x11223344, 0xAABBCCDD}
	b := U32sToBytes(words)
	back := BytesToU32s(b)

	for i := range words {
		if back[i] != words[i] {
			t.Fatalf("round trip mismatch at word %d: got %x want %x", i, back[i], words[i])
		}
	}
}

func TestSizesNewValidatesConstraints(t *testing.T) {
	if _, err := New(3, 8); err == nil {
		t.Fatalf("expected error for odd DataBlockQW")
	}
	if _, err := New(2, 5); err == nil {
		t.Fatalf("expected error for KeyBlockQW not a multiple of 4")
	}
	if _, err := New(4, 8); err != nil {
		t.Fatalf("expected KeyBlockQW > DataBlockQW and a multiple of it to be accepted, got %v", err)
	}
	if _, err := New(8, 8); err == nil {
		t.Fatalf("expected error when KeyBlockQW == DataBlockQW")
	}
}

func TestSizesDerivedValues(t *testing.T) {
	s, err := New(2, 8)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got, want := s.R(), 16; got != want {
		t.Fatalf("R() = %d, want %d", got, want)
	}
	if got, want := s.DataBlockBytes(), 16; got != want {
		t.Fatalf("DataBlockBytes() = %d, want %d", got, want)
	}
	if got, want := s.KeyBlockBytes(), 64; got != want {
		t.Fatalf("KeyBlockBytes() = %d, want %d", got, want)
	}
}
