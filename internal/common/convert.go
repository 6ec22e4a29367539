package common

// Little-endian word/byte conversion helpers shared by the subkey and
// round-function packages, which all move data between 64-bit lanes, 32-bit
// words and raw bytes.

func U64sToBytes(words []uint64) []byte {
	out := make([]byte, len(words)*8)
	for i, w := range words {
		for b := 0; b < 8; b++ {
			out[i*8+b] = byte(w >> (8 * b))
		}
	}
	return out
}

func BytesToU64s(b []byte) []uint64 {
	n := len(b) / 8
	out := make([]uint64, n)
	for i := 0; i < n; i++ {
		var w uint64
		for k := 0; k < 8; k++ {
			w |= uint64(b[i*8+k]) << (8 * k)
		}
		out[i] = w
	}
	return out
}

func U32sToBytes(words []uint32) []byte {
	out := make([]byte, len(words)*4)
	for i, w := range words {
		for b := 0; b < 4; b++ {
			out[i*4+b] = byte(w >> (8 * b))
		}
	}
	return out
}

func BytesToU32s(b []byte) []uint32 {
	n := len(b) / 4
	out := make([]uint32, n)
	for i := 0; i < n; i++ {
		var w uint32
		for k := 0; k < 4; k++ {
			w |= uint32(b[i*4+k]) << (8 * k)
		}
		out[i] = w
	}
	return out
}
