package wipe

import "testing"

func TestBytesZeroesInPlace(t *testing.T) {
	b := []byte{1, 2, 3, 4}
	Bytes(b)
	for i, v := range b {
		if v != 0 {
			t.Fatalf("Bytes: index %d not zeroed: %d", i, v)
		}
	}
}

func TestUint64sZeroesInPlace(t *testing.T) {
	w := []uint64{1, 2, 3}
	Uint64s(w)
	for i, v := range w {
		if v != 0 {
			t.Fatalf("Uint64s: index %d not zeroed: %d", i, v)
		}
	}
}

func TestUint32sZeroesInPlace(t *testing.T) {
	w := []uint32{1, 2, 3}
	Uint32s(w)
	for i, v := range w {
		if v != 0 {
			t.Fatalf("Uint32s: index %d not zeroed: %d", i, v)
		}
	}
}

func TestMatrixZeroesEveryRow(t *testing.T) {
	m := [][]uint64{{1, 2}, {3, 4}, {5, 6}}
	Matrix(m)
	for i, row := range m {
		for j, v := range row {
			if v != 0 {
				t.Fatalf("Matrix: [%d][%d] not zeroed: %d", i, j, v)
			}
		}
	}
}
