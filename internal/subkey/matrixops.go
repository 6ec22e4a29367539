package subkey

// Dense R×R matrix helpers shared by RoundSubkeyGen. All arithmetic is u64
// with silent wrap-around, per spec.md §4.8's "matrix mul in u64 with
// wrap-around".

func newMatrix(r int) [][]uint64 {
	m := make([][]uint64, r)
	for i := range m {
		m[i] = make([]uint64, r)
	}
	return m
}

func transpose(a [][]uint64) [][]uint64 {
	r := len(a)
	out := newMatrix(r)
	for i := 0; i < r; i++ {
		for j := 0; j < r; j++ {
			out[i][j] = a[j][i]
		}
	}
	return out
}

// addTranspose returns a + bᵀ.
func addTranspose(a, b [][]uint64) [][]uint64 {
	r := len(a)
	out := newMatrix(r)
	for i := 0; i < r; i++ {
		for j := 0; j < r; j++ {
			out[i][j] = a[i][j] + b[j][i]
		}
	}
	return out
}

// subTranspose returns a - bᵀ.
func subTranspose(a, b [][]uint64) [][]uint64 {
	r := len(a)
	out := newMatrix(r)
	for i := 0; i < r; i++ {
		for j := 0; j < r; j++ {
			out[i][j] = a[i][j] - b[j][i]
		}
	}
	return out
}

func matMul(a, b [][]uint64) [][]uint64 {
	r := len(a)
	out := newMatrix(r)
	for i := 0; i < r; i++ {
		for k := 0; k < r; k++ {
			aik := a[i][k]
			if aik == 0 {
				continue
			}
			row := b[k]
			for j := 0; j < r; j++ {
				out[i][j] += aik * row[j]
			}
		}
	}
	return out
}
