package subkey

import "testing"

func TestDiffusionMatrixIsFullRank(t *testing.T) {
	if !gf2FullRank(diffusionMatrix32) {
		t.Fatalf("diffusionMatrix32 failed to verify as full rank over GF(2)")
	}
}

func TestApplyDiffusionLayerChangesInput(t *testing.T) {
	vec := make([]uint64, 32)
	for i := range vec {
		vec[i] = uint64(i + 1)
	}
	orig := append([]uint64(nil), vec...)

	applyDiffusionLayer(vec)

	same := true
	for i := range vec {
		if vec[i] != orig[i] {
			same = false
			break
		}
	}
	if same {
		t.Fatalf("applyDiffusionLayer left the vector unchanged")
	}
}

func TestApplyDiffusionLayerIsLinear(t *testing.T) {
	a := make([]uint64, 32)
	b := make([]uint64, 32)
	for i := range a {
		a[i] = uint64(i) * 0x1234
		b[i] = uint64(31-i) * 0x5678
	}

	sum := make([]uint64, 32)
	for i := range sum {
		sum[i] = a[i] ^ b[i]
	}

	aCopy, bCopy, sumCopy := append([]uint64(nil), a...), append([]uint64(nil), b...), append([]uint64(nil), sum...)
	applyDiffusionLayer(aCopy)
	applyDiffusionLayer(bCopy)
	applyDiffusionLayer(sumCopy)

	for i := range sumCopy {
		if sumCopy[i] != aCopy[i]^bCopy[i] {
			t.Fatalf("applyDiffusionLayer is not linear over GF(2) at index %d", i)
		}
	}
}
