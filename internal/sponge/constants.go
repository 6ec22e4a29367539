package sponge

import "github.com/twilight-dream/oaldrespuzzle-cryptic/internal/isaac64"

// scheduleSeed is the fixed ISAAC-64 seed spec.md §4.2 names for deriving
// the permutation's rotation amounts and index permutation.
const scheduleSeed uint64 = 1946379852749613

// HashRoundConstants is the fixed 64-entry table the iota step (§4.2 step 5)
// XORs into the first and last state words each round, shipped verbatim
// per spec.md §4.2.
var HashRoundConstants = [64]uint64{
	0xe02d51d52e6988ab, 0xfc48780c20090b50, 0xc6144c4d89151352, 0xb98669bb3a32a8f1,
	0xd4786928fe033c03, 0xaebb38f01d73faab, 0x936cb166f1ff8493, 0x60310a07294f5dc8,
	0x06d5b3dbf088ae77, 0x7e2be74e7f525e23, 0xe5459a079549e2e3, 0x352ba71a6a95e6d6,
	0x7b40c16d92d5e43b, 0xa559af839ba27363, 0x985236a57aa17c27, 0xf4be83da5a08c659,
	0x9ab94838ff7737c6, 0x718d70cd883014f9, 0x0bda9af50ba21d4d, 0xd88cb07c07a814d5,
	0xa6c8d66f9b3d8933, 0x80643413e011c839, 0x5456e69b40922372, 0x86a8e11d2e20eb52,
	0x19224d7b455813b1, 0xb1dbd44f138bac7f, 0x2ba9107bb26a6134, 0x48297fe2c4167b76,
	0x776528a5edb8a68e, 0x2381e0eb054681a8, 0x41a27b65af8e39bf, 0xeda2847d88303971,
	0x655f38e3d5446574, 0xd8093b5a1172958c, 0x28880627fe4c014b, 0x0459d6592d1b2b51,
	0x2aeb8df1c83b63be, 0xcba3ca8c513a8205, 0xa4967565ebf34510, 0x1041efcb786f9e59,
	0xdf8ee44352384448, 0xff38527afa3b13a2, 0x9ff904a86c03fe22, 0xe81a56aef956f93f,
	0x3c13136bf0612494, 0xca9b0621705e9748, 0xe89292acf259cef1, 0x373480242c1c5eff,
	0xd249f4efd3685008, 0xda2779c07b0e4a43, 0x1cc1bd402438ea81, 0x7b090a135f97ba29,
	0xd25e80bc98b09e4b, 0xeea820f2885ac1f8, 0x939c9063e5bdc233, 0x01c1b92d1ed7777b,
	0x75208f3a3cb244df, 0x20f74f61571512b4, 0xfd526ef256343eb7, 0x753082ea79791d09,
	0x41a3a000a8c7ae30, 0xb2a056be3a257d27, 0x152a2da04d5f2393, 0x99dba5727ec6dabb,
}

// deriveSchedule builds move_bits[63] and pi[stateWords] exactly as spec.md
// §4.2 describes: a single ISAAC-64 stream seeded from scheduleSeed,
// discarding 1024 outputs before Fisher-Yates shuffling 1..=63 into
// move_bits, then discarding a further 2048 outputs before Fisher-Yates
// shuffling 0..stateWords into pi.
func deriveSchedule(stateWords int) (moveBits [63]int, pi []int) {
	gen := isaac64.New(scheduleSeed)
	gen.Discard(1024)

	for i := range moveBits {
		moveBits[i] = i + 1
	}
	for i := len(moveBits) - 1; i > 0; i-- {
		j := gen.Intn(i + 1)
		moveBits[i], moveBits[j] = moveBits[j], moveBits[i]
	}

	gen.Discard(2048)

	pi = make([]int, stateWords)
	for i := range pi {
		pi[i] = i
	}
	for i := len(pi) - 1; i > 0; i-- {
		j := gen.Intn(i + 1)
		pi[i], pi[j] = pi[j], pi[i]
	}
	return moveBits, pi
}
