package rng

import (
	"math"

	"github.com/twilight-dream/oaldrespuzzle-cryptic/internal/errs"
)

// MinSDPSeed is the 10^9 (one billion) seed boundary: smaller seeds are
// rejected at construction. DESIGN.md's Open Question resolution 1 explains
// why 10^9 was chosen over 10^10.
const MinSDPSeed uint64 = 1_000_000_000

// sdpStepRatio is the "r" scale factor spec.md §3 leaves unnamed: it
// converts the seed's magnitude into an integration step count. Chosen
// small enough that even the largest practical seeds stay within
// maxSDPSteps, since the spec does not bound r itself.
const sdpStepRatio = 1e-9
const maxSDPSteps = 200_000
const sdpDt = 0.01

// SDP is the "simulated double pendulum" generator of spec.md §3: a
// 10-slot floating point state advanced by a fixed ODE integration, then
// sampled by concatenating bit patterns of its dynamical variables.
//
// Go has no "long double"; float64 is used, which only affects the exact
// trajectory, not the determinism or chaoticity of the generator.
type SDP struct {
	state [10]float64
	calls uint64
}

// double pendulum physical constants: unit masses, unit rod lengths,
// standard gravity.
const (
	sdpM1, sdpM2 = 1.0, 1.0
	sdpL1, sdpL2 = 1.0, 1.0
	sdpG         = 9.80665
)

// NewSDP constructs an SDP generator. seed must be at least MinSDPSeed.
func NewSDP(seed uint64) (*SDP, error) {
	if seed < MinSDPSeed {
		return nil, errs.Configuration("sdp: seed %d is below the 10^9 boundary", seed)
	}
	s := &SDP{}
	bitsOf := seed
	for i := 0; i < 10; i++ {
		shard := (bitsOf >> (uint(i) * 6)) ^ (bitsOf << uint(i*5))
		s.state[i] = (float64(shard%100000) - 50000.0) / 10000.0
	}
	// theta1, theta2 start as non-degenerate angles derived from the seed.
	s.state[0] = math.Mod(s.state[0], math.Pi)
	s.state[1] = math.Mod(s.state[1], math.Pi)

	steps := int(math.Round(sdpStepRatio * float64(seed)))
	if steps < 1 {
		steps = 1
	}
	if steps > maxSDPSteps {
		steps = maxSDPSteps
	}
	for i := 0; i < steps; i++ {
		s.integrate()
	}
	return s, nil
}

// derivatives computes the standard double-pendulum equations of motion for
// state slots [theta1, theta2, omega1, omega2].
func (s *SDP) derivatives(st [4]float64) [4]float64 {
	theta1, theta2, omega1, omega2 := st[0], st[1], st[2], st[3]
	delta := theta1 - theta2

	den1 := sdpL1 * (sdpM1 + sdpM2 - sdpM2*math.Cos(delta)*math.Cos(delta))
	den2 := sdpL2 * (sdpM1 + sdpM2 - sdpM2*math.Cos(delta)*math.Cos(delta))

	domega1 := (sdpM2*sdpL1*omega1*omega1*math.Sin(delta)*math.Cos(delta) +
		sdpM2*sdpG*math.Sin(theta2)*math.Cos(delta) +
		sdpM2*sdpL2*omega2*omega2*math.Sin(delta) -
		(sdpM1+sdpM2)*sdpG*math.Sin(theta1)) / den1

	domega2 := (-sdpM2*sdpL2*omega2*omega2*math.Sin(delta)*math.Cos(delta) +
		(sdpM1+sdpM2)*sdpG*math.Sin(theta1)*math.Cos(delta) -
		(sdpM1+sdpM2)*sdpL1*omega1*omega1*math.Sin(delta) -
		(sdpM1+sdpM2)*sdpG*math.Sin(theta2)) / den2

	return [4]float64{omega1, omega2, domega1, domega2}
}

// integrate advances the dynamical slots (0-3) by one RK4 step of size
// sdpDt, and folds the result into the six auxiliary bookkeeping slots
// (4-9): running position traces and a call counter, so every output
// sample depends on the entire trajectory, not just the latest angles.
func (s *SDP) integrate() {
	y0 := [4]float64{s.state[0], s.state[1], s.state[2], s.state[3]}

	k1 := s.derivatives(y0)
	y1 := addScaled(y0, k1, sdpDt/2)
	k2 := s.derivatives(y1)
	y2 := addScaled(y0, k2, sdpDt/2)
	k3 := s.derivatives(y2)
	y3 := addScaled(y0, k3, sdpDt)
	k4 := s.derivatives(y3)

	for i := 0; i < 4; i++ {
		s.state[i] = y0[i] + (sdpDt/6)*(k1[i]+2*k2[i]+2*k3[i]+k4[i])
	}

	x1 := sdpL1 * math.Sin(s.state[0])
	x2 := x1 + sdpL2*math.Sin(s.state[1])
	s.state[4] = x1
	s.state[5] = sdpL1 * math.Cos(s.state[0])
	s.state[6] = x2
	s.state[7] = s.state[5] + sdpL2*math.Cos(s.state[1])
	s.state[8] = s.state[8] + s.state[2] + s.state[3]
	s.state[9] = float64(s.calls)
	s.calls++
}

func addScaled(a, k [4]float64, h float64) [4]float64 {
	return [4]float64{a[0] + h*k[0], a[1] + h*k[1], a[2] + h*k[2], a[3] + h*k[3]}
}

// Next advances the pendulum by one more integration step and emits a
// 64-bit output by concatenating the mantissa bit patterns of two of the
// state slots, matching spec.md §3's "concatenated-int outputs on each
// call".
func (s *SDP) Next() uint64 {
	s.integrate()
	a := math.Float64bits(s.state[2]) // omega1
	b := math.Float64bits(s.state[7]) // second bob y position
	combined := (a & 0xFFFFFFFF00000000) | (b & 0x00000000FFFFFFFF)
	return combined ^ rotl64(s.state9bits(), 17)
}

func (s *SDP) state9bits() uint64 {
	return math.Float64bits(s.state[9])
}
