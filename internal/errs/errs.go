// Package errs defines the three error kinds spec.md §7 names
// (ConfigurationInvalid, InputLengthMismatch, InternalAssertFailure) as
// sentinel values, wrapped with github.com/pkg/errors at call sites the way
// std/crypt.go and client/main.go wrap kcp/smux failures with stack context.
package errs

import "github.com/pkg/errors"

// Sentinel error kinds. Use errors.Is against these after unwrapping an
// errors.Wrap chain.
var (
	// ErrConfigurationInvalid is returned when a constructor is given
	// out-of-range sizes, a zero NLFSR/LFSR seed, an SDP seed below the
	// 10^9 boundary (see internal/rng.MinSDPSeed and DESIGN.md), a
	// misaligned IV, or an invalid HashBits.
	ErrConfigurationInvalid = errors.New("oaldrespuzzle: invalid configuration")

	// ErrInputLengthMismatch is returned when encrypt/decrypt input is not
	// a multiple of the required block size.
	ErrInputLengthMismatch = errors.New("oaldrespuzzle: input length mismatch")

	// ErrInternalAssertFailure marks an implementation bug: a self-inverse
	// property or produced-size invariant did not hold. Callers should
	// treat this as fatal, not recoverable.
	ErrInternalAssertFailure = errors.New("oaldrespuzzle: internal assertion failed")
)

// Configuration wraps ErrConfigurationInvalid with a formatted reason.
func Configuration(format string, args ...interface{}) error {
	return errors.Wrapf(ErrConfigurationInvalid, format, args...)
}

// InputLength wraps ErrInputLengthMismatch with a formatted reason.
func InputLength(format string, args ...interface{}) error {
	return errors.Wrapf(ErrInputLengthMismatch, format, args...)
}

// InternalAssert wraps ErrInternalAssertFailure with a formatted reason.
func InternalAssert(format string, args ...interface{}) error {
	return errors.Wrapf(ErrInternalAssertFailure, format, args...)
}
