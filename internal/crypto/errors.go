package crypto

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedEnvelope is returned when a blob fails the structural
	// parse: too short, unrecognized format version, or a length field
	// inconsistent with the remaining bytes.
	ErrMalformedEnvelope = errors.New("malformed envelope")

	// ErrDecapsulationFailed is returned when the encapsulated key is
	// not usable for decapsulation. It deliberately carries no detail
	// about which property of the key failed.
	ErrDecapsulationFailed = errors.New("decapsulation failed")

	// ErrAuthenticationFailed is returned when AEAD tag verification
	// fails. Wrong key, corrupted ciphertext and corrupted tag are
	// deliberately indistinguishable.
	ErrAuthenticationFailed = errors.New("authentication failed")

	// ErrInvalidPrivateKeySize is returned when a private key is not
	// exactly PrivateKeySize bytes.
	ErrInvalidPrivateKeySize = errors.New("invalid private key size")

	// ErrInvalidPublicKeySize is returned when a public key is not
	// exactly PublicKeySize bytes.
	ErrInvalidPublicKeySize = errors.New("invalid public key size")
)

// UnsupportedVersionError is returned when the envelope's leading byte
// does not select a known suite. It matches ErrMalformedEnvelope in
// errors.Is checks.
type UnsupportedVersionError struct {
	Version byte
}

func (e *UnsupportedVersionError) Error() string {
	return fmt.Sprintf("unsupported envelope format version %d", e.Version)
}

// Is implements errors.Is for sentinel error matching.
func (e *UnsupportedVersionError) Is(target error) bool {
	return target == ErrMalformedEnvelope
}
