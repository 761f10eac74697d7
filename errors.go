package matcheddata

import (
	"github.com/payloadlog/matcheddata/internal/crypto"
)

// Sentinel errors for errors.Is() checks.
var (
	// ErrMalformedEnvelope is returned when a blob fails the structural
	// parse: too short, unrecognized format version, or a length field
	// inconsistent with the remaining bytes.
	ErrMalformedEnvelope = crypto.ErrMalformedEnvelope

	// ErrDecapsulationFailed is returned when the envelope's
	// encapsulated key is unusable. It carries no detail about which
	// property of the key failed.
	ErrDecapsulationFailed = crypto.ErrDecapsulationFailed

	// ErrAuthenticationFailed is returned when tag verification fails.
	// Wrong key, corrupted ciphertext and corrupted tag are
	// indistinguishable by design.
	ErrAuthenticationFailed = crypto.ErrAuthenticationFailed

	// ErrInvalidPrivateKeySize is returned when a private key is not
	// exactly PrivateKeySize bytes.
	ErrInvalidPrivateKeySize = crypto.ErrInvalidPrivateKeySize
)
