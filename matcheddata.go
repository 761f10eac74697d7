package matcheddata

import (
	"github.com/payloadlog/matcheddata/internal/crypto"
)

// FormatVersion is the envelope format version this library supports.
const FormatVersion = crypto.FormatVersion

const (
	// PrivateKeySize is the size of a raw private key in bytes.
	PrivateKeySize = crypto.PrivateKeySize
	// PublicKeySize is the size of a raw public key in bytes.
	PublicKeySize = crypto.PublicKeySize
)

// KeyPair is a generated key pair for matched-data encryption.
// PublicKey is meant to be configured on the encrypting side and is
// safe to display. PrivateKey decrypts every blob sealed under the
// matching public key and must be kept secret; it should never be
// logged or echoed except on explicit user request.
type KeyPair struct {
	// PrivateKey is the raw 32-byte private key.
	PrivateKey []byte
	// PublicKey is the raw 32-byte public key.
	PublicKey []byte
}

// GenerateKeyPair creates a new key pair from cryptographically secure
// randomness. If the entropy source fails, an error is returned and no
// key material is produced; there is no fallback source.
func GenerateKeyPair() (*KeyPair, error) {
	kp, err := crypto.GenerateKeyPair()
	if err != nil {
		return nil, err
	}
	return &KeyPair{
		PrivateKey: kp.PrivateKey,
		PublicKey:  kp.PublicKey,
	}, nil
}

// Decrypt parses an encrypted matched-data blob and opens it with the
// given raw private key, returning the original payload bytes.
//
// Decrypt makes no decision about text encoding; callers that want a
// printable rendering must decode the returned bytes themselves.
//
// Errors are terminal and match the package sentinels via errors.Is:
// ErrMalformedEnvelope for structural failures (reported before any
// cryptographic work), ErrDecapsulationFailed for unusable
// encapsulated keys, and ErrAuthenticationFailed when tag verification
// fails. The latter two deliberately carry no further detail.
func Decrypt(encrypted, privateKey []byte) ([]byte, error) {
	envelope, err := crypto.ParseEnvelope(encrypted)
	if err != nil {
		return nil, err
	}
	return crypto.Open(privateKey, envelope)
}
