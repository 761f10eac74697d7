package crypto

import (
	"crypto/rand"
	"fmt"
	"io"
)

// randReader is the entropy source used for key generation.
// It defaults to nil (which uses crypto/rand) but can be overridden for testing.
var randReader io.Reader

// KeyPair is an X25519 key pair for the envelope KEM. PublicKey is
// safe to display; PrivateKey must never be logged or echoed except on
// explicit user request.
type KeyPair struct {
	// PrivateKey is the raw 32-byte X25519 private key.
	PrivateKey []byte
	// PublicKey is the raw 32-byte X25519 public key.
	PublicKey []byte
}

// GenerateKeyPair creates a new key pair for the fixed KEM.
//
// Entropy failure is returned as an error; there is no fallback to a
// weaker randomness source.
func GenerateKeyPair() (*KeyPair, error) {
	scheme := kemScheme()

	seed := make([]byte, scheme.SeedSize())
	defer wipe(seed)

	r := randReader
	if r == nil {
		r = rand.Reader
	}
	if _, err := io.ReadFull(r, seed); err != nil {
		return nil, fmt.Errorf("read key generation entropy: %w", err)
	}

	pub, priv := scheme.DeriveKeyPair(seed)

	// MarshalBinary never fails for keys produced by DeriveKeyPair
	privBytes, _ := priv.MarshalBinary()
	pubBytes, _ := pub.MarshalBinary()

	return &KeyPair{
		PrivateKey: privBytes,
		PublicKey:  pubBytes,
	}, nil
}

// PublicKeyFromPrivate derives the public key matching a raw private key.
func PublicKeyFromPrivate(privateKey []byte) ([]byte, error) {
	scheme := kemScheme()
	if len(privateKey) != scheme.PrivateKeySize() {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrInvalidPrivateKeySize, len(privateKey), scheme.PrivateKeySize())
	}

	priv, err := scheme.UnmarshalBinaryPrivateKey(privateKey)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPrivateKeySize, err)
	}

	pubBytes, err := priv.Public().MarshalBinary()
	if err != nil {
		return nil, fmt.Errorf("marshal public key: %w", err)
	}
	return pubBytes, nil
}
