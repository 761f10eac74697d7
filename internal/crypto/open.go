package crypto

import (
	"fmt"

	"golang.org/x/crypto/chacha20poly1305"
)

// Open decrypts a parsed envelope with the recipient's private key.
//
// The decryption process:
//  1. DHKEM(X25519, HKDF-SHA256) decapsulation of the envelope's
//     encapsulated key to recover the shared secret
//  2. RFC 9180 base-mode key schedule to derive the AEAD key and base
//     nonce, with the suite identifiers bound into every derivation
//  3. Nonce construction from the base nonce and the message counter
//  4. ChaCha20-Poly1305 open of the sealed payload with empty
//     associated data
//
// Decapsulation and authentication failures are deterministic for a
// given (key, envelope) pair and are reported as terminal errors with
// no distinguishing detail. On authentication failure no plaintext is
// returned, partial or otherwise.
func Open(privateKey []byte, env *Envelope) ([]byte, error) {
	s, ok := suiteFor(env.Version)
	if !ok {
		return nil, &UnsupportedVersionError{Version: env.Version}
	}

	scheme := kemScheme()
	if len(privateKey) != scheme.PrivateKeySize() {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrInvalidPrivateKeySize, len(privateKey), scheme.PrivateKeySize())
	}
	priv, err := scheme.UnmarshalBinaryPrivateKey(privateKey)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPrivateKeySize, err)
	}

	// The scheme rejects encapsulated keys that are not valid curve
	// points, including the identity and other low-order elements. The
	// cause is discarded so failures cannot be used as a point-validity
	// oracle.
	sharedSecret, err := scheme.Decapsulate(priv, env.EncappedKey)
	if err != nil {
		return nil, ErrDecapsulationFailed
	}
	defer wipe(sharedSecret)

	key, baseNonce, err := s.keySchedule(sharedSecret)
	if err != nil {
		return nil, err
	}
	defer wipe(key)
	defer wipe(baseNonce)

	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return nil, fmt.Errorf("init aead: %w", err)
	}

	plaintext, err := aead.Open(nil, computeNonce(baseNonce, 0), env.Sealed, nil)
	if err != nil {
		return nil, ErrAuthenticationFailed
	}
	return plaintext, nil
}
