package crypto

import (
	"encoding/binary"
	"fmt"

	"golang.org/x/crypto/chacha20poly1305"
)

// Seal is the encrypting-side counterpart of Open: it encapsulates a
// fresh shared secret to publicKey, runs the same key schedule, seals
// plaintext and assembles a complete envelope blob.
//
// The decryption tooling never exposes sealing; it exists so tests and
// interoperability checks can produce envelopes for a known recipient.
func Seal(publicKey, plaintext []byte) ([]byte, error) {
	scheme := kemScheme()
	if len(publicKey) != scheme.PublicKeySize() {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrInvalidPublicKeySize, len(publicKey), scheme.PublicKeySize())
	}
	pub, err := scheme.UnmarshalBinaryPublicKey(publicKey)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPublicKeySize, err)
	}

	enc, sharedSecret, err := scheme.Encapsulate(pub)
	if err != nil {
		return nil, fmt.Errorf("encapsulate: %w", err)
	}
	defer wipe(sharedSecret)

	s, _ := suiteFor(FormatVersion)
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
	sealed := aead.Seal(nil, computeNonce(baseNonce, 0), plaintext, nil)

	blob := make([]byte, 0, 1+len(enc)+lengthFieldSize+len(sealed))
	blob = append(blob, FormatVersion)
	blob = append(blob, enc...)
	blob = binary.LittleEndian.AppendUint64(blob, uint64(len(sealed)-s.tagSize))
	blob = append(blob, sealed...)
	return blob, nil
}
