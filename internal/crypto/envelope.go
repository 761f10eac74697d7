package crypto

import (
	"encoding/binary"
	"fmt"
)

// Envelope is the parsed structure of an encrypted matched-data blob.
// It is purely structural: no field has been cryptographically
// verified. Envelopes are immutable after parsing.
type Envelope struct {
	// Version is the envelope format version byte.
	Version byte
	// EncappedKey is the sender's encapsulated ephemeral public key.
	EncappedKey []byte
	// Sealed is the ciphertext followed by its authentication tag, as a
	// contiguous view of the input blob. The payload is authenticated
	// bit for bit, so the underlying bytes are never copied or
	// reassembled.
	Sealed []byte
}

// ParseEnvelope validates the structural shape of an encrypted blob
// and splits it into its fields. It performs no cryptographic work;
// any failure is reported before key material is touched.
func ParseEnvelope(blob []byte) (*Envelope, error) {
	if len(blob) < MinEnvelopeSize {
		return nil, fmt.Errorf("%w: got %d bytes, want at least %d", ErrMalformedEnvelope, len(blob), MinEnvelopeSize)
	}

	version := blob[0]
	s, ok := suiteFor(version)
	if !ok {
		return nil, &UnsupportedVersionError{Version: version}
	}

	// The 8 bytes after the encapsulated key are the encrypting side's
	// little-endian length framing for the ciphertext. The sealed
	// payload must hold exactly that many bytes plus the tag.
	lenStart := 1 + s.encSize
	ctLen := binary.LittleEndian.Uint64(blob[lenStart : lenStart+lengthFieldSize])
	sealed := blob[lenStart+lengthFieldSize:]
	if ctLen != uint64(len(sealed)-s.tagSize) {
		return nil, fmt.Errorf("%w: ciphertext length %d does not match %d payload bytes", ErrMalformedEnvelope, ctLen, len(sealed))
	}

	return &Envelope{
		Version:     version,
		EncappedKey: blob[1 : 1+s.encSize],
		Sealed:      sealed,
	}, nil
}
