package crypto

const (
	// FormatVersion is the envelope format version this package supports.
	FormatVersion byte = 3

	// EncappedKeySize is the size of an encapsulated X25519 public key in bytes.
	EncappedKeySize = 32
	// PrivateKeySize is the size of an X25519 private key in bytes.
	PrivateKeySize = 32
	// PublicKeySize is the size of an X25519 public key in bytes.
	PublicKeySize = 32

	// KeySize is the size of a ChaCha20-Poly1305 key in bytes.
	KeySize = 32
	// NonceSize is the size of a ChaCha20-Poly1305 nonce in bytes.
	NonceSize = 12
	// TagSize is the size of a Poly1305 authentication tag in bytes.
	TagSize = 16

	// lengthFieldSize is the size of the ciphertext length field in bytes.
	lengthFieldSize = 8

	// headerSize is the size of everything before the sealed payload.
	headerSize = 1 + EncappedKeySize + lengthFieldSize

	// MinEnvelopeSize is the smallest structurally valid envelope:
	// a full header followed by an empty ciphertext and its tag.
	MinEnvelopeSize = headerSize + TagSize
)

// RFC 9180 algorithm identifiers for the fixed suite.
const (
	kemID  uint16 = 0x0020 // DHKEM(X25519, HKDF-SHA256)
	kdfID  uint16 = 0x0001 // HKDF-SHA256
	aeadID uint16 = 0x0003 // ChaCha20-Poly1305
)

// versionLabel prefixes every labeled HKDF invocation. Format version 3
// envelopes use the final RFC 9180 labels; draft-era labels derive
// different key material and do not interoperate.
const versionLabel = "HPKE-v1"

// modeBase is the HPKE mode identifier for base mode (no PSK, no
// sender authentication).
const modeBase byte = 0x00

// SuiteName is the canonical string representation of the fixed suite.
const SuiteName = "DHKEM(X25519,HKDF-SHA256):HKDF-SHA256:ChaCha20-Poly1305"
