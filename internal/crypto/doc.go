// Package crypto implements the encrypted envelope format used by the
// firewall's payload-logging feature and the hybrid public key
// encryption (HPKE, RFC 9180) operations needed to open it.
//
// # Algorithm Suite
//
// Envelope format version 3 fixes the following suite:
//
//   - DHKEM(X25519, HKDF-SHA256) (RFC 9180 §4.1): key encapsulation
//     mechanism used to establish the per-envelope shared secret.
//
//   - HKDF-SHA256 (RFC 5869): key derivation function used by the
//     HPKE key schedule.
//
//   - ChaCha20-Poly1305 (RFC 8439): authenticated encryption of the
//     matched-data payload.
//
// The suite is selected by the envelope's leading version byte through
// a descriptor table; primitives from different suites cannot be
// mixed, and unrecognized versions are rejected during parsing.
//
// # Envelope Layout
//
// An encrypted matched-data blob is laid out as:
//
//	version (1) || encapsulated key (32) || ciphertext length (8, little-endian) || ciphertext || tag (16)
//
// The length field is the encrypting side's serializer framing for the
// ciphertext. Each blob is a self-contained single-message HPKE
// context, so the AEAD message counter is always zero.
//
// # Security Model
//
// Only the holder of the recipient private key can open an envelope.
// Tampering with any field causes decapsulation or tag verification to
// fail; both failures are reported without detail so callers cannot be
// used as a padding or point-validity oracle. Tag verification is
// all-or-nothing: no partial plaintext is ever returned.
//
// Key generation draws from crypto/rand. If the entropy source fails,
// generation fails; there is no fallback to a weaker source.
//
// Secret intermediates (KEM seed, shared secret, derived key, base
// nonce) are held only for the duration of the call that needs them
// and are overwritten before returning.
package crypto
