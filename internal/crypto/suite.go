package crypto

import (
	"encoding/binary"

	"github.com/cloudflare/circl/hpke"
	"github.com/cloudflare/circl/kem"
)

// suite describes the cryptographic parameters selected by an envelope
// format version byte. Every size and algorithm choice flows from the
// descriptor so primitives from different suites cannot be mixed.
type suite struct {
	kemID     uint16
	kdfID     uint16
	aeadID    uint16
	encSize   int
	keySize   int
	nonceSize int
	tagSize   int
}

// suites maps recognized format versions to their suite. Version bytes
// are matched exactly; older format versions used draft-era key
// schedules and are not supported.
var suites = map[byte]suite{
	FormatVersion: {
		kemID:     kemID,
		kdfID:     kdfID,
		aeadID:    aeadID,
		encSize:   EncappedKeySize,
		keySize:   KeySize,
		nonceSize: NonceSize,
		tagSize:   TagSize,
	},
}

// suiteFor looks up the suite for an envelope format version.
func suiteFor(version byte) (suite, bool) {
	s, ok := suites[version]
	return s, ok
}

// id returns the RFC 9180 suite identifier, "HPKE" followed by the
// big-endian KEM, KDF and AEAD ids. Binding it into every derivation
// prevents cross-suite confusion.
func (s suite) id() []byte {
	sid := make([]byte, 0, 10)
	sid = append(sid, "HPKE"...)
	sid = binary.BigEndian.AppendUint16(sid, s.kemID)
	sid = binary.BigEndian.AppendUint16(sid, s.kdfID)
	sid = binary.BigEndian.AppendUint16(sid, s.aeadID)
	return sid
}

// kemScheme returns the KEM implementation for the fixed suite.
func kemScheme() kem.Scheme {
	return hpke.KEM_X25519_HKDF_SHA256.Scheme()
}

// wipe overwrites secret material once it is no longer needed.
func wipe(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
