package crypto

import (
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"io"

	"golang.org/x/crypto/hkdf"
)

// labeledExtract is LabeledExtract from RFC 9180 §4: HKDF-Extract over
// the ikm prefixed with the version label, the suite id and a label.
func labeledExtract(salt, suiteID []byte, label string, ikm []byte) []byte {
	labeled := make([]byte, 0, len(versionLabel)+len(suiteID)+len(label)+len(ikm))
	labeled = append(labeled, versionLabel...)
	labeled = append(labeled, suiteID...)
	labeled = append(labeled, label...)
	labeled = append(labeled, ikm...)
	return hkdf.Extract(sha256.New, labeled, salt)
}

// labeledExpand is LabeledExpand from RFC 9180 §4: HKDF-Expand with the
// output length, version label, suite id and label bound into the info.
func labeledExpand(prk, suiteID []byte, label string, info []byte, length int) ([]byte, error) {
	labeled := make([]byte, 0, 2+len(versionLabel)+len(suiteID)+len(label)+len(info))
	labeled = binary.BigEndian.AppendUint16(labeled, uint16(length))
	labeled = append(labeled, versionLabel...)
	labeled = append(labeled, suiteID...)
	labeled = append(labeled, label...)
	labeled = append(labeled, info...)

	out := make([]byte, length)
	if _, err := io.ReadFull(hkdf.Expand(sha256.New, prk, labeled), out); err != nil {
		return nil, fmt.Errorf("expand %q: %w", label, err)
	}
	return out, nil
}

// keySchedule derives the AEAD key and base nonce for a base-mode
// receiver context from the KEM shared secret, per RFC 9180 §5.1.
// The envelope format fixes both the info string and the PSK inputs
// to empty.
func (s suite) keySchedule(sharedSecret []byte) (key, baseNonce []byte, err error) {
	sid := s.id()

	pskIDHash := labeledExtract(nil, sid, "psk_id_hash", nil)
	infoHash := labeledExtract(nil, sid, "info_hash", nil)

	ctx := make([]byte, 0, 1+len(pskIDHash)+len(infoHash))
	ctx = append(ctx, modeBase)
	ctx = append(ctx, pskIDHash...)
	ctx = append(ctx, infoHash...)

	secret := labeledExtract(sharedSecret, sid, "secret", nil)
	defer wipe(secret)

	key, err = labeledExpand(secret, sid, "key", ctx, s.keySize)
	if err != nil {
		return nil, nil, err
	}
	baseNonce, err = labeledExpand(secret, sid, "base_nonce", ctx, s.nonceSize)
	if err != nil {
		wipe(key)
		return nil, nil, err
	}
	return key, baseNonce, nil
}

// computeNonce XORs the big-endian message counter into the trailing
// bytes of the base nonce, per RFC 9180 §5.2. Every envelope is a
// single-message context, so callers pass counter 0; the construction
// still has to match the encrypting side exactly.
func computeNonce(baseNonce []byte, counter uint64) []byte {
	nonce := make([]byte, len(baseNonce))
	copy(nonce, baseNonce)

	var ctr [8]byte
	binary.BigEndian.PutUint64(ctr[:], counter)
	for i, b := range ctr {
		nonce[len(nonce)-len(ctr)+i] ^= b
	}
	return nonce
}
