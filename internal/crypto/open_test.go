package crypto

import (
	"bytes"
	"errors"
	"fmt"
	"testing"
)

func TestOpen_ReferenceVector(t *testing.T) {
	t.Parallel()
	privateKey := mustDecode(t, testPrivateKeyB64)

	env, err := ParseEnvelope(mustDecode(t, testEnvelopeB64))
	if err != nil {
		t.Fatalf("ParseEnvelope() error = %v", err)
	}

	plaintext, err := Open(privateKey, env)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	if string(plaintext) != testPlaintext {
		t.Errorf("plaintext = %q, want %q", plaintext, testPlaintext)
	}
}

func TestOpen_Deterministic(t *testing.T) {
	t.Parallel()
	privateKey := mustDecode(t, testPrivateKeyB64)
	blob := mustDecode(t, testEnvelopeB64)

	env, err := ParseEnvelope(blob)
	if err != nil {
		t.Fatal(err)
	}

	first, err := Open(privateKey, env)
	if err != nil {
		t.Fatal(err)
	}
	second, err := Open(privateKey, env)
	if err != nil {
		t.Fatal(err)
	}

	if !bytes.Equal(first, second) {
		t.Error("opening the same envelope twice produced different plaintexts")
	}
}

func TestSealOpen_RoundTrip(t *testing.T) {
	keyPair, err := GenerateKeyPair()
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name      string
		plaintext []byte
	}{
		{"empty", nil},
		{"single byte", []byte{0x42}},
		{"text", []byte("test matched data")},
		{"binary", []byte{0x00, 0xff, 0x7f, 0x80, 0x01}},
		{"large", bytes.Repeat([]byte("payload "), 1024)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			blob, err := Seal(keyPair.PublicKey, tt.plaintext)
			if err != nil {
				t.Fatalf("Seal() error = %v", err)
			}
			if len(blob) != MinEnvelopeSize+len(tt.plaintext) {
				t.Errorf("blob length = %d, want %d", len(blob), MinEnvelopeSize+len(tt.plaintext))
			}

			env, err := ParseEnvelope(blob)
			if err != nil {
				t.Fatalf("ParseEnvelope() error = %v", err)
			}
			plaintext, err := Open(keyPair.PrivateKey, env)
			if err != nil {
				t.Fatalf("Open() error = %v", err)
			}

			if !bytes.Equal(plaintext, tt.plaintext) {
				t.Errorf("round trip plaintext = %x, want %x", plaintext, tt.plaintext)
			}
		})
	}
}

func TestSeal_FreshEncapsulation(t *testing.T) {
	keyPair, err := GenerateKeyPair()
	if err != nil {
		t.Fatal(err)
	}

	first, err := Seal(keyPair.PublicKey, []byte("payload"))
	if err != nil {
		t.Fatal(err)
	}
	second, err := Seal(keyPair.PublicKey, []byte("payload"))
	if err != nil {
		t.Fatal(err)
	}

	if bytes.Equal(first, second) {
		t.Error("two seals of the same plaintext produced identical blobs")
	}
}

// TestOpen_TamperRejection flips every bit of a valid envelope in turn
// and requires that the blob is rejected, either structurally or
// cryptographically. No mutation may yield plaintext.
func TestOpen_TamperRejection(t *testing.T) {
	keyPair, err := GenerateKeyPair()
	if err != nil {
		t.Fatal(err)
	}
	blob, err := Seal(keyPair.PublicKey, []byte(testPlaintext))
	if err != nil {
		t.Fatal(err)
	}

	for i := range blob {
		for bit := 0; bit < 8; bit++ {
			mutated := append([]byte(nil), blob...)
			mutated[i] ^= 1 << bit

			env, err := ParseEnvelope(mutated)
			if err != nil {
				if !errors.Is(err, ErrMalformedEnvelope) {
					t.Fatalf("byte %d bit %d: parse error = %v, want ErrMalformedEnvelope", i, bit, err)
				}
				continue
			}

			plaintext, err := Open(keyPair.PrivateKey, env)
			if err == nil {
				t.Fatalf("byte %d bit %d: tampered envelope opened successfully", i, bit)
			}
			if !errors.Is(err, ErrAuthenticationFailed) && !errors.Is(err, ErrDecapsulationFailed) {
				t.Fatalf("byte %d bit %d: Open() error = %v, want authentication or decapsulation failure", i, bit, err)
			}
			if plaintext != nil {
				t.Fatalf("byte %d bit %d: Open() returned plaintext alongside an error", i, bit)
			}
		}
	}
}

func TestOpen_InvalidEncappedKey(t *testing.T) {
	keyPair, err := GenerateKeyPair()
	if err != nil {
		t.Fatal(err)
	}
	blob, err := Seal(keyPair.PublicKey, []byte("payload"))
	if err != nil {
		t.Fatal(err)
	}

	// The all-zero encapsulated key is a low-order point; decapsulation
	// must reject it explicitly rather than proceed with a degenerate
	// shared secret.
	copy(blob[1:1+EncappedKeySize], make([]byte, EncappedKeySize))

	env, err := ParseEnvelope(blob)
	if err != nil {
		t.Fatal(err)
	}

	plaintext, err := Open(keyPair.PrivateKey, env)
	if !errors.Is(err, ErrDecapsulationFailed) {
		t.Errorf("Open() error = %v, want ErrDecapsulationFailed", err)
	}
	if plaintext != nil {
		t.Error("Open() returned plaintext for an invalid encapsulated key")
	}
}

func TestOpen_WrongKey(t *testing.T) {
	recipient, err := GenerateKeyPair()
	if err != nil {
		t.Fatal(err)
	}
	other, err := GenerateKeyPair()
	if err != nil {
		t.Fatal(err)
	}

	blob, err := Seal(recipient.PublicKey, []byte("payload"))
	if err != nil {
		t.Fatal(err)
	}
	env, err := ParseEnvelope(blob)
	if err != nil {
		t.Fatal(err)
	}

	// Decapsulation with the wrong key succeeds but derives a different
	// shared secret, so the failure surfaces at tag verification.
	plaintext, err := Open(other.PrivateKey, env)
	if !errors.Is(err, ErrAuthenticationFailed) {
		t.Errorf("Open() error = %v, want ErrAuthenticationFailed", err)
	}
	if plaintext != nil {
		t.Error("Open() returned plaintext for the wrong private key")
	}
}

func TestOpen_InvalidPrivateKeySize(t *testing.T) {
	t.Parallel()
	env, err := ParseEnvelope(mustDecode(t, testEnvelopeB64))
	if err != nil {
		t.Fatal(err)
	}

	for _, size := range []int{0, PrivateKeySize - 1, PrivateKeySize + 1} {
		t.Run(fmt.Sprintf("%d bytes", size), func(t *testing.T) {
			_, err := Open(make([]byte, size), env)
			if !errors.Is(err, ErrInvalidPrivateKeySize) {
				t.Errorf("Open() error = %v, want ErrInvalidPrivateKeySize", err)
			}
		})
	}
}

func TestOpen_UnsupportedVersion(t *testing.T) {
	t.Parallel()

	// An envelope constructed by hand rather than through ParseEnvelope
	// must still be checked against the suite table.
	env := &Envelope{
		Version:     0x7f,
		EncappedKey: make([]byte, EncappedKeySize),
		Sealed:      make([]byte, TagSize),
	}

	_, err := Open(mustDecode(t, testPrivateKeyB64), env)
	if !errors.Is(err, ErrMalformedEnvelope) {
		t.Errorf("Open() error = %v, want ErrMalformedEnvelope", err)
	}
}

func TestSeal_InvalidPublicKeySize(t *testing.T) {
	t.Parallel()
	_, err := Seal(make([]byte, PublicKeySize-1), []byte("payload"))
	if !errors.Is(err, ErrInvalidPublicKeySize) {
		t.Errorf("Seal() error = %v, want ErrInvalidPublicKeySize", err)
	}
}
