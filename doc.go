// Package matcheddata decrypts the "matched data" blobs produced by a
// firewall's payload-logging feature and generates the key pairs those
// blobs are encrypted against.
//
// Blobs are sealed with hybrid public key encryption (HPKE, RFC 9180)
// in base mode, using DHKEM(X25519, HKDF-SHA256), HKDF-SHA256 and
// ChaCha20-Poly1305. The suite is fixed by the envelope's leading
// format version byte; there is no negotiation.
//
// Basic usage:
//
//	keyPair, err := matcheddata.GenerateKeyPair()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Configure payload logging with keyPair.PublicKey, then later:
//	plaintext, err := matcheddata.Decrypt(encryptedBlob, keyPair.PrivateKey)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Printf("%s\n", plaintext)
//
// All operations are stateless, synchronous and safe for concurrent
// use. Decryption failures are terminal: they are deterministic
// functions of the key and blob, and retrying cannot succeed.
package matcheddata
