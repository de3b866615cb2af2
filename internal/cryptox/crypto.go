// Package cryptox implements at-rest sealing of persisted collections:
// argon2id key derivation from a passphrase plus AES-GCM authenticated
// encryption. Sealed blobs carry their nonce as a prefix.
package cryptox

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"errors"

	"golang.org/x/crypto/argon2"
)

const (
	keyLen  = 32
	SaltLen = 16
)

var ErrCiphertextTooShort = errors.New("ciphertext too short")

// DeriveKey derives a 256-bit AES key from a passphrase and salt using
// argon2id. The same parameters must be used for sealing and opening.
func DeriveKey(passphrase, salt []byte) []byte {
	return argon2.IDKey(passphrase, salt, 1, 64*1024, 4, keyLen)
}

// RandBytes returns n cryptographically random bytes. It panics if the
// system randomness source fails.
func RandBytes(n int) []byte {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		panic(err)
	}
	return b
}

// Seal encrypts plaintext with AES-GCM under key, returning nonce||ciphertext.
// A fresh random nonce is generated per call.
func Seal(key, plaintext []byte) ([]byte, error) {
	aead, err := newAEAD(key)
	if err != nil {
		return nil, err
	}
	nonce := RandBytes(aead.NonceSize())
	return aead.Seal(nonce, nonce, plaintext, nil), nil
}

// Open decrypts a blob produced by Seal. A wrong key or tampered blob
// returns an error from the AEAD open.
func Open(key, sealed []byte) ([]byte, error) {
	aead, err := newAEAD(key)
	if err != nil {
		return nil, err
	}
	if len(sealed) < aead.NonceSize() {
		return nil, ErrCiphertextTooShort
	}
	nonce, ciphertext := sealed[:aead.NonceSize()], sealed[aead.NonceSize():]
	return aead.Open(nil, nonce, ciphertext, nil)
}

func newAEAD(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	return cipher.NewGCM(block)
}
