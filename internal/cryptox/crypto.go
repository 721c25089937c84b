// Package cryptox provides the sealing primitives for the sealed credential
// backend: argon2id key derivation and AES-GCM with the nonce prepended to
// the ciphertext.
package cryptox

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"errors"

	"golang.org/x/crypto/argon2"
)

// ErrCiphertextTooShort is returned by Open when the blob is shorter than
// a GCM nonce and cannot possibly have been produced by Seal.
var ErrCiphertextTooShort = errors.New("ciphertext too short")

// DeriveKey stretches an installation secret into a 32-byte AES-256 key.
func DeriveKey(secret, salt []byte) []byte {
	return argon2.IDKey(secret, salt, 1, 64*1024, 4, 32)
}

// Seal encrypts plaintext with AES-GCM under key and returns
// nonce||ciphertext. A fresh random nonce is generated per call.
//
// The key must be a valid AES key length (16, 24, or 32 bytes).
func Seal(plaintext, key []byte) ([]byte, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	aesgcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}

	nonce := make([]byte, aesgcm.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return nil, err
	}

	return aesgcm.Seal(nonce, nonce, plaintext, nil), nil
}

// Open decrypts a blob produced by Seal with the same key. Tampered or
// foreign blobs fail GCM authentication and return an error.
func Open(blob, key []byte) ([]byte, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	aesgcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}

	if len(blob) < aesgcm.NonceSize() {
		return nil, ErrCiphertextTooShort
	}
	nonce, ciphertext := blob[:aesgcm.NonceSize()], blob[aesgcm.NonceSize():]

	return aesgcm.Open(nil, nonce, ciphertext, nil)
}
