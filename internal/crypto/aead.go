package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"errors"
)

// NonceSize is the AES-GCM nonce length.
const NonceSize = 12

// ErrAuthFailed is returned when Open rejects the ciphertext. A wrong key
// and a tampered ciphertext are deliberately indistinguishable.
var ErrAuthFailed = errors.New("authentication failed")

// Seal encrypts plaintext under key with AES-256-GCM and a fresh random
// nonce. A random nonce per call is the nonce-reuse defense: there is no
// durable per-key counter state that would make a counter scheme safe.
func Seal(key, plaintext, associatedData []byte) (nonce, ciphertext []byte, err error) {
	aead, err := newGCM(key)
	if err != nil {
		return nil, nil, err
	}
	nonce = make([]byte, NonceSize)
	if _, err := rand.Read(nonce); err != nil {
		return nil, nil, err
	}
	return nonce, aead.Seal(nil, nonce, plaintext, associatedData), nil
}

// Open decrypts and authenticates ciphertext. Any failure surfaces as
// ErrAuthFailed.
func Open(key, nonce, ciphertext, associatedData []byte) ([]byte, error) {
	// GCM panics on a wrong-length nonce; a corrupted file must not crash.
	if len(nonce) != NonceSize {
		return nil, ErrAuthFailed
	}
	aead, err := newGCM(key)
	if err != nil {
		return nil, err
	}
	plaintext, err := aead.Open(nil, nonce, ciphertext, associatedData)
	if err != nil {
		return nil, ErrAuthFailed
	}
	return plaintext, nil
}

func newGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	return cipher.NewGCM(block)
}
