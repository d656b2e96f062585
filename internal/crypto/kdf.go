package crypto

import (
	"unicode/utf8"

	"golang.org/x/crypto/scrypt"
	"golang.org/x/text/unicode/norm"
)

const (
	// KeySize is the derived symmetric key length (AES-256).
	KeySize = 32
	// SaltSize is the random salt length drawn per seal.
	SaltSize = 16

	// Default scrypt work factors. They travel with every envelope, so
	// files written with different tunings keep decrypting.
	DefaultN = 1 << 14
	DefaultR = 8
	DefaultP = 1
)

// DeriveKey stretches password and salt into a KeySize symmetric key with
// scrypt. Textual passwords are NFC-normalized first so visually identical
// input typed through different input methods derives the same key; raw
// non-UTF-8 byte passwords pass through untouched.
func DeriveKey(password, salt []byte, n, r, p int) ([]byte, error) {
	return scrypt.Key(NormalizePassword(password), salt, n, r, p, KeySize)
}

// NormalizePassword applies NFC to valid UTF-8 passwords.
func NormalizePassword(password []byte) []byte {
	if utf8.Valid(password) {
		return norm.NFC.Bytes(password)
	}
	return password
}

// Zero best-effort wipes a sensitive byte slice.
func Zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
