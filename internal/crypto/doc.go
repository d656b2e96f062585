// Package crypto exposes the two primitives behind the encrypted key
// store: the scrypt password KDF (with Unicode NFC normalization) and the
// AES-256-GCM authenticated encryption codec.
//
// Callers should treat derived keys as sensitive and Zero them when done.
package crypto
