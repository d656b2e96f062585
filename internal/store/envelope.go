package store

import (
	"crypto/rand"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"keywarden/internal/crypto"
	"keywarden/internal/domain"
	"keywarden/internal/ss58"
)

// FormatVersion is the current on-disk envelope format.
const FormatVersion = 1

const kdfScrypt = "scrypt"

var (
	// ErrUnsupportedVersion is returned before any cryptographic work when
	// the envelope was written by a newer format than this build knows.
	ErrUnsupportedVersion = errors.New("unsupported key file version")
	// ErrUnsupportedKDF is returned before any cryptographic work when the
	// envelope names a KDF this build does not recognize.
	ErrUnsupportedKDF = errors.New("unsupported KDF")
	// ErrDecrypt covers every decryption failure. Wrong password and
	// corrupted ciphertext are deliberately indistinguishable.
	ErrDecrypt = errors.New("decryption failed: wrong password or corrupted key file")
)

// Params are the scrypt work factors stored alongside the ciphertext.
type Params struct {
	N int `json:"n"`
	R int `json:"r"`
	P int `json:"p"`
}

// Envelope is the versioned, self-describing encrypted container persisted
// to disk. Decryption needs nothing beyond the password: the KDF tag,
// work factors, salt and nonce all travel in the file.
//
// The trailing optional fields are public metadata mirrored out of the
// sealed record so callers can read non-secret fields without decrypting.
// Envelopes written without them remain loadable.
type Envelope struct {
	Version    int    `json:"version"`
	KDF        string `json:"kdf"`
	Salt       string `json:"salt"`
	Params     Params `json:"params"`
	Nonce      string `json:"nonce"`
	Ciphertext string `json:"ciphertext"`

	Scheme       string `json:"scheme,omitempty"`
	Network      string `json:"network,omitempty"`
	ByteArray    string `json:"byte_array,omitempty"`
	PublicKeyHex string `json:"public_key_hex,omitempty"`
	SS58Address  string `json:"ss58_address,omitempty"`
}

// Seal serializes the full record (secrets included), derives a key from
// the password with a fresh salt, and encrypts. Every call draws new salt
// and nonce, even when re-saving the same record.
func Seal(rec *domain.KeyRecord, password []byte) (*Envelope, error) {
	payload, err := json.Marshal(rec)
	if err != nil {
		return nil, err
	}
	salt := make([]byte, crypto.SaltSize)
	if _, err := rand.Read(salt); err != nil {
		return nil, err
	}
	key, err := crypto.DeriveKey(password, salt, crypto.DefaultN, crypto.DefaultR, crypto.DefaultP)
	if err != nil {
		return nil, err
	}
	defer crypto.Zero(key)

	nonce, ciphertext, err := crypto.Seal(key, payload, nil)
	if err != nil {
		return nil, err
	}
	env := &Envelope{
		Version:    FormatVersion,
		KDF:        kdfScrypt,
		Salt:       base64.StdEncoding.EncodeToString(salt),
		Params:     Params{N: crypto.DefaultN, R: crypto.DefaultR, P: crypto.DefaultP},
		Nonce:      base64.StdEncoding.EncodeToString(nonce),
		Ciphertext: base64.StdEncoding.EncodeToString(ciphertext),

		Scheme:       string(rec.Scheme),
		Network:      rec.Network,
		PublicKeyHex: rec.PublicKeyHex,
		SS58Address:  rec.SS58Address,
	}
	if len(rec.ByteArray) > 0 {
		env.ByteArray = "0x" + hex.EncodeToString(rec.ByteArray)
	}
	return env, nil
}

// Open validates the KDF tag, derives the key from the envelope's own
// parameters, authenticates and decrypts, and reconstructs the record.
// created_at is re-stamped to now; the sealed timestamp is not preserved.
func (e *Envelope) Open(password []byte, now time.Time) (*domain.KeyRecord, error) {
	if e.Version > FormatVersion {
		return nil, ErrUnsupportedVersion
	}
	if !strings.EqualFold(e.KDF, kdfScrypt) {
		return nil, ErrUnsupportedKDF
	}
	salt, err := base64.StdEncoding.DecodeString(e.Salt)
	if err != nil {
		return nil, fmt.Errorf("envelope salt: %w", err)
	}
	nonce, err := base64.StdEncoding.DecodeString(e.Nonce)
	if err != nil {
		return nil, fmt.Errorf("envelope nonce: %w", err)
	}
	ciphertext, err := base64.StdEncoding.DecodeString(e.Ciphertext)
	if err != nil {
		return nil, fmt.Errorf("envelope ciphertext: %w", err)
	}

	params := e.Params
	if params.N == 0 {
		params.N = crypto.DefaultN
	}
	if params.R == 0 {
		params.R = crypto.DefaultR
	}
	if params.P == 0 {
		params.P = crypto.DefaultP
	}
	key, err := crypto.DeriveKey(password, salt, params.N, params.R, params.P)
	if err != nil {
		return nil, err
	}
	defer crypto.Zero(key)

	payload, err := crypto.Open(key, nonce, ciphertext, nil)
	if err != nil {
		return nil, ErrDecrypt
	}
	var rec domain.KeyRecord
	if err := json.Unmarshal(payload, &rec); err != nil {
		return nil, fmt.Errorf("envelope payload: %w", err)
	}
	rec.Stamp(now)
	return &rec, nil
}

// PublicRecord builds an address-only view from the envelope's public
// metadata without decrypting. Missing account bytes are recovered from
// the SS58 address when possible.
func (e *Envelope) PublicRecord(now time.Time) domain.KeyRecord {
	rec := domain.KeyRecord{
		Scheme:       domain.Scheme(e.Scheme),
		Network:      e.Network,
		PublicKeyHex: e.PublicKeyHex,
		SS58Address:  e.SS58Address,
		KeyType:      "ss58",
		IsPair:       false,
	}
	if raw, err := hex.DecodeString(strings.TrimPrefix(e.ByteArray, "0x")); err == nil && len(raw) > 0 {
		rec.ByteArray = raw
	} else if id, ok := ss58.Decode(e.SS58Address); ok {
		rec.ByteArray = id[:]
	}
	rec.Stamp(now)
	return rec
}
