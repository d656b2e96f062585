package domain

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Scheme is a signature algorithm family supported by subkey.
type Scheme string

const (
	SchemeSr25519 Scheme = "sr25519"
	SchemeEd25519 Scheme = "ed25519"
)

// ParseScheme validates a scheme string.
func ParseScheme(s string) (Scheme, error) {
	switch Scheme(s) {
	case SchemeSr25519, SchemeEd25519:
		return Scheme(s), nil
	}
	return "", fmt.Errorf("scheme must be %q or %q, got %q", SchemeSr25519, SchemeEd25519, s)
}

// KeyKind tags the static shape of a record: a signing pair holds secret
// material, an address-only record holds just public identifiers.
type KeyKind int

const (
	KindSigningPair KeyKind = iota
	KindAddressOnly
)

// AccountIDSize is the width of a raw Substrate account identifier.
const AccountIDSize = 32

// HexBytes is a byte slice carried as a 0x-prefixed hex string in JSON, so
// the serialized form stays text-safe.
type HexBytes []byte

func (h HexBytes) MarshalJSON() ([]byte, error) {
	if h == nil {
		return []byte("null"), nil
	}
	return json.Marshal("0x" + hex.EncodeToString(h))
}

func (h *HexBytes) UnmarshalJSON(data []byte) error {
	var s *string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if s == nil {
		*h = nil
		return nil
	}
	raw, err := hex.DecodeString(strings.TrimPrefix(strings.TrimPrefix(*s, "0x"), "0X"))
	if err != nil {
		// Tolerate unparseable stored values the way the original tool
		// does; the field is derivable again from the address.
		*h = nil
		return nil
	}
	*h = raw
	return nil
}

// KeyRecord is one cryptographic identity. JSON field names match the
// payload sealed inside the envelope ciphertext, so files stay compatible
// across tool versions.
type KeyRecord struct {
	Scheme         Scheme     `json:"scheme"`
	Network        string     `json:"network"`
	ByteArray      HexBytes   `json:"byte_array,omitempty"`
	MnemonicPhrase string     `json:"mnemonic_phrase,omitempty"`
	SecretPhrase   string     `json:"secret_phrase,omitempty"`
	PublicKeyHex   string     `json:"public_key_hex,omitempty"`
	PrivateKeyHex  string     `json:"private_key_hex,omitempty"`
	SS58Address    string     `json:"ss58_address,omitempty"`
	KeyType        string     `json:"key_type,omitempty"`
	IsPair         bool       `json:"is_pair"`
	IsMultisig     bool       `json:"is_multisig,omitempty"`
	Threshold      uint16     `json:"threshold,omitempty"`
	Signers        []string   `json:"signers,omitempty"`
	MultisigAddr   string     `json:"multisig_address,omitempty"`
	CreatedAt      *time.Time `json:"created_at,omitempty"`
}

// Kind reports the record shape. Dispatch on key variants is pure data
// matching; there is no behavioral hierarchy behind it.
func (k *KeyRecord) Kind() KeyKind {
	if k.IsPair {
		return KindSigningPair
	}
	return KindAddressOnly
}

// Validate checks the record invariants. Identity-defining fields (scheme,
// public key) are fixed at creation; derived fields may still be absent.
func (k *KeyRecord) Validate() error {
	if _, err := ParseScheme(string(k.Scheme)); err != nil {
		return err
	}
	if k.Kind() == KindSigningPair && k.SecretPhrase == "" && k.PrivateKeyHex == "" {
		return fmt.Errorf("signing pair record holds no secret phrase or private key")
	}
	if len(k.ByteArray) != 0 && len(k.ByteArray) != AccountIDSize {
		return fmt.Errorf("account id must be %d bytes, got %d", AccountIDSize, len(k.ByteArray))
	}
	if k.IsMultisig {
		if k.Threshold < 1 {
			return fmt.Errorf("multisig threshold must be at least 1")
		}
		if int(k.Threshold) > len(k.Signers) {
			return fmt.Errorf("multisig threshold %d exceeds signer count %d", k.Threshold, len(k.Signers))
		}
	}
	return nil
}

// Redacted returns a copy safe for display: secret phrase and private key
// material are stripped. Every print path uses this unless the caller
// explicitly asked for secrets.
func (k KeyRecord) Redacted() KeyRecord {
	k.SecretPhrase = ""
	k.MnemonicPhrase = ""
	k.PrivateKeyHex = ""
	return k
}

// Stamp sets created_at. Load re-stamps to load time rather than
// preserving the sealed timestamp; that is the defined behavior, not an
// oversight.
func (k *KeyRecord) Stamp(now time.Time) {
	t := now.UTC()
	k.CreatedAt = &t
}
