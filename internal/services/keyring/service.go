package keyring

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/tyler-smith/go-bip39"

	"keywarden/internal/domain"
	"keywarden/internal/ss58"
	"keywarden/internal/store"
)

var (
	// ErrNoDerivationSource means the record holds neither a secret phrase
	// nor a public key to derive from.
	ErrNoDerivationSource = errors.New("no data available to derive from; provide a secret phrase or public key")
	// ErrInvalidMnemonic rejects a malformed BIP-39 phrase before it ever
	// reaches the external tool.
	ErrInvalidMnemonic = errors.New("invalid mnemonic phrase")
)

// Service builds, derives and persists key records. Generation and
// phrase/public inspection go through the external subkey tool; address
// decoding is local.
type Service struct {
	tool  domain.KeyTool
	store *store.FileStore
}

// New returns a keyring service using tool for key material and st for
// encrypted persistence.
func New(tool domain.KeyTool, st *store.FileStore) *Service {
	return &Service{tool: tool, store: st}
}

// Store exposes the backing file store.
func (s *Service) Store() *store.FileStore { return s.store }

// Generate creates a fresh signing pair via the external tool.
func (s *Service) Generate(ctx context.Context, scheme domain.Scheme, network string) (*domain.KeyRecord, error) {
	out, err := s.tool.Generate(ctx, scheme, network)
	if err != nil {
		return nil, err
	}
	rec := pairRecord(out, scheme, network)
	rec.SecretPhrase = out.SecretPhrase
	return rec, nil
}

// FromPhrase derives a signing pair record from a secret phrase. Plain
// BIP-39 phrases (no derivation path) are sanity-checked locally first.
func (s *Service) FromPhrase(ctx context.Context, phrase string, scheme domain.Scheme, network string) (*domain.KeyRecord, error) {
	if phrase == "" {
		return nil, ErrNoDerivationSource
	}
	if looksLikeMnemonic(phrase) && !bip39.IsMnemonicValid(phrase) {
		return nil, ErrInvalidMnemonic
	}
	out, err := s.tool.InspectPhrase(ctx, phrase, scheme, network)
	if err != nil {
		return nil, err
	}
	rec := pairRecord(out, scheme, network)
	rec.SecretPhrase = phrase
	return rec, nil
}

// FromPublic builds an address-only record from a 0x public key hex.
func (s *Service) FromPublic(ctx context.Context, publicHex string, scheme domain.Scheme, network string) (*domain.KeyRecord, error) {
	if publicHex == "" {
		return nil, ErrNoDerivationSource
	}
	out, err := s.tool.InspectPublic(ctx, publicHex, scheme, network)
	if err != nil {
		return nil, err
	}
	rec := &domain.KeyRecord{
		Scheme:       scheme,
		Network:      network,
		PublicKeyHex: publicHex,
		SS58Address:  out.SS58Address,
		KeyType:      string(scheme),
		IsPair:       false,
	}
	if id, ok := ss58.Decode(out.SS58Address); ok {
		rec.ByteArray = id[:]
		rec.KeyType = "ss58"
	}
	rec.Stamp(time.Now())
	return rec, nil
}

// Enrich fills derivable fields that are still absent: address, raw
// account bytes and private key hex from the secret phrase, or account
// bytes from the address alone. Identity fields are never overwritten.
func (s *Service) Enrich(ctx context.Context, rec *domain.KeyRecord) error {
	if rec.SecretPhrase != "" && (rec.PublicKeyHex == "" || rec.SS58Address == "" || rec.PrivateKeyHex == "" || len(rec.ByteArray) == 0) {
		out, err := s.tool.InspectPhrase(ctx, rec.SecretPhrase, rec.Scheme, rec.Network)
		if err != nil {
			return err
		}
		if rec.PublicKeyHex == "" {
			rec.PublicKeyHex = out.PublicKeyHex
		}
		if rec.SS58Address == "" {
			rec.SS58Address = out.SS58Address
		}
		if rec.PrivateKeyHex == "" {
			rec.PrivateKeyHex = out.SecretSeed
		}
	}
	if len(rec.ByteArray) == 0 && rec.SS58Address != "" {
		if id, ok := ss58.Decode(rec.SS58Address); ok {
			rec.ByteArray = id[:]
		}
	}
	if rec.PublicKeyHex == "" && rec.SS58Address == "" {
		return ErrNoDerivationSource
	}
	return nil
}

// Save enriches best-effort and writes the record encrypted to path. The
// enrichment error is deliberately discarded: a failed derivation must
// never block persisting what the caller already has.
func (s *Service) Save(ctx context.Context, rec *domain.KeyRecord, path string, pw []byte) error {
	_ = s.Enrich(ctx, rec) // best-effort; errors intentionally ignored
	return s.store.Save(rec, path, pw)
}

// Load decrypts the record at path.
func (s *Service) Load(path string, pw []byte) (*domain.KeyRecord, error) {
	return s.store.Load(path, pw)
}

func pairRecord(out domain.ToolOutput, scheme domain.Scheme, network string) *domain.KeyRecord {
	rec := &domain.KeyRecord{
		Scheme:        scheme,
		Network:       network,
		PublicKeyHex:  out.PublicKeyHex,
		PrivateKeyHex: out.SecretSeed,
		SS58Address:   out.SS58Address,
		KeyType:       string(scheme),
		IsPair:        true,
	}
	if id, ok := ss58.Decode(out.SS58Address); ok {
		rec.ByteArray = id[:]
	}
	rec.Stamp(time.Now())
	return rec
}

// looksLikeMnemonic reports whether phrase is a bare word list rather than
// a SURI with derivation junctions or a dev shorthand like //Alice.
func looksLikeMnemonic(phrase string) bool {
	if strings.Contains(phrase, "/") {
		return false
	}
	n := len(strings.Fields(phrase))
	return n >= 12 && n%3 == 0
}
