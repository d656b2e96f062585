package store_test

import (
	"encoding/base64"
	"errors"
	"testing"
	"time"

	"keywarden/internal/domain"
	"keywarden/internal/store"
)

func sampleRecord() *domain.KeyRecord {
	return &domain.KeyRecord{
		Scheme:       domain.SchemeSr25519,
		Network:      "substrate",
		SecretPhrase: "bottom drive obey lake curtain smoke basket hold race lonely fit walk",
		PublicKeyHex: "0xd43593c715fdd31c61141abd04a99fd6822c8558854ccde39a5684e7a56da27d",
		SS58Address:  "5GrwvaEF5zXb26Fz9rcQpDWS57CtERHpNehXCPcNoHGKutQY",
		IsPair:       true,
	}
}

func TestEnvelope_Roundtrip(t *testing.T) {
	rec := sampleRecord()
	env, err := store.Seal(rec, []byte("correct-horse"))
	if err != nil {
		t.Fatalf("seal: %v", err)
	}
	if env.Version != store.FormatVersion {
		t.Fatalf("version = %d, want %d", env.Version, store.FormatVersion)
	}
	if env.KDF != "scrypt" {
		t.Fatalf("kdf = %q", env.KDF)
	}

	now := time.Now()
	got, err := env.Open([]byte("correct-horse"), now)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if got.SecretPhrase != rec.SecretPhrase {
		t.Fatalf("secret phrase = %q, want %q", got.SecretPhrase, rec.SecretPhrase)
	}
	if got.SS58Address != rec.SS58Address || got.Scheme != rec.Scheme {
		t.Fatal("public fields lost in roundtrip")
	}
	if got.CreatedAt == nil || !got.CreatedAt.Equal(now.UTC()) {
		t.Fatalf("created_at = %v, want load time", got.CreatedAt)
	}
}

func TestEnvelope_WrongPassword(t *testing.T) {
	env, err := store.Seal(sampleRecord(), []byte("correct-horse"))
	if err != nil {
		t.Fatalf("seal: %v", err)
	}
	if _, err := env.Open([]byte("wrong-horse"), time.Now()); !errors.Is(err, store.ErrDecrypt) {
		t.Fatalf("err = %v, want ErrDecrypt", err)
	}
}

func TestEnvelope_UnsupportedKDF(t *testing.T) {
	env, err := store.Seal(sampleRecord(), []byte("pw"))
	if err != nil {
		t.Fatalf("seal: %v", err)
	}
	env.KDF = "argon2id"
	if _, err := env.Open([]byte("pw"), time.Now()); !errors.Is(err, store.ErrUnsupportedKDF) {
		t.Fatalf("err = %v, want ErrUnsupportedKDF", err)
	}
}

func TestEnvelope_UnsupportedVersion(t *testing.T) {
	env, err := store.Seal(sampleRecord(), []byte("pw"))
	if err != nil {
		t.Fatalf("seal: %v", err)
	}
	env.Version = store.FormatVersion + 1
	if _, err := env.Open([]byte("pw"), time.Now()); !errors.Is(err, store.ErrUnsupportedVersion) {
		t.Fatalf("err = %v, want ErrUnsupportedVersion", err)
	}
}

func TestEnvelope_TamperDetected(t *testing.T) {
	env, err := store.Seal(sampleRecord(), []byte("pw"))
	if err != nil {
		t.Fatalf("seal: %v", err)
	}

	flip := func(b64 string) string {
		raw, err := base64.StdEncoding.DecodeString(b64)
		if err != nil {
			t.Fatalf("fixture decode: %v", err)
		}
		raw[0] ^= 0x01
		return base64.StdEncoding.EncodeToString(raw)
	}

	truncate := func(b64 string) string {
		raw, err := base64.StdEncoding.DecodeString(b64)
		if err != nil {
			t.Fatalf("fixture decode: %v", err)
		}
		return base64.StdEncoding.EncodeToString(raw[:len(raw)/2])
	}

	fields := []struct {
		name   string
		mutate func(*store.Envelope)
	}{
		{"salt", func(e *store.Envelope) { e.Salt = flip(e.Salt) }},
		{"nonce", func(e *store.Envelope) { e.Nonce = flip(e.Nonce) }},
		{"ciphertext", func(e *store.Envelope) { e.Ciphertext = flip(e.Ciphertext) }},
		{"short nonce", func(e *store.Envelope) { e.Nonce = truncate(e.Nonce) }},
		{"empty nonce", func(e *store.Envelope) { e.Nonce = "" }},
	}

	for _, tt := range fields {
		t.Run(tt.name, func(t *testing.T) {
			mangled := *env
			tt.mutate(&mangled)
			if _, err := mangled.Open([]byte("pw"), time.Now()); !errors.Is(err, store.ErrDecrypt) {
				t.Fatalf("err = %v, want ErrDecrypt", err)
			}
		})
	}
}

func TestSeal_FreshSaltAndNonce(t *testing.T) {
	rec := sampleRecord()
	a, err := store.Seal(rec, []byte("pw"))
	if err != nil {
		t.Fatalf("seal: %v", err)
	}
	b, err := store.Seal(rec, []byte("pw"))
	if err != nil {
		t.Fatalf("seal: %v", err)
	}
	if a.Salt == b.Salt {
		t.Fatal("salt reused across seals")
	}
	if a.Nonce == b.Nonce {
		t.Fatal("nonce reused across seals")
	}
}

func TestSeal_PublicMetadataMirrored(t *testing.T) {
	rec := sampleRecord()
	rec.ByteArray = make(domain.HexBytes, domain.AccountIDSize)
	env, err := store.Seal(rec, []byte("pw"))
	if err != nil {
		t.Fatalf("seal: %v", err)
	}
	if env.Scheme != "sr25519" || env.Network != "substrate" {
		t.Fatal("scheme or network not mirrored")
	}
	if env.SS58Address != rec.SS58Address || env.PublicKeyHex != rec.PublicKeyHex {
		t.Fatal("address metadata not mirrored")
	}
	if env.ByteArray == "" {
		t.Fatal("byte array not mirrored")
	}
}

func TestEnvelope_PublicRecord(t *testing.T) {
	env, err := store.Seal(sampleRecord(), []byte("pw"))
	if err != nil {
		t.Fatalf("seal: %v", err)
	}

	rec := env.PublicRecord(time.Now())
	if rec.IsPair {
		t.Fatal("public view must not claim a signing pair")
	}
	if rec.KeyType != "ss58" {
		t.Fatalf("key type = %q", rec.KeyType)
	}
	if rec.SecretPhrase != "" || rec.PrivateKeyHex != "" {
		t.Fatal("public view leaked secret fields")
	}
	// byte_array not mirrored at seal time here; recovered from the address.
	if len(rec.ByteArray) != domain.AccountIDSize {
		t.Fatalf("account id length = %d", len(rec.ByteArray))
	}
}

func TestEnvelope_ZeroParamsDefaulted(t *testing.T) {
	env, err := store.Seal(sampleRecord(), []byte("pw"))
	if err != nil {
		t.Fatalf("seal: %v", err)
	}
	// Envelopes from older writers may omit params entirely.
	env.Params = store.Params{}
	if _, err := env.Open([]byte("pw"), time.Now()); err != nil {
		t.Fatalf("open with defaulted params: %v", err)
	}
}
