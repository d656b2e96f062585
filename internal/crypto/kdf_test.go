package crypto_test

import (
	"bytes"
	"testing"

	"keywarden/internal/crypto"
)

func TestDeriveKey_Deterministic(t *testing.T) {
	salt := bytes.Repeat([]byte{7}, crypto.SaltSize)

	k1, err := crypto.DeriveKey([]byte("correct-horse"), salt, 1<<10, 8, 1)
	if err != nil {
		t.Fatalf("derive: %v", err)
	}
	k2, err := crypto.DeriveKey([]byte("correct-horse"), salt, 1<<10, 8, 1)
	if err != nil {
		t.Fatalf("derive: %v", err)
	}
	if !bytes.Equal(k1, k2) {
		t.Fatal("same inputs must derive the same key")
	}
	if len(k1) != crypto.KeySize {
		t.Fatalf("key length = %d, want %d", len(k1), crypto.KeySize)
	}
}

func TestDeriveKey_SaltAndParamsMatter(t *testing.T) {
	saltA := bytes.Repeat([]byte{1}, crypto.SaltSize)
	saltB := bytes.Repeat([]byte{2}, crypto.SaltSize)

	k1, _ := crypto.DeriveKey([]byte("pw"), saltA, 1<<10, 8, 1)
	k2, _ := crypto.DeriveKey([]byte("pw"), saltB, 1<<10, 8, 1)
	if bytes.Equal(k1, k2) {
		t.Fatal("different salts must derive different keys")
	}

	k3, _ := crypto.DeriveKey([]byte("pw"), saltA, 1<<11, 8, 1)
	if bytes.Equal(k1, k3) {
		t.Fatal("different cost factors must derive different keys")
	}
}

func TestDeriveKey_UnicodeNormalization(t *testing.T) {
	salt := bytes.Repeat([]byte{9}, crypto.SaltSize)

	// "café" typed composed (U+00E9) and decomposed (e + U+0301).
	composed := []byte("café")
	decomposed := []byte("café")

	k1, err := crypto.DeriveKey(composed, salt, 1<<10, 8, 1)
	if err != nil {
		t.Fatalf("derive: %v", err)
	}
	k2, err := crypto.DeriveKey(decomposed, salt, 1<<10, 8, 1)
	if err != nil {
		t.Fatalf("derive: %v", err)
	}
	if !bytes.Equal(k1, k2) {
		t.Fatal("NFC-equivalent passwords must derive the same key")
	}
}

func TestNormalizePassword_NonUTF8PassesThrough(t *testing.T) {
	raw := []byte{0xff, 0xfe, 0x01}
	if got := crypto.NormalizePassword(raw); !bytes.Equal(got, raw) {
		t.Fatalf("non-UTF-8 password changed: %x", got)
	}
}
