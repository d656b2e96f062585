// Package ss58 encodes and decodes SS58 addresses for 32-byte account
// identifiers: base58 over prefix ‖ account-id ‖ 2-byte checksum, where the
// checksum is the leading bytes of blake2b-512("SS58PRE" ‖ prefix ‖ id).
//
// Decode failures are reported as an absent result rather than an error so
// callers can treat an undecodable address as "account bytes unavailable"
// and carry on.
package ss58

import (
	"github.com/mr-tron/base58"
	"golang.org/x/crypto/blake2b"

	"keywarden/internal/domain"
)

const (
	checksumPreimage = "SS58PRE"
	checksumSize     = 2

	// DefaultPrefix is the generic Substrate network prefix.
	DefaultPrefix = 42
)

// Encode renders a raw account id as an SS58 address under prefix.
func Encode(accountID [domain.AccountIDSize]byte, prefix byte) string {
	data := make([]byte, 0, 1+domain.AccountIDSize+checksumSize)
	data = append(data, prefix)
	data = append(data, accountID[:]...)
	sum := checksum(data)
	return base58.Encode(append(data, sum[:checksumSize]...))
}

// Decode extracts the raw account id from an SS58 address. ok is false for
// any malformed address: bad base58, unsupported length, or checksum
// mismatch.
func Decode(address string) (accountID [domain.AccountIDSize]byte, ok bool) {
	raw, err := base58.Decode(address)
	if err != nil {
		return accountID, false
	}
	if len(raw) != 1+domain.AccountIDSize+checksumSize {
		return accountID, false
	}
	body := raw[:1+domain.AccountIDSize]
	sum := checksum(body)
	if sum[0] != raw[len(body)] || sum[1] != raw[len(body)+1] {
		return accountID, false
	}
	copy(accountID[:], body[1:])
	return accountID, true
}

func checksum(data []byte) [blake2b.Size]byte {
	h, _ := blake2b.New512(nil)
	h.Write([]byte(checksumPreimage))
	h.Write(data)
	var sum [blake2b.Size]byte
	copy(sum[:], h.Sum(nil))
	return sum
}
