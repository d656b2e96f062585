// Package multisig derives deterministic pallet-multisig account
// identifiers. The construction must match the runtime byte for byte:
//
//	account_id = blake2b_256("modlpy/utilisig" ‖ sorted signer ids ‖ threshold as u16 LE)
//
// Signer account ids are sorted lexicographically after SS58 decoding, so
// any permutation of the same signer set derives the same address.
package multisig

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"sort"

	"golang.org/x/crypto/blake2b"

	"keywarden/internal/domain"
	"keywarden/internal/ss58"
)

// accountTag is the pallet-multisig domain separator (15 ASCII bytes).
const accountTag = "modlpy/utilisig"

// Address is a derived multisig account: the raw 32-byte id and its SS58
// form under the requested network prefix. It is a value, never persisted.
type Address struct {
	AccountID [domain.AccountIDSize]byte
	SS58      string
}

// Derive computes the multisig account for threshold-of-signers under
// prefix. Validation runs before any hashing: every signer must decode and
// the threshold must satisfy 1 <= threshold <= len(signers).
func Derive(signers []string, threshold uint16, prefix byte) (Address, error) {
	if len(signers) == 0 {
		return Address{}, fmt.Errorf("at least one signer address is required")
	}
	if threshold < 1 {
		return Address{}, fmt.Errorf("threshold must be at least 1")
	}
	if int(threshold) > len(signers) {
		return Address{}, fmt.Errorf("threshold %d exceeds signer count %d", threshold, len(signers))
	}

	ids := make([][domain.AccountIDSize]byte, len(signers))
	for i, s := range signers {
		id, ok := ss58.Decode(s)
		if !ok {
			return Address{}, fmt.Errorf("invalid signer address %q", s)
		}
		ids[i] = id
	}
	// Sort the raw account ids, not the address strings: the pallet sorts
	// after decoding.
	sort.Slice(ids, func(i, j int) bool { return bytes.Compare(ids[i][:], ids[j][:]) < 0 })

	h, err := blake2b.New256(nil)
	if err != nil {
		return Address{}, err
	}
	h.Write([]byte(accountTag))
	for i := range ids {
		h.Write(ids[i][:])
	}
	var le [2]byte
	binary.LittleEndian.PutUint16(le[:], threshold)
	h.Write(le[:])

	var out Address
	copy(out.AccountID[:], h.Sum(nil))
	out.SS58 = ss58.Encode(out.AccountID, prefix)
	return out, nil
}
