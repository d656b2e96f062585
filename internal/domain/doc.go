// Package domain holds the key record model and the interfaces that bound
// keywarden's external collaborators (the subkey tool and secret entry).
//
// A KeyRecord is one cryptographic identity: a signing pair (secret phrase
// and/or private key present) or an address-only record, optionally tagged
// as a multisig group. Variants are distinguished by data shape, not
// subtypes; Validate enforces the per-shape required fields.
package domain
