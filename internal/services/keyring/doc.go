// Package keyring orchestrates key record creation and persistence: it
// drives the external subkey tool for generation and inspection, enriches
// records with locally derivable fields, and hands finished records to the
// encrypted file store.
package keyring
