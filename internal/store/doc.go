// Package store persists key records as encrypted JSON envelopes.
//
// The on-disk format is the only wire format this tool owns:
//
//	{
//	  "version": 1,
//	  "kdf": "scrypt",
//	  "salt": "<base64>",
//	  "params": {"n": 16384, "r": 8, "p": 1},
//	  "nonce": "<base64>",
//	  "ciphertext": "<base64>"
//	}
//
// plus optional public metadata fields for safe reads without decrypting.
// Concurrent writers to the same path race at the OS level (last writer
// wins); there is no file locking.
package store
