// Package commands defines the keywarden CLI and wires dependencies for
// subcommands.
//
// # Commands
//
//   - gen       Generate one keypair via subkey and save it encrypted
//   - gen-all   Generate the Aura + GRANDPA validator pair
//   - inspect   Map a public key to its SS58 address
//   - derive    Derive public material from a phrase or public key
//   - multisig  Compute a deterministic multisig address
//   - save      Encrypt and save a key file (alias: key-save)
//   - load      Decrypt a key file and print it (alias: key-load)
//   - get       Read public key info without decrypting
//   - list      List stored key files
//   - select    Pick a stored key file by index
//
// # Implementation
//
// The root command loads config and builds the dependency graph (secret
// reader, file store, keyring service) before any subcommand runs. JSON
// results go to stdout; prompts and status lines go to stderr so piped
// output stays clean.
package commands
