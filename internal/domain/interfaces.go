package domain

import "context"

// SecretReader obtains a secret from the user without echoing it. The
// cryptographic core never touches a terminal directly; tests supply a
// canned implementation.
type SecretReader interface {
	ReadSecret(prompt string) ([]byte, error)
}

// ToolOutput carries the four labeled fields parsed from subkey's stdout.
type ToolOutput struct {
	SecretPhrase string
	SecretSeed   string
	PublicKeyHex string
	SS58Address  string
}

// KeyTool is the external key-generation/inspection tool boundary. It is
// the sole source of new key material; everything behind it is a
// subprocess invocation.
type KeyTool interface {
	Generate(ctx context.Context, scheme Scheme, network string) (ToolOutput, error)
	InspectPhrase(ctx context.Context, phrase string, scheme Scheme, network string) (ToolOutput, error)
	InspectPublic(ctx context.Context, publicHex string, scheme Scheme, network string) (ToolOutput, error)
}
