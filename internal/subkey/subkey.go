// Package subkey invokes the external Substrate subkey binary and parses
// its human-readable output. It is the only source of new key material in
// keywarden; a missing binary is a fatal precondition, reported distinctly
// from cryptographic failures.
package subkey

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"keywarden/internal/domain"
)

// ErrNotFound means the subkey binary is not on PATH.
var ErrNotFound = errors.New("'subkey' not found on PATH; install the Substrate subkey tool")

// CLI runs the real subkey binary.
type CLI struct {
	path string
}

// New locates subkey on PATH immediately.
func New() (*CLI, error) {
	path, err := exec.LookPath("subkey")
	if err != nil {
		return nil, ErrNotFound
	}
	return &CLI{path: path}, nil
}

// Default returns a CLI that locates the binary on first use, so commands
// that never touch subkey work without it installed.
func Default() *CLI { return &CLI{} }

// Generate creates a fresh keypair.
func (c *CLI) Generate(ctx context.Context, scheme domain.Scheme, network string) (domain.ToolOutput, error) {
	return c.run(ctx, "generate", "--scheme", string(scheme), "--network", network)
}

// InspectPhrase derives public material from a secret phrase (or SURI).
func (c *CLI) InspectPhrase(ctx context.Context, phrase string, scheme domain.Scheme, network string) (domain.ToolOutput, error) {
	return c.run(ctx, "inspect", "--scheme", string(scheme), "--network", network, phrase)
}

// InspectPublic maps a 0x public key hex to its SS58 address.
func (c *CLI) InspectPublic(ctx context.Context, publicHex string, scheme domain.Scheme, network string) (domain.ToolOutput, error) {
	return c.run(ctx, "inspect", "--network", network, "--public", "--scheme", string(scheme), publicHex)
}

func (c *CLI) run(ctx context.Context, args ...string) (domain.ToolOutput, error) {
	if c.path == "" {
		path, err := exec.LookPath("subkey")
		if err != nil {
			return domain.ToolOutput{}, ErrNotFound
		}
		c.path = path
	}
	cmd := exec.CommandContext(ctx, c.path, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return domain.ToolOutput{}, fmt.Errorf("subkey %s failed: %v: %s", args[0], err, strings.TrimSpace(stderr.String()))
	}
	return Parse(stdout.String()), nil
}

// Parse extracts the labeled fields from subkey generate/inspect output.
// Unknown lines are ignored; absent fields stay empty.
func Parse(output string) domain.ToolOutput {
	var out domain.ToolOutput
	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimSpace(line)
		lower := strings.ToLower(line)
		switch {
		case strings.HasPrefix(lower, "secret phrase"):
			out.SecretPhrase = fieldValue(line)
		case strings.HasPrefix(lower, "secret seed"):
			out.SecretSeed = fieldValue(line)
		case strings.HasPrefix(lower, "public key (hex)"):
			out.PublicKeyHex = fieldValue(line)
		case strings.HasPrefix(lower, "ss58 address"):
			out.SS58Address = fieldValue(line)
		}
	}
	return out
}

func fieldValue(line string) string {
	_, value, found := strings.Cut(line, ":")
	if !found {
		return ""
	}
	return strings.TrimSpace(value)
}

var _ domain.KeyTool = (*CLI)(nil)
