// Package password resolves the key-file password from its configured
// sources and implements masked interactive entry.
//
// Precedence is fixed: explicit value > password file > piped stdin >
// interactive prompt. Prompt text goes to stderr only, keeping stdout
// clean for piped JSON.
package password

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"os"

	"keywarden/internal/domain"
)

var (
	// ErrMismatch is returned when the two new-password entries differ.
	ErrMismatch = errors.New("passwords do not match")
	// ErrEmpty rejects an empty password for a new key file.
	ErrEmpty = errors.New("password cannot be empty")
)

// Source describes where the password may come from. A zero Source
// resolves to nil, which callers treat as "prompt interactively".
type Source struct {
	Value  string // explicit --password value
	File   string // file holding the raw password bytes
	Stdin  bool   // read the first line of standard input
	Prompt bool   // ask interactively

	In      io.Reader           // piped input; defaults to os.Stdin
	Secrets domain.SecretReader // interactive entry; required when Prompt is set
}

// ResolveNew obtains a password for sealing a new file. Interactive entry
// asks twice and rejects mismatched or empty input. Returns nil when no
// source is configured.
func (s Source) ResolveNew(prompt, confirm string) ([]byte, error) {
	if pw, done, err := s.resolveNonInteractive(); done || err != nil {
		return pw, err
	}
	if s.Prompt {
		return PromptNew(s.Secrets, prompt, confirm)
	}
	return nil, nil
}

// ResolveExisting obtains a password for unlocking an existing file with a
// single prompt. Returns nil when no source is configured.
func (s Source) ResolveExisting(prompt string) ([]byte, error) {
	if pw, done, err := s.resolveNonInteractive(); done || err != nil {
		return pw, err
	}
	if s.Prompt {
		return s.Secrets.ReadSecret(prompt)
	}
	return nil, nil
}

func (s Source) resolveNonInteractive() (pw []byte, done bool, err error) {
	if s.Value != "" {
		return []byte(s.Value), true, nil
	}
	if s.File != "" {
		raw, err := os.ReadFile(s.File)
		if err != nil {
			return nil, true, err
		}
		return trimEOL(raw), true, nil
	}
	if s.Stdin {
		in := s.In
		if in == nil {
			in = os.Stdin
		}
		line, err := bufio.NewReader(in).ReadBytes('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, true, err
		}
		return trimEOL(line), true, nil
	}
	return nil, false, nil
}

// PromptNew reads a new password twice via r and enforces the match and
// non-empty rules.
func PromptNew(r domain.SecretReader, prompt, confirm string) ([]byte, error) {
	first, err := r.ReadSecret(prompt)
	if err != nil {
		return nil, err
	}
	second, err := r.ReadSecret(confirm)
	if err != nil {
		return nil, err
	}
	if !bytes.Equal(first, second) {
		return nil, ErrMismatch
	}
	if len(first) == 0 {
		return nil, ErrEmpty
	}
	return first, nil
}

func trimEOL(b []byte) []byte {
	return bytes.TrimRight(b, "\r\n")
}
