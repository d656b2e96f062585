package password_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"keywarden/internal/password"
)

type scriptedSecrets struct {
	answers []string
	err     error
}

func (s *scriptedSecrets) ReadSecret(string) ([]byte, error) {
	if s.err != nil {
		return nil, s.err
	}
	if len(s.answers) == 0 {
		return nil, errors.New("no scripted answer left")
	}
	next := s.answers[0]
	s.answers = s.answers[1:]
	return []byte(next), nil
}

func TestSource_ValueWins(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "pw")
	if err := os.WriteFile(file, []byte("from-file\n"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	src := password.Source{
		Value:   "explicit",
		File:    file,
		Stdin:   true,
		In:      strings.NewReader("from-stdin\n"),
		Prompt:  true,
		Secrets: &scriptedSecrets{answers: []string{"typed"}},
	}
	pw, err := src.ResolveExisting("Password: ")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if string(pw) != "explicit" {
		t.Fatalf("pw = %q, want the explicit value", pw)
	}
}

func TestSource_File(t *testing.T) {
	file := filepath.Join(t.TempDir(), "pw")
	if err := os.WriteFile(file, []byte("secret-pw\r\n"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	pw, err := password.Source{File: file}.ResolveExisting("Password: ")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if string(pw) != "secret-pw" {
		t.Fatalf("pw = %q, want trailing newline stripped", pw)
	}

	if _, err := (password.Source{File: filepath.Join(t.TempDir(), "missing")}).ResolveExisting("Password: "); err == nil {
		t.Fatal("expected error for a missing password file")
	}
}

func TestSource_StdinFirstLine(t *testing.T) {
	src := password.Source{Stdin: true, In: strings.NewReader("line-one\nline-two\n")}
	pw, err := src.ResolveExisting("Password: ")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if string(pw) != "line-one" {
		t.Fatalf("pw = %q, want only the first line", pw)
	}

	// No trailing newline on the final line still resolves.
	src = password.Source{Stdin: true, In: strings.NewReader("bare")}
	pw, err = src.ResolveExisting("Password: ")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if string(pw) != "bare" {
		t.Fatalf("pw = %q", pw)
	}
}

func TestSource_NoSourceResolvesNil(t *testing.T) {
	pw, err := password.Source{}.ResolveExisting("Password: ")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if pw != nil {
		t.Fatalf("pw = %q, want nil for deferred prompting", pw)
	}

	pw, err = password.Source{}.ResolveNew("Set: ", "Confirm: ")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if pw != nil {
		t.Fatalf("pw = %q, want nil", pw)
	}
}

func TestSource_PromptForNewAsksTwice(t *testing.T) {
	src := password.Source{Prompt: true, Secrets: &scriptedSecrets{answers: []string{"pw", "pw"}}}
	pw, err := src.ResolveNew("Set: ", "Confirm: ")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if string(pw) != "pw" {
		t.Fatalf("pw = %q", pw)
	}
}

func TestPromptNew_Mismatch(t *testing.T) {
	_, err := password.PromptNew(&scriptedSecrets{answers: []string{"one", "two"}}, "Set: ", "Confirm: ")
	if !errors.Is(err, password.ErrMismatch) {
		t.Fatalf("err = %v, want ErrMismatch", err)
	}
}

func TestPromptNew_Empty(t *testing.T) {
	_, err := password.PromptNew(&scriptedSecrets{answers: []string{"", ""}}, "Set: ", "Confirm: ")
	if !errors.Is(err, password.ErrEmpty) {
		t.Fatalf("err = %v, want ErrEmpty", err)
	}
}

func TestPromptNew_ReaderErrorPropagates(t *testing.T) {
	_, err := password.PromptNew(&scriptedSecrets{err: password.ErrInterrupted}, "Set: ", "Confirm: ")
	if !errors.Is(err, password.ErrInterrupted) {
		t.Fatalf("err = %v, want ErrInterrupted", err)
	}
}
