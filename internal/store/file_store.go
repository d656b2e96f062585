package store

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"keywarden/internal/domain"
	"keywarden/internal/password"
	"keywarden/internal/ss58"
)

const keyFileExt = ".json"

// FileStore owns the encrypted key file lifecycle under a base directory.
// The base path is passed in, never read from process-global state, so
// tests can redirect storage freely.
type FileStore struct {
	dir     string
	secrets domain.SecretReader
}

// NewFileStore returns a store rooted at dir. secrets is consulted only
// when a caller saves or loads without supplying a password.
func NewFileStore(dir string, secrets domain.SecretReader) *FileStore {
	return &FileStore{dir: dir, secrets: secrets}
}

// Dir returns the base directory.
func (s *FileStore) Dir() string { return s.dir }

// Resolve maps a bare name to a file under the base directory, appending
// .json when absent. Absolute paths and anything containing a separator
// pass through unchanged.
func (s *FileStore) Resolve(nameOrPath string) string {
	if filepath.IsAbs(nameOrPath) || strings.ContainsRune(nameOrPath, os.PathSeparator) {
		return nameOrPath
	}
	if !strings.HasSuffix(nameOrPath, keyFileExt) {
		nameOrPath += keyFileExt
	}
	return filepath.Join(s.dir, nameOrPath)
}

// DefaultPath returns a timestamp-prefixed path under the base directory,
// optionally tagged with a role hint such as "aura" or "grandpa".
func (s *FileStore) DefaultPath(scheme domain.Scheme, roleHint string) string {
	stamp := time.Now().UTC().Format("20060102-150405")
	name := fmt.Sprintf("%s-%s%s", stamp, scheme, keyFileExt)
	if roleHint != "" {
		name = fmt.Sprintf("%s-%s-%s%s", stamp, roleHint, scheme, keyFileExt)
	}
	return filepath.Join(s.dir, name)
}

// Save validates, seals and writes rec to path as an indented JSON
// envelope. A nil password triggers the dual interactive prompt. The
// envelope is fully constructed in memory before any file write, so a
// failed save never leaves a partial file.
func (s *FileStore) Save(rec *domain.KeyRecord, path string, pw []byte) error {
	if err := rec.Validate(); err != nil {
		return err
	}
	// When both identifiers are present they must agree; writing a record
	// whose raw account bytes contradict its address would be unrecoverable.
	if rec.SS58Address != "" && len(rec.ByteArray) == domain.AccountIDSize {
		if id, ok := ss58.Decode(rec.SS58Address); ok && !bytes.Equal(id[:], rec.ByteArray) {
			return fmt.Errorf("account id does not match ss58 address %s", rec.SS58Address)
		}
	}
	if pw == nil {
		var err error
		pw, err = password.PromptNew(s.secrets, "Set password for key file: ", "Confirm password: ")
		if err != nil {
			return err
		}
	}
	env, err := Seal(rec, pw)
	if err != nil {
		return err
	}
	blob, err := json.MarshalIndent(env, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return err
	}
	return os.WriteFile(path, blob, 0o600)
}

// Load reads and decrypts the envelope at path. A nil password triggers a
// single interactive prompt. Decryption errors propagate unchanged.
func (s *FileStore) Load(path string, pw []byte) (*domain.KeyRecord, error) {
	env, err := s.ReadEnvelope(path)
	if err != nil {
		return nil, err
	}
	if pw == nil {
		pw, err = s.secrets.ReadSecret("Password for key file: ")
		if err != nil {
			return nil, err
		}
	}
	return env.Open(pw, time.Now())
}

// ReadEnvelope parses the envelope at path without decrypting it.
func (s *FileStore) ReadEnvelope(path string) (*Envelope, error) {
	blob, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var env Envelope
	if err := json.Unmarshal(blob, &env); err != nil {
		return nil, fmt.Errorf("parse envelope %s: %w", path, err)
	}
	return &env, nil
}

// Entry describes one stored key file.
type Entry struct {
	Path     string
	Name     string
	Modified time.Time
}

// List returns the key files under the base directory, most recently
// modified first. A missing directory lists as empty.
func (s *FileStore) List() ([]Entry, error) {
	dirents, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	var entries []Entry
	for _, d := range dirents {
		if d.IsDir() || !strings.HasSuffix(d.Name(), keyFileExt) {
			continue
		}
		info, err := d.Info()
		if err != nil {
			continue
		}
		entries = append(entries, Entry{
			Path:     filepath.Join(s.dir, d.Name()),
			Name:     d.Name(),
			Modified: info.ModTime(),
		})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Modified.After(entries[j].Modified) })
	return entries, nil
}
