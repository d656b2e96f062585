package password

import (
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"keywarden/internal/domain"
)

// ErrInterrupted is returned when the user hits Ctrl-C during secret
// entry. Callers abort the whole operation, not just the prompt.
var ErrInterrupted = errors.New("interrupted")

// TerminalReader reads a secret from a terminal in raw mode: no echo, raw
// bytes rather than locale-dependent line input, backspace editing, and
// Ctrl-C as cancellation.
type TerminalReader struct {
	In  *os.File  // terminal input; defaults to os.Stdin
	Err io.Writer // prompt output; defaults to os.Stderr
}

// NewTerminalReader returns a reader bound to the process terminal.
func NewTerminalReader() *TerminalReader {
	return &TerminalReader{In: os.Stdin, Err: os.Stderr}
}

// ReadSecret prompts on stderr and reads one secret line without echo.
func (t *TerminalReader) ReadSecret(prompt string) ([]byte, error) {
	in, errOut := t.In, t.Err
	if in == nil {
		in = os.Stdin
	}
	if errOut == nil {
		errOut = os.Stderr
	}

	fmt.Fprint(errOut, prompt)
	fd := int(in.Fd())
	state, err := term.MakeRaw(fd)
	if err != nil {
		return nil, fmt.Errorf("raw terminal mode: %w", err)
	}
	defer term.Restore(fd, state)

	var buf []byte
	one := make([]byte, 1)
	for {
		n, err := in.Read(one)
		if err != nil {
			if errors.Is(err, io.EOF) {
				fmt.Fprint(errOut, "\r\n")
				return buf, nil
			}
			return nil, err
		}
		if n == 0 {
			fmt.Fprint(errOut, "\r\n")
			return buf, nil
		}
		switch b := one[0]; b {
		case '\r', '\n':
			fmt.Fprint(errOut, "\r\n")
			return buf, nil
		case 0x03: // Ctrl-C
			fmt.Fprint(errOut, "\r\n")
			return nil, ErrInterrupted
		case 0x08, 0x7f: // backspace / delete
			if len(buf) > 0 {
				buf = buf[:len(buf)-1]
			}
		default:
			buf = append(buf, b)
		}
	}
}

var _ domain.SecretReader = (*TerminalReader)(nil)
