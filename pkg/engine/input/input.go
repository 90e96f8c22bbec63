package input

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// ErrInterrupted is returned when the player presses Ctrl+C in raw mode
var ErrInterrupted = errors.New("input interrupted")

// Reader reads player input from a terminal. It understands arrow keys in
// raw mode and falls back to line input when stdin is not a terminal.
type Reader struct {
	in    *os.File
	out   io.Writer
	lines *bufio.Reader
}

// NewReader creates a reader on stdin, echoing to stdout
func NewReader() *Reader {
	return NewReaderFrom(os.Stdin, os.Stdout)
}

// NewReaderFrom creates a reader on the given file and echo writer
func NewReaderFrom(in *os.File, out io.Writer) *Reader {
	return &Reader{in: in, out: out}
}

// IsTerminal reports whether the reader is attached to an interactive terminal
func (r *Reader) IsTerminal() bool {
	return term.IsTerminal(int(r.in.Fd()))
}

// ReadLine reads a line of input, without the trailing newline
func (r *Reader) ReadLine() (string, error) {
	if r.lines == nil {
		r.lines = bufio.NewReader(r.in)
	}

	line, err := r.lines.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", fmt.Errorf("cannot read stdin: %w", err)
	}

	return strings.TrimRight(line, "\r\n"), nil
}

// readByte reads a single byte in raw mode
func (r *Reader) readByte() (byte, error) {
	buf := make([]byte, 1)
	_, err := r.in.Read(buf)
	return buf[0], err
}

// tryReadArrowKey attempts to read an arrow key escape sequence.
// Returns the arrow code if successful, empty string otherwise.
func (r *Reader) tryReadArrowKey(firstByte byte) string {
	if firstByte != 0x1b {
		return ""
	}

	b2, err := r.readByte()
	if err != nil {
		return ""
	}

	// CSI (ESC [) and SS3 (ESC O) sequences
	if b2 != '[' && b2 != 'O' {
		return ""
	}

	b3, err := r.readByte()
	if err != nil {
		return ""
	}

	switch b3 {
	case 'A':
		return "arrow_up"
	case 'B':
		return "arrow_down"
	case 'C':
		return "arrow_right"
	case 'D':
		return "arrow_left"
	}
	return ""
}

// Read returns the next input code. Arrow keys and single-key bindings
// return immediately; anything else is collected until Enter.
// When stdin is not a terminal it reads whole lines.
func (r *Reader) Read() (string, error) {
	if !r.IsTerminal() {
		return r.ReadLine()
	}

	// Drop any buffered line reader so it does not swallow raw bytes
	r.lines = nil

	fd := int(r.in.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return "", fmt.Errorf("cannot set terminal to raw mode: %w", err)
	}
	defer term.Restore(fd, oldState)

	b1, err := r.readByte()
	if err != nil {
		return "", fmt.Errorf("cannot read stdin: %w", err)
	}

	if arrow := r.tryReadArrowKey(b1); arrow != "" {
		fmt.Fprint(r.out, "\r\n")
		return arrow, nil
	}

	switch {
	case b1 == 3:
		fmt.Fprint(r.out, "\r\n")
		return "", ErrInterrupted
	case b1 == 0x1b:
		return "escape", nil
	case b1 == '\n' || b1 == '\r':
		return "", nil
	}

	// Single keys that are bound to an action fire without Enter
	if IsInstantKey(string(b1)) {
		fmt.Fprint(r.out, "\r\n")
		return string(b1), nil
	}

	var typed []byte
	if b1 >= 32 && b1 < 127 {
		typed = append(typed, b1)
		fmt.Fprint(r.out, string(b1))
	}

	for {
		b, err := r.readByte()
		if err != nil {
			break
		}

		switch {
		case b == 0x1b:
			// Arrow keys pressed while typing are discarded
			r.tryReadArrowKey(b)
		case b == 127 || b == 8:
			if len(typed) > 0 {
				typed = typed[:len(typed)-1]
				fmt.Fprint(r.out, "\b \b")
			}
		case b == '\n' || b == '\r':
			fmt.Fprint(r.out, "\r\n")
			return string(typed), nil
		case b == 3:
			fmt.Fprint(r.out, "\r\n")
			return "", ErrInterrupted
		case b >= 32 && b < 127:
			typed = append(typed, b)
			fmt.Fprint(r.out, string(b))
		}
	}

	return string(typed), nil
}
