package jsonclean

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/transform"
)

// ErrBinaryMode is returned when a Reader is constructed with a binary access
// mode. The wrapper is text-only.
var ErrBinaryMode = errors.New("binary mode not supported")

// DefaultEncoding is the charset assumed when none is given.
const DefaultEncoding = "utf-8"

// Reader is a line-oriented file reader that surfaces comment-stripped
// content. Lines that are entirely comments are never surfaced, and trailing
// comments are removed from the lines that are. It is not safe for concurrent
// use.
type Reader struct {
	name    string
	mode    string
	charset string
	enc     encoding.Encoding // nil when the charset is UTF-8

	file   *os.File
	br     *bufio.Reader
	closed bool

	// iteration state for Scan/Text/Err
	line string
	err  error
}

// Open opens the file at name for cleaned line reading with mode "r" and the
// default encoding.
func Open(name string) (*Reader, error) {
	return OpenFile(name, "r", DefaultEncoding)
}

// OpenFile is like Open but with an explicit access mode and IANA charset
// name. Binary modes (any mode containing 'b') and unknown charsets are
// rejected before the file is touched.
func OpenFile(name, mode, charset string) (*Reader, error) {
	if mode == "" {
		mode = "r"
	}
	if strings.ContainsRune(mode, 'b') {
		return nil, fmt.Errorf("mode %q: %w", mode, ErrBinaryMode)
	}
	if charset == "" {
		charset = DefaultEncoding
	}

	r := &Reader{name: name, mode: mode, charset: charset, closed: true}

	if !isUTF8(charset) {
		enc, err := ianaindex.IANA.Encoding(charset)
		if err != nil {
			return nil, fmt.Errorf("unsupported encoding %q: %w", charset, err)
		}
		if enc == nil {
			return nil, fmt.Errorf("unsupported encoding %q", charset)
		}
		r.enc = enc
	}

	if err := r.open(); err != nil {
		return nil, err
	}
	return r, nil
}

func isUTF8(charset string) bool {
	return strings.EqualFold(charset, "utf-8") || strings.EqualFold(charset, "utf8")
}

// open acquires a fresh underlying file from the original path and resets
// read position to the start.
func (r *Reader) open() error {
	f, err := os.Open(r.name)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", r.name, err)
	}

	var src io.Reader = f
	if r.enc != nil {
		src = transform.NewReader(f, r.enc.NewDecoder())
	}

	r.file = f
	r.br = bufio.NewReader(src)
	r.closed = false
	return nil
}

// Close releases the underlying file. Closing an already-closed Reader is a
// no-op.
func (r *Reader) Close() error {
	if r.closed {
		return nil
	}
	err := r.file.Close()
	r.file = nil
	r.br = nil
	r.closed = true
	if err != nil {
		return fmt.Errorf("failed to close %s: %w", r.name, err)
	}
	return nil
}

// ReadLine returns the next cleaned line with its terminator retained.
// Whole-line comments are skipped and never surfaced, not even as empty
// strings. ok is false once the file is exhausted; exhaustion is not an
// error. Reading from a closed Reader is an error — only Scan and With
// reopen.
func (r *Reader) ReadLine() (line string, ok bool, err error) {
	if r.closed {
		return "", false, fmt.Errorf("%s: %w", r.name, os.ErrClosed)
	}

	for {
		raw, rerr := r.br.ReadString('\n')
		if raw != "" {
			content := strings.TrimSuffix(raw, "\n")
			if !wholeLineComment(content) {
				return cleanLine(content) + raw[len(content):], true, nil
			}
		}
		if rerr != nil {
			if errors.Is(rerr, io.EOF) {
				return "", false, nil
			}
			return "", false, fmt.Errorf("failed to read %s: %w", r.name, rerr)
		}
	}
}

// ReadAll returns the rest of the file as one string: every cleaned line in
// order, each keeping its own terminator, joined with no separator.
func (r *Reader) ReadAll() (string, error) {
	var all strings.Builder
	for {
		line, ok, err := r.ReadLine()
		if err != nil {
			return "", err
		}
		if !ok {
			return all.String(), nil
		}
		all.WriteString(line)
	}
}

// ReadAllLines returns the remaining cleaned lines in order.
func (r *Reader) ReadAllLines() ([]string, error) {
	var lines []string
	for {
		line, ok, err := r.ReadLine()
		if err != nil {
			return nil, err
		}
		if !ok {
			return lines, nil
		}
		lines = append(lines, line)
	}
}

// Scan advances to the next cleaned line, making it available via Text. It
// returns false at end of input or on error; exhausting the input closes the
// file. Calling Scan on a closed Reader reopens the file from the start, so a
// second pass yields the same sequence as the first.
func (r *Reader) Scan() bool {
	if r.closed {
		if err := r.open(); err != nil {
			r.err = err
			return false
		}
		r.err = nil
	}

	line, ok, err := r.ReadLine()
	if err != nil {
		r.err = err
		return false
	}
	if !ok {
		// End of iteration releases the file; Err stays nil
		if err := r.Close(); err != nil {
			r.err = err
		}
		return false
	}

	r.line = line
	return true
}

// Text returns the line produced by the last successful Scan.
func (r *Reader) Text() string {
	return r.line
}

// Err returns the first error hit by Scan. Normal exhaustion is not an error.
func (r *Reader) Err() error {
	return r.err
}

// With runs fn against the Reader, reopening it first if it was closed, and
// closes it again on every return path, including a panic inside fn.
func (r *Reader) With(fn func(*Reader) error) (err error) {
	if r.closed {
		if oerr := r.open(); oerr != nil {
			return oerr
		}
	}
	defer func() {
		cerr := r.Close()
		if err == nil {
			err = cerr
		}
	}()
	return fn(r)
}

// Name returns the path the Reader was opened from.
func (r *Reader) Name() string { return r.name }

// Mode returns the access mode requested at construction.
func (r *Reader) Mode() string { return r.mode }

// Encoding returns the charset name requested at construction.
func (r *Reader) Encoding() string { return r.charset }

// Closed reports whether the underlying file is currently released.
func (r *Reader) Closed() bool { return r.closed }
