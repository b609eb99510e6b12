package parser

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fugo-app/nictags/internal/nictag"
)

// ErrUnknownFile is returned for a filename without an assigned parser.
var ErrUnknownFile = errors.New("unknown file")

// Parser turns the contents of a tag file into a table.
// fname is only used in diagnostics.
type Parser interface {
	Parse(fname string, r io.Reader) (nictag.Table, error)
}

var parsers = map[string]Parser{
	"tags.txt":         Strict{},
	"usb-datadyne.txt": Lenient{},
	"usb-portal.txt":   Lenient{},
}

// ForFile selects a parser by exact filename.
func ForFile(fname string) (Parser, error) {
	if p, ok := parsers[fname]; ok {
		return p, nil
	}

	return nil, fmt.Errorf("%w: %s", ErrUnknownFile, fname)
}

// InvalidLineError reports a line that does not match the file grammar.
type InvalidLineError struct {
	File string
	Line int
	Text string
	// Hint is an optional advice for the user, printed after the error.
	Hint string
}

func (e *InvalidLineError) Error() string {
	return fmt.Sprintf("file %s line %d invalid: '%s'", e.File, e.Line, e.Text)
}

// scanLines calls fn for every line with its 1-based number. The newline
// and a trailing '\r' are removed; a last line without a newline is kept.
func scanLines(r io.Reader, fn func(num int, line string) error) error {
	reader := bufio.NewReader(r)

	num := 0
	for {
		line, err := reader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("read line %d: %w", num+1, err)
		}

		if line == "" && err != nil {
			return nil
		}

		num++
		line = strings.TrimSuffix(line, "\n")
		line = strings.TrimSuffix(line, "\r")

		if ferr := fn(num, line); ferr != nil {
			return ferr
		}

		if err != nil {
			return nil
		}
	}
}
