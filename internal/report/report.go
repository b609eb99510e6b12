package report

import (
	"fmt"
	"io"
	"os"

	"github.com/fugo-app/nictags/internal/nictag"
	"github.com/fugo-app/nictags/internal/parser"
)

const (
	FormatTable = "table"
	FormatYAML  = "yaml"
)

// Load selects the parser for fname and parses the file.
// Unknown filenames are rejected before the file is opened.
func Load(fname string) (nictag.Table, error) {
	p, err := parser.ForFile(fname)
	if err != nil {
		return nil, err
	}

	file, err := os.Open(fname)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer file.Close()

	return p.Parse(fname, file)
}

// CheckFormat validates an output format name.
func CheckFormat(format string) error {
	switch format {
	case "", FormatTable, FormatYAML:
		return nil
	default:
		return fmt.Errorf("invalid output format '%s'", format)
	}
}

// Write renders the table in the given format.
func Write(w io.Writer, table nictag.Table, format string) error {
	if err := CheckFormat(format); err != nil {
		return err
	}

	if format == FormatYAML {
		return table.WriteYAML(w)
	}

	_, err := table.WriteTo(w)
	return err
}
