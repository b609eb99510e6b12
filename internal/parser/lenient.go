package parser

import (
	"io"
	"strings"

	"github.com/fugo-app/nictags/internal/nictag"
)

const nicSuffix = "_nic"

// Lenient parses a system config file of KEY=VALUE lines and keeps only
// the keys ending with "_nic". Blank lines and lines starting with '#' are
// skipped.
type Lenient struct{}

func (Lenient) Parse(fname string, r io.Reader) (nictag.Table, error) {
	table := make(nictag.Table)

	err := scanLines(r, func(num int, line string) error {
		if strings.TrimSpace(line) == "" || strings.HasPrefix(line, "#") {
			return nil
		}

		key, value, ok := strings.Cut(line, "=")
		if !ok {
			return &InvalidLineError{
				File: fname,
				Line: num,
				Text: line,
			}
		}

		if !strings.HasSuffix(key, nicSuffix) {
			return nil
		}

		table.Add(nictag.New(key, value))
		return nil
	})
	if err != nil {
		return nil, err
	}

	return table, nil
}
