package parser

import (
	"io"
	"strings"

	"github.com/fugo-app/nictags/internal/nictag"
)

// CacheFile is where the tag cache lives between reboots.
const CacheFile = "/tmp/.nic-tags"

const cacheHint = "try deleting " + CacheFile + " and running again"

// Strict parses the tag cache written by this program. Every line must be
// exactly NAME=MAC.
type Strict struct{}

func (Strict) Parse(fname string, r io.Reader) (nictag.Table, error) {
	table := make(nictag.Table)

	err := scanLines(r, func(num int, line string) error {
		fields := strings.Split(line, "=")
		if len(fields) != 2 {
			return &InvalidLineError{
				File: fname,
				Line: num,
				Text: line,
				Hint: cacheHint,
			}
		}

		table.Add(nictag.New(fields[0], fields[1]))
		return nil
	})
	if err != nil {
		return nil, err
	}

	return table, nil
}
