package source

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/rpggio/pairwork/internal/domain/assignment"
)

// DefaultSeparator splits assignment fields.
const DefaultSeparator = ','

const maxLineBytes = 1 << 20

// CSV reads assignment rows from delimited text.
// Spaces following a separator are ignored and blank lines are skipped.
// Rows may carry any number of fields; validation decides what is usable.
type CSV struct {
	open      func() (io.ReadCloser, error)
	separator rune
}

// NewCSVFile creates a source that reads the file at path on every call to Rows.
func NewCSVFile(path string, separator rune) *CSV {
	return &CSV{
		open: func() (io.ReadCloser, error) {
			return os.Open(path)
		},
		separator: separator,
	}
}

// NewCSVText creates a source over in-memory text.
func NewCSVText(text string, separator rune) *CSV {
	return &CSV{
		open: func() (io.ReadCloser, error) {
			return io.NopCloser(strings.NewReader(text)), nil
		},
		separator: separator,
	}
}

// ParseSeparator converts a configured separator string into a rune.
// An empty value selects DefaultSeparator.
func ParseSeparator(s string) (rune, error) {
	if s == "" {
		return DefaultSeparator, nil
	}
	if s == `\t` {
		return '\t', nil
	}
	r, size := utf8.DecodeRuneInString(s)
	if size != len(s) || !validSeparator(r) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidSeparator, s)
	}
	return r, nil
}

// Rows reads the whole input into memory.
// Each physical line is one row. Quotes carry no meaning, so a stray quote
// stays inside its field instead of running into the following lines.
func (c *CSV) Rows(ctx context.Context) ([]assignment.RawRow, error) {
	sep := c.separator
	if sep == 0 {
		sep = DefaultSeparator
	}
	if !validSeparator(sep) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidSeparator, sep)
	}

	rc, err := c.open()
	if err != nil {
		return nil, fmt.Errorf("open csv: %w", err)
	}
	defer rc.Close()

	scanner := bufio.NewScanner(rc)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	var rows []assignment.RawRow
	line := 0
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		line++
		text := strings.TrimSuffix(scanner.Text(), "\r")
		if strings.TrimSpace(text) == "" {
			continue
		}
		rows = append(rows, assignment.RawRow{Line: line, Fields: splitFields(text, sep)})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	return rows, nil
}

// splitFields drops whitespace that follows a separator. Whitespace before
// the first field is kept.
func splitFields(text string, sep rune) []string {
	fields := strings.Split(text, string(sep))
	for i := 1; i < len(fields); i++ {
		fields[i] = strings.TrimLeftFunc(fields[i], unicode.IsSpace)
	}
	return fields
}

func validSeparator(r rune) bool {
	return r != 0 && r != '"' && r != '\r' && r != '\n' && r != utf8.RuneError
}
