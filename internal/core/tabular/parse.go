package tabular

import (
	"errors"
	"fmt"
)

// ErrUnterminatedQuote is returned when input ends inside a quoted field.
var ErrUnterminatedQuote = errors.New("unterminated quoted field")

// ParseCSV splits text produced by BuildCSV back into records and cell values.
// Quoted fields keep their line breaks byte for byte. Records may end in CRLF or LF.
func ParseCSV(text string) ([][]string, error) {
	if text == "" {
		return nil, nil
	}

	var (
		records [][]string
		record  []string
		field   []byte
		quoted  bool
		line    = 1
	)

	endField := func() {
		record = append(record, string(field))
		field = field[:0]
	}
	endRecord := func() {
		endField()
		records = append(records, record)
		record = nil
	}

	for i := 0; i < len(text); i++ {
		c := text[i]
		if quoted {
			switch {
			case c == '"' && i+1 < len(text) && text[i+1] == '"':
				field = append(field, '"')
				i++
			case c == '"':
				quoted = false
				if i+1 < len(text) && !isDelimiter(text[i+1]) {
					return nil, fmt.Errorf("line %d: unexpected %q after closing quote", line, text[i+1])
				}
			default:
				if c == '\n' {
					line++
				}
				field = append(field, c)
			}
			continue
		}

		switch c {
		case '"':
			if len(field) != 0 {
				return nil, fmt.Errorf("line %d: bare quote in unquoted field", line)
			}
			quoted = true
		case ',':
			endField()
		case '\r':
			if i+1 < len(text) && text[i+1] == '\n' {
				i++
			}
			endRecord()
			line++
		case '\n':
			endRecord()
			line++
		default:
			field = append(field, c)
		}
	}

	if quoted {
		return nil, fmt.Errorf("line %d: %w", line, ErrUnterminatedQuote)
	}
	// A trailing record separator does not open another record.
	last := text[len(text)-1]
	if last != '\n' && last != '\r' {
		endRecord()
	}
	return records, nil
}

func isDelimiter(c byte) bool {
	return c == ',' || c == '\r' || c == '\n'
}
