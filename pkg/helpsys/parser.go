package helpsys

import (
	"strings"

	"github.com/rotisserie/eris"
)

// Marker starts every help line
const Marker = "## "

// ErrMalformedLine is returned by ParseLine for marked lines without exactly three non-empty fields
var ErrMalformedLine = eris.New("malformed help line")

// ParseLine checks whether line is a help line and splits it into its fields.
// Lines without the marker return ok == false and a nil error. Marked lines that can't be split return ok == false
// and an error wrapping ErrMalformedLine.
func ParseLine(line string) (group string, entry Entry, ok bool, err error) {
	line = strings.TrimSpace(line)
	if !strings.HasPrefix(line, Marker) {
		return "", Entry{}, false, nil
	}

	// only the first two colons separate fields, descriptions may contain more
	parts := strings.SplitN(line[len(Marker):], ":", 3)
	if len(parts) != 3 {
		return "", Entry{}, false, eris.Wrapf(ErrMalformedLine, "expected 3 fields but found %d", len(parts))
	}

	for idx := range parts {
		parts[idx] = strings.TrimSpace(parts[idx])
		if parts[idx] == "" {
			return "", Entry{}, false, eris.Wrapf(ErrMalformedLine, "field %d is empty", idx+1)
		}
	}

	return parts[0], Entry{Command: parts[1], Description: parts[2]}, true, nil
}
