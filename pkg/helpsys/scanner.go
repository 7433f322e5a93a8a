package helpsys

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/rotisserie/eris"
)

// Scan reads help entries from r. path is only used to label diagnostics.
// Lines may be arbitrarily long. A read error discards everything found so far and is reported as a single
// ReadFailed diagnostic.
func Scan(path string, r io.Reader) Result {
	table := NewTable()
	diags := make([]Diagnostic, 0)
	reader := bufio.NewReader(r)

	lineNo := 0
	for {
		line, err := reader.ReadString('\n')
		if len(line) > 0 {
			lineNo++
			line = strings.TrimRight(line, "\r\n")

			group, entry, ok, parseErr := ParseLine(line)
			if parseErr != nil {
				diags = append(diags, Diagnostic{
					Kind: MalformedLine,
					Path: path,
					Line: lineNo,
					Text: line,
					Err:  parseErr,
				})
			} else if ok {
				table.Add(group, entry)
			}
		}

		if err == io.EOF {
			break
		}
		if err != nil {
			return Result{
				Table: NewTable(),
				Diagnostics: []Diagnostic{{
					Kind: ReadFailed,
					Path: path,
					Err:  err,
				}},
			}
		}
	}

	return Result{Table: table, Diagnostics: diags}
}

// ScanFile opens path and scans it. Missing or unreadable files produce an empty table and one diagnostic.
func ScanFile(path string) Result {
	handle, err := os.Open(path)
	if err != nil {
		kind := ReadFailed
		if eris.Is(err, os.ErrNotExist) {
			kind = FileMissing
		}

		return Result{
			Table:       NewTable(),
			Diagnostics: []Diagnostic{{Kind: kind, Path: path, Err: err}},
		}
	}
	defer handle.Close()

	return Scan(path, handle)
}
