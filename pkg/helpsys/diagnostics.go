package helpsys

import "fmt"

// DiagnosticKind classifies a problem that was recovered from while collecting help entries
type DiagnosticKind int

const (
	// MalformedLine is a line with the help marker that doesn't split into group, command and description
	MalformedLine DiagnosticKind = iota
	// FileMissing means the input file doesn't exist
	FileMissing
	// ReadFailed covers every other failure to open or read an input file
	ReadFailed
	// PatternUnmatched is a glob pattern that didn't match any file
	PatternUnmatched
)

func (k DiagnosticKind) String() string {
	switch k {
	case MalformedLine:
		return "malformed-line"
	case FileMissing:
		return "file-missing"
	case ReadFailed:
		return "read-failed"
	case PatternUnmatched:
		return "pattern-unmatched"
	}

	return fmt.Sprintf("DiagnosticKind(%d)", int(k))
}

// Diagnostic describes a single skipped line, file or pattern. Diagnostics never stop processing.
type Diagnostic struct {
	Kind DiagnosticKind
	Path string
	// Line is the 1-based line number for MalformedLine and 0 otherwise
	Line int
	Text string
	Err  error
}

var _ error = Diagnostic{}

func (d Diagnostic) Error() string {
	switch d.Kind {
	case MalformedLine:
		return fmt.Sprintf("%s:%d: skipping malformed help line %q (expected \"## <group>:<command>:<description>\")", d.Path, d.Line, d.Text)
	case FileMissing:
		return fmt.Sprintf("%s: file does not exist", d.Path)
	case PatternUnmatched:
		return fmt.Sprintf("%s: pattern did not match any files", d.Path)
	}

	if d.Err != nil {
		return fmt.Sprintf("%s: failed to read file: %s", d.Path, d.Err.Error())
	}
	return fmt.Sprintf("%s: failed to read file", d.Path)
}

func (d Diagnostic) Unwrap() error {
	return d.Err
}

// Result is the outcome of scanning one or more files
type Result struct {
	Table       *Table
	Diagnostics []Diagnostic
}
