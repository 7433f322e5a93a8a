package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/mitchellh/colorstring"
	"github.com/rotisserie/eris"
)

// ConsoleWriter renders zerolog's JSON events as short colored lines
type ConsoleWriter struct {
	out     io.Writer
	colors  colorstring.Colorize
	verbose bool
	buffer  strings.Builder
	lock    sync.Mutex
}

// NewConsoleWriter returns a writer printing to out. plain disables colors, verbose appends every event field.
func NewConsoleWriter(out io.Writer, plain, verbose bool) *ConsoleWriter {
	return &ConsoleWriter{
		out: out,
		colors: colorstring.Colorize{
			Colors:  colorstring.DefaultColors,
			Disable: plain,
		},
		verbose: verbose,
	}
}

func levelColor(level interface{}) string {
	switch level {
	case "fatal":
		fallthrough
	case "error":
		return "[red]"
	case "warn":
		return "[yellow]"
	case "debug":
		fallthrough
	case "trace":
		return "[blue]"
	default:
		return "[green]"
	}
}

func (w *ConsoleWriter) Write(p []byte) (n int, err error) {
	w.lock.Lock()
	defer w.lock.Unlock()

	var evt map[string]interface{}
	d := json.NewDecoder(bytes.NewReader(p))
	d.UseNumber()
	err = d.Decode(&evt)
	if err != nil {
		return n, eris.Wrapf(err, "cannot decode event: %s", p)
	}

	// markup is only expanded for our own color codes, messages may contain brackets from Makefiles
	w.buffer.Reset()
	w.buffer.WriteString(w.colors.Color(levelColor(evt["level"])))

	if evt["level"] == "error" {
		w.buffer.WriteString("Error: ")
	}

	msg, _ := evt["message"].(string)

	path, ok := evt["path"].(string)
	if ok {
		// simplify the path
		relPath, err := filepath.Rel(".", path)
		if err == nil && relPath != path {
			msg = strings.ReplaceAll(msg, path, relPath)
		}
	}

	w.buffer.WriteString(msg)

	errorDetails, ok := evt["error"].(string)
	if ok {
		w.buffer.WriteString("\n")
		w.buffer.WriteString(errorDetails)
	}

	if w.verbose {
		names := make([]string, 0, len(evt))
		for name := range evt {
			names = append(names, name)
		}
		sort.Strings(names)

		w.buffer.WriteString("\n")
		for _, name := range names {
			w.buffer.WriteString(fmt.Sprintf("  %s: %+v\n", name, evt[name]))
		}
	}

	w.buffer.WriteString(w.colors.Color("[reset]"))
	w.buffer.WriteString("\n")

	_, err = io.WriteString(w.out, w.buffer.String())
	if err != nil {
		return 0, err
	}
	return len(p), nil
}
