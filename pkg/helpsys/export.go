package helpsys

import (
	"encoding/json"
	"io"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"
)

// Format selects the output format of the CLI
type Format int

const (
	// FormatText is the colored listing produced by Render
	FormatText Format = iota
	FormatYAML
	FormatJSON
)

// ParseFormat converts "text", "yaml" or "json" into a Format
func ParseFormat(value string) (Format, error) {
	switch value {
	case "text":
		return FormatText, nil
	case "yaml":
		return FormatYAML, nil
	case "json":
		return FormatJSON, nil
	}

	return FormatText, eris.Errorf("unknown format %s (must be text, yaml or json)", value)
}

type exportedEntry struct {
	Command     string `yaml:"command" json:"command"`
	Description string `yaml:"description" json:"description"`
}

type exportedGroup struct {
	Group   string          `yaml:"group" json:"group"`
	Entries []exportedEntry `yaml:"entries" json:"entries"`
}

func exportable(table *Table) []exportedGroup {
	result := make([]exportedGroup, 0)
	if table == nil {
		return result
	}

	for _, group := range table.Groups() {
		entries := table.Entries(group)
		item := exportedGroup{
			Group:   group,
			Entries: make([]exportedEntry, len(entries)),
		}

		for idx, entry := range entries {
			item.Entries[idx] = exportedEntry(entry)
		}

		result = append(result, item)
	}

	return result
}

// Export writes table as a list of groups in the given machine-readable format
func Export(w io.Writer, table *Table, format Format, order Order) error {
	if table == nil {
		table = NewTable()
	}
	data := exportable(order.Arrange(table))

	switch format {
	case FormatYAML:
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		err := encoder.Encode(data)
		if err != nil {
			return eris.Wrap(err, "failed to encode YAML")
		}

		err = encoder.Close()
		if err != nil {
			return eris.Wrap(err, "failed to encode YAML")
		}

		return nil
	case FormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		err := encoder.Encode(data)
		if err != nil {
			return eris.Wrap(err, "failed to encode JSON")
		}

		return nil
	}

	return eris.Errorf("format %d can't be exported", format)
}
