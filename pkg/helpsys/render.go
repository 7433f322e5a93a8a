package helpsys

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/mitchellh/colorstring"
	"github.com/rotisserie/eris"
)

// NoHelpMessage is printed instead of the listing when no entries were found
const NoHelpMessage = "No help information found."

// Order controls how groups and entries are arranged in the output
type Order int

const (
	// OrderSorted sorts groups by name and entries by command
	OrderSorted Order = iota
	// OrderFile keeps the order in which groups and entries appeared in the input files
	OrderFile
)

func (o Order) String() string {
	if o == OrderFile {
		return "file"
	}
	return "sorted"
}

// ParseOrder converts "sorted" or "file" into an Order
func ParseOrder(value string) (Order, error) {
	switch value {
	case "sorted":
		return OrderSorted, nil
	case "file":
		return OrderFile, nil
	}

	return OrderSorted, eris.Errorf("unknown order %s (must be sorted or file)", value)
}

// Arrange returns table in the requested order. OrderFile returns table itself.
func (o Order) Arrange(table *Table) *Table {
	if o == OrderSorted {
		return table.Sorted()
	}
	return table
}

// Style describes how Render formats a table. Group and Entry hold colorstring markup (i.e. "[yellow]")
// which is applied to group headers and descriptions. Plain disables all markup.
type Style struct {
	Group  string
	Entry  string
	Plain  bool
	Order  Order
	Width  int
	Title  string
	Indent string
}

// DefaultStyle returns the style used by the CLI when nothing is configured
func DefaultStyle() Style {
	return Style{
		Group:  "[yellow]",
		Entry:  "[blue]",
		Order:  OrderSorted,
		Width:  32,
		Title:  "A list of available targets and variables",
		Indent: "    ",
	}
}

func (s Style) colorize() colorstring.Colorize {
	return colorstring.Colorize{
		Colors:  colorstring.DefaultColors,
		Disable: s.Plain,
	}
}

func commandWidth(table *Table, width int) int {
	if width > 0 {
		return width
	}

	longest := 0
	for _, group := range table.Groups() {
		for _, entry := range table.Entries(group) {
			if length := utf8.RuneCountInString(entry.Command); length > longest {
				longest = length
			}
		}
	}

	return longest + 2
}

// Render writes the grouped listing for table to w.
// Markup is only expanded in the style strings so group names and descriptions are always printed verbatim.
func Render(w io.Writer, table *Table, style Style) error {
	var buffer strings.Builder

	if table.Empty() {
		buffer.WriteString(NoHelpMessage + "\n")
	} else {
		table = style.Order.Arrange(table)
		colors := style.colorize()
		groupStart := colors.Color(style.Group)
		entryStart := colors.Color(style.Entry)
		reset := colors.Color("[reset]")
		width := commandWidth(table, style.Width)

		if style.Title != "" {
			buffer.WriteString(style.Title + "\n\n")
		}

		for _, group := range table.Groups() {
			buffer.WriteString(style.Indent + groupStart + "[" + group + "]" + reset + "\n")
			for _, entry := range table.Entries(group) {
				buffer.WriteString(fmt.Sprintf("%s%-*s%s# %s%s\n", style.Indent, width, entry.Command, entryStart, entry.Description, reset))
			}
			buffer.WriteString("\n")
		}
	}

	_, err := io.WriteString(w, buffer.String())
	if err != nil {
		return eris.Wrap(err, "failed to write help listing")
	}

	return nil
}
