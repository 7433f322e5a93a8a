package helpsys

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func plainStyle() Style {
	style := DefaultStyle()
	style.Plain = true
	return style
}

func sampleTable() *Table {
	table := NewTable()
	table.Add("test", Entry{"run", "runs tests: with coverage"})
	table.Add("build", Entry{"make all", "compiles everything"})
	table.Add("build", Entry{"clean", "removes output"})
	return table
}

func pad(command string, width int) string {
	return command + strings.Repeat(" ", width-len(command))
}

func TestRenderSorted(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, Render(&out, sampleTable(), plainStyle()))

	expected := "A list of available targets and variables\n\n" +
		"    [build]\n" +
		"    " + pad("clean", 32) + "# removes output\n" +
		"    " + pad("make all", 32) + "# compiles everything\n" +
		"\n" +
		"    [test]\n" +
		"    " + pad("run", 32) + "# runs tests: with coverage\n" +
		"\n"
	assert.Equal(t, expected, out.String())
}

func TestRenderFileOrder(t *testing.T) {
	style := plainStyle()
	style.Order = OrderFile
	style.Title = ""

	var out bytes.Buffer
	require.NoError(t, Render(&out, sampleTable(), style))

	expected := "    [test]\n" +
		"    " + pad("run", 32) + "# runs tests: with coverage\n" +
		"\n" +
		"    [build]\n" +
		"    " + pad("make all", 32) + "# compiles everything\n" +
		"    " + pad("clean", 32) + "# removes output\n" +
		"\n"
	assert.Equal(t, expected, out.String())
}

func TestRenderEmpty(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, Render(&out, NewTable(), DefaultStyle()))
	assert.Equal(t, NoHelpMessage+"\n", out.String())

	out.Reset()
	require.NoError(t, Render(&out, nil, DefaultStyle()))
	assert.Equal(t, NoHelpMessage+"\n", out.String())
}

func TestRenderColors(t *testing.T) {
	table := NewTable()
	table.Add("red", Entry{"all", "[bold]literal"})

	var out bytes.Buffer
	require.NoError(t, Render(&out, table, DefaultStyle()))

	expected := "A list of available targets and variables\n\n" +
		"    \x1b[33m[red]\x1b[0m\n" +
		"    " + pad("all", 32) + "\x1b[34m# [bold]literal\x1b[0m\n" +
		"\n"
	assert.Equal(t, expected, out.String())
}

func TestRenderPlainHasNoEscapes(t *testing.T) {
	table := NewTable()
	table.Add("red", Entry{"all", "[green]not a color"})

	var out bytes.Buffer
	require.NoError(t, Render(&out, table, plainStyle()))

	assert.NotContains(t, out.String(), "\x1b[")
	assert.Contains(t, out.String(), "    [red]\n")
	assert.Contains(t, out.String(), "# [green]not a color\n")
}

func TestRenderAutomaticWidth(t *testing.T) {
	style := plainStyle()
	style.Width = 0
	style.Title = ""

	var out bytes.Buffer
	require.NoError(t, Render(&out, sampleTable(), style))

	lines := strings.Split(out.String(), "\n")
	assert.Equal(t, "    "+pad("clean", 10)+"# removes output", lines[1])
	assert.Equal(t, "    "+pad("make all", 10)+"# compiles everything", lines[2])
}

func TestRenderLongCommandIsNotTruncated(t *testing.T) {
	table := NewTable()
	long := strings.Repeat("x", 40)
	table.Add("build", Entry{long, "long"})

	var out bytes.Buffer
	require.NoError(t, Render(&out, table, plainStyle()))
	assert.Contains(t, out.String(), "    "+long+"# long\n")
}

type brokenWriter struct{}

func (brokenWriter) Write([]byte) (int, error) {
	return 0, errors.New("closed pipe")
}

func TestRenderWriteError(t *testing.T) {
	assert.Error(t, Render(brokenWriter{}, sampleTable(), plainStyle()))
}

func TestParseOrder(t *testing.T) {
	order, err := ParseOrder("file")
	require.NoError(t, err)
	assert.Equal(t, OrderFile, order)
	assert.Equal(t, "file", order.String())

	order, err = ParseOrder("sorted")
	require.NoError(t, err)
	assert.Equal(t, OrderSorted, order)

	_, err = ParseOrder("random")
	assert.Error(t, err)
}
