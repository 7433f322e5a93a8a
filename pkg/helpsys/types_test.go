package helpsys

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTableKeepsFirstSeenGroupOrder(t *testing.T) {
	table := NewTable()
	table.Add("test", Entry{"unit", "runs unit tests"})
	table.Add("build", Entry{"all", "builds everything"})
	table.Add("test", Entry{"e2e", "runs end-to-end tests"})

	assert.Equal(t, []string{"test", "build"}, table.Groups())
	assert.Equal(t, []Entry{{"unit", "runs unit tests"}, {"e2e", "runs end-to-end tests"}}, table.Entries("test"))
	assert.Equal(t, 3, table.Len())
	assert.False(t, table.Empty())
}

func TestTableKeepsDuplicates(t *testing.T) {
	table := NewTable()
	table.Add("build", Entry{"all", "builds"})
	table.Add("build", Entry{"all", "builds"})

	assert.Len(t, table.Entries("build"), 2)
}

func TestTableMergeAppendsPerGroup(t *testing.T) {
	a := NewTable()
	a.Add("build", Entry{"all", "first"})
	a.Add("lint", Entry{"vet", "go vet"})

	b := NewTable()
	b.Add("test", Entry{"unit", "tests"})
	b.Add("build", Entry{"clean", "second"})

	a.Merge(b)
	a.Merge(nil)

	assert.Equal(t, []string{"build", "lint", "test"}, a.Groups())
	assert.Equal(t, []Entry{{"all", "first"}, {"clean", "second"}}, a.Entries("build"))
}

func TestTableSorted(t *testing.T) {
	table := NewTable()
	table.Add("test", Entry{"unit", "b"})
	table.Add("build", Entry{"clean", "x"})
	table.Add("test", Entry{"e2e", "a"})
	table.Add("build", Entry{"all", "z"})
	table.Add("build", Entry{"all", "y"})

	sorted := table.Sorted()
	assert.Equal(t, []string{"build", "test"}, sorted.Groups())
	assert.Equal(t, []Entry{{"all", "y"}, {"all", "z"}, {"clean", "x"}}, sorted.Entries("build"))
	assert.Equal(t, []Entry{{"e2e", "a"}, {"unit", "b"}}, sorted.Entries("test"))

	// original is untouched
	assert.Equal(t, []string{"test", "build"}, table.Groups())
	assert.Equal(t, Entry{"clean", "x"}, table.Entries("build")[0])
}

func TestEntriesReturnsCopy(t *testing.T) {
	table := NewTable()
	table.Add("build", Entry{"all", "builds"})

	list := table.Entries("build")
	list[0].Command = "changed"

	assert.Equal(t, "all", table.Entries("build")[0].Command)
	assert.Empty(t, table.Entries("missing"))
}

func TestEmptyTable(t *testing.T) {
	var missing *Table
	assert.True(t, missing.Empty())
	assert.True(t, NewTable().Empty())
	assert.Equal(t, 0, NewTable().Len())
}
