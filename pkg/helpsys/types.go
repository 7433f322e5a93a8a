package helpsys

import "sort"

// Entry is a single documented target or variable
type Entry struct {
	Command     string
	Description string
}

// Table maps group names to their entries and remembers the order in which groups were first seen
type Table struct {
	groups  []string
	entries map[string][]Entry
}

// NewTable returns an empty table
func NewTable() *Table {
	return &Table{
		groups:  make([]string, 0),
		entries: make(map[string][]Entry),
	}
}

// Add appends an entry to the given group, creating the group if necessary
func (t *Table) Add(group string, entry Entry) {
	list, ok := t.entries[group]
	if !ok {
		t.groups = append(t.groups, group)
	}

	t.entries[group] = append(list, entry)
}

// Merge appends all entries of other to t, group by group, in other's order.
func (t *Table) Merge(other *Table) {
	if other == nil {
		return
	}

	for _, group := range other.groups {
		for _, entry := range other.entries[group] {
			t.Add(group, entry)
		}
	}
}

// Groups returns the group names in first-seen order
func (t *Table) Groups() []string {
	result := make([]string, len(t.groups))
	copy(result, t.groups)
	return result
}

// Entries returns a copy of the entries stored for group
func (t *Table) Entries(group string) []Entry {
	list := t.entries[group]
	result := make([]Entry, len(list))
	copy(result, list)
	return result
}

// Len returns the total number of entries across all groups
func (t *Table) Len() int {
	count := 0
	for _, list := range t.entries {
		count += len(list)
	}

	return count
}

// Empty reports whether the table holds no entries at all
func (t *Table) Empty() bool {
	return t == nil || len(t.groups) == 0
}

// Sorted returns a new table with groups sorted by name and entries sorted by command, then description.
// The receiver is left untouched.
func (t *Table) Sorted() *Table {
	result := NewTable()
	groups := t.Groups()
	sort.Strings(groups)

	for _, group := range groups {
		list := t.Entries(group)
		sort.SliceStable(list, func(i, j int) bool {
			if list[i].Command != list[j].Command {
				return list[i].Command < list[j].Command
			}
			return list[i].Description < list[j].Description
		})

		result.groups = append(result.groups, group)
		result.entries[group] = list
	}

	return result
}
