// Package names interns street/place name strings into a single table
// indexed by nodegraph.NameID, so repeated segments of the same street
// share one copy of the string instead of one per edge.
package names

import "github.com/meridian-routing/meridian/nodegraph"

// Table is an append-only interned string table, built with NewTable or
// FromStrings; the zero value has no index map, and Intern panics on it.
// Not safe for concurrent writes; callers share one Table per
// dataset build and treat it as read-only once extraction finishes.
type Table struct {
	strings []string
	index   map[string]nodegraph.NameID
}

// NewTable returns an empty Table, reserving nodegraph.NameID(0) to mean
// "no name" per its own doc comment.
func NewTable() *Table {
	return &Table{
		strings: []string{""},
		index:   map[string]nodegraph.NameID{"": 0},
	}
}

// Intern returns s's id, assigning a new one in first-seen order if s
// hasn't been interned yet. Interning "" always returns 0.
func (t *Table) Intern(s string) nodegraph.NameID {
	if id, ok := t.index[s]; ok {
		return id
	}

	id := nodegraph.NameID(len(t.strings))
	t.strings = append(t.strings, s)
	t.index[s] = id

	return id
}

// Lookup returns the string for id, or "" and false if id is out of
// range.
func (t *Table) Lookup(id nodegraph.NameID) (string, bool) {
	if int(id) >= len(t.strings) {
		return "", false
	}

	return t.strings[id], true
}

// Len returns the number of distinct strings interned, including the
// reserved empty string at id 0.
func (t *Table) Len() int { return len(t.strings) }

// All returns every interned string in id order, for serialization
// (package artifact's .names file).
func (t *Table) All() []string {
	out := make([]string, len(t.strings))
	copy(out, t.strings)

	return out
}

// FromStrings rebuilds a Table from a list of strings in id order, as
// produced by a prior Table's All() and persisted by package artifact's
// .names codec. strings[0] must be "" to preserve the reserved
// no-name id.
func FromStrings(strings []string) *Table {
	t := &Table{
		strings: make([]string, len(strings)),
		index:   make(map[string]nodegraph.NameID, len(strings)),
	}
	copy(t.strings, strings)
	for i, s := range t.strings {
		t.index[s] = nodegraph.NameID(i)
	}

	return t
}
