/*
Copyright © 2021 Joseph Lewis <joseph@josephlewis.net>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package pathindex

import "sort"

// Entry is an executable found on the search path.
type Entry struct {
	// Name is the name the command is invoked by.
	Name string `json:"name"`
	// Path is the directory joined with the name.
	Path string `json:"path"`
}

// Table maps command names to the executables they run.
//
// A Table is only written by the Indexer that builds it and is safe for
// concurrent readers once Build returns.
type Table struct {
	entries  map[string]Entry
	shadowed map[string][]Entry
}

func newTable() *Table {
	return &Table{
		entries:  make(map[string]Entry),
		shadowed: make(map[string][]Entry),
	}
}

// add inserts the entry unless the name is already taken, in which case the
// entry is recorded as shadowed and false is returned.
func (t *Table) add(e Entry) bool {
	if _, ok := t.entries[e.Name]; ok {
		t.shadowed[e.Name] = append(t.shadowed[e.Name], e)
		return false
	}
	t.entries[e.Name] = e
	return true
}

// Lookup finds the entry for the exact command name.
func (t *Table) Lookup(name string) (Entry, bool) {
	e, ok := t.entries[name]
	return e, ok
}

// Len returns the number of indexed commands.
func (t *Table) Len() int {
	return len(t.entries)
}

// Names returns the sorted command names.
func (t *Table) Names() []string {
	names := make([]string, 0, len(t.entries))
	for name := range t.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Entries returns every entry sorted by name.
func (t *Table) Entries() []Entry {
	out := make([]Entry, 0, len(t.entries))
	for _, name := range t.Names() {
		out = append(out, t.entries[name])
	}
	return out
}

// Shadowed returns the executables that lost to the indexed entry for name
// because they appeared in a later search path directory, in search order.
func (t *Table) Shadowed(name string) []Entry {
	return append([]Entry(nil), t.shadowed[name]...)
}
