package codec

import (
	"fmt"

	"github.com/lugondev/go-ammix/pkg/errors"
)

type tableKey [MaxWidth]byte

func keyOf(d []byte) tableKey {
	var k tableKey
	copy(k[:], d)
	return k
}

// Entry names one case of a discriminator table.
type Entry struct {
	Name          string        `json:"name" yaml:"name"`
	Discriminator Discriminator `json:"discriminator" yaml:"discriminator"`
}

// Table is a bidirectional, collision-free mapping between case names and
// discriminators of a single width. Tables are immutable once built.
type Table struct {
	program string
	width   int
	byKey   map[tableKey]int
	byName  map[string]int
	entries []Entry
}

// NewTable builds a table. Every discriminator must be exactly width bytes long and
// neither names nor discriminators may repeat.
func NewTable(program string, width int, entries []Entry) (*Table, error) {
	if width < 1 || width > MaxWidth {
		return nil, errors.InvalidTable(program, fmt.Sprintf("unsupported width %d", width))
	}

	t := &Table{
		program: program,
		width:   width,
		byKey:   make(map[tableKey]int, len(entries)),
		byName:  make(map[string]int, len(entries)),
		entries: make([]Entry, len(entries)),
	}

	for i, e := range entries {
		if len(e.Discriminator) != width {
			return nil, errors.InvalidTable(program,
				fmt.Sprintf("%s: discriminator %s is %d bytes, want %d", e.Name, e.Discriminator, len(e.Discriminator), width))
		}
		if prev, dup := t.byName[e.Name]; dup {
			return nil, errors.InvalidTable(program, fmt.Sprintf("%s declared twice (#%d and #%d)", e.Name, prev, i))
		}
		k := keyOf(e.Discriminator)
		if prev, dup := t.byKey[k]; dup {
			return nil, errors.InvalidTable(program,
				fmt.Sprintf("%s and %s share discriminator %s", t.entries[prev].Name, e.Name, e.Discriminator))
		}
		t.byKey[k] = i
		t.byName[e.Name] = i
		t.entries[i] = Entry{Name: e.Name, Discriminator: append(Discriminator(nil), e.Discriminator...)}
	}

	return t, nil
}

// Program returns the program label the table was built for.
func (t *Table) Program() string { return t.program }

// Width returns the discriminator width in bytes.
func (t *Table) Width() int { return t.width }

// Len returns the number of cases.
func (t *Table) Len() int { return len(t.entries) }

// Match returns the index of the case whose discriminator prefixes data, or -1.
func (t *Table) Match(data []byte) int {
	if len(data) < t.width {
		return -1
	}
	if idx, ok := t.byKey[keyOf(data[:t.width])]; ok {
		return idx
	}
	return -1
}

// MatchBatch resolves several payloads at once. Unmatched inputs yield -1.
func (t *Table) MatchBatch(data [][]byte) []int {
	if len(data) == 0 {
		return nil
	}
	results := make([]int, len(data))
	for i, d := range data {
		results[i] = t.Match(d)
	}
	return results
}

// Lookup returns the discriminator registered for name.
func (t *Table) Lookup(name string) (Discriminator, bool) {
	idx, ok := t.byName[name]
	if !ok {
		return nil, false
	}
	return t.entries[idx].Discriminator, true
}

// Entry returns the case at idx.
func (t *Table) Entry(idx int) Entry {
	return t.entries[idx]
}

// Entries returns a copy of all cases in declaration order.
func (t *Table) Entries() []Entry {
	out := make([]Entry, len(t.entries))
	copy(out, t.entries)
	return out
}
