package isa

import (
	"fmt"
	"sort"
	"sync"
)

// Group is one extension's slice of the instruction table.
type Group struct {
	Ext   Extension
	Name  string
	Specs []Spec
}

// Groups returns the per-extension tables in the order they are indexed.
// The embedded variant has no encodings of its own; it only narrows the
// register file.
func Groups() []Group {
	return []Group{
		{ExtI, "Base Integer Instruction Set", baseSpecs},
		{ExtM, "Integer Multiplication and Division", mulSpecs},
		{ExtA, "Atomic Instructions", atomicSpecs},
		{ExtF, "Single-Precision Floating-Point", floatSpecs},
		{ExtD, "Double-Precision Floating-Point", doubleSpecs},
		{ExtQ, "Quad-Precision Floating-Point", quadSpecs},
		{ExtC, "Compressed Instructions", compressedSpecs},
		{ExtB, "Bit Manipulation", bitmanipSpecs},
		{ExtV, "Vector Operations", vectorSpecs},
	}
}

// Table is the flattened instruction table with its two indices. A Table
// is never modified after NewTable returns, so it is safe for concurrent
// use.
type Table struct {
	specs  []*Spec
	byName map[string]*Spec
	byKey  map[uint8][]*Spec
}

// NewTable flattens and indexes the given groups. It panics if two specs
// share a name.
func NewTable(groups ...Group) *Table {
	t := &Table{
		byName: make(map[string]*Spec),
		byKey:  make(map[uint8][]*Spec),
	}
	for _, g := range groups {
		for i := range g.Specs {
			s := g.Specs[i]
			s.compile()
			if _, exists := t.byName[s.Name]; exists {
				panic(fmt.Sprintf("duplicate instruction %q", s.Name))
			}
			t.specs = append(t.specs, &s)
			t.byName[s.Name] = &s
			t.byKey[s.key] = append(t.byKey[s.key], &s)
		}
	}

	// Within a group the candidates are tried widest XLEN first, then most
	// constant bits first, so an encoding reused by a wider base and the
	// special cases of a general form (c.nop within c.addi) win.
	for _, list := range t.byKey {
		sort.SliceStable(list, func(i, j int) bool {
			a, b := list[i], list[j]
			if a.minXLEN() != b.minXLEN() {
				return a.minXLEN() > b.minXLEN()
			}
			return a.Specificity() > b.Specificity()
		})
	}
	return t
}

var (
	defaultOnce  sync.Once
	defaultTable *Table
)

// Default returns the table of every supported instruction, built on first
// use.
func Default() *Table {
	defaultOnce.Do(func() {
		defaultTable = NewTable(Groups()...)
	})
	return defaultTable
}

// Specs returns every spec in table order. The specs are copies, so
// changing them does not affect the table.
func (t *Table) Specs() []*Spec {
	return copySpecs(t.specs)
}

func copySpecs(specs []*Spec) []*Spec {
	ret := make([]*Spec, len(specs))
	for i, s := range specs {
		c := *s
		ret[i] = &c
	}
	return ret
}

// Lookup finds a spec by mnemonic.
func (t *Table) Lookup(name string) (*Spec, error) {
	s, ok := t.byName[name]
	if !ok {
		return nil, Errorf(ErrUnsupportedInstruction, "unsupported instruction %q", name)
	}
	c := *s
	return &c, nil
}

// Candidates returns the specs sharing an index key, most specific first.
// An empty result means the opcode is unknown. Like Specs, it returns
// copies.
func (t *Table) Candidates(key uint8) []*Spec {
	return copySpecs(t.byKey[key])
}

// Extensions returns the set of extension letters present in the table.
func (t *Table) Extensions() Extensions {
	es := make(Extensions)
	for _, s := range t.specs {
		es.Add(s.Ext)
	}
	return es
}

// Keys returns the index keys in ascending order.
func (t *Table) Keys() []uint8 {
	keys := make([]uint8, 0, len(t.byKey))
	for k := range t.byKey {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		return keys[i] < keys[j]
	})
	return keys
}

// Check reports pairs of specs that could both claim the same machine word
// without the candidate ordering deciding between them: same key, same
// minimum XLEN, same number of constant bits and no constant bit that
// tells them apart.
func (t *Table) Check() []error {
	var errs []error
	for _, key := range t.Keys() {
		list := t.byKey[key]
		for i, a := range list {
			for _, b := range list[i+1:] {
				if a.minXLEN() != b.minXLEN() || a.Specificity() != b.Specificity() {
					continue
				}
				if (a.test^b.test)&a.mask&b.mask != 0 {
					continue
				}
				errs = append(errs, fmt.Errorf("%s and %s have indistinguishable encodings (key %#02x)", a.Name, b.Name, key))
			}
		}
	}
	return errs
}
