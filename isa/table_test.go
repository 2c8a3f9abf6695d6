package isa

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestTableCheck(t *testing.T) {
	for _, err := range Default().Check() {
		t.Error(err)
	}
}

func TestTableIndex(t *testing.T) {
	table := Default()
	for _, spec := range table.Specs() {
		if !spec.Matches(spec.Test()) {
			t.Errorf("%s does not match its own constant bits", spec.Name)
		}
		if spec.Test()&^spec.Mask() != 0 {
			t.Errorf("%s has test bits outside its mask", spec.Name)
		}
		if got := Key(spec.Test()); got != spec.Key() {
			t.Errorf("%s: Key(Test()) is %#x, but the spec is indexed under %#x", spec.Name, got, spec.Key())
		}
		if spec.IsCompressed() != (spec.Key()&0b11 != 0b11) {
			t.Errorf("%s: key %#x does not agree with the format %s", spec.Name, spec.Key(), spec.Format)
		}
		if spec.IsCompressed() && spec.Mask()>>16 != 0 {
			t.Errorf("%s: compressed mask %s reaches past bit 15", spec.Name, FormatWord(spec.Mask()))
		}

		got, err := table.Lookup(spec.Name)
		if err != nil || *got != *spec {
			t.Errorf("Lookup(%q): got %v, %v", spec.Name, got, err)
		}

		found := false
		for _, cand := range table.Candidates(spec.Key()) {
			found = found || *cand == *spec
		}
		if !found {
			t.Errorf("%s is missing from its candidate list", spec.Name)
		}
	}
}

func TestTableCandidateOrder(t *testing.T) {
	table := Default()
	for _, key := range table.Keys() {
		list := table.Candidates(key)
		for i := 1; i < len(list); i++ {
			a, b := list[i-1], list[i]
			if a.RequiredXLEN() < b.RequiredXLEN() {
				t.Errorf("key %#x: %s (RV%d) sorts before %s (RV%d)", key, a.Name, a.RequiredXLEN(), b.Name, b.RequiredXLEN())
			}
			if a.RequiredXLEN() == b.RequiredXLEN() && a.Specificity() < b.Specificity() {
				t.Errorf("key %#x: %s sorts before the more specific %s", key, a.Name, b.Name)
			}
		}
	}

	var names []string
	for _, spec := range table.Candidates(CompressedKey(0x0001)) {
		names = append(names, spec.Name)
	}
	if diff := cmp.Diff([]string{"c.nop", "c.addi"}, names); diff != "" {
		t.Errorf("quadrant 1 funct3 0 candidates (-want +got):\n%s", diff)
	}
}

func TestTableReadOnly(t *testing.T) {
	table := Default()

	specs := table.Specs()
	name := specs[0].Name
	specs[0].Name = "changed"
	specs[1] = nil
	if got := table.Specs(); got[0].Name != name || got[1] == nil {
		t.Errorf("Specs() returned the table's own storage")
	}

	spec, err := table.Lookup("addi")
	if err != nil {
		t.Fatal(err)
	}
	spec.ImmBits = 5
	if again, _ := table.Lookup("addi"); again.ImmBits != 12 {
		t.Errorf("Lookup(addi) shares its spec: ImmBits is %d", again.ImmBits)
	}

	cands := table.Candidates(CompressedKey(0x0001))
	cands[0].Name = "changed"
	if got := table.Candidates(CompressedKey(0x0001)); got[0].Name != "c.nop" {
		t.Errorf("Candidates() shares its specs: got %q", got[0].Name)
	}
}

func TestTableLookup(t *testing.T) {
	table := Default()
	if _, err := table.Lookup("frobnicate"); !errors.Is(err, ErrUnsupportedInstruction) {
		t.Errorf("Lookup(frobnicate): got %v", err)
	}
	if got := table.Candidates(0x7f); len(got) != 0 {
		t.Errorf("Candidates(0x7f): got %d specs", len(got))
	}
	if got := table.Extensions().String(); got != "ABCDFIMQV" {
		t.Errorf("Extensions(): got %q", got)
	}
	if got := len(Groups()); got != 9 {
		t.Errorf("Groups(): got %d groups", got)
	}
}

func TestNewTableDuplicate(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("NewTable did not panic on a duplicate name")
		}
	}()
	NewTable(Group{Ext: ExtI, Specs: []Spec{itype("addi", opOpImm, 0), itype("addi", opOpImm, 1)}})
}

func TestTableCheckFindsOverlap(t *testing.T) {
	table := NewTable(Group{Ext: ExtI, Specs: []Spec{
		itype("one", opOpImm, 0),
		itype("two", opOpImm, 0),
		itype("three", opOpImm, 1),
	}})
	if got := len(table.Check()); got != 1 {
		t.Errorf("Check(): got %d errors, want 1", got)
	}
}

func TestKeyName(t *testing.T) {
	tests := []struct {
		Key  uint8
		Want string
	}{
		{opOpImm, "OP-IMM"},
		{opOpV, "OP-V"},
		{CompressedKey(0x4000), "C0.010"},
		{0x7f, "0b1111111"},
	}
	for _, test := range tests {
		if got := KeyName(test.Key); got != test.Want {
			t.Errorf("KeyName(%#x): got %q, want %q", test.Key, got, test.Want)
		}
	}
}
