package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/apparentlymart/riscv-asm/isa"
)

var branchLayout = isa.Layout{
	{Top: 31, Bottom: 31, At: 12},
	{Top: 30, Bottom: 25, At: 5},
	{Top: 11, Bottom: 8, At: 1},
	{Top: 7, Bottom: 7, At: 11},
}

func TestDecodeSteps(t *testing.T) {
	got := decodeSteps(branchLayout)
	want := []ArgDecodeStep{
		{Mask: 0x80000000, RightShift: 19},
		{Mask: 0x7e000000, RightShift: 20},
		{Mask: 0x00000f00, RightShift: 7},
		{Mask: 0x00000080, RightShift: -4},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("decodeSteps(): (-want +got)\n%s", diff)
	}

	var imm uint32
	const w = 0xfe209ee3 // bne x1, x2, -4
	for _, step := range got {
		v := w & uint32(step.Mask)
		if step.RightShift < 0 {
			imm |= v << uint(-step.RightShift)
		} else {
			imm |= v >> uint(step.RightShift)
		}
	}
	if want := branchLayout.Unpack(w); imm != want {
		t.Errorf("decoded %#x, want %#x", imm, want)
	}

	if got, want := got[3].String(), "(inst & 0b00000000000000000000000010000000) << 4"; got != want {
		t.Errorf("String(): got %q, want %q", got, want)
	}
}

func TestLayoutSpec(t *testing.T) {
	tests := []struct {
		Name   string
		Layout isa.Layout
		Want   string
	}{
		{"I", isa.Layout{{Top: 31, Bottom: 20, At: 0}}, "31:20[11:0]"},
		{"B", branchLayout, "31[12]|7[11]|30:25[10:5]|11:8[4:1]"},
		{"CI", isa.Layout{{Top: 12, Bottom: 12, At: 5}, {Top: 6, Bottom: 2, At: 0}}, "12[5]|6:2[4:0]"},
	}

	for _, test := range tests {
		t.Run(test.Name, func(t *testing.T) {
			if got := layoutSpec(test.Layout); got != test.Want {
				t.Errorf("layoutSpec(): got %q, want %q", got, test.Want)
			}
		})
	}
}

func TestIdents(t *testing.T) {
	anchors := map[string]string{
		"addi":        "addi",
		"c.addi4spn":  "c-addi4spn",
		"fcvt.s.w":    "fcvt-s-w",
		"RV64I: Base": "rv64i-base",
	}
	for in, want := range anchors {
		if got := makeAnchor(in); got != want {
			t.Errorf("makeAnchor(%q): got %q, want %q", in, got, want)
		}
	}

	titles := map[string]string{
		"OP-IMM-32": "OpImm32",
		"LOAD-FP":   "LoadFp",
		"MISC-MEM":  "MiscMem",
		"JAL":       "Jal",
	}
	for in, want := range titles {
		if got := makeIdentTitle(in); got != want {
			t.Errorf("makeIdentTitle(%q): got %q, want %q", in, got, want)
		}
	}
}

func TestEncodingBits(t *testing.T) {
	if got, want := encodingBits(0x0001, true).String(), "0b0000000000000001"; got != want {
		t.Errorf("compressed: got %q, want %q", got, want)
	}
	if got, want := encodingBits(0x7f, false).String(), "0b00000000000000000000000001111111"; got != want {
		t.Errorf("standard: got %q, want %q", got, want)
	}
}

func TestGenerateReference(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "reference")
	if err := generateReference(dir, isa.Default()); err != nil {
		t.Fatalf("generateReference(): %v", err)
	}

	tests := []struct {
		File string
		Has  []string
	}{
		{"opcodes.md", []string{"# Opcode index", "OP-IMM-32 (`OpImm32`)", "[c.addi4spn](instructions.md#c-addi4spn)"}},
		{"immediates.md", []string{"## `31[12]|7[11]|30:25[10:5]|11:8[4:1]`", "13 bits, multiple of 2."}},
		{"instructions.md", []string{"## RV32I", "## RV64I", `<a id="c-addi4spn"></a>`, "`addi rd, rs1, imm`"}},
	}

	for _, test := range tests {
		t.Run(test.File, func(t *testing.T) {
			src, err := os.ReadFile(filepath.Join(dir, test.File))
			if err != nil {
				t.Fatal(err)
			}
			for _, want := range test.Has {
				if !strings.Contains(string(src), want) {
					t.Errorf("%s does not contain %q", test.File, want)
				}
			}
		})
	}
}
