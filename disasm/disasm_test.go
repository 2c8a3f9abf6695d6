package disasm

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"rsc.io/diff"

	"github.com/apparentlymart/riscv-asm/asm"
	"github.com/apparentlymart/riscv-asm/isa"
)

func TestDisassemble(t *testing.T) {
	tests := []struct {
		Name    string
		Source  string
		Options isa.Options
		Want    []string
		XLEN    isa.XLEN
	}{
		{
			Name:   "base integer",
			Source: "0x00100093\n0x002081b3\n0x00302023",
			Want:   []string{"addi x1, x0, 1", "add x3, x1, x2", "sw x3, 0(x0)"},
			XLEN:   isa.RV32,
		},
		{
			Name:   "several words per line",
			Source: "0x00100093 0x002081b3, 0x00302023",
			Want:   []string{"addi x1, x0, 1", "add x3, x1, x2", "sw x3, 0(x0)"},
			XLEN:   isa.RV32,
		},
		{
			Name:   "comments and blank lines",
			Source: "# program\n\n0x00100093 // one\n",
			Want:   []string{"addi x1, x0, 1"},
			XLEN:   isa.RV32,
		},
		{
			Name:   "word notations",
			Source: "00100093 1048723 0b1",
			Want:   []string{"addi x1, x0, 1", "addi x1, x0, 1", "c.nop"},
			XLEN:   isa.RV32,
		},
		{
			Name:   "immediates",
			Source: "0x008000ef 0xfff00293 0x6a028293 0x000182b7",
			Want:   []string{"jal x1, 8", "addi x5, x0, -1", "addi x5, x5, 0x6a0", "lui x5, 0x18"},
			XLEN:   isa.RV32,
		},
		{
			Name:    "decimal immediates",
			Source:  "0x6a028293",
			Options: isa.Options{Base: isa.Dec},
			Want:    []string{"addi x5, x5, 1696"},
			XLEN:    isa.RV32,
		},
		{
			Name:   "system",
			Source: "0x0ff0000f 0x300022f3",
			Want:   []string{"fence iorw, iorw", "csrrs x5, mstatus, x0"},
			XLEN:   isa.RV32,
		},
		{
			Name:   "rounding mode",
			Source: "0x003170d3 0x003110d3",
			Want:   []string{"fadd.s f1, f2, f3", "fadd.s f1, f2, f3, rtz"},
			XLEN:   isa.RV32,
		},
		{
			Name:   "atomic ordering",
			Source: "0x140322af",
			Want:   []string{"lr.w.aq x5, (x6)"},
			XLEN:   isa.RV32,
		},
		{
			Name:   "vector",
			Source: "0x0d0372d7 0x002180d7",
			Want:   []string{"vsetvli x5, x6, e32, m1, ta, ma", "vadd.vv v1, v2, v3, v0.t"},
			XLEN:   isa.RV32,
		},
		{
			Name:   "compressed",
			Source: "0x0085 0x557d 0x40c0 0x0001",
			Want:   []string{"c.addi x1, 1", "c.li x10, -1", "c.lw x8, 4(x9)", "c.nop"},
			XLEN:   isa.RV32,
		},
		{
			Name:   "shared encoding prefers rv64",
			Source: "0x2085",
			Want:   []string{"c.addiw x1, 1"},
			XLEN:   isa.RV64,
		},
		{
			Name:    "shared encoding under fixed rv32",
			Source:  "0x2085",
			Options: isa.Options{XLEN: isa.RV32},
			Want:    []string{"c.jal 0x60"},
			XLEN:    isa.RV32,
		},
		{
			Name:   "wide compressed shift",
			Source: "0x1082",
			Want:   []string{"c.slli x1, 0x20"},
			XLEN:   isa.RV64,
		},
		{
			Name:   "wide shift needs rv128",
			Source: "0x04009093 0x47f0d093",
			Want:   []string{"slli x1, x1, 0x40", "srai x1, x1, 0x7f"},
			XLEN:   isa.RV128,
		},
		{
			Name:   "reserved rv64 reading falls back to c.flwsp",
			Source: "0x00006002",
			Want:   []string{"c.flwsp f0, 0(x2)"},
			XLEN:   isa.RV32,
		},
		{
			Name:   "reserved rv64 reading falls back to c.jal",
			Source: "0x00002001",
			Want:   []string{"c.jal 0"},
			XLEN:   isa.RV32,
		},
		{
			Name:   "rv64 only",
			Source: "0x003100bb",
			Want:   []string{"addw x1, x2, x3"},
			XLEN:   isa.RV64,
		},
		{
			Name: "empty",
			XLEN: isa.RV32,
		},
	}

	for _, test := range tests {
		t.Run(test.Name, func(t *testing.T) {
			got, err := DisassembleDetailed(test.Source, test.Options)
			if err != nil {
				t.Fatalf("DisassembleDetailed(): %v", err)
			}
			if diff := cmp.Diff(test.Want, got.Lines); diff != "" {
				t.Fatalf("DisassembleDetailed(): (-want +got)\n%s", diff)
			}
			if got.XLEN != test.XLEN {
				t.Errorf("XLEN: got %s, want %s", got.XLEN, test.XLEN)
			}
			if want := isa.ModeOf(test.Options.XLEN); got.Mode != want {
				t.Errorf("Mode: got %s, want %s", got.Mode, want)
			}
		})
	}
}

func TestDisassembleOutput(t *testing.T) {
	src := "0x00100093\n0x0085 0x002180d7\n"
	want := strings.Join([]string{
		"addi x1, x0, 1",
		"c.addi x1, 1",
		"vadd.vv v1, v2, v3, v0.t",
	}, "\n")

	got, err := Disassemble(src, isa.Options{})
	if err != nil {
		t.Fatalf("Disassemble(): %v", err)
	}
	if got != want {
		t.Fatalf("Disassemble(): mismatch:\n%s", diff.Format(got, want))
	}
}

func TestDisassembleErrors(t *testing.T) {
	tests := []struct {
		Name    string
		Source  string
		Options isa.Options
		Want    error
		Line    int
	}{
		{Name: "unknown opcode", Source: "0x0000007f", Want: isa.ErrUnknownOpcode, Line: 1},
		{Name: "all zero", Source: "0x00000000", Want: isa.ErrUnsupportedEncoding, Line: 1},
		{Name: "compressed with high bits", Source: "0x10000001", Want: isa.ErrUnsupportedEncoding, Line: 1},
		{Name: "word too wide", Source: "0x100000000", Want: isa.ErrInvalidOperand, Line: 1},
		{Name: "not a number", Source: "0x00100093\nzz", Want: isa.ErrInvalidOperand, Line: 2},
		{Name: "no match", Source: "0xfe000033", Want: isa.ErrUnsupportedEncoding, Line: 1},
		{
			Name:    "rv64 under rv32",
			Source:  "0x003100bb",
			Options: isa.Options{XLEN: isa.RV32},
			Want:    isa.ErrXLENMismatch,
			Line:    1,
		},
		{
			Name:    "wide shift under rv32",
			Source:  "0x1082",
			Options: isa.Options{XLEN: isa.RV32},
			Want:    isa.ErrXLENMismatch,
			Line:    1,
		},
		{
			Name:    "embedded register",
			Source:  "0x00208833",
			Options: isa.Options{Embedded: true},
			Want:    isa.ErrInvalidRegister,
			Line:    1,
		},
		{
			Name:    "float disabled",
			Source:  "0x003170d3",
			Options: isa.Options{DisableFloat: true},
			Want:    isa.ErrUnsupportedEncoding,
			Line:    1,
		},
		{Name: "c.lui zero immediate", Source: "0x6081", Want: isa.ErrUnsupportedEncoding, Line: 1},
		{Name: "c.addi4spn zero immediate", Source: "0x0004", Want: isa.ErrUnsupportedEncoding, Line: 1},
		{Name: "c.jr x0", Source: "0x8002", Want: isa.ErrUnsupportedEncoding, Line: 1},
		{
			Name:    "c.addiw x0 under rv64",
			Source:  "0x00002001",
			Options: isa.Options{XLEN: isa.RV64},
			Want:    isa.ErrUnsupportedEncoding,
			Line:    1,
		},
		{
			Name:    "rv128 shift under rv64",
			Source:  "0x04009093",
			Options: isa.Options{XLEN: isa.RV64},
			Want:    isa.ErrXLENMismatch,
			Line:    1,
		},
		{Name: "reserved rounding mode", Source: "0x003150d3", Want: isa.ErrUnsupportedEncoding, Line: 1},
	}

	for _, test := range tests {
		t.Run(test.Name, func(t *testing.T) {
			_, err := Disassemble(test.Source, test.Options)
			if err == nil {
				t.Fatalf("Disassemble(%q): unexpected success", test.Source)
			}
			if !errors.Is(err, test.Want) {
				t.Fatalf("Disassemble(%q): got error %v, want %v", test.Source, err, test.Want)
			}
			var e *isa.Error
			if !errors.As(err, &e) {
				t.Fatalf("Disassemble(%q): error %T is not an *isa.Error", test.Source, err)
			}
			if e.Line != test.Line {
				t.Errorf("Disassemble(%q): error on line %d, want line %d", test.Source, e.Line, test.Line)
			}
		})
	}
}

func TestParseWord(t *testing.T) {
	tests := []struct {
		Token string
		Want  uint32
	}{
		{"0x00100093", 0x00100093},
		{"00100093", 0x00100093},
		{"0X0085", 0x0085},
		{"0b11", 3},
		{"1048723", 0x00100093},
		{"0xffffffff", 0xffffffff},
		{"0x_0010_0093", 0x00100093},
	}

	for _, test := range tests {
		t.Run(test.Token, func(t *testing.T) {
			got, err := ParseWord(test.Token)
			if err != nil {
				t.Fatalf("ParseWord(%q): %v", test.Token, err)
			}
			if got != test.Want {
				t.Errorf("ParseWord(%q): got %#08x, want %#08x", test.Token, got, test.Want)
			}
		})
	}

	for _, tok := range []string{"", "-1", "0x1ffffffff", "0xg"} {
		if _, err := ParseWord(tok); !errors.Is(err, isa.ErrInvalidOperand) {
			t.Errorf("ParseWord(%q): got %v, want an invalid operand", tok, err)
		}
	}
}

// sampleRegisters holds the register each field is given when an
// instruction is built for the round trip. The primed compressed fields
// hold architectural register numbers.
var sampleRegisters = map[isa.BitRange]uint32{
	isa.Rd:       9,
	isa.Rs1:      10,
	isa.Rs2:      11,
	isa.Rs3:      12,
	isa.CRs2:     11,
	isa.CRdPrime: 9,
	isa.CRsPrime: 10,
}

// sampleOperand writes a legal value for arg.
func sampleOperand(t *testing.T, spec *isa.Spec, arg isa.Arg) string {
	t.Helper()
	switch arg.Type {
	case isa.ArgIntReg, isa.ArgCompressedReg:
		return isa.FormatRegister(sampleRegisters[arg.Field])
	case isa.ArgFloatReg, isa.ArgCompressedFloatReg:
		return isa.FormatFloatRegister(sampleRegisters[arg.Field])
	case isa.ArgVectorReg:
		return isa.FormatVectorRegister(sampleRegisters[arg.Field])
	case isa.ArgStackPointer:
		return "x2"
	case isa.ArgImmediate:
		return isa.FormatImm(3*spec.Immediate().Layout.Align(), isa.Hex)
	case isa.ArgMemory:
		off := isa.FormatImm(3*spec.Immediate().Layout.Align(), isa.Hex)
		base := sampleOperand(t, spec, isa.Arg{Type: arg.Base, Field: arg.Field})
		return off + "(" + base + ")"
	case isa.ArgAddress:
		return "(" + sampleOperand(t, spec, isa.Arg{Type: arg.Base, Field: arg.Field}) + ")"
	case isa.ArgCSR:
		return "mstatus"
	case isa.ArgUimm5:
		return "3"
	case isa.ArgFenceSet:
		return "rw"
	case isa.ArgRoundingMode:
		return "rtz"
	case isa.ArgVectorMask:
		return "v0.t"
	case isa.ArgV0:
		return "v0"
	case isa.ArgVType:
		return "e32, m1, ta, ma"
	}
	t.Fatalf("%s: no sample for operand %s", spec.Name, arg)
	return ""
}

func TestRoundTrip(t *testing.T) {
	for _, spec := range isa.Default().Specs() {
		t.Run(spec.Name, func(t *testing.T) {
			var ops []string
			for _, arg := range spec.Args() {
				ops = append(ops, sampleOperand(t, spec, arg))
			}
			src := spec.Name
			if len(ops) > 0 {
				src += " " + strings.Join(ops, ", ")
			}

			// Encodings an RV64 instruction reuses decode differently
			// unless the narrower width is fixed.
			opts := isa.Options{XLEN: spec.MaxXLEN}

			words, err := asm.AssembleDetailed(src, opts)
			if err != nil {
				t.Fatalf("AssembleDetailed(%q): %v", src, err)
			}
			if len(words.Words) != 1 {
				t.Fatalf("AssembleDetailed(%q): got %d words, want 1", src, len(words.Words))
			}
			w := words.Words[0]
			if !spec.Matches(w) {
				t.Fatalf("%s: %s does not match its own spec", src, isa.FormatWord(w))
			}

			got, err := DisassembleDetailed(isa.FormatWord(w), opts)
			if err != nil {
				t.Fatalf("DisassembleDetailed(%s): %v", isa.FormatWord(w), err)
			}
			if diff := cmp.Diff([]string{src}, got.Lines); diff != "" {
				t.Errorf("round trip of %s: (-want +got)\n%s", isa.FormatWord(w), diff)
			}
		})
	}
}
