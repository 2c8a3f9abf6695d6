package asm

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/apparentlymart/riscv-asm/isa"
)

func TestPseudoInstructions(t *testing.T) {
	tests := []struct {
		Pseudo string
		Real   string
	}{
		{"nop", "addi x0, x0, 0"},
		{"mv a0, a1", "addi a0, a1, 0"},
		{"not a0, a1", "xori a0, a1, -1"},
		{"neg a0, a1", "sub a0, x0, a1"},
		{"negw a0, a1", "subw a0, x0, a1"},
		{"sext.w a0, a1", "addiw a0, a1, 0"},
		{"seqz a0, a1", "sltiu a0, a1, 1"},
		{"snez a0, a1", "sltu a0, x0, a1"},
		{"sltz a0, a1", "slt a0, a1, x0"},
		{"sgtz a0, a1", "slt a0, x0, a1"},
		{"j 16", "jal x0, 16"},
		{"jal 16", "jal x1, 16"},
		{"jr a0", "jalr x0, a0, 0"},
		{"jalr a0", "jalr x1, a0, 0"},
		{"jalr ra, 8(a0)", "jalr ra, a0, 8"},
		{"jalr ra, (a0)", "jalr ra, a0, 0"},
		{"ret", "jalr x0, x1, 0"},
		{"beqz a0, 8", "beq a0, x0, 8"},
		{"bnez a0, 8", "bne a0, x0, 8"},
		{"blez a0, 8", "bge x0, a0, 8"},
		{"bgez a0, 8", "bge a0, x0, 8"},
		{"bltz a0, 8", "blt a0, x0, 8"},
		{"bgtz a0, 8", "blt x0, a0, 8"},
		{"bgt a0, a1, 8", "blt a1, a0, 8"},
		{"ble a0, a1, 8", "bge a1, a0, 8"},
		{"bgtu a0, a1, 8", "bltu a1, a0, 8"},
		{"bleu a0, a1, 8", "bgeu a1, a0, 8"},
		{"csrr a0, mstatus", "csrrs a0, mstatus, x0"},
		{"csrw mstatus, a0", "csrrw x0, mstatus, a0"},
		{"csrs mstatus, a0", "csrrs x0, mstatus, a0"},
		{"csrc mstatus, a0", "csrrc x0, mstatus, a0"},
		{"csrwi mstatus, 3", "csrrwi x0, mstatus, 3"},
		{"csrsi mstatus, 3", "csrrsi x0, mstatus, 3"},
		{"csrci mstatus, 3", "csrrci x0, mstatus, 3"},
		{"fence", "fence iorw, iorw"},
		{"fmv.s f1, f2", "fsgnj.s f1, f2, f2"},
		{"fneg.d f1, f2", "fsgnjn.d f1, f2, f2"},
		{"fabs.q f1, f2", "fsgnjx.q f1, f2, f2"},
		{"li a0, 0", "addi a0, x0, 0"},
		{"li a0, -2048", "addi a0, x0, -2048"},
		{"li a0, 2047", "addi a0, x0, 2047"},
		{"li x5, 100000", "lui x5, 0x18\naddi x5, x5, 0x6a0"},
		{"li a0, 2048", "lui a0, 1\naddi a0, a0, -2048"},
		{"li a0, 0x12345fff", "lui a0, 0x12346\naddi a0, a0, -1"},
		{"li a0, -2049", "lui a0, 0xfffff\naddi a0, a0, 2047"},
		{"li a0, 0x80000000", "lui a0, 0x80000\naddi a0, a0, 0"},
		{"li a0, 0xffffffff", "lui a0, 0\naddi a0, a0, -1"},
		{"li a0, -0x80000000", "lui a0, 0x80000\naddi a0, a0, 0"},
	}

	for _, test := range tests {
		t.Run(test.Pseudo, func(t *testing.T) {
			want, err := AssembleDetailed(test.Real, isa.Options{})
			if err != nil {
				t.Fatalf("AssembleDetailed(%q): %v", test.Real, err)
			}
			got, err := AssembleDetailed(test.Pseudo, isa.Options{})
			if err != nil {
				t.Fatalf("AssembleDetailed(%q): %v", test.Pseudo, err)
			}
			if diff := cmp.Diff(want.Words, got.Words); diff != "" {
				t.Fatalf("%q mismatch (-want +got):\n%s", test.Pseudo, diff)
			}
		})
	}
}

func TestLiWords(t *testing.T) {
	got, err := AssembleDetailed("li x5, 100000", isa.Options{})
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]uint32{0x000182b7, 0x6a028293}, got.Words); diff != "" {
		t.Errorf("li mismatch (-want +got):\n%s", diff)
	}
}

func TestExpand(t *testing.T) {
	if _, ok, _ := expand("add", []string{"x1", "x2", "x3"}); ok {
		t.Errorf("add is not a pseudo-instruction")
	}
	if _, ok, _ := expand("jal", []string{"x1", "8"}); ok {
		t.Errorf("jal with two operands is a real instruction")
	}
	if _, ok, _ := expand("fence", []string{"rw", "rw"}); ok {
		t.Errorf("fence with operands is a real instruction")
	}

	insts, ok, err := expand("li", []string{"a0", "0x7fffffff"})
	if !ok || err != nil {
		t.Fatalf("expand(li): %v, %v", ok, err)
	}
	want := []inst{
		{"lui", []string{"a0", "524288"}},
		{"addi", []string{"a0", "a0", "-1"}},
	}
	if diff := cmp.Diff(want, insts, cmp.AllowUnexported(inst{})); diff != "" {
		t.Errorf("expand(li) mismatch (-want +got):\n%s", diff)
	}

	if _, _, err := expand("jalr", []string{"ra", "8"}); !errors.Is(err, isa.ErrInvalidMemoryOperand) {
		t.Errorf("expand(jalr ra, 8): got %v", err)
	}
}
