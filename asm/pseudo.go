package asm

import (
	"strconv"

	"github.com/apparentlymart/riscv-asm/isa"
)

type inst struct {
	name string
	args []string
}

func one(name string, args ...string) []inst {
	return []inst{{name, args}}
}

// pseudo describes a pseudo-instruction with a fixed operand count that
// rewrites to exactly one real instruction.
type pseudo struct {
	n       int
	rewrite func(args []string) []inst
}

var pseudos = map[string]pseudo{
	"nop":    {0, func(a []string) []inst { return one("addi", "x0", "x0", "0") }},
	"mv":     {2, func(a []string) []inst { return one("addi", a[0], a[1], "0") }},
	"not":    {2, func(a []string) []inst { return one("xori", a[0], a[1], "-1") }},
	"neg":    {2, func(a []string) []inst { return one("sub", a[0], "x0", a[1]) }},
	"negw":   {2, func(a []string) []inst { return one("subw", a[0], "x0", a[1]) }},
	"sext.w": {2, func(a []string) []inst { return one("addiw", a[0], a[1], "0") }},
	"seqz":   {2, func(a []string) []inst { return one("sltiu", a[0], a[1], "1") }},
	"snez":   {2, func(a []string) []inst { return one("sltu", a[0], "x0", a[1]) }},
	"sltz":   {2, func(a []string) []inst { return one("slt", a[0], a[1], "x0") }},
	"sgtz":   {2, func(a []string) []inst { return one("slt", a[0], "x0", a[1]) }},

	"j":   {1, func(a []string) []inst { return one("jal", "x0", a[0]) }},
	"jr":  {1, func(a []string) []inst { return one("jalr", "x0", a[0], "0") }},
	"ret": {0, func(a []string) []inst { return one("jalr", "x0", "x1", "0") }},

	"beqz": {2, func(a []string) []inst { return one("beq", a[0], "x0", a[1]) }},
	"bnez": {2, func(a []string) []inst { return one("bne", a[0], "x0", a[1]) }},
	"blez": {2, func(a []string) []inst { return one("bge", "x0", a[0], a[1]) }},
	"bgez": {2, func(a []string) []inst { return one("bge", a[0], "x0", a[1]) }},
	"bltz": {2, func(a []string) []inst { return one("blt", a[0], "x0", a[1]) }},
	"bgtz": {2, func(a []string) []inst { return one("blt", "x0", a[0], a[1]) }},
	"bgt":  {3, func(a []string) []inst { return one("blt", a[1], a[0], a[2]) }},
	"ble":  {3, func(a []string) []inst { return one("bge", a[1], a[0], a[2]) }},
	"bgtu": {3, func(a []string) []inst { return one("bltu", a[1], a[0], a[2]) }},
	"bleu": {3, func(a []string) []inst { return one("bgeu", a[1], a[0], a[2]) }},

	"csrr":  {2, func(a []string) []inst { return one("csrrs", a[0], a[1], "x0") }},
	"csrw":  {2, func(a []string) []inst { return one("csrrw", "x0", a[0], a[1]) }},
	"csrs":  {2, func(a []string) []inst { return one("csrrs", "x0", a[0], a[1]) }},
	"csrc":  {2, func(a []string) []inst { return one("csrrc", "x0", a[0], a[1]) }},
	"csrwi": {2, func(a []string) []inst { return one("csrrwi", "x0", a[0], a[1]) }},
	"csrsi": {2, func(a []string) []inst { return one("csrrsi", "x0", a[0], a[1]) }},
	"csrci": {2, func(a []string) []inst { return one("csrrci", "x0", a[0], a[1]) }},
}

func init() {
	for _, sfx := range []string{".s", ".d", ".q"} {
		sfx := sfx
		sign := func(real string) pseudo {
			return pseudo{2, func(a []string) []inst { return one(real+sfx, a[0], a[1], a[1]) }}
		}
		pseudos["fmv"+sfx] = sign("fsgnj")
		pseudos["fneg"+sfx] = sign("fsgnjn")
		pseudos["fabs"+sfx] = sign("fsgnjx")
	}
}

// expand rewrites pseudo-instructions, and the short forms of jal, jalr
// and fence, into real instructions. ok is false when name with these
// operands is not a pseudo-instruction.
func expand(name string, args []string) ([]inst, bool, error) {
	switch {
	case name == "li":
		if len(args) != 2 {
			return nil, true, pseudoCount(name, 2, len(args))
		}
		out, err := li(args[0], args[1])
		return out, true, err
	case name == "jal" && len(args) == 1:
		return one("jal", "x1", args[0]), true, nil
	case name == "jalr" && len(args) == 1:
		return one("jalr", "x1", args[0], "0"), true, nil
	case name == "jalr" && len(args) == 2:
		off, base, err := splitMemory(args[1])
		if err != nil {
			return nil, true, err
		}
		if off == "" {
			off = "0"
		}
		return one("jalr", args[0], base, off), true, nil
	case name == "fence" && len(args) == 0:
		return one("fence", "iorw", "iorw"), true, nil
	}

	p, ok := pseudos[name]
	if !ok {
		return nil, false, nil
	}
	if len(args) != p.n {
		return nil, true, pseudoCount(name, p.n, len(args))
	}
	return p.rewrite(args), true, nil
}

func pseudoCount(name string, want, got int) error {
	return isa.Errorf(isa.ErrOperandCount, "%s expects %d operands, got %d", name, want, got)
}

// li loads a 32-bit constant: a single addi when it fits in 12 signed
// bits, otherwise lui of the rounded upper 20 bits followed by addi of the
// remainder.
func li(rd, tok string) ([]inst, error) {
	v, err := isa.ParseInt(tok)
	if err != nil {
		return nil, err
	}
	if isa.CheckImmediate(v, 12, false) == nil {
		return one("addi", rd, "x0", strconv.FormatInt(v, 10)), nil
	}
	if v < -(1<<31) || v > 1<<32-1 {
		return nil, isa.Errorf(isa.ErrImmediateTooWide, "li immediate %d does not fit in 32 bits", v)
	}

	v = int64(int32(uint32(v)))
	upper := (v + 0x800) >> 12
	lower := v - upper<<12
	if isa.CheckImmediate(lower, 12, false) != nil {
		return nil, isa.Errorf(isa.ErrImmediateTooWide, "li immediate %d cannot be split into lui and addi", v)
	}
	return []inst{
		{"lui", []string{rd, strconv.FormatInt(upper&0xfffff, 10)}},
		{"addi", []string{rd, rd, strconv.FormatInt(lower, 10)}},
	}, nil
}
