package isa

import "fmt"

// Major opcodes of the 32-bit encodings. The two low-order bits are always
// set for these.
const (
	opLoad    = 0b0000011
	opLoadFP  = 0b0000111
	opMiscMem = 0b0001111
	opOpImm   = 0b0010011
	opAuipc   = 0b0010111
	opOpImm32 = 0b0011011
	opStore   = 0b0100011
	opStoreFP = 0b0100111
	opAMO     = 0b0101111
	opOp      = 0b0110011
	opLui     = 0b0110111
	opOp32    = 0b0111011
	opMadd    = 0b1000011
	opMsub    = 0b1000111
	opNmsub   = 0b1001011
	opNmadd   = 0b1001111
	opOpFP    = 0b1010011
	opOpV     = 0b1010111
	opOpImm64 = 0b1011011 // RV128 only
	opBranch  = 0b1100011
	opJalr    = 0b1100111
	opJal     = 0b1101111
	opSystem  = 0b1110011
	opOp64    = 0b1111011 // RV128 only
)

// Compressed quadrants.
const (
	quadrant0 = 0b00
	quadrant1 = 0b01
	quadrant2 = 0b10
)

// Register fields that must be zero in several encodings.
var (
	zeroRd  = Bits{Mask: rangeMask(11, 7)}
	zeroRs1 = Bits{Mask: rangeMask(19, 15)}
)

func (b Bits) or(o Bits) Bits {
	return Bits{Mask: b.Mask | o.Mask, Value: b.Value | o.Value}
}

// The helpers below keep the extension tables declarative: each returns a
// plain Spec value and the modifiers return adjusted copies.

func (s Spec) rv(x XLEN) Spec {
	s.MinXLEN = x
	return s
}

func (s Spec) only(x XLEN) Spec {
	s.MaxXLEN = x
	return s
}

func (s Spec) ext(e Extension) Spec {
	s.Ext = e
	return s
}

func (s Spec) fixed(b Bits) Spec {
	s.Fixed = s.Fixed.or(b)
	return s
}

func (s Spec) rs2(v uint32) Spec {
	s.FixedRs2 = fn(v)
	return s
}

func (s Spec) width(n uint8) Spec {
	s.MemWidth = n
	return s
}

func rtype(name string, op uint8, f3, f7 uint32) Spec {
	return Spec{Name: name, Format: FormatR, Opcode: op, Funct3: fn(f3), Funct7: fn(f7), Pattern: PatRdRs1Rs2, Ext: ExtI}
}

func itype(name string, op uint8, f3 uint32) Spec {
	return Spec{Name: name, Format: FormatI, Opcode: op, Funct3: fn(f3), Pattern: PatRdRs1Imm, ImmBits: 12, Ext: ExtI}
}

// shift6 is an immediate shift whose funct6 leaves room for a 6-bit shift
// amount.
func shift6(name string, op uint8, f3, f6 uint32) Spec {
	return Spec{Name: name, Format: FormatI, Opcode: op, Funct3: fn(f3), Funct6: fn(f6), Pattern: PatRdRs1Shamt, ImmBits: 6, Unsigned: true, Ext: ExtI}
}

// shift7 is a base immediate shift. Only its funct5 is fixed, leaving room
// for the 7-bit shift amount of RV128; narrower bases use the low six or
// five bits.
func shift7(name string, op uint8, f3, f5 uint32) Spec {
	return Spec{Name: name, Format: FormatI, Opcode: op, Funct3: fn(f3), Funct5: fn(f5), Pattern: PatRdRs1Shamt, ImmBits: 7, Unsigned: true, Ext: ExtI}
}

// shift5 is a word-sized immediate shift with a full funct7.
func shift5(name string, op uint8, f3, f7 uint32) Spec {
	return Spec{Name: name, Format: FormatI, Opcode: op, Funct3: fn(f3), Funct7: fn(f7), Pattern: PatRdRs1Shamt, ImmBits: 5, Unsigned: true, Ext: ExtI}
}

// unary is an I-type instruction whose whole immediate is a constant.
func unary(name string, op uint8, f3, imm uint32) Spec {
	return Spec{Name: name, Format: FormatI, Opcode: op, Funct3: fn(f3), FixedImm: fn(imm), Pattern: PatRdRs1, Ext: ExtI}
}

func load(name string, f3 uint32) Spec {
	return Spec{Name: name, Format: FormatI, Opcode: opLoad, Funct3: fn(f3), Pattern: PatLoad, ImmBits: 12, Ext: ExtI}
}

func store(name string, f3 uint32) Spec {
	return Spec{Name: name, Format: FormatS, Opcode: opStore, Funct3: fn(f3), Pattern: PatStore, ImmBits: 12, Ext: ExtI}
}

func branch(name string, f3 uint32) Spec {
	return Spec{Name: name, Format: FormatB, Opcode: opBranch, Funct3: fn(f3), Pattern: PatBranch, ImmBits: 13, Ext: ExtI}
}

// system is a SYSTEM instruction without operands, told apart by its
// immediate.
func system(name string, imm uint32) Spec {
	return Spec{Name: name, Format: FormatI, Opcode: opSystem, Funct3: fn(0), FixedImm: fn(imm), Fixed: zeroRd.or(zeroRs1), Pattern: PatNone, Ext: ExtI}
}

func csr(name string, f3 uint32, pat Pattern) Spec {
	return Spec{Name: name, Format: FormatI, Opcode: opSystem, Funct3: fn(f3), Pattern: pat, ImmBits: 12, Unsigned: true, Ext: ExtI}
}

var opcodeNames = map[uint8]string{
	opLoad:    "LOAD",
	opLoadFP:  "LOAD-FP",
	opMiscMem: "MISC-MEM",
	opOpImm:   "OP-IMM",
	opAuipc:   "AUIPC",
	opOpImm32: "OP-IMM-32",
	opStore:   "STORE",
	opStoreFP: "STORE-FP",
	opAMO:     "AMO",
	opOp:      "OP",
	opLui:     "LUI",
	opOp32:    "OP-32",
	opMadd:    "MADD",
	opMsub:    "MSUB",
	opNmsub:   "NMSUB",
	opNmadd:   "NMADD",
	opOpFP:    "OP-FP",
	opOpV:     "OP-V",
	opOpImm64: "OP-IMM-64",
	opBranch:  "BRANCH",
	opJalr:    "JALR",
	opJal:     "JAL",
	opSystem:  "SYSTEM",
	opOp64:    "OP-64",
}

// KeyName names an index key: the major opcode name for standard
// instructions, or "C<quadrant>.<funct3>" for compressed ones.
func KeyName(key uint8) string {
	if key&0b11 != 0b11 {
		return fmt.Sprintf("C%d.%03b", key&0b11, key>>2)
	}
	if name, ok := opcodeNames[key]; ok {
		return name
	}
	return fmt.Sprintf("0b%07b", key)
}
