package isa

// Format identifies the bit layout family of an instruction.
type Format uint8

const (
	FormatR Format = iota
	FormatI
	FormatS
	FormatB
	FormatU
	FormatJ
	FormatFR
	FormatFI
	FormatFS
	FormatFR4
	FormatCR
	FormatCI
	FormatCSS
	FormatCIW
	FormatCL
	FormatCS
	FormatCA
	FormatCB
	FormatCJ
	FormatV
	FormatVL
	FormatVS
)

var formatNames = [...]string{
	FormatR: "R", FormatI: "I", FormatS: "S", FormatB: "B", FormatU: "U", FormatJ: "J",
	FormatFR: "FR", FormatFI: "FI", FormatFS: "FS", FormatFR4: "FR4",
	FormatCR: "CR", FormatCI: "CI", FormatCSS: "CSS", FormatCIW: "CIW", FormatCL: "CL",
	FormatCS: "CS", FormatCA: "CA", FormatCB: "CB", FormatCJ: "CJ",
	FormatV: "V", FormatVL: "VL", FormatVS: "VS",
}

func (f Format) String() string {
	if int(f) < len(formatNames) {
		return formatNames[f]
	}
	return "?"
}

// Compressed reports whether f is one of the 16-bit layouts.
func (f Format) Compressed() bool {
	return f >= FormatCR && f <= FormatCJ
}

// Pattern selects how an instruction's operands are written and where
// they are packed.
type Pattern uint8

const (
	PatNone       Pattern = iota // no operands
	PatRdRs1Rs2                  // rd, rs1, rs2
	PatRdRs1Imm                  // rd, rs1, imm
	PatRdRs1Shamt                // rd, rs1, shamt
	PatRdRs1                     // rd, rs1
	PatLoad                      // rd, off(rs1)
	PatStore                     // rs2, off(rs1)
	PatBranch                    // rs1, rs2, off
	PatUpper                     // rd, imm20
	PatJump                      // rd, off
	PatJalr                      // rd, rs1, imm  or  rd, off(rs1)
	PatFence                     // [pred, succ]
	PatCSR                       // rd, csr, rs1
	PatCSRImm                    // rd, csr, uimm
	PatAtomicLR                  // rd, (rs1)
	PatAtomic                    // rd, rs2, (rs1)

	PatFRRR  // frd, frs1, frs2
	PatFRR   // frd, frs1
	PatXFF   // rd, frs1, frs2
	PatXF    // rd, frs1
	PatFX    // frd, rs1
	PatFR4   // frd, frs1, frs2, frs3
	PatFLoad // frd, off(rs1)
	PatFStore

	PatVVV           // vd, vs2, vs1[, v0.t]
	PatVVX           // vd, vs2, rs1[, v0.t]
	PatVVI           // vd, vs2, imm5[, v0.t]
	PatVVF           // vd, vs2, fs1[, v0.t]
	PatVMergeV       // vd, vs2, vs1, v0
	PatVMergeX       // vd, vs2, rs1, v0
	PatVMergeI       // vd, vs2, imm5, v0
	PatVMoveV        // vd, vs1
	PatVMoveX        // vd, rs1
	PatVMoveI        // vd, imm5
	PatVLoad         // vd, (rs1)[, v0.t]
	PatVLoadStrided  // vd, (rs1), rs2[, v0.t]
	PatVLoadIndexed  // vd, (rs1), vs2[, v0.t]
	PatVStore        // vs3, (rs1)[, v0.t]
	PatVStoreStrided // vs3, (rs1), rs2[, v0.t]
	PatVStoreIndexed // vs3, (rs1), vs2[, v0.t]
	PatVSetVLI       // rd, rs1, vtype
	PatVSetIVLI      // rd, uimm5, vtype
	PatVSetVL        // rd, rs1, rs2

	PatCRdRs2 // rd, rs2 (c.mv, c.add)
	PatCRs1   // rs1 (c.jr, c.jalr)
	PatCImm6  // rd, imm6 (c.addi, c.li, c.addiw)
	PatCLui   // rd, nzimm6
	PatCShift // rd, shamt (c.slli, c.srli, c.srai)
	PatCAndi  // rd', imm6
	PatCAddi16sp
	PatCAddi4spn
	PatCLoadSP  // rd, off(sp)
	PatCStoreSP // rs2, off(sp)
	PatCLoad    // rd', off(rs1')
	PatCStore   // rs2', off(rs1')
	PatCRegReg  // rd', rs2'
	PatCBranch  // rs1', off
	PatCJump    // off
)

// Funct is an optional secondary opcode field. The zero value means the
// field does not take part in matching.
type Funct struct {
	Value uint32
	Valid bool
}

func fn(v uint32) Funct {
	return Funct{Value: v, Valid: true}
}

// Bits is a raw constant bit pattern an encoding must carry, for fields
// that are neither a funct nor a 12-bit immediate (c.nop's zero rd, for
// example).
type Bits struct {
	Mask, Value uint32
}

// Spec is the immutable description of one mnemonic.
type Spec struct {
	Name    string
	Format  Format
	Opcode  uint8 // 7-bit major opcode, or the 2-bit quadrant of a compressed instruction
	Funct2  Funct
	Funct3  Funct
	Funct4  Funct
	Funct5  Funct
	Funct6  Funct
	Funct7  Funct
	Pattern Pattern

	ImmBits  uint8
	Unsigned bool
	FixedImm Funct // constant imm[11:0]
	FixedRs2 Funct // constant rs2 / lumop field
	Fixed    Bits
	VM       Funct // constant vector mask bit

	// RoundingMode means funct3 holds a rounding mode operand rather than
	// a fixed value.
	RoundingMode bool

	// MemWidth is the access size in bytes of compressed loads and stores,
	// which decides their offset scrambling.
	MemWidth uint8

	MinXLEN XLEN
	MaxXLEN XLEN
	Ext     Extension

	key        uint8
	test, mask uint32
}

// Key returns the index key: the major opcode for standard instructions,
// or funct3<<2|quadrant for compressed ones.
func (s *Spec) Key() uint8 {
	return s.key
}

// Test and Mask describe the constant bits of the encoding: a word w is an
// instance of s when w&Mask == Test.
func (s *Spec) Test() uint32 { return s.test }
func (s *Spec) Mask() uint32 { return s.mask }

// Matches reports whether the machine word w is an encoding of s.
func (s *Spec) Matches(w uint32) bool {
	return w&s.mask == s.test
}

func (s *Spec) minXLEN() XLEN {
	if s.MinXLEN == XLENAuto {
		return RV32
	}
	return s.MinXLEN
}

// RequiredXLEN returns the minimum XLEN of s, defaulting to 32.
func (s *Spec) RequiredXLEN() XLEN {
	return s.minXLEN()
}

// IsCompressed reports whether s is a 16-bit instruction.
func (s *Spec) IsCompressed() bool {
	return s.Format.Compressed()
}

// CompressedKey builds the index key of a 16-bit word.
func CompressedKey(w uint32) uint8 {
	return uint8(field(w, 15, 13)<<2 | w&0b11)
}

// Key returns the index key for the machine word w.
func Key(w uint32) uint8 {
	if w&0b11 != 0b11 {
		return CompressedKey(w)
	}
	return uint8(w & 0x7f)
}

// compile derives the index key and the Test/Mask pair from the
// declarative fields.
func (s *Spec) compile() {
	var test, mask uint32
	put := func(f Funct, top, bottom uint) {
		if !f.Valid {
			return
		}
		mask |= rangeMask(top, bottom)
		test |= Place(f.Value, top, bottom)
	}

	if s.Format.Compressed() {
		put(fn(uint32(s.Opcode)), 1, 0)
		put(s.Funct3, 15, 13)
		switch s.Format {
		case FormatCR:
			put(s.Funct4, 15, 12)
		case FormatCA:
			put(s.Funct6, 15, 10)
			put(s.Funct2, 6, 5)
		case FormatCB:
			put(s.Funct2, 11, 10)
		}
		s.key = uint8(s.Funct3.Value<<2 | uint32(s.Opcode))
	} else {
		put(fn(uint32(s.Opcode)), 6, 0)
		put(s.Funct3, 14, 12)
		switch s.Format {
		case FormatFR4:
			put(s.Funct2, 26, 25)
		case FormatV, FormatVL, FormatVS:
			put(s.Funct6, 31, 26)
			put(s.VM, 25, 25)
		default:
			put(s.Funct5, 31, 27)
			put(s.Funct6, 31, 26)
		}
		if s.Pattern == PatAtomic || s.Pattern == PatAtomicLR {
			// aq and rl (bits 26:25) are operands, not part of the opcode.
			put(Funct{Value: s.Funct7.Value >> 2, Valid: s.Funct7.Valid}, 31, 27)
		} else {
			put(s.Funct7, 31, 25)
		}
		put(s.FixedImm, 31, 20)
		put(s.FixedRs2, 24, 20)
		s.key = s.Opcode
	}
	mask |= s.Fixed.Mask
	test |= s.Fixed.Value & s.Fixed.Mask
	s.test, s.mask = test, mask
}

// Specificity is the number of constant bits in the encoding.
func (s *Spec) Specificity() int {
	return popcount(s.mask)
}
