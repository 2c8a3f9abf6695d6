package isa

import "strings"

// BitRange is a contiguous field of an instruction word.
type BitRange struct {
	Top, Bottom uint
}

// Put places v in the field.
func (r BitRange) Put(v uint32) uint32 {
	return Place(v, r.Top, r.Bottom)
}

// Get extracts the field from w.
func (r BitRange) Get(w uint32) uint32 {
	return field(w, r.Top, r.Bottom)
}

// Register fields of the standard and compressed formats. The primed
// fields are the 3-bit forms that address x8 to x15.
var (
	Rd  = BitRange{11, 7}
	Rs1 = BitRange{19, 15}
	Rs2 = BitRange{24, 20}
	Rs3 = BitRange{31, 27}

	CRd      = BitRange{11, 7}
	CRs2     = BitRange{6, 2}
	CRdPrime = BitRange{9, 7}
	CRsPrime = BitRange{4, 2}

	fencePred = BitRange{27, 24}
	fenceSucc = BitRange{23, 20}
	csrNumber = BitRange{31, 20}
	roundMode = BitRange{14, 12}
	vmBit     = BitRange{25, 25}
	aqrlBits  = BitRange{26, 25}
)

// ArgType says how one written operand is parsed and printed.
type ArgType uint8

const (
	ArgIntReg             ArgType = iota // x<N> or ABI name
	ArgFloatReg                          // f<N>
	ArgVectorReg                         // v<N>
	ArgCompressedReg                     // x8..x15 in a 3-bit field
	ArgCompressedFloatReg                // f8..f15 in a 3-bit field
	ArgStackPointer                      // must be sp; not encoded
	ArgImmediate                         // the spec's Immediate()
	ArgMemory                            // offset(base)
	ArgAddress                           // (base), no offset
	ArgCSR                               // CSR name or number
	ArgUimm5                             // 5-bit unsigned in the rs1 field
	ArgFenceSet                          // iorw subset
	ArgRoundingMode                      // optional; dyn when omitted
	ArgVectorMask                        // optional v0.t
	ArgV0                                // the literal v0 of vmerge
	ArgVType                             // the remaining tokens
)

// Arg is one operand in an instruction's written form.
type Arg struct {
	Type  ArgType
	Field BitRange

	// Base is the register type of an ArgMemory or ArgAddress base:
	// ArgIntReg, ArgCompressedReg or ArgStackPointer.
	Base ArgType

	// NonZero rejects x0, whose encoding is reserved. NotSP likewise
	// rejects x2.
	NonZero bool
	NotSP   bool

	// Upper means the immediate is written as the 20-bit upper value of
	// lui rather than as the 6-bit field itself.
	Upper bool
}

// Optional reports whether the operand may be left out.
func (a Arg) Optional() bool {
	return a.Type == ArgRoundingMode || a.Type == ArgVectorMask
}

func x(f BitRange) Arg  { return Arg{Type: ArgIntReg, Field: f} }
func fr(f BitRange) Arg { return Arg{Type: ArgFloatReg, Field: f} }
func vr(f BitRange) Arg { return Arg{Type: ArgVectorReg, Field: f} }
func cx(f BitRange) Arg { return Arg{Type: ArgCompressedReg, Field: f} }
func nz(a Arg) Arg {
	a.NonZero = true
	return a
}

var (
	argImm   = Arg{Type: ArgImmediate}
	argSP    = Arg{Type: ArgStackPointer}
	argMask  = Arg{Type: ArgVectorMask, Field: vmBit}
	argRM    = Arg{Type: ArgRoundingMode, Field: roundMode}
	argAddr  = Arg{Type: ArgAddress, Base: ArgIntReg, Field: Rs1}
	argMem   = Arg{Type: ArgMemory, Base: ArgIntReg, Field: Rs1}
	argSPMem = Arg{Type: ArgMemory, Base: ArgStackPointer}
	argCMem  = Arg{Type: ArgMemory, Base: ArgCompressedReg, Field: CRdPrime}
	argUimm5 = Arg{Type: ArgUimm5, Field: Rs1}
	argVType = Arg{Type: ArgVType}
)

// isFloat reports whether a compressed load or store moves a
// floating-point register.
func (s *Spec) isFloat() bool {
	return s.Ext == ExtF || s.Ext == ExtD || s.Ext == ExtQ
}

// Args returns the operands of s in the order they are written.
func (s *Spec) Args() []Arg {
	var args []Arg
	switch s.Pattern {
	case PatNone:
	case PatRdRs1Rs2:
		args = []Arg{x(Rd), x(Rs1), x(Rs2)}
	case PatRdRs1Imm, PatRdRs1Shamt:
		args = []Arg{x(Rd), x(Rs1), argImm}
	case PatRdRs1:
		args = []Arg{x(Rd), x(Rs1)}
	case PatLoad:
		args = []Arg{x(Rd), argMem}
	case PatStore:
		args = []Arg{x(Rs2), argMem}
	case PatBranch:
		args = []Arg{x(Rs1), x(Rs2), argImm}
	case PatUpper, PatJump:
		args = []Arg{x(Rd), argImm}
	case PatJalr:
		args = []Arg{x(Rd), x(Rs1), argImm}
	case PatFence:
		args = []Arg{{Type: ArgFenceSet, Field: fencePred}, {Type: ArgFenceSet, Field: fenceSucc}}
	case PatCSR:
		args = []Arg{x(Rd), {Type: ArgCSR, Field: csrNumber}, x(Rs1)}
	case PatCSRImm:
		args = []Arg{x(Rd), {Type: ArgCSR, Field: csrNumber}, argUimm5}
	case PatAtomicLR:
		args = []Arg{x(Rd), argAddr}
	case PatAtomic:
		args = []Arg{x(Rd), x(Rs2), argAddr}

	case PatFRRR:
		args = []Arg{fr(Rd), fr(Rs1), fr(Rs2)}
	case PatFRR:
		args = []Arg{fr(Rd), fr(Rs1)}
	case PatXFF:
		args = []Arg{x(Rd), fr(Rs1), fr(Rs2)}
	case PatXF:
		args = []Arg{x(Rd), fr(Rs1)}
	case PatFX:
		args = []Arg{fr(Rd), x(Rs1)}
	case PatFR4:
		args = []Arg{fr(Rd), fr(Rs1), fr(Rs2), fr(Rs3)}
	case PatFLoad:
		args = []Arg{fr(Rd), argMem}
	case PatFStore:
		args = []Arg{fr(Rs2), argMem}

	case PatVVV:
		args = []Arg{vr(Rd), vr(Rs2), vr(Rs1), argMask}
	case PatVVX:
		args = []Arg{vr(Rd), vr(Rs2), x(Rs1), argMask}
	case PatVVI:
		args = []Arg{vr(Rd), vr(Rs2), argImm, argMask}
	case PatVVF:
		args = []Arg{vr(Rd), vr(Rs2), fr(Rs1), argMask}
	case PatVMergeV:
		args = []Arg{vr(Rd), vr(Rs2), vr(Rs1), {Type: ArgV0}}
	case PatVMergeX:
		args = []Arg{vr(Rd), vr(Rs2), x(Rs1), {Type: ArgV0}}
	case PatVMergeI:
		args = []Arg{vr(Rd), vr(Rs2), argImm, {Type: ArgV0}}
	case PatVMoveV:
		args = []Arg{vr(Rd), vr(Rs1)}
	case PatVMoveX:
		args = []Arg{vr(Rd), x(Rs1)}
	case PatVMoveI:
		args = []Arg{vr(Rd), argImm}
	case PatVLoad, PatVStore:
		args = []Arg{vr(Rd), argAddr, argMask}
	case PatVLoadStrided, PatVStoreStrided:
		args = []Arg{vr(Rd), argAddr, x(Rs2), argMask}
	case PatVLoadIndexed, PatVStoreIndexed:
		args = []Arg{vr(Rd), argAddr, vr(Rs2), argMask}
	case PatVSetVLI:
		args = []Arg{x(Rd), x(Rs1), argVType}
	case PatVSetIVLI:
		args = []Arg{x(Rd), argUimm5, argVType}
	case PatVSetVL:
		args = []Arg{x(Rd), x(Rs1), x(Rs2)}

	case PatCRdRs2:
		args = []Arg{x(CRd), nz(x(CRs2))}
	case PatCRs1:
		args = []Arg{nz(x(CRd))}
	case PatCImm6:
		rd := x(CRd)
		// c.addiw with rd=x0 is reserved; for c.addi and c.li it is a hint.
		rd.NonZero = s.MinXLEN == RV64
		args = []Arg{rd, argImm}
	case PatCLui:
		rd := nz(x(CRd))
		rd.NotSP = true
		args = []Arg{rd, {Type: ArgImmediate, Upper: true}}
	case PatCShift:
		if s.Format == FormatCB {
			args = []Arg{cx(CRdPrime), argImm}
		} else {
			args = []Arg{x(CRd), argImm}
		}
	case PatCAndi, PatCBranch:
		args = []Arg{cx(CRdPrime), argImm}
	case PatCAddi16sp:
		args = []Arg{argSP, argImm}
	case PatCAddi4spn:
		args = []Arg{cx(CRsPrime), argSP, argImm}
	case PatCLoadSP:
		if s.isFloat() {
			args = []Arg{fr(CRd), argSPMem}
		} else {
			args = []Arg{nz(x(CRd)), argSPMem}
		}
	case PatCStoreSP:
		if s.isFloat() {
			args = []Arg{fr(CRs2), argSPMem}
		} else {
			args = []Arg{x(CRs2), argSPMem}
		}
	case PatCLoad, PatCStore:
		if s.isFloat() {
			args = []Arg{{Type: ArgCompressedFloatReg, Field: CRsPrime}, argCMem}
		} else {
			args = []Arg{cx(CRsPrime), argCMem}
		}
	case PatCRegReg:
		args = []Arg{cx(CRdPrime), cx(CRsPrime)}
	case PatCJump:
		args = []Arg{argImm}
	}

	if s.RoundingMode {
		args = append(args, argRM)
	}
	return args
}

// Reserved reports what makes w, a word s matches, a reserved encoding of
// s, such as "x0" for c.jr x0. It returns "" when w is a legal instance.
func (s *Spec) Reserved(w uint32) string {
	for _, arg := range s.Args() {
		switch arg.Type {
		case ArgIntReg:
			r := arg.Field.Get(w)
			if arg.NonZero && r == 0 {
				return "x0"
			}
			if arg.NotSP && r == 2 {
				return "x2"
			}
		case ArgImmediate:
			if imm := s.Immediate(); imm.NonZero && imm.Decode(w) == 0 {
				return "a zero immediate"
			}
		case ArgRoundingMode:
			if mode := arg.Field.Get(w); mode != RoundDynamic && FormatRoundingMode(mode) == "" {
				return "rounding mode " + FormatImm(int64(mode), Dec)
			}
		}
	}
	return ""
}

// Ordering returns the aq and rl bits of an atomic instruction word.
func Ordering(w uint32) uint32 {
	return aqrlBits.Get(w)
}

// WithOrdering sets the aq and rl bits of an atomic instruction word.
func WithOrdering(w, aqrl uint32) uint32 {
	return w | aqrlBits.Put(aqrl)
}

// IsAtomic reports whether s takes the .aq/.rl ordering suffixes.
func (s *Spec) IsAtomic() bool {
	return s.Pattern == PatAtomic || s.Pattern == PatAtomicLR
}

var fieldNames = map[BitRange]string{
	Rd:       "rd",
	Rs1:      "rs1",
	Rs2:      "rs2",
	Rs3:      "rs3",
	CRs2:     "rs2",
	CRdPrime: "rd'",
	CRsPrime: "rs2'",
}

// String returns the placeholder an instruction synopsis uses for the
// operand, such as "rd", "off(rs1)" or "[v0.t]".
func (a Arg) String() string {
	reg := fieldNames[a.Field]
	switch a.Type {
	case ArgIntReg, ArgCompressedReg:
		return reg
	case ArgFloatReg, ArgCompressedFloatReg:
		return "f" + reg
	case ArgVectorReg:
		return "v" + reg[1:]
	case ArgStackPointer:
		return "sp"
	case ArgImmediate:
		if a.Upper {
			return "imm20"
		}
		return "imm"
	case ArgMemory:
		switch a.Base {
		case ArgStackPointer:
			return "off(sp)"
		case ArgCompressedReg:
			return "off(rs1')"
		}
		return "off(rs1)"
	case ArgAddress:
		return "(rs1)"
	case ArgCSR:
		return "csr"
	case ArgUimm5:
		return "uimm"
	case ArgFenceSet:
		if a.Field == fencePred {
			return "pred"
		}
		return "succ"
	case ArgRoundingMode:
		return "[rm]"
	case ArgVectorMask:
		return "[v0.t]"
	case ArgV0:
		return "v0"
	case ArgVType:
		return "vtype"
	}
	return "?"
}

// Synopsis is the written form of s with placeholder operands, for
// example "addi rd, rs1, imm".
func (s *Spec) Synopsis() string {
	args := s.Args()
	if len(args) == 0 {
		return s.Name
	}
	ops := make([]string, len(args))
	for i, arg := range args {
		ops[i] = arg.String()
	}
	return s.Name + " " + strings.Join(ops, ", ")
}
