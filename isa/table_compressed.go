package isa

func cspec(name string, f Format, quadrant uint8, f3 uint32, pat Pattern) Spec {
	return Spec{Name: name, Format: f, Opcode: quadrant, Funct3: fn(f3), Pattern: pat, Ext: ExtC}
}

func creg(name string, f4 uint32, pat Pattern) Spec {
	s := cspec(name, FormatCR, quadrant2, 0b100, pat)
	s.Funct4 = fn(f4)
	return s
}

func carith(name string, f6, f2 uint32) Spec {
	s := cspec(name, FormatCA, quadrant1, 0b100, PatCRegReg)
	s.Funct6 = fn(f6)
	s.Funct2 = fn(f2)
	return s
}

func cbfunct(name string, f2 uint32, pat Pattern) Spec {
	s := cspec(name, FormatCB, quadrant1, 0b100, pat)
	s.Funct2 = fn(f2)
	return s
}

// Constant register and immediate fields of compressed encodings.
var (
	cZeroRs2 = Bits{Mask: rangeMask(6, 2)}
	cZeroRd  = Bits{Mask: rangeMask(11, 7)}
	cZeroImm = Bits{Mask: rangeMask(12, 12) | rangeMask(6, 2)}
	cRdSP    = Bits{Mask: rangeMask(11, 7), Value: 2 << 7}
)

// compressedSpecs is the C extension. Loads and stores of floating-point
// registers carry the F or D extension letter so they follow the float
// options. Several RV32 encodings are reused by RV64 for different
// instructions; those are limited with MaxXLEN.
var compressedSpecs = []Spec{
	// Quadrant 0
	cspec("c.addi4spn", FormatCIW, quadrant0, 0b000, PatCAddi4spn),
	cspec("c.fld", FormatCL, quadrant0, 0b001, PatCLoad).width(8).ext(ExtD),
	cspec("c.lw", FormatCL, quadrant0, 0b010, PatCLoad).width(4),
	cspec("c.flw", FormatCL, quadrant0, 0b011, PatCLoad).width(4).ext(ExtF).only(RV32),
	cspec("c.ld", FormatCL, quadrant0, 0b011, PatCLoad).width(8).rv(RV64),
	cspec("c.fsd", FormatCS, quadrant0, 0b101, PatCStore).width(8).ext(ExtD),
	cspec("c.sw", FormatCS, quadrant0, 0b110, PatCStore).width(4),
	cspec("c.fsw", FormatCS, quadrant0, 0b111, PatCStore).width(4).ext(ExtF).only(RV32),
	cspec("c.sd", FormatCS, quadrant0, 0b111, PatCStore).width(8).rv(RV64),

	// Quadrant 1
	cspec("c.nop", FormatCI, quadrant1, 0b000, PatNone).fixed(cZeroRd.or(cZeroImm)),
	cspec("c.addi", FormatCI, quadrant1, 0b000, PatCImm6),
	cspec("c.jal", FormatCJ, quadrant1, 0b001, PatCJump).only(RV32),
	cspec("c.addiw", FormatCI, quadrant1, 0b001, PatCImm6).rv(RV64),
	cspec("c.li", FormatCI, quadrant1, 0b010, PatCImm6),
	cspec("c.addi16sp", FormatCI, quadrant1, 0b011, PatCAddi16sp).fixed(cRdSP),
	cspec("c.lui", FormatCI, quadrant1, 0b011, PatCLui),
	cbfunct("c.srli", 0b00, PatCShift),
	cbfunct("c.srai", 0b01, PatCShift),
	cbfunct("c.andi", 0b10, PatCAndi),
	carith("c.sub", 0b100011, 0b00),
	carith("c.xor", 0b100011, 0b01),
	carith("c.or", 0b100011, 0b10),
	carith("c.and", 0b100011, 0b11),
	carith("c.subw", 0b100111, 0b00).rv(RV64),
	carith("c.addw", 0b100111, 0b01).rv(RV64),
	cspec("c.j", FormatCJ, quadrant1, 0b101, PatCJump),
	cspec("c.beqz", FormatCB, quadrant1, 0b110, PatCBranch),
	cspec("c.bnez", FormatCB, quadrant1, 0b111, PatCBranch),

	// Quadrant 2
	cspec("c.slli", FormatCI, quadrant2, 0b000, PatCShift),
	cspec("c.fldsp", FormatCI, quadrant2, 0b001, PatCLoadSP).width(8).ext(ExtD),
	cspec("c.lwsp", FormatCI, quadrant2, 0b010, PatCLoadSP).width(4),
	cspec("c.flwsp", FormatCI, quadrant2, 0b011, PatCLoadSP).width(4).ext(ExtF).only(RV32),
	cspec("c.ldsp", FormatCI, quadrant2, 0b011, PatCLoadSP).width(8).rv(RV64),
	creg("c.jr", 0b1000, PatCRs1).fixed(cZeroRs2),
	creg("c.mv", 0b1000, PatCRdRs2),
	creg("c.ebreak", 0b1001, PatNone).fixed(cZeroRd.or(cZeroRs2)),
	creg("c.jalr", 0b1001, PatCRs1).fixed(cZeroRs2),
	creg("c.add", 0b1001, PatCRdRs2),
	cspec("c.fsdsp", FormatCSS, quadrant2, 0b101, PatCStoreSP).width(8).ext(ExtD),
	cspec("c.swsp", FormatCSS, quadrant2, 0b110, PatCStoreSP).width(4),
	cspec("c.fswsp", FormatCSS, quadrant2, 0b111, PatCStoreSP).width(4).ext(ExtF).only(RV32),
	cspec("c.sdsp", FormatCSS, quadrant2, 0b111, PatCStoreSP).width(8).rv(RV64),
}
