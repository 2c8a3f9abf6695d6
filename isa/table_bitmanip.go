package isa

// bitmanipSpecs covers Zba, Zbb, Zbc and Zbs.
//
// rev8 and zext.h have different encodings on RV32 and RV64. Each mnemonic
// maps to one encoding here, the RV32 one.
var bitmanipSpecs = []Spec{
	// Zba
	rtype("sh1add", opOp, 0b010, 0b0010000).ext(ExtB),
	rtype("sh2add", opOp, 0b100, 0b0010000).ext(ExtB),
	rtype("sh3add", opOp, 0b110, 0b0010000).ext(ExtB),
	rtype("add.uw", opOp32, 0b000, 0b0000100).ext(ExtB).rv(RV64),
	rtype("sh1add.uw", opOp32, 0b010, 0b0010000).ext(ExtB).rv(RV64),
	rtype("sh2add.uw", opOp32, 0b100, 0b0010000).ext(ExtB).rv(RV64),
	rtype("sh3add.uw", opOp32, 0b110, 0b0010000).ext(ExtB).rv(RV64),
	shift6("slli.uw", opOpImm32, 0b001, 0b000010).ext(ExtB).rv(RV64),

	// Zbb
	rtype("andn", opOp, 0b111, 0b0100000).ext(ExtB),
	rtype("orn", opOp, 0b110, 0b0100000).ext(ExtB),
	rtype("xnor", opOp, 0b100, 0b0100000).ext(ExtB),
	rtype("max", opOp, 0b110, 0b0000101).ext(ExtB),
	rtype("maxu", opOp, 0b111, 0b0000101).ext(ExtB),
	rtype("min", opOp, 0b100, 0b0000101).ext(ExtB),
	rtype("minu", opOp, 0b101, 0b0000101).ext(ExtB),
	rtype("rol", opOp, 0b001, 0b0110000).ext(ExtB),
	rtype("ror", opOp, 0b101, 0b0110000).ext(ExtB),
	shift6("rori", opOpImm, 0b101, 0b011000).ext(ExtB),
	unary("clz", opOpImm, 0b001, 0x600).ext(ExtB),
	unary("ctz", opOpImm, 0b001, 0x601).ext(ExtB),
	unary("cpop", opOpImm, 0b001, 0x602).ext(ExtB),
	unary("sext.b", opOpImm, 0b001, 0x604).ext(ExtB),
	unary("sext.h", opOpImm, 0b001, 0x605).ext(ExtB),
	unary("orc.b", opOpImm, 0b101, 0x287).ext(ExtB),
	unary("rev8", opOpImm, 0b101, 0x698).ext(ExtB),
	{Name: "zext.h", Format: FormatR, Opcode: opOp, Funct3: fn(0b100), Funct7: fn(0b0000100), FixedRs2: fn(0), Pattern: PatRdRs1, Ext: ExtB},
	rtype("rolw", opOp32, 0b001, 0b0110000).ext(ExtB).rv(RV64),
	rtype("rorw", opOp32, 0b101, 0b0110000).ext(ExtB).rv(RV64),
	shift5("roriw", opOpImm32, 0b101, 0b0110000).ext(ExtB).rv(RV64),
	unary("clzw", opOpImm32, 0b001, 0x600).ext(ExtB).rv(RV64),
	unary("ctzw", opOpImm32, 0b001, 0x601).ext(ExtB).rv(RV64),
	unary("cpopw", opOpImm32, 0b001, 0x602).ext(ExtB).rv(RV64),

	// Zbc
	rtype("clmul", opOp, 0b001, 0b0000101).ext(ExtB),
	rtype("clmulr", opOp, 0b010, 0b0000101).ext(ExtB),
	rtype("clmulh", opOp, 0b011, 0b0000101).ext(ExtB),

	// Zbs
	rtype("bclr", opOp, 0b001, 0b0100100).ext(ExtB),
	rtype("bext", opOp, 0b101, 0b0100100).ext(ExtB),
	rtype("binv", opOp, 0b001, 0b0110100).ext(ExtB),
	rtype("bset", opOp, 0b001, 0b0010100).ext(ExtB),
	shift6("bclri", opOpImm, 0b001, 0b010010).ext(ExtB),
	shift6("bexti", opOpImm, 0b101, 0b010010).ext(ExtB),
	shift6("binvi", opOpImm, 0b001, 0b011010).ext(ExtB),
	shift6("bseti", opOpImm, 0b001, 0b001010).ext(ExtB),
}
