package isa

// baseSpecs is RV32I, RV64I and RV128I together with Zicsr, Zifencei and
// the machine/supervisor return instructions.
var baseSpecs = []Spec{
	{Name: "lui", Format: FormatU, Opcode: opLui, Pattern: PatUpper, ImmBits: 20, Unsigned: true, Ext: ExtI},
	{Name: "auipc", Format: FormatU, Opcode: opAuipc, Pattern: PatUpper, ImmBits: 20, Unsigned: true, Ext: ExtI},
	{Name: "jal", Format: FormatJ, Opcode: opJal, Pattern: PatJump, ImmBits: 21, Ext: ExtI},
	{Name: "jalr", Format: FormatI, Opcode: opJalr, Funct3: fn(0), Pattern: PatJalr, ImmBits: 12, Ext: ExtI},

	branch("beq", 0b000),
	branch("bne", 0b001),
	branch("blt", 0b100),
	branch("bge", 0b101),
	branch("bltu", 0b110),
	branch("bgeu", 0b111),

	load("lb", 0b000),
	load("lh", 0b001),
	load("lw", 0b010),
	load("lbu", 0b100),
	load("lhu", 0b101),
	store("sb", 0b000),
	store("sh", 0b001),
	store("sw", 0b010),

	itype("addi", opOpImm, 0b000),
	itype("slti", opOpImm, 0b010),
	itype("sltiu", opOpImm, 0b011),
	itype("xori", opOpImm, 0b100),
	itype("ori", opOpImm, 0b110),
	itype("andi", opOpImm, 0b111),
	shift7("slli", opOpImm, 0b001, 0b00000),
	shift7("srli", opOpImm, 0b101, 0b00000),
	shift7("srai", opOpImm, 0b101, 0b01000),

	rtype("add", opOp, 0b000, 0b0000000),
	rtype("sub", opOp, 0b000, 0b0100000),
	rtype("sll", opOp, 0b001, 0b0000000),
	rtype("slt", opOp, 0b010, 0b0000000),
	rtype("sltu", opOp, 0b011, 0b0000000),
	rtype("xor", opOp, 0b100, 0b0000000),
	rtype("srl", opOp, 0b101, 0b0000000),
	rtype("sra", opOp, 0b101, 0b0100000),
	rtype("or", opOp, 0b110, 0b0000000),
	rtype("and", opOp, 0b111, 0b0000000),

	{Name: "fence", Format: FormatI, Opcode: opMiscMem, Funct3: fn(0), Pattern: PatFence, Ext: ExtI,
		Fixed: zeroRd.or(zeroRs1).or(Bits{Mask: rangeMask(31, 28)})},
	{Name: "fence.i", Format: FormatI, Opcode: opMiscMem, Funct3: fn(1), FixedImm: fn(0), Pattern: PatNone, Ext: ExtI,
		Fixed: zeroRd.or(zeroRs1)},

	system("ecall", 0x000),
	system("ebreak", 0x001),
	system("sret", 0x102),
	system("wfi", 0x105),
	system("mret", 0x302),

	csr("csrrw", 0b001, PatCSR),
	csr("csrrs", 0b010, PatCSR),
	csr("csrrc", 0b011, PatCSR),
	csr("csrrwi", 0b101, PatCSRImm),
	csr("csrrsi", 0b110, PatCSRImm),
	csr("csrrci", 0b111, PatCSRImm),

	// RV64I
	load("lwu", 0b110).rv(RV64),
	load("ld", 0b011).rv(RV64),
	store("sd", 0b011).rv(RV64),
	itype("addiw", opOpImm32, 0b000).rv(RV64),
	shift5("slliw", opOpImm32, 0b001, 0b0000000).rv(RV64),
	shift5("srliw", opOpImm32, 0b101, 0b0000000).rv(RV64),
	shift5("sraiw", opOpImm32, 0b101, 0b0100000).rv(RV64),
	rtype("addw", opOp32, 0b000, 0b0000000).rv(RV64),
	rtype("subw", opOp32, 0b000, 0b0100000).rv(RV64),
	rtype("sllw", opOp32, 0b001, 0b0000000).rv(RV64),
	rtype("srlw", opOp32, 0b101, 0b0000000).rv(RV64),
	rtype("sraw", opOp32, 0b101, 0b0100000).rv(RV64),

	// RV128I
	load("ldu", 0b111).rv(RV128),
	{Name: "lq", Format: FormatI, Opcode: opMiscMem, Funct3: fn(0b010), Pattern: PatLoad, ImmBits: 12, MinXLEN: RV128, Ext: ExtI},
	store("sq", 0b100).rv(RV128),
	itype("addid", opOpImm64, 0b000).rv(RV128),
	shift6("sllid", opOpImm64, 0b001, 0b000000).rv(RV128),
	shift6("srlid", opOpImm64, 0b101, 0b000000).rv(RV128),
	shift6("sraid", opOpImm64, 0b101, 0b010000).rv(RV128),
	rtype("addd", opOp64, 0b000, 0b0000000).rv(RV128),
	rtype("subd", opOp64, 0b000, 0b0100000).rv(RV128),
	rtype("slld", opOp64, 0b001, 0b0000000).rv(RV128),
	rtype("srld", opOp64, 0b101, 0b0000000).rv(RV128),
	rtype("srad", opOp64, 0b101, 0b0100000).rv(RV128),
}

var mulSpecs = []Spec{
	rtype("mul", opOp, 0b000, 0b0000001).ext(ExtM),
	rtype("mulh", opOp, 0b001, 0b0000001).ext(ExtM),
	rtype("mulhsu", opOp, 0b010, 0b0000001).ext(ExtM),
	rtype("mulhu", opOp, 0b011, 0b0000001).ext(ExtM),
	rtype("div", opOp, 0b100, 0b0000001).ext(ExtM),
	rtype("divu", opOp, 0b101, 0b0000001).ext(ExtM),
	rtype("rem", opOp, 0b110, 0b0000001).ext(ExtM),
	rtype("remu", opOp, 0b111, 0b0000001).ext(ExtM),

	rtype("mulw", opOp32, 0b000, 0b0000001).ext(ExtM).rv(RV64),
	rtype("divw", opOp32, 0b100, 0b0000001).ext(ExtM).rv(RV64),
	rtype("divuw", opOp32, 0b101, 0b0000001).ext(ExtM).rv(RV64),
	rtype("remw", opOp32, 0b110, 0b0000001).ext(ExtM).rv(RV64),
	rtype("remuw", opOp32, 0b111, 0b0000001).ext(ExtM).rv(RV64),

	rtype("muld", opOp64, 0b000, 0b0000001).ext(ExtM).rv(RV128),
	rtype("divd", opOp64, 0b100, 0b0000001).ext(ExtM).rv(RV128),
	rtype("divud", opOp64, 0b101, 0b0000001).ext(ExtM).rv(RV128),
	rtype("remd", opOp64, 0b110, 0b0000001).ext(ExtM).rv(RV128),
	rtype("remud", opOp64, 0b111, 0b0000001).ext(ExtM).rv(RV128),
}

var atomicSpecs = append(atomicWidth("w", 0b010, RV32), atomicWidth("d", 0b011, RV64)...)

// atomicWidth builds the A extension instructions for one access width.
// Funct7 holds funct5<<2; the aq and rl bits below it are operands.
func atomicWidth(suffix string, f3 uint32, x XLEN) []Spec {
	amo := func(name string, f5 uint32) Spec {
		return Spec{Name: name + "." + suffix, Format: FormatR, Opcode: opAMO, Funct3: fn(f3), Funct7: fn(f5 << 2), Pattern: PatAtomic, MinXLEN: x, Ext: ExtA}
	}
	lr := amo("lr", 0b00010)
	lr.Pattern = PatAtomicLR
	lr.FixedRs2 = fn(0)
	return []Spec{
		lr,
		amo("sc", 0b00011),
		amo("amoswap", 0b00001),
		amo("amoadd", 0b00000),
		amo("amoxor", 0b00100),
		amo("amoand", 0b01100),
		amo("amoor", 0b01000),
		amo("amomin", 0b10000),
		amo("amomax", 0b10100),
		amo("amominu", 0b11000),
		amo("amomaxu", 0b11100),
	}
}
