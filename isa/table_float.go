package isa

// Floating-point format field values (fmt, bits 26:25).
const (
	fmtS = 0b00
	fmtD = 0b01
	fmtQ = 0b11
)

func fop(name string, f5, ft uint32, pat Pattern, ext Extension) Spec {
	return Spec{Name: name, Format: FormatFR, Opcode: opOpFP, Funct7: fn(f5<<2 | ft), Pattern: pat, RoundingMode: true, Ext: ext}
}

// fopFixed is fop for instructions whose funct3 is a constant rather than
// a rounding mode.
func fopFixed(name string, f5, ft, f3 uint32, pat Pattern, ext Extension) Spec {
	s := fop(name, f5, ft, pat, ext)
	s.RoundingMode = false
	s.Funct3 = fn(f3)
	return s
}

// floatGroup returns the instructions every floating-point format has,
// suffixed with sfx (".s", ".d" or ".q").
func floatGroup(sfx, mem string, ft, f3 uint32, ext Extension) []Spec {
	fused := func(name string, op uint8) Spec {
		return Spec{Name: name + sfx, Format: FormatFR4, Opcode: op, Funct2: fn(ft), Pattern: PatFR4, RoundingMode: true, Ext: ext}
	}
	return []Spec{
		{Name: "fl" + mem, Format: FormatFI, Opcode: opLoadFP, Funct3: fn(f3), Pattern: PatFLoad, ImmBits: 12, Ext: ext},
		{Name: "fs" + mem, Format: FormatFS, Opcode: opStoreFP, Funct3: fn(f3), Pattern: PatFStore, ImmBits: 12, Ext: ext},

		fused("fmadd", opMadd),
		fused("fmsub", opMsub),
		fused("fnmsub", opNmsub),
		fused("fnmadd", opNmadd),

		fop("fadd"+sfx, 0b00000, ft, PatFRRR, ext),
		fop("fsub"+sfx, 0b00001, ft, PatFRRR, ext),
		fop("fmul"+sfx, 0b00010, ft, PatFRRR, ext),
		fop("fdiv"+sfx, 0b00011, ft, PatFRRR, ext),
		fop("fsqrt"+sfx, 0b01011, ft, PatFRR, ext).rs2(0),

		fopFixed("fsgnj"+sfx, 0b00100, ft, 0b000, PatFRRR, ext),
		fopFixed("fsgnjn"+sfx, 0b00100, ft, 0b001, PatFRRR, ext),
		fopFixed("fsgnjx"+sfx, 0b00100, ft, 0b010, PatFRRR, ext),
		fopFixed("fmin"+sfx, 0b00101, ft, 0b000, PatFRRR, ext),
		fopFixed("fmax"+sfx, 0b00101, ft, 0b001, PatFRRR, ext),

		fopFixed("feq"+sfx, 0b10100, ft, 0b010, PatXFF, ext),
		fopFixed("flt"+sfx, 0b10100, ft, 0b001, PatXFF, ext),
		fopFixed("fle"+sfx, 0b10100, ft, 0b000, PatXFF, ext),
		fopFixed("fclass"+sfx, 0b11100, ft, 0b001, PatXF, ext).rs2(0),

		fop("fcvt.w"+sfx, 0b11000, ft, PatXF, ext).rs2(0),
		fop("fcvt.wu"+sfx, 0b11000, ft, PatXF, ext).rs2(1),
		fop("fcvt"+sfx+".w", 0b11010, ft, PatFX, ext).rs2(0),
		fop("fcvt"+sfx+".wu", 0b11010, ft, PatFX, ext).rs2(1),

		fop("fcvt.l"+sfx, 0b11000, ft, PatXF, ext).rs2(2).rv(RV64),
		fop("fcvt.lu"+sfx, 0b11000, ft, PatXF, ext).rs2(3).rv(RV64),
		fop("fcvt"+sfx+".l", 0b11010, ft, PatFX, ext).rs2(2).rv(RV64),
		fop("fcvt"+sfx+".lu", 0b11010, ft, PatFX, ext).rs2(3).rv(RV64),
	}
}

var floatSpecs = append(floatGroup(".s", "w", fmtS, 0b010, ExtF),
	fopFixed("fmv.x.w", 0b11100, fmtS, 0b000, PatXF, ExtF).rs2(0),
	fopFixed("fmv.w.x", 0b11110, fmtS, 0b000, PatFX, ExtF).rs2(0),
)

var doubleSpecs = append(floatGroup(".d", "d", fmtD, 0b011, ExtD),
	// fcvt.<to>.<from>: fmt is the destination, rs2 the source format.
	fop("fcvt.s.d", 0b01000, fmtS, PatFRR, ExtD).rs2(fmtD),
	fop("fcvt.d.s", 0b01000, fmtD, PatFRR, ExtD).rs2(fmtS),
	fopFixed("fmv.x.d", 0b11100, fmtD, 0b000, PatXF, ExtD).rs2(0).rv(RV64),
	fopFixed("fmv.d.x", 0b11110, fmtD, 0b000, PatFX, ExtD).rs2(0).rv(RV64),
)

var quadSpecs = append(floatGroup(".q", "q", fmtQ, 0b100, ExtQ),
	fop("fcvt.s.q", 0b01000, fmtS, PatFRR, ExtQ).rs2(fmtQ),
	fop("fcvt.q.s", 0b01000, fmtQ, PatFRR, ExtQ).rs2(fmtS),
	fop("fcvt.d.q", 0b01000, fmtD, PatFRR, ExtQ).rs2(fmtQ),
	fop("fcvt.q.d", 0b01000, fmtQ, PatFRR, ExtQ).rs2(fmtD),
)
