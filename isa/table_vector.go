package isa

import "strconv"

// Vector arithmetic funct3 categories.
const (
	opIVV = 0b000
	opFVV = 0b001
	opMVV = 0b010
	opIVI = 0b011
	opIVX = 0b100
	opFVF = 0b101
	opMVX = 0b110
	opCFG = 0b111
)

func vop(name string, f6, f3 uint32, pat Pattern) Spec {
	s := Spec{Name: name, Format: FormatV, Opcode: opOpV, Funct3: fn(f3), Funct6: fn(f6), Pattern: pat, Ext: ExtV}
	if pat == PatVVI {
		s.ImmBits = 5
	}
	return s
}

// vshift is a .vi shift, whose immediate is unsigned.
func vshift(name string, f6 uint32) Spec {
	s := vop(name, f6, opIVI, PatVVI)
	s.Unsigned = true
	return s
}

// vints returns the integer forms of an operation named by forms: 'v' for
// .vv, 'x' for .vx and 'i' for .vi.
func vints(name string, f6 uint32, forms string) []Spec {
	var ret []Spec
	for _, form := range forms {
		switch form {
		case 'v':
			ret = append(ret, vop(name+".vv", f6, opIVV, PatVVV))
		case 'x':
			ret = append(ret, vop(name+".vx", f6, opIVX, PatVVX))
		case 'i':
			ret = append(ret, vop(name+".vi", f6, opIVI, PatVVI))
		}
	}
	return ret
}

// vmem returns the unit-stride, strided and indexed-unordered loads and
// stores for one element width. The "funct6" of these encodings is
// nf|mew|mop and the fixed rs2 is lumop/sumop.
func vmem(eew int, f3 uint32) []Spec {
	w := strconv.Itoa(eew)
	mem := func(name string, f Format, op uint8, mop uint32, pat Pattern) Spec {
		return Spec{Name: name, Format: f, Opcode: op, Funct3: fn(f3), Funct6: fn(mop), Pattern: pat, Ext: ExtV}
	}
	return []Spec{
		mem("vle"+w+".v", FormatVL, opLoadFP, 0b000000, PatVLoad).rs2(0),
		mem("vlse"+w+".v", FormatVL, opLoadFP, 0b000010, PatVLoadStrided),
		mem("vluxei"+w+".v", FormatVL, opLoadFP, 0b000001, PatVLoadIndexed),
		mem("vse"+w+".v", FormatVS, opStoreFP, 0b000000, PatVStore).rs2(0),
		mem("vsse"+w+".v", FormatVS, opStoreFP, 0b000010, PatVStoreStrided),
		mem("vsuxei"+w+".v", FormatVS, opStoreFP, 0b000001, PatVStoreIndexed),
	}
}

func vectorTable() []Spec {
	ret := []Spec{
		{Name: "vsetvli", Format: FormatV, Opcode: opOpV, Funct3: fn(opCFG), Pattern: PatVSetVLI, ImmBits: 11, Unsigned: true, Ext: ExtV,
			Fixed: Bits{Mask: rangeMask(31, 31)}},
		{Name: "vsetivli", Format: FormatV, Opcode: opOpV, Funct3: fn(opCFG), Pattern: PatVSetIVLI, ImmBits: 10, Unsigned: true, Ext: ExtV,
			Fixed: Bits{Mask: rangeMask(31, 30), Value: 0b11 << 30}},
		{Name: "vsetvl", Format: FormatV, Opcode: opOpV, Funct3: fn(opCFG), Pattern: PatVSetVL, Ext: ExtV,
			Fixed: Bits{Mask: rangeMask(31, 25), Value: 0b1000000 << 25}},
	}
	for _, m := range []struct {
		eew int
		f3  uint32
	}{{8, 0b000}, {16, 0b101}, {32, 0b110}, {64, 0b111}} {
		ret = append(ret, vmem(m.eew, m.f3)...)
	}

	ret = append(ret, vints("vadd", 0b000000, "vxi")...)
	ret = append(ret, vints("vsub", 0b000010, "vx")...)
	ret = append(ret, vints("vrsub", 0b000011, "xi")...)
	ret = append(ret, vints("vminu", 0b000100, "vx")...)
	ret = append(ret, vints("vmin", 0b000101, "vx")...)
	ret = append(ret, vints("vmaxu", 0b000110, "vx")...)
	ret = append(ret, vints("vmax", 0b000111, "vx")...)
	ret = append(ret, vints("vand", 0b001001, "vxi")...)
	ret = append(ret, vints("vor", 0b001010, "vxi")...)
	ret = append(ret, vints("vxor", 0b001011, "vxi")...)
	ret = append(ret, vints("vmseq", 0b011000, "vxi")...)
	ret = append(ret, vints("vmsne", 0b011001, "vxi")...)
	ret = append(ret, vints("vsll", 0b100101, "vx")...)
	ret = append(ret, vints("vsrl", 0b101000, "vx")...)
	ret = append(ret, vints("vsra", 0b101001, "vx")...)
	ret = append(ret,
		vshift("vsll.vi", 0b100101),
		vshift("vsrl.vi", 0b101000),
		vshift("vsra.vi", 0b101001),

		// vmerge and vmv share funct6 and funct3 and differ only in vm.
		vop("vmerge.vvm", 0b010111, opIVV, PatVMergeV).vm(0),
		vop("vmerge.vxm", 0b010111, opIVX, PatVMergeX).vm(0),
		vop("vmerge.vim", 0b010111, opIVI, PatVMergeI).vm(0),
		vop("vmv.v.v", 0b010111, opIVV, PatVMoveV).vm(1).rs2(0),
		vop("vmv.v.x", 0b010111, opIVX, PatVMoveX).vm(1).rs2(0),
		vop("vmv.v.i", 0b010111, opIVI, PatVMoveI).vm(1).rs2(0),

		vop("vmul.vv", 0b100101, opMVV, PatVVV),
		vop("vmul.vx", 0b100101, opMVX, PatVVX),
		vop("vmulh.vv", 0b100111, opMVV, PatVVV),
		vop("vmulh.vx", 0b100111, opMVX, PatVVX),
		vop("vmulhu.vv", 0b100100, opMVV, PatVVV),
		vop("vmulhu.vx", 0b100100, opMVX, PatVVX),
		vop("vdivu.vv", 0b100000, opMVV, PatVVV),
		vop("vdivu.vx", 0b100000, opMVX, PatVVX),
		vop("vdiv.vv", 0b100001, opMVV, PatVVV),
		vop("vdiv.vx", 0b100001, opMVX, PatVVX),

		vop("vfadd.vv", 0b000000, opFVV, PatVVV),
		vop("vfadd.vf", 0b000000, opFVF, PatVVF),
		vop("vfsub.vv", 0b000010, opFVV, PatVVV),
		vop("vfsub.vf", 0b000010, opFVF, PatVVF),
		vop("vfmul.vv", 0b100100, opFVV, PatVVV),
		vop("vfmul.vf", 0b100100, opFVF, PatVVF),
	)
	return ret
}

func (s Spec) vm(v uint32) Spec {
	s.VM = fn(v)
	return s
}

var vectorSpecs = vectorTable()
