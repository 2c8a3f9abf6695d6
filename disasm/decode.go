package disasm

import (
	"strings"

	"github.com/apparentlymart/riscv-asm/isa"
)

// format writes w, an encoding of spec, as assembly text.
func (d *disassembler) format(spec *isa.Spec, w uint32) (string, error) {
	name := spec.Name
	if spec.IsAtomic() {
		name += isa.OrderingSuffix(isa.Ordering(w))
	}

	var ops []string
	for _, arg := range spec.Args() {
		s, err := d.operand(spec, arg, w)
		if err != nil {
			return "", err
		}
		if s != "" {
			ops = append(ops, s)
		}
	}
	if len(ops) == 0 {
		return name, nil
	}
	return name + " " + strings.Join(ops, ", "), nil
}

// register formats a register operand of any of the register types.
func (d *disassembler) register(spec *isa.Spec, arg isa.Arg, w uint32) (string, error) {
	r := arg.Field.Get(w)
	switch arg.Type {
	case isa.ArgFloatReg:
		return isa.FormatFloatRegister(r), nil
	case isa.ArgVectorReg:
		return isa.FormatVectorRegister(r), nil
	case isa.ArgCompressedReg:
		return isa.FormatRegister(isa.CompressedRegister(r)), nil
	case isa.ArgCompressedFloatReg:
		return isa.FormatFloatRegister(isa.CompressedRegister(r)), nil
	case isa.ArgStackPointer:
		return isa.FormatRegister(2), nil
	}

	if d.opts.Embedded && r > 15 {
		return "", isa.Errorf(isa.ErrInvalidRegister, "%s: register x%d does not exist in the embedded variant", isa.FormatWord(w), r)
	}
	return isa.FormatRegister(r), nil
}

func (d *disassembler) operand(spec *isa.Spec, arg isa.Arg, w uint32) (string, error) {
	base := d.opts.Base
	switch arg.Type {
	case isa.ArgIntReg, isa.ArgFloatReg, isa.ArgVectorReg, isa.ArgCompressedReg, isa.ArgCompressedFloatReg, isa.ArgStackPointer:
		return d.register(spec, arg, w)

	case isa.ArgImmediate:
		v := spec.Immediate().Decode(w)
		if need := spec.ShiftXLEN(v); need != isa.XLENAuto {
			if err := d.xlen.RequireRange(spec.Name, need, isa.XLENAuto); err != nil {
				return "", err
			}
		}
		if arg.Upper {
			v &= 0xfffff
		}
		return isa.FormatImm(v, base), nil

	case isa.ArgMemory, isa.ArgAddress:
		reg, err := d.register(spec, isa.Arg{Type: arg.Base, Field: arg.Field}, w)
		if err != nil {
			return "", err
		}
		if arg.Type == isa.ArgAddress {
			return "(" + reg + ")", nil
		}
		off := spec.Immediate().Decode(w)
		return isa.FormatImm(off, base) + "(" + reg + ")", nil

	case isa.ArgCSR:
		return isa.FormatCSR(arg.Field.Get(w), base), nil

	case isa.ArgUimm5:
		return isa.FormatImm(int64(arg.Field.Get(w)), base), nil

	case isa.ArgFenceSet:
		return isa.FormatFenceSet(arg.Field.Get(w)), nil

	case isa.ArgRoundingMode:
		mode := arg.Field.Get(w)
		if mode == isa.RoundDynamic {
			return "", nil
		}
		return isa.FormatRoundingMode(mode), nil

	case isa.ArgVectorMask:
		if arg.Field.Get(w) == 0 {
			return "v0.t", nil
		}
		return "", nil

	case isa.ArgV0:
		return "v0", nil

	case isa.ArgVType:
		return isa.FormatVType(uint32(spec.Immediate().Decode(w)), base), nil
	}
	return "", isa.Errorf(isa.ErrUnsupportedEncoding, "%s: cannot format operand of %s", isa.FormatWord(w), spec.Name)
}
