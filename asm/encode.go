package asm

import (
	"strings"

	"github.com/apparentlymart/riscv-asm/isa"
)

// bind matches the written operands to the spec's argument list. Missing
// optional operands come back as empty strings, and the vtype of vsetvli
// collects all remaining tokens.
func bind(spec *isa.Spec, syntax []isa.Arg, args []string) ([]string, error) {
	n := len(syntax)
	if n > 0 && syntax[n-1].Type == isa.ArgVType {
		if len(args) < n {
			return nil, operandCount(spec, n, len(args))
		}
		bound := append([]string(nil), args[:n-1]...)
		return append(bound, strings.Join(args[n-1:], ",")), nil
	}

	required := n
	for _, arg := range syntax {
		if arg.Optional() {
			required--
		}
	}
	if len(args) < required || len(args) > n {
		return nil, operandCount(spec, required, len(args))
	}
	bound := make([]string, n)
	copy(bound, args)
	return bound, nil
}

func operandCount(spec *isa.Spec, want, got int) error {
	return isa.Errorf(isa.ErrOperandCount, "%s expects %d operands, got %d", spec.Name, want, got)
}

// encode packs the operands of a real instruction into its word.
func (a *assembler) encode(spec *isa.Spec, args []string) (uint32, error) {
	syntax := spec.Args()
	toks, err := bind(spec, syntax, args)
	if err != nil {
		return 0, err
	}

	w := spec.Test()
	for i, arg := range syntax {
		bits, err := a.operand(spec, arg, toks[i])
		if err != nil {
			return 0, err
		}
		w |= bits
	}
	return w, nil
}

func (a *assembler) register(arg isa.Arg, tok string) (uint32, error) {
	switch arg.Type {
	case isa.ArgFloatReg:
		return isa.ParseFloatRegister(tok)
	case isa.ArgVectorReg:
		return isa.ParseVectorRegister(tok)
	case isa.ArgCompressedReg:
		return isa.ParseCompressedRegister(tok, a.opts.Embedded)
	case isa.ArgCompressedFloatReg:
		return isa.ParseCompressedFloatRegister(tok)
	case isa.ArgStackPointer:
		r, err := isa.ParseRegister(tok, a.opts.Embedded)
		if err != nil {
			return 0, err
		}
		if r != 2 {
			return 0, isa.Errorf(isa.ErrInvalidRegister, "expected sp, got %q", tok)
		}
		return 0, nil
	}

	r, err := isa.ParseRegister(tok, a.opts.Embedded)
	if err != nil {
		return 0, err
	}
	if arg.NonZero && r == 0 {
		return 0, isa.Errorf(isa.ErrInvalidRegister, "x0 cannot be used here")
	}
	if arg.NotSP && r == 2 {
		return 0, isa.Errorf(isa.ErrInvalidRegister, "sp cannot be used here")
	}
	return r, nil
}

func (a *assembler) operand(spec *isa.Spec, arg isa.Arg, tok string) (uint32, error) {
	switch arg.Type {
	case isa.ArgIntReg, isa.ArgFloatReg, isa.ArgVectorReg, isa.ArgCompressedReg, isa.ArgCompressedFloatReg, isa.ArgStackPointer:
		r, err := a.register(arg, tok)
		if err != nil {
			return 0, err
		}
		if arg.Type == isa.ArgStackPointer {
			return 0, nil
		}
		return arg.Field.Put(r), nil

	case isa.ArgImmediate:
		v, err := isa.ParseInt(tok)
		if err != nil {
			return 0, err
		}
		if arg.Upper && v >= 1<<19 && v < 1<<20 {
			v -= 1 << 20
		}
		if need := spec.ShiftXLEN(v); need != isa.XLENAuto {
			if err := a.xlen.RequireRange(spec.Name, need, isa.XLENAuto); err != nil {
				return 0, err
			}
		}
		return spec.Immediate().Encode(v)

	case isa.ArgMemory, isa.ArgAddress:
		offTok, baseTok, err := splitMemory(tok)
		if err != nil {
			return 0, err
		}
		var bits uint32
		if arg.Type == isa.ArgMemory {
			off := int64(0)
			if offTok != "" {
				if off, err = isa.ParseInt(offTok); err != nil {
					return 0, err
				}
			}
			if bits, err = spec.Immediate().Encode(off); err != nil {
				return 0, err
			}
		} else if offTok != "" && offTok != "0" {
			return 0, isa.Errorf(isa.ErrInvalidMemoryOperand, "%s takes no offset, got %q", spec.Name, tok)
		}
		base, err := a.register(isa.Arg{Type: arg.Base}, baseTok)
		if err != nil {
			return 0, err
		}
		if arg.Base != isa.ArgStackPointer {
			bits |= arg.Field.Put(base)
		}
		return bits, nil

	case isa.ArgCSR:
		n, err := isa.ParseCSR(tok)
		if err != nil {
			return 0, err
		}
		return arg.Field.Put(n), nil

	case isa.ArgUimm5:
		v, err := isa.ParseImmediate(tok, 5, true)
		if err != nil {
			return 0, err
		}
		return arg.Field.Put(uint32(v)), nil

	case isa.ArgFenceSet:
		v, err := isa.ParseFenceSet(tok)
		if err != nil {
			return 0, err
		}
		return arg.Field.Put(v), nil

	case isa.ArgRoundingMode:
		mode := uint32(isa.RoundDynamic)
		if tok != "" {
			var err error
			if mode, err = isa.ParseRoundingMode(tok); err != nil {
				return 0, err
			}
		}
		return arg.Field.Put(mode), nil

	case isa.ArgVectorMask:
		switch strings.ToLower(tok) {
		case "":
			return arg.Field.Put(1), nil
		case "v0.t":
			return 0, nil
		}
		return 0, isa.Errorf(isa.ErrInvalidOperand, "expected v0.t, got %q", tok)

	case isa.ArgV0:
		if strings.ToLower(tok) != "v0" {
			return 0, isa.Errorf(isa.ErrInvalidOperand, "%s takes its mask from v0, got %q", spec.Name, tok)
		}
		return 0, nil

	case isa.ArgVType:
		imm := spec.Immediate()
		v, err := isa.ParseVType(isa.Fields(tok), imm.Bits)
		if err != nil {
			return 0, err
		}
		return imm.Layout.Pack(v), nil
	}
	return 0, isa.Errorf(isa.ErrInvalidOperand, "unhandled operand %q", tok)
}

// splitMemory splits "offset(base)" into its two parts. The offset may be
// empty.
func splitMemory(tok string) (off, base string, err error) {
	open := strings.IndexByte(tok, '(')
	if open < 0 || !strings.HasSuffix(tok, ")") || strings.Count(tok, "(") != 1 || strings.Count(tok, ")") != 1 {
		return "", "", isa.Errorf(isa.ErrInvalidMemoryOperand, "expected offset(register), got %q", tok)
	}
	base = tok[open+1 : len(tok)-1]
	if base == "" {
		return "", "", isa.Errorf(isa.ErrInvalidMemoryOperand, "missing base register in %q", tok)
	}
	return tok[:open], base, nil
}
