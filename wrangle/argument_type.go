package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/apparentlymart/riscv-asm/isa"
)

var argTypeNames = map[isa.ArgType]string{
	isa.ArgIntReg:             "ireg",
	isa.ArgFloatReg:           "freg",
	isa.ArgVectorReg:          "vreg",
	isa.ArgCompressedReg:      "creg",
	isa.ArgCompressedFloatReg: "cfreg",
	isa.ArgStackPointer:       "sp",
	isa.ArgImmediate:          "imm",
	isa.ArgMemory:             "mem",
	isa.ArgAddress:            "addr",
	isa.ArgCSR:                "csr",
	isa.ArgUimm5:              "uimm5",
	isa.ArgFenceSet:           "fence",
	isa.ArgRoundingMode:       "rm",
	isa.ArgVectorMask:         "vm",
	isa.ArgV0:                 "v0",
	isa.ArgVType:              "vtype",
}

func argTypeName(ty isa.ArgType) string {
	if name, ok := argTypeNames[ty]; ok {
		return name
	}
	return "arg"
}

func rangeMask(top, bottom uint) bits32 {
	return bits32((uint64(1) << (top + 1)) - (uint64(1) << bottom))
}

// ArgDecodeStep is one "mask, then shift" operation. The results of all
// the steps of a layout are ORed together to produce the immediate.
type ArgDecodeStep struct {
	Mask       bits32
	RightShift int
}

func (s ArgDecodeStep) String() string {
	switch {
	case s.RightShift == 0:
		return fmt.Sprintf("(inst & %s)", s.Mask.String())
	case s.RightShift < 0:
		return fmt.Sprintf("(inst & %s) << %d", s.Mask.String(), -s.RightShift)
	default:
		return fmt.Sprintf("(inst & %s) >> %d", s.Mask.String(), s.RightShift)
	}
}

// decodeSteps converts an immediate layout into the equivalent sequence of
// decode steps.
func decodeSteps(l isa.Layout) []ArgDecodeStep {
	ret := make([]ArgDecodeStep, 0, len(l))
	for _, s := range l {
		ret = append(ret, ArgDecodeStep{
			Mask:       rangeMask(s.Top, s.Bottom),
			RightShift: int(s.Bottom) - int(s.At),
		})
	}
	return ret
}

// layoutSpec writes a layout in the "31|7|30:25|11:8" style of the ISA
// manual: the word bits that hold the immediate, from its most significant
// bit down.
func layoutSpec(l isa.Layout) string {
	type piece struct {
		at   uint
		text string
	}
	var pieces []piece
	for _, s := range l {
		text := fmt.Sprintf("%d:%d", s.Top, s.Bottom)
		if s.Top == s.Bottom {
			text = fmt.Sprint(s.Top)
		}
		pieces = append(pieces, piece{s.At, fmt.Sprintf("%s[%s]", text, immRange(s))})
	}
	sort.Slice(pieces, func(i, j int) bool {
		return pieces[i].at > pieces[j].at
	})
	parts := make([]string, len(pieces))
	for i, p := range pieces {
		parts[i] = p.text
	}
	return strings.Join(parts, "|")
}

func immRange(s isa.Slice) string {
	top := s.At + s.Top - s.Bottom
	if top == s.At {
		return fmt.Sprint(top)
	}
	return fmt.Sprintf("%d:%d", top, s.At)
}
