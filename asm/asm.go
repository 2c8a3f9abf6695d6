// Package asm translates RISC-V assembly text into machine words.
package asm

import (
	"strings"

	"github.com/apparentlymart/riscv-asm/isa"
)

// Result is the detailed outcome of an assemble call.
type Result struct {
	Output string
	Words  []uint32
	XLEN   isa.XLEN
	Mode   isa.Mode
}

// Assemble translates src, one instruction per line, into newline-separated
// machine words formatted as 0x followed by eight hex digits.
func Assemble(src string, opts isa.Options) (string, error) {
	result, err := AssembleDetailed(src, opts)
	if err != nil {
		return "", err
	}
	return result.Output, nil
}

// AssembleDetailed is Assemble that also returns the words themselves and
// the XLEN the input required. The first error aborts the whole call and
// carries the number of the offending line.
func AssembleDetailed(src string, opts isa.Options) (*Result, error) {
	a := &assembler{
		table: isa.Default(),
		opts:  opts,
		xlen:  opts.Tracker(),
	}

	var words []uint32
	for _, line := range isa.Lines(src) {
		ws, err := a.line(line.Text)
		if err != nil {
			return nil, isa.AtLine(err, line.Num)
		}
		words = append(words, ws...)
	}

	out := make([]string, len(words))
	for i, w := range words {
		out[i] = isa.FormatWord(w)
	}
	return &Result{
		Output: strings.Join(out, "\n"),
		Words:  words,
		XLEN:   a.xlen.Resolved(),
		Mode:   isa.ModeOf(opts.XLEN),
	}, nil
}

// assembler holds the state of one call. The only thing that changes
// while it runs is the XLEN tracker.
type assembler struct {
	table *isa.Table
	opts  isa.Options
	xlen  *isa.Tracker
}

func (a *assembler) line(text string) ([]uint32, error) {
	fields := isa.Fields(text)
	if len(fields) == 0 {
		return nil, nil
	}
	name := strings.ToLower(fields[0])
	return a.instruction(name, fields[1:])
}

// instruction assembles one mnemonic, which may be a pseudo-instruction
// expanding to several words.
func (a *assembler) instruction(name string, args []string) ([]uint32, error) {
	if insts, ok, err := expand(name, args); ok {
		if err != nil {
			return nil, err
		}
		var words []uint32
		for _, inst := range insts {
			w, err := a.real(inst.name, inst.args)
			if err != nil {
				return nil, err
			}
			words = append(words, w)
		}
		return words, nil
	}

	w, err := a.real(name, args)
	if err != nil {
		return nil, err
	}
	return []uint32{w}, nil
}

// real assembles an instruction that has an encoding of its own.
func (a *assembler) real(name string, args []string) (uint32, error) {
	spec, err := a.table.Lookup(name)
	var aqrl uint32
	if err != nil {
		base, ordering := isa.AtomicOrdering(name)
		if ordering == 0 {
			return 0, err
		}
		spec, err = a.table.Lookup(base)
		if err != nil || !spec.IsAtomic() {
			return 0, isa.Errorf(isa.ErrUnsupportedInstruction, "unsupported instruction %q", name)
		}
		aqrl = ordering
	}

	if err := a.opts.CheckEnabled(spec); err != nil {
		return 0, err
	}
	if err := a.xlen.Require(spec); err != nil {
		return 0, err
	}

	w, err := a.encode(spec, args)
	if err != nil {
		return 0, err
	}
	if aqrl != 0 {
		w = isa.WithOrdering(w, aqrl)
	}
	return w, nil
}
