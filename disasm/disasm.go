// Package disasm translates RISC-V machine words back into assembly text.
package disasm

import (
	"strconv"
	"strings"

	"github.com/apparentlymart/riscv-asm/isa"
)

// Result is the detailed outcome of a disassemble call.
type Result struct {
	Output string
	Lines  []string
	XLEN   isa.XLEN
	Mode   isa.Mode
}

// Disassemble translates whitespace-separated machine words in src into
// newline-separated instructions.
func Disassemble(src string, opts isa.Options) (string, error) {
	result, err := DisassembleDetailed(src, opts)
	if err != nil {
		return "", err
	}
	return result.Output, nil
}

// DisassembleDetailed is Disassemble that also returns the individual
// lines and the XLEN the input required.
func DisassembleDetailed(src string, opts isa.Options) (*Result, error) {
	d := &disassembler{
		table: isa.Default(),
		opts:  opts,
		xlen:  opts.Tracker(),
	}

	var lines []string
	for _, line := range isa.Lines(src) {
		for _, tok := range isa.Fields(line.Text) {
			w, err := ParseWord(tok)
			if err != nil {
				return nil, isa.AtLine(err, line.Num)
			}
			text, err := d.word(w)
			if err != nil {
				return nil, isa.AtLine(err, line.Num)
			}
			lines = append(lines, text)
		}
	}

	return &Result{
		Output: strings.Join(lines, "\n"),
		Lines:  lines,
		XLEN:   d.xlen.Resolved(),
		Mode:   isa.ModeOf(opts.XLEN),
	}, nil
}

// ParseWord parses one machine word: 0x hexadecimal, 0b binary, decimal,
// or exactly eight hex digits without a prefix.
func ParseWord(tok string) (uint32, error) {
	if len(tok) == 8 && isHex(tok) {
		v, err := strconv.ParseUint(tok, 16, 32)
		if err == nil {
			return uint32(v), nil
		}
	}
	v, err := isa.ParseInt(tok)
	if err != nil {
		return 0, err
	}
	if v < 0 || v > 1<<32-1 {
		return 0, isa.Errorf(isa.ErrInvalidOperand, "machine word %q does not fit in 32 bits", tok)
	}
	return uint32(v), nil
}

func isHex(s string) bool {
	for _, c := range s {
		switch {
		case c >= '0' && c <= '9', c >= 'a' && c <= 'f', c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return true
}

type disassembler struct {
	table *isa.Table
	opts  isa.Options
	xlen  *isa.Tracker
}

func (d *disassembler) word(w uint32) (string, error) {
	if w&0b11 != 0b11 {
		if w>>16 != 0 {
			return "", isa.Errorf(isa.ErrUnsupportedEncoding, "compressed instruction %s has bits set above bit 15", isa.FormatWord(w))
		}
		if w == 0 {
			return "", isa.Errorf(isa.ErrUnsupportedEncoding, "%s is the defined illegal instruction", isa.FormatWord(w))
		}
	}

	spec, err := d.match(w)
	if err != nil {
		return "", err
	}
	if err := d.xlen.Require(spec); err != nil {
		return "", err
	}
	return d.format(spec, w)
}

// match finds the spec encoded by w. Candidates come from the index in
// priority order; those of disabled extensions are skipped, under a fixed
// XLEN so are those the width does not allow, and a candidate for which w
// is reserved gives way to the next one.
func (d *disassembler) match(w uint32) (*isa.Spec, error) {
	cands := d.table.Candidates(isa.Key(w))
	if len(cands) == 0 {
		return nil, isa.Errorf(isa.ErrUnknownOpcode, "unknown opcode in %s", isa.FormatWord(w))
	}

	var excluded, reserved *isa.Spec
	var what string
	for _, spec := range cands {
		if !spec.Matches(w) || !d.opts.Enabled(spec.Ext) {
			continue
		}
		if !d.xlen.Allows(spec) {
			if excluded == nil {
				excluded = spec
			}
			continue
		}
		if r := spec.Reserved(w); r != "" {
			if reserved == nil {
				reserved, what = spec, r
			}
			continue
		}
		return spec, nil
	}
	switch {
	case reserved != nil:
		return nil, isa.Errorf(isa.ErrUnsupportedEncoding, "%s: %s with %s is reserved", isa.FormatWord(w), reserved.Name, what)
	case excluded != nil:
		return nil, d.xlen.Require(excluded)
	}
	return nil, isa.Errorf(isa.ErrUnsupportedEncoding, "no instruction matches %s", isa.FormatWord(w))
}
