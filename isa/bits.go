package isa

import (
	"fmt"
	"math/bits"
	"strconv"
	"strings"
)

func rangeMask(top, bottom uint) uint32 {
	return uint32((uint64(1) << (top + 1)) - (uint64(1) << bottom))
}

// field extracts bits top..bottom of w, right-justified.
func field(w uint32, top, bottom uint) uint32 {
	return (w & rangeMask(top, bottom)) >> bottom
}

// Field returns bits top..bottom of w, right-justified.
func Field(w uint32, top, bottom uint) uint32 {
	return field(w, top, bottom)
}

// Place puts the low bits of v into bits top..bottom of a word.
func Place(v uint32, top, bottom uint) uint32 {
	return (v << bottom) & rangeMask(top, bottom)
}

// SignExtend interprets the low n bits of v as a two's complement number.
func SignExtend(v uint32, n uint) int64 {
	shift := 64 - n
	return int64(uint64(v)<<shift) >> shift
}

// ParseInt parses a numeric literal: 0x hexadecimal, 0b binary or plain
// decimal, optionally signed, with underscores allowed between digits.
func ParseInt(tok string) (int64, error) {
	s := strings.ReplaceAll(strings.TrimSpace(tok), "_", "")
	neg := false
	switch {
	case strings.HasPrefix(s, "-"):
		neg = true
		s = s[1:]
	case strings.HasPrefix(s, "+"):
		s = s[1:]
	}
	if s == "" {
		return 0, Errorf(ErrInvalidOperand, "invalid number %q", tok)
	}

	base := 10
	lower := strings.ToLower(s)
	switch {
	case strings.HasPrefix(lower, "0x"):
		base = 16
		s = s[2:]
	case strings.HasPrefix(lower, "0b"):
		base = 2
		s = s[2:]
	}

	u, err := strconv.ParseUint(s, base, 64)
	if err != nil {
		return 0, Errorf(ErrInvalidOperand, "invalid number %q", tok)
	}
	if neg {
		if u > 1<<63 {
			return 0, Errorf(ErrInvalidOperand, "number %q out of range", tok)
		}
		return -int64(u), nil
	}
	if u > 1<<63-1 {
		return 0, Errorf(ErrInvalidOperand, "number %q out of range", tok)
	}
	return int64(u), nil
}

// CheckImmediate verifies that v fits in an n-bit field with the given
// signedness.
func CheckImmediate(v int64, n uint, unsigned bool) error {
	var lo, hi int64
	kind := "signed"
	if unsigned {
		kind = "unsigned"
		lo, hi = 0, int64(1)<<n-1
	} else {
		lo, hi = -(int64(1) << (n - 1)), int64(1)<<(n-1)-1
	}
	if v < lo || v > hi {
		return Errorf(ErrImmediateOutOfRange, "immediate %d out of range for %d-bit %s field [%d, %d]", v, n, kind, lo, hi)
	}
	return nil
}

// ParseImmediate parses tok and checks it against an n-bit field.
func ParseImmediate(tok string, n uint, unsigned bool) (int64, error) {
	v, err := ParseInt(tok)
	if err != nil {
		return 0, err
	}
	if err := CheckImmediate(v, n, unsigned); err != nil {
		return 0, err
	}
	return v, nil
}

// Base selects how immediates are written in disassembly.
type Base uint8

const (
	Hex Base = iota
	Dec
)

func (b Base) String() string {
	if b == Dec {
		return "dec"
	}
	return "hex"
}

// ParseBase accepts "hex" or "dec".
func ParseBase(s string) (Base, error) {
	switch strings.ToLower(s) {
	case "", "hex":
		return Hex, nil
	case "dec":
		return Dec, nil
	}
	return Hex, fmt.Errorf("unknown number base %q", s)
}

// FormatImm formats an immediate. Values between -9 and 9 read the same in
// both bases and are always written in decimal.
func FormatImm(v int64, base Base) string {
	if base == Dec || (v > -10 && v < 10) {
		return strconv.FormatInt(v, 10)
	}
	if v < 0 {
		return "-0x" + strconv.FormatUint(uint64(-v), 16)
	}
	return "0x" + strconv.FormatUint(uint64(v), 16)
}

// FormatWord formats a machine word as 0x followed by eight hex digits.
func FormatWord(w uint32) string {
	return fmt.Sprintf("0x%08x", w)
}

func popcount(v uint32) int {
	return bits.OnesCount32(v)
}
