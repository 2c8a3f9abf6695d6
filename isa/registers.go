package isa

import (
	"strconv"
	"strings"
)

var abiNames = [32]string{
	"zero", "ra", "sp", "gp", "tp", "t0", "t1", "t2",
	"s0", "s1", "a0", "a1", "a2", "a3", "a4", "a5",
	"a6", "a7", "s2", "s3", "s4", "s5", "s6", "s7",
	"s8", "s9", "s10", "s11", "t3", "t4", "t5", "t6",
}

var floatABINames = [32]string{
	"ft0", "ft1", "ft2", "ft3", "ft4", "ft5", "ft6", "ft7",
	"fs0", "fs1", "fa0", "fa1", "fa2", "fa3", "fa4", "fa5",
	"fa6", "fa7", "fs2", "fs3", "fs4", "fs5", "fs6", "fs7",
	"fs8", "fs9", "fs10", "fs11", "ft8", "ft9", "ft10", "ft11",
}

var (
	intRegs   = make(map[string]uint32)
	floatRegs = make(map[string]uint32)
)

func init() {
	for i, name := range abiNames {
		intRegs[name] = uint32(i)
	}
	intRegs["fp"] = 8
	for i, name := range floatABINames {
		floatRegs[name] = uint32(i)
	}
}

// numbered parses "<prefix><N>" with 0 <= N < 32.
func numbered(tok, prefix string) (uint32, bool) {
	if !strings.HasPrefix(tok, prefix) || len(tok) == len(prefix) {
		return 0, false
	}
	digits := tok[len(prefix):]
	if len(digits) > 1 && digits[0] == '0' {
		return 0, false
	}
	n, err := strconv.ParseUint(digits, 10, 8)
	if err != nil || n > 31 {
		return 0, false
	}
	return uint32(n), true
}

// ParseRegister parses an integer register given by ABI name or as x<N>.
// In embedded mode only x0 to x15 exist.
func ParseRegister(tok string, embedded bool) (uint32, error) {
	name := strings.ToLower(strings.TrimSpace(tok))
	idx, ok := intRegs[name]
	if !ok {
		idx, ok = numbered(name, "x")
	}
	if !ok {
		return 0, Errorf(ErrInvalidRegister, "invalid register %q", tok)
	}
	if embedded && idx > 15 {
		return 0, Errorf(ErrInvalidRegister, "register %q is not available in the embedded variant", tok)
	}
	return idx, nil
}

// FormatRegister returns the x<N> name of an integer register. Only the
// low five bits of idx are used.
func FormatRegister(idx uint32) string {
	return "x" + strconv.Itoa(int(idx&31))
}

// RegisterName returns the ABI name of an integer register.
func RegisterName(idx uint32) string {
	return abiNames[idx&31]
}

// ParseFloatRegister parses f<N> or a floating-point ABI name.
func ParseFloatRegister(tok string) (uint32, error) {
	name := strings.ToLower(strings.TrimSpace(tok))
	if idx, ok := floatRegs[name]; ok {
		return idx, nil
	}
	if idx, ok := numbered(name, "f"); ok {
		return idx, nil
	}
	return 0, Errorf(ErrInvalidRegister, "invalid floating-point register %q", tok)
}

func FormatFloatRegister(idx uint32) string {
	return "f" + strconv.Itoa(int(idx&31))
}

// ParseVectorRegister parses v<N>.
func ParseVectorRegister(tok string) (uint32, error) {
	name := strings.ToLower(strings.TrimSpace(tok))
	if idx, ok := numbered(name, "v"); ok {
		return idx, nil
	}
	return 0, Errorf(ErrInvalidRegister, "invalid vector register %q", tok)
}

func FormatVectorRegister(idx uint32) string {
	return "v" + strconv.Itoa(int(idx&31))
}

// ParseCompressedRegister parses an integer register that must be one of
// x8 to x15, the eight registers reachable from a 3-bit field, and returns
// that field value.
func ParseCompressedRegister(tok string, embedded bool) (uint32, error) {
	idx, err := ParseRegister(tok, embedded)
	if err != nil {
		return 0, err
	}
	if idx < 8 || idx > 15 {
		return 0, Errorf(ErrInvalidRegister, "register %q cannot be used in a compressed instruction (x8 to x15 only)", tok)
	}
	return idx - 8, nil
}

// ParseCompressedFloatRegister is ParseCompressedRegister for f8 to f15.
func ParseCompressedFloatRegister(tok string) (uint32, error) {
	idx, err := ParseFloatRegister(tok)
	if err != nil {
		return 0, err
	}
	if idx < 8 || idx > 15 {
		return 0, Errorf(ErrInvalidRegister, "register %q cannot be used in a compressed instruction (f8 to f15 only)", tok)
	}
	return idx - 8, nil
}

// CompressedRegister maps a 3-bit compressed register field to its
// register number.
func CompressedRegister(field uint32) uint32 {
	return field&7 + 8
}
