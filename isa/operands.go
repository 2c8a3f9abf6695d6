package isa

import "strings"

var csrNames = map[uint32]string{
	0x001: "fflags",
	0x002: "frm",
	0x003: "fcsr",
	0x008: "vstart",
	0x009: "vxsat",
	0x00a: "vxrm",
	0x00f: "vcsr",
	0x100: "sstatus",
	0x104: "sie",
	0x105: "stvec",
	0x106: "scounteren",
	0x140: "sscratch",
	0x141: "sepc",
	0x142: "scause",
	0x143: "stval",
	0x144: "sip",
	0x180: "satp",
	0x300: "mstatus",
	0x301: "misa",
	0x302: "medeleg",
	0x303: "mideleg",
	0x304: "mie",
	0x305: "mtvec",
	0x306: "mcounteren",
	0x340: "mscratch",
	0x341: "mepc",
	0x342: "mcause",
	0x343: "mtval",
	0x344: "mip",
	0xb00: "mcycle",
	0xb02: "minstret",
	0xc00: "cycle",
	0xc01: "time",
	0xc02: "instret",
	0xc20: "vl",
	0xc21: "vtype",
	0xc22: "vlenb",
	0xc80: "cycleh",
	0xc81: "timeh",
	0xc82: "instreth",
	0xf11: "mvendorid",
	0xf12: "marchid",
	0xf13: "mimpid",
	0xf14: "mhartid",
}

var csrNumbers = make(map[string]uint32, len(csrNames))

func init() {
	for n, name := range csrNames {
		csrNumbers[name] = n
	}
}

// ParseCSR accepts a CSR name or a 12-bit number.
func ParseCSR(tok string) (uint32, error) {
	if n, ok := csrNumbers[strings.ToLower(tok)]; ok {
		return n, nil
	}
	v, err := ParseInt(tok)
	if err != nil {
		return 0, Errorf(ErrInvalidOperand, "unknown CSR %q", tok)
	}
	if err := CheckImmediate(v, 12, true); err != nil {
		return 0, err
	}
	return uint32(v), nil
}

// FormatCSR returns the name of a CSR, or its number if it has none.
func FormatCSR(n uint32, base Base) string {
	if name, ok := csrNames[n]; ok {
		return name
	}
	return FormatImm(int64(n), base)
}

// RoundDynamic is the rounding mode that defers to the frm CSR.
const RoundDynamic = 0b111

var roundingModes = [...]string{0: "rne", 1: "rtz", 2: "rdn", 3: "rup", 4: "rmm", 7: "dyn"}

// ParseRoundingMode parses one of rne, rtz, rdn, rup, rmm or dyn.
func ParseRoundingMode(tok string) (uint32, error) {
	name := strings.ToLower(tok)
	for i, rm := range roundingModes {
		if rm != "" && rm == name {
			return uint32(i), nil
		}
	}
	return 0, Errorf(ErrInvalidOperand, "invalid rounding mode %q", tok)
}

// FormatRoundingMode returns the name of rm, or "" if rm is reserved.
func FormatRoundingMode(rm uint32) string {
	if int(rm) < len(roundingModes) {
		return roundingModes[rm]
	}
	return ""
}

// ParseFenceSet parses a fence predecessor or successor set such as "rw"
// or "iorw". "0" is the empty set.
func ParseFenceSet(tok string) (uint32, error) {
	s := strings.ToLower(tok)
	if s == "0" {
		return 0, nil
	}
	var v uint32
	for _, c := range s {
		var bit uint32
		switch c {
		case 'i':
			bit = 8
		case 'o':
			bit = 4
		case 'r':
			bit = 2
		case 'w':
			bit = 1
		default:
			return 0, Errorf(ErrInvalidOperand, "invalid fence set %q", tok)
		}
		if v&bit != 0 {
			return 0, Errorf(ErrInvalidOperand, "invalid fence set %q", tok)
		}
		v |= bit
	}
	if v == 0 {
		return 0, Errorf(ErrInvalidOperand, "invalid fence set %q", tok)
	}
	return v, nil
}

func FormatFenceSet(v uint32) string {
	if v&0xf == 0 {
		return "0"
	}
	var buf strings.Builder
	for i, c := range "iorw" {
		if v&(8>>uint(i)) != 0 {
			buf.WriteRune(c)
		}
	}
	return buf.String()
}

var (
	vsewNames  = [...]string{"e8", "e16", "e32", "e64"}
	vlmulNames = [...]string{0: "m1", 1: "m2", 2: "m4", 3: "m8", 5: "mf8", 6: "mf4", 7: "mf2"}
)

// ParseVType parses the vtype operand of vsetvli and vsetivli, written
// either as a number or as "e<SEW>, m<LMUL>[, ta|tu][, ma|mu]" split into
// tokens. Omitted policies are undisturbed.
func ParseVType(toks []string, bits uint) (uint32, error) {
	if len(toks) == 0 {
		return 0, Errorf(ErrOperandCount, "missing vtype operand")
	}
	if len(toks) == 1 {
		if v, err := ParseInt(toks[0]); err == nil {
			if err := CheckImmediate(v, bits, true); err != nil {
				return 0, err
			}
			return uint32(v), nil
		}
	}

	var vtype uint32
	sew, lmul := -1, 0
	seenTail, seenMask := false, false
	for _, tok := range toks {
		t := strings.ToLower(tok)
		switch {
		case indexOf(vsewNames[:], t) >= 0 && sew < 0:
			sew = indexOf(vsewNames[:], t)
		case indexOf(vlmulNames[:], t) >= 0:
			lmul = indexOf(vlmulNames[:], t)
		case (t == "ta" || t == "tu") && !seenTail:
			seenTail = true
			if t == "ta" {
				vtype |= 1 << 6
			}
		case (t == "ma" || t == "mu") && !seenMask:
			seenMask = true
			if t == "ma" {
				vtype |= 1 << 7
			}
		default:
			return 0, Errorf(ErrInvalidOperand, "invalid vtype element %q", tok)
		}
	}
	if sew < 0 {
		return 0, Errorf(ErrInvalidOperand, "vtype is missing the element width")
	}
	return vtype | uint32(sew)<<3 | uint32(lmul), nil
}

// FormatVType writes vtype symbolically when every field has a name, and
// as a number otherwise.
func FormatVType(v uint32, base Base) string {
	sew, lmul := v>>3&7, v&7
	if v>>8 != 0 || int(sew) >= len(vsewNames) || vlmulNames[lmul] == "" {
		return FormatImm(int64(v), base)
	}
	tail, mask := "tu", "mu"
	if v&(1<<6) != 0 {
		tail = "ta"
	}
	if v&(1<<7) != 0 {
		mask = "ma"
	}
	return strings.Join([]string{vsewNames[sew], vlmulNames[lmul], tail, mask}, ", ")
}

func indexOf(list []string, s string) int {
	if s == "" {
		return -1
	}
	for i, v := range list {
		if v == s {
			return i
		}
	}
	return -1
}

// AtomicOrdering splits an ".aq", ".rl" or ".aqrl" suffix off an atomic
// mnemonic and returns the aq and rl bits.
func AtomicOrdering(name string) (base string, aqrl uint32) {
	for _, sfx := range []struct {
		s    string
		bits uint32
	}{{".aqrl", 0b11}, {".aq", 0b10}, {".rl", 0b01}} {
		if strings.HasSuffix(name, sfx.s) {
			return strings.TrimSuffix(name, sfx.s), sfx.bits
		}
	}
	return name, 0
}

// OrderingSuffix is the inverse of AtomicOrdering.
func OrderingSuffix(aqrl uint32) string {
	switch aqrl & 3 {
	case 0b11:
		return ".aqrl"
	case 0b10:
		return ".aq"
	case 0b01:
		return ".rl"
	}
	return ""
}
