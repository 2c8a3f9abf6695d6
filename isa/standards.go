package isa

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// XLEN is a base integer register width. The zero value means the width
// is inferred from the instructions in use.
type XLEN uint8

const (
	XLENAuto XLEN = 0
	RV32     XLEN = 32
	RV64     XLEN = 64
	RV128    XLEN = 128
)

func (x XLEN) String() string {
	if x == XLENAuto {
		return "auto"
	}
	return strconv.Itoa(int(x))
}

// ParseXLEN accepts "auto", "32", "64" or "128", optionally prefixed by "rv".
func ParseXLEN(s string) (XLEN, error) {
	s = strings.TrimPrefix(strings.ToLower(strings.TrimSpace(s)), "rv")
	switch s {
	case "", "auto":
		return XLENAuto, nil
	case "32":
		return RV32, nil
	case "64":
		return RV64, nil
	case "128":
		return RV128, nil
	}
	return XLENAuto, fmt.Errorf("unsupported XLEN %q", s)
}

// Mode reports whether an XLEN was fixed by the caller or inferred.
type Mode uint8

const (
	ModeAuto Mode = iota
	ModeFixed
)

func (m Mode) String() string {
	if m == ModeFixed {
		return "fixed"
	}
	return "auto"
}

// ModeOf returns the mode implied by a configured XLEN.
func ModeOf(x XLEN) Mode {
	if x == XLENAuto {
		return ModeAuto
	}
	return ModeFixed
}

type Extension byte

const (
	ExtInvalid Extension = 0
	ExtI       Extension = 'I' // base integer
	ExtM       Extension = 'M' // multiply and divide
	ExtA       Extension = 'A' // atomic
	ExtF       Extension = 'F' // single-precision floating point
	ExtD       Extension = 'D' // double-precision floating point
	ExtQ       Extension = 'Q' // quad-precision floating point
	ExtC       Extension = 'C' // compressed
	ExtB       Extension = 'B' // bit manipulation
	ExtV       Extension = 'V' // vector
	ExtE       Extension = 'E' // embedded, 16 integer registers
)

func (e Extension) String() string {
	if e == ExtInvalid {
		return "?"
	}
	return string(rune(e))
}

// Extensions is a set of extension letters.
type Extensions map[Extension]struct{}

func (es Extensions) Has(e Extension) bool {
	_, ok := es[e]
	return ok
}

func (es Extensions) Add(e Extension) {
	es[e] = struct{}{}
}

func (es Extensions) String() string {
	var list []Extension
	for e := range es {
		list = append(list, e)
	}
	sort.Slice(list, func(i, j int) bool {
		return list[i] < list[j]
	})
	var buf strings.Builder
	for _, e := range list {
		buf.WriteByte(byte(e))
	}
	return buf.String()
}

// Standard names the base ISA and extension an instruction belongs to, in
// the usual "RV64D" form.
func (s *Spec) Standard() string {
	return fmt.Sprintf("RV%d%c", s.minXLEN(), s.Ext)
}

// Tracker accumulates the XLEN requirements of the instructions seen by a
// single assemble or disassemble call.
type Tracker struct {
	mode     XLEN
	detected XLEN
	ceiling  XLEN
}

func NewTracker(mode XLEN) *Tracker {
	return &Tracker{mode: mode}
}

// Require records that spec is in use, failing with ErrXLENMismatch if the
// configured or accumulated width cannot accommodate it.
func (t *Tracker) Require(spec *Spec) error {
	return t.RequireRange(spec.Name, spec.minXLEN(), spec.MaxXLEN)
}

// RequireRange is Require for an explicit [lo, hi] range; hi of zero means
// no upper bound.
func (t *Tracker) RequireRange(name string, lo, hi XLEN) error {
	if t.mode != XLENAuto {
		if lo > t.mode {
			return Errorf(ErrXLENMismatch, "%s requires XLEN %d or wider, but XLEN is %d", name, lo, t.mode)
		}
		if hi != XLENAuto && t.mode > hi {
			return Errorf(ErrXLENMismatch, "%s is only available with XLEN %d, but XLEN is %d", name, hi, t.mode)
		}
		return nil
	}

	detected := t.detected
	if lo > detected {
		detected = lo
	}
	ceiling := t.ceiling
	if hi != XLENAuto && (ceiling == XLENAuto || hi < ceiling) {
		ceiling = hi
	}
	if ceiling != XLENAuto && detected > ceiling {
		return Errorf(ErrXLENMismatch, "%s needs XLEN between %d and %d, but other instructions need XLEN %d", name, lo, ceiling, detected)
	}
	t.detected = detected
	t.ceiling = ceiling
	return nil
}

// Allows reports whether spec is legal under a fixed XLEN. In auto mode
// every spec is allowed.
func (t *Tracker) Allows(spec *Spec) bool {
	if t.mode == XLENAuto {
		return true
	}
	return spec.minXLEN() <= t.mode && (spec.MaxXLEN == XLENAuto || t.mode <= spec.MaxXLEN)
}

// Mode returns the XLEN the tracker was created with.
func (t *Tracker) Mode() XLEN {
	return t.mode
}

// Resolved returns the fixed XLEN, or in auto mode the widest XLEN
// required so far, defaulting to 32.
func (t *Tracker) Resolved() XLEN {
	if t.mode != XLENAuto {
		return t.mode
	}
	if t.detected == XLENAuto {
		return RV32
	}
	return t.detected
}
