package isa

// Slice is one piece of a scattered immediate: word bits Top..Bottom hold
// the immediate's bits starting at bit At.
type Slice struct {
	Top, Bottom, At uint
}

// Layout describes where the bits of an immediate live in an instruction
// word. Encoding and decoding walk the same list of slices in opposite
// directions.
type Layout []Slice

// Pack scatters the immediate bits of v into a word.
func (l Layout) Pack(v uint32) uint32 {
	var w uint32
	for _, s := range l {
		w |= Place(v>>s.At, s.Top, s.Bottom)
	}
	return w
}

// Unpack gathers the immediate bits from w, right-justified.
func (l Layout) Unpack(w uint32) uint32 {
	var v uint32
	for _, s := range l {
		v |= field(w, s.Top, s.Bottom) << s.At
	}
	return v
}

// Width is the number of immediate bits the layout can represent,
// including any implied low zero bits.
func (l Layout) Width() uint {
	var n uint
	for _, s := range l {
		if top := s.At + s.Top - s.Bottom + 1; top > n {
			n = top
		}
	}
	return n
}

// Align is the required alignment of values encoded by the layout: one
// more than the mask of the low bits no slice covers.
func (l Layout) Align() int64 {
	low := ^uint(0)
	for _, s := range l {
		if s.At < low {
			low = s.At
		}
	}
	if len(l) == 0 {
		return 1
	}
	return int64(1) << low
}

var (
	layoutI     = Layout{{31, 20, 0}}
	layoutS     = Layout{{31, 25, 5}, {11, 7, 0}}
	layoutB     = Layout{{31, 31, 12}, {30, 25, 5}, {11, 8, 1}, {7, 7, 11}}
	layoutU     = Layout{{31, 12, 0}}
	layoutJ     = Layout{{31, 31, 20}, {30, 21, 1}, {20, 20, 11}, {19, 12, 12}}
	layoutRs1   = Layout{{19, 15, 0}}
	layoutVLI   = Layout{{30, 20, 0}}
	layoutIVLI  = Layout{{29, 20, 0}}
	layoutCI    = Layout{{12, 12, 5}, {6, 2, 0}}
	layoutC16SP = Layout{{12, 12, 9}, {6, 6, 4}, {5, 5, 6}, {4, 3, 7}, {2, 2, 5}}
	layoutC4SPN = Layout{{12, 11, 4}, {10, 7, 6}, {6, 6, 2}, {5, 5, 3}}
	layoutCLWSP = Layout{{12, 12, 5}, {6, 4, 2}, {3, 2, 6}}
	layoutCLDSP = Layout{{12, 12, 5}, {6, 5, 3}, {4, 2, 6}}
	layoutCSWSP = Layout{{12, 9, 2}, {8, 7, 6}}
	layoutCSDSP = Layout{{12, 10, 3}, {9, 7, 6}}
	layoutCLW   = Layout{{12, 10, 3}, {6, 6, 2}, {5, 5, 6}}
	layoutCLD   = Layout{{12, 10, 3}, {6, 5, 6}}
	layoutCB    = Layout{{12, 12, 8}, {11, 10, 3}, {6, 5, 6}, {4, 3, 1}, {2, 2, 5}}
	layoutCJ    = Layout{{12, 12, 11}, {11, 11, 4}, {10, 9, 8}, {8, 8, 10}, {7, 7, 6}, {6, 6, 7}, {5, 3, 1}, {2, 2, 5}}
)

// Immediate is the main immediate operand of an instruction: where it is
// stored and which values are legal.
type Immediate struct {
	Layout   Layout
	Bits     uint
	Unsigned bool
	NonZero  bool
}

// Valid reports whether the instruction has an immediate operand at all.
func (f Immediate) Valid() bool {
	return len(f.Layout) != 0
}

// Check verifies that v is representable.
func (f Immediate) Check(v int64) error {
	if err := CheckImmediate(v, f.Bits, f.Unsigned); err != nil {
		return err
	}
	if align := f.Layout.Align(); v%align != 0 {
		return Errorf(ErrMisalignedOffset, "offset %d is not a multiple of %d", v, align)
	}
	if f.NonZero && v == 0 {
		return Errorf(ErrImmediateOutOfRange, "immediate must not be zero")
	}
	return nil
}

// Encode checks v and returns it scattered into its word position.
func (f Immediate) Encode(v int64) (uint32, error) {
	if err := f.Check(v); err != nil {
		return 0, err
	}
	return f.Layout.Pack(uint32(v)), nil
}

// Decode extracts the immediate from w, sign-extending it unless it is
// unsigned.
func (f Immediate) Decode(w uint32) int64 {
	v := f.Layout.Unpack(w)
	if f.Unsigned {
		return int64(v)
	}
	return SignExtend(v, f.Bits)
}

func compressedImmediate(l Layout, unsigned, nonZero bool) Immediate {
	return Immediate{Layout: l, Bits: l.Width(), Unsigned: unsigned, NonZero: nonZero}
}

// Immediate returns the layout and range of the instruction's main
// immediate operand. For CSR instructions that is the CSR number, and for
// vsetvli and vsetivli the vtype.
func (s *Spec) Immediate() Immediate {
	switch s.Pattern {
	case PatRdRs1Shamt:
		return Immediate{Layout: Layout{{19 + uint(s.ImmBits), 20, 0}}, Bits: uint(s.ImmBits), Unsigned: true}
	case PatVVI, PatVMergeI, PatVMoveI:
		return Immediate{Layout: layoutRs1, Bits: 5, Unsigned: s.Unsigned}
	case PatVSetVLI:
		return Immediate{Layout: layoutVLI, Bits: 11, Unsigned: true}
	case PatVSetIVLI:
		return Immediate{Layout: layoutIVLI, Bits: 10, Unsigned: true}

	case PatCImm6, PatCAndi:
		return compressedImmediate(layoutCI, false, false)
	case PatCLui:
		return compressedImmediate(layoutCI, false, true)
	case PatCShift:
		return compressedImmediate(layoutCI, true, false)
	case PatCAddi16sp:
		return compressedImmediate(layoutC16SP, false, true)
	case PatCAddi4spn:
		return compressedImmediate(layoutC4SPN, true, true)
	case PatCLoadSP:
		if s.MemWidth == 8 {
			return compressedImmediate(layoutCLDSP, true, false)
		}
		return compressedImmediate(layoutCLWSP, true, false)
	case PatCStoreSP:
		if s.MemWidth == 8 {
			return compressedImmediate(layoutCSDSP, true, false)
		}
		return compressedImmediate(layoutCSWSP, true, false)
	case PatCLoad, PatCStore:
		if s.MemWidth == 8 {
			return compressedImmediate(layoutCLD, true, false)
		}
		return compressedImmediate(layoutCLW, true, false)
	case PatCBranch:
		return compressedImmediate(layoutCB, false, false)
	case PatCJump:
		return compressedImmediate(layoutCJ, false, false)
	}

	if s.ImmBits == 0 {
		return Immediate{}
	}
	f := Immediate{Bits: uint(s.ImmBits), Unsigned: s.Unsigned}
	switch s.Format {
	case FormatI, FormatFI:
		f.Layout = layoutI
	case FormatS, FormatFS:
		f.Layout = layoutS
	case FormatB:
		f.Layout = layoutB
	case FormatU:
		f.Layout = layoutU
	case FormatJ:
		f.Layout = layoutJ
	}
	return f
}

// ShiftXLEN returns the narrowest XLEN whose base has v, an immediate of s,
// as a legal shift amount, or XLENAuto when every base does. The *w shifts
// have 5-bit amounts and never need more.
func (s *Spec) ShiftXLEN(v int64) XLEN {
	shift := (s.Pattern == PatRdRs1Shamt && s.ImmBits >= 6) || s.Pattern == PatCShift
	switch {
	case !shift || v < 32:
		return XLENAuto
	case v < 64:
		return RV64
	}
	return RV128
}
