package isa

// Options configures a single assemble or disassemble call. The zero value
// infers XLEN, uses all 32 integer registers, prints hexadecimal
// immediates and enables every floating-point extension.
type Options struct {
	XLEN     XLEN
	Embedded bool
	Base     Base

	DisableFloat  bool
	DisableDouble bool
	DisableQuad   bool
}

// Enabled reports whether instructions of extension e may be used.
func (o Options) Enabled(e Extension) bool {
	switch e {
	case ExtF:
		return !o.DisableFloat
	case ExtD:
		return !o.DisableDouble
	case ExtQ:
		return !o.DisableQuad
	}
	return true
}

// CheckEnabled fails with ErrUnsupportedInstruction when spec belongs to a
// disabled extension.
func (o Options) CheckEnabled(spec *Spec) error {
	if !o.Enabled(spec.Ext) {
		return Errorf(ErrUnsupportedInstruction, "%s requires the %s extension, which is disabled", spec.Name, spec.Ext)
	}
	return nil
}

// Tracker returns a fresh XLEN tracker for one call.
func (o Options) Tracker() *Tracker {
	return NewTracker(o.XLEN)
}
