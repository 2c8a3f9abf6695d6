package isa

import (
	"errors"
	"fmt"
)

// The following errors classify every failure reported by the assembler
// and the disassembler. They are always returned wrapped in an *Error, so
// callers should use errors.Is to test for them. ErrInvalidMemoryOperand
// is also an ErrInvalidOperand.
var (
	ErrUnsupportedInstruction = errors.New("unsupported instruction")
	ErrUnknownOpcode          = errors.New("unknown opcode")
	ErrUnsupportedEncoding    = errors.New("unsupported encoding")
	ErrInvalidRegister        = errors.New("invalid register")
	ErrInvalidOperand         = errors.New("invalid operand")
	ErrInvalidMemoryOperand   = fmt.Errorf("%w: malformed memory reference", ErrInvalidOperand)
	ErrImmediateOutOfRange    = errors.New("immediate out of range")
	ErrImmediateTooWide       = errors.New("immediate too wide")
	ErrMisalignedOffset       = errors.New("misaligned offset")
	ErrXLENMismatch           = errors.New("XLEN mismatch")
	ErrOperandCount           = errors.New("operand count mismatch")
)

// Error is the single error type produced by this module. Line is the
// 1-based source line the error relates to, or zero if unknown.
type Error struct {
	Line int
	Err  error
	Msg  string
}

// Errorf returns an *Error of the given kind with no line attached yet.
func Errorf(kind error, format string, args ...interface{}) *Error {
	return &Error{Err: kind, Msg: fmt.Sprintf(format, args...)}
}

func (e *Error) Error() string {
	msg := e.Msg
	if msg == "" {
		msg = e.Err.Error()
	}
	if e.Line > 0 {
		return fmt.Sprintf("Line %d: %s", e.Line, msg)
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// AtLine attaches a line number to err. Errors that already carry a line
// keep it, and errors that are not *Error are classified as invalid
// operands.
func AtLine(err error, line int) error {
	if err == nil {
		return nil
	}
	var e *Error
	if !errors.As(err, &e) {
		return &Error{Line: line, Err: ErrInvalidOperand, Msg: err.Error()}
	}
	if e.Line != 0 {
		return e
	}
	cp := *e
	cp.Line = line
	return &cp
}
