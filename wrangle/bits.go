package main

import (
	"fmt"
)

type bits16 uint16
type bits32 uint32

func (v bits16) String() string {
	return fmt.Sprintf("0b%016b", v)
}

func (v bits32) String() string {
	return fmt.Sprintf("0b%032b", v)
}

// encodingBits formats a mask or test value at the width of the
// instruction it belongs to.
func encodingBits(v uint32, compressed bool) fmt.Stringer {
	if compressed {
		return bits16(v)
	}
	return bits32(v)
}
