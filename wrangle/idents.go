package main

import (
	"strings"
	"unicode"
)

// makeAnchor turns a heading into the fragment identifier Markdown
// renderers give it: lower case, with runs of other characters replaced by
// a single hyphen.
func makeAnchor(inp string) string {
	var b strings.Builder
	pendingDash := false
	for _, r := range inp {
		switch {
		case unicode.IsDigit(r), unicode.IsLetter(r):
			if pendingDash && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingDash = false
			b.WriteString(strings.ToLower(string(r)))
		default:
			pendingDash = true
		}
	}
	return b.String()
}

// makeIdentTitle turns a major opcode name such as "OP-IMM-32" into
// "OpImm32".
func makeIdentTitle(inp string) string {
	var b strings.Builder
	nextUpper := true
	for _, r := range inp {
		switch {
		case unicode.IsDigit(r):
			b.WriteRune(r)
			nextUpper = true
		case unicode.IsLetter(r):
			if nextUpper {
				b.WriteString(strings.ToUpper(string(r)))
			} else {
				b.WriteString(strings.ToLower(string(r)))
			}
			nextUpper = false
		default:
			nextUpper = true
		}
	}
	return b.String()
}
