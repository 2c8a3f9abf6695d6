package isa

import "strings"

// Line is a non-blank source line with its comment removed. Num is the
// 1-based line number in the original text.
type Line struct {
	Num  int
	Text string
}

// Lines splits text into lines, strips "#", "//" and ";" comments and
// drops lines left empty.
func Lines(text string) []Line {
	var ret []Line
	for i, raw := range strings.Split(text, "\n") {
		s := StripComment(raw)
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		ret = append(ret, Line{Num: i + 1, Text: s})
	}
	return ret
}

// StripComment removes everything from the first comment marker on.
func StripComment(s string) string {
	cut := len(s)
	for _, marker := range []string{"#", "//", ";"} {
		if i := strings.Index(s, marker); i >= 0 && i < cut {
			cut = i
		}
	}
	return s[:cut]
}

// Fields splits a line into tokens. Commas and tabs separate tokens just
// like spaces do.
func Fields(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		switch r {
		case ' ', '\t', ',', '\r', '\v', '\f':
			return true
		}
		return false
	})
}
