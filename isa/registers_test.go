package isa

import (
	"errors"
	"testing"
)

func TestParseRegister(t *testing.T) {
	tests := []struct {
		Tok      string
		Embedded bool
		Want     uint32
		Err      bool
	}{
		{Tok: "x0", Want: 0},
		{Tok: "zero", Want: 0},
		{Tok: "ra", Want: 1},
		{Tok: "sp", Want: 2},
		{Tok: "fp", Want: 8},
		{Tok: "s0", Want: 8},
		{Tok: "a0", Want: 10},
		{Tok: "X31", Want: 31},
		{Tok: "t6", Want: 31},
		{Tok: "a5", Embedded: true, Want: 15},
		{Tok: "x16", Embedded: true, Err: true},
		{Tok: "t6", Embedded: true, Err: true},
		{Tok: "x32", Err: true},
		{Tok: "x01", Err: true},
		{Tok: "x", Err: true},
		{Tok: "f1", Err: true},
	}

	for _, test := range tests {
		got, err := ParseRegister(test.Tok, test.Embedded)
		if test.Err {
			if !errors.Is(err, ErrInvalidRegister) {
				t.Errorf("ParseRegister(%q, %v): got %d, %v, want ErrInvalidRegister", test.Tok, test.Embedded, got, err)
			}
			continue
		}
		if err != nil || got != test.Want {
			t.Errorf("ParseRegister(%q, %v): got %d, %v, want %d", test.Tok, test.Embedded, got, err, test.Want)
		}
	}
}

func TestFormatRegister(t *testing.T) {
	if got := FormatRegister(5); got != "x5" {
		t.Errorf("FormatRegister(5): got %q", got)
	}
	if got := FormatRegister(33); got != "x1" {
		t.Errorf("FormatRegister(33): got %q", got)
	}
	if got := RegisterName(10); got != "a0" {
		t.Errorf("RegisterName(10): got %q", got)
	}
	for i := uint32(0); i < 32; i++ {
		got, err := ParseRegister(FormatRegister(i), false)
		if err != nil || got != i {
			t.Errorf("ParseRegister(FormatRegister(%d)): got %d, %v", i, got, err)
		}
		got, err = ParseRegister(RegisterName(i), false)
		if err != nil || got != i {
			t.Errorf("ParseRegister(RegisterName(%d)): got %d, %v", i, got, err)
		}
	}
}

func TestOtherRegisters(t *testing.T) {
	tests := []struct {
		Name  string
		Parse func(string) (uint32, error)
		Tok   string
		Want  uint32
		Err   bool
	}{
		{Name: "float number", Parse: ParseFloatRegister, Tok: "f31", Want: 31},
		{Name: "float abi", Parse: ParseFloatRegister, Tok: "fa0", Want: 10},
		{Name: "float abi temporary", Parse: ParseFloatRegister, Tok: "ft11", Want: 31},
		{Name: "float out of range", Parse: ParseFloatRegister, Tok: "f32", Err: true},
		{Name: "float integer name", Parse: ParseFloatRegister, Tok: "a0", Err: true},
		{Name: "vector", Parse: ParseVectorRegister, Tok: "v7", Want: 7},
		{Name: "vector out of range", Parse: ParseVectorRegister, Tok: "v32", Err: true},
		{Name: "compressed", Parse: func(s string) (uint32, error) { return ParseCompressedRegister(s, false) }, Tok: "s0", Want: 0},
		{Name: "compressed top", Parse: func(s string) (uint32, error) { return ParseCompressedRegister(s, false) }, Tok: "a5", Want: 7},
		{Name: "compressed low", Parse: func(s string) (uint32, error) { return ParseCompressedRegister(s, false) }, Tok: "x7", Err: true},
		{Name: "compressed high", Parse: func(s string) (uint32, error) { return ParseCompressedRegister(s, false) }, Tok: "x16", Err: true},
		{Name: "compressed float", Parse: ParseCompressedFloatRegister, Tok: "f9", Want: 1},
		{Name: "compressed float low", Parse: ParseCompressedFloatRegister, Tok: "f0", Err: true},
	}

	for _, test := range tests {
		t.Run(test.Name, func(t *testing.T) {
			got, err := test.Parse(test.Tok)
			if test.Err {
				if !errors.Is(err, ErrInvalidRegister) {
					t.Fatalf("%q: got %d, %v, want ErrInvalidRegister", test.Tok, got, err)
				}
				return
			}
			if err != nil || got != test.Want {
				t.Fatalf("%q: got %d, %v, want %d", test.Tok, got, err, test.Want)
			}
		})
	}

	if got := CompressedRegister(3); got != 11 {
		t.Errorf("CompressedRegister(3): got %d", got)
	}
	if got := FormatFloatRegister(12); got != "f12" {
		t.Errorf("FormatFloatRegister(12): got %q", got)
	}
	if got := FormatVectorRegister(0); got != "v0" {
		t.Errorf("FormatVectorRegister(0): got %q", got)
	}
}
