package main

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/apparentlymart/riscv-asm/isa"
)

func generateReference(dir string, table *isa.Table) error {
	err := os.MkdirAll(dir, os.ModePerm)
	if err != nil {
		return err
	}

	err = writeFile(filepath.Join(dir, "opcodes.md"), func(w *bufio.Writer) {
		generateOpcodes(w, table)
	})
	if err != nil {
		return err
	}
	err = writeFile(filepath.Join(dir, "immediates.md"), func(w *bufio.Writer) {
		generateImmediates(w, table)
	})
	if err != nil {
		return err
	}
	return writeFile(filepath.Join(dir, "instructions.md"), func(w *bufio.Writer) {
		generateInstructions(w, table)
	})
}

func writeFile(filename string, gen func(w *bufio.Writer)) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	w := bufio.NewWriter(f)
	gen(w)
	if err := w.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("failed to write %s: %v", filename, err)
	}
	return f.Close()
}

func generateOpcodes(w *bufio.Writer, table *isa.Table) {
	w.WriteString("# Opcode index\n\n")
	w.WriteString("Instructions are looked up by their major opcode, or for compressed\n")
	w.WriteString("instructions by funct3 and quadrant. Within a group the first matching\n")
	w.WriteString("entry wins.\n\n")
	w.WriteString("| Key | Name | Instructions |\n")
	w.WriteString("|---|---|---|\n")
	for _, key := range table.Keys() {
		var names []string
		for _, spec := range table.Candidates(key) {
			names = append(names, fmt.Sprintf("[%s](instructions.md#%s)", spec.Name, makeAnchor(spec.Name)))
		}
		name := isa.KeyName(key)
		if key&0b11 == 0b11 {
			name = fmt.Sprintf("%s (`%s`)", name, makeIdentTitle(name))
		}
		fmt.Fprintf(w, "| `0b%07b` | %s | %s |\n", key, name, strings.Join(names, ", "))
	}
}

// generateImmediates lists each distinct immediate layout once, with the
// instructions that use it and the steps that decode it.
func generateImmediates(w *bufio.Writer, table *isa.Table) {
	users := make(map[string][]string)
	layouts := make(map[string]isa.Immediate)
	for _, spec := range table.Specs() {
		imm := spec.Immediate()
		if !imm.Valid() {
			continue
		}
		key := layoutSpec(imm.Layout)
		users[key] = append(users[key], spec.Name)
		layouts[key] = imm
	}

	var keys []string
	for key := range users {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	w.WriteString("# Immediate layouts\n")
	for _, key := range keys {
		imm := layouts[key]
		fmt.Fprintf(w, "\n## `%s`\n\n", key)
		fmt.Fprintf(w, "%d bits", imm.Layout.Width())
		if align := imm.Layout.Align(); align > 1 {
			fmt.Fprintf(w, ", multiple of %d", align)
		}
		w.WriteString(".\n\n```\n")
		for _, step := range decodeSteps(imm.Layout) {
			fmt.Fprintf(w, "imm |= %s\n", step)
		}
		w.WriteString("```\n\n")
		fmt.Fprintf(w, "Used by %s.\n", strings.Join(users[key], ", "))
	}
}

func generateInstructions(w *bufio.Writer, table *isa.Table) {
	w.WriteString("# Instructions\n")
	for _, group := range isa.Groups() {
		for _, size := range []isa.XLEN{isa.RV32, isa.RV64, isa.RV128} {
			tracker := isa.NewTracker(size)
			var specs []*isa.Spec
			for _, s := range group.Specs {
				spec, err := table.Lookup(s.Name)
				if err != nil || !tracker.Allows(spec) || (size != isa.RV32 && spec.RequiredXLEN() != size) {
					continue
				}
				specs = append(specs, spec)
			}
			if len(specs) == 0 {
				continue
			}

			fmt.Fprintf(w, "\n## RV%d%c: %s\n\n", int(size), byte(group.Ext), group.Name)
			w.WriteString("| Instruction | Synopsis | Format | Operands | Mask | Test |\n")
			w.WriteString("|---|---|---|---|---|---|\n")
			for _, spec := range specs {
				var types []string
				for _, arg := range spec.Args() {
					types = append(types, argTypeName(arg.Type))
				}
				compressed := spec.IsCompressed()
				fmt.Fprintf(w, "| <a id=\"%s\"></a>`%s` | `%s` | %s | %s | `%s` | `%s` |\n",
					makeAnchor(spec.Name), spec.Name, spec.Synopsis(), spec.Format, strings.Join(types, " "),
					encodingBits(spec.Mask(), compressed), encodingBits(spec.Test(), compressed))
			}
		}
	}
}
