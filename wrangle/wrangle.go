// Command wrangle checks the instruction table and generates the Markdown
// opcode reference from it.
package main

import (
	"flag"
	"log"

	"github.com/davecgh/go-spew/spew"

	"github.com/apparentlymart/riscv-asm/isa"
)

func main() {
	log.SetFlags(0)

	var dump bool
	var out string
	flag.BoolVar(&dump, "dump", false, "Dump the compiled instruction table.")
	flag.StringVar(&out, "o", "generated/reference", "Write the reference into `dir`.")
	flag.Parse()

	table := isa.Default()
	if errs := table.Check(); len(errs) > 0 {
		for _, err := range errs {
			log.Print(err)
		}
		log.Fatalf("instruction table has %d ambiguous encodings", len(errs))
	}

	if dump {
		spew.Dump(table.Specs())
	}

	err := generateReference(out, table)
	if err != nil {
		log.Fatal(err)
	}
}
