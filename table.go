package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/apparentlymart/riscv-asm/isa"
)

func init() {
	RegisterCommand("table", "List the supported instructions.", cmdTable)
}

func cmdTable(ctx context.Context, w io.Writer, args []string) error {
	flags := flag.NewFlagSet("table", flag.ExitOnError)

	var help bool
	var exts, xlen string
	flags.BoolVar(&help, "h", false, "Show this message and exit.")
	flags.StringVar(&exts, "ext", "", "Only list instructions of the given extension `letters`, such as \"IM\".")
	flags.StringVar(&xlen, "xlen", "auto", "Only list instructions legal at the given XLEN.")

	flags.Usage = func() {
		log.Printf("Usage:\n  %s %s [OPTIONS]\n\n", program, flags.Name())
		flags.PrintDefaults()
		os.Exit(2)
	}

	err := flags.Parse(args)
	if err != nil || help || flags.NArg() != 0 {
		flags.Usage()
	}

	width, err := isa.ParseXLEN(xlen)
	if err != nil {
		return err
	}
	tracker := isa.NewTracker(width)

	want := make(isa.Extensions)
	for _, r := range strings.ToUpper(exts) {
		want.Add(isa.Extension(r))
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tSTANDARD\tFORMAT\tOPCODE\tMASK\tTEST\tSYNOPSIS")
	for _, spec := range isa.Default().Specs() {
		if len(want) > 0 && !want.Has(spec.Ext) {
			continue
		}
		if !tracker.Allows(spec) {
			continue
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			spec.Name, spec.Standard(), spec.Format, isa.KeyName(spec.Key()),
			isa.FormatWord(spec.Mask()), isa.FormatWord(spec.Test()), spec.Synopsis())
	}
	return tw.Flush()
}
