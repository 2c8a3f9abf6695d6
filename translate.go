package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"golang.design/x/clipboard"
	"golang.org/x/sync/errgroup"
	"golang.org/x/term"

	"github.com/apparentlymart/riscv-asm/asm"
	"github.com/apparentlymart/riscv-asm/disasm"
	"github.com/apparentlymart/riscv-asm/isa"
)

func init() {
	RegisterCommand("assemble", "Translate assembly into machine words.", cmdAssemble)
	RegisterCommand("disassemble", "Translate machine words into assembly.", cmdDisassemble)
}

// translation is the part of an assemble or disassemble result the
// commands print. Detail holds the full result for -dump.
type translation struct {
	Output string
	XLEN   isa.XLEN
	Mode   isa.Mode
	Detail interface{}
}

type translateFunc func(src string, opts isa.Options) (*translation, error)

func assembleText(src string, opts isa.Options) (*translation, error) {
	r, err := asm.AssembleDetailed(src, opts)
	if err != nil {
		return nil, err
	}
	return &translation{Output: r.Output, XLEN: r.XLEN, Mode: r.Mode, Detail: r}, nil
}

func disassembleText(src string, opts isa.Options) (*translation, error) {
	r, err := disasm.DisassembleDetailed(src, opts)
	if err != nil {
		return nil, err
	}
	return &translation{Output: r.Output, XLEN: r.XLEN, Mode: r.Mode, Detail: r}, nil
}

func cmdAssemble(ctx context.Context, w io.Writer, args []string) error {
	return runTranslate(ctx, w, "assemble", args, assembleText)
}

func cmdDisassemble(ctx context.Context, w io.Writer, args []string) error {
	return runTranslate(ctx, w, "disassemble", args, disassembleText)
}

func runTranslate(ctx context.Context, w io.Writer, name string, args []string, translate translateFunc) error {
	flags := flag.NewFlagSet(name, flag.ExitOnError)

	var help, dump, copyOut, verbose bool
	cfgFlags := addConfigFlags(flags)
	flags.BoolVar(&help, "h", false, "Show this message and exit.")
	flags.BoolVar(&dump, "dump", false, "Print the detailed result after the output.")
	flags.BoolVar(&copyOut, "copy", false, "Copy the output to the clipboard.")
	flags.BoolVar(&verbose, "v", false, "Report the XLEN each input needed.")

	flags.Usage = func() {
		log.Printf("Usage:\n  %s %s [OPTIONS] [FILE...]\n\n", program, flags.Name())
		log.Printf("With no files, %s reads standard input, one line at a time if it is a terminal.\n\n", name)
		flags.PrintDefaults()
		os.Exit(2)
	}

	err := flags.Parse(args)
	if err != nil || help {
		flags.Usage()
	}

	cfg, err := cfgFlags.Config()
	if err != nil {
		return err
	}
	opts, err := cfg.Options()
	if err != nil {
		return err
	}

	files := flags.Args()
	if len(files) == 0 && term.IsTerminal(int(os.Stdin.Fd())) {
		return interactive(w, os.Stdin, opts, translate)
	}

	var results []*translation
	if len(files) == 0 {
		src, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("failed to read standard input: %v", err)
		}
		r, err := translate(string(src), opts)
		if err != nil {
			return err
		}
		results = []*translation{r}
	} else {
		results, err = translateFiles(ctx, files, cfg.Jobs, opts, translate)
		if err != nil {
			return err
		}
	}

	var all []string
	for i, r := range results {
		if len(files) > 1 {
			fmt.Fprintf(w, "# %s\n", files[i])
		}
		if r.Output != "" {
			fmt.Fprintln(w, r.Output)
			all = append(all, r.Output)
		}
		if dump {
			spew.Fdump(w, r.Detail)
		}
		if verbose {
			log.Printf("XLEN %s (%s)", r.XLEN, r.Mode)
		}
	}

	if copyOut {
		return copyToClipboard(strings.Join(all, "\n"))
	}
	return nil
}

// translateFiles processes each file independently, several at a time.
// Results are returned in the order of files.
func translateFiles(ctx context.Context, files []string, jobs int, opts isa.Options, translate translateFunc) ([]*translation, error) {
	if jobs < 1 {
		jobs = 1
	}
	results := make([]*translation, len(files))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)
	for i, file := range files {
		i, file := i, file
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			src, err := os.ReadFile(file)
			if err != nil {
				return fmt.Errorf("failed to read %s: %v", file, err)
			}
			r, err := translate(string(src), opts)
			if err != nil {
				return fmt.Errorf("%s: %w", file, err)
			}
			results[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// interactive translates one line at a time. Errors are reported and the
// session carries on.
func interactive(w io.Writer, r io.Reader, opts isa.Options, translate translateFunc) error {
	s := bufio.NewScanner(r)
	for {
		fmt.Fprint(os.Stderr, "> ")
		if !s.Scan() {
			break
		}
		result, err := translate(s.Text(), opts)
		if err != nil {
			log.Print(err)
			continue
		}
		if result.Output != "" {
			fmt.Fprintln(w, result.Output)
		}
	}
	fmt.Fprintln(os.Stderr)
	return s.Err()
}

func copyToClipboard(text string) error {
	if err := clipboard.Init(); err != nil {
		return fmt.Errorf("clipboard unavailable: %v", err)
	}
	clipboard.Write(clipboard.FmtText, []byte(text))
	return nil
}
