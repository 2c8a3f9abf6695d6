package main

import (
	"flag"
	"fmt"
	"runtime"

	"github.com/BurntSushi/toml"

	"github.com/apparentlymart/riscv-asm/isa"
)

// Config is the file form of the translation options. Every key has a
// flag of the same name, and flags given on the command line win.
type Config struct {
	XLEN     string `toml:"xlen"`
	Embedded bool   `toml:"e"`
	Base     string `toml:"base"`
	NoFloat  bool   `toml:"no-f"`
	NoDouble bool   `toml:"no-d"`
	NoQuad   bool   `toml:"no-q"`
	Jobs     int    `toml:"j"`
}

// LoadConfig reads a TOML config file. Unknown keys are an error so that
// typos do not pass silently.
func LoadConfig(path string) (*Config, error) {
	var cfg Config
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %v", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("unknown key %q in config %s", undecoded[0].String(), path)
	}
	return &cfg, nil
}

// configFlags registers the option flags shared by assemble and
// disassemble.
type configFlags struct {
	flags  *flag.FlagSet
	path   string
	values Config
}

func addConfigFlags(flags *flag.FlagSet) *configFlags {
	c := &configFlags{flags: flags}
	flags.StringVar(&c.path, "config", "", "Read options from the given TOML `file`.")
	flags.StringVar(&c.values.XLEN, "xlen", "auto", "Register width: auto, 32, 64 or 128.")
	flags.BoolVar(&c.values.Embedded, "e", false, "Restrict the integer registers to x0-x15 (RV32E/RV64E).")
	flags.StringVar(&c.values.Base, "base", "hex", "Number base of disassembled immediates: hex or dec.")
	flags.BoolVar(&c.values.NoFloat, "no-f", false, "Disable the single-precision floating-point extension.")
	flags.BoolVar(&c.values.NoDouble, "no-d", false, "Disable the double-precision floating-point extension.")
	flags.BoolVar(&c.values.NoQuad, "no-q", false, "Disable the quad-precision floating-point extension.")
	flags.IntVar(&c.values.Jobs, "j", runtime.NumCPU(), "Number of input files to process at once.")
	return c
}

// Config merges the config file, if any, with the flags that were set
// explicitly. Call it after the flag set has been parsed.
func (c *configFlags) Config() (*Config, error) {
	if c.path == "" {
		cfg := c.values
		return &cfg, nil
	}

	cfg, err := LoadConfig(c.path)
	if err != nil {
		return nil, err
	}
	if cfg.XLEN == "" {
		cfg.XLEN = "auto"
	}
	if cfg.Jobs == 0 {
		cfg.Jobs = c.values.Jobs
	}
	c.flags.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "xlen":
			cfg.XLEN = c.values.XLEN
		case "e":
			cfg.Embedded = c.values.Embedded
		case "base":
			cfg.Base = c.values.Base
		case "no-f":
			cfg.NoFloat = c.values.NoFloat
		case "no-d":
			cfg.NoDouble = c.values.NoDouble
		case "no-q":
			cfg.NoQuad = c.values.NoQuad
		case "j":
			cfg.Jobs = c.values.Jobs
		}
	})
	return cfg, nil
}

// Options converts the configuration into translation options.
func (cfg *Config) Options() (isa.Options, error) {
	xlen, err := isa.ParseXLEN(cfg.XLEN)
	if err != nil {
		return isa.Options{}, err
	}
	base, err := isa.ParseBase(cfg.Base)
	if err != nil {
		return isa.Options{}, err
	}
	return isa.Options{
		XLEN:          xlen,
		Embedded:      cfg.Embedded,
		Base:          base,
		DisableFloat:  cfg.NoFloat,
		DisableDouble: cfg.NoDouble,
		DisableQuad:   cfg.NoQuad,
	}, nil
}
