// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"errors"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"

	"github.com/ezrec/as8/cpu"
	"github.com/ezrec/as8/translate"
)

var f = translate.From

var (
	ErrSelfTest = errors.New(f("self test failed"))
	ErrFormat   = errors.New(f("unknown output format"))
)

// options are the command line settings.
type options struct {
	file    string
	test    bool
	defs    string
	output  string
	format  string
	listing bool
	verbose bool
}

func newCommand() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "as8 [-f FILE] [-t]",
		Short: "Assembler for the as8 8-bit CPU",
		Long: `As8 assembles source for the as8 8-bit CPU, one statement per line.

Instructions are described by a table of 'FORMAT ; ENCODING' definitions;
the built-in table can be replaced with a Starlark script (-d) that binds
'instructions' to definition text or a list of definition lines.

Statements that match no instruction are reported and skipped. The machine
code is written as hex (the default), binary digits, or raw bytes.
`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.OutOrStdout(), opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.file, "file", "f", "", "ASM file to assemble")
	flags.BoolVarP(&opts.test, "test", "t", false, "Self test")
	flags.StringVarP(&opts.defs, "defs", "d", "", "Starlark instruction definitions")
	flags.StringVarP(&opts.output, "output", "o", "-", "Output file")
	flags.StringVar(&opts.format, "format", FORMAT_HEX, "Output format: hex, bin or raw")
	flags.BoolVarP(&opts.listing, "list", "l", false, "Write a listing instead of machine code")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Verbose mode")

	return cmd
}

// loadTable returns the built-in table, or the one defined by a script.
func loadTable(defs string) (*cpu.Table, error) {
	if len(defs) == 0 {
		return cpu.Default()
	}
	return cpu.LoadStarlark(defs, nil)
}

func run(stdout io.Writer, opts *options) (err error) {
	tbl, err := loadTable(opts.defs)
	if err != nil {
		return
	}

	if opts.test && !selfTest(stdout, tbl) {
		err = ErrSelfTest
		return
	}

	if len(opts.file) == 0 {
		return
	}

	inf, err := os.Open(opts.file)
	if err != nil {
		return
	}
	defer inf.Close()

	asm := &cpu.Assembler{Table: tbl, Verbose: opts.verbose}
	prog, err := asm.Parse(inf)
	if err != nil {
		return
	}

	out := stdout
	if opts.output != "-" {
		ouf, err := os.Create(opts.output)
		if err != nil {
			return err
		}
		atexit.Register(func() { ouf.Close() })
		out = ouf
	}

	if opts.listing {
		return writeListing(out, prog)
	}

	return writeCode(out, prog.Binary(), opts.format)
}

func main() {
	err := newCommand().Execute()
	if err != nil {
		atexit.Exit(1)
	}

	atexit.Exit(0)
}
