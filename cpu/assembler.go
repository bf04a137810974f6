// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"bufio"
	"io"
	"log"
	"strings"
)

// COMMENT_MARK starts a comment in assembly source.
const COMMENT_MARK = ";"

// Reporter receives recoverable per-statement diagnostics.
//
//go:generate mockgen -write_package_comment=false -package=$GOPACKAGE -destination=mock_reporter_test.go github.com/ezrec/as8/cpu Reporter
type Reporter interface {
	// Warn reports a statement that was skipped.
	Warn(err error)
}

// logReporter writes warnings to the standard logger.
type logReporter struct{}

func (logReporter) Warn(err error) {
	log.Print(f("WARNING: %v", err))
}

// Assembler assembles source text, one statement per line.
type Assembler struct {
	Verbose  bool     // If set, verbosely logs the assembler actions.
	Table    *Table   // Instruction table. If nil, Default() is used.
	Reporter Reporter // Receives skipped statements. If nil, they are logged.
}

// table returns the instruction table in use.
func (asm *Assembler) table() (*Table, error) {
	if asm.Table != nil {
		return asm.Table, nil
	}
	return Default()
}

// reporter returns the diagnostic reporter in use.
func (asm *Assembler) reporter() Reporter {
	if asm.Reporter != nil {
		return asm.Reporter
	}
	return logReporter{}
}

// Parse assembles an input stream into a Program.
//
// A statement that matches no instruction is reported, kept in the Program
// with its Err set, and contributes no bytes; assembly carries on with the
// next line.
func (asm *Assembler) Parse(input io.Reader) (prog *Program, err error) {
	tbl, err := asm.table()
	if err != nil {
		return
	}
	reporter := asm.reporter()

	scanner := bufio.NewScanner(input)

	var lineno int
	address := 0
	prog = &Program{}

	for scanner.Scan() {
		text := scanner.Text()
		lineno += 1

		if asm.Verbose {
			log.Printf("%v: %v\n", lineno, text)
		}

		line, _, _ := strings.Cut(text, COMMENT_MARK)
		line = strings.TrimSpace(line)
		if len(line) == 0 {
			continue
		}

		stmt := Statement{LineNo: lineno, Address: address, Text: line}

		var rerr error
		stmt.Instruction, stmt.Operands, rerr = tbl.Resolve(line)
		if rerr != nil {
			stmt.Err = &ErrSyntax{LineNo: lineno, Line: line, Err: rerr}
			reporter.Warn(stmt.Err)
			prog.Statements = append(prog.Statements, stmt)
			continue
		}

		stmt.Code, err = tbl.Encode(stmt.Instruction, stmt.Operands)
		if err != nil {
			prog, err = nil, &ErrSyntax{LineNo: lineno, Line: line, Err: err}
			return
		}

		if asm.Verbose {
			log.Printf("%v: %v => % x\n", lineno, stmt.Instruction, stmt.Code)
		}

		address += len(stmt.Code)
		prog.Statements = append(prog.Statements, stmt)
	}

	err = scanner.Err()
	if err != nil {
		prog = nil
	}

	return
}

// Assemble assembles source text into machine code.
func (asm *Assembler) Assemble(source string) (code []byte, err error) {
	prog, err := asm.Parse(strings.NewReader(source))
	if err != nil {
		return
	}

	return prog.Binary(), nil
}
