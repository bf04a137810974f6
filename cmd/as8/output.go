package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/ezrec/as8/cpu"
)

// Output formats.
const (
	FORMAT_HEX = "hex" // Space separated hex bytes.
	FORMAT_BIN = "bin" // Space separated binary bytes.
	FORMAT_RAW = "raw" // Bytes as is.
)

// byteText formats each byte of code with verb.
func byteText(code []byte, verb string) []string {
	text := make([]string, len(code))
	for n, b := range code {
		text[n] = fmt.Sprintf(verb, b)
	}
	return text
}

// writeCode writes machine code in the given format.
func writeCode(w io.Writer, code []byte, format string) (err error) {
	switch format {
	case FORMAT_HEX:
		_, err = fmt.Fprintln(w, strings.Join(byteText(code, "%02x"), " "))
	case FORMAT_BIN:
		_, err = fmt.Fprintln(w, strings.Join(byteText(code, "%08b"), " "))
	case FORMAT_RAW:
		_, err = w.Write(code)
	default:
		err = fmt.Errorf("%w: %q", ErrFormat, format)
	}

	return
}

// writeListing writes each statement with its address, code and definition.
func writeListing(w io.Writer, prog *cpu.Program) (err error) {
	for _, stmt := range prog.Statements {
		if stmt.Err != nil {
			_, err = fmt.Fprintf(w, "%4d  ----  %-12s %-20s ; %v\n",
				stmt.LineNo, "", stmt.Text, f("no match"))
		} else {
			_, err = fmt.Fprintf(w, "%4d  %04x  %-12s %-20s ; %v\n",
				stmt.LineNo, stmt.Address, strings.Join(byteText(stmt.Code, "%02x"), " "), stmt.Text, stmt.Instruction)
		}
		if err != nil {
			return
		}
	}

	return
}
