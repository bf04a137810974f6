package main

import (
	"bytes"
	"fmt"
	"io"

	"github.com/ezrec/as8/cpu"
	"github.com/ezrec/as8/translate"
)

// selfTests are known good encodings of the built-in instruction set.
var selfTests = [](struct {
	stmt string
	code []byte
}){
	{"add r5, 4", []byte{0b1000_0100, 0b0100_1000}},
	{"ld r6, [r7 + 10]", []byte{0b1000_1010, 0b0101_0111}},
	{"add acc", []byte{0b0000_0010}},
	{"mov r5, acc", []byte{0b0010_0101}},
	{"mov acc, r2", []byte{0b0010_1010}},
	{"jmp 127", []byte{0b1111_1111, 0b0110_1000}},
	{"jmp r7", []byte{0b0110_1100}},
	{"rtn", []byte{0b0110_1010}},
	{"jz 10", []byte{0b1000_1010, 0b0111_1000, 0b0110_1000}},
	{"mov acc, sp", []byte{0b0010_1111}},
	{"add r12", []byte{}},
}

// binaryText renders code as a list of 8 digit binary numbers.
func binaryText(code []byte) string {
	return fmt.Sprintf("%q", byteText(code, "%08b"))
}

// selfTest checks tbl against selfTests, writing a line per check.
func selfTest(w io.Writer, tbl *cpu.Table) (ok bool) {
	ok = true

	for _, check := range selfTests {
		// No match is an expected outcome for some checks.
		actual, _ := tbl.Assemble(check.stmt)
		if bytes.Equal(actual, check.code) {
			translate.Fprintf(w, "%-20s %-40s ✓\n", check.stmt, binaryText(actual))
			continue
		}

		ok = false
		matched := f("nothing")
		inst, _, err := tbl.Resolve(check.stmt)
		if err == nil {
			matched = inst.String()
		}
		translate.Fprintf(w, "%v is wrong!\n", check.stmt)
		translate.Fprintf(w, "  matched: %v\n", matched)
		translate.Fprintf(w, "  got:     %v\n", binaryText(actual))
		translate.Fprintf(w, "  wanted:  %v\n", binaryText(check.code))
	}

	return
}
