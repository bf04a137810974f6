package cpu

import (
	_ "embed"
	"sync"
)

// Definitions is the built-in instruction set, one "FORMAT ; ENCODING" per line.
//
// Format placeholders:
//
//	A  accumulator (r6 only)
//	c  1 bit register, r5 - r6
//	R  2 bit register, r4 - r7
//	r  3 bit register, r0 - r7
//	n  number, 0 - 127
//
// Register roles: r0 zero, r1 config, r2 PC lower, r5 tos, r6 acc, r7 sp.
//
//go:embed isa.def
var Definitions string

var defaultTable = sync.OnceValues(func() (*Table, error) {
	return NewTable(Definitions)
})

// Default returns the table built from Definitions. It is built once, on
// first use, and shared by all callers.
func Default() (*Table, error) {
	return defaultTable()
}
