// Package cpu implements a table driven assembler for a small 8-bit CPU.
//
// Each instruction is declared by a "FORMAT ; ENCODING" definition. The
// format is the shape of a statement, with single character placeholders
// for operands; the encoding is a '+' separated list of literal bit patterns
// and references to other statements, so composite instructions such as
// "jz n" are built from simpler ones.
//
// Statements are matched against the whole Table in declaration order, the
// first matching instruction wins, and its template is encoded into bytes.
// Source operands are literal decimal numbers or register names; there are
// no labels, symbols or expressions.
package cpu
