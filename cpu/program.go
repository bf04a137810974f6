package cpu

import (
	"iter"
	"slices"

	"github.com/ezrec/as8/internal"
)

// Statement is a single assembled line of source.
type Statement struct {
	LineNo      int          // Source line number.
	Address     int          // Offset of the first byte of Code.
	Text        string       // Statement text, trimmed and without comment.
	Instruction *Instruction // Matched instruction; nil if unmatched.
	Operands    []int        // Resolved operands, in statement order.
	Code        []byte       // Encoded bytes.
	Err         error        // Reason the statement was not assembled.
}

type Program struct {
	Statements []Statement
}

type Debug struct {
	*Statement
	Index int
}

// Debug finds the statement that emitted the byte at address.
func (prog *Program) Debug(address int) (dbg Debug) {
	for n, stmt := range prog.Statements {
		if address >= stmt.Address && address < stmt.Address+len(stmt.Code) {
			dbg = Debug{
				Statement: &prog.Statements[n],
				Index:     address - stmt.Address,
			}
			break
		}
	}

	return
}

// Bytes iterates over the assembled bytes in source order.
func (prog *Program) Bytes() iter.Seq[byte] {
	seqs := make([]iter.Seq[byte], 0, len(prog.Statements))
	for _, stmt := range prog.Statements {
		seqs = append(seqs, slices.Values(stmt.Code))
	}

	return internal.SeqConcat(seqs...)
}

// Codes iterates over the assembled bytes, keyed by address.
func (prog *Program) Codes() iter.Seq2[int, byte] {
	return internal.SeqOffset(0, prog.Bytes())
}

// Binary is the concatenation of all assembled bytes.
func (prog *Program) Binary() []byte {
	return slices.Collect(prog.Bytes())
}

// Size is the number of assembled bytes.
func (prog *Program) Size() (size int) {
	for _, stmt := range prog.Statements {
		size += len(stmt.Code)
	}
	return
}

// Unmatched iterates over statements that matched no instruction.
func (prog *Program) Unmatched() iter.Seq[*Statement] {
	return func(yield func(*Statement) bool) {
		for n := range prog.Statements {
			stmt := &prog.Statements[n]
			if stmt.Err == nil {
				continue
			}
			if !yield(stmt) {
				return
			}
		}
	}
}
