package cpu

import (
	"bufio"
	"io"
	"iter"
	"slices"
	"strings"
)

// Table is an immutable set of instruction definitions.
//
// Statements are matched against every instruction in declaration order;
// the mnemonic grouping is informational only. A Table is safe for
// concurrent use once constructed.
type Table struct {
	order      []*Instruction
	byMnemonic map[string][]*Instruction
}

// NewTable builds a table from newline separated definitions.
func NewTable(text string) (tbl *Table, err error) {
	return newTable(strings.Split(text, "\n"))
}

// ReadTable builds a table from a stream of newline separated definitions.
func ReadTable(input io.Reader) (tbl *Table, err error) {
	var lines []string

	scanner := bufio.NewScanner(input)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	err = scanner.Err()
	if err != nil {
		return
	}

	return newTable(lines)
}

// newTable compiles definition lines. Line numbers are 1-based positions in
// lines; blank lines are skipped.
func newTable(lines []string) (tbl *Table, err error) {
	tbl = &Table{
		byMnemonic: make(map[string][]*Instruction),
	}

	for n, line := range lines {
		line = strings.TrimSpace(line)
		if len(line) == 0 {
			continue
		}

		var inst *Instruction
		inst, err = ParseInstruction(line)
		if err != nil {
			return nil, &ErrDefinition{LineNo: n + 1, Line: line, Err: err}
		}
		inst.LineNo = n + 1

		tbl.order = append(tbl.order, inst)
		tbl.byMnemonic[inst.Mnemonic] = append(tbl.byMnemonic[inst.Mnemonic], inst)
	}

	// Sub-statement references may name instructions defined later, so they
	// are only checked once every definition is known.
	for _, inst := range tbl.order {
		for n := range inst.Template {
			seg := &inst.Template[n]
			if seg.Pattern {
				continue
			}
			_, err = tbl.expand(seg, 0, 0)
			if err != nil {
				return nil, &ErrDefinition{LineNo: inst.LineNo, Line: inst.String(), Err: err}
			}
		}
	}

	return
}

// Len is the number of instructions in the table.
func (tbl *Table) Len() int {
	return len(tbl.order)
}

// Instructions iterates over the instructions in declaration order.
func (tbl *Table) Instructions() iter.Seq[*Instruction] {
	return slices.Values(tbl.order)
}

// Lookup returns the instructions sharing a mnemonic, in declaration order.
func (tbl *Table) Lookup(mnemonic string) []*Instruction {
	return slices.Clone(tbl.byMnemonic[mnemonic])
}

// Mnemonics iterates over the distinct mnemonics in order of first declaration.
func (tbl *Table) Mnemonics() iter.Seq[string] {
	return func(yield func(string) bool) {
		seen := make(map[string]bool, len(tbl.byMnemonic))
		for _, inst := range tbl.order {
			if seen[inst.Mnemonic] {
				continue
			}
			seen[inst.Mnemonic] = true
			if !yield(inst.Mnemonic) {
				return
			}
		}
	}
}
