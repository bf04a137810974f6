package cpu

import (
	"slices"
	"strconv"
)

// MAX_DEPTH limits sub-statement reference nesting.
const MAX_DEPTH = 16

// Encode evaluates the instruction's encoding template against its operands.
//
// Segments are emitted in template order, with the bytes of referenced
// statements spliced in place. A segment whose operand is missing from
// operands is encoded as if the operand were zero.
func (tbl *Table) Encode(inst *Instruction, operands []int) (code []byte, err error) {
	return tbl.encode(inst, operands, 0)
}

func (tbl *Table) encode(inst *Instruction, operands []int, depth int) (code []byte, err error) {
	if depth > MAX_DEPTH {
		err = ErrDepth
		return
	}

	arg := 0
	for n := range inst.Template {
		seg := &inst.Template[n]

		value := 0
		if seg.Operand() {
			value = argValue(inst.ArgMap, arg, operands)
			arg++
		}

		if seg.Pattern {
			var b byte
			b, err = seg.blit(value)
			if err != nil {
				return nil, err
			}
			code = append(code, b)
			continue
		}

		var sub []byte
		sub, err = tbl.expand(seg, value, depth)
		if err != nil {
			return nil, err
		}
		code = append(code, sub...)
	}

	return
}

// argValue returns the operand feeding the index'th operand bearing segment,
// or zero if there is none.
func argValue(argMap []int, index int, operands []int) int {
	if index >= len(argMap) {
		return 0
	}
	arg := argMap[index]
	if arg < 0 || arg >= len(operands) {
		return 0
	}
	return operands[arg]
}

// blit places value into the operand fields of a bit pattern.
func (seg *Segment) blit(value int) (b byte, err error) {
	b = seg.Base
	if !seg.Operand() {
		return
	}

	field := value - seg.Class.Bias()
	if field < 0 || field >= (1<<seg.Class.Width()) {
		err = ErrOperandRange
		return
	}

	for _, shift := range seg.Shifts {
		b |= byte(field << shift)
	}

	return
}

// expand encodes a sub-statement reference, with value standing in for "n".
func (tbl *Table) expand(seg *Segment, value int, depth int) (code []byte, err error) {
	words := seg.Words
	if seg.Operand() {
		words = slices.Clone(words)
		number := strconv.Itoa(value)
		for n, word := range words {
			if word == "n" {
				words[n] = number
			}
		}
	}

	inst, operands, ok := tbl.matchWords(words)
	if !ok {
		err = ErrSubStatement
		return
	}

	return tbl.encode(inst, operands, depth+1)
}
