package cpu

// Match resolves words against the instruction's format.
//
// Operands are returned in statement order. Any literal mismatch, unknown
// register name or out of range value fails the whole instruction.
func (inst *Instruction) Match(words []string) (operands []int, ok bool) {
	if len(words) != len(inst.Tokens) {
		return
	}

	operands = make([]int, 0, len(words))
	for n, token := range inst.Tokens {
		word := words[n]

		var value int
		switch token.Class {
		case CLASS_LITERAL:
			if word != token.Text {
				return nil, false
			}
			continue
		case CLASS_NUMBER:
			value, ok = numberOf(word)
		case CLASS_ACCUMULATOR, CLASS_REGISTER1, CLASS_REGISTER2, CLASS_REGISTER3:
			value, ok = RegisterOf(word)
		default:
			ok = false
		}

		if !ok || !token.Class.Legal(value) {
			return nil, false
		}
		operands = append(operands, value)
	}

	return operands, true
}

// matchWords returns the first instruction in declaration order that
// matches the words.
func (tbl *Table) matchWords(words []string) (inst *Instruction, operands []int, ok bool) {
	for _, inst = range tbl.order {
		operands, ok = inst.Match(words)
		if ok {
			return
		}
	}

	return nil, nil, false
}

// Resolve finds the instruction a statement assembles as, and its operands.
// The error is an ErrNoMatch if no instruction matches.
func (tbl *Table) Resolve(statement string) (inst *Instruction, operands []int, err error) {
	inst, operands, ok := tbl.matchWords(Tokenize(statement))
	if !ok {
		err = ErrNoMatch(statement)
	}

	return
}

// Assemble resolves and encodes a single statement.
func (tbl *Table) Assemble(statement string) (code []byte, err error) {
	inst, operands, err := tbl.Resolve(statement)
	if err != nil {
		return
	}

	return tbl.Encode(inst, operands)
}
