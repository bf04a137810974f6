package cpu

// Class is the operand class of a format token.
type Class int

//go:generate go tool stringer -linecomment -type=Class
const (
	CLASS_LITERAL     = Class(0) // literal
	CLASS_ACCUMULATOR = Class(1) // accumulator
	CLASS_REGISTER1   = Class(2) // register1
	CLASS_REGISTER2   = Class(3) // register2
	CLASS_REGISTER3   = Class(4) // register3
	CLASS_NUMBER      = Class(5) // number
)

// placeholderMap maps definition placeholder characters to operand classes.
var placeholderMap = map[byte]Class{
	'A': CLASS_ACCUMULATOR,
	'c': CLASS_REGISTER1,
	'R': CLASS_REGISTER2,
	'r': CLASS_REGISTER3,
	'n': CLASS_NUMBER,
}

// classFromPlaceholder returns the operand class of a placeholder character.
func classFromPlaceholder(ch byte) (class Class, ok bool) {
	class, ok = placeholderMap[ch]
	return
}

// Placeholder returns the definition character for the class, or 0 for literals.
func (class Class) Placeholder() byte {
	switch class {
	case CLASS_ACCUMULATOR:
		return 'A'
	case CLASS_REGISTER1:
		return 'c'
	case CLASS_REGISTER2:
		return 'R'
	case CLASS_REGISTER3:
		return 'r'
	case CLASS_NUMBER:
		return 'n'
	}
	return 0
}

// Width is the bit width of the class's field in a literal bit pattern.
// The accumulator is implied by the opcode and has no field.
func (class Class) Width() int {
	switch class {
	case CLASS_REGISTER1:
		return 1
	case CLASS_REGISTER2:
		return 2
	case CLASS_REGISTER3:
		return 3
	case CLASS_NUMBER:
		return 7
	}
	return 0
}

// Bias is subtracted from an operand value before it is placed in its field.
func (class Class) Bias() int {
	switch class {
	case CLASS_REGISTER1:
		return REG_TOS
	case CLASS_REGISTER2:
		return 4
	}
	return 0
}

// Legal reports whether value is in the class's legal range.
func (class Class) Legal(value int) bool {
	switch class {
	case CLASS_ACCUMULATOR:
		return value == REG_ACC
	case CLASS_REGISTER1:
		return value >= REG_TOS && value <= REG_ACC
	case CLASS_REGISTER2:
		return value >= 4 && value <= 7
	case CLASS_REGISTER3:
		return value >= 0 && value <= 7
	case CLASS_NUMBER:
		return value >= 0 && value < (1<<CLASS_NUMBER.Width())
	}
	return false
}

// IsRegister is true for every class resolved through register naming.
func (class Class) IsRegister() bool {
	switch class {
	case CLASS_ACCUMULATOR, CLASS_REGISTER1, CLASS_REGISTER2, CLASS_REGISTER3:
		return true
	}
	return false
}
