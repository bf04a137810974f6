package cpu

import (
	"fmt"
	"regexp"
	"strings"
)

// PATTERN_MARK prefixes a literal bit pattern in an encoding.
const PATTERN_MARK = '#'

// tokenRe splits text into words and single punctuation characters.
var tokenRe = regexp.MustCompile(`\w+|\S`)

// Tokenize splits a statement or format into its words and punctuation.
func Tokenize(text string) []string {
	return tokenRe.FindAllString(text, -1)
}

// Token is a single element of an instruction format.
type Token struct {
	Class Class  // Operand class, or CLASS_LITERAL.
	Text  string // Text as written in the definition.
}

// Segment is one '+' separated piece of an encoding template.
//
// A segment is either a literal bit pattern ("#0101011c"), where runs of a
// placeholder character are the binary field of an operand, or a reference to
// another statement ("_imm n"), where the word "n" is replaced by the current
// number operand before the statement is matched and encoded in place.
type Segment struct {
	Text    string   // Segment text as written.
	Pattern bool     // Set for a literal bit pattern.
	Class   Class    // Class of the operand feeding this segment; CLASS_LITERAL if none.
	Base    byte     // Constant bits of a bit pattern.
	Shifts  []int    // Bit position of each operand field of a bit pattern.
	Words   []string // Tokenized statement of a reference.
}

// Operand is true if the segment consumes an operand.
func (seg *Segment) Operand() bool {
	return seg.Class != CLASS_LITERAL
}

// parsePattern parses a "#xxxxxxxx" bit pattern.
func parsePattern(text string) (seg Segment, err error) {
	seg = Segment{Text: text, Pattern: true}

	bits := text[1:]
	if len(bits) != 8 {
		err = ErrPatternLength
		return
	}

	for n := 0; n < len(bits); {
		ch := bits[n]
		switch ch {
		case '0':
			n++
			continue
		case '1':
			seg.Base |= 1 << (7 - n)
			n++
			continue
		}

		class, ok := classFromPlaceholder(ch)
		if !ok || class.Width() == 0 {
			err = ErrPlaceholderUnknown
			return
		}
		if seg.Class != CLASS_LITERAL && seg.Class != class {
			err = ErrPlaceholderMixed
			return
		}
		seg.Class = class

		end := n
		for end < len(bits) && bits[end] == ch {
			end++
		}
		if end-n != class.Width() {
			err = ErrFieldWidth
			return
		}
		seg.Shifts = append(seg.Shifts, 8-end)
		n = end
	}

	return
}

// parseReference parses a sub-statement reference.
func parseReference(text string) (seg Segment, err error) {
	seg = Segment{Text: text, Words: Tokenize(text)}

	for _, word := range seg.Words {
		if word == "n" {
			seg.Class = CLASS_NUMBER
		}
	}

	return
}

// Instruction is a compiled "FORMAT ; ENCODING" definition.
type Instruction struct {
	LineNo   int       // Line number of the definition.
	Format   string    // Format text.
	Encoding string    // Encoding text.
	Mnemonic string    // First word of the format.
	Tokens   []Token   // Format, as tokens.
	Template []Segment // Encoding, as segments.
	ArgMap   []int     // Operand index for each operand bearing segment.
}

// ParseInstruction compiles a single "FORMAT ; ENCODING" definition.
func ParseInstruction(line string) (inst *Instruction, err error) {
	format, encoding, found := strings.Cut(line, ";")
	if !found || strings.Contains(encoding, ";") {
		err = ErrDefinitionSyntax
		return
	}

	format = strings.TrimSpace(format)
	encoding = strings.TrimSpace(encoding)

	fields := strings.Fields(format)
	if len(fields) == 0 {
		err = ErrFormatEmpty
		return
	}
	if len(encoding) == 0 {
		err = ErrEncodingEmpty
		return
	}

	inst = &Instruction{
		Format:   format,
		Encoding: encoding,
		Mnemonic: fields[0],
	}

	for _, word := range Tokenize(format) {
		token := Token{Class: CLASS_LITERAL, Text: word}
		if len(word) == 1 {
			if class, ok := classFromPlaceholder(word[0]); ok {
				token.Class = class
			}
		}
		inst.Tokens = append(inst.Tokens, token)
	}

	for _, text := range strings.Split(encoding, "+") {
		text = strings.TrimSpace(text)
		if len(text) == 0 {
			inst, err = nil, ErrSegmentEmpty
			return
		}

		var seg Segment
		if text[0] == PATTERN_MARK {
			seg, err = parsePattern(text)
		} else {
			seg, err = parseReference(text)
		}
		if err != nil {
			inst = nil
			return
		}

		if seg.Operand() {
			index := inst.operandIndex(seg.Class)
			if index < 0 {
				inst, err = nil, ErrArgMissing
				return
			}
			inst.ArgMap = append(inst.ArgMap, index)
		}

		inst.Template = append(inst.Template, seg)
	}

	return
}

// operandIndex returns the operand position of the first format token of
// the class, or -1 if the format has none.
func (inst *Instruction) operandIndex(class Class) int {
	index := 0
	for _, token := range inst.Tokens {
		if token.Class == CLASS_LITERAL {
			continue
		}
		if token.Class == class {
			return index
		}
		index++
	}

	return -1
}

// Arity is the number of operands a matching statement resolves to.
func (inst *Instruction) Arity() (count int) {
	for _, token := range inst.Tokens {
		if token.Class != CLASS_LITERAL {
			count++
		}
	}
	return
}

// Composite is true if the encoding references other statements.
func (inst *Instruction) Composite() bool {
	for n := range inst.Template {
		if !inst.Template[n].Pattern {
			return true
		}
	}
	return false
}

func (inst *Instruction) String() string {
	return fmt.Sprintf("%v ; %v", inst.Format, inst.Encoding)
}
