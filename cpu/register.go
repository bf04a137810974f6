package cpu

import (
	"strconv"
	"strings"
)

// Register indexes with a conventional role.
const (
	REG_ZERO   = 0 // Always zero.
	REG_CONFIG = 1 // Configuration.
	REG_PCL    = 2 // Program counter, lower byte.
	REG_TOS    = 5 // Top of stack.
	REG_ACC    = 6 // Accumulator.
	REG_SP     = 7 // Stack pointer.
)

// aliasMap maps register alias names to register indexes.
var aliasMap = map[string]int{
	"config": REG_CONFIG,
	"tos":    REG_TOS,
	"acc":    REG_ACC,
	"sp":     REG_SP,
}

// RegisterOf resolves a register name ("r0".."rN" or an alias) to its index.
// The index is not range checked; that is up to the operand class.
func RegisterOf(word string) (index int, ok bool) {
	index, ok = aliasMap[word]
	if ok {
		return
	}

	digits, found := strings.CutPrefix(word, "r")
	if !found {
		return
	}

	index, ok = numberOf(digits)
	return
}

// numberOf parses an unsigned decimal word.
func numberOf(word string) (value int, ok bool) {
	if len(word) == 0 {
		return
	}
	for _, ch := range []byte(word) {
		if ch < '0' || ch > '9' {
			return
		}
	}

	value, err := strconv.Atoi(word)
	if err != nil {
		// Too large for an int; no class accepts it anyway.
		return
	}

	ok = true
	return
}
