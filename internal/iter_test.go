package internal

import (
	"maps"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSeqConcat(t *testing.T) {
	assert := assert.New(t)

	seq := SeqConcat(
		slices.Values([]byte{0x8a}),
		slices.Values([]byte{}),
		slices.Values([]byte{0x78, 0x68}),
	)
	assert.Equal([]byte{0x8a, 0x78, 0x68}, slices.Collect(seq))

	// Early termination stops all underlying sequences.
	var got []byte
	for b := range seq {
		got = append(got, b)
		if len(got) == 2 {
			break
		}
	}
	assert.Equal([]byte{0x8a, 0x78}, got)

	assert.Empty(slices.Collect(SeqConcat[byte]()))
}

func TestSeqOffset(t *testing.T) {
	assert := assert.New(t)

	seq := SeqOffset(4, slices.Values([]byte{0x2f, 0x6a}))
	assert.Equal(map[int]byte{4: 0x2f, 5: 0x6a}, maps.Collect(seq))

	count := 0
	for range SeqOffset(0, slices.Values([]byte{1, 2, 3})) {
		count++
		break
	}
	assert.Equal(1, count)
}
