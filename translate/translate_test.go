package translate

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFrom(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("line 3 'nop' bad", From("line %d '%v' %v", 3, "nop", "bad"))
	assert.Equal("plain", From("plain"))
}

func TestFprintf(t *testing.T) {
	assert := assert.New(t)

	buf := &bytes.Buffer{}
	n, err := Fprintf(buf, "%v is %d bytes\n", "jz 10", 3)
	assert.NoError(err)
	assert.Equal(buf.Len(), n)
	assert.Equal("jz 10 is 3 bytes\n", buf.String())
}

func TestNewPrinterFallback(t *testing.T) {
	assert := assert.New(t)

	p := newPrinter()
	assert.Equal("mov acc, sp", p.Sprintf("%v, %v", "mov acc", "sp"))
}
