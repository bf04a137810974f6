package cpu

import (
	"errors"

	"github.com/ezrec/as8/translate"
)

var f = translate.From

var (
	// Definition errors
	ErrDefinitionSyntax   = errors.New(f("definition is not 'FORMAT ; ENCODING'"))
	ErrFormatEmpty        = errors.New(f("format empty"))
	ErrEncodingEmpty      = errors.New(f("encoding empty"))
	ErrSegmentEmpty       = errors.New(f("encoding segment empty"))
	ErrPatternLength      = errors.New(f("bit pattern is not 8 bits"))
	ErrPlaceholderUnknown = errors.New(f("unknown placeholder"))
	ErrPlaceholderMixed   = errors.New(f("bit pattern mixes operand fields"))
	ErrFieldWidth         = errors.New(f("operand field width mismatch"))
	ErrArgMissing         = errors.New(f("encoding uses an operand the format lacks"))
	ErrSubStatement       = errors.New(f("sub-statement matches no instruction"))

	// Definition script errors
	ErrStarlarkMissing = errors.New(f("script does not bind 'instructions'"))

	// Encoding errors
	ErrDepth        = errors.New(f("sub-statement nesting too deep"))
	ErrOperandRange = errors.New(f("operand does not fit its field"))
)

// ErrDefinition locates a malformed instruction definition.
type ErrDefinition struct {
	LineNo int
	Line   string
	Err    error
}

func (err *ErrDefinition) Error() string {
	return f("definition line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err *ErrDefinition) Unwrap() error {
	return err.Err
}

// ErrNoMatch is returned when no instruction matches a statement.
type ErrNoMatch string

func (err ErrNoMatch) Error() string {
	return f("%v is not a valid instruction / encoding", string(err))
}

func (err ErrNoMatch) Is(target error) (ok bool) {
	_, ok = target.(ErrNoMatch)
	return
}

// ErrSyntax locates an error in assembly source.
type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err *ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err *ErrSyntax) Unwrap() error {
	return err.Err
}

// ErrStarlarkType is returned when a definition script binds a value of the
// wrong type.
type ErrStarlarkType string

func (err ErrStarlarkType) Error() string {
	return f("'instructions' must be a string or list of strings, not %v", string(err))
}
