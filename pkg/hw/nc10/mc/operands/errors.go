package operands

import "errors"

var (
	// The text matches no operand syntax (and is not a label where an address is expected)
	ErrUnparseableOperand = errors.New("unparseable operand")
	// General register index outside 0-15
	ErrInvalidRegisterNumber = errors.New("invalid register number")
	// Mutually exclusive addressing mode markers used together, e.g. '@-(R1)'
	ErrIllegalModeCombination = errors.New("illegal addressing mode combination")
	ErrOffsetNotInteger       = errors.New("offset not parseable as integer")
	// Integer, named immediate or real value that does not fit the 32 bit word (or requested type) range
	ErrValueOutOfRange = errors.New("value out of range")
	// A 4 byte immediate was decoded without saying whether it is a word or a real
	ErrAmbiguousImmediateWidth = errors.New("ambiguous immediate width")
	// The byte count does not match the width announced by the operand mode byte
	ErrMalformedEncoding = errors.New("malformed operand encoding")
)
