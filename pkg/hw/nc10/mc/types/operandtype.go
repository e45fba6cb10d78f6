package types

import (
	"errors"
	"strings"

	"github.com/Manu343726/nc10as/pkg/utils"
)

// Represents the semantic type an instruction expects for one of its operands.
// It drives the width and signedness of trailing immediate values during encoding
// and disambiguates 4 byte immediates during decoding
type OperandType uint

const (
	// No expectation. When used as a decoding hint it means "no hint"
	OperandType_None OperandType = iota
	OperandType_Byte
	OperandType_UnsignedByte
	OperandType_Halfword
	OperandType_UnsignedHalfword
	OperandType_Word
	OperandType_UnsignedWord
	// IEEE 754 single precision
	OperandType_Real
	// IEEE 754 double precision
	OperandType_LongReal
	OperandType_Register
	OperandType_Address

	TOTAL_OPERAND_TYPES
)

var operandTypeNames = map[OperandType]string{
	OperandType_None:             "none",
	OperandType_Byte:             "byte",
	OperandType_UnsignedByte:     "ubyte",
	OperandType_Halfword:         "halfword",
	OperandType_UnsignedHalfword: "uhalfword",
	OperandType_Word:             "word",
	OperandType_UnsignedWord:     "uword",
	OperandType_Real:             "real",
	OperandType_LongReal:         "longreal",
	OperandType_Register:         "register",
	OperandType_Address:          "address",
}

var operandTypesByName = utils.InvertedMap(operandTypeNames)

var ErrInvalidOperandType = errors.New("invalid operand type")

func (t OperandType) String() string {
	if name, ok := operandTypeNames[t]; ok {
		return name
	}

	panic("unreachable")
}

// Parses an operand type name as returned by String(). Empty string parses as OperandType_None
func ParseOperandType(name string) (OperandType, error) {
	if name == "" {
		return OperandType_None, nil
	}

	if t, ok := operandTypesByName[strings.ToLower(name)]; ok {
		return t, nil
	}

	return OperandType_None, utils.MakeError(ErrInvalidOperandType, "'%v' (expected one of %v)", name, utils.FormatSlice(AllOperandTypeNames(), ", "))
}

// Returns the names of all operand types, in declaration order
func AllOperandTypeNames() []string {
	return utils.Iota(int(TOTAL_OPERAND_TYPES), func(i int) string { return OperandType(i).String() })
}

// Returns true for the six fixed point types
func (t OperandType) IsInteger() bool {
	switch t {
	case OperandType_Byte, OperandType_UnsignedByte,
		OperandType_Halfword, OperandType_UnsignedHalfword,
		OperandType_Word, OperandType_UnsignedWord:
		return true
	}

	return false
}

func (t OperandType) IsFloat() bool {
	return t == OperandType_Real || t == OperandType_LongReal
}

// Only the explicitly unsigned integer types are unsigned
func (t OperandType) IsSigned() bool {
	switch t {
	case OperandType_UnsignedByte, OperandType_UnsignedHalfword, OperandType_UnsignedWord:
		return false
	}

	return true
}

// Size in bytes of a value of this type, 0 for types that carry no value of their own
func (t OperandType) Size() int {
	switch t {
	case OperandType_Byte, OperandType_UnsignedByte:
		return 1
	case OperandType_Halfword, OperandType_UnsignedHalfword:
		return 2
	case OperandType_Word, OperandType_UnsignedWord, OperandType_Real:
		return 4
	case OperandType_LongReal:
		return 8
	}

	return 0
}

// Returns the integer type of the given size (1, 2 or 4 bytes) and signedness
func IntegerOfSize(size int, signed bool) OperandType {
	var t OperandType

	switch size {
	case 1:
		t = OperandType_Byte
	case 2:
		t = OperandType_Halfword
	case 4:
		t = OperandType_Word
	default:
		panic("unreachable")
	}

	if !signed {
		t++
	}

	return t
}
