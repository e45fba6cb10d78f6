package operands

import (
	"fmt"

	"github.com/Manu343726/nc10as/pkg/hw/nc10/mc/types"
	"github.com/Manu343726/nc10as/pkg/utils"
)

// Returns the decoding hint for callers that only know whether the operand is floating point
func FloatHint(isFloat bool) types.OperandType {
	if isFloat {
		return types.OperandType_Real
	}

	return types.OperandType_Word
}

// Sign extends the 6 bit literal held by a mode byte with mode nibble 0-3
func literalValue(b byte) int64 {
	n := int64(b & utils.AllOnes[uint8](6))

	if n >= 32 {
		n -= 64
	}

	return n
}

// Picks the type of the trailing value of a 'F D' immediate from its size.
// Only 4 byte values need the hint to tell words from reals
func immediateType(size int, hint types.OperandType) (types.OperandType, error) {
	signed := hint.IsSigned()

	switch size {
	case 1, 2:
		return types.IntegerOfSize(size, signed), nil
	case 8:
		return types.OperandType_LongReal, nil
	case 4:
		if hint == types.OperandType_None {
			return types.OperandType_None, utils.MakeError(ErrAmbiguousImmediateWidth, "cannot distinguish between real and word immediates, try again with a real or word hint")
		} else if hint.IsFloat() {
			return types.OperandType_Real, nil
		}

		return types.IntegerOfSize(size, signed), nil
	}

	if hint == types.OperandType_None {
		return types.OperandType_None, utils.MakeError(ErrAmbiguousImmediateWidth, "cannot infer the immediate type of %v trailing bytes", size)
	}

	return types.OperandType_None, utils.MakeError(ErrMalformedEncoding, "%v trailing bytes do not hold a %v immediate", size, hint)
}

func decodeValue(data []byte, valueType types.OperandType) (types.Value, error) {
	value, err := types.DecodeValue(data, valueType)

	if err != nil {
		return value, utils.MakeError(ErrMalformedEncoding, "%v", err)
	}

	return value, nil
}

func singleByte(text string, data []byte) (string, error) {
	if err := expectLength(data, 1); err != nil {
		return "", err
	}

	return text, nil
}

func expectLength(data []byte, length int) error {
	if len(data) != length {
		return utils.MakeError(ErrMalformedEncoding, "mode byte 0x%02X expects %v bytes, got %v", data[0], length, len(data))
	}

	return nil
}

// Converts the binary encoding of one operand back into canonical operand syntax.
//
// The hint is the operand type declared by the instruction. It is only required (OperandType_None
// means no hint) for 4 byte immediates, where a word and a real share the same bit pattern.
// Integer hints also select the signedness of immediates
func Decode(data []byte, hint types.OperandType) (string, error) {
	if len(data) == 0 {
		return "", utils.MakeError(ErrMalformedEncoding, "empty operand")
	}

	mode, register := SplitModeByte(data[0])

	var (
		width   Width
		base    string
		signed  = true
		special = mode == ModeNibble_Special
	)

	switch {
	case mode <= ModeNibble_LiteralLast:
		return singleByte(fmt.Sprintf("#%d", literalValue(data[0])), data)
	case mode == ModeNibble_RegisterIndirect:
		return singleByte(fmt.Sprintf("(R%d)", register), data)
	case mode == ModeNibble_AutoSkip:
		return singleByte(fmt.Sprintf("(R%d)++", register), data)
	case mode == ModeNibble_AutoIncrement:
		return singleByte(fmt.Sprintf("(R%d)+", register), data)
	case mode == ModeNibble_AutoIncrementIndirect:
		return singleByte(fmt.Sprintf("@(R%d)+", register), data)
	case mode == ModeNibble_RegisterDirect:
		return singleByte(fmt.Sprintf("R%d", register), data)
	case mode == ModeNibble_AutoDecrement:
		return singleByte(fmt.Sprintf("-(R%d)", register), data)
	case mode == ModeNibble_Reserved:
		return singleByte("RES", data)
	case special && register == SpecialNibble_StackPushPop:
		return singleByte("STK", data)
	case special && register == SpecialNibble_Reserved:
		return singleByte("RES", data)
	case special && register == SpecialNibble_Escape:
		return singleByte("ESC", data)
	case special && register == SpecialNibble_Immediate:
		valueType, err := immediateType(len(data)-1, hint)

		if err != nil {
			return "", err
		}

		value, err := decodeValue(data[1:], valueType)

		if err != nil {
			return "", err
		}

		return "#" + value.String(), nil
	case special:
		width = Width(register & 0x3)

		switch register &^ 0x3 {
		case SpecialNibble_PCRelative:
			base = "(PC)"
		case SpecialNibble_SPRelative:
			base = "(SP)"
		default:
			signed = false
		}
	default:
		width = Width(mode & 0x3)
		base = fmt.Sprintf("(R%d)", register)
	}

	if err := expectLength(data, 1+width.Size()); err != nil {
		return "", err
	}

	value, err := decodeValue(data[1:], width.IntegerType(signed))

	if err != nil {
		return "", err
	}

	indirect := ""
	if width == Width_IndirectWord {
		indirect = "@"
	}

	return indirect + value.String() + base, nil
}

// Returns the total byte count of the operand starting with the given mode byte, as laid out
// inside an instruction. Immediates need the operand type declared by the instruction to know
// their width, see EncodeInstructionImmediate()
func EncodedLengthOf(first byte, operandType types.OperandType) (int, error) {
	mode, register := SplitModeByte(first)

	switch {
	case mode >= ModeNibble_Indexed && mode <= ModeNibble_IndexedLast:
		return 1 + Width(mode&0x3).Size(), nil
	case mode != ModeNibble_Special:
		return 1, nil
	case register == SpecialNibble_StackPushPop, register == SpecialNibble_Reserved, register == SpecialNibble_Escape:
		return 1, nil
	case register == SpecialNibble_Immediate:
		if size := InstructionImmediateType(operandType).Size(); size > 0 {
			return 1 + size, nil
		}

		return 0, utils.MakeError(ErrAmbiguousImmediateWidth, "immediate width of a %v operand is unknown", operandType)
	}

	return 1 + Width(register&0x3).Size(), nil
}
