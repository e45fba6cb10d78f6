package operands

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/Manu343726/nc10as/pkg/hw/nc10/mc/types"
	"github.com/Manu343726/nc10as/pkg/utils"
)

// Binary encoding of an operand: the mode byte followed by the trailing value, if any.
// Bytes is nil for unresolved labels
type Encoding struct {
	Bytes []byte
	// Which mode/register nibble pair and value were chosen, e.g. "F D byte(100) # immediate". Debugging only
	Description string
}

// Packs the mode and register nibbles into an operand leading byte
func ModeByte(mode uint8, register uint8) byte {
	var b uint8
	view := utils.CreateBitView(&b)
	view.Write(mode, 4, 4)
	view.Write(register, 0, 4)
	return b
}

// Splits an operand leading byte into its mode and register nibbles
func SplitModeByte(b byte) (mode uint8, register uint8) {
	view := utils.CreateBitView(&b)
	return view.Read(4, 4), view.Read(0, 4)
}

func encode(mode uint8, register uint8, value *types.Value, description string) Encoding {
	bytes := []byte{ModeByte(mode, register)}

	if value != nil {
		bytes = append(bytes, value.Encode()...)
	}

	return Encoding{
		Bytes:       bytes,
		Description: description,
	}
}

// A literal in [-32, 31] takes the whole 6 low bits of the mode byte, the mode nibble holding its two high bits
func encodeLiteral(n int64) Encoding {
	b := uint8(n) & utils.AllOnes[uint8](6)
	return Encoding{
		Bytes:       []byte{b},
		Description: fmt.Sprintf("0 (6-bits)%d # literal", n),
	}
}

// Parses a decimal or 0x prefixed hex integer with an optional sign
func parseInteger(text string) (int64, error) {
	digits := text
	negative := false

	if rest, ok := strings.CutPrefix(digits, "-"); ok {
		digits, negative = rest, true
	} else if rest, ok := strings.CutPrefix(digits, "+"); ok {
		digits = rest
	}

	base := 10
	if rest, ok := strings.CutPrefix(strings.ToLower(digits), "0x"); ok {
		digits, base = rest, 16
	}

	if digits == "" || strings.ContainsAny(digits, "+-_") {
		return 0, strconv.ErrSyntax
	}

	magnitude, err := strconv.ParseUint(digits, base, 63)

	if err != nil {
		return 0, err.(*strconv.NumError).Err
	}

	if negative {
		return -int64(magnitude), nil
	}

	return int64(magnitude), nil
}

// Returns f as an integer if it has no fractional part
func integral(f float64) (int64, bool) {
	if f != math.Trunc(f) || math.Abs(f) > math.MaxInt32 {
		return 0, false
	}

	return int64(f), true
}

func floatImmediate(f float64, floatType types.OperandType) (Encoding, error) {
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return Encoding{}, utils.MakeError(ErrValueOutOfRange, "%v is not a finite number", f)
	}

	// With no requested type, reals that survive single precision are stored in 4 bytes
	if !floatType.IsFloat() {
		if float64(float32(f)) == f {
			floatType = types.OperandType_Real
		} else {
			floatType = types.OperandType_LongReal
		}
	}

	var value types.Value

	if floatType == types.OperandType_Real {
		if math.Abs(f) > math.MaxFloat32 {
			return Encoding{}, utils.MakeError(ErrValueOutOfRange, "%v does not fit a real", f)
		}

		value = types.Real(f)
	} else {
		value = types.LongReal(f)
	}

	return encode(ModeNibble_Special, SpecialNibble_Immediate, &value,
		fmt.Sprintf("F D %v(%v) # immediate", floatType, value.String())), nil
}

// Stores n in the narrowest integer able to hold it. Unsigned operand types classify unsigned,
// everything else signed
func integerImmediate(n int64, expected types.OperandType) (Encoding, error) {
	if FitsInline6Bit(n) {
		return encodeLiteral(n), nil
	}

	valueType, _, err := ClassifyInteger(n, expected.IsSigned())

	if err != nil {
		return Encoding{}, err
	}

	return typedImmediate(n, valueType), nil
}

func typedImmediate(n int64, valueType types.OperandType) Encoding {
	value := types.Int(n, valueType)
	return encode(ModeNibble_Special, SpecialNibble_Immediate, &value,
		fmt.Sprintf("F D %v(%d) # immediate", valueType, n))
}

// Resolves immediate text into an integer, named processor registers included.
// Returns ErrValueOutOfRange for integers beyond 64 bits and strconv.ErrSyntax for non integers
func parseImmediateInteger(text string) (int64, error) {
	if register, isNamed := NamedImmediates.Lookup(text); isNamed {
		return int64(register), nil
	}

	n, err := parseInteger(text)

	if errors.Is(err, strconv.ErrRange) {
		return 0, utils.MakeError(ErrValueOutOfRange, "'#%v'", text)
	}

	return n, err
}

// Encodes the text following '#'. Named processor registers resolve to their selector.
//
// Values in [-32, 31] (including reals with no fractional part) are packed as literals. Otherwise
// integers take the narrowest byte, halfword or word that holds them, real types store a real of
// that precision, and fractional values with no real type pick a real or a longreal
func EncodeImmediate(text string, expected types.OperandType) (Encoding, error) {
	if expected.IsFloat() {
		f, err := strconv.ParseFloat(text, 64)

		if err != nil {
			return Encoding{}, utils.MakeError(ErrUnparseableOperand, "'#%v' is not a number", text)
		}

		if n, ok := integral(f); ok && FitsInline6Bit(n) {
			return encodeLiteral(n), nil
		}

		return floatImmediate(f, expected)
	}

	n, err := parseImmediateInteger(text)

	if err == nil {
		return integerImmediate(n, expected)
	} else if errors.Is(err, ErrValueOutOfRange) {
		return Encoding{}, err
	}

	f, err := strconv.ParseFloat(text, 64)

	if err != nil || expected.IsInteger() {
		return Encoding{}, utils.MakeError(ErrUnparseableOperand, "'#%v' is not a %v", text, expectedNumberKind(expected))
	}

	if n, ok := integral(f); ok && FitsInline6Bit(n) {
		return encodeLiteral(n), nil
	}

	return floatImmediate(f, types.OperandType_None)
}

// Type of the trailing value of a 'F D' immediate inside an instruction: the operand type itself
// for integers and reals, a word for address and register operands. OperandType_None has no
// instruction layout
func InstructionImmediateType(operandType types.OperandType) types.OperandType {
	switch {
	case operandType.IsInteger(), operandType.IsFloat():
		return operandType
	case operandType == types.OperandType_Address, operandType == types.OperandType_Register:
		return types.OperandType_Word
	}

	return types.OperandType_None
}

// Encodes the text following '#' the way instructions store it: literals stay literals, and any
// other value takes the full size of InstructionImmediateType(), so the operand length can be
// recovered from the operand type alone. See EncodedLengthOf()
func EncodeInstructionImmediate(text string, operandType types.OperandType) (Encoding, error) {
	valueType := InstructionImmediateType(operandType)

	if valueType == types.OperandType_None {
		return Encoding{}, utils.MakeError(ErrAmbiguousImmediateWidth, "a %v operand has no immediate layout", operandType)
	}

	if valueType.IsFloat() {
		return EncodeImmediate(text, valueType)
	}

	n, err := parseImmediateInteger(text)

	if errors.Is(err, ErrValueOutOfRange) {
		return Encoding{}, err
	} else if err != nil {
		return Encoding{}, utils.MakeError(ErrUnparseableOperand, "'#%v' is not a %v", text, expectedNumberKind(valueType))
	}

	if FitsInline6Bit(n) {
		return encodeLiteral(n), nil
	}

	if !InRange(n, utils.BitsPerByte*valueType.Size(), valueType.IsSigned()) {
		return Encoding{}, utils.MakeError(ErrValueOutOfRange, "%v does not fit a %v immediate", n, valueType)
	}

	return typedImmediate(n, valueType), nil
}

func expectedNumberKind(expected types.OperandType) string {
	if expected.IsInteger() {
		return "named immediate or integer"
	}

	return "named immediate or number"
}

func encodeIndexed(operand *ParsedOperand) (Encoding, error) {
	offset, err := parseInteger(operand.Offset)

	if errors.Is(err, strconv.ErrRange) {
		return Encoding{}, utils.MakeError(ErrValueOutOfRange, "offset '%v'", operand.Offset)
	} else if err != nil {
		return Encoding{}, utils.MakeError(ErrOffsetNotInteger, "'%v' in '%v'", operand.Offset, operand.Text)
	}

	// Bare addresses are absolute and unsigned, offsets from a base register are signed
	signed := operand.Mode != AddressingMode_Absolute

	valueType, width, err := ClassifyInteger(offset, signed)

	if err != nil {
		return Encoding{}, utils.MakeError(err, "offset of '%v'", operand.Text)
	}

	if operand.Indirect {
		valueType, width = Width_Word.IntegerType(signed), Width_IndirectWord
	}

	value := types.Int(offset, valueType)
	arg := fmt.Sprintf("%v(%d)", valueType, offset)

	var specialBase uint8

	switch operand.Mode {
	case AddressingMode_IndexedRegister, AddressingMode_IndirectIndexed:
		mode := ModeNibble_Indexed + uint8(width)
		return encode(mode, uint8(operand.Register), &value,
			fmt.Sprintf("%X %X %v # offset+register indirect", mode, operand.Register, arg)), nil
	case AddressingMode_IndexedPC:
		specialBase = SpecialNibble_PCRelative
	case AddressingMode_IndexedSP:
		specialBase = SpecialNibble_SPRelative
	case AddressingMode_Absolute:
		specialBase = SpecialNibble_Absolute
	default:
		panic("unreachable")
	}

	register := specialBase + uint8(width)
	return encode(ModeNibble_Special, register, &value,
		fmt.Sprintf("F %X %v # special modes no general register", register, arg)), nil
}

func encodeRegisterMode(mode uint8, operand *ParsedOperand) Encoding {
	return encode(mode, uint8(operand.Register), nil,
		fmt.Sprintf("%X %X # %v", mode, operand.Register, operand.Mode))
}

// Maps a parsed operand into its binary encoding. The expected type drives the trailing value
// of immediates, see EncodeImmediate()
func Encode(operand ParsedOperand, expected types.OperandType) (Encoding, error) {
	if operand.Mode.HasRegister() && (operand.Register < 0 || operand.Register > 15) {
		return Encoding{}, utils.MakeError(ErrInvalidRegisterNumber, "R%v outside range 0-15", operand.Register)
	}

	if operand.Mode.HasOffset() {
		return encodeIndexed(&operand)
	}

	switch operand.Mode {
	case AddressingMode_Literal, AddressingMode_Immediate:
		return EncodeImmediate(operand.Immediate, expected)
	case AddressingMode_RegisterDirect:
		return encodeRegisterMode(ModeNibble_RegisterDirect, &operand), nil
	case AddressingMode_RegisterIndirect:
		return encodeRegisterMode(ModeNibble_RegisterIndirect, &operand), nil
	case AddressingMode_AutoIncrement:
		return encodeRegisterMode(ModeNibble_AutoIncrement, &operand), nil
	case AddressingMode_AutoIncrementIndirect:
		return encodeRegisterMode(ModeNibble_AutoIncrementIndirect, &operand), nil
	case AddressingMode_AutoDecrement:
		return encodeRegisterMode(ModeNibble_AutoDecrement, &operand), nil
	case AddressingMode_AutoSkip:
		return encodeRegisterMode(ModeNibble_AutoSkip, &operand), nil
	case AddressingMode_StackPushPop:
		return encode(ModeNibble_Special, SpecialNibble_StackPushPop, nil, "F C # push/pop"), nil
	case AddressingMode_Reserved:
		return encode(ModeNibble_Reserved, 0, nil, "E 0 # reserved"), nil
	case AddressingMode_Escape:
		return encode(ModeNibble_Special, SpecialNibble_Escape, nil, "F F # escape"), nil
	case AddressingMode_UnresolvedLabel:
		return Encoding{Description: "label"}, nil
	}

	panic("unreachable")
}

// Parses and encodes operand text in one go
func EncodeText(text string, expected types.OperandType) (Encoding, error) {
	operand, err := Parse(text, expected)

	if err != nil {
		return Encoding{}, err
	}

	return Encode(operand, expected)
}
