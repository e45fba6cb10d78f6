package types

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/Manu343726/nc10as/pkg/utils"
)

var ErrInvalidValue = errors.New("invalid value")

// Stores a typed value trailing an operand mode byte
type Value struct {
	value     interface{}
	valueType OperandType
}

func (v *Value) Type() OperandType {
	return v.valueType
}

func (v *Value) Int() int64 {
	return v.value.(int64)
}

func (v *Value) Float() float64 {
	return v.value.(float64)
}

// Returns the value formatted as assembler syntax (no '#' prefix)
func (v *Value) String() string {
	switch {
	case v.valueType.IsInteger():
		return strconv.FormatInt(v.Int(), 10)
	case v.valueType == OperandType_Real:
		return strconv.FormatFloat(v.Float(), 'g', -1, 32)
	case v.valueType == OperandType_LongReal:
		return strconv.FormatFloat(v.Float(), 'g', -1, 64)
	}

	panic("unreachable")
}

// Returns the little endian memory representation of the value
func (v *Value) Encode() []byte {
	buffer := make([]byte, v.valueType.Size())

	switch v.valueType {
	case OperandType_Byte, OperandType_UnsignedByte:
		buffer[0] = byte(v.Int())
	case OperandType_Halfword, OperandType_UnsignedHalfword:
		binary.LittleEndian.PutUint16(buffer, uint16(v.Int()))
	case OperandType_Word, OperandType_UnsignedWord:
		binary.LittleEndian.PutUint32(buffer, uint32(v.Int()))
	case OperandType_Real:
		binary.LittleEndian.PutUint32(buffer, math.Float32bits(float32(v.Float())))
	case OperandType_LongReal:
		binary.LittleEndian.PutUint64(buffer, math.Float64bits(v.Float()))
	default:
		panic("unreachable")
	}

	return buffer
}

// Stores an integer value of the given integer type. The value is not range checked, Encode() truncates it
func Int(value int64, valueType OperandType) Value {
	if !valueType.IsInteger() {
		panic(fmt.Sprintf("%v is not an integer type", valueType))
	}

	return Value{
		value:     value,
		valueType: valueType,
	}
}

// Stores a real (float32) value. The value is rounded to single precision
func Real(value float64) Value {
	return Value{
		value:     float64(float32(value)),
		valueType: OperandType_Real,
	}
}

// Stores a longreal (float64) value
func LongReal(value float64) Value {
	return Value{
		value:     value,
		valueType: OperandType_LongReal,
	}
}

// Decodes a little endian value of the given type. The buffer length must match the type size
func DecodeValue(data []byte, valueType OperandType) (Value, error) {
	if size := valueType.Size(); size == 0 || size != len(data) {
		return Value{}, utils.MakeError(ErrInvalidValue, "cannot decode %v bytes as %v", len(data), valueType)
	}

	switch valueType {
	case OperandType_Byte:
		return Int(int64(int8(data[0])), valueType), nil
	case OperandType_UnsignedByte:
		return Int(int64(data[0]), valueType), nil
	case OperandType_Halfword:
		return Int(int64(int16(binary.LittleEndian.Uint16(data))), valueType), nil
	case OperandType_UnsignedHalfword:
		return Int(int64(binary.LittleEndian.Uint16(data)), valueType), nil
	case OperandType_Word:
		return Int(int64(int32(binary.LittleEndian.Uint32(data))), valueType), nil
	case OperandType_UnsignedWord:
		return Int(int64(binary.LittleEndian.Uint32(data)), valueType), nil
	case OperandType_Real:
		return Real(float64(math.Float32frombits(binary.LittleEndian.Uint32(data)))), nil
	case OperandType_LongReal:
		return LongReal(math.Float64frombits(binary.LittleEndian.Uint64(data))), nil
	}

	panic("unreachable")
}
