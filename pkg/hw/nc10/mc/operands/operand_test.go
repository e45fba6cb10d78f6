package operands

import (
	"testing"

	"github.com/Manu343726/nc10as/pkg/hw/nc10/mc/types"
	"github.com/Manu343726/nc10as/pkg/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOperand_Resolved(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected types.OperandType
		mode     AddressingMode
		length   int
	}{
		{name: "literal", text: "#5", mode: AddressingMode_Literal, length: 1},
		{name: "named literal", text: "#PI", mode: AddressingMode_Literal, length: 1},
		{name: "word operand holding a halfword", text: "#1000", expected: types.OperandType_Word, mode: AddressingMode_Immediate, length: 3},
		{name: "byte operand holding a halfword", text: "#200", expected: types.OperandType_Byte, mode: AddressingMode_Immediate, length: 3},
		{name: "longreal immediate", text: "#0.1", expected: types.OperandType_LongReal, mode: AddressingMode_Immediate, length: 9},
		{name: "register", text: "R7", mode: AddressingMode_RegisterDirect, length: 1},
		{name: "pc relative", text: "-200(PC)", mode: AddressingMode_IndexedPC, length: 3},
		{name: "absolute address", text: "0x1000", expected: types.OperandType_Address, mode: AddressingMode_Absolute, length: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			operand, err := NewOperand(tt.text, tt.expected)
			require.NoError(t, err)

			assert.True(t, operand.Resolved())
			assert.Equal(t, tt.mode, operand.Parsed.Mode)
			assert.Len(t, operand.Encoded, tt.length)
			assert.Equal(t, EncodedLength{Min: tt.length, Max: tt.length}, operand.Length)
			assert.True(t, operand.Length.Fixed())
		})
	}
}

func TestNewOperand_Label(t *testing.T) {
	operand, err := NewOperand("loop", types.OperandType_Address)
	require.NoError(t, err)

	assert.False(t, operand.Resolved())
	assert.Nil(t, operand.Encoded)
	assert.Equal(t, AddressingMode_UnresolvedLabel, operand.Parsed.Mode)
	assert.Equal(t, UnresolvedLength(), operand.Length)
	assert.Equal(t, "loop (label, [1, 5] bytes)", operand.String())
}

func TestNewOperand_Errors(t *testing.T) {
	_, err := NewOperand("loop", types.OperandType_Word)
	assert.ErrorIs(t, err, ErrUnparseableOperand)

	_, err = NewOperand("#-300", types.OperandType_UnsignedByte)
	assert.ErrorIs(t, err, ErrValueOutOfRange)

	_, err = NewInstructionOperand("#300", types.OperandType_UnsignedByte)
	assert.ErrorIs(t, err, ErrValueOutOfRange)
}

func TestNewInstructionOperand(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected types.OperandType
		mode     AddressingMode
		bytes    string
	}{
		{name: "literal", text: "#5", expected: types.OperandType_Word, mode: AddressingMode_Literal, bytes: "05"},
		{name: "word immediate", text: "#1000", expected: types.OperandType_Word, mode: AddressingMode_Immediate, bytes: "FDE8030000"},
		{name: "address immediate", text: "#200", expected: types.OperandType_Address, mode: AddressingMode_Immediate, bytes: "FDC8000000"},
		{name: "other modes are untouched", text: "-200(PC)", expected: types.OperandType_Word, mode: AddressingMode_IndexedPC, bytes: "F138FF"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			operand, err := NewInstructionOperand(tt.text, tt.expected)
			require.NoError(t, err)

			assert.Equal(t, tt.mode, operand.Parsed.Mode)
			assert.Equal(t, tt.bytes, utils.FormatBytesHex(operand.Encoded))
			assert.Equal(t, EncodedLength{Min: len(operand.Encoded), Max: len(operand.Encoded)}, operand.Length)
		})
	}

	operand, err := NewInstructionOperand("loop", types.OperandType_Address)
	require.NoError(t, err)
	assert.False(t, operand.Resolved())
}

func TestOperand_String(t *testing.T) {
	operand, err := NewOperand("R7", types.OperandType_None)
	require.NoError(t, err)

	assert.Equal(t, "R7 (C7: C 7 # register direct)", operand.String())
}

func TestLengthForDisplacement(t *testing.T) {
	tests := []struct {
		delta    int64
		expected int
	}{
		{delta: 0, expected: 1},
		{delta: 31, expected: 1},
		{delta: 32, expected: 2},
		{delta: 127, expected: 2},
		{delta: 128, expected: 3},
		{delta: 32767, expected: 3},
		{delta: 32768, expected: 5},
		{delta: 1 << 40, expected: 5},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, LengthForDisplacement(tt.delta), "%v", tt.delta)
	}
}

func TestEncodedLength_WithNarrowedBounds(t *testing.T) {
	narrowed, changed := UnresolvedLength().WithNarrowedBounds(100, 40000)
	assert.True(t, changed)
	assert.Equal(t, EncodedLength{Min: 2, Max: 5}, narrowed)

	again, changed := narrowed.WithNarrowedBounds(100, 40000)
	assert.False(t, changed)
	assert.Equal(t, narrowed, again)

	// Max never grows back, min is clamped to it
	tight, _ := narrowed.WithNarrowedBounds(10, 20)
	assert.Equal(t, EncodedLength{Min: 1, Max: 1}, tight)

	loose, changed := tight.WithNarrowedBounds(40000, 40000)
	assert.False(t, changed)
	assert.Equal(t, tight, loose)
}

func TestOperand_NarrowResolvedIsNoop(t *testing.T) {
	operand, err := NewOperand("R7", types.OperandType_None)
	require.NoError(t, err)

	assert.False(t, operand.Narrow(0, 0))
	assert.Equal(t, EncodedLength{Min: 1, Max: 1}, operand.Length)
}

func TestOperand_NarrowingIsMonotonic(t *testing.T) {
	operand, err := NewOperand("target", types.OperandType_Address)
	require.NoError(t, err)

	windows := [][2]int64{
		{40000, 40000},
		{300, 40000},
		{100, 300},
		{100, 300},
		{10, 100},
		{10, 10},
		{0, 0},
	}

	// The first narrowing assigns both bounds, from then on they only shrink
	operand.Narrow(windows[0][0], windows[0][1])
	previous := operand.Length

	for _, window := range windows[1:] {
		operand.Narrow(window[0], window[1])

		assert.LessOrEqual(t, operand.Length.Min, previous.Min, "%v", window)
		assert.LessOrEqual(t, operand.Length.Max, previous.Max, "%v", window)
		assert.GreaterOrEqual(t, operand.Length.Min, MinEncodedLength)
		assert.LessOrEqual(t, operand.Length.Min, operand.Length.Max)

		previous = operand.Length
	}

	assert.Equal(t, EncodedLength{Min: 1, Max: 1}, operand.Length)
}

// One entry of a toy instruction stream: either a fixed number of bytes or a branch operand to another entry
type streamItem struct {
	fixed   int
	operand *Operand
	target  int
}

func (item *streamItem) length() EncodedLength {
	if item.operand == nil {
		return EncodedLength{Min: item.fixed, Max: item.fixed}
	}

	return item.operand.Length
}

// Displacement bounds of the branch at index i: the bytes between the branch and its target
func displacementBounds(stream []streamItem, i int) (int64, int64) {
	begin, end := min(i, stream[i].target), max(i, stream[i].target)

	var deltaMin, deltaMax int64

	for j := begin + 1; j < end; j++ {
		length := stream[j].length()
		deltaMin += int64(length.Min)
		deltaMax += int64(length.Max)
	}

	return deltaMin, deltaMax
}

func TestOperand_NarrowingReachesFixpoint(t *testing.T) {
	newLabel := func(name string) *Operand {
		operand, err := NewOperand(name, types.OperandType_Address)
		require.NoError(t, err)
		return operand
	}

	stream := []streamItem{
		{operand: newLabel("exit"), target: 5},
		{fixed: 40},
		{operand: newLabel("start"), target: 0},
		{fixed: 40},
		{fixed: 50},
		{fixed: 1},
	}

	passes := 0

	for changed := true; changed; passes++ {
		require.Less(t, passes, 10, "narrowing does not converge")
		changed = false

		for i := range stream {
			if stream[i].operand == nil {
				continue
			}

			deltaMin, deltaMax := displacementBounds(stream, i)

			if stream[i].operand.Narrow(deltaMin, deltaMax) {
				changed = true
			}
		}
	}

	assert.Equal(t, 2, passes)
	assert.Equal(t, EncodedLength{Min: 3, Max: 3}, stream[0].operand.Length)
	assert.Equal(t, EncodedLength{Min: 2, Max: 2}, stream[2].operand.Length)
}
