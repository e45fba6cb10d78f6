package operands

import (
	"testing"

	"github.com/Manu343726/nc10as/pkg/hw/nc10/mc/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyInteger(t *testing.T) {
	tests := []struct {
		n        int64
		signed   bool
		expected types.OperandType
		width    Width
	}{
		{n: 0, signed: true, expected: types.OperandType_Byte, width: Width_Byte},
		{n: 127, signed: true, expected: types.OperandType_Byte, width: Width_Byte},
		{n: -128, signed: true, expected: types.OperandType_Byte, width: Width_Byte},
		{n: 128, signed: true, expected: types.OperandType_Halfword, width: Width_Halfword},
		{n: -129, signed: true, expected: types.OperandType_Halfword, width: Width_Halfword},
		{n: 32767, signed: true, expected: types.OperandType_Halfword, width: Width_Halfword},
		{n: 32768, signed: true, expected: types.OperandType_Word, width: Width_Word},
		{n: -2147483648, signed: true, expected: types.OperandType_Word, width: Width_Word},
		{n: 255, signed: false, expected: types.OperandType_UnsignedByte, width: Width_Byte},
		{n: 256, signed: false, expected: types.OperandType_UnsignedHalfword, width: Width_Halfword},
		{n: 65535, signed: false, expected: types.OperandType_UnsignedHalfword, width: Width_Halfword},
		{n: 65536, signed: false, expected: types.OperandType_UnsignedWord, width: Width_Word},
		{n: 4294967295, signed: false, expected: types.OperandType_UnsignedWord, width: Width_Word},
	}

	for _, tt := range tests {
		t.Run(tt.expected.String(), func(t *testing.T) {
			actual, width, err := ClassifyInteger(tt.n, tt.signed)
			require.NoError(t, err)

			assert.Equal(t, tt.expected, actual, "%v", tt.n)
			assert.Equal(t, tt.width, width, "%v", tt.n)
		})
	}
}

func TestClassifyInteger_OutOfRange(t *testing.T) {
	for _, tt := range []struct {
		n      int64
		signed bool
	}{
		{n: 2147483648, signed: true},
		{n: -2147483649, signed: true},
		{n: 4294967296, signed: false},
		{n: -1, signed: false},
	} {
		_, _, err := ClassifyInteger(tt.n, tt.signed)
		assert.ErrorIs(t, err, ErrValueOutOfRange, "%v", tt.n)
	}
}

func TestFitsInline6Bit(t *testing.T) {
	assert.True(t, FitsInline6Bit(0))
	assert.True(t, FitsInline6Bit(31))
	assert.True(t, FitsInline6Bit(-32))
	assert.False(t, FitsInline6Bit(32))
	assert.False(t, FitsInline6Bit(-33))
}

func TestWidth(t *testing.T) {
	assert.Equal(t, []int{1, 2, 4, 4}, []int{Width_Byte.Size(), Width_Halfword.Size(), Width_Word.Size(), Width_IndirectWord.Size()})
	assert.Equal(t, types.OperandType_UnsignedHalfword, Width_Halfword.IntegerType(false))
	assert.Equal(t, types.OperandType_Word, Width_IndirectWord.IntegerType(true))
}
