package operands

import (
	"testing"

	"github.com/Manu343726/nc10as/pkg/hw/nc10/mc/types"
	"github.com/Manu343726/nc10as/pkg/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParseHex(t *testing.T, text string) []byte {
	data, err := utils.ParseBytesHex(text)
	require.NoError(t, err)
	return data
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name     string
		bytes    string
		hint     types.OperandType
		expected string
	}{
		{name: "register direct", bytes: "C7", expected: "R7"},
		{name: "register indirect", bytes: "43", expected: "(R3)"},
		{name: "autoskip", bytes: "52", expected: "(R2)++"},
		{name: "autoincrement", bytes: "62", expected: "(R2)+"},
		{name: "autoincrement indirect", bytes: "72", expected: "@(R2)+"},
		{name: "autodecrement", bytes: "D5", expected: "-(R5)"},
		{name: "stack", bytes: "FC", expected: "STK"},
		{name: "escape", bytes: "FF", expected: "ESC"},
		{name: "special reserved", bytes: "FE", expected: "RES"},
		{name: "reserved mode", bytes: "E3", expected: "RES"},
		{name: "literal", bytes: "05", expected: "#5"},
		{name: "literal max", bytes: "1F", expected: "#31"},
		{name: "literal minus one", bytes: "3F", expected: "#-1"},
		{name: "literal min", bytes: "20", expected: "#-32"},
		{name: "byte immediate", bytes: "FD20", expected: "#32"},
		{name: "negative byte immediate", bytes: "FDDF", expected: "#-33"},
		{name: "unsigned byte immediate", bytes: "FDC8", hint: types.OperandType_UnsignedByte, expected: "#200"},
		{name: "halfword immediate", bytes: "FDE803", expected: "#1000"},
		{name: "word immediate", bytes: "FDE8030000", hint: types.OperandType_Word, expected: "#1000"},
		{name: "unsigned word immediate", bytes: "FDFFFFFFFF", hint: types.OperandType_UnsignedWord, expected: "#4294967295"},
		{name: "real immediate", bytes: "FD0000C03F", hint: types.OperandType_Real, expected: "#1.5"},
		{name: "longreal immediate", bytes: "FD9A9999999999B93F", expected: "#0.1"},
		{name: "byte offset", bytes: "8208", expected: "8(R2)"},
		{name: "negative byte offset", bytes: "82F8", expected: "-8(R2)"},
		{name: "halfword offset", bytes: "92C800", expected: "200(R2)"},
		{name: "word offset", bytes: "A2409C0000", expected: "40000(R2)"},
		{name: "indirect offset", bytes: "B208000000", expected: "@8(R2)"},
		{name: "pc relative", bytes: "F00C", expected: "12(PC)"},
		{name: "indirect pc relative", bytes: "F30C000000", expected: "@12(PC)"},
		{name: "sp relative", bytes: "F538FF", expected: "-200(SP)"},
		{name: "absolute byte is unsigned", bytes: "F8FF", expected: "255"},
		{name: "absolute halfword", bytes: "F90001", expected: "256"},
		{name: "indirect absolute", bytes: "FB04000000", expected: "@4"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text, err := Decode(mustParseHex(t, tt.bytes), tt.hint)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, text)
		})
	}
}

func TestDecode_Errors(t *testing.T) {
	tests := []struct {
		name  string
		bytes string
		hint  types.OperandType
		err   error
	}{
		{name: "empty", bytes: "", err: ErrMalformedEncoding},
		{name: "trailing bytes after register", bytes: "C700", err: ErrMalformedEncoding},
		{name: "missing offset", bytes: "82", err: ErrMalformedEncoding},
		{name: "short word offset", bytes: "A20000", err: ErrMalformedEncoding},
		{name: "word immediate without hint", bytes: "FDE8030000", err: ErrAmbiguousImmediateWidth},
		{name: "odd immediate without hint", bytes: "FD000000", err: ErrAmbiguousImmediateWidth},
		{name: "odd immediate with hint", bytes: "FD000000", hint: types.OperandType_Word, err: ErrMalformedEncoding},
		{name: "immediate without value", bytes: "FD", hint: types.OperandType_Word, err: ErrMalformedEncoding},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(mustParseHex(t, tt.bytes), tt.hint)
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func TestDecode_FloatHintDisambiguatesWords(t *testing.T) {
	data := mustParseHex(t, "FD0000C03F")

	_, err := Decode(data, types.OperandType_None)
	assert.ErrorIs(t, err, ErrAmbiguousImmediateWidth)

	integer, err := Decode(data, FloatHint(false))
	require.NoError(t, err)
	assert.Equal(t, "#1069547520", integer)

	floating, err := Decode(data, FloatHint(true))
	require.NoError(t, err)
	assert.Equal(t, "#1.5", floating)
}

func TestEncodedLengthOf(t *testing.T) {
	tests := []struct {
		name     string
		first    byte
		typ      types.OperandType
		expected int
	}{
		{name: "literal", first: 0x05, expected: 1},
		{name: "register direct", first: 0xC7, expected: 1},
		{name: "autodecrement", first: 0xD5, expected: 1},
		{name: "byte offset", first: 0x82, expected: 2},
		{name: "halfword offset", first: 0x92, expected: 3},
		{name: "word offset", first: 0xA2, expected: 5},
		{name: "indirect offset", first: 0xB2, expected: 5},
		{name: "pc relative byte", first: 0xF0, expected: 2},
		{name: "sp relative halfword", first: 0xF5, expected: 3},
		{name: "absolute indirect", first: 0xFB, expected: 5},
		{name: "stack", first: 0xFC, expected: 1},
		{name: "escape", first: 0xFF, expected: 1},
		{name: "byte immediate", first: 0xFD, typ: types.OperandType_Byte, expected: 2},
		{name: "word immediate", first: 0xFD, typ: types.OperandType_UnsignedWord, expected: 5},
		{name: "real immediate", first: 0xFD, typ: types.OperandType_Real, expected: 5},
		{name: "longreal immediate", first: 0xFD, typ: types.OperandType_LongReal, expected: 9},
		{name: "address immediate", first: 0xFD, typ: types.OperandType_Address, expected: 5},
		{name: "register immediate", first: 0xFD, typ: types.OperandType_Register, expected: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			length, err := EncodedLengthOf(tt.first, tt.typ)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, length)
		})
	}

	_, err := EncodedLengthOf(0xFD, types.OperandType_None)
	assert.ErrorIs(t, err, ErrAmbiguousImmediateWidth)
}
