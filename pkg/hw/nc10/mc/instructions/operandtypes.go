package instructions

import (
	"errors"

	"github.com/Manu343726/nc10as/pkg/hw/nc10/mc/types"
	"github.com/Manu343726/nc10as/pkg/utils"
)

var ErrReservedOpcodeOperand = errors.New("operand types requested for a reserved or escape opcode")

// Type letters of the conversion mnemonics, e.g. CVBR converts a byte into a real
var conversionTypes = map[byte]types.OperandType{
	'B': types.OperandType_Byte,
	'H': types.OperandType_Halfword,
	'W': types.OperandType_Word,
	'R': types.OperandType_Real,
	'L': types.OperandType_LongReal,
}

func pair(t types.OperandType) []types.OperandType {
	return []types.OperandType{t, t}
}

func reservedOperand(op OpCode) ([]types.OperandType, error) {
	return nil, utils.MakeError(ErrReservedOpcodeOperand, "%v (hex: %v)", op, utils.FormatUintHex(uint64(op), 2))
}

// Returns the types the instruction expects for each of its operands, in order
func OperandTypes(op OpCode) ([]types.OperandType, error) {
	if !Opcodes.Implemented(op) {
		return reservedOperand(op)
	}

	operation := op.OperationNibble()

	switch op.TypeNibble() {
	case 0x0, 0x1:
		return pair(types.OperandType_Byte), nil
	case 0x2, 0x3:
		return pair(types.OperandType_Halfword), nil
	case 0x4:
		return pair(types.OperandType_Word), nil
	case 0x5:
		// Not always two words, despite the manual operand tables
		switch operation {
		case 0x8, 0xA: // LDPR, LCNT
			return []types.OperandType{types.OperandType_Word, types.OperandType_Byte}, nil
		case 0x9: // STPR
			return []types.OperandType{types.OperandType_Byte, types.OperandType_Word}, nil
		default:
			return pair(types.OperandType_Word), nil
		}
	case 0x8:
		// Listed with a single real operand in the reference tables, but real arithmetic is two operand like the other columns
		return pair(types.OperandType_Real), nil
	case 0x9:
		mnemonic := op.String()
		from := conversionTypes[mnemonic[len(mnemonic)-2]]
		to := conversionTypes[mnemonic[len(mnemonic)-1]]
		return []types.OperandType{from, to}, nil
	case 0xA:
		return pair(types.OperandType_LongReal), nil
	case 0xB:
		return []types.OperandType{}, nil
	case 0xE:
		switch operation {
		case 0x4: // TRAP, the source operand is an unsigned byte
			return []types.OperandType{types.OperandType_UnsignedByte}, nil
		case 0x1, 0x2, 0x3: // REP, REPZ, REPNZ take a general register
			return []types.OperandType{types.OperandType_Register}, nil
		}
	case 0xF:
		return []types.OperandType{types.OperandType_Address}, nil
	}

	return reservedOperand(op)
}
