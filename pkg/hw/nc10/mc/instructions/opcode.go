package instructions

// Represents an instruction opcode. The low nibble selects the operand types
// family (see OperandTypes()) and the high nibble the operation within it
type OpCode uint8

// Opcodes are one byte wide
const TOTAL_OPCODES = 256

const (
	ReservedMnemonic = "RES"
	EscapeMnemonic   = "ESC"
)

// Returns the mnemonic of the instruction opcode
func (op OpCode) String() string {
	return Opcodes.Mnemonic(op)
}

// Low nibble of the opcode
func (op OpCode) TypeNibble() uint8 {
	return uint8(op) & 0xF
}

// High nibble of the opcode
func (op OpCode) OperationNibble() uint8 {
	return uint8(op) >> 4
}

func (op OpCode) Reserved() bool {
	return op.String() == ReservedMnemonic
}

// Escape opcodes prefix extended instructions not covered by this table
func (op OpCode) Escape() bool {
	return op.String() == EscapeMnemonic
}
