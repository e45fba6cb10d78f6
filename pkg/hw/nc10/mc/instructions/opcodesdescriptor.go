package instructions

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Manu343726/nc10as/pkg/utils"
)

var ErrInvalidOpCode error = errors.New("invalid instruction opcode")

// Returns information about the opcodes of the instruction set
type OpCodesDescriptor struct {
	mnemonics         [TOTAL_OPCODES]string
	mnemonicsToOpCode map[string]OpCode
}

// Initializes an opcodes descriptor from the two mnemonic grids of the architecture manual.
// Each grid lists 128 whitespace separated mnemonics row by row, eight per row; the first grid
// holds the even opcodes and the second the odd ones
func NewOpCodesDescriptor(evenGrid string, oddGrid string) OpCodesDescriptor {
	even := strings.Fields(evenGrid)
	odd := strings.Fields(oddGrid)

	if len(even) != TOTAL_OPCODES/2 || len(odd) != TOTAL_OPCODES/2 {
		panic(fmt.Sprintf("opcode grids must have %v entries each, got %v and %v", TOTAL_OPCODES/2, len(even), len(odd)))
	}

	d := OpCodesDescriptor{
		mnemonicsToOpCode: make(map[string]OpCode, TOTAL_OPCODES),
	}

	for i := range even {
		d.mnemonics[2*i] = even[i]
		d.mnemonics[2*i+1] = odd[i]
	}

	for op, mnemonic := range d.mnemonics {
		if mnemonic == ReservedMnemonic || mnemonic == EscapeMnemonic {
			continue
		}

		if existing, duplicated := d.mnemonicsToOpCode[mnemonic]; duplicated {
			panic(fmt.Sprintf("mnemonic %v used by opcodes %v and %v", mnemonic, existing, op))
		}

		d.mnemonicsToOpCode[mnemonic] = OpCode(op)
	}

	return d
}

func (d *OpCodesDescriptor) Descriptor(op OpCode) *OpCodeDescriptor {
	operandTypes, _ := OperandTypes(op)

	return &OpCodeDescriptor{
		OpCode:       op,
		Mnemonic:     d.Mnemonic(op),
		OperandTypes: operandTypes,
	}
}

// Returns the descriptors of all implemented (neither reserved nor escape) opcodes, sorted by opcode
func (d *OpCodesDescriptor) AllOpCodes() []*OpCodeDescriptor {
	opcodes := make([]*OpCodeDescriptor, 0, len(d.mnemonicsToOpCode))

	for op := range TOTAL_OPCODES {
		if d.Implemented(OpCode(op)) {
			opcodes = append(opcodes, d.Descriptor(OpCode(op)))
		}
	}

	return opcodes
}

// Number of implemented opcodes
func (d *OpCodesDescriptor) TotalOpCodes() int {
	return len(d.mnemonicsToOpCode)
}

func (d *OpCodesDescriptor) Implemented(op OpCode) bool {
	mnemonic := d.Mnemonic(op)
	return mnemonic != ReservedMnemonic && mnemonic != EscapeMnemonic
}

// Returns the mnemonic string representation of the opcode
func (d *OpCodesDescriptor) Mnemonic(op OpCode) string {
	return d.mnemonics[op]
}

// Returns the opcode corresponding to the given mnemonic. Reserved and escape mnemonics are rejected
func (d *OpCodesDescriptor) ParseOpCode(mnemonic string) (OpCode, error) {
	if opcode, hasOpCode := d.mnemonicsToOpCode[strings.ToUpper(mnemonic)]; hasOpCode {
		return opcode, nil
	} else {
		return 0, utils.MakeError(ErrInvalidOpCode, "'%v'", mnemonic)
	}
}

// Decodes an opcode from the first byte of an instruction
func (d *OpCodesDescriptor) DecodeOpCode(binaryRepresentation byte) (OpCode, error) {
	opCode := OpCode(binaryRepresentation)

	if !d.Implemented(opCode) {
		return 0, utils.MakeError(ErrInvalidOpCode, "%v (hex: %v, bin: %v)", d.Mnemonic(opCode), utils.FormatUintHex(uint64(binaryRepresentation), 2), utils.FormatUintBinary(uint64(binaryRepresentation), 8))
	}

	return opCode, nil
}
