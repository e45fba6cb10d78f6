package instructions

import (
	"fmt"

	"github.com/Manu343726/nc10as/pkg/hw/nc10/mc/types"
	"github.com/Manu343726/nc10as/pkg/utils"
)

// Contains implementation information of an instruction opcode
type OpCodeDescriptor struct {
	OpCode       OpCode
	Mnemonic     string
	OperandTypes []types.OperandType
}

func (d *OpCodeDescriptor) String() string {
	return fmt.Sprintf("%v (hex: %v, binary: %v) operands: [%v]", d.Mnemonic, utils.FormatUintHex(uint64(d.OpCode), 2), utils.FormatUintBinary(uint64(d.OpCode), 8), utils.FormatSlice(d.OperandTypes, ", "))
}
