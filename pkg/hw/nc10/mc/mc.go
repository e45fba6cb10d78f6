package mc

import (
	"fmt"
	"strings"

	"github.com/Manu343726/nc10as/pkg/hw/nc10/mc/instructions"
	"github.com/Manu343726/nc10as/pkg/hw/nc10/mc/operands"
	"github.com/Manu343726/nc10as/pkg/hw/nc10/mc/types"
	"github.com/Manu343726/nc10as/pkg/utils"
)

// One row of the addressing mode table
type AddressingModeEntry struct {
	Mode     string `yaml:"mode"`
	Register string `yaml:"register"`
	Syntax   string `yaml:"syntax"`
	Name     string `yaml:"name"`
}

// One named immediate and all its spellings
type NamedImmediateEntry struct {
	Code        int      `yaml:"code"`
	Aliases     []string `yaml:"aliases"`
	Description string   `yaml:"description"`
	ReadOnly    bool     `yaml:"readOnly"`
}

type OpCodeEntry struct {
	OpCode       string   `yaml:"opcode"`
	Mnemonic     string   `yaml:"mnemonic"`
	OperandTypes []string `yaml:"operandTypes"`
}

// Contains implementation information about the machine code
type MachineCodeDescriptor struct {
	// Information about instruction opcodes
	OpCodes *instructions.OpCodesDescriptor
	// Aliases accepted for '#NAME' immediates
	NamedImmediates *operands.NamedImmediateTable
}

var addressingModes = []AddressingModeEntry{
	{"0-3", "n", "#n", "6 bit literal, n in [-32, 31]"},
	{"4", "Rn", "(Rn)", operands.AddressingMode_RegisterIndirect.String()},
	{"5", "Rn", "(Rn)++", operands.AddressingMode_AutoSkip.String()},
	{"6", "Rn", "(Rn)+", operands.AddressingMode_AutoIncrement.String()},
	{"7", "Rn", "@(Rn)+", operands.AddressingMode_AutoIncrementIndirect.String()},
	{"8-A", "Rn", "A(Rn)", operands.AddressingMode_IndexedRegister.String() + ", A byte/halfword/word"},
	{"B", "Rn", "@A(Rn)", operands.AddressingMode_IndirectIndexed.String() + ", A word"},
	{"C", "Rn", "Rn", operands.AddressingMode_RegisterDirect.String()},
	{"D", "Rn", "-(Rn)", operands.AddressingMode_AutoDecrement.String()},
	{"E", "-", "", operands.AddressingMode_Reserved.String()},
	{"F", "0-3", "A(PC) @A(PC)", operands.AddressingMode_IndexedPC.String()},
	{"F", "4-7", "A(SP) @A(SP)", operands.AddressingMode_IndexedSP.String()},
	{"F", "8-B", "A @A", operands.AddressingMode_Absolute.String() + ", A unsigned"},
	{"F", "C", "STK", operands.AddressingMode_StackPushPop.String()},
	{"F", "D", "#n #NAME #r", operands.AddressingMode_Immediate.String()},
	{"F", "E", "", operands.AddressingMode_Reserved.String()},
	{"F", "F", "", operands.AddressingMode_Escape.String()},
}

// Rows of the addressing mode table, in mode nibble order
func (d *MachineCodeDescriptor) AddressingModes() []AddressingModeEntry {
	return addressingModes
}

// Named immediates sorted by code
func (d *MachineCodeDescriptor) NamedImmediateEntries() []NamedImmediateEntry {
	return utils.Iota(int(operands.TOTAL_PROCESSOR_REGISTERS), func(i int) NamedImmediateEntry {
		register := operands.ProcessorRegister(i)

		return NamedImmediateEntry{
			Code:        i,
			Aliases:     d.NamedImmediates.Aliases(register),
			Description: register.Description(),
			ReadOnly:    register.ReadOnly(),
		}
	})
}

// Implemented opcodes sorted by opcode
func (d *MachineCodeDescriptor) OpCodeEntries() []OpCodeEntry {
	return utils.Map(d.OpCodes.AllOpCodes(), func(op *instructions.OpCodeDescriptor) OpCodeEntry {
		return OpCodeEntry{
			OpCode:       utils.FormatUintHex(uint64(op.OpCode), 2),
			Mnemonic:     op.Mnemonic,
			OperandTypes: utils.Map(op.OperandTypes, func(t types.OperandType) string { return t.String() }),
		}
	})
}

// Dumps all the MC description as one big multiline string
func (d *MachineCodeDescriptor) Documentation(leftpad int) string {
	leftpad_str := strings.Repeat(" ", leftpad)

	var builder strings.Builder

	builder.WriteString(leftpad_str)
	builder.WriteString(fmt.Sprintf("total implemented opcodes: %v\n", d.OpCodes.TotalOpCodes()))
	builder.WriteString(leftpad_str)
	builder.WriteString(fmt.Sprintf("operand length (bytes): %v to %v\n\n", operands.MinEncodedLength, 1+types.OperandType_LongReal.Size()))

	builder.WriteString(leftpad_str)
	builder.WriteString("Addressing modes:\n\n")

	for _, entry := range d.AddressingModes() {
		builder.WriteString(fmt.Sprintf("%v - %-3v %-4v %-14v %v\n", leftpad_str, entry.Mode, entry.Register, entry.Syntax, entry.Name))
	}

	builder.WriteString("\n")
	builder.WriteString(leftpad_str)
	builder.WriteString("Named immediates:\n\n")

	for _, entry := range d.NamedImmediateEntries() {
		access := ""
		if entry.ReadOnly {
			access = " (read only)"
		}

		builder.WriteString(fmt.Sprintf("%v - #%-2v %v: %v%v\n", leftpad_str, entry.Code, utils.FormatSlice(entry.Aliases, ", "), entry.Description, access))
	}

	builder.WriteString("\n")
	builder.WriteString(leftpad_str)
	builder.WriteString("Opcodes:\n\n")

	for _, opCode := range d.OpCodes.AllOpCodes() {
		builder.WriteString(fmt.Sprintf("%v - %v\n", leftpad_str, opCode))
	}

	return builder.String()
}

// Like Documentation(), but with zero leftpad
func (d *MachineCodeDescriptor) DocString() string {
	return d.Documentation(0)
}

func makeMachineCodeDescriptor() MachineCodeDescriptor {
	return MachineCodeDescriptor{
		OpCodes:         &instructions.Opcodes,
		NamedImmediates: &operands.NamedImmediates,
	}
}

// Contains implementation information about the machine code
var Descriptor MachineCodeDescriptor = makeMachineCodeDescriptor()
