package mc

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Manu343726/nc10as/pkg/hw/nc10/mc/instructions"
	"github.com/Manu343726/nc10as/pkg/hw/nc10/mc/operands"
	"github.com/Manu343726/nc10as/pkg/utils"
)

var (
	ErrInvalidInstruction = errors.New("invalid instruction")
	ErrUnresolvedOperand  = errors.New("instruction has unresolved operands")
)

// One assembled instruction: the opcode byte followed by its operands, in order
type Instruction struct {
	// Source text
	Text     string
	OpCode   instructions.OpCode
	Operands []*operands.Operand
}

// True if no operand is a label waiting for resolution
func (i *Instruction) Resolved() bool {
	return !utils.Any(i.Operands, func(o *operands.Operand) bool { return !o.Resolved() })
}

// Range of byte counts the instruction could occupy, opcode included
func (i *Instruction) Length() operands.EncodedLength {
	length := operands.EncodedLength{Min: 1, Max: 1}

	for _, operand := range i.Operands {
		length.Min += operand.Length.Min
		length.Max += operand.Length.Max
	}

	return length
}

// Returns the binary representation of the instruction. Fails if any operand is unresolved
func (i *Instruction) Encode() ([]byte, error) {
	result := []byte{byte(i.OpCode)}

	for index, operand := range i.Operands {
		if !operand.Resolved() {
			return nil, utils.MakeError(ErrUnresolvedOperand, "operand [%v] '%v' of '%v'", index, operand.Mnemonic, i.Text)
		}

		result = append(result, operand.Encoded...)
	}

	return result, nil
}

func (i *Instruction) String() string {
	var builder strings.Builder

	builder.WriteString(i.OpCode.String())

	for index, operand := range i.Operands {
		if index == 0 {
			builder.WriteString(" ")
		} else {
			builder.WriteString(", ")
		}

		builder.WriteString(operand.Mnemonic)
	}

	return builder.String()
}

// Multiline description of the chosen encoding of every operand
func (i *Instruction) Describe() string {
	var builder strings.Builder

	builder.WriteString(fmt.Sprintf("%v: opcode %v, %v bytes\n", i, utils.FormatUintHex(uint64(i.OpCode), 2), i.Length()))

	for index, operand := range i.Operands {
		builder.WriteString(fmt.Sprintf("  [%v] %v <%v>\n", index, operand, operand.Expected))
	}

	return builder.String()
}
