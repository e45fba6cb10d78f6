package mc

import (
	"log/slog"
	"strings"
	"unicode"

	"github.com/Manu343726/nc10as/pkg/hw/nc10/mc/instructions"
	"github.com/Manu343726/nc10as/pkg/hw/nc10/mc/operands"
	"github.com/Manu343726/nc10as/pkg/utils"
)

// Splits an instruction of the form 'mnemonic [operand[, operand...]]' into its mnemonic and operands.
// Operands are separated by commas, surrounding whitespace is ignored
func SplitInstruction(instrString string) (string, []string) {
	sanitizedStr := strings.TrimSpace(instrString)
	split := strings.IndexFunc(sanitizedStr, unicode.IsSpace)

	if split < 0 {
		return sanitizedStr, nil
	}

	mnemonic, rest := sanitizedStr[:split], strings.TrimSpace(sanitizedStr[split:])

	return mnemonic, utils.Map(strings.Split(rest, ","), strings.TrimSpace)
}

// Parses and encodes one instruction. Each operand is encoded against the type the opcode
// expects for it, so e.g. 'MOVR #1.5, R2' stores a real immediate and 'MOVW #1000, R2' a word.
// Operands naming labels are left unresolved, see operands.Operand.Narrow()
func AssembleInstruction(instrString string) (*Instruction, error) {
	mnemonic, operandStrings := SplitInstruction(instrString)

	opCode, err := instructions.Opcodes.ParseOpCode(mnemonic)

	if err != nil {
		return nil, err
	}

	operandTypes, err := instructions.OperandTypes(opCode)

	if err != nil {
		return nil, err
	}

	if len(operandStrings) != len(operandTypes) {
		return nil, utils.MakeError(ErrInvalidInstruction, "'%v': expected %v operands for %v instruction, got %v", strings.TrimSpace(instrString), len(operandTypes), opCode, len(operandStrings))
	}

	result := &Instruction{
		Text:     strings.TrimSpace(instrString),
		OpCode:   opCode,
		Operands: make([]*operands.Operand, len(operandTypes)),
	}

	for i, operandType := range operandTypes {
		operand, err := operands.NewInstructionOperand(operandStrings[i], operandType)

		if err != nil {
			return nil, utils.MakeError(ErrInvalidInstruction, "error parsing operand [%v] '%v': %w", i, operandStrings[i], err)
		}

		slog.Debug("operand encoded", "instruction", result.Text, "index", i, "type", operandType, "mode", operand.Parsed.Mode, "description", operand.Description)
		result.Operands[i] = operand
	}

	return result, nil
}

// Decodes the instruction at the beginning of data. Returns its canonical text and its length in bytes
func DisassembleInstruction(data []byte) (string, int, error) {
	if len(data) == 0 {
		return "", 0, utils.MakeError(ErrInvalidInstruction, "no bytes to decode")
	}

	opCode, err := instructions.Opcodes.DecodeOpCode(data[0])

	if err != nil {
		return "", 0, err
	}

	operandTypes, err := instructions.OperandTypes(opCode)

	if err != nil {
		return "", 0, err
	}

	position := 1
	texts := make([]string, len(operandTypes))

	for i, operandType := range operandTypes {
		if position >= len(data) {
			return "", 0, utils.MakeError(ErrInvalidInstruction, "%v: missing operand [%v]", opCode, i)
		}

		length, err := operands.EncodedLengthOf(data[position], operandType)

		if err != nil {
			return "", 0, utils.MakeError(ErrInvalidInstruction, "%v operand [%v]: %w", opCode, i, err)
		}

		if position+length > len(data) {
			return "", 0, utils.MakeError(ErrInvalidInstruction, "%v operand [%v]: needs %v bytes, %v left", opCode, i, length, len(data)-position)
		}

		texts[i], err = operands.Decode(data[position:position+length], operandType)

		if err != nil {
			return "", 0, utils.MakeError(ErrInvalidInstruction, "%v operand [%v]: %w", opCode, i, err)
		}

		slog.Debug("operand decoded", "opcode", opCode, "index", i, "bytes", utils.FormatBytesHex(data[position:position+length]), "text", texts[i])
		position += length
	}

	if len(texts) == 0 {
		return opCode.String(), position, nil
	}

	return opCode.String() + " " + strings.Join(texts, ", "), position, nil
}
