package operands

import (
	"fmt"

	"github.com/Manu343726/nc10as/pkg/hw/nc10/mc/types"
	"github.com/Manu343726/nc10as/pkg/utils"
)

const (
	MinEncodedLength = 1
	// Mode byte plus a word
	MaxEncodedLength = 5
)

// Range of byte counts an operand could occupy
type EncodedLength struct {
	Min int
	Max int
}

func (l EncodedLength) String() string {
	return fmt.Sprintf("[%v, %v]", l.Min, l.Max)
}

// True once both bounds agree
func (l EncodedLength) Fixed() bool {
	return l.Min == l.Max
}

// The widest span an address operand can take before its displacement is known
func UnresolvedLength() EncodedLength {
	return EncodedLength{Min: MinEncodedLength, Max: MaxEncodedLength}
}

// Returns the encoded length of an operand holding the given displacement:
// 1 byte for the 6 bit literal window, then a mode byte plus a byte, halfword or word
func LengthForDisplacement(delta int64) int {
	if FitsInline6Bit(delta) {
		return 1
	}

	if _, width, err := ClassifyInteger(delta, true); err == nil {
		return 1 + width.Size()
	}

	return MaxEncodedLength
}

// Recomputes the length range from the current bounds of the displacement.
// Min follows deltaMin, Max follows deltaMax but never grows, and Min is clamped to Max.
// Returns the new range and whether it differs from the receiver
func (l EncodedLength) WithNarrowedBounds(deltaMin, deltaMax int64) (EncodedLength, bool) {
	narrowed := EncodedLength{
		Max: min(l.Max, LengthForDisplacement(deltaMax)),
	}
	narrowed.Min = min(LengthForDisplacement(deltaMin), narrowed.Max)

	return narrowed, narrowed != l
}

// One operand of one assembly attempt. Everything but Length is fixed at construction;
// Length is narrowed by the driver resolving labels, which must not share an operand across goroutines
type Operand struct {
	Mnemonic string
	Expected types.OperandType
	Parsed   ParsedOperand
	// nil if the operand is an unresolved label
	Encoded     []byte
	Description string
	Length      EncodedLength
}

// Parses and encodes operand text. The expected type comes from the instruction operand types table
func NewOperand(mnemonic string, expected types.OperandType) (*Operand, error) {
	return newOperand(mnemonic, expected, EncodeImmediate)
}

// Same as NewOperand(), with immediates sized by the operand type so instruction streams can be
// walked back, see EncodeInstructionImmediate()
func NewInstructionOperand(mnemonic string, expected types.OperandType) (*Operand, error) {
	return newOperand(mnemonic, expected, EncodeInstructionImmediate)
}

func newOperand(mnemonic string, expected types.OperandType, encodeImmediate func(string, types.OperandType) (Encoding, error)) (*Operand, error) {
	parsed, err := Parse(mnemonic, expected)

	if err != nil {
		return nil, err
	}

	var encoding Encoding

	if parsed.Mode == AddressingMode_Immediate {
		encoding, err = encodeImmediate(parsed.Immediate, expected)
	} else {
		encoding, err = Encode(parsed, expected)
	}

	if err != nil {
		return nil, err
	}

	if len(encoding.Bytes) == 1 && parsed.Mode == AddressingMode_Immediate {
		parsed.Mode = AddressingMode_Literal
	}

	operand := &Operand{
		Mnemonic:    mnemonic,
		Expected:    expected,
		Parsed:      parsed,
		Encoded:     encoding.Bytes,
		Description: encoding.Description,
		Length:      UnresolvedLength(),
	}

	if operand.Resolved() {
		operand.Length = EncodedLength{Min: len(encoding.Bytes), Max: len(encoding.Bytes)}
	}

	return operand, nil
}

// False for labels waiting to be resolved into an immediate
func (o *Operand) Resolved() bool {
	return o.Encoded != nil
}

// Narrows the length range of an unresolved operand given the current minimum and maximum magnitude
// bounds of its displacement. Returns true if either bound changed.
//
// The driver calls this for every unresolved operand, recomputing the displacement bounds from the
// current lengths of the whole instruction stream, until no operand reports a change
func (o *Operand) Narrow(deltaMin, deltaMax int64) bool {
	if o.Resolved() {
		return false
	}

	var changed bool
	o.Length, changed = o.Length.WithNarrowedBounds(deltaMin, deltaMax)
	return changed
}

func (o *Operand) String() string {
	if !o.Resolved() {
		return fmt.Sprintf("%v (%v, %v bytes)", o.Mnemonic, o.Description, o.Length)
	}

	return fmt.Sprintf("%v (%v: %v)", o.Mnemonic, utils.FormatBytesHex(o.Encoded), o.Description)
}
