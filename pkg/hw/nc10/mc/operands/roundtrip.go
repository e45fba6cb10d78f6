package operands

import (
	"bytes"
	"errors"

	"github.com/Manu343726/nc10as/pkg/hw/nc10/mc/types"
	"github.com/Manu343726/nc10as/pkg/utils"
)

var ErrRoundTripMismatch = errors.New("operand round trip mismatch")

// Decoding hint matching an expected type. Operands with no expected type are read as integers
func HintFor(expected types.OperandType) types.OperandType {
	if expected == types.OperandType_None {
		return FloatHint(false)
	}

	return expected
}

// Encodes the operand, decodes the result and encodes the decoded text again, checking that
// decoding and re-encoding reach a fixpoint. Returns the canonical text and its encoding.
// Labels have no encoding and are returned unchanged
func RoundTrip(text string, expected types.OperandType) (string, Encoding, error) {
	first, err := EncodeText(text, expected)

	if err != nil {
		return "", Encoding{}, err
	}

	if first.Bytes == nil {
		return text, first, nil
	}

	hint := HintFor(expected)
	canonical, err := Decode(first.Bytes, hint)

	if err != nil {
		return "", first, err
	}

	second, err := EncodeText(canonical, expected)

	if err != nil {
		return canonical, first, utils.MakeError(ErrRoundTripMismatch, "'%v' decodes to '%v', which does not encode: %w", text, canonical, err)
	}

	if !bytes.Equal(first.Bytes, second.Bytes) {
		return canonical, first, utils.MakeError(ErrRoundTripMismatch, "'%v' encodes to %v but '%v' encodes to %v", text, utils.FormatBytesHex(first.Bytes), canonical, utils.FormatBytesHex(second.Bytes))
	}

	if again, err := Decode(second.Bytes, hint); err != nil || again != canonical {
		return canonical, first, utils.MakeError(ErrRoundTripMismatch, "'%v' decodes to '%v' and then to '%v'", text, canonical, again)
	}

	return canonical, first, nil
}
