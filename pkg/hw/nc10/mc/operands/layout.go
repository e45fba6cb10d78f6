package operands

import (
	"fmt"

	"github.com/Manu343726/nc10as/pkg/utils"
)

// Splits an encoded operand into the fields of its binary layout, for utils.AsciiFrame()
func Layout(data []byte) ([]utils.AsciiFrameField, error) {
	if len(data) == 0 {
		return nil, utils.MakeError(ErrMalformedEncoding, "empty operand")
	}

	mode, register := SplitModeByte(data[0])

	if mode <= ModeNibble_LiteralLast {
		return []utils.AsciiFrameField{
			{Name: "literal", Value: fmt.Sprintf("%X (%d)", data[0], literalValue(data[0])), Size: "8 bits"},
		}, nil
	}

	fields := []utils.AsciiFrameField{
		{Name: "mode", Value: fmt.Sprintf("%X", mode), Size: "4 bits"},
		{Name: "reg", Value: fmt.Sprintf("%X", register), Size: "4 bits"},
	}

	if len(data) > 1 {
		fields = append(fields, utils.AsciiFrameField{
			Name:  "value",
			Value: utils.FormatBytesHex(data[1:]),
			Size:  fmt.Sprintf("%v bytes", len(data)-1),
		})
	}

	return fields, nil
}
