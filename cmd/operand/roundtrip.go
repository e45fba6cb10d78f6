package operand

import (
	"fmt"

	"github.com/Manu343726/nc10as/pkg/hw/nc10/mc/operands"
	"github.com/Manu343726/nc10as/pkg/utils"
	"github.com/spf13/cobra"
)

var roundTripCmd = &cobra.Command{
	Use:   "roundtrip operand...",
	Short: "Encode, decode and encode again, checking both encodings match",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		expected, err := expectedType()

		if err != nil {
			return err
		}

		failed := 0

		for _, text := range args {
			canonical, encoding, err := operands.RoundTrip(text, expected)

			if err != nil {
				reportError(cmd, text, err)
				failed++
				continue
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%v -> %v -> %v\n", utils.HighlightOperand(text), colorBytes.Sprint(utils.FormatBytesHex(encoding.Bytes)), utils.HighlightOperand(canonical))
		}

		return failures(failed, len(args))
	},
}
