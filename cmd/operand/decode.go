package operand

import (
	"fmt"

	"github.com/Manu343726/nc10as/pkg/hw/nc10/mc/operands"
	"github.com/Manu343726/nc10as/pkg/utils"
	"github.com/spf13/cobra"
)

var decodeCmd = &cobra.Command{
	Use:   "decode hex...",
	Short: "Decode machine code operands back into assembly syntax",
	Long: `Decodes each argument, a hex string holding exactly one operand, into its canonical assembly syntax.
4 byte immediates need --type to tell words from reals.`,
	Example: `  nc10as operand decode C7 43 'FD 64 00'
  nc10as operand decode -t real FD0000C03F`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		hint, err := expectedType()

		if err != nil {
			return err
		}

		failed := 0

		for _, hex := range args {
			data, err := utils.ParseBytesHex(hex)

			if err != nil {
				reportError(cmd, hex, err)
				failed++
				continue
			}

			text, err := operands.Decode(data, hint)

			if err != nil {
				reportError(cmd, hex, err)
				failed++
				continue
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%v: %v\n", colorBytes.Sprint(utils.FormatBytesHex(data)), utils.HighlightOperand(text))

			if err := printLayout(cmd, data); err != nil {
				return err
			}
		}

		return failures(failed, len(args))
	},
}
