package operand

import (
	"fmt"

	"github.com/Manu343726/nc10as/pkg/hw/nc10/mc/operands"
	"github.com/Manu343726/nc10as/pkg/utils"
	"github.com/spf13/cobra"
)

var encodeCmd = &cobra.Command{
	Use:   "encode operand...",
	Short: "Encode operands into machine code",
	Example: `  nc10as operand encode R7 '(R3)+' '-8(R2)'
  nc10as operand encode -t uword '#1000'
  nc10as operand encode -t real --layout '#1.5'`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		expected, err := expectedType()

		if err != nil {
			return err
		}

		failed := 0

		for _, text := range args {
			operand, err := operands.NewOperand(text, expected)

			if err != nil {
				reportError(cmd, text, err)
				failed++
				continue
			}

			if !operand.Resolved() {
				fmt.Fprintf(cmd.OutOrStdout(), "%v: %v\n", utils.HighlightOperand(text), colorDescription.Sprintf("label, %v bytes", operand.Length))
				continue
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%v: %v %v\n", utils.HighlightOperand(text), colorBytes.Sprint(utils.FormatBytesHex(operand.Encoded)), colorDescription.Sprint(operand.Description))

			if err := printLayout(cmd, operand.Encoded); err != nil {
				return err
			}
		}

		return failures(failed, len(args))
	},
}
