package operand

import (
	"fmt"
	"strconv"

	"github.com/Manu343726/nc10as/pkg/hw/nc10/mc/operands"
	"github.com/Manu343726/nc10as/pkg/hw/nc10/mc/types"
	"github.com/Manu343726/nc10as/pkg/utils"
	"github.com/spf13/cobra"
)

var narrowCmd = &cobra.Command{
	Use:   "narrow label min max [min max...]",
	Short: "Show how the length of a label operand narrows as its displacement bounds tighten",
	Long: `Creates an unresolved label operand and narrows its encoded length once per (min, max) pair
of displacement magnitude bounds, printing the length range after each step.`,
	Example: `  nc10as operand narrow loop 100 40000 20 300 5 20`,
	Args: func(cmd *cobra.Command, args []string) error {
		if len(args) < 3 || (len(args)-1)%2 != 0 {
			return fmt.Errorf("expected a label followed by pairs of displacement bounds, got %v args", len(args))
		}

		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		operand, err := operands.NewOperand(args[0], types.OperandType_Address)

		if err != nil {
			return err
		}

		if operand.Resolved() {
			return fmt.Errorf("'%v' is not a label, it encodes to %v", args[0], utils.FormatBytesHex(operand.Encoded))
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%v: %v\n", utils.HighlightOperand(args[0]), operand.Length)

		for i := 1; i < len(args); i += 2 {
			deltaMin, err := strconv.ParseInt(args[i], 0, 64)

			if err != nil {
				return fmt.Errorf("min bound '%v': %w", args[i], err)
			}

			deltaMax, err := strconv.ParseInt(args[i+1], 0, 64)

			if err != nil {
				return fmt.Errorf("max bound '%v': %w", args[i+1], err)
			}

			changed := operand.Narrow(deltaMin, deltaMax)
			fmt.Fprintf(cmd.OutOrStdout(), "  [%v, %v] -> %v %v\n", deltaMin, deltaMax, operand.Length, colorDescription.Sprintf("(changed: %v)", changed))
		}

		return nil
	},
}
