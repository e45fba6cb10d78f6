package operand

import (
	"fmt"

	"github.com/Manu343726/nc10as/pkg/hw/nc10/mc/operands"
	"github.com/Manu343726/nc10as/pkg/hw/nc10/mc/types"
	"github.com/Manu343726/nc10as/pkg/utils"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	colorBytes       = color.New(color.FgMagenta)
	colorDescription = color.New(color.FgHiBlack)
	colorError       = color.New(color.FgRed, color.Bold)
)

// OperandCmd groups the single operand commands
var OperandCmd = &cobra.Command{
	Use:   "operand",
	Short: "Encode and decode single operands",
	Long: `Encode and decode single operands.

The expected operand type (--type) selects the width of immediates and disambiguates
4 byte immediates when decoding. Valid types: ` + utils.FormatSlice(types.AllOperandTypeNames(), ", "),
}

func init() {
	OperandCmd.PersistentFlags().StringP("type", "t", "", "expected operand type")
	OperandCmd.PersistentFlags().Bool("layout", false, "draw the binary layout of each operand")

	viper.BindPFlag("operand.type", OperandCmd.PersistentFlags().Lookup("type"))

	OperandCmd.AddCommand(encodeCmd, decodeCmd, roundTripCmd, narrowCmd)
}

func expectedType() (types.OperandType, error) {
	return types.ParseOperandType(viper.GetString("operand.type"))
}

func printLayout(cmd *cobra.Command, data []byte) error {
	if layout, _ := cmd.Flags().GetBool("layout"); !layout || len(data) == 0 {
		return nil
	}

	fields, err := operands.Layout(data)

	if err != nil {
		return err
	}

	frame, err := utils.AsciiFrame(fields, 2)

	if err != nil {
		return err
	}

	fmt.Fprint(cmd.OutOrStdout(), frame)
	return nil
}

// Prints one failed operand to stderr
func reportError(cmd *cobra.Command, text string, err error) {
	fmt.Fprintf(cmd.ErrOrStderr(), "%v: %v\n", utils.HighlightOperand(text), colorError.Sprint(err))
}

func failures(failed int, total int) error {
	if failed > 0 {
		return fmt.Errorf("%v of %v operands failed", failed, total)
	}

	return nil
}
