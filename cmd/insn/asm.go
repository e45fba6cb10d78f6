package insn

import (
	"fmt"

	"github.com/Manu343726/nc10as/pkg/hw/nc10/mc"
	"github.com/Manu343726/nc10as/pkg/utils"
	"github.com/spf13/cobra"
)

var asmCmd = &cobra.Command{
	Use:   "asm instruction...",
	Short: "Assemble instructions, one per argument",
	Example: `  nc10as insn asm 'MOVW #1000, R2' 'ADDR #1.5, (R3)+'
  nc10as insn asm -v 'BNE loop'`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		verbose, _ := cmd.Flags().GetBool("verbose")
		failed := 0

		for _, text := range args {
			instruction, err := mc.AssembleInstruction(text)

			if err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "%v: %v\n", utils.HighlightInstruction(text), colorError.Sprint(err))
				failed++
				continue
			}

			if instruction.Resolved() {
				data, err := instruction.Encode()

				if err != nil {
					return err
				}

				fmt.Fprintf(cmd.OutOrStdout(), "%v: %v\n", utils.HighlightInstruction(instruction.String()), colorBytes.Sprint(utils.FormatBytesHex(data)))
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "%v: unresolved, %v bytes\n", utils.HighlightInstruction(instruction.String()), instruction.Length())
			}

			if verbose {
				fmt.Fprint(cmd.OutOrStdout(), instruction.Describe())
			}
		}

		if failed > 0 {
			return fmt.Errorf("%v of %v instructions failed", failed, len(args))
		}

		return nil
	},
}

func init() {
	asmCmd.Flags().BoolP("verbose", "v", false, "describe the encoding of every operand")
}
