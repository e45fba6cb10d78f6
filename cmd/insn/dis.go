package insn

import (
	"fmt"
	"strings"

	"github.com/Manu343726/nc10as/pkg/hw/nc10/mc"
	"github.com/Manu343726/nc10as/pkg/utils"
	"github.com/spf13/cobra"
)

var disCmd = &cobra.Command{
	Use:   "dis hex...",
	Short: "Disassemble a stream of instructions",
	Long: `Disassembles the machine code given as hex, all arguments joined into one byte stream.
Decoding stops at the first invalid instruction.`,
	Example: `  nc10as insn dis 04FDE8030000C2 0B`,
	Args:    cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := utils.ParseBytesHex(strings.Join(args, ""))

		if err != nil {
			return err
		}

		for offset := 0; offset < len(data); {
			text, length, err := mc.DisassembleInstruction(data[offset:])

			if err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "%v: %v\n", utils.FormatUintHex(uint64(offset), 4), colorError.Sprint(err))
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%v: %-24v %v\n", utils.FormatUintHex(uint64(offset), 4), colorBytes.Sprint(utils.FormatBytesHex(data[offset:offset+length])), utils.HighlightInstruction(text))
			offset += length
		}

		return nil
	},
}
