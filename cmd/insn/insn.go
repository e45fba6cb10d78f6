package insn

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	colorBytes = color.New(color.FgMagenta)
	colorError = color.New(color.FgRed, color.Bold)
)

// InsnCmd groups the single instruction commands
var InsnCmd = &cobra.Command{
	Use:   "insn",
	Short: "Assemble and disassemble single instructions",
}

func init() {
	InsnCmd.AddCommand(asmCmd, disCmd)
}
