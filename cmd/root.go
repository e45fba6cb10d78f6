package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/Manu343726/nc10as/cmd/insn"
	"github.com/Manu343726/nc10as/cmd/operand"
	"github.com/Manu343726/nc10as/cmd/tools"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "nc10as",
	Short: "Operand encoder/decoder for the nCUBE 10 instruction set",
	Long: `nc10as translates nCUBE 10 assembly operands and instructions to machine code and back.

Operands are parsed according to the addressing mode syntax of the architecture manual
('R3', '(R3)+', '@-8(R3)', '#CONFIG', '12(PC)', ...) and encoded as a mode byte followed
by an optional byte, halfword, word, real or longreal value.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		setupColor()
		return setupLogging()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := RootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	RootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.nc10as.yaml)")
	RootCmd.PersistentFlags().String("log-level", "warn", "log level (debug, info, warn, error)")
	RootCmd.PersistentFlags().String("log-file", "", "also write JSON logs to this file")
	RootCmd.PersistentFlags().String("color", "auto", "colorize output (auto, always, never)")

	viper.BindPFlag("log.level", RootCmd.PersistentFlags().Lookup("log-level"))
	viper.BindPFlag("log.file", RootCmd.PersistentFlags().Lookup("log-file"))
	viper.BindPFlag("color", RootCmd.PersistentFlags().Lookup("color"))

	RootCmd.AddCommand(operand.OperandCmd, insn.InsnCmd, tools.ToolsCmd)
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		// Search config in home directory with name ".nc10as" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".nc10as")
	}

	viper.SetEnvPrefix("NC10AS")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}
