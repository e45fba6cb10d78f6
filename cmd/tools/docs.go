package tools

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/Manu343726/nc10as/pkg/hw/nc10/mc"
	"github.com/Manu343726/nc10as/pkg/utils"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// Tables exported by 'docs --format yaml'
type machineCodeTables struct {
	AddressingModes []mc.AddressingModeEntry `yaml:"addressingModes"`
	NamedImmediates []mc.NamedImmediateEntry `yaml:"namedImmediates"`
	OpCodes         []mc.OpCodeEntry         `yaml:"opcodes"`
}

type documentedModule struct {
	text   func() string
	tables func() any
}

var supportedModules = map[string]documentedModule{
	"nc10.machine_code": {
		text: func() string { return mc.Descriptor.DocString() },
		tables: func() any {
			return machineCodeTables{
				AddressingModes: mc.Descriptor.AddressingModes(),
				NamedImmediates: mc.Descriptor.NamedImmediateEntries(),
				OpCodes:         mc.Descriptor.OpCodeEntries(),
			}
		},
	},
}

func writeDocs(out io.Writer, module documentedModule, format string) error {
	switch format {
	case "text":
		_, err := fmt.Fprintln(out, module.text())
		return err
	case "yaml":
		encoder := yaml.NewEncoder(out)
		encoder.SetIndent(2)

		if err := encoder.Encode(module.tables()); err != nil {
			return err
		}

		return encoder.Close()
	}

	return fmt.Errorf("unknown format '%v' (expected text or yaml)", format)
}

var docsCmd = &cobra.Command{
	Use:   "docs module",
	Short: "Show nc10as documentation",
	Long: `Dumps the documentation of the specified nc10as module.
By default the tool dumps the documentation to stdout, but it can be redirected to a file using the --output flag.

Supported modules:
` + strings.Join(utils.Map(utils.SortedKeys(supportedModules), func(module string) string { return "  " + module }), "\n"),
	Args:      cobra.MatchAll(cobra.OnlyValidArgs, cobra.ExactArgs(1)),
	ValidArgs: utils.SortedKeys(supportedModules),
	RunE: func(cmd *cobra.Command, args []string) error {
		module := supportedModules[args[0]]
		format, _ := cmd.Flags().GetString("format")
		outputFile, _ := cmd.Flags().GetString("output")

		if outputFile == "" {
			return writeDocs(cmd.OutOrStdout(), module, format)
		}

		file, err := os.Create(outputFile)

		if err != nil {
			return fmt.Errorf("error creating file: %w", err)
		}

		defer file.Close()
		return writeDocs(file, module, format)
	},
}

func init() {
	ToolsCmd.AddCommand(docsCmd)
	docsCmd.Flags().StringP("output", "o", "", "Output file. If not specified, the documentation is dumped to stdout.")
	docsCmd.Flags().StringP("format", "f", "text", "Output format: text or yaml")
}
