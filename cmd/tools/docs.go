package tools

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/Manu343726/rvasm/pkg/hw/riscv/instructions"
	"github.com/Manu343726/rvasm/pkg/hw/riscv/registers"
	"github.com/Manu343726/rvasm/pkg/utils"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Writes the documentation of the instruction catalogue, builtin instructions
// plus the ones of catalogue.file
func instructionsDocs(w io.Writer, format string) error {
	catalogue, err := instructions.ExtendWithFile(viper.GetString("catalogue.file"))
	if err != nil {
		return fmt.Errorf("loading instruction catalogue: %w", err)
	}

	switch format {
	case "text":
		_, err := fmt.Fprintln(w, catalogue.Documentation(2))
		return err
	case "yaml":
		return catalogue.WriteYAML(w)
	}

	return fmt.Errorf("unsupported format %q", format)
}

func registersDocs(w io.Writer, format string) error {
	if format != "text" {
		return fmt.Errorf("unsupported format %q", format)
	}

	for _, class := range []*registers.RegisterClassDescriptor{registers.General, registers.FloatingPoint, registers.ControlAndStatus} {
		if _, err := fmt.Fprintln(w, class.Documentation(2)); err != nil {
			return err
		}
	}

	return nil
}

var supportedModules = map[string]func(w io.Writer, format string) error{
	"instructions": instructionsDocs,
	"registers":    registersDocs,
}

// Writes the documentation of a module to the output file, or w if output is empty
func writeDocs(w io.Writer, module string, format string, output string) (err error) {
	if output != "" {
		file, createErr := os.Create(output)
		if createErr != nil {
			return fmt.Errorf("creating file: %w", createErr)
		}
		defer func() {
			if closeErr := file.Close(); err == nil {
				err = closeErr
			}
		}()

		w = file
	}

	return supportedModules[module](w, format)
}

var docsCmd = &cobra.Command{
	Use:   "docs module",
	Short: "Show rvasm documentation",
	Long: `Dumps the documentation of the specified rvasm module.
By default the tool dumps the documentation to stdout, but it can be redirected to a file using the --output flag.
The instructions module includes the definitions of --catalogue, and can also be dumped as a YAML
catalogue (--format yaml), in the format read by --catalogue.

Supported modules:
` + strings.Join(utils.Map(utils.SortedKeys(supportedModules), func(module string) string { return "  " + module }), "\n"),
	Args:         cobra.MatchAll(cobra.OnlyValidArgs, cobra.ExactArgs(1)),
	ValidArgs:    utils.SortedKeys(supportedModules),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		format, _ := cmd.Flags().GetString("format")
		output, _ := cmd.Flags().GetString("output")
		return writeDocs(cmd.OutOrStdout(), args[0], format, output)
	},
}

func init() {
	ToolsCmd.AddCommand(docsCmd)
	docsCmd.Flags().StringP("output", "o", "", "Output file. If not specified, the documentation is dumped to stdout.")
	docsCmd.Flags().StringP("format", "f", "text", "Output format: text or yaml (instructions only)")
}
