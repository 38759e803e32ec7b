package cmd

import (
	"fmt"
	"os"

	"github.com/hindic-lang/hindic/pkg/printer"
	"github.com/spf13/cobra"
)

var fmtWrite bool

var fmtCmd = &cobra.Command{
	Use:   "fmt <file>",
	Short: "Reformat a hindic source file to canonical style",
	Long: `Parse file and print it back in canonical indentation and spacing.
fmt does not run semantic analysis: a file with type errors but no parse
errors is still reformattable, the same way gofmt reformats Go source that
does not yet type-check.

With --write, the reformatted source replaces file in place instead of
going to stdout.`,
	Args: cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		return fmtFile(args[0], fmtWrite)
	},
}

func init() {
	rootCmd.AddCommand(fmtCmd)
	fmtCmd.Flags().BoolVarP(&fmtWrite, "write", "w", false, "write result to the source file instead of stdout")
}

func fmtFile(filename string, write bool) error {
	content, err := readSource(filename)
	if err != nil {
		return err
	}

	prog, p, sink := parseFile(content)
	if p.HadError() {
		printDiagnostics(sink, filename, content)
		return fmt.Errorf("parsing failed with %d error(s)", sink.Count())
	}

	out := printer.Print(prog)
	if !write {
		fmt.Print(out)
		return nil
	}
	return os.WriteFile(filename, []byte(out), 0o644)
}
