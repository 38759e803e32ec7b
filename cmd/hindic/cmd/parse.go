package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var parseCmd = &cobra.Command{
	Use:   "parse <file>",
	Short: "Parse a file and report success or syntax errors",
	Long: `Parse a hindic source file and stop after a successful parse,
printing a success message. No output file is written.

Equivalent to "hindic <file> -p".`,
	Args: cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		return parseOnlyFile(args[0])
	},
}

func init() {
	rootCmd.AddCommand(parseCmd)
}

func parseOnlyFile(filename string) error {
	content, err := readSource(filename)
	if err != nil {
		return err
	}

	_, p, sink := parseFile(content)
	if p.HadError() {
		printDiagnostics(sink, filename, content)
		return fmt.Errorf("parsing failed with %d error(s)", sink.Count())
	}

	fmt.Printf("Parsed %s successfully.\n", filename)
	return nil
}
