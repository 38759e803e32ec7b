// Package cmd implements the hindic command-line driver: a cobra
// subcommand tree wrapping the lexer/parser/semantic/emitter pipeline.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Version is set by build flags.
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var (
	diagnosticsJSON  bool
	outputFile       string
	tokenizeOnly     bool
	parseOnly        bool
	explainErrors    bool
	asciiIdentifiers bool
)

var rootCmd = &cobra.Command{
	Use:   "hindic [file]",
	Short: "Compile Devanagari-keyword C source to standard C",
	Long: `hindic is a source-to-source compiler for a C-like language whose
keywords are spelled in Devanagari script. It lexes, parses, type-checks,
and emits a standard C translation unit.

Bare invocation with a single file argument preserves the original
single-binary driver contract: -o selects the output path, -t stops after
tokenizing, -p stops after parsing. "hindic build", "hindic lex", and
"hindic parse" expose the same three behaviors as named subcommands.`,
	Version: Version,
	Args:    cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return cmd.Help()
		}
		switch {
		case tokenizeOnly:
			return lexFile(args[0])
		case parseOnly:
			return parseOnlyFile(args[0])
		default:
			return buildFile(args[0], outputFile)
		}
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	rootCmd.PersistentFlags().BoolVar(&diagnosticsJSON, "diagnostics-json", false, "emit diagnostics as a JSON array instead of plain text")
	rootCmd.PersistentFlags().BoolVar(&explainErrors, "explain", false, "render diagnostics with source context and a stage-level explanation")
	rootCmd.Flags().StringVarP(&outputFile, "output", "o", "", "output file (default: <input> with extension replaced by .c)")
	rootCmd.Flags().BoolVarP(&tokenizeOnly, "tokenize-only", "t", false, "tokenize only, print the token stream and exit")
	rootCmd.Flags().BoolVarP(&parseOnly, "parse-only", "p", false, "parse only, print a success message, write nothing")
	rootCmd.Flags().BoolVar(&asciiIdentifiers, "ascii-identifiers", false, "lower Devanagari identifiers to _id<N> and write a .map side file")
}

func exitWithError(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+msg+"\n", args...)
	os.Exit(1)
}
