package cmd

import "github.com/spf13/cobra"

var buildCmd = &cobra.Command{
	Use:   "build <file>",
	Short: "Compile a file to standard C",
	Long: `Run the full lex -> parse -> analyze -> emit pipeline on a hindic
source file and write the generated C translation unit.

Equivalent to bare "hindic <file>" with the same -o flag.`,
	Args: cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		return buildFile(args[0], outputFile)
	},
}

func init() {
	rootCmd.AddCommand(buildCmd)
	buildCmd.Flags().StringVarP(&outputFile, "output", "o", "", "output file (default: <input> with extension replaced by .c)")
	buildCmd.Flags().BoolVar(&asciiIdentifiers, "ascii-identifiers", false, "lower Devanagari identifiers to _id<N> and write a .map side file")
}
