package cmd

import (
	"fmt"

	"github.com/hindic-lang/hindic/internal/lexer"
	"github.com/hindic-lang/hindic/pkg/token"
	"github.com/spf13/cobra"
)

var lexCmd = &cobra.Command{
	Use:   "lex <file>",
	Short: "Tokenize a file and print its token stream",
	Long: `Tokenize a hindic source file and print one line per token in the
form "Token: <NAME>, Line: <n>, Column: <n>, Text: '<slice>'", then exit.

Equivalent to "hindic <file> -t".`,
	Args: cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		return lexFile(args[0])
	},
}

func init() {
	rootCmd.AddCommand(lexCmd)
}

func lexFile(filename string) error {
	content, err := readSource(filename)
	if err != nil {
		return err
	}

	l := lexer.New(content)
	for {
		tok := l.Next()
		fmt.Printf("Token: %s, Line: %d, Column: %d, Text: '%s'\n",
			tok.Kind, tok.Pos.Line, tok.Pos.Column, tok.Lexeme)
		if tok.Kind == token.EOF {
			break
		}
	}
	return nil
}
