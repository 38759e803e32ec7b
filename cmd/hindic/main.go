// Command hindic compiles Devanagari-keyword C source into standard C.
package main

import (
	"fmt"
	"os"

	"github.com/hindic-lang/hindic/cmd/hindic/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
