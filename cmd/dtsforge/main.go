package main

import (
	"fmt"
	"os"

	"github.com/dtsforge/dtsforge/internal/exitcode"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitcode.Get(err))
	}
}
