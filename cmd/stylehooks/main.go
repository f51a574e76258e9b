// Package main provides the stylehooks CLI, which lints stylesheets for
// hardcoded values that have a styling hook replacement.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
