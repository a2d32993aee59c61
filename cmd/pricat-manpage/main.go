package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/pricat/internal/cli"
	"github.com/arthur-debert/pricat/internal/version"
)

// Writes the top-level man page to stdout, for packaging
func main() {
	rootCmd := cli.NewRootCmd()

	header := &doc.GenManHeader{
		Title:   "PRICAT",
		Section: "1",
		Source:  "pricat " + version.Version,
		Manual:  "pricat manual",
	}

	err := doc.GenMan(rootCmd, header, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
