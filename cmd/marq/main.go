package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "marq",
		Short: "A liberal markup scanner for templating",
	}

	rootCmd.AddCommand(newParseCmd())
	rootCmd.AddCommand(newTextCmd())
	rootCmd.AddCommand(newCheckCmd())
	rootCmd.AddCommand(newLSPCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
