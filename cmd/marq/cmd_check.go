package main

import (
	"fmt"

	"github.com/dhamidi/marq/lsp"
	"github.com/spf13/cobra"
)

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <file>...",
		Short: "Report unterminated markup in the given files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			total := 0
			for _, filename := range args {
				src, err := readInput(filename)
				if err != nil {
					return err
				}
				for _, diag := range lsp.Diagnostics(src) {
					fmt.Printf("%s:%d:%d: %s\n",
						filename,
						diag.Range.Start.Line+1,
						diag.Range.Start.Character+1,
						diag.Message)
					total++
				}
			}
			if total > 0 {
				return fmt.Errorf("%d problem(s) found", total)
			}
			return nil
		},
	}
}
