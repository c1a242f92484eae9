package main

import (
	"github.com/dhamidi/marq/lsp"
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
)

func newLSPCmd() *cobra.Command {
	var verbosity int
	var debug bool

	cmd := &cobra.Command{
		Use:   "lsp",
		Short: "Start the Language Server Protocol server",
		RunE: func(cmd *cobra.Command, args []string) error {
			commonlog.Configure(verbosity, nil)
			server := lsp.NewServer("0.1.0", debug)
			return server.RunStdio()
		},
	}

	cmd.Flags().IntVar(&verbosity, "verbosity", 0, "log verbosity (0-2)")
	cmd.Flags().BoolVar(&debug, "debug", false, "log protocol traffic")

	return cmd
}
