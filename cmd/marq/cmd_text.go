package main

import (
	"fmt"

	"github.com/dhamidi/marq/markup"
	"github.com/spf13/cobra"
)

func newTextCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "text <file>",
		Short: "Print the concatenated text content of a markup file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := readInput(args[0])
			if err != nil {
				return err
			}
			fmt.Println(markup.Parse(src).InnerText())
			return nil
		},
	}
}
