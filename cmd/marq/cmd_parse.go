package main

import (
	"fmt"
	"io"
	"os"

	"github.com/dhamidi/marq/format"
	"github.com/dhamidi/marq/markup"
	"github.com/spf13/cobra"
)

func newParseCmd() *cobra.Command {
	var outputFormat string
	var showSpans bool

	cmd := &cobra.Command{
		Use:   "parse <file>",
		Short: "Parse a markup file and dump its span tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := readInput(args[0])
			if err != nil {
				return err
			}

			tree := markup.Parse(src)

			var enc format.Encoder
			switch outputFormat {
			case "json":
				enc = format.NewJSONEncoder(os.Stdout)
			case "tree":
				if showSpans {
					enc = format.NewTreeEncoderWithSpans(os.Stdout)
				} else {
					enc = format.NewTreeEncoder(os.Stdout)
				}
			default:
				return fmt.Errorf("unknown format: %s (expected json or tree)", outputFormat)
			}

			if err := enc.Encode(tree); err != nil {
				return fmt.Errorf("encode: %w", err)
			}
			if outputFormat == "json" {
				fmt.Println()
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "tree", "output format (json, tree)")
	cmd.Flags().BoolVar(&showSpans, "spans", false, "include span offsets in tree output")

	return cmd
}

// readInput reads a file, or stdin when name is "-".
func readInput(name string) (string, error) {
	if name == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(name)
	if err != nil {
		return "", fmt.Errorf("read file: %w", err)
	}
	return string(data), nil
}
