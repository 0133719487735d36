package main

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/tidwall/jsonc"

	"github.com/zoobzio/ecv1"
)

func newEncodeCmd(a *app) *cobra.Command {
	var (
		chain       string
		contentType string
	)

	cmd := &cobra.Command{
		Use:   "encode [input|-] [output|-]",
		Short: "Wrap a JSON or text file in an EC v1 envelope",
		Long: `Encode reads a value, applies the transform chain and writes the envelope.

JSON input may contain // and /* */ comments and trailing commas; it is
re-serialized compactly before transforming. Any other content type is
treated as opaque text with trailing newlines removed.`,
		Args: cobra.RangeArgs(0, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := a.cfg.Options()
			if cmd.Flags().Changed("chain") {
				opts.Chain = chain
			}
			if cmd.Flags().Changed("content-type") {
				opts.ContentType = contentType
			}

			input, output := argAt(args, 0), argAt(args, 1)
			data, err := readInput(cmd, input)
			if err != nil {
				return err
			}

			value, err := inputValue(data, opts.ContentType)
			if err != nil {
				return err
			}

			text, err := ecv1.Encode(cmd.Context(), value, opts)
			if err != nil {
				return err
			}

			a.logger.Debug("encoded",
				"input", input,
				"chain", opts.Chain,
				"content_type", opts.ContentType,
				"input_bytes", len(data),
				"output_bytes", len(text),
			)
			return writeOutput(cmd, output, text)
		},
	}

	cmd.Flags().StringVarP(&chain, "chain", "t", ecv1.DefaultChain, "transform chain, tokens joined by '>'")
	cmd.Flags().StringVarP(&contentType, "content-type", "c", ecv1.ContentTypeJSON, "content type tag")
	return cmd
}

// inputValue turns raw input into the value handed to Encode.
func inputValue(data []byte, contentType string) (any, error) {
	if contentType == "" || contentType == ecv1.ContentTypeJSON {
		return ecv1.Deserialize(jsonc.ToJSON(data), ecv1.ContentTypeJSON)
	}
	return strings.TrimRight(string(data), "\r\n"), nil
}
