package main

import (
	"bytes"
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/zoobzio/ecv1"
)

func newDecodeCmd(a *app) *cobra.Command {
	var compact bool

	cmd := &cobra.Command{
		Use:   "decode [input|-] [output|-]",
		Short: "Recover the value from an EC v1 envelope",
		Args:  cobra.RangeArgs(0, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, output := argAt(args, 0), argAt(args, 1)
			data, err := readInput(cmd, input)
			if err != nil {
				return err
			}

			msg, err := ecv1.Decode(cmd.Context(), string(data))
			if err != nil {
				return err
			}

			pretty := a.cfg.Pretty
			if cmd.Flags().Changed("compact") {
				pretty = !compact
			}
			text, err := render(msg, pretty)
			if err != nil {
				return err
			}

			a.logger.Debug("decoded",
				"input", input,
				"chain", msg.Chain.String(),
				"content_type", msg.ContentType,
				"output_bytes", len(text),
			)
			return writeOutput(cmd, output, text)
		},
	}

	cmd.Flags().BoolVar(&compact, "compact", false, "print JSON without indentation")
	return cmd
}

// render formats a decoded message for display. JSON is re-serialized,
// indented by two spaces when pretty; opaque text is returned as is.
func render(msg *ecv1.Message, pretty bool) (string, error) {
	if msg.ContentType != ecv1.ContentTypeJSON {
		text, _ := msg.Value.(string)
		return text, nil
	}
	if !pretty {
		data, err := ecv1.JSON().Marshal(msg.Value)
		if err != nil {
			return "", err
		}
		return string(data), nil
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(msg.Value); err != nil {
		return "", err
	}
	return buf.String(), nil
}
