package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zoobzio/ecv1"
)

func newValidateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "validate [input|-]",
		Short: "Check an EC v1 envelope and print its contents",
		Args:  cobra.RangeArgs(0, 1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := argAt(args, 0)
			data, err := readInput(cmd, input)
			if err != nil {
				return err
			}

			msg, err := ecv1.Decode(cmd.Context(), string(data))
			if err != nil {
				return err
			}

			body, err := render(msg, a.cfg.Pretty)
			if err != nil {
				return err
			}

			a.logger.Debug("validated", "input", input, "chain", msg.Chain.String())
			summary := fmt.Sprintf("Valid EC v1 · t=%s; ct=%s\n", msg.Chain, msg.ContentType)
			return writeOutput(cmd, stdio, summary+body)
		},
	}
}
