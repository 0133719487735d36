package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

// stdio is the path that selects stdin or stdout.
const stdio = "-"

// argAt returns args[i], or "-" when absent.
func argAt(args []string, i int) string {
	if i < len(args) && args[i] != "" {
		return args[i]
	}
	return stdio
}

func readInput(cmd *cobra.Command, path string) ([]byte, error) {
	if path == stdio {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return data, nil
}

// writeOutput writes text to path. Stdout output always ends in a newline;
// files receive text unchanged.
func writeOutput(cmd *cobra.Command, path, text string) error {
	if path == stdio {
		if !strings.HasSuffix(text, "\n") {
			text += "\n"
		}
		_, err := io.WriteString(cmd.OutOrStdout(), text)
		return err
	}
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
