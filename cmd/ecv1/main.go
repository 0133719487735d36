// Command ecv1 encodes and decodes EC v1 envelopes.
//
//	ecv1 encode input.json [output.txt]
//	ecv1 decode ecv1.txt [output.json]
//	ecv1 validate ecv1.txt
//
// Use "-" or omit a path for stdin/stdout. Errors are reported on stderr as
// a single "Error: " line with exit status 1.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zoobzio/ecv1/internal/config"
)

var version = "1.0.0"

// app carries state shared by every subcommand, populated before each run.
type app struct {
	configPath string
	verbose    bool

	cfg    *config.Config
	logger *slog.Logger
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", singleLine(err.Error()))
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "ecv1",
		Short: "Encode and decode EC v1 envelopes",
		Long: `ecv1 wraps a JSON or text value in an EC v1 envelope: a header line,
a metadata line naming the transform chain and content type, and the
transformed payload. Decoding inverts the chain recorded in the envelope.`,
		Version:       version,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	// Disable default completion command
	root.CompletionOptions.DisableDefaultCmd = true

	flags := root.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "YAML config file (default $"+config.EnvVar+")")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(newEncodeCmd(a))
	root.AddCommand(newDecodeCmd(a))
	root.AddCommand(newValidateCmd(a))
	return root
}

// setup loads configuration and builds the logger.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(config.Resolve(a.configPath))
	if err != nil {
		return err
	}
	a.cfg = cfg

	level := cfg.Level()
	if a.verbose {
		level = slog.LevelDebug
	}
	a.logger = newLogger(cmd.ErrOrStderr(), level).With("command", cmd.Name())
	return nil
}

func singleLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
