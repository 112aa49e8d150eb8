// Package main implements the cloro server binary. It serves the
// spaced-repetition review, statistics and queue endpoints and manages the
// database schema.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		if _, fprintfErr := fmt.Fprintf(os.Stderr, "cloro: %v\n", err); fprintfErr != nil {
			panic(fmt.Errorf("failed to output an error: %w. Reason: %w", err, fprintfErr))
		}
		os.Exit(1)
	}
}

// rootOptions holds flags shared by every subcommand.
type rootOptions struct {
	configFile string
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:           "cloro",
		Short:         "Spaced-repetition scheduling and learning statistics service",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&opts.configFile, "config", "",
		"path to a YAML config file (default: ./config.yaml if present)")

	root.AddCommand(
		newServeCommand(opts),
		newMigrateCommand(opts),
	)
	return root
}
