// Package cli implements the permutation command-line interface.
//
// The CLI parses permutations written in cycle, list or mapping notation
// (see package notation) and prints their decompositions.
//
// # Commands
//
//   - analyze: print a JSON report with the disjoint cycles, transpositions,
//     sign, order and 3-cycles of each argument
//   - compose: print the product of the arguments in cycle notation
//
// # Configuration
//
// The domain size and the number of workers are read from an optional TOML
// file (--config) and can be overridden with --size and --workers.
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context.
package cli

import (
	"context"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/Pro7ech/symmetric/perm"
)

type options struct {
	config  string
	n       int
	workers int
	verbose bool
}

// NewRootCommand returns the root command with all subcommands attached.
func NewRootCommand() *cobra.Command {

	var opts options

	root := &cobra.Command{
		Use:          "permutation",
		Short:        "Decompose and compose permutations of {1, ..., n}",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := charmlog.InfoLevel
			if opts.verbose {
				level = charmlog.DebugLevel
			}

			logger := newLogger(cmd.ErrOrStderr(), level)

			cfg, undecoded, err := loadConfig(opts.config)
			if err != nil {
				return err
			}

			for _, key := range undecoded {
				logger.Warn("unknown configuration key", "key", key, "file", opts.config)
			}

			if opts.n != 0 {
				cfg.N = opts.n
			}

			if opts.workers != 0 {
				cfg.Workers = opts.workers
			}

			params, err := perm.NewParametersFromLiteral(perm.ParametersLiteral{N: cfg.N})
			if err != nil {
				return err
			}

			logger.Debug("configured", "n", params.N(), "workers", cfg.Workers)

			ctx := withLogger(cmd.Context(), logger)
			ctx = withConfig(ctx, cfg)
			ctx = withEvaluator(ctx, perm.NewEvaluator(params))
			cmd.SetContext(ctx)

			return nil
		},
	}

	root.PersistentFlags().StringVar(&opts.config, "config", "", "path to a TOML configuration file")
	root.PersistentFlags().IntVarP(&opts.n, "size", "n", 0, "size of the domain {1, ..., n} (overrides the configuration)")
	root.PersistentFlags().IntVar(&opts.workers, "workers", 0, "number of concurrent workers (overrides the configuration)")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newAnalyzeCmd())
	root.AddCommand(newComposeCmd())

	return root
}

// Execute runs the CLI with the given context.
func Execute(ctx context.Context) error {
	return NewRootCommand().ExecuteContext(ctx)
}
