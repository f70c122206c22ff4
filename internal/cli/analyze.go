package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Pro7ech/symmetric/analysis"
	"github.com/Pro7ech/symmetric/notation"
	"github.com/Pro7ech/symmetric/perm"
)

func newAnalyzeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "analyze EXPR...",
		Short: "Print the decompositions of each permutation as JSON",
		Example: `  permutation analyze '(5 6 1 4 2)'
  permutation analyze '{1:2, 2:4, 3:5, 4:1, 5:3, 7:8, 8:7}'
  permutation analyze -n 5 '(1 2)(3 4 5)'`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {

			ctx := cmd.Context()
			logger := loggerFromContext(ctx)
			cfg := configFromContext(ctx)

			eval, err := evaluatorFromContext(ctx)
			if err != nil {
				return err
			}

			inputs := make([]perm.PermutationLike, len(args))
			for i, arg := range args {
				if inputs[i], err = notation.ParseWith(eval, arg); err != nil {
					return err
				}
				logger.Debug("parsed", "expr", arg, "type", fmt.Sprintf("%T", inputs[i]))
			}

			prog := newProgress(logger)

			reports, err := analysis.AnalyzeAll(eval, inputs, cfg.Workers)
			if err != nil {
				return err
			}

			prog.done("analyzed", "permutations", len(reports))

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(reports)
		},
	}
}
