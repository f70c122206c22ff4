package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Pro7ech/symmetric/notation"
	"github.com/Pro7ech/symmetric/perm"
)

func newComposeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "compose EXPR...",
		Short: "Print the product of the permutations in cycle notation",
		Long: `Print the product of the permutations in cycle notation.

Permutations are applied from right to left: the last argument is applied first.`,
		Example: `  permutation compose '(1 2)' '(2 3)'`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {

			ctx := cmd.Context()
			logger := loggerFromContext(ctx)

			eval, err := evaluatorFromContext(ctx)
			if err != nil {
				return err
			}

			factors := make([]perm.PermutationLike, len(args))
			for i, arg := range args {
				if factors[i], err = notation.ParseWith(eval, arg); err != nil {
					return err
				}
			}

			product, err := eval.Product(factors...)
			if err != nil {
				return err
			}

			out, err := notation.FormatPermutation(eval, product)
			if err != nil {
				return err
			}

			logger.Debug("composed", "factors", len(factors), "product", out)

			_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
			return err
		},
	}
}
