package analysis

import (
	"encoding/json"
	"testing"

	"github.com/Pro7ech/symmetric/perm"
	"github.com/stretchr/testify/require"
)

func TestAnalysis(t *testing.T) {

	params, err := perm.NewParametersFromLiteral(perm.ParametersLiteral{})
	require.NoError(t, err)
	eval := perm.NewEvaluator(params)

	alpha := perm.Cycle{5, 6, 1, 4, 2}
	tau := perm.Permutation{1: 2, 2: 4, 3: 5, 4: 1, 5: 3, 6: 6, 7: 8, 8: 7}
	odd := perm.Cycle{1, 2}

	t.Run("Analyze/Even", func(t *testing.T) {
		r, err := Analyze(eval, alpha)
		require.NoError(t, err)
		require.Equal(t, "(1 4 2 5 6)", r.Input)
		require.True(t, r.Cycles.Equal(perm.Decomposition{{1, 4, 2, 5, 6}}))
		require.True(t, r.Transpositions.Equal(perm.Decomposition{{5, 2}, {5, 4}, {5, 1}, {5, 6}}))
		require.Equal(t, 1, r.Sign)
		require.Equal(t, int64(5), r.Order.Int64())
		require.Equal(t, []int{5}, r.CycleType)
		require.True(t, r.ThreeCycles.Equal(perm.Decomposition{{5, 4, 2}, {5, 6, 1}}))
	})

	t.Run("Analyze/Odd", func(t *testing.T) {
		r, err := Analyze(eval, odd)
		require.NoError(t, err)
		require.Equal(t, -1, r.Sign)
		require.Nil(t, r.ThreeCycles)

		data, err := json.Marshal(r)
		require.NoError(t, err)
		require.JSONEq(t, `{"input":"(1 2)","cycles":[[1,2]],"transpositions":[[1,2]],"sign":-1,"order":2,"cycle_type":[2]}`, string(data))
	})

	t.Run("Analyze/Malformed", func(t *testing.T) {
		_, err := Analyze(eval, perm.Cycle{1, 1})
		require.ErrorIs(t, err, perm.ErrRepeatedElement)
	})

	t.Run("AnalyzeAll", func(t *testing.T) {
		inputs := []perm.PermutationLike{alpha, tau, odd, eval.Identity()}
		for _, workers := range []int{0, 1, 2, 16} {
			reports, err := AnalyzeAll(eval, inputs, workers)
			require.NoError(t, err)
			require.Len(t, reports, len(inputs))
			for i := range inputs {
				want, err := Analyze(eval, inputs[i])
				require.NoError(t, err)
				require.Equal(t, want, reports[i])
			}
		}
	})

	t.Run("AnalyzeAll/Empty", func(t *testing.T) {
		reports, err := AnalyzeAll(eval, nil, 4)
		require.NoError(t, err)
		require.Empty(t, reports)
	})

	t.Run("AnalyzeAll/Error", func(t *testing.T) {
		reports, err := AnalyzeAll(eval, []perm.PermutationLike{alpha, perm.Cycle{0, 1}}, 2)
		require.ErrorIs(t, err, perm.ErrOutOfDomain)
		require.Nil(t, reports)
	})
}
