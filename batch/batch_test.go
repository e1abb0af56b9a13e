package batch_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/katas/batch"
	"github.com/katalvlaran/katas/neighbors"
	"github.com/katalvlaran/katas/wordtoy"
)

// TestRun_OrderAndAnswers solves one instance of each kind in parallel.
func TestRun_OrderAndAnswers(t *testing.T) {
	problems := []batch.Problem{
		batch.WordToy{Start: "aaaa", Finish: "mmnn"},
		batch.Donations{Values: []int{10, 3, 2, 5, 7, 8}},
		batch.ZigZag{Sequence: []int{1, 7, 4, 9, 2, 5}},
		batch.Bridge{Times: []int{1, 2, 5, 10}},
		batch.WordToy{Start: "aaaa", Finish: "bbbb", Forbid: []string{"b b b b"}},
		batch.Donations{Values: []int{4, 2, 3, 1}},
	}
	want := []int{50, 19, 6, 17, -1, 7}

	for _, workers := range []int{0, 1, 3} {
		out, err := batch.Run(context.Background(), problems, workers)
		require.NoError(t, err)
		require.Len(t, out, len(problems))
		for i, o := range out {
			require.NoError(t, o.Err, "problem %d", i)
			assert.Equal(t, want[i], o.Answer, "problem %d (%s)", i, o.Problem.Kind())
			assert.Equal(t, problems[i].Kind(), o.Problem.Kind())
		}
	}
}

// TestRun_ProblemErrorsAreRecorded checks that one bad instance does not stop the rest.
func TestRun_ProblemErrorsAreRecorded(t *testing.T) {
	problems := []batch.Problem{
		batch.Donations{Values: []int{1, -1}},
		batch.WordToy{Start: "aaa", Finish: "bbbb"},
		batch.ZigZag{Sequence: []int{3, 1, 2}},
	}
	out, err := batch.Run(context.Background(), problems, 2)
	require.NoError(t, err)
	assert.ErrorIs(t, out[0].Err, neighbors.ErrNegativeDonation)
	assert.ErrorIs(t, out[1].Err, wordtoy.ErrWordLength)
	assert.NoError(t, out[2].Err)
	assert.Equal(t, 3, out[2].Answer)
}

// TestRun_LargeBridgeFallsBack checks that big parties use the closed form.
func TestRun_LargeBridgeFallsBack(t *testing.T) {
	times := make([]int, 30)
	for i := range times {
		times[i] = 1
	}
	out, err := batch.Run(context.Background(), []batch.Problem{batch.Bridge{Times: times}}, 1)
	require.NoError(t, err)
	require.NoError(t, out[0].Err)
	assert.Equal(t, 57, out[0].Answer)
}

// TestRun_Canceled verifies that a done context aborts the run.
func TestRun_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := batch.Run(ctx, []batch.Problem{batch.WordToy{Start: "aaaa", Finish: "nnnn"}}, 1)
	assert.ErrorIs(t, err, context.Canceled)
}
