package verify

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SeamusWaldron/nxcube"
)

func TestRunPasses(t *testing.T) {
	report, err := Run(context.Background(), Options{Sizes: []int{2, 3, 4}, Samples: 5, Seed: 99})
	require.NoError(t, err)
	require.Len(t, report.Results, 3)

	assert.True(t, report.Passed(), "failures: %v", report.Failures())
	assert.Empty(t, report.Failures())
	assert.Equal(t, int64(99), report.Seed)

	for i, size := range []int{2, 3, 4} {
		res := report.Results[i]
		assert.Equal(t, size, res.Size)
		assert.Len(t, res.Checks, len(properties))
		for _, c := range res.Checks {
			assert.Equal(t, 5, c.Samples, c.Name)
		}
	}
}

func TestRunParallelLimit(t *testing.T) {
	report, err := Run(context.Background(), Options{Sizes: []int{5, 2}, Samples: 2, Seed: 1, Parallel: 1})
	require.NoError(t, err)
	assert.Equal(t, 5, report.Results[0].Size)
	assert.Equal(t, 2, report.Results[1].Size)
}

func TestRunDefaults(t *testing.T) {
	report, err := Run(context.Background(), Options{Samples: 1})
	require.NoError(t, err)
	assert.Len(t, report.Results, len(DefaultOptions().Sizes))
	assert.NotZero(t, report.Seed)
}

func TestRunRejectsSmallSize(t *testing.T) {
	_, err := Run(context.Background(), Options{Sizes: []int{3, 1}})
	assert.True(t, errors.Is(err, nxcube.ErrInvalidSize))
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Run(ctx, Options{Sizes: []int{3}, Samples: 3})
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestFailuresFormat(t *testing.T) {
	report := &Report{Results: []SizeResult{{
		Size:   3,
		Checks: []Check{{Name: "move-inverse", Passed: false, Detail: "boom"}, {Name: "ok", Passed: true}},
	}}}
	assert.False(t, report.Passed())
	assert.Equal(t, []string{"3x3/move-inverse: boom"}, report.Failures())
}

func TestTokens(t *testing.T) {
	tokens := Tokens(3)
	assert.Contains(t, tokens, "3R")
	assert.Contains(t, tokens, "M")
	assert.NotContains(t, tokens, "4R")
	assert.Len(t, tokens, 6+6*3)

	c := nxcube.MustNew(3)
	for _, tok := range tokens {
		assert.NoError(t, c.Apply(tok), tok)
	}
}
