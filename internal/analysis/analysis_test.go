package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func timed(tokens ...string) []TimedMove {
	moves := make([]TimedMove, len(tokens))
	for i, tok := range tokens {
		moves[i] = TimedMove{Notation: tok, TsMs: int64(i) * 500}
	}
	return moves
}

func TestSummarize(t *testing.T) {
	moves := []TimedMove{
		{"R", 0},
		{"R", 400},
		{"U2", 800},
		{"U'", 3000},
		{"r", 3500},
	}

	s, err := Summarize(moves)
	require.NoError(t, err)
	assert.Equal(t, 5, s.TotalMoves)
	assert.Equal(t, 3, s.SimplifiedMoves) // R2 U 2R
	assert.InDelta(t, 0.6, s.Efficiency, 1e-9)
	assert.Equal(t, 6, s.QuarterTurns)
	assert.Equal(t, int64(3500), s.DurationMs)
	assert.InDelta(t, 5/3.5, s.TPS, 1e-9)
	assert.Equal(t, int64(2200), s.LongestPauseMs)
	assert.Equal(t, 1, s.PauseCountOver)
	assert.InDelta(t, 875, s.AvgMoveDurationMs, 1e-9)
	assert.Equal(t, "R", s.Profile.MostUsedBase)
	assert.Equal(t, 1, s.Profile.InnerLayer)
}

func TestSummarizeEmpty(t *testing.T) {
	s, err := Summarize(nil)
	require.NoError(t, err)
	assert.Zero(t, s.TotalMoves)
	assert.Zero(t, s.TPS)
	assert.Zero(t, s.Efficiency)
}

func TestSummarizeInvalid(t *testing.T) {
	_, err := Summarize(timed("R", "nope"))
	assert.Error(t, err)
}

func TestAnalyzePauses(t *testing.T) {
	moves := []TimedMove{{"R", 0}, {"U", 1500}, {"F", 1600}, {"D", 5000}}
	pauses := AnalyzePauses(moves, 1500)
	require.Len(t, pauses, 2)
	assert.Equal(t, 0, pauses[0].AfterMoveIndex)
	assert.Equal(t, int64(3400), pauses[1].DurationMs)
	assert.Equal(t, 1, CountPausesOver(moves, 1500))
}

func TestAnalyzeProfile(t *testing.T) {
	p, err := AnalyzeProfile([]string{"R", "U", "R'", "U'", "R2"})
	require.NoError(t, err)
	assert.Equal(t, 3, p.BaseCounts["R"])
	assert.Equal(t, 2, p.TurnCounts["prime"])
	assert.Equal(t, 1, p.TurnCounts["double"])
	assert.Equal(t, 2, p.BasePairs["RU"])
	assert.Equal(t, 2, p.BasePairs["UR"])
	assert.Equal(t, 6, p.QuarterTurns)
}

func TestMineNGrams(t *testing.T) {
	moves := timed("R", "U", "R'", "U'", "F", "R", "U", "R'", "U'", "r", "2R")
	report := MineNGrams(moves, 2, 4, 3)

	fours := report.TopNGrams[4]
	require.NotEmpty(t, fours)
	assert.Equal(t, []string{"R", "U", "R'", "U'"}, fours[0].Sequence)
	assert.Equal(t, 2, fours[0].Count)
	assert.Equal(t, 0, fours[0].Occurrences[0].StartIndex)
	assert.Equal(t, 5, fours[0].Occurrences[1].StartIndex)

	// r and 2R are the same move.
	found := false
	for _, ng := range report.TopNGrams[2] {
		if ng.Sequence[0] == "2R" && ng.Sequence[1] == "2R" {
			found = true
		}
	}
	assert.False(t, found, "a single r 2R pair is not repeated")

	assert.Empty(t, MineNGrams(moves[:1], 2, 4, 3).TopNGrams)
}

func TestMineNGramsAcrossSessions(t *testing.T) {
	a := MineNGrams(timed("R", "U", "R", "U"), 2, 2, 5)
	b := MineNGrams(timed("R", "U", "F", "R", "U"), 2, 2, 5)

	report := MineNGramsAcrossSessions(map[string]*NGramReport{"a": a, "b": b}, 5)
	pairs := report.TopNGrams[2]
	require.NotEmpty(t, pairs)
	assert.Equal(t, []string{"R", "U"}, pairs[0].Sequence)
	assert.Equal(t, 4, pairs[0].Count)
	assert.Equal(t, "a", pairs[0].Occurrences[0].SessionID)
}

func TestFindAlgorithms(t *testing.T) {
	tokens := append([]string{"F"}, "R", "U", "R'", "U'", "R", "U", "R'", "U'")
	tokens = append(tokens, "D")
	tokens = append(tokens, "R", "U", "R'", "U", "R", "U2", "R'")

	report := FindAlgorithms(timed(tokens...), KnownAlgorithms)
	require.Len(t, report.Matches, 3)
	assert.Equal(t, "Sexy move", report.Matches[0].Name)
	assert.Equal(t, 1, report.Matches[0].StartIndex)
	assert.Equal(t, 4, report.Matches[0].EndIndex)
	assert.Equal(t, "Sune", report.Matches[2].Name)
	assert.Equal(t, 2, report.Counts["Sexy move"])
	assert.Equal(t, 1, report.ConsecutiveRepeats)
	assert.Equal(t, 2, report.UnmatchedMoves)
	assert.Len(t, report.TimeBetweenMs, 2)
}

func TestFindAlgorithmsPrefersLonger(t *testing.T) {
	report := FindAlgorithms(timed("R", "U", "R'", "U'", "R'", "F", "R2", "U'", "R'", "U'", "R", "U", "R'", "F'"), KnownAlgorithms)
	require.Len(t, report.Matches, 1)
	assert.Equal(t, "T-perm", report.Matches[0].Name)
	assert.Zero(t, report.UnmatchedMoves)
}

func TestSuggestions(t *testing.T) {
	report := &AlgorithmReport{UnmatchedMoves: 10, AvgTimeBetweenMs: 2500, ConsecutiveRepeats: 3}
	assert.Len(t, Suggestions(report, 10), 3)
	assert.Empty(t, Suggestions(&AlgorithmReport{}, 0))
}
