// Package analysis computes statistics over the moves of a recorded session.
package analysis

import (
	"fmt"
	"sort"

	"github.com/SeamusWaldron/nxcube"
	"github.com/SeamusWaldron/nxcube/internal/notation"
)

// TimedMove is a move token with the time it was applied, in milliseconds
// since the session started.
type TimedMove struct {
	Notation string `json:"notation"`
	TsMs     int64  `json:"ts_ms"`
}

// Summary contains statistics for a single session.
type Summary struct {
	TotalMoves        int      `json:"total_moves"`
	SimplifiedMoves   int      `json:"simplified_moves"`
	Efficiency        float64  `json:"efficiency"`
	QuarterTurns      int      `json:"quarter_turns"`
	DurationMs        int64    `json:"duration_ms"`
	TPS               float64  `json:"tps"`
	LongestPauseMs    int64    `json:"longest_pause_ms"`
	PauseCountOver    int      `json:"pause_count_over_threshold"`
	AvgMoveDurationMs float64  `json:"avg_move_duration_ms"`
	Profile           *Profile `json:"profile"`
}

// PauseThresholdMs is the gap between moves counted as a pause.
const PauseThresholdMs = 1500

// Summarize computes the summary of a move sequence.
// Returns an error if a move is not valid notation.
func Summarize(moves []TimedMove) (*Summary, error) {
	tokens := Tokens(moves)

	simplified, err := notation.Simplify(tokens)
	if err != nil {
		return nil, err
	}

	profile, err := AnalyzeProfile(tokens)
	if err != nil {
		return nil, err
	}

	s := &Summary{
		TotalMoves:        len(moves),
		SimplifiedMoves:   len(simplified),
		QuarterTurns:      profile.QuarterTurns,
		LongestPauseMs:    FindLongestPause(moves),
		PauseCountOver:    CountPausesOver(moves, PauseThresholdMs),
		AvgMoveDurationMs: CalculateAvgMoveDuration(moves),
		Profile:           profile,
	}
	if len(moves) > 1 {
		s.DurationMs = moves[len(moves)-1].TsMs - moves[0].TsMs
	}
	s.TPS = CalculateTPS(len(moves), s.DurationMs)
	if len(moves) > 0 {
		s.Efficiency = float64(len(simplified)) / float64(len(moves))
	}

	return s, nil
}

// Tokens returns the notation of each move.
func Tokens(moves []TimedMove) []string {
	tokens := make([]string, len(moves))
	for i, m := range moves {
		tokens[i] = m.Notation
	}
	return tokens
}

// PauseInfo represents a pause between two moves.
type PauseInfo struct {
	AfterMoveIndex int   `json:"after_move_index"`
	DurationMs     int64 `json:"duration_ms"`
	TsMs           int64 `json:"ts_ms"`
}

// AnalyzePauses finds all pauses of at least thresholdMs.
func AnalyzePauses(moves []TimedMove, thresholdMs int64) []PauseInfo {
	var pauses []PauseInfo

	for i := 1; i < len(moves); i++ {
		gap := moves[i].TsMs - moves[i-1].TsMs
		if gap >= thresholdMs {
			pauses = append(pauses, PauseInfo{
				AfterMoveIndex: i - 1,
				DurationMs:     gap,
				TsMs:           moves[i-1].TsMs,
			})
		}
	}

	return pauses
}

// CalculateTPS calculates turns per second.
func CalculateTPS(moveCount int, durationMs int64) float64 {
	if durationMs <= 0 {
		return 0
	}
	return float64(moveCount) / (float64(durationMs) / 1000.0)
}

// CalculateAvgMoveDuration calculates the average time between moves.
func CalculateAvgMoveDuration(moves []TimedMove) float64 {
	if len(moves) < 2 {
		return 0
	}

	totalGap := moves[len(moves)-1].TsMs - moves[0].TsMs
	return float64(totalGap) / float64(len(moves)-1)
}

// FindLongestPause finds the longest gap between two moves.
func FindLongestPause(moves []TimedMove) int64 {
	var longest int64

	for i := 1; i < len(moves); i++ {
		gap := moves[i].TsMs - moves[i-1].TsMs
		if gap > longest {
			longest = gap
		}
	}

	return longest
}

// CountPausesOver counts gaps longer than thresholdMs.
func CountPausesOver(moves []TimedMove, thresholdMs int64) int {
	count := 0
	for i := 1; i < len(moves); i++ {
		if moves[i].TsMs-moves[i-1].TsMs > thresholdMs {
			count++
		}
	}
	return count
}

// Profile counts which layers and turn amounts a sequence uses.
type Profile struct {
	BaseCounts   map[string]int `json:"base_counts"`
	TurnCounts   map[string]int `json:"turn_counts"`
	InnerLayer   int            `json:"inner_layer_moves"`
	QuarterTurns int            `json:"quarter_turns"`
	MostUsedBase string         `json:"most_used_base"`
	BasePairs    map[string]int `json:"base_pairs"` // e.g., "RU" -> count
}

// AnalyzeProfile counts base letters, turn amounts and consecutive base
// pairs. Quarter turns use the quarter-turn metric: a half turn counts two.
func AnalyzeProfile(tokens []string) (*Profile, error) {
	p := &Profile{
		BaseCounts: make(map[string]int),
		TurnCounts: make(map[string]int),
		BasePairs:  make(map[string]int),
	}

	var prev string
	for i, tok := range tokens {
		m, err := nxcube.ParseMove(tok)
		if err != nil {
			return nil, fmt.Errorf("move %d: %w", i+1, err)
		}

		base := string(m.Base)
		p.BaseCounts[base]++
		if m.Layer > 0 {
			p.InnerLayer++
		}

		switch {
		case m.Double:
			p.TurnCounts["double"]++
			p.QuarterTurns += 2
		case m.Prime:
			p.TurnCounts["prime"]++
			p.QuarterTurns++
		default:
			p.TurnCounts["clockwise"]++
			p.QuarterTurns++
		}

		if i > 0 {
			p.BasePairs[prev+base]++
		}
		prev = base
	}

	bases := make([]string, 0, len(p.BaseCounts))
	for b := range p.BaseCounts {
		bases = append(bases, b)
	}
	sort.Strings(bases)

	maxCount := 0
	for _, b := range bases {
		if p.BaseCounts[b] > maxCount {
			maxCount = p.BaseCounts[b]
			p.MostUsedBase = b
		}
	}

	return p, nil
}
