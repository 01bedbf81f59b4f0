package analysis

import (
	"github.com/SeamusWaldron/nxcube"
)

// Algorithm is a named move sequence to look for in a session.
type Algorithm struct {
	Name     string
	Sequence []string
}

// KnownAlgorithms are the sequences FindAlgorithms looks for by default.
// Longer sequences come first so a T-perm is not reported as a sexy move.
var KnownAlgorithms = []Algorithm{
	{Name: "T-perm", Sequence: nxcube.TPerm},
	{Name: "Sune", Sequence: nxcube.Sune},
	{Name: "Anti-Sune", Sequence: []string{"R", "U2", "R'", "U'", "R", "U'", "R'"}},
	{Name: "Sexy move", Sequence: nxcube.SexyMove},
	{Name: "Inverse sexy move", Sequence: nxcube.InverseSexyMove},
	{Name: "Sledgehammer", Sequence: []string{"R'", "F", "R", "F'"}},
}

// AlgorithmMatch is one occurrence of an algorithm in a session.
type AlgorithmMatch struct {
	Name       string `json:"name"`
	StartIndex int    `json:"start_index"`
	EndIndex   int    `json:"end_index"`
	TsMs       int64  `json:"ts_ms"`
}

// AlgorithmReport summarizes the known algorithms found in a session.
type AlgorithmReport struct {
	Matches            []AlgorithmMatch `json:"matches"`
	Counts             map[string]int   `json:"counts"`
	ConsecutiveRepeats int              `json:"consecutive_repeats"`
	TimeBetweenMs      []int64          `json:"time_between_ms"`
	AvgTimeBetweenMs   float64          `json:"avg_time_between_ms"`
	UnmatchedMoves     int              `json:"unmatched_moves"`
}

// FindAlgorithms scans moves left to right for the given algorithms.
// Matches do not overlap; at each position the first algorithm in the list
// that matches wins. Moves are compared in canonical notation.
func FindAlgorithms(moves []TimedMove, algs []Algorithm) *AlgorithmReport {
	report := &AlgorithmReport{
		Matches:       []AlgorithmMatch{},
		Counts:        make(map[string]int),
		TimeBetweenMs: []int64{},
	}

	canon := canonical(Tokens(moves))
	patterns := make([][]string, len(algs))
	for i, alg := range algs {
		patterns[i] = canonical(alg.Sequence)
	}

	lastEnd := -1
	var lastTs int64
	matched := 0

	for i := 0; i < len(canon); i++ {
		for k, alg := range algs {
			if !matchesAt(canon, i, patterns[k]) {
				continue
			}

			end := i + len(patterns[k]) - 1
			report.Matches = append(report.Matches, AlgorithmMatch{
				Name:       alg.Name,
				StartIndex: i,
				EndIndex:   end,
				TsMs:       moves[i].TsMs,
			})
			report.Counts[alg.Name]++
			matched += len(patterns[k])

			if lastEnd >= 0 {
				if lastEnd == i-1 {
					report.ConsecutiveRepeats++
				}
				report.TimeBetweenMs = append(report.TimeBetweenMs, moves[i].TsMs-lastTs)
			}

			lastEnd = end
			lastTs = moves[end].TsMs
			i = end
			break
		}
	}

	report.UnmatchedMoves = len(moves) - matched

	if len(report.TimeBetweenMs) > 0 {
		var total int64
		for _, t := range report.TimeBetweenMs {
			total += t
		}
		report.AvgTimeBetweenMs = float64(total) / float64(len(report.TimeBetweenMs))
	}

	return report
}

// canonical rewrites tokens in canonical notation, leaving invalid tokens
// as they are so they never match.
func canonical(tokens []string) []string {
	out := make([]string, len(tokens))
	for i, tok := range tokens {
		if m, err := nxcube.ParseMove(tok); err == nil {
			out[i] = m.Notation()
		} else {
			out[i] = tok
		}
	}
	return out
}

func matchesAt(tokens []string, start int, pattern []string) bool {
	if len(pattern) == 0 || start+len(pattern) > len(tokens) {
		return false
	}
	for i, p := range pattern {
		if tokens[start+i] != p {
			return false
		}
	}
	return true
}

// Suggestions returns practice hints based on the report.
func Suggestions(report *AlgorithmReport, total int) []string {
	var suggestions []string

	if total > 0 && report.UnmatchedMoves > total*3/4 {
		suggestions = append(suggestions, "Most moves are not part of a known algorithm - try learning triggers like the sexy move")
	}

	if report.AvgTimeBetweenMs > 2000 {
		suggestions = append(suggestions, "Long pauses between algorithms - practice recognition speed")
	}

	if report.ConsecutiveRepeats > 2 {
		suggestions = append(suggestions, "Many back-to-back repeats - a longer algorithm may do the same work")
	}

	return suggestions
}
