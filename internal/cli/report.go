package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/nxcube/internal/analysis"
	"github.com/SeamusWaldron/nxcube/internal/notation"
	"github.com/SeamusWaldron/nxcube/internal/storage"
)

// sessionReport is everything the report command shows for one session.
type sessionReport struct {
	SessionID   string                    `json:"session_id"`
	CubeSize    int                       `json:"cube_size"`
	Solved      bool                      `json:"solved"`
	Consistent  bool                      `json:"consistent"`
	Summary     *analysis.Summary         `json:"summary"`
	Algorithms  *analysis.AlgorithmReport `json:"algorithms"`
	NGrams      *analysis.NGramReport     `json:"ngrams"`
	Suggestions []string                  `json:"suggestions,omitempty"`
}

func newReportCmd(opts *rootOptions) *cobra.Command {
	var (
		sessionID string
		last      bool
		asJSON    bool
		topK      int
	)

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Analyze a recorded session",
		Long: `Analyze the moves of a recorded session: pace, pauses, how much the
sequence simplifies, known algorithms and repeated move patterns.

Examples:
  nxcube report --last
  nxcube report --id <session_id> --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := opts.openDB()
			if err != nil {
				return err
			}
			defer db.Close()

			s, err := findSession(db, sessionID, last)
			if err != nil {
				return err
			}

			records, err := storage.NewMoveRepository(db).GetBySession(s.SessionID)
			if err != nil {
				return err
			}

			report, err := buildReport(s, records, topK)
			if err != nil {
				return err
			}
			if !report.Consistent {
				loggerFromContext(cmd.Context()).Warn("replayed moves do not match the stored final state", "session", s.SessionID)
			}

			if asJSON {
				data, err := json.MarshalIndent(report, "", "  ")
				if err != nil {
					return fmt.Errorf("failed to marshal JSON: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(data))
				return nil
			}

			printReport(cmd.OutOrStdout(), report)
			return nil
		},
	}

	cmd.Flags().StringVar(&sessionID, "id", "", "Session ID to analyze")
	cmd.Flags().BoolVar(&last, "last", false, "Analyze the last session")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output JSON")
	cmd.Flags().IntVar(&topK, "top", 3, "Repeated patterns to show per length")

	cmd.AddCommand(newReportTrendsCmd(opts))
	return cmd
}

func newReportTrendsCmd(opts *rootOptions) *cobra.Command {
	var (
		limit  int
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "trends",
		Short: "Show trends across recent sessions",
		Long: `Show averages, best and worst times, rolling averages and improvement
across recent sessions. A session's time runs from its start to its last move.

Examples:
  nxcube report trends
  nxcube report trends --limit 50 --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := opts.openDB()
			if err != nil {
				return err
			}
			defer db.Close()

			data, err := loadSessionData(db, limit)
			if err != nil {
				return err
			}
			trends := analysis.AnalyzeTrends(data)

			if asJSON {
				out, err := json.MarshalIndent(trends, "", "  ")
				if err != nil {
					return fmt.Errorf("failed to marshal JSON: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(out))
				return nil
			}

			printTrends(cmd.OutOrStdout(), trends)
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "l", 50, "Number of recent sessions to include")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output JSON")

	return cmd
}

// loadSessionData collects trend input for the most recent sessions.
func loadSessionData(db *storage.DB, limit int) ([]analysis.SessionData, error) {
	sessions, err := storage.NewSessionRepository(db).List(limit)
	if err != nil {
		return nil, err
	}

	moveRepo := storage.NewMoveRepository(db)
	data := make([]analysis.SessionData, 0, len(sessions))
	for _, s := range sessions {
		records, err := moveRepo.GetBySession(s.SessionID)
		if err != nil {
			return nil, err
		}

		d := analysis.SessionData{
			SessionID: s.SessionID,
			CubeSize:  s.CubeSize,
			StartedAt: s.StartedAt,
			MoveCount: len(records),
			Solved:    s.Solved,
		}
		if n := len(records); n > 0 {
			d.DurationMs = records[n-1].TsMs
		}
		data = append(data, d)
	}
	return data, nil
}

func printTrends(w io.Writer, r *analysis.TrendReport) {
	fmt.Fprintln(w, titleStyle.Render("Trends"))
	fmt.Fprintf(w, "Sessions:    %d (%d timed, %d solved)\n", r.TotalSessions, r.TimedSessions, r.SolvedSessions)
	if r.TimedSessions == 0 {
		fmt.Fprintln(w, statusStyle.Render("No timed sessions yet. Play one with: nxcube play"))
		return
	}

	fmt.Fprintf(w, "Range:       %s to %s\n", r.DateRange.Start, r.DateRange.End)
	fmt.Fprintf(w, "Average:     %s, %.1f moves, %.2f TPS\n", msDuration(r.AvgDurationMs), r.AvgMoves, r.AvgTPS)
	fmt.Fprintf(w, "Best:        %s (%s)\n", msDuration(float64(r.Best.DurationMs)), r.Best.SessionID[:8])
	fmt.Fprintf(w, "Worst:       %s (%s)\n", msDuration(float64(r.Worst.DurationMs)), r.Worst.SessionID[:8])
	fmt.Fprintf(w, "Improvement: %+.1f%%\n", r.ImprovementPct)
	fmt.Fprintf(w, "Consistency: %.0f/100\n", r.ConsistencyScore)

	windows := make([]int, 0, len(r.RollingAvgs))
	for n := range r.RollingAvgs {
		windows = append(windows, n)
	}
	sort.Ints(windows)
	for _, n := range windows {
		fmt.Fprintf(w, "Last %-7d %s\n", n, msDuration(r.RollingAvgs[n]))
	}

	sizes := make([]int, 0, len(r.SizeTrends))
	for size := range r.SizeTrends {
		sizes = append(sizes, size)
	}
	sort.Ints(sizes)
	if len(sizes) > 0 {
		fmt.Fprintln(w)
		for _, size := range sizes {
			fmt.Fprintf(w, "  %s\n", r.SizeTrends[size])
		}
	}
}

func msDuration(ms float64) time.Duration {
	return (time.Duration(ms) * time.Millisecond).Round(10 * time.Millisecond)
}

func buildReport(s *storage.Session, records []storage.MoveRecord, topK int) (*sessionReport, error) {
	moves := make([]analysis.TimedMove, len(records))
	for i, r := range records {
		moves[i] = analysis.TimedMove{Notation: r.Notation, TsMs: r.TsMs}
	}

	summary, err := analysis.Summarize(moves)
	if err != nil {
		return nil, err
	}

	cube, err := storage.Replay(s, records)
	if err != nil {
		return nil, err
	}

	algs := analysis.FindAlgorithms(moves, analysis.KnownAlgorithms)

	report := &sessionReport{
		SessionID:   s.SessionID,
		CubeSize:    s.CubeSize,
		Solved:      s.Solved,
		Consistent:  s.FinalState == nil || *s.FinalState == cube.StateString(),
		Summary:     summary,
		Algorithms:  algs,
		NGrams:      analysis.MineNGrams(moves, 4, 8, topK),
		Suggestions: analysis.Suggestions(algs, len(moves)),
	}
	return report, nil
}

func printReport(w io.Writer, r *sessionReport) {
	s := r.Summary

	fmt.Fprintln(w, titleStyle.Render("Session "+r.SessionID))
	fmt.Fprintf(w, "Cube:        %dx%dx%d, %s\n", r.CubeSize, r.CubeSize, r.CubeSize, solvedLabel(r.Solved))
	fmt.Fprintf(w, "Moves:       %d (%d after simplifying, %.0f%%)\n", s.TotalMoves, s.SimplifiedMoves, s.Efficiency*100)
	fmt.Fprintf(w, "Quarter turns: %d\n", s.QuarterTurns)
	fmt.Fprintf(w, "Duration:    %s\n", (time.Duration(s.DurationMs) * time.Millisecond).Round(time.Millisecond))
	fmt.Fprintf(w, "TPS:         %.2f\n", s.TPS)
	fmt.Fprintf(w, "Longest pause: %s (%d over %dms)\n",
		time.Duration(s.LongestPauseMs)*time.Millisecond, s.PauseCountOver, analysis.PauseThresholdMs)
	if s.Profile.MostUsedBase != "" {
		fmt.Fprintf(w, "Most used:   %s (%d inner-layer moves)\n", s.Profile.MostUsedBase, s.Profile.InnerLayer)
	}

	if len(r.Algorithms.Matches) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, titleStyle.Render("Algorithms"))
		names := make([]string, 0, len(r.Algorithms.Counts))
		for name := range r.Algorithms.Counts {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			fmt.Fprintf(w, "  %-20s x%d\n", name, r.Algorithms.Counts[name])
		}
	}

	if len(r.NGrams.TopNGrams) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, titleStyle.Render("Repeated patterns"))
		lengths := make([]int, 0, len(r.NGrams.TopNGrams))
		for n := range r.NGrams.TopNGrams {
			lengths = append(lengths, n)
		}
		sort.Ints(lengths)
		for _, n := range lengths {
			for _, ng := range r.NGrams.TopNGrams[n] {
				fmt.Fprintf(w, "  %-30s x%d\n", moveStyle.Render(notation.Format(ng.Sequence)), ng.Count)
			}
		}
	}

	if len(r.Suggestions) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, titleStyle.Render("Suggestions"))
		for _, sg := range r.Suggestions {
			fmt.Fprintf(w, "  - %s\n", sg)
		}
	}

	if !r.Consistent {
		fmt.Fprintln(w)
		fmt.Fprintln(w, errorStyle.Render("Warning: replaying the moves does not reproduce the stored final state"))
	}
}
