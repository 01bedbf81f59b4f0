package analysis

import (
	"fmt"
	"sort"
	"time"
)

// SessionData is the per-session input to trend analysis.
type SessionData struct {
	SessionID  string
	CubeSize   int
	StartedAt  time.Time
	DurationMs int64
	MoveCount  int
	Solved     bool
}

// TPS returns the session's turns per second.
func (s SessionData) TPS() float64 {
	return CalculateTPS(s.MoveCount, s.DurationMs)
}

// TrendReport contains trend analysis across multiple sessions.
type TrendReport struct {
	TotalSessions  int       `json:"total_sessions"`
	TimedSessions  int       `json:"timed_sessions"`
	SolvedSessions int       `json:"solved_sessions"`
	DateRange      DateRange `json:"date_range"`

	AvgDurationMs float64 `json:"avg_duration_ms"`
	AvgMoves      float64 `json:"avg_moves"`
	AvgTPS        float64 `json:"avg_tps"`

	Best  *SessionStats `json:"best,omitempty"`
	Worst *SessionStats `json:"worst,omitempty"`

	ImprovementPct   float64 `json:"improvement_pct"`
	ConsistencyScore float64 `json:"consistency_score"`

	// Rolling average durations over the last 5, 12 and 50 timed sessions.
	RollingAvgs map[int]float64 `json:"rolling_averages"`

	SizeTrends map[int]SizeTrend `json:"size_trends"`
	Sessions   []SessionStats    `json:"sessions"`
}

// DateRange represents a date range.
type DateRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// SessionStats is one session in trend context.
type SessionStats struct {
	SessionID  string  `json:"session_id"`
	CubeSize   int     `json:"cube_size"`
	Timestamp  string  `json:"timestamp"`
	DurationMs int64   `json:"duration_ms"`
	MoveCount  int     `json:"move_count"`
	TPS        float64 `json:"tps"`
	Solved     bool    `json:"solved"`
}

// SizeTrend summarizes the timed sessions of one cube size.
type SizeTrend struct {
	CubeSize       int     `json:"cube_size"`
	Sessions       int     `json:"sessions"`
	AvgDurationMs  float64 `json:"avg_duration_ms"`
	AvgMoves       float64 `json:"avg_moves"`
	AvgTPS         float64 `json:"avg_tps"`
	ImprovementPct float64 `json:"improvement_pct"`
}

var rollingWindows = []int{5, 12, 50}

// AnalyzeTrends analyzes trends across sessions. Only sessions with a
// positive duration count towards averages, best and worst.
func AnalyzeTrends(sessions []SessionData) *TrendReport {
	report := &TrendReport{
		TotalSessions: len(sessions),
		RollingAvgs:   make(map[int]float64),
		SizeTrends:    make(map[int]SizeTrend),
		Sessions:      []SessionStats{},
	}

	if len(sessions) == 0 {
		return report
	}

	sorted := make([]SessionData, len(sessions))
	copy(sorted, sessions)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].StartedAt.Before(sorted[j].StartedAt)
	})

	report.DateRange = DateRange{
		Start: sorted[0].StartedAt.Format(time.RFC3339),
		End:   sorted[len(sorted)-1].StartedAt.Format(time.RFC3339),
	}

	var timed []SessionData
	var totalDuration, totalMoves int64
	var totalTPS float64

	for _, s := range sorted {
		if s.Solved {
			report.SolvedSessions++
		}
		if s.DurationMs <= 0 {
			continue
		}

		timed = append(timed, s)
		totalDuration += s.DurationMs
		totalMoves += int64(s.MoveCount)
		totalTPS += s.TPS()

		stats := newSessionStats(s)
		report.Sessions = append(report.Sessions, stats)

		if report.Best == nil || s.DurationMs < report.Best.DurationMs {
			best := stats
			report.Best = &best
		}
		if report.Worst == nil || s.DurationMs > report.Worst.DurationMs {
			worst := stats
			report.Worst = &worst
		}
	}

	report.TimedSessions = len(timed)
	if len(timed) == 0 {
		return report
	}

	n := float64(len(timed))
	report.AvgDurationMs = float64(totalDuration) / n
	report.AvgMoves = float64(totalMoves) / n
	report.AvgTPS = totalTPS / n

	durations := make([]int64, len(timed))
	for i, s := range timed {
		durations[i] = s.DurationMs
	}
	report.ImprovementPct = calculateImprovement(durations)
	report.ConsistencyScore = calculateConsistency(durations)

	for _, w := range rollingWindows {
		if len(durations) >= w {
			report.RollingAvgs[w] = mean(durations[len(durations)-w:])
		}
	}

	report.SizeTrends = analyzeSizeTrends(timed)
	return report
}

func newSessionStats(s SessionData) SessionStats {
	return SessionStats{
		SessionID:  s.SessionID,
		CubeSize:   s.CubeSize,
		Timestamp:  s.StartedAt.Format(time.RFC3339),
		DurationMs: s.DurationMs,
		MoveCount:  s.MoveCount,
		TPS:        s.TPS(),
		Solved:     s.Solved,
	}
}

func mean(values []int64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum int64
	for _, v := range values {
		sum += v
	}
	return float64(sum) / float64(len(values))
}

// calculateImprovement compares the first quarter of durations with the
// last. Positive means faster.
func calculateImprovement(durations []int64) float64 {
	if len(durations) < 4 {
		return 0
	}

	q := len(durations) / 4
	firstAvg := mean(durations[:q])
	lastAvg := mean(durations[len(durations)-q:])

	if firstAvg <= 0 {
		return 0
	}
	return ((firstAvg - lastAvg) / firstAvg) * 100
}

// calculateConsistency scores durations from 0 to 100 by their coefficient
// of variation. Identical durations score 100.
func calculateConsistency(durations []int64) float64 {
	if len(durations) < 2 {
		return 100
	}

	m := mean(durations)
	if m <= 0 {
		return 100
	}

	var sumSquares float64
	for _, d := range durations {
		diff := float64(d) - m
		sumSquares += diff * diff
	}
	cv := (sumSquares / float64(len(durations))) / (m * m)

	score := 100 - cv*100
	return max(0, min(100, score))
}

func analyzeSizeTrends(timed []SessionData) map[int]SizeTrend {
	bySize := make(map[int][]SessionData)
	for _, s := range timed {
		bySize[s.CubeSize] = append(bySize[s.CubeSize], s)
	}

	trends := make(map[int]SizeTrend, len(bySize))
	for size, list := range bySize {
		durations := make([]int64, len(list))
		var moves int
		var tps float64
		for i, s := range list {
			durations[i] = s.DurationMs
			moves += s.MoveCount
			tps += s.TPS()
		}

		n := float64(len(list))
		trends[size] = SizeTrend{
			CubeSize:       size,
			Sessions:       len(list),
			AvgDurationMs:  mean(durations),
			AvgMoves:       float64(moves) / n,
			AvgTPS:         tps / n,
			ImprovementPct: calculateImprovement(durations),
		}
	}
	return trends
}

// String formats a size trend as a one-line summary.
func (t SizeTrend) String() string {
	return fmt.Sprintf("%dx%d: %d sessions, avg %.1fs, %.1f moves, %.2f TPS",
		t.CubeSize, t.CubeSize, t.Sessions, t.AvgDurationMs/1000, t.AvgMoves, t.AvgTPS)
}
