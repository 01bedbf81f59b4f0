package analysis

import (
	"slices"
	"sort"
	"strings"

	"github.com/SeamusWaldron/nxcube"
)

// NGram represents a repeated move sequence.
type NGram struct {
	N           int               `json:"n"`
	Sequence    []string          `json:"sequence"`
	Count       int               `json:"count"`
	Occurrences []NGramOccurrence `json:"occurrences,omitempty"`
}

// NGramOccurrence represents where an n-gram was found.
type NGramOccurrence struct {
	SessionID  string `json:"session_id,omitempty"`
	StartIndex int    `json:"start_index"`
	TsMs       int64  `json:"ts_ms"`
}

// NGramReport contains the results of n-gram mining, keyed by n.
type NGramReport struct {
	TopNGrams map[int][]NGram `json:"top_ngrams"`
}

const maxOccurrences = 10

// RollingHash implements a Rabin-Karp rolling hash over token IDs.
type RollingHash struct {
	base   uint64
	hash   uint64
	pow    uint64 // base^(n-1) for removal
	window []uint32
	n      int
}

// NewRollingHash creates a new rolling hash for window size n.
func NewRollingHash(n int) *RollingHash {
	rh := &RollingHash{
		base:   1_000_003,
		n:      n,
		window: make([]uint32, 0, n),
	}

	rh.pow = 1
	for i := 0; i < n-1; i++ {
		rh.pow *= rh.base
	}

	return rh
}

// Roll adds a token, dropping the oldest one once the window is full.
func (rh *RollingHash) Roll(token uint32) {
	if len(rh.window) < rh.n {
		rh.window = append(rh.window, token)
		rh.hash = rh.hash*rh.base + uint64(token)
		return
	}

	old := rh.window[0]
	rh.hash = (rh.hash-uint64(old)*rh.pow)*rh.base + uint64(token)

	copy(rh.window, rh.window[1:])
	rh.window[rh.n-1] = token
}

// Hash returns the current hash value.
func (rh *RollingHash) Hash() uint64 {
	return rh.hash
}

// Window returns a copy of the current window.
func (rh *RollingHash) Window() []uint32 {
	return slices.Clone(rh.window)
}

// Ready returns true if the window is full.
func (rh *RollingHash) Ready() bool {
	return len(rh.window) == rh.n
}

// interner assigns small IDs to canonical move notations.
type interner struct {
	ids    map[string]uint32
	tokens []string
}

func newInterner() *interner {
	return &interner{ids: make(map[string]uint32)}
}

func (in *interner) id(tok string) uint32 {
	if m, err := nxcube.ParseMove(tok); err == nil {
		tok = m.Notation()
	}
	if id, ok := in.ids[tok]; ok {
		return id
	}
	id := uint32(len(in.tokens))
	in.ids[tok] = id
	in.tokens = append(in.tokens, tok)
	return id
}

type ngramEntry struct {
	tokens      []uint32
	count       int
	first       int
	occurrences []NGramOccurrence
}

// MineNGrams finds the top-K most frequent n-grams for each n in
// [minN, maxN]. Only sequences seen at least twice are reported. Tokens
// are compared in canonical form, so r and 2R are the same move.
func MineNGrams(moves []TimedMove, minN, maxN, topK int) *NGramReport {
	report := &NGramReport{
		TopNGrams: make(map[int][]NGram),
	}

	if minN < 1 || len(moves) < minN {
		return report
	}

	in := newInterner()
	ids := make([]uint32, len(moves))
	for i, m := range moves {
		ids[i] = in.id(m.Notation)
	}

	for n := minN; n <= maxN && n <= len(moves); n++ {
		if ngrams := mineNGramsForN(ids, moves, in, n, topK); len(ngrams) > 0 {
			report.TopNGrams[n] = ngrams
		}
	}

	return report
}

func mineNGramsForN(ids []uint32, moves []TimedMove, in *interner, n, topK int) []NGram {
	counts := make(map[uint64][]*ngramEntry)
	var order []*ngramEntry
	rh := NewRollingHash(n)

	for i, id := range ids {
		rh.Roll(id)
		if !rh.Ready() {
			continue
		}

		start := i - n + 1
		occ := NGramOccurrence{StartIndex: start, TsMs: moves[start].TsMs}
		window := rh.Window()

		// Hash collisions share a bucket.
		var entry *ngramEntry
		for _, e := range counts[rh.Hash()] {
			if slices.Equal(e.tokens, window) {
				entry = e
				break
			}
		}
		if entry == nil {
			entry = &ngramEntry{tokens: window, first: start}
			counts[rh.Hash()] = append(counts[rh.Hash()], entry)
			order = append(order, entry)
		}

		entry.count++
		if len(entry.occurrences) < maxOccurrences {
			entry.occurrences = append(entry.occurrences, occ)
		}
	}

	entries := make([]*ngramEntry, 0, len(order))
	for _, e := range order {
		if e.count >= 2 {
			entries = append(entries, e)
		}
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].count > entries[j].count
	})

	if len(entries) > topK {
		entries = entries[:topK]
	}

	result := make([]NGram, len(entries))
	for i, e := range entries {
		seq := make([]string, len(e.tokens))
		for j, id := range e.tokens {
			seq[j] = in.tokens[id]
		}
		result[i] = NGram{
			N:           n,
			Sequence:    seq,
			Count:       e.count,
			Occurrences: e.occurrences,
		}
	}

	return result
}

// MineNGramsAcrossSessions aggregates per-session reports.
func MineNGramsAcrossSessions(reports map[string]*NGramReport, topK int) *NGramReport {
	report := &NGramReport{
		TopNGrams: make(map[int][]NGram),
	}

	ids := make([]string, 0, len(reports))
	for id := range reports {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	byN := make(map[int]map[string]*NGram)
	for _, sessionID := range ids {
		for n, ngrams := range reports[sessionID].TopNGrams {
			if byN[n] == nil {
				byN[n] = make(map[string]*NGram)
			}
			for _, ng := range ngrams {
				key := strings.Join(ng.Sequence, " ")
				agg, ok := byN[n][key]
				if !ok {
					agg = &NGram{N: n, Sequence: ng.Sequence}
					byN[n][key] = agg
				}
				agg.Count += ng.Count
				for _, occ := range ng.Occurrences {
					if len(agg.Occurrences) < maxOccurrences {
						occ.SessionID = sessionID
						agg.Occurrences = append(agg.Occurrences, occ)
					}
				}
			}
		}
	}

	for n, aggregated := range byN {
		ngrams := make([]NGram, 0, len(aggregated))
		for _, ng := range aggregated {
			ngrams = append(ngrams, *ng)
		}

		sort.Slice(ngrams, func(i, j int) bool {
			if ngrams[i].Count != ngrams[j].Count {
				return ngrams[i].Count > ngrams[j].Count
			}
			return strings.Join(ngrams[i].Sequence, " ") < strings.Join(ngrams[j].Sequence, " ")
		})

		if len(ngrams) > topK {
			ngrams = ngrams[:topK]
		}
		report.TopNGrams[n] = ngrams
	}

	return report
}
