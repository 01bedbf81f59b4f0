// Package notation provides move sequence utilities built on the nxcube
// move grammar.
package notation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/SeamusWaldron/nxcube"
)

// ErrNoOrder is returned by Order when the sequence does not return to the
// solved state within the limit.
var ErrNoOrder = errors.New("notation: sequence order exceeds limit")

// Split splits a whitespace-separated sequence into tokens.
func Split(seq string) []string {
	return strings.Fields(seq)
}

// Format joins tokens into a space-separated sequence.
func Format(tokens []string) string {
	return strings.Join(tokens, " ")
}

// Repeat returns tokens repeated n times.
func Repeat(tokens []string, n int) []string {
	if n <= 0 {
		return nil
	}
	out := make([]string, 0, len(tokens)*n)
	for i := 0; i < n; i++ {
		out = append(out, tokens...)
	}
	return out
}

// quarters returns the clockwise quarter turns a move performs, in [1, 3].
func quarters(m nxcube.Move) int {
	switch {
	case m.Double:
		return 2
	case m.Prime:
		return 3
	default:
		return 1
	}
}

// withQuarters returns m turned by q clockwise quarter turns.
func withQuarters(m nxcube.Move, q int) nxcube.Move {
	m.Prime, m.Double = false, false
	switch q {
	case 2:
		m.Double = true
	case 3:
		m.Prime = true
	}
	return m
}

// Simplify merges adjacent moves that turn the same layer.
// For example: R R becomes R2, R2 R becomes R', R R' cancels out.
// Merging continues across cancellations, so R U U' R' is empty.
// Tokens are returned in canonical form.
func Simplify(tokens []string) ([]string, error) {
	stack := make([]nxcube.Move, 0, len(tokens))

	for i, tok := range tokens {
		move, err := nxcube.ParseMove(tok)
		if err != nil {
			return nil, fmt.Errorf("move %d: %w", i+1, err)
		}

		if len(stack) == 0 {
			stack = append(stack, move)
			continue
		}

		last := &stack[len(stack)-1]
		if last.Base != move.Base || last.Layer != move.Layer {
			stack = append(stack, move)
			continue
		}

		q := (quarters(*last) + quarters(move)) % 4
		if q == 0 {
			// Moves cancelled out - remove the last move
			stack = stack[:len(stack)-1]
		} else {
			*last = withQuarters(*last, q)
		}
	}

	out := make([]string, len(stack))
	for i, m := range stack {
		out[i] = m.Notation()
	}
	return out, nil
}

// Order returns the smallest k >= 1 such that applying tokens k times to
// a solved cube of the given size gives the solved cube back, orientation
// included. It gives up with ErrNoOrder after limit repetitions.
func Order(size int, tokens []string, limit int) (int, error) {
	cube, err := nxcube.New(size, nxcube.WithMoveHistory(false))
	if err != nil {
		return 0, err
	}
	solved := cube.Copy()

	for k := 1; k <= limit; k++ {
		if err := cube.ApplyAll(tokens); err != nil {
			return 0, err
		}
		if cube.Equal(solved) {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w: %d", ErrNoOrder, limit)
}
