package nxcube

import (
	"fmt"
	"strconv"
	"strings"
)

// Move is a parsed move token.
//
// Base is one of the face letters U D L R F B, the slice letters M E S or
// the whole-cube rotation letters X Y Z, always uppercase. Layer counts
// inward from the named face, starting at 0 for the outer layer, and only
// applies to face letters.
type Move struct {
	Base   byte
	Layer  int
	Prime  bool // counter-clockwise
	Double bool // 180 degrees
}

// isFaceLetter reports whether b names a face turn.
func isFaceLetter(b byte) bool {
	_, ok := faceFromLetter(b)
	return ok
}

// isSpecialLetter reports whether b names a slice or whole-cube rotation.
func isSpecialLetter(b byte) bool {
	switch b {
	case 'M', 'E', 'S', 'X', 'Y', 'Z':
		return true
	}
	return false
}

// ParseMove parses a single move token.
// Examples: U, R', F2, r, 2R, 3F', M', Y2, x
// Returns a *ParseError if the token is not valid notation.
func ParseMove(token string) (Move, error) {
	s := strings.TrimSpace(token)
	if len(s) == 0 {
		return Move{}, &ParseError{Token: token, Reason: "empty move"}
	}

	// Optional layer prefix
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	prefix := s[:i]
	if i == len(s) {
		return Move{}, &ParseError{Token: token, Reason: "missing base letter"}
	}

	letter := s[i]
	suffix := s[i+1:]

	var m Move
	switch {
	case isFaceLetter(letter):
		m.Base = letter
		if prefix != "" {
			n, err := strconv.Atoi(prefix)
			if err != nil || n < 1 {
				return Move{}, &ParseError{Token: token, Reason: "layer prefix must be a number from 1"}
			}
			m.Layer = n - 1
		}

	case letter >= 'a' && letter <= 'z':
		upper := letter - 'a' + 'A'
		switch {
		case isFaceLetter(upper):
			m.Base = upper
			m.Layer = 1
		case upper == 'X' || upper == 'Y' || upper == 'Z':
			m.Base = upper
		default:
			return Move{}, &ParseError{Token: token, Reason: fmt.Sprintf("unknown base letter %q", letter)}
		}
		if prefix != "" {
			return Move{}, &ParseError{Token: token, Reason: "layer prefix needs an uppercase face letter"}
		}

	case isSpecialLetter(letter):
		if prefix != "" {
			return Move{}, &ParseError{Token: token, Reason: "layer prefix needs an uppercase face letter"}
		}
		m.Base = letter

	default:
		return Move{}, &ParseError{Token: token, Reason: fmt.Sprintf("unknown base letter %q", letter)}
	}

	switch suffix {
	case "":
	case "'", "`":
		m.Prime = true
	case "2", "2'", "2`":
		m.Double = true // a half turn has no direction
	default:
		return Move{}, &ParseError{Token: token, Reason: fmt.Sprintf("invalid modifier %q", suffix)}
	}

	return m, nil
}

// MustParseMove is like ParseMove but panics on invalid notation.
// Intended for package-level tables of known-good tokens.
func MustParseMove(token string) Move {
	m, err := ParseMove(token)
	if err != nil {
		panic(err)
	}
	return m
}

// Face returns the face a face-letter move turns.
func (m Move) Face() (Face, bool) {
	return faceFromLetter(m.Base)
}

// Notation returns the canonical token for the move.
// Inner layers of a face are written with a numeric prefix: 2R, 3U'.
func (m Move) Notation() string {
	var b strings.Builder
	if m.Layer > 0 && isFaceLetter(m.Base) {
		b.WriteString(strconv.Itoa(m.Layer + 1))
	}
	b.WriteByte(m.Base)
	switch {
	case m.Double:
		b.WriteByte('2')
	case m.Prime:
		b.WriteByte('\'')
	}
	return b.String()
}

// String returns the notation string (alias for Notation).
func (m Move) String() string {
	return m.Notation()
}

// Inverse returns the move that undoes m.
// R becomes R', R' becomes R, R2 stays R2.
func (m Move) Inverse() Move {
	inv := m
	if !m.Double {
		inv.Prime = !m.Prime
	}
	return inv
}

// turn converts the modifiers into a rotation amount.
func (m Move) turn() turn {
	switch {
	case m.Double:
		return turnHalf
	case m.Prime:
		return turnCounter
	default:
		return turnClockwise
	}
}

// Inverse returns the token that undoes the given token, keeping its
// written form: r becomes r', 2R' becomes 2R, and doubles are returned
// unchanged. Primes are normalized to ', so B` becomes B and B becomes B'.
func Inverse(token string) (string, error) {
	m, err := ParseMove(token)
	if err != nil {
		return "", err
	}

	s := strings.TrimSpace(token)
	switch {
	case m.Double:
		return s, nil
	case m.Prime:
		return s[:len(s)-1], nil
	default:
		return s + "'", nil
	}
}

// InverseSequence returns the tokens that undo the given sequence:
// the sequence reversed with every token inverted.
func InverseSequence(tokens []string) ([]string, error) {
	out := make([]string, len(tokens))
	for i, tok := range tokens {
		inv, err := Inverse(tok)
		if err != nil {
			return nil, fmt.Errorf("move %d: %w", i+1, err)
		}
		out[len(tokens)-1-i] = inv
	}
	return out, nil
}

// ParseMoves parses a whitespace-separated sequence of moves.
// Example: "R U R' U'"
// Parsing stops at the first invalid token.
func ParseMoves(s string) ([]Move, error) {
	parts := strings.Fields(s)
	moves := make([]Move, 0, len(parts))

	for i, part := range parts {
		move, err := ParseMove(part)
		if err != nil {
			return nil, fmt.Errorf("move %d: %w", i+1, err)
		}
		moves = append(moves, move)
	}

	return moves, nil
}

// FormatMoves formats a slice of moves as a space-separated notation string.
func FormatMoves(moves []Move) string {
	if len(moves) == 0 {
		return ""
	}

	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = m.Notation()
	}

	return strings.Join(parts, " ")
}
