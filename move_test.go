package nxcube

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMove(t *testing.T) {
	tests := []struct {
		token string
		want  Move
	}{
		{"U", Move{Base: 'U'}},
		{"R'", Move{Base: 'R', Prime: true}},
		{"F2", Move{Base: 'F', Double: true}},
		{"r", Move{Base: 'R', Layer: 1}},
		{"u'", Move{Base: 'U', Layer: 1, Prime: true}},
		{"2R", Move{Base: 'R', Layer: 1}},
		{"3F'", Move{Base: 'F', Layer: 2, Prime: true}},
		{"12L2", Move{Base: 'L', Layer: 11, Double: true}},
		{"M'", Move{Base: 'M', Prime: true}},
		{"E", Move{Base: 'E'}},
		{"S2", Move{Base: 'S', Double: true}},
		{"Y2", Move{Base: 'Y', Double: true}},
		{"x", Move{Base: 'X'}},
		{"z'", Move{Base: 'Z', Prime: true}},
		{"R2'", Move{Base: 'R', Double: true}},
		{"B`", Move{Base: 'B', Prime: true}},
		{" D ", Move{Base: 'D'}},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			got, err := ParseMove(tt.token)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseMoveInvalid(t *testing.T) {
	for _, token := range []string{"", "   ", "Q", "2", "0R", "2r", "2M", "3X", "R3", "R''", "m", "R2x", "U'2"} {
		t.Run(token, func(t *testing.T) {
			_, err := ParseMove(token)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidNotation))

			var pe *ParseError
			assert.True(t, errors.As(err, &pe))
		})
	}
}

func TestMoveNotation(t *testing.T) {
	for _, token := range []string{"U", "R'", "F2", "2R", "3F'", "M'", "E", "S2", "X", "Y2", "Z'"} {
		assert.Equal(t, token, MustParseMove(token).Notation())
	}

	assert.Equal(t, "2R", MustParseMove("r").Notation())
	assert.Equal(t, "R2", MustParseMove("R2'").Notation())
	assert.Equal(t, "U'", MustParseMove("U`").String())
}

func TestMoveFace(t *testing.T) {
	f, ok := MustParseMove("2F'").Face()
	assert.True(t, ok)
	assert.Equal(t, FaceF, f)

	_, ok = MustParseMove("M").Face()
	assert.False(t, ok)
}

func TestMoveInverse(t *testing.T) {
	assert.Equal(t, MustParseMove("R'"), MustParseMove("R").Inverse())
	assert.Equal(t, MustParseMove("R"), MustParseMove("R'").Inverse())
	assert.Equal(t, MustParseMove("R2"), MustParseMove("R2").Inverse())
	assert.Equal(t, MustParseMove("3U'"), MustParseMove("3U").Inverse())
}

func TestInverse(t *testing.T) {
	tests := map[string]string{
		"R":   "R'",
		"R'":  "R",
		"R2":  "R2",
		"r":   "r'",
		"r'":  "r",
		"2R":  "2R'",
		"3F'": "3F",
		"M'":  "M",
		"x":   "x'",
		"Y2":  "Y2",
		"B`":  "B",
	}

	for token, want := range tests {
		got, err := Inverse(token)
		require.NoError(t, err, token)
		assert.Equal(t, want, got, token)
	}
}

func TestInverseNormalizesPrime(t *testing.T) {
	inv, err := Inverse("B`")
	require.NoError(t, err)
	assert.Equal(t, "B", inv)

	back, err := Inverse(inv)
	require.NoError(t, err)
	assert.Equal(t, "B'", back, "primes come back as ', never as a backtick")

	inv, err = Inverse("3F`")
	require.NoError(t, err)
	assert.Equal(t, "3F", inv)
}

func TestInverseInvalid(t *testing.T) {
	_, err := Inverse("Q'")
	assert.True(t, errors.Is(err, ErrInvalidNotation))
}

func TestInverseSequence(t *testing.T) {
	got, err := InverseSequence(SexyMove)
	require.NoError(t, err)
	assert.Equal(t, []string{"U", "R", "U'", "R'"}, got)

	got, err = InverseSequence(nil)
	require.NoError(t, err)
	assert.Empty(t, got)

	_, err = InverseSequence([]string{"R", "", "U"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "move 2")
}

func TestParseMoves(t *testing.T) {
	moves, err := ParseMoves("R U  R'\tU'")
	require.NoError(t, err)
	assert.Equal(t, "R U R' U'", FormatMoves(moves))

	_, err = ParseMoves("R U Q")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidNotation))
	assert.Contains(t, err.Error(), "move 3")

	assert.Equal(t, "", FormatMoves(nil))
}
