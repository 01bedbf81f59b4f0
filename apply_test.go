package nxcube

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// legalTokens lists every base token a cube of the given size accepts,
// without modifiers.
func legalTokens(size int) []string {
	tokens := []string{"M", "E", "S", "X", "Y", "Z", "x", "y", "z"}
	for _, f := range "UDLRFB" {
		tokens = append(tokens, string(f))
		tokens = append(tokens, string(f+'a'-'A'))
		for layer := 2; layer <= size; layer++ {
			tokens = append(tokens, strconv.Itoa(layer)+string(f))
		}
	}
	return tokens
}

func TestQuarterTurnFourTimesIsIdentity(t *testing.T) {
	for _, size := range []int{2, 3, 4} {
		for _, tok := range legalTokens(size) {
			c := MustNew(size)
			for i := 0; i < 4; i++ {
				require.NoError(t, c.Apply(tok))
			}
			assert.True(t, c.Equal(MustNew(size)), "%s x4 on %d", tok, size)

			c = MustNew(size)
			require.NoError(t, c.Apply(tok+"'"))
			assert.False(t, c.Equal(MustNew(size)), "%s' on %d", tok, size)
		}
	}
}

func TestTwoQuarterTurnsEqualDouble(t *testing.T) {
	for _, size := range []int{2, 3, 4, 5} {
		for _, tok := range legalTokens(size) {
			a, b := MustNew(size), MustNew(size)
			require.NoError(t, a.ApplyAll([]string{tok, tok}))
			require.NoError(t, b.Apply(tok+"2"))
			assert.True(t, a.Equal(b), "%s twice vs %s2 on %d", tok, tok, size)

			c := MustNew(size)
			require.NoError(t, c.ApplyAll([]string{tok + "'", tok + "'"}))
			assert.True(t, c.Equal(b), "%s' twice vs %s2 on %d", tok, tok, size)
		}
	}
}

func TestMoveThenInverseRestores(t *testing.T) {
	for _, size := range []int{2, 3, 4, 5} {
		c := MustNew(size, WithSeed(int64(size)))
		_, err := c.Scramble(25)
		require.NoError(t, err)

		for _, base := range legalTokens(size) {
			for _, mod := range []string{"", "'", "2"} {
				tok := base + mod
				before := c.Copy()

				inv, err := Inverse(tok)
				require.NoError(t, err)
				require.NoError(t, c.Apply(tok))
				require.NoError(t, c.Apply(inv))
				assert.True(t, c.Equal(before), "%s then %s on %d", tok, inv, size)
			}
		}
	}
}

func TestSequenceThenInverseSequence(t *testing.T) {
	for _, size := range []int{2, 3, 4, 6} {
		c := MustNew(size, WithSeed(11))
		scramble, err := c.Scramble(40)
		require.NoError(t, err)
		require.False(t, c.IsSolved())

		undo, err := InverseSequence(scramble)
		require.NoError(t, err)
		require.NoError(t, c.ApplyAll(undo))
		assert.True(t, c.IsSolved(), "size %d", size)
		assert.Equal(t, MustNew(size).StateString(), c.StateString())
	}
}

func TestInverseSequenceIsInvolution(t *testing.T) {
	seq := []string{"R", "u'", "3F2", "M", "x'", "B`"}
	once, err := InverseSequence(seq)
	require.NoError(t, err)
	twice, err := InverseSequence(once)
	require.NoError(t, err)
	assert.Equal(t, []string{"R", "u'", "3F2", "M", "x'", "B'"}, twice)
}

func TestSexyMoveOrder(t *testing.T) {
	for _, size := range []int{2, 3, 4} {
		c := MustNew(size)
		for i := 1; i <= 6; i++ {
			require.NoError(t, c.ApplyAll(SexyMove))
			if i == 1 || i == 3 {
				assert.False(t, c.IsSolved(), "size %d after %d repetitions", size, i)
			}
		}
		assert.True(t, c.IsSolved(), "size %d", size)
	}
}

func TestTwoByTwoSingleTurn(t *testing.T) {
	c := MustNew(2)
	require.NoError(t, c.Apply("U"))
	assert.False(t, c.IsSolved())
	require.NoError(t, c.Apply("U'"))
	assert.True(t, c.IsSolved())
}

func TestInvolutions(t *testing.T) {
	for name, alg := range map[string][]string{"tperm": TPerm, "superflip": Superflip} {
		c := MustNew(3)
		require.NoError(t, c.ApplyAll(alg))
		assert.False(t, c.IsSolved(), name)
		require.NoError(t, c.ApplyAll(alg))
		assert.True(t, c.IsSolved(), name)
	}
}

func TestSuperflipKeepsCornersAndCenters(t *testing.T) {
	c := MustNew(3)
	require.NoError(t, c.ApplyAll(Superflip))
	solved := MustNew(3)
	for _, cubie := range c.Cubies() {
		want, ok := solved.Cubie(cubie.Position)
		require.True(t, ok)
		if cubie.IsEdge() {
			assert.NotEqual(t, want, cubie)
			continue
		}
		assert.Equal(t, want, cubie)
	}
}

func TestRotationsMatchLayerTurns(t *testing.T) {
	tests := []struct {
		rotation string
		layers   string
	}{
		{"X", "R M' L'"},
		{"Y", "U E' D'"},
		{"Z", "F S B'"},
		{"X'", "R' M L"},
		{"Y2", "U2 E2 D2"},
	}

	for _, tt := range tests {
		a, b := MustNew(3, WithSeed(5)), MustNew(3, WithSeed(5))
		_, err := a.Scramble(15)
		require.NoError(t, err)
		_, err = b.Scramble(15)
		require.NoError(t, err)

		require.NoError(t, a.Apply(tt.rotation))
		require.NoError(t, b.ApplySequence(tt.layers))
		assert.True(t, a.Equal(b), "%s vs %s", tt.rotation, tt.layers)
	}
}

func TestWholeCubeRotationsKeepSolved(t *testing.T) {
	for _, size := range []int{2, 3, 4, 5} {
		c := MustNew(size)
		require.NoError(t, c.ApplySequence("X Y' Z2 x y z'"))
		assert.True(t, c.IsSolved(), "size %d", size)
	}
}

func TestLowercaseIsSecondLayer(t *testing.T) {
	a, b := MustNew(4), MustNew(4)
	require.NoError(t, a.Apply("r"))
	require.NoError(t, b.Apply("2R"))
	assert.True(t, a.Equal(b))

	// The far layer turned from the opposite face is the same slab.
	a, b = MustNew(3), MustNew(3)
	require.NoError(t, a.Apply("3R"))
	require.NoError(t, b.Apply("L'"))
	assert.True(t, a.Equal(b))
}

func TestSliceMatchesInnerLayer(t *testing.T) {
	// Each slice turns the same way as the face it is numbered from.
	tests := []struct {
		slice, layer, opposite string
	}{
		{"M", "2L", "2L'"},
		{"M'", "2L'", "2L"},
		{"E", "2D", "2D'"},
		{"E'", "2D'", "2D"},
		{"S", "2F", "2F'"},
		{"S2", "2F2", ""},
	}

	for _, tt := range tests {
		for _, size := range []int{3, 5} {
			a, b := MustNew(size), MustNew(size)
			require.NoError(t, a.Apply(tt.slice))
			require.NoError(t, b.Apply(tt.layer))
			assert.True(t, a.Equal(b), "%s vs %s on %d", tt.slice, tt.layer, size)

			if tt.opposite == "" {
				continue
			}
			c := MustNew(size)
			require.NoError(t, c.Apply(tt.opposite))
			assert.False(t, a.Equal(c), "%s vs %s on %d", tt.slice, tt.opposite, size)
		}
	}

	// M follows L: the front center goes down to D.
	c := MustNew(3)
	require.NoError(t, c.Apply("M"))
	assert.Equal(t, Green, c.FaceColors(FaceD)[1][1])
}

func TestUnknownMoveLeavesCubeUnchanged(t *testing.T) {
	c := MustNew(3, WithSeed(2))
	_, err := c.Scramble(10)
	require.NoError(t, err)
	before := c.Copy()

	err = c.Apply("4R")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownMove))
	var ue *UnknownMoveError
	require.True(t, errors.As(err, &ue))
	assert.Equal(t, "4R", ue.Token)

	err = c.ApplyMove(Move{Base: 'Q'})
	assert.True(t, errors.Is(err, ErrUnknownMove))

	err = c.ApplyMove(Move{Base: 'R', Layer: -1})
	assert.True(t, errors.Is(err, ErrUnknownMove))

	assert.True(t, c.Equal(before))
	assert.Equal(t, before.History(), c.History())
}

func TestParseErrorLeavesCubeUnchanged(t *testing.T) {
	c := MustNew(3)
	for _, tok := range []string{"", "Q", "R3", "2M"} {
		err := c.Apply(tok)
		assert.True(t, errors.Is(err, ErrInvalidNotation), tok)
	}
	assert.True(t, c.IsSolved())
	assert.Empty(t, c.History())
}

func TestApplyAllStopsAtFailure(t *testing.T) {
	c := MustNew(3)
	err := c.ApplyAll([]string{"R", "U", "5F", "D"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "move 3")
	assert.True(t, errors.Is(err, ErrUnknownMove))
	assert.Equal(t, []string{"R", "U"}, c.History())
}

func TestHistory(t *testing.T) {
	c := MustNew(3)
	require.NoError(t, c.ApplySequence(" R  u' "))
	require.NoError(t, c.ApplyMove(MustParseMove("r2")))
	assert.Equal(t, []string{"R", "u'", "2R2"}, c.History())

	h := c.History()
	h[0] = "X"
	assert.Equal(t, "R", c.History()[0])

	c = MustNew(3, WithMoveHistory(false))
	require.NoError(t, c.ApplySequence("R U"))
	assert.Empty(t, c.History())
	assert.False(t, c.IsSolved())
}
