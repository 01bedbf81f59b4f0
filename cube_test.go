package nxcube

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCubeIsSolved(t *testing.T) {
	for _, size := range []int{2, 3, 4, 5} {
		c, err := New(size)
		require.NoError(t, err)
		assert.Equal(t, size, c.Size())
		assert.True(t, c.IsSolved(), "new %dx%d cube should be solved", size, size)
	}
}

func TestNewRejectsSmallSize(t *testing.T) {
	for _, size := range []int{1, 0, -3} {
		c, err := New(size)
		assert.Nil(t, c)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrInvalidSize))

		var ce *ConstructionError
		require.True(t, errors.As(err, &ce))
		assert.Equal(t, size, ce.Size)
	}
}

func TestShellCount(t *testing.T) {
	want := map[int]int{2: 8, 3: 26, 4: 56, 5: 98}
	for size, n := range want {
		assert.Equal(t, n, ShellCount(size))
		assert.Equal(t, n, MustNew(size).Len())
	}
}

func TestInteriorIsNotStored(t *testing.T) {
	c := MustNew(4)
	for _, p := range []Position{{1, 1, 1}, {2, 1, 2}, {1, 2, 2}} {
		_, ok := c.Cubie(p)
		assert.False(t, ok, "interior position %v should not be stored", p)
	}
	_, ok := c.Cubie(Position{0, 1, 1})
	assert.True(t, ok)
}

func TestCubieKinds(t *testing.T) {
	tests := []struct {
		size                    int
		corners, edges, centers int
	}{
		{2, 8, 0, 0},
		{3, 8, 12, 6},
		{4, 8, 24, 24},
		{5, 8, 36, 54},
	}

	for _, tt := range tests {
		counts := map[Kind]int{}
		for _, cubie := range MustNew(tt.size).Cubies() {
			counts[cubie.Kind()]++
		}
		assert.Equal(t, tt.corners, counts[Corner], "corners on %d", tt.size)
		assert.Equal(t, tt.edges, counts[Edge], "edges on %d", tt.size)
		assert.Equal(t, tt.centers, counts[Center], "centers on %d", tt.size)
		assert.Zero(t, counts[Internal])
	}
}

func TestSolvedCubieColors(t *testing.T) {
	c := MustNew(3)

	corner, ok := c.Cubie(Position{2, 2, 2})
	require.True(t, ok)
	assert.True(t, corner.IsCorner())
	assert.Equal(t, []Face{FaceU, FaceR, FaceF}, corner.Faces())

	col, ok := corner.Color(FaceR)
	assert.True(t, ok)
	assert.Equal(t, Red, col)

	_, ok = corner.Color(FaceL)
	assert.False(t, ok, "corner on the right has no left sticker")
}

func TestSolvedStateString(t *testing.T) {
	assert.Equal(t,
		"000000000111111111222222222333333333444444444555555555",
		MustNew(3).StateString())

	for _, size := range []int{2, 4, 5} {
		assert.Equal(t, MustNew(size).StateString(), MustNew(size).StateString())
		assert.Len(t, MustNew(size).StateString(), NumFaces*size*size)
	}
}

func TestFaceColorsAfterQuarterTurns(t *testing.T) {
	// U brings the right face's top row to the front
	c := MustNew(3)
	require.NoError(t, c.Apply("U"))
	front := c.FaceColors(FaceF)
	assert.Equal(t, []Color{Red, Red, Red}, front[2])
	assert.Equal(t, []Color{Green, Green, Green}, front[1])
	assert.Equal(t, []Color{Green, Green, Green}, front[0])

	// R brings the front's right column up
	c = MustNew(3)
	require.NoError(t, c.Apply("R"))
	up := c.FaceColors(FaceU)
	for row := 0; row < 3; row++ {
		assert.Equal(t, Green, up[row][2])
		assert.Equal(t, White, up[row][0])
	}

	// F brings the top's front row onto the right face's left column
	c = MustNew(3)
	require.NoError(t, c.Apply("F"))
	right := c.FaceColors(FaceR)
	for row := 0; row < 3; row++ {
		assert.Equal(t, White, right[row][0])
		assert.Equal(t, Red, right[row][2])
	}

	// D brings the left face's bottom row to the front
	c = MustNew(3)
	require.NoError(t, c.Apply("D"))
	assert.Equal(t, []Color{Orange, Orange, Orange}, c.FaceColors(FaceF)[0])
}

func TestIsSolvedComparesEachFaceWithItself(t *testing.T) {
	c := MustNew(3)
	require.NoError(t, c.Apply("X"))
	assert.True(t, c.IsSolved())
	assert.NotEqual(t, MustNew(3).StateString(), c.StateString())
	assert.Equal(t, Green, c.FaceColors(FaceU)[0][0])
}

func TestCopyIsIndependent(t *testing.T) {
	c := MustNew(3, WithSeed(7))
	_, err := c.Scramble(20)
	require.NoError(t, err)

	cp := c.Copy()
	assert.Equal(t, c.StateString(), cp.StateString())
	assert.Equal(t, c.History(), cp.History())
	assert.True(t, c.Equal(cp))

	before := c.StateString()
	require.NoError(t, cp.Apply("U"))
	require.NoError(t, cp.Apply("2R"))
	assert.Equal(t, before, c.StateString())
	assert.NotEqual(t, c.StateString(), cp.StateString())
	assert.Len(t, c.History(), 20)
	assert.Len(t, cp.History(), 22)
}

func TestCopiesScrambleDifferently(t *testing.T) {
	c := MustNew(3, WithSeed(1))

	first, err := c.Copy().Scramble(20)
	require.NoError(t, err)
	second, err := c.Copy().Scramble(20)
	require.NoError(t, err)
	assert.NotEqual(t, first, second)

	_, err = c.Scramble(10)
	require.NoError(t, err)
	third, err := c.Copy().Scramble(20)
	require.NoError(t, err)
	assert.NotEqual(t, first, third)

	// Copying is still reproducible from the parent's seed.
	d := MustNew(3, WithSeed(1))
	again, err := d.Copy().Scramble(20)
	require.NoError(t, err)
	assert.Equal(t, first, again)
}

func TestReset(t *testing.T) {
	c := MustNew(4, WithSeed(1))
	_, err := c.Scramble(30)
	require.NoError(t, err)
	require.False(t, c.IsSolved())

	c.Reset()
	assert.True(t, c.IsSolved())
	assert.Empty(t, c.History())
	assert.Equal(t, ShellCount(4), c.Len())
}

func TestColorCountsConserved(t *testing.T) {
	for _, size := range []int{2, 3, 4, 5, 6} {
		c := MustNew(size, WithSeed(int64(size)))
		_, err := c.Scramble(50)
		require.NoError(t, err)

		for _, col := range Colors {
			assert.Equal(t, size*size, c.ColorCounts()[col], "%s on %d", col.Name(), size)
		}
		assert.Equal(t, ShellCount(size), c.Len())
	}
}

func TestCubiesKeyedByPosition(t *testing.T) {
	c := MustNew(4, WithSeed(3))
	_, err := c.Scramble(40)
	require.NoError(t, err)

	seen := map[Position]bool{}
	for _, cubie := range c.Cubies() {
		got, ok := c.Cubie(cubie.Position)
		require.True(t, ok)
		assert.Equal(t, cubie, got)
		assert.False(t, seen[cubie.Position])
		seen[cubie.Position] = true
	}
}

func TestEqual(t *testing.T) {
	a, b := MustNew(3), MustNew(3)
	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(MustNew(4)))
	assert.False(t, a.Equal(nil))

	require.NoError(t, a.Apply("F"))
	assert.False(t, a.Equal(b))
}

func TestString(t *testing.T) {
	want := "" +
		"    W W \n" +
		"    W W \n" +
		"O O G G R R B B \n" +
		"O O G G R R B B \n" +
		"    Y Y \n" +
		"    Y Y \n"
	assert.Equal(t, want, MustNew(2).String())
}
