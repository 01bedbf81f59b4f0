package nxcube

import (
	"maps"
	"math/rand"
	"slices"
	"strings"

	"github.com/charmbracelet/log"
)

// Cube is an NxNxN cube made of cubies.
//
// Only the cubies on the outer shell are stored: interior positions never
// move relative to the shell and carry no stickers. A Cube is not safe for
// concurrent use; give each goroutine its own Copy.
type Cube struct {
	size   int
	cubies map[Position]Cubie

	history     []string
	keepHistory bool

	logger *log.Logger
	rng    *rand.Rand
}

// New creates a solved cube with standard orientation:
// White on top, Green in front, Red on the right.
// Returns a *ConstructionError if size is less than 2.
func New(size int, opts ...Option) (*Cube, error) {
	if size < 2 {
		return nil, &ConstructionError{Size: size}
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	c := &Cube{
		size:        size,
		keepHistory: cfg.moveHistory,
		logger:      cfg.newLogger(),
		rng:         cfg.newRand(),
	}
	c.initCubies()
	return c, nil
}

// MustNew is like New but panics if size is invalid.
func MustNew(size int, opts ...Option) *Cube {
	c, err := New(size, opts...)
	if err != nil {
		panic(err)
	}
	return c
}

// initCubies fills the shell with solved cubies.
func (c *Cube) initCubies() {
	c.cubies = make(map[Position]Cubie, ShellCount(c.size))
	last := c.size - 1
	for x := 0; x < c.size; x++ {
		for y := 0; y < c.size; y++ {
			for z := 0; z < c.size; z++ {
				if x > 0 && x < last && y > 0 && y < last && z > 0 && z < last {
					continue
				}
				p := Position{x, y, z}
				c.cubies[p] = newSolvedCubie(p, c.size)
			}
		}
	}
}

// ShellCount returns the number of cubies stored for a cube of the given
// size: every position except the interior.
func ShellCount(size int) int {
	if size < 2 {
		return 0
	}
	inner := size - 2
	return size*size*size - inner*inner*inner
}

// Size returns the number of cubies along one edge.
func (c *Cube) Size() int {
	return c.size
}

// Len returns the number of stored cubies.
func (c *Cube) Len() int {
	return len(c.cubies)
}

// Cubie returns the cubie at p, and false if p is outside the shell.
func (c *Cube) Cubie(p Position) (Cubie, bool) {
	cubie, ok := c.cubies[p]
	return cubie, ok
}

// Cubies returns every stored cubie ordered by position.
func (c *Cube) Cubies() []Cubie {
	out := make([]Cubie, 0, len(c.cubies))
	for _, cubie := range c.cubies {
		out = append(out, cubie)
	}
	sortCubies(out)
	return out
}

func sortCubies(cs []Cubie) {
	slices.SortFunc(cs, func(a, b Cubie) int {
		switch {
		case a.Position.less(b.Position):
			return -1
		case b.Position.less(a.Position):
			return 1
		default:
			return 0
		}
	})
}

// History returns the tokens applied since creation or the last Reset.
func (c *Cube) History() []string {
	return slices.Clone(c.history)
}

// Reset returns the cube to the solved state and clears the history.
func (c *Cube) Reset() {
	c.initCubies()
	c.history = nil
	c.logger.Debug("cube reset", "size", c.size)
}

// Copy returns an independent cube with the same state and history.
// Mutating the copy never affects c. The copy's generator is seeded from
// c's, so copying advances c's random stream and successive copies
// scramble differently.
func (c *Cube) Copy() *Cube {
	return &Cube{
		size:        c.size,
		cubies:      maps.Clone(c.cubies),
		history:     slices.Clone(c.history),
		keepHistory: c.keepHistory,
		logger:      c.logger,
		rng:         rand.New(rand.NewSource(c.rng.Int63())),
	}
}

// FaceCubies returns the cubies on the outer layer of face f, ordered by
// position.
func (c *Cube) FaceCubies(f Face) []Cubie {
	axis := f.Axis()
	coord := layerCoord(f, 0, c.size)

	out := make([]Cubie, 0, c.size*c.size)
	for p, cubie := range c.cubies {
		if p.Coord(axis) == coord {
			out = append(out, cubie)
		}
	}
	sortCubies(out)
	return out
}

// project places a sticker of face f at position p in that face's grid.
//
// Columns read left to right and row 0 is the bottom row, both as seen
// looking at the face from outside. For U the bottom row is the one next to
// Front; for D it is the one next to Back.
func project(f Face, p Position, a int) (row, col int) {
	switch f {
	case FaceU:
		return a - p.Z, p.X
	case FaceD:
		return p.Z, p.X
	case FaceL:
		return p.Y, p.Z
	case FaceR:
		return p.Y, a - p.Z
	case FaceF:
		return p.Y, p.X
	default: // FaceB
		return p.Y, a - p.X
	}
}

// FaceColors returns the stickers of face f as a size x size grid indexed
// [row][col]. See project for the orientation of each face.
func (c *Cube) FaceColors(f Face) [][]Color {
	a := c.size - 1
	grid := make([][]Color, c.size)
	for i := range grid {
		grid[i] = make([]Color, c.size)
	}

	for _, cubie := range c.FaceCubies(f) {
		col, ok := cubie.Color(f)
		if !ok {
			continue
		}
		r, k := project(f, cubie.Position, a)
		grid[r][k] = col
	}
	return grid
}

// IsSolved returns true if every face shows a single color.
// Faces are only compared with themselves.
func (c *Cube) IsSolved() bool {
	for _, f := range Faces {
		grid := c.FaceColors(f)
		first := grid[0][0]
		for _, row := range grid {
			for _, col := range row {
				if col != first {
					return false
				}
			}
		}
	}
	return true
}

// StateString returns a fingerprint of the cube state: for each face in
// ordinal order, the color code of every sticker in row-major order.
// Equal states always produce equal strings.
func (c *Cube) StateString() string {
	var b strings.Builder
	b.Grow(NumFaces * c.size * c.size)
	for _, f := range Faces {
		for _, row := range c.FaceColors(f) {
			for _, col := range row {
				b.WriteByte(col.Code())
			}
		}
	}
	return b.String()
}

// ColorCounts returns how many stickers of each color the cube shows.
// Every count equals size*size for any reachable state.
func (c *Cube) ColorCounts() [NumColors]int {
	var counts [NumColors]int
	for _, cubie := range c.cubies {
		for _, f := range Faces {
			if col, ok := cubie.Color(f); ok {
				counts[col]++
			}
		}
	}
	return counts
}

// Equal reports whether two cubes have the same size and sticker layout.
func (c *Cube) Equal(other *Cube) bool {
	if other == nil || c.size != other.size {
		return false
	}
	return maps.Equal(c.cubies, other.cubies)
}
