package nxcube

import "fmt"

// Position locates a cubie inside the cube.
// Each coordinate lies in [0, size-1]: X grows from Left to Right,
// Y from Down to Up and Z from Back to Front.
type Position struct {
	X, Y, Z int
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d,%d)", p.X, p.Y, p.Z)
}

// Coord returns the coordinate of p along the given axis.
func (p Position) Coord(a Axis) int {
	switch a {
	case AxisX:
		return p.X
	case AxisY:
		return p.Y
	default:
		return p.Z
	}
}

// less orders positions by X, then Y, then Z.
func (p Position) less(o Position) bool {
	if p.X != o.X {
		return p.X < o.X
	}
	if p.Y != o.Y {
		return p.Y < o.Y
	}
	return p.Z < o.Z
}

// Kind classifies a cubie by how many stickers it shows.
type Kind int

const (
	Internal Kind = 0 // no visible faces
	Center   Kind = 1
	Edge     Kind = 2
	Corner   Kind = 3
)

func (k Kind) String() string {
	switch k {
	case Internal:
		return "internal"
	case Center:
		return "center"
	case Edge:
		return "edge"
	case Corner:
		return "corner"
	default:
		return "unknown"
	}
}

// Cubie is a single unit cube: its position and the color shown on each
// exposed face. Cubies are values; a rotation produces a new Cubie at the
// destination rather than changing one in place.
type Cubie struct {
	Position Position

	colors  [NumFaces]Color
	exposed [NumFaces]bool
}

// newSolvedCubie builds the cubie that occupies pos on a solved cube.
func newSolvedCubie(pos Position, size int) Cubie {
	c := Cubie{Position: pos}
	last := size - 1

	switch pos.X {
	case 0:
		c.set(FaceL, Orange)
	case last:
		c.set(FaceR, Red)
	}
	switch pos.Y {
	case 0:
		c.set(FaceD, Yellow)
	case last:
		c.set(FaceU, White)
	}
	switch pos.Z {
	case 0:
		c.set(FaceB, Blue)
	case last:
		c.set(FaceF, Green)
	}
	return c
}

func (c *Cubie) set(f Face, col Color) {
	c.colors[f] = col
	c.exposed[f] = true
}

// Color returns the color on face f, and false if the cubie shows no
// sticker on that face.
func (c Cubie) Color(f Face) (Color, bool) {
	if !f.Valid() || !c.exposed[f] {
		return 0, false
	}
	return c.colors[f], true
}

// Faces returns the exposed faces in ordinal order.
func (c Cubie) Faces() []Face {
	faces := make([]Face, 0, 3)
	for _, f := range Faces {
		if c.exposed[f] {
			faces = append(faces, f)
		}
	}
	return faces
}

// Kind returns the cubie classification.
func (c Cubie) Kind() Kind {
	n := 0
	for _, e := range c.exposed {
		if e {
			n++
		}
	}
	return Kind(n)
}

// IsCorner reports whether the cubie shows three stickers.
func (c Cubie) IsCorner() bool { return c.Kind() == Corner }

// IsEdge reports whether the cubie shows two stickers.
func (c Cubie) IsEdge() bool { return c.Kind() == Edge }

// IsCenter reports whether the cubie shows one sticker.
func (c Cubie) IsCenter() bool { return c.Kind() == Center }

// IsInternal reports whether the cubie shows no stickers.
func (c Cubie) IsInternal() bool { return c.Kind() == Internal }

// moved returns a copy of c at pos with every sticker carried to the face
// given by relabel.
func (c Cubie) moved(pos Position, relabel *faceMap) Cubie {
	out := Cubie{Position: pos}
	for _, f := range Faces {
		if c.exposed[f] {
			out.set(relabel[f], c.colors[f])
		}
	}
	return out
}

func (c Cubie) String() string {
	s := c.Position.String() + " "
	for _, f := range Faces {
		if col, ok := c.Color(f); ok {
			s += f.String() + ":" + col.String() + " "
		}
	}
	return s[:len(s)-1]
}
