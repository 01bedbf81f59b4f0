package nxcube

// turn is the amount a layer rotates, seen looking at the named face.
type turn int

const (
	turnClockwise turn = iota
	turnCounter
	turnHalf
)

func (t turn) String() string {
	switch t {
	case turnClockwise:
		return "cw"
	case turnCounter:
		return "ccw"
	case turnHalf:
		return "half"
	default:
		return "?"
	}
}

// faceMap sends each face to the face its sticker ends up on.
type faceMap [NumFaces]Face

var identityFaces = faceMap{FaceU, FaceR, FaceF, FaceD, FaceL, FaceB}

// cycle returns the permutation a->b->c->d->a, fixing the other two faces.
func cycle(a, b, c, d Face) faceMap {
	m := identityFaces
	m[a], m[b], m[c], m[d] = b, c, d, a
	return m
}

func (m faceMap) inverse() faceMap {
	var inv faceMap
	for _, f := range Faces {
		inv[m[f]] = f
	}
	return inv
}

func (m faceMap) then(next faceMap) faceMap {
	var out faceMap
	for _, f := range Faces {
		out[f] = next[m[f]]
	}
	return out
}

// Sticker movement for a clockwise quarter turn of each face.
var clockwiseRelabel = [NumFaces]faceMap{
	FaceU: cycle(FaceF, FaceL, FaceB, FaceR),
	FaceD: cycle(FaceF, FaceR, FaceB, FaceL),
	FaceR: cycle(FaceU, FaceB, FaceD, FaceF),
	FaceL: cycle(FaceU, FaceF, FaceD, FaceB),
	FaceF: cycle(FaceU, FaceR, FaceD, FaceL),
	FaceB: cycle(FaceU, FaceL, FaceD, FaceR),
}

// relabelTables[face][turn] is built once from clockwiseRelabel.
var relabelTables = buildRelabelTables()

func buildRelabelTables() [NumFaces][3]faceMap {
	var t [NumFaces][3]faceMap
	for _, f := range Faces {
		cw := clockwiseRelabel[f]
		t[f][turnClockwise] = cw
		t[f][turnCounter] = cw.inverse()
		t[f][turnHalf] = cw.then(cw)
	}
	return t
}

// relabelFor returns the sticker permutation for turning face f by t.
func relabelFor(f Face, t turn) *faceMap {
	return &relabelTables[f][t]
}

// layerCoord converts a layer counted inward from face f into the absolute
// coordinate along the face's axis.
func layerCoord(f Face, layer, size int) int {
	if f.positive() {
		return size - 1 - layer
	}
	return layer
}

// rotatePosition moves p by turning face f by t on a cube whose highest
// coordinate is a. Only the two coordinates perpendicular to the face change.
func rotatePosition(p Position, f Face, t turn, a int) Position {
	x, y, z := p.X, p.Y, p.Z

	if t == turnHalf {
		switch f.Axis() {
		case AxisX:
			return Position{x, a - y, a - z}
		case AxisY:
			return Position{a - x, y, a - z}
		default:
			return Position{a - x, a - y, z}
		}
	}

	cw := t == turnClockwise
	switch f {
	case FaceU:
		if cw {
			return Position{a - z, y, x}
		}
		return Position{z, y, a - x}
	case FaceD:
		if cw {
			return Position{z, y, a - x}
		}
		return Position{a - z, y, x}
	case FaceR:
		if cw {
			return Position{x, z, a - y}
		}
		return Position{x, a - z, y}
	case FaceL:
		if cw {
			return Position{x, a - z, y}
		}
		return Position{x, z, a - y}
	case FaceF:
		if cw {
			return Position{y, a - x, z}
		}
		return Position{a - y, x, z}
	default: // FaceB
		if cw {
			return Position{a - y, x, z}
		}
		return Position{y, a - x, z}
	}
}

// rotation is a single layer turn.
type rotation struct {
	face  Face
	layer int
	turn  turn
}

// affected returns the stored positions in the layer turned by r.
func (c *Cube) affected(r rotation) []Position {
	coord := layerCoord(r.face, r.layer, c.size)
	axis := r.face.Axis()

	positions := make([]Position, 0, 4*c.size)
	for i := 0; i < c.size; i++ {
		for j := 0; j < c.size; j++ {
			var p Position
			switch axis {
			case AxisX:
				p = Position{coord, i, j}
			case AxisY:
				p = Position{i, coord, j}
			default:
				p = Position{i, j, coord}
			}
			if _, ok := c.cubies[p]; ok {
				positions = append(positions, p)
			}
		}
	}
	return positions
}

// plan computes the cubies that replace every position touched by rots.
// The cube is not modified. Rotations in one plan must turn disjoint layers.
func (c *Cube) plan(rots []rotation) map[Position]Cubie {
	a := c.size - 1
	next := make(map[Position]Cubie)
	for _, r := range rots {
		relabel := relabelFor(r.face, r.turn)
		for _, p := range c.affected(r) {
			dst := rotatePosition(p, r.face, r.turn, a)
			next[dst] = c.cubies[p].moved(dst, relabel)
		}
	}
	return next
}

// commit writes a plan into the cube.
func (c *Cube) commit(next map[Position]Cubie) {
	for p, cubie := range next {
		c.cubies[p] = cubie
	}
}
